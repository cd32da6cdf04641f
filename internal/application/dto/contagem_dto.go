package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/olivarmoveis/contagem-api/internal/domain/entity"
)

// CriarInventarioRequest corpo para abrir uma nova sessão de contagem.
type CriarInventarioRequest struct {
	Nome string `json:"nome"`
}

// InventarioResponse representação HTTP de um inventário.
type InventarioResponse struct {
	ID         string  `json:"id"`
	Nome       string  `json:"nome"`
	Status     string  `json:"status"`
	DataInicio string  `json:"data_inicio"`
	DataFim    *string `json:"data_fim"`
	CreatedAt  string  `json:"created_at"`
}

// ToInventarioResponse converte a entidade para o formato de resposta.
func ToInventarioResponse(inv *entity.Inventario) InventarioResponse {
	resp := InventarioResponse{
		ID:         inv.ID,
		Nome:       inv.Nome,
		Status:     inv.Status,
		DataInicio: inv.DataInicio.Format(time.RFC3339),
		CreatedAt:  inv.CreatedAt.Format(time.RFC3339),
	}
	if inv.DataFim != nil {
		fim := inv.DataFim.Format(time.RFC3339)
		resp.DataFim = &fim
	}
	return resp
}

// RegistrarLeituraRequest corpo para registrar uma leitura de código de barras.
// A quantidade não é aceita do cliente: vem sempre da etiqueta no ERP.
type RegistrarLeituraRequest struct {
	CodBarraOrd string `json:"cod_barra_ord"`
}

// ItemInventarioResponse representação HTTP de uma leitura aceita.
type ItemInventarioResponse struct {
	ID          string          `json:"id"`
	CodBarraOrd string          `json:"cod_barra_ord"`
	CodItem     string          `json:"cod_item"`
	EtiqID      int64           `json:"etiq_id"`
	TmascItemID int64           `json:"tmasc_item_id"`
	DescTecnica string          `json:"desc_tecnica"`
	Mascara     string          `json:"mascara"`
	Quantidade  decimal.Decimal `json:"quantidade"`
	Timestamp   string          `json:"timestamp"`
}

// ToItemInventarioResponse converte a entidade para o formato de resposta.
func ToItemInventarioResponse(item *entity.ItemInventario) ItemInventarioResponse {
	return ItemInventarioResponse{
		ID:          item.ID,
		CodBarraOrd: item.CodBarraOrd,
		CodItem:     item.CodItem,
		EtiqID:      item.EtiqID,
		TmascItemID: item.TmascItemID,
		DescTecnica: item.DescTecnica,
		Mascara:     item.Mascara,
		Quantidade:  item.Quantidade,
		Timestamp:   item.Timestamp.Format(time.RFC3339),
	}
}

// SincronizarResponse resultado da sincronização de estoque.
type SincronizarResponse struct {
	Mensagem  string `json:"mensagem"`
	Registros int    `json:"registros"`
}
