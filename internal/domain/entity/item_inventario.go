package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemInventario é uma leitura de código de barras aceita dentro de um inventário.
// Os campos descritivos (DescTecnica, Mascara, TmascItemID) são um snapshot do
// momento da resolução: alterações posteriores no catálogo não alteram leituras
// históricas. O par (InventarioID, CodBarraOrd) é único — a segunda leitura do
// mesmo código no mesmo inventário é rejeitada, nunca somada ou sobrescrita.
type ItemInventario struct {
	ID           string
	InventarioID string
	CodBarraOrd  string
	CodItem      string
	EtiqID       int64
	TmascItemID  int64
	DescTecnica  string
	Mascara      string
	Quantidade   decimal.Decimal
	Timestamp    time.Time
}
