package contagem

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/olivarmoveis/contagem-api/internal/domain"
	"github.com/olivarmoveis/contagem-api/internal/domain/entity"
	"github.com/olivarmoveis/contagem-api/internal/domain/repository"
)

// RegistrarLeituraUseCase registra leituras de código de barras em um
// inventário aberto, resolvendo cada código contra o catálogo do ERP.
type RegistrarLeituraUseCase struct {
	invRepo  repository.InventarioRepository
	itemRepo repository.ItemInventarioRepository
	resolver CodigoBarrasResolver
}

// NewRegistrarLeituraUseCase constrói o caso de uso.
func NewRegistrarLeituraUseCase(
	invRepo repository.InventarioRepository,
	itemRepo repository.ItemInventarioRepository,
	resolver CodigoBarrasResolver,
) *RegistrarLeituraUseCase {
	return &RegistrarLeituraUseCase{invRepo: invRepo, itemRepo: itemRepo, resolver: resolver}
}

// Registrar valida a sessão, resolve o código no ERP e insere exatamente uma
// leitura com snapshot dos campos descritivos. A quantidade vem da etiqueta,
// nunca do cliente. Código repetido no mesmo inventário é rejeitado com
// ErrItemDuplicado — a constraint única do banco é o guarda autoritativo,
// então duas leituras concorrentes do mesmo código nunca entram as duas.
func (uc *RegistrarLeituraUseCase) Registrar(ctx context.Context, inventarioID, codigo string) (*entity.ItemInventario, error) {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return nil, domain.ErrInvalidInput
	}

	inv, err := uc.invRepo.GetByID(inventarioID)
	if err != nil {
		return nil, err
	}
	if inv == nil || !inv.Aberto() {
		return nil, domain.ErrInventarioInvalido
	}

	etiqueta, err := uc.resolver.ResolverCodigoBarras(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if etiqueta.Qtde == nil || !etiqueta.Qtde.GreaterThan(decimal.Zero) {
		return nil, domain.ErrQuantidadeInvalida
	}

	item := &entity.ItemInventario{
		ID:           uuid.New().String(),
		InventarioID: inventarioID,
		CodBarraOrd:  etiqueta.CodBarraOrd,
		CodItem:      etiqueta.CodItem,
		EtiqID:       etiqueta.EtiqID,
		TmascItemID:  etiqueta.TmascItemID,
		DescTecnica:  etiqueta.DescTecnica,
		Mascara:      etiqueta.Mascara,
		Quantidade:   *etiqueta.Qtde,
		Timestamp:    time.Now(),
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Listar retorna as leituras do inventário, mais recentes primeiro.
func (uc *RegistrarLeituraUseCase) Listar(ctx context.Context, inventarioID string) ([]*entity.ItemInventario, error) {
	inv, err := uc.invRepo.GetByID(inventarioID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return uc.itemRepo.ListByInventario(inventarioID)
}
