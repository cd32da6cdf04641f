package estoque

import (
	"context"

	"github.com/olivarmoveis/contagem-api/internal/domain/entity"
	"github.com/olivarmoveis/contagem-api/internal/domain/repository"
	"github.com/olivarmoveis/contagem-api/pkg/logger"
)

// RegistroFeed é uma linha crua do feed de estoque do ERP, já com a
// quantidade coagida para inteiro (qtde, senão saldo, senão zero).
type RegistroFeed struct {
	CodEmp      int
	CodItem     string
	Mascara     string
	TmascItemID int64
	Quantidade  int64
	DescTecnica string
}

// FeedEstoque busca o estoque completo no ERP. Retorna domain.ErrUpstream
// (embrulhado) em falha de transporte ou resposta não-2xx.
type FeedEstoque interface {
	BuscarEstoque(ctx context.Context) ([]RegistroFeed, error)
}

// SincronizarUseCase substitui o snapshot local de estoque pelo feed do ERP.
type SincronizarUseCase struct {
	feed        FeedEstoque
	estoqueRepo repository.EstoqueRepository
	log         *logger.Logger
}

// NewSincronizarUseCase constrói o caso de uso.
func NewSincronizarUseCase(feed FeedEstoque, estoqueRepo repository.EstoqueRepository, log *logger.Logger) *SincronizarUseCase {
	return &SincronizarUseCase{feed: feed, estoqueRepo: estoqueRepo, log: log}
}

// Sincronizar busca o feed e troca o snapshot inteiro em uma transação.
// Linhas sem cod_item são ignoradas em silêncio (feed malformado é esperado).
// Feed vazio zera a tabela e retorna 0 com sucesso.
func (uc *SincronizarUseCase) Sincronizar(ctx context.Context) (int, error) {
	linhas, err := uc.feed.BuscarEstoque(ctx)
	if err != nil {
		return 0, err
	}

	registros := make([]*entity.Estoque, 0, len(linhas))
	ignoradas := 0
	for _, l := range linhas {
		if l.CodItem == "" {
			ignoradas++
			continue
		}
		registros = append(registros, &entity.Estoque{
			CodEmp:      l.CodEmp,
			CodItem:     l.CodItem,
			Mascara:     l.Mascara,
			TmascItemID: l.TmascItemID,
			Quantidade:  l.Quantidade,
			DescTecnica: l.DescTecnica,
		})
	}
	if ignoradas > 0 {
		uc.log.Warn().Int("linhas", ignoradas).Msg("feed de estoque com linhas sem cod_item, ignoradas")
	}

	total, err := uc.estoqueRepo.ReplaceAll(registros)
	if err != nil {
		return 0, err
	}
	uc.log.Info().Int("registros", total).Msg("estoque sincronizado")
	return total, nil
}
