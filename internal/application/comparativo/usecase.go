package comparativo

import (
	"context"
	"regexp"
	"strings"

	"github.com/olivarmoveis/contagem-api/internal/domain"
	domcomp "github.com/olivarmoveis/contagem-api/internal/domain/comparativo"
	"github.com/olivarmoveis/contagem-api/internal/domain/repository"
)

// Exporter renderiza o comparativo como planilha binária.
type Exporter interface {
	Exportar(itens []domcomp.Item) ([]byte, error)
}

// ArquivoExportado é o payload pronto para download.
type ArquivoExportado struct {
	Nome     string
	Conteudo []byte
}

// UseCase gera o comparativo leitura × estoque de um inventário e o exporta
// para planilha. Somente leitura: recalcula tudo a cada chamada, sem cache.
type UseCase struct {
	invRepo     repository.InventarioRepository
	itemRepo    repository.ItemInventarioRepository
	estoqueRepo repository.EstoqueRepository
	exporter    Exporter
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	invRepo repository.InventarioRepository,
	itemRepo repository.ItemInventarioRepository,
	estoqueRepo repository.EstoqueRepository,
	exporter Exporter,
) *UseCase {
	return &UseCase{invRepo: invRepo, itemRepo: itemRepo, estoqueRepo: estoqueRepo, exporter: exporter}
}

// Gerar relê as leituras e o snapshot inteiros e recalcula o comparativo.
// Vale também para inventários fechados (relatório pós-contagem).
func (uc *UseCase) Gerar(ctx context.Context, inventarioID string) ([]domcomp.Item, error) {
	inv, err := uc.invRepo.GetByID(inventarioID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	itens, err := uc.itemRepo.ListByInventario(inventarioID)
	if err != nil {
		return nil, err
	}
	estoque, err := uc.estoqueRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return domcomp.Calcular(itens, estoque), nil
}

// Exportar gera o comparativo e o renderiza como planilha .xlsx. Comparativo
// vazio retorna ErrSemDados — nunca um arquivo vazio bem formado.
func (uc *UseCase) Exportar(ctx context.Context, inventarioID string) (*ArquivoExportado, error) {
	inv, err := uc.invRepo.GetByID(inventarioID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	itens, err := uc.Gerar(ctx, inventarioID)
	if err != nil {
		return nil, err
	}
	if len(itens) == 0 {
		return nil, domain.ErrSemDados
	}
	conteudo, err := uc.exporter.Exportar(itens)
	if err != nil {
		return nil, err
	}
	return &ArquivoExportado{
		Nome:     sanitizarNomeArquivo(inv.Nome) + ".xlsx",
		Conteudo: conteudo,
	}, nil
}

var caracteresInvalidos = regexp.MustCompile(`[^A-Za-z0-9 \-_.()]`)

// sanitizarNomeArquivo remove do nome tudo fora de [A-Za-z0-9 \-_.()],
// para o download não gerar nome inválido em nenhum sistema de arquivos.
func sanitizarNomeArquivo(nome string) string {
	limpo := caracteresInvalidos.ReplaceAllString(nome, "")
	limpo = strings.TrimSpace(limpo)
	if limpo == "" {
		return "comparativo"
	}
	return limpo
}
