package comparativo

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivarmoveis/contagem-api/internal/domain"
	domcomp "github.com/olivarmoveis/contagem-api/internal/domain/comparativo"
	"github.com/olivarmoveis/contagem-api/internal/domain/entity"
)

type fakeInvRepo struct {
	inv *entity.Inventario
}

func (r *fakeInvRepo) Create(*entity.Inventario) error { return nil }
func (r *fakeInvRepo) GetByID(id string) (*entity.Inventario, error) {
	if r.inv != nil && r.inv.ID == id {
		return r.inv, nil
	}
	return nil, nil
}
func (r *fakeInvRepo) List() ([]*entity.Inventario, error) { return nil, nil }
func (r *fakeInvRepo) Update(*entity.Inventario) error     { return nil }
func (r *fakeInvRepo) Delete(string) error                 { return nil }

type fakeItemRepo struct {
	itens []*entity.ItemInventario
}

func (r *fakeItemRepo) Create(*entity.ItemInventario) error { return nil }
func (r *fakeItemRepo) ListByInventario(string) ([]*entity.ItemInventario, error) {
	return r.itens, nil
}
func (r *fakeItemRepo) DeleteByInventario(string) error { return nil }

type fakeEstoqueRepo struct {
	snapshot []*entity.Estoque
}

func (r *fakeEstoqueRepo) ReplaceAll(registros []*entity.Estoque) (int, error) {
	return len(registros), nil
}
func (r *fakeEstoqueRepo) ListAll() ([]*entity.Estoque, error) { return r.snapshot, nil }

// fakeExporter devolve um conteúdo fixo e registra o que recebeu.
type fakeExporter struct {
	recebidos []domcomp.Item
}

func (e *fakeExporter) Exportar(itens []domcomp.Item) ([]byte, error) {
	e.recebidos = itens
	return []byte("planilha"), nil
}

func inventarioAberto(id, nome string) *entity.Inventario {
	return &entity.Inventario{
		ID:         id,
		Nome:       nome,
		Status:     entity.StatusAberto,
		DataInicio: time.Now(),
	}
}

func TestGerar_CruzaLeiturasComEstoque(t *testing.T) {
	uc := NewUseCase(
		&fakeInvRepo{inv: inventarioAberto("inv-1", "Contagem")},
		&fakeItemRepo{itens: []*entity.ItemInventario{
			{InventarioID: "inv-1", CodItem: "A1", TmascItemID: 5, Quantidade: decimal.NewFromInt(7)},
		}},
		&fakeEstoqueRepo{snapshot: []*entity.Estoque{
			{CodItem: "A1", TmascItemID: 5, Quantidade: 10},
		}},
		&fakeExporter{},
	)

	itens, err := uc.Gerar(context.Background(), "inv-1")
	require.NoError(t, err)
	require.Len(t, itens, 1)
	assert.Equal(t, domcomp.StatusFalta, itens[0].Status)
	assert.True(t, itens[0].Diferenca.Equal(decimal.NewFromInt(-3)))
}

func TestGerar_InventarioInexistente(t *testing.T) {
	uc := NewUseCase(&fakeInvRepo{}, &fakeItemRepo{}, &fakeEstoqueRepo{}, &fakeExporter{})

	_, err := uc.Gerar(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExportar_NomeDoArquivoVemDoInventario(t *testing.T) {
	exporter := &fakeExporter{}
	uc := NewUseCase(
		&fakeInvRepo{inv: inventarioAberto("inv-1", "Contagem Setembro")},
		&fakeItemRepo{itens: []*entity.ItemInventario{
			{InventarioID: "inv-1", CodItem: "A1", Quantidade: decimal.NewFromInt(1)},
		}},
		&fakeEstoqueRepo{},
		exporter,
	)

	arq, err := uc.Exportar(context.Background(), "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "Contagem Setembro.xlsx", arq.Nome)
	assert.Equal(t, []byte("planilha"), arq.Conteudo)
	require.Len(t, exporter.recebidos, 1)
}

// Comparativo vazio nunca vira arquivo: ErrSemDados.
func TestExportar_SemLeiturasRetornaErrSemDados(t *testing.T) {
	exporter := &fakeExporter{}
	uc := NewUseCase(
		&fakeInvRepo{inv: inventarioAberto("inv-1", "Contagem")},
		&fakeItemRepo{},
		&fakeEstoqueRepo{snapshot: []*entity.Estoque{{CodItem: "A1", Quantidade: 5}}},
		exporter,
	)

	_, err := uc.Exportar(context.Background(), "inv-1")
	assert.ErrorIs(t, err, domain.ErrSemDados)
	assert.Nil(t, exporter.recebidos, "exporter não deve ser chamado sem dados")
}

func TestExportar_InventarioInexistente(t *testing.T) {
	uc := NewUseCase(&fakeInvRepo{}, &fakeItemRepo{}, &fakeEstoqueRepo{}, &fakeExporter{})

	_, err := uc.Exportar(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSanitizarNomeArquivo(t *testing.T) {
	casos := []struct {
		nome     string
		esperado string
	}{
		{"Contagem Setembro", "Contagem Setembro"},
		{"Loja 01 (Matriz) - v2.final", "Loja 01 (Matriz) - v2.final"},
		{"a/b\\c:d*e?f\"g<h>i|j", "abcdefghij"},
		{"Conta#gem@2025!", "Contagem2025"},
		{"Contagem São Paulo", "Contagem So Paulo"},
		{"   espaço nas pontas   ", "espao nas pontas"},
		{"///***", "comparativo"},
		{"", "comparativo"},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, sanitizarNomeArquivo(c.nome), "entrada: %q", c.nome)
	}
}
