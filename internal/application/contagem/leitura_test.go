package contagem_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivarmoveis/contagem-api/internal/application/contagem"
	"github.com/olivarmoveis/contagem-api/internal/domain"
)

// fakeResolver devolve etiquetas de um mapa fixo e conta as chamadas.
type fakeResolver struct {
	etiquetas map[string]*contagem.EtiquetaResolvida
	chamadas  int
}

func (r *fakeResolver) ResolverCodigoBarras(ctx context.Context, codigo string) (*contagem.EtiquetaResolvida, error) {
	r.chamadas++
	et, ok := r.etiquetas[codigo]
	if !ok {
		return nil, domain.ErrCodigoNaoEncontrado
	}
	return et, nil
}

func qtde(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func etiqueta(codigo, codItem string, q *decimal.Decimal) *contagem.EtiquetaResolvida {
	return &contagem.EtiquetaResolvida{
		EtiqID:      42,
		CodBarraOrd: codigo,
		CodItem:     codItem,
		DescTecnica: "MESA DE JANTAR",
		Mascara:     "180X90",
		TmascItemID: 5,
		Qtde:        q,
	}
}

func setupLeitura(resolver *fakeResolver) (*contagem.RegistrarLeituraUseCase, *fakeInventarioRepo, *fakeItemRepo) {
	invRepo := newFakeInventarioRepo()
	itemRepo := &fakeItemRepo{}
	return contagem.NewRegistrarLeituraUseCase(invRepo, itemRepo, resolver), invRepo, itemRepo
}

func abrirInventario(t *testing.T, invRepo *fakeInventarioRepo) string {
	t.Helper()
	uc := contagem.NewUseCase(invRepo, &fakeTxRunner{invRepo: invRepo, itemRepo: &fakeItemRepo{}})
	inv, err := uc.Criar(context.Background(), "Contagem")
	require.NoError(t, err)
	return inv.ID
}

func TestRegistrar_LeituraValidaViraSnapshot(t *testing.T) {
	resolver := &fakeResolver{etiquetas: map[string]*contagem.EtiquetaResolvida{
		"789000001": etiqueta("789000001", "A1", qtde("3")),
	}}
	uc, invRepo, itemRepo := setupLeitura(resolver)
	invID := abrirInventario(t, invRepo)

	item, err := uc.Registrar(context.Background(), invID, "789000001")
	require.NoError(t, err)

	// O item congela os campos descritivos da etiqueta no momento da leitura
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, invID, item.InventarioID)
	assert.Equal(t, "789000001", item.CodBarraOrd)
	assert.Equal(t, "A1", item.CodItem)
	assert.Equal(t, int64(42), item.EtiqID)
	assert.Equal(t, int64(5), item.TmascItemID)
	assert.Equal(t, "MESA DE JANTAR", item.DescTecnica)
	assert.Equal(t, "180X90", item.Mascara)
	assert.True(t, item.Quantidade.Equal(decimal.NewFromInt(3)))
	assert.False(t, item.Timestamp.IsZero())
	require.Len(t, itemRepo.itens, 1)
}

func TestRegistrar_CodigoVazioRejeitadoSemConsultarERP(t *testing.T) {
	resolver := &fakeResolver{}
	uc, invRepo, _ := setupLeitura(resolver)
	invID := abrirInventario(t, invRepo)

	_, err := uc.Registrar(context.Background(), invID, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, resolver.chamadas)
}

func TestRegistrar_InventarioInexistenteOuFechado(t *testing.T) {
	resolver := &fakeResolver{etiquetas: map[string]*contagem.EtiquetaResolvida{
		"789000001": etiqueta("789000001", "A1", qtde("1")),
	}}
	uc, invRepo, itemRepo := setupLeitura(resolver)

	_, err := uc.Registrar(context.Background(), "nao-existe", "789000001")
	assert.ErrorIs(t, err, domain.ErrInventarioInvalido)

	invID := abrirInventario(t, invRepo)
	lifecycleUC := contagem.NewUseCase(invRepo, &fakeTxRunner{invRepo: invRepo, itemRepo: itemRepo})
	_, err = lifecycleUC.Fechar(context.Background(), invID)
	require.NoError(t, err)

	_, err = uc.Registrar(context.Background(), invID, "789000001")
	assert.ErrorIs(t, err, domain.ErrInventarioInvalido)
	assert.Empty(t, itemRepo.itens, "inventário fechado não recebe leitura")
}

func TestRegistrar_EtiquetaSemQuantidadeNaoGravaNada(t *testing.T) {
	resolver := &fakeResolver{etiquetas: map[string]*contagem.EtiquetaResolvida{
		"sem-qtde":  etiqueta("sem-qtde", "A1", nil),
		"qtde-zero": etiqueta("qtde-zero", "A1", qtde("0")),
		"negativa":  etiqueta("negativa", "A1", qtde("-2")),
	}}
	uc, invRepo, itemRepo := setupLeitura(resolver)
	invID := abrirInventario(t, invRepo)

	for _, codigo := range []string{"sem-qtde", "qtde-zero", "negativa"} {
		_, err := uc.Registrar(context.Background(), invID, codigo)
		assert.ErrorIs(t, err, domain.ErrQuantidadeInvalida, codigo)
	}
	assert.Empty(t, itemRepo.itens)
}

func TestRegistrar_CodigoNaoEncontrado(t *testing.T) {
	resolver := &fakeResolver{}
	uc, invRepo, itemRepo := setupLeitura(resolver)
	invID := abrirInventario(t, invRepo)

	_, err := uc.Registrar(context.Background(), invID, "desconhecido")
	assert.ErrorIs(t, err, domain.ErrCodigoNaoEncontrado)
	assert.Empty(t, itemRepo.itens)
}

func TestRegistrar_DuplicataNoMesmoInventario(t *testing.T) {
	resolver := &fakeResolver{etiquetas: map[string]*contagem.EtiquetaResolvida{
		"789000001": etiqueta("789000001", "A1", qtde("3")),
	}}
	uc, invRepo, itemRepo := setupLeitura(resolver)
	invID := abrirInventario(t, invRepo)

	_, err := uc.Registrar(context.Background(), invID, "789000001")
	require.NoError(t, err)

	_, err = uc.Registrar(context.Background(), invID, "789000001")
	assert.ErrorIs(t, err, domain.ErrItemDuplicado)
	assert.Len(t, itemRepo.itens, 1, "segunda leitura não pode inserir")

	// O mesmo código em outro inventário é permitido
	outroID := abrirInventario(t, invRepo)
	_, err = uc.Registrar(context.Background(), outroID, "789000001")
	assert.NoError(t, err)
}

func TestListar_MaisRecentesPrimeiro(t *testing.T) {
	resolver := &fakeResolver{etiquetas: map[string]*contagem.EtiquetaResolvida{
		"c1": etiqueta("c1", "A1", qtde("1")),
		"c2": etiqueta("c2", "B2", qtde("1")),
	}}
	uc, invRepo, _ := setupLeitura(resolver)
	invID := abrirInventario(t, invRepo)

	_, err := uc.Registrar(context.Background(), invID, "c1")
	require.NoError(t, err)
	_, err = uc.Registrar(context.Background(), invID, "c2")
	require.NoError(t, err)

	itens, err := uc.Listar(context.Background(), invID)
	require.NoError(t, err)
	require.Len(t, itens, 2)
	assert.Equal(t, "c2", itens[0].CodBarraOrd)
	assert.Equal(t, "c1", itens[1].CodBarraOrd)
}

func TestListar_InventarioInexistente(t *testing.T) {
	uc, _, _ := setupLeitura(&fakeResolver{})

	_, err := uc.Listar(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
