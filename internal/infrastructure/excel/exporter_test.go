package excel_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/olivarmoveis/contagem-api/internal/domain/comparativo"
	"github.com/olivarmoveis/contagem-api/internal/infrastructure/excel"
)

func abrirPlanilha(t *testing.T, conteudo []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(conteudo))
	require.NoError(t, err)
	defer f.Close()

	linhas, err := f.GetRows(excel.SheetName)
	require.NoError(t, err)
	return linhas
}

func TestExportar_CabecalhoEDados(t *testing.T) {
	itens := []comparativo.Item{
		{
			CodItem:     "A1",
			TmascItemID: 5,
			Mascara:     "180X90",
			Descricao:   "MESA DE JANTAR",
			QtdLida:     decimal.NewFromInt(7),
			QtdSistema:  decimal.NewFromInt(10),
			Diferenca:   decimal.NewFromInt(-3),
			Status:      comparativo.StatusFalta,
		},
		{
			CodItem:     "B2",
			TmascItemID: 1,
			QtdLida:     decimal.NewFromInt(2),
			QtdSistema:  decimal.NewFromInt(2),
			Diferenca:   decimal.Zero,
			Status:      comparativo.StatusOK,
		},
	}

	conteudo, err := excel.NewComparativoExporter().Exportar(itens)
	require.NoError(t, err)

	linhas := abrirPlanilha(t, conteudo)
	require.Len(t, linhas, 3, "cabeçalho + uma linha por item")

	assert.Equal(t, []string{
		"Código Item", "ID Máscara", "Máscara", "Descrição",
		"Qtd. Lida", "Qtd. Sistema", "Diferença", "Status",
	}, linhas[0])

	assert.Equal(t, []string{"A1", "5", "180X90", "MESA DE JANTAR", "7", "10", "-3", "falta"}, linhas[1])
	assert.Equal(t, "B2", linhas[2][0])
	assert.Equal(t, "ok", linhas[2][7])
}

// A ordem das linhas da planilha é a ordem do comparativo recebido.
func TestExportar_PreservaOrdem(t *testing.T) {
	itens := []comparativo.Item{
		{CodItem: "C3", Status: comparativo.StatusSobra, QtdLida: decimal.NewFromInt(1)},
		{CodItem: "A1", Status: comparativo.StatusOK, QtdLida: decimal.NewFromInt(1)},
	}

	conteudo, err := excel.NewComparativoExporter().Exportar(itens)
	require.NoError(t, err)

	linhas := abrirPlanilha(t, conteudo)
	require.Len(t, linhas, 3)
	assert.Equal(t, "C3", linhas[1][0])
	assert.Equal(t, "A1", linhas[2][0])
}

// A aba padrão do excelize é removida; só existe a aba do comparativo.
func TestExportar_AbaUnica(t *testing.T) {
	conteudo, err := excel.NewComparativoExporter().Exportar([]comparativo.Item{
		{CodItem: "A1", QtdLida: decimal.NewFromInt(1)},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(conteudo))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{excel.SheetName}, f.GetSheetList())
}
