package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
	appcomp "github.com/olivarmoveis/contagem-api/internal/application/comparativo"
	"github.com/olivarmoveis/contagem-api/internal/domain/comparativo"
)

var _ appcomp.Exporter = (*ComparativoExporter)(nil)

// SheetName nome da aba da planilha gerada.
const SheetName = "Comparativo"

// Cabeçalho fixo, na ordem exigida pelo relatório.
var cabecalho = []string{
	"Código Item",
	"ID Máscara",
	"Máscara",
	"Descrição",
	"Qtd. Lida",
	"Qtd. Sistema",
	"Diferença",
	"Status",
}

// ComparativoExporter renderiza o comparativo como planilha .xlsx (excelize).
type ComparativoExporter struct{}

// NewComparativoExporter constrói o exporter.
func NewComparativoExporter() *ComparativoExporter {
	return &ComparativoExporter{}
}

// Exportar gera a planilha com uma linha de cabeçalho e uma linha por item,
// campo a campo na mesma ordem do comparativo.
func (e *ComparativoExporter) Exportar(itens []comparativo.Item) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("criar aba: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("remover aba padrão: %w", err)
	}

	for col, titulo := range cabecalho {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SheetName, cell, titulo); err != nil {
			return nil, fmt.Errorf("escrever cabeçalho: %w", err)
		}
	}

	for i, item := range itens {
		valores := []any{
			item.CodItem,
			item.TmascItemID,
			item.Mascara,
			item.Descricao,
			item.QtdLida.InexactFloat64(),
			item.QtdSistema.InexactFloat64(),
			item.Diferenca.InexactFloat64(),
			item.Status,
		}
		for col, v := range valores {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return nil, fmt.Errorf("escrever linha %d: %w", i+2, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serializar planilha: %w", err)
	}
	return buf.Bytes(), nil
}
