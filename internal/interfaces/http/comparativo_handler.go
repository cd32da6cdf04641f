package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	appcomp "github.com/olivarmoveis/contagem-api/internal/application/comparativo"
	"github.com/olivarmoveis/contagem-api/internal/application/dto"
	"github.com/olivarmoveis/contagem-api/internal/domain"
)

// ComparativoHandler trata o relatório comparativo leitura × estoque e sua
// exportação para planilha (protegido).
type ComparativoHandler struct {
	uc *appcomp.UseCase
}

// NewComparativoHandler constrói o handler.
func NewComparativoHandler(uc *appcomp.UseCase) *ComparativoHandler {
	return &ComparativoHandler{uc: uc}
}

// Gerar godoc
// @Summary      Comparativo leitura × estoque
// @Description  Agrupa as leituras por item/máscara, cruza com o snapshot de
//               estoque e devolve a diferença assinada de cada grupo, com as
//               divergências primeiro.
// @Tags         comparativo
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do inventário"
// @Success      200  {array}   comparativo.Item
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventarios/{id}/comparativo [get]
func (h *ComparativoHandler) Gerar(c *fiber.Ctx) error {
	itens, err := h.uc.Gerar(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inventário não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(itens)
}

// Exportar godoc
// @Summary      Exportar comparativo para planilha
// @Description  Gera um .xlsx com o comparativo. Comparativo vazio retorna
//               404 — nunca um arquivo vazio.
// @Tags         comparativo
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id  path  string  true  "ID do inventário"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventarios/{id}/comparativo/exportar [get]
func (h *ComparativoHandler) Exportar(c *fiber.Ctx) error {
	arquivo, err := h.uc.Exportar(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inventário não encontrado"})
		}
		if errors.Is(err, domain.ErrSemDados) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "EMPTY", Message: "nenhum dado para exportar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", arquivo.Nome))
	return c.Send(arquivo.Conteudo)
}
