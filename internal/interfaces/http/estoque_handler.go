package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/olivarmoveis/contagem-api/internal/application/dto"
	"github.com/olivarmoveis/contagem-api/internal/application/estoque"
	"github.com/olivarmoveis/contagem-api/internal/domain"
)

// EstoqueHandler trata a sincronização do snapshot de estoque (protegido).
type EstoqueHandler struct {
	uc *estoque.SincronizarUseCase
}

// NewEstoqueHandler constrói o handler.
func NewEstoqueHandler(uc *estoque.SincronizarUseCase) *EstoqueHandler {
	return &EstoqueHandler{uc: uc}
}

// Sincronizar godoc
// @Summary      Sincronizar estoque do ERP
// @Description  Apaga o snapshot local e baixa o feed completo novamente.
//               Feed vazio zera a tabela e retorna 0 com sucesso.
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SincronizarResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/estoque/sincronizar [post]
func (h *EstoqueHandler) Sincronizar(c *fiber.Ctx) error {
	total, err := h.uc.Sincronizar(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrUpstream) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SincronizarResponse{Mensagem: "estoque sincronizado", Registros: total})
}
