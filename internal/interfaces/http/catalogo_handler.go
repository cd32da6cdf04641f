package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/olivarmoveis/contagem-api/internal/application/contagem"
	"github.com/olivarmoveis/contagem-api/internal/application/dto"
	"github.com/olivarmoveis/contagem-api/internal/domain"
)

// CatalogoHandler expõe a pré-validação de código de barras contra o ERP,
// usada pelo coletor antes de registrar a leitura (protegido).
type CatalogoHandler struct {
	resolver contagem.CodigoBarrasResolver
}

// NewCatalogoHandler constrói o handler.
func NewCatalogoHandler(resolver contagem.CodigoBarrasResolver) *CatalogoHandler {
	return &CatalogoHandler{resolver: resolver}
}

// ValidarCodigoBarras godoc
// @Summary      Validar código de barras no catálogo
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Param        codigo  query  string  true  "código de barras"
// @Success      200  {object}  contagem.EtiquetaResolvida
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/validar-codigo-barras [get]
func (h *CatalogoHandler) ValidarCodigoBarras(c *fiber.Ctx) error {
	codigo := c.Query("codigo")
	if codigo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro codigo é obrigatório"})
	}
	etiqueta, err := h.resolver.ResolverCodigoBarras(c.Context(), codigo)
	if err != nil {
		if errors.Is(err, domain.ErrCodigoNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "BARCODE_NOT_FOUND", Message: "código de barras não encontrado no catálogo"})
		}
		if errors.Is(err, domain.ErrUpstream) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(etiqueta)
}
