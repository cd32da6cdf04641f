package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/olivarmoveis/contagem-api/internal/application/contagem"
	"github.com/olivarmoveis/contagem-api/internal/application/dto"
	"github.com/olivarmoveis/contagem-api/internal/domain"
)

// InventarioHandler trata o ciclo de vida dos inventários e as leituras
// de código de barras (protegido).
type InventarioHandler struct {
	uc      *contagem.UseCase
	leitura *contagem.RegistrarLeituraUseCase
}

// NewInventarioHandler constrói o handler.
func NewInventarioHandler(uc *contagem.UseCase, leitura *contagem.RegistrarLeituraUseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc, leitura: leitura}
}

// Criar godoc
// @Summary      Abrir novo inventário
// @Tags         inventarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarInventarioRequest  true  "nome da contagem"
// @Success      201   {object}  dto.InventarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventarios [post]
func (h *InventarioHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarInventarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	inv, err := h.uc.Criar(c.Context(), in.Nome)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome do inventário é obrigatório"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToInventarioResponse(inv))
}

// Listar godoc
// @Summary      Listar inventários
// @Tags         inventarios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InventarioResponse
// @Router       /api/inventarios [get]
func (h *InventarioHandler) Listar(c *fiber.Ctx) error {
	list, err := h.uc.Listar(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	resp := make([]dto.InventarioResponse, 0, len(list))
	for _, inv := range list {
		resp = append(resp, dto.ToInventarioResponse(inv))
	}
	return c.JSON(resp)
}

// Fechar godoc
// @Summary      Fechar inventário
// @Description  Transição única Aberto → Fechado. Segunda chamada retorna 409
//               sem alterar status nem data_fim.
// @Tags         inventarios
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do inventário"
// @Success      200  {object}  dto.InventarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventarios/{id}/fechar [put]
func (h *InventarioHandler) Fechar(c *fiber.Ctx) error {
	inv, err := h.uc.Fechar(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inventário não encontrado"})
		}
		if errors.Is(err, domain.ErrInventarioJaFechado) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_CLOSED", Message: "inventário já está fechado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToInventarioResponse(inv))
}

// Deletar godoc
// @Summary      Deletar inventário
// @Description  Remove o inventário e todas as suas leituras (cascata).
// @Tags         inventarios
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do inventário"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventarios/{id} [delete]
func (h *InventarioHandler) Deletar(c *fiber.Ctx) error {
	if err := h.uc.Deletar(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inventário não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "inventário deletado"})
}

// RegistrarLeitura godoc
// @Summary      Registrar leitura de código de barras
// @Description  Resolve o código no ERP e grava a leitura. A quantidade vem
//               da etiqueta; código repetido no mesmo inventário é rejeitado.
// @Tags         inventarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do inventário"
// @Param        body  body  dto.RegistrarLeituraRequest  true  "cod_barra_ord"
// @Success      201   {object}  dto.ItemInventarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/inventarios/{id}/itens [post]
func (h *InventarioHandler) RegistrarLeitura(c *fiber.Ctx) error {
	var in dto.RegistrarLeituraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	item, err := h.leitura.Registrar(c.Context(), c.Params("id"), in.CodBarraOrd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cod_barra_ord é obrigatório"})
		case errors.Is(err, domain.ErrInventarioInvalido):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_SESSION", Message: "inventário inexistente ou não está aberto"})
		case errors.Is(err, domain.ErrCodigoNaoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "BARCODE_NOT_FOUND", Message: "código de barras não encontrado no catálogo"})
		case errors.Is(err, domain.ErrQuantidadeInvalida):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "etiqueta sem quantidade válida"})
		case errors.Is(err, domain.ErrItemDuplicado):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "código já lido neste inventário"})
		case errors.Is(err, domain.ErrUpstream):
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToItemInventarioResponse(item))
}

// ListarLeituras godoc
// @Summary      Listar leituras do inventário
// @Tags         inventarios
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do inventário"
// @Success      200  {array}   dto.ItemInventarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventarios/{id}/itens [get]
func (h *InventarioHandler) ListarLeituras(c *fiber.Ctx) error {
	itens, err := h.leitura.Listar(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inventário não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	resp := make([]dto.ItemInventarioResponse, 0, len(itens))
	for _, it := range itens {
		resp = append(resp, dto.ToItemInventarioResponse(it))
	}
	return c.JSON(resp)
}
