package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bnsant/estoque-api/internal/application/dto"
	"github.com/bnsant/estoque-api/internal/application/usecase"
)

// CategoriaHandler trata as rotas CRUD de categorias (protegido).
type CategoriaHandler struct {
	uc *usecase.CategoriaUseCase
}

// NewCategoriaHandler constrói o handler.
func NewCategoriaHandler(uc *usecase.CategoriaUseCase) *CategoriaHandler {
	return &CategoriaHandler{uc: uc}
}

// Criar cadastra uma categoria.
func (h *CategoriaHandler) Criar(c *fiber.Ctx) error {
	var in dto.CategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.Criar(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Listar lista todas as categorias.
func (h *CategoriaHandler) Listar(c *fiber.Ctx) error {
	list, err := h.uc.Listar(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// BuscarPorID busca uma categoria por ID.
func (h *CategoriaHandler) BuscarPorID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	resp, err := h.uc.BuscarPorID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Atualizar altera uma categoria (rename cascateia para produtos).
func (h *CategoriaHandler) Atualizar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var in dto.CategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.Atualizar(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Excluir remove uma categoria.
func (h *CategoriaHandler) Excluir(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Excluir(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
