package http

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bnsant/estoque-api/internal/application/dto"
	"github.com/bnsant/estoque-api/internal/application/usecase"
)

// ProdutoHandler trata as rotas CRUD de produtos (protegido).
type ProdutoHandler struct {
	uc *usecase.ProdutoUseCase
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *usecase.ProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

// Criar cadastra um produto.
func (h *ProdutoHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.Criar(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Listar lista produtos; filtros opcionais nome/categoria e ordenar=nome.
func (h *ProdutoHandler) Listar(c *fiber.Ctx) error {
	list, err := h.uc.Listar(c.Context(), c.Query("nome"), c.Query("categoria"), c.Query("ordenar"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ListarCategorias devolve os nomes de categoria em uso por produtos.
func (h *ProdutoHandler) ListarCategorias(c *fiber.Ctx) error {
	nomes, err := h.uc.ListarCategorias(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(nomes)
}

// BuscarPorNome busca um produto pela chave de negócio (nome exato).
func (h *ProdutoHandler) BuscarPorNome(c *fiber.Ctx) error {
	nome, err := url.PathUnescape(c.Params("nome"))
	if err != nil || nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome inválido"})
	}
	resp, err := h.uc.BuscarPorNome(c.Context(), nome)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// BuscarPorID busca um produto por ID.
func (h *ProdutoHandler) BuscarPorID(c *fiber.Ctx) error {
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

// Atualizar altera um produto (edição direta de quantidade é autoritativa,
// sem linha no livro — ver coordenador de movimentação).
func (h *ProdutoHandler) Atualizar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var in dto.AtualizarProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.Atualizar(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// AtualizarPreco altera só o preço de um produto.
func (h *ProdutoHandler) AtualizarPreco(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var in dto.AtualizarPrecoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.AtualizarPreco(c.Context(), id, in.Preco); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "preço atualizado"})
}

// ReajustarPrecos aplica um percentual em massa (todos ou por categoria).
func (h *ProdutoHandler) ReajustarPrecos(c *fiber.Ctx) error {
	var in dto.ReajustePrecosRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.ReajustarPrecos(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Excluir remove um produto.
func (h *ProdutoHandler) Excluir(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Excluir(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseID extrai o :id numérico da rota.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	return id, nil
}
