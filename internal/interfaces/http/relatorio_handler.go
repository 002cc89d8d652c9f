package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bnsant/estoque-api/internal/application/dto"
	"github.com/bnsant/estoque-api/internal/application/usecase"
	"github.com/bnsant/estoque-api/internal/domain/entity"
)

// RelatorioHandler trata as rotas de relatório (protegido, só leitura).
type RelatorioHandler struct {
	uc        *usecase.RelatorioUseCase
	produtoUC *usecase.ProdutoUseCase
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(uc *usecase.RelatorioUseCase, produtoUC *usecase.ProdutoUseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc, produtoUC: produtoUC}
}

// ValorTotal devolve o valor total do estoque.
func (h *RelatorioHandler) ValorTotal(c *fiber.Ctx) error {
	resp, err := h.uc.ValorTotal(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ContagemCategorias devolve a contagem de produtos por categoria.
func (h *RelatorioHandler) ContagemCategorias(c *fiber.Ctx) error {
	resp, err := h.uc.ContagemPorCategoria(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// EstoqueBaixo lista produtos fora dos limiares, mais críticos primeiro.
func (h *RelatorioHandler) EstoqueBaixo(c *fiber.Ctx) error {
	list, err := h.produtoUC.ListarAbaixoDoMinimo(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// MaisMovimentado devolve o produto com maior volume de ?tipo=Entrada|Saída.
func (h *RelatorioHandler) MaisMovimentado(c *fiber.Ctx) error {
	tipo, err := entity.ParseTipoMovimentacao(c.Query("tipo", "Entrada"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo deve ser Entrada ou Saída"})
	}
	resp, err := h.uc.MaisMovimentado(c.Context(), tipo)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
