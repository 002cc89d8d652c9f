package http

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bnsant/estoque-api/internal/application/dto"
	"github.com/bnsant/estoque-api/internal/application/estoque"
	"github.com/bnsant/estoque-api/internal/domain/entity"
)

// RegistradorMovimentacao porta do coordenador para o handler (facilita stub em teste).
type RegistradorMovimentacao interface {
	Registrar(ctx context.Context, input estoque.MovimentacaoInput) error
}

// ListadorMovimentacao consultas de leitura do livro.
type ListadorMovimentacao interface {
	Listar(ctx context.Context) ([]*entity.RegistroMovimentacao, error)
	ListarPorProduto(ctx context.Context, produtoID int64) ([]*entity.RegistroMovimentacao, error)
}

// MovimentacaoHandler trata as rotas de movimentação de estoque (protegido).
type MovimentacaoHandler struct {
	registrador RegistradorMovimentacao
	listador    ListadorMovimentacao
}

// NewMovimentacaoHandler constrói o handler.
func NewMovimentacaoHandler(registrador RegistradorMovimentacao, listador ListadorMovimentacao) *MovimentacaoHandler {
	return &MovimentacaoHandler{registrador: registrador, listador: listador}
}

// Registrar godoc
// @Summary      Registrar movimentação de estoque
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimentacaoRequest  true  "produto_id, tipo (Entrada|Saída), quantidade > 0, observacao"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes [post]
func (h *MovimentacaoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarMovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	tipo, err := entity.ParseTipoMovimentacao(in.Tipo)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo deve ser Entrada ou Saída"})
	}
	if in.Quantidade <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantidade deve ser positiva"})
	}
	err = h.registrador.Registrar(c.Context(), estoque.MovimentacaoInput{
		ProdutoID:  in.ProdutoID,
		Tipo:       tipo,
		Quantidade: in.Quantidade,
		Observacao: in.Observacao,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "movimentação registrada"})
}

// Listar devolve todo o livro de movimentações, mais recentes primeiro.
func (h *MovimentacaoHandler) Listar(c *fiber.Ctx) error {
	list, err := h.listador.Listar(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMovimentacaoResponses(list))
}

// ListarPorProduto devolve as movimentações de um produto.
func (h *MovimentacaoHandler) ListarPorProduto(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	list, err := h.listador.ListarPorProduto(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMovimentacaoResponses(list))
}

func toMovimentacaoResponses(list []*entity.RegistroMovimentacao) []dto.MovimentacaoResponse {
	items := make([]dto.MovimentacaoResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovimentacaoResponse{
			ID:               m.ID,
			ProdutoID:        m.ProdutoID,
			Tipo:             m.Tipo.String(),
			Quantidade:       m.Quantidade,
			Observacao:       m.Observacao,
			DataMovimentacao: m.DataMovimentacao,
		})
	}
	return items
}
