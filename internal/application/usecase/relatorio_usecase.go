package usecase

import (
	"context"

	"github.com/bnsant/estoque-api/internal/application/dto"
	"github.com/bnsant/estoque-api/internal/domain/entity"
	"github.com/bnsant/estoque-api/internal/domain/repository"
)

// RelatorioUseCase relatórios agregados de leitura.
type RelatorioUseCase struct {
	repo repository.RelatorioRepository
}

// NewRelatorioUseCase constrói o caso de uso.
func NewRelatorioUseCase(repo repository.RelatorioRepository) *RelatorioUseCase {
	return &RelatorioUseCase{repo: repo}
}

// ValorTotal devolve o valor total do estoque (zero quando vazio).
func (uc *RelatorioUseCase) ValorTotal(ctx context.Context) (*dto.ValorTotalResponse, error) {
	total, err := uc.repo.ValorTotalEstoque(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ValorTotalResponse{ValorTotal: total}, nil
}

// ContagemPorCategoria devolve a contagem de produtos por categoria.
func (uc *RelatorioUseCase) ContagemPorCategoria(ctx context.Context) ([]dto.ContagemCategoriaResponse, error) {
	rows, err := uc.repo.ContagemPorCategoria(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContagemCategoriaResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.ContagemCategoriaResponse{Categoria: row.Categoria, Total: row.Total})
	}
	return items, nil
}

// MaisMovimentado devolve o produto com maior volume do tipo dado.
// Sem movimentações, Encontrado=false ("Nenhum" no sistema original).
func (uc *RelatorioUseCase) MaisMovimentado(ctx context.Context, tipo entity.TipoMovimentacao) (*dto.TopMovimentacaoResponse, error) {
	top, err := uc.repo.ProdutoMaisMovimentado(ctx, tipo)
	if err != nil {
		return nil, err
	}
	if top == nil {
		return &dto.TopMovimentacaoResponse{Encontrado: false}, nil
	}
	return &dto.TopMovimentacaoResponse{Encontrado: true, Nome: top.Nome, Total: top.Total}, nil
}
