package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bnsant/estoque-api/internal/domain/entity"
)

// ContagemCategoria resultado da contagem de produtos por categoria.
type ContagemCategoria struct {
	Categoria string
	Total     int64
}

// TopMovimentacao produto com maior volume acumulado de um tipo de movimentação.
type TopMovimentacao struct {
	Nome  string
	Total int64
}

// RelatorioRepository consultas agregadas de leitura (uma query por relatório,
// sem coordenação entre statements). Conjunto vazio devolve o sentinela
// correspondente: zero para o valor total, nil para o top de movimentação.
type RelatorioRepository interface {
	// ValorTotalEstoque soma preco * quantidade de todos os produtos.
	ValorTotalEstoque(ctx context.Context) (decimal.Decimal, error)
	ContagemPorCategoria(ctx context.Context) ([]ContagemCategoria, error)
	// ProdutoMaisMovimentado devolve o produto com maior soma de quantidade
	// para o tipo dado, ou nil se não houver movimentações.
	ProdutoMaisMovimentado(ctx context.Context, tipo entity.TipoMovimentacao) (*TopMovimentacao, error)
}
