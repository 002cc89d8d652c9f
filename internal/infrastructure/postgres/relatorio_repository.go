package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bnsant/estoque-api/internal/domain/entity"
	"github.com/bnsant/estoque-api/internal/domain/repository"
)

var _ repository.RelatorioRepository = (*RelatorioRepo)(nil)

// RelatorioRepo consultas agregadas de leitura. Cada relatório é uma única
// query determinística; não há coordenação entre statements.
type RelatorioRepo struct {
	pool *pgxpool.Pool
}

// NewRelatorioRepository constrói o adaptador de relatórios.
func NewRelatorioRepository(pool *pgxpool.Pool) *RelatorioRepo {
	return &RelatorioRepo{pool: pool}
}

// ValorTotalEstoque soma preco * quantidade de todos os produtos.
// COALESCE devolve zero quando não há produtos.
func (r *RelatorioRepo) ValorTotalEstoque(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(preco * quantidade), 0) FROM produto`,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("relatorio.ValorTotalEstoque: %w", err)
	}
	return total, nil
}

// ContagemPorCategoria conta produtos agrupados por categoria.
func (r *RelatorioRepo) ContagemPorCategoria(ctx context.Context) ([]repository.ContagemCategoria, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT categoria, COUNT(*) AS total
		FROM produto
		GROUP BY categoria
		ORDER BY total DESC, categoria ASC`)
	if err != nil {
		return nil, fmt.Errorf("relatorio.ContagemPorCategoria: %w", err)
	}
	defer rows.Close()
	var results []repository.ContagemCategoria
	for rows.Next() {
		var row repository.ContagemCategoria
		if err := rows.Scan(&row.Categoria, &row.Total); err != nil {
			return nil, fmt.Errorf("relatorio.ContagemPorCategoria scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ProdutoMaisMovimentado devolve o produto com maior soma de quantidade para o
// tipo dado (Entrada ou Saída). Sem movimentações, devolve nil (sentinela).
func (r *RelatorioRepo) ProdutoMaisMovimentado(ctx context.Context, tipo entity.TipoMovimentacao) (*repository.TopMovimentacao, error) {
	const query = `
		SELECT p.nome, SUM(rm.quantidade) AS total
		FROM registro_movimentacao rm
		INNER JOIN produto p ON rm.produto_id = p.id
		WHERE rm.tipo_movimentacao = $1
		GROUP BY rm.produto_id, p.nome
		ORDER BY total DESC
		LIMIT 1`
	var top repository.TopMovimentacao
	err := r.pool.QueryRow(ctx, query, tipo.String()).Scan(&top.Nome, &top.Total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("relatorio.ProdutoMaisMovimentado: %w", err)
	}
	return &top, nil
}
