package postgres

import (
	"context"
	"fmt"

	"github.com/bnsant/estoque-api/internal/domain"
	"github.com/bnsant/estoque-api/internal/domain/entity"
	"github.com/bnsant/estoque-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

const movimentacaoCols = `id, produto_id, tipo_movimentacao, quantidade, observacao, data_movimentacao`

// MovimentacaoRepo implementação do livro de movimentações sobre PostgreSQL (pool ou tx).
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

// Criar insere o registro. A data é carimbada pelo servidor (now()), nunca
// vinda do chamador; ID e data gerados voltam no próprio struct.
func (r *MovimentacaoRepo) Criar(ctx context.Context, m *entity.RegistroMovimentacao) error {
	query := `
		INSERT INTO registro_movimentacao (produto_id, tipo_movimentacao, quantidade, observacao, data_movimentacao)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id, data_movimentacao`
	err := r.q.QueryRow(ctx, query,
		m.ProdutoID, m.Tipo.String(), m.Quantidade, m.Observacao,
	).Scan(&m.ID, &m.DataMovimentacao)
	if err != nil {
		// A FK de produto_id rejeita o insert antes do UPDATE de saldo rodar:
		// produto inexistente é ErrNotFound também por este caminho.
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: produto %d inexistente", domain.ErrNotFound, m.ProdutoID)
		}
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	return nil
}

// Listar devolve todo o livro, mais recentes primeiro.
func (r *MovimentacaoRepo) Listar(ctx context.Context) ([]*entity.RegistroMovimentacao, error) {
	return r.listar(ctx, `SELECT `+movimentacaoCols+` FROM registro_movimentacao ORDER BY id DESC`)
}

// ListarPorProduto devolve as movimentações de um produto, mais recentes primeiro.
func (r *MovimentacaoRepo) ListarPorProduto(ctx context.Context, produtoID int64) ([]*entity.RegistroMovimentacao, error) {
	return r.listar(ctx, `
		SELECT `+movimentacaoCols+` FROM registro_movimentacao
		WHERE produto_id = $1 ORDER BY id DESC`, produtoID)
}

func (r *MovimentacaoRepo) listar(ctx context.Context, query string, args ...any) ([]*entity.RegistroMovimentacao, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar movimentacoes: %w", err)
	}
	defer rows.Close()
	var list []*entity.RegistroMovimentacao
	for rows.Next() {
		var m entity.RegistroMovimentacao
		var tipo string
		if err := rows.Scan(&m.ID, &m.ProdutoID, &tipo, &m.Quantidade, &m.Observacao, &m.DataMovimentacao); err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		m.Tipo = entity.TipoMovimentacao(tipo)
		list = append(list, &m)
	}
	return list, rows.Err()
}
