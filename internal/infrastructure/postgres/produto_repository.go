package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/bnsant/estoque-api/internal/domain"
	"github.com/bnsant/estoque-api/internal/domain/entity"
	"github.com/bnsant/estoque-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

const produtoCols = `id, nome, unidade, preco, quantidade, qtd_minima, qtd_maxima, categoria`

// ProdutoRepo implementação da porta ProdutoRepository sobre PostgreSQL (pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de produtos. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// Criar persiste um novo produto e devolve o ID gerado no próprio struct.
func (r *ProdutoRepo) Criar(ctx context.Context, p *entity.Produto) error {
	query := `
		INSERT INTO produto (nome, unidade, preco, quantidade, qtd_minima, qtd_maxima, categoria)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Nome, p.Unidade, p.Preco, p.Quantidade, p.QtdMinima, p.QtdMaxima, p.Categoria,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: categoria %q não cadastrada", domain.ErrInvalidInput, p.Categoria)
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// Atualizar grava todos os campos editáveis, inclusive o saldo: a edição
// direta é autoritativa e não passa pelo livro de movimentações.
func (r *ProdutoRepo) Atualizar(ctx context.Context, p *entity.Produto) error {
	query := `
		UPDATE produto
		SET nome = $2, unidade = $3, preco = $4, quantidade = $5, qtd_minima = $6, qtd_maxima = $7, categoria = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.Nome, p.Unidade, p.Preco, p.Quantidade, p.QtdMinima, p.QtdMaxima, p.Categoria,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update produto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AtualizarPreco altera somente o preço unitário.
func (r *ProdutoRepo) AtualizarPreco(ctx context.Context, id int64, preco decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx, `UPDATE produto SET preco = $2 WHERE id = $1`, id, preco)
	if err != nil {
		return fmt.Errorf("update preco: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReajustarPrecos aplica o percentual em massa; categoria vazia atinge todos.
func (r *ProdutoRepo) ReajustarPrecos(ctx context.Context, percentual decimal.Decimal, categoria string) (int64, error) {
	fator := decimal.NewFromInt(1).Add(percentual.Div(decimal.NewFromInt(100)))
	query := `UPDATE produto SET preco = round(preco * $1, 2)`
	args := []any{fator}
	if categoria != "" {
		query += ` WHERE categoria = $2`
		args = append(args, categoria)
	}
	cmd, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("reajustar precos: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// AplicarDelta soma o delta ao saldo com UPDATE condicional. A linha fica
// bloqueada até o fim da transação, o que serializa movimentações concorrentes
// do mesmo produto. Zero linhas afetadas = produto inexistente.
func (r *ProdutoRepo) AplicarDelta(ctx context.Context, id int64, delta int64) (int64, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE produto SET quantidade = quantidade + $2 WHERE id = $1`,
		id, delta,
	)
	if err != nil {
		return 0, fmt.Errorf("aplicar delta: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Excluir remove um produto por ID.
func (r *ProdutoRepo) Excluir(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM produto WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Listar devolve todos os produtos na ordem natural das linhas.
func (r *ProdutoRepo) Listar(ctx context.Context) ([]*entity.Produto, error) {
	return r.listar(ctx, `SELECT `+produtoCols+` FROM produto`)
}

// ListarOrdenadoPorNome devolve todos os produtos em ordem alfabética.
func (r *ProdutoRepo) ListarOrdenadoPorNome(ctx context.Context) ([]*entity.Produto, error) {
	return r.listar(ctx, `SELECT `+produtoCols+` FROM produto ORDER BY nome ASC`)
}

// ListarAbaixoDoMinimo devolve produtos com saldo fora de [min, max],
// os mais críticos (menor quantidade) primeiro.
func (r *ProdutoRepo) ListarAbaixoDoMinimo(ctx context.Context) ([]*entity.Produto, error) {
	return r.listar(ctx, `
		SELECT `+produtoCols+` FROM produto
		WHERE quantidade < qtd_minima OR quantidade > qtd_maxima
		ORDER BY quantidade ASC`)
}

// BuscarPorID busca um produto por ID; nil quando não existe.
func (r *ProdutoRepo) BuscarPorID(ctx context.Context, id int64) (*entity.Produto, error) {
	return r.buscarUm(ctx, `SELECT `+produtoCols+` FROM produto WHERE id = $1`, id)
}

// BuscarPorNome busca pela chave de negócio (nome exato); nil quando não existe.
func (r *ProdutoRepo) BuscarPorNome(ctx context.Context, nome string) (*entity.Produto, error) {
	return r.buscarUm(ctx, `SELECT `+produtoCols+` FROM produto WHERE nome = $1`, nome)
}

// BuscarPorNomeParcial filtra por substring do nome (case-insensitive).
func (r *ProdutoRepo) BuscarPorNomeParcial(ctx context.Context, nome string) ([]*entity.Produto, error) {
	return r.listar(ctx, `
		SELECT `+produtoCols+` FROM produto
		WHERE nome ILIKE '%' || $1 || '%'`, nome)
}

// BuscarPorCategoria lista os produtos de uma categoria.
func (r *ProdutoRepo) BuscarPorCategoria(ctx context.Context, categoria string) ([]*entity.Produto, error) {
	return r.listar(ctx, `SELECT `+produtoCols+` FROM produto WHERE categoria = $1`, categoria)
}

// BuscarPorNomeECategoria filtra por substring do nome (case-insensitive) e categoria exata.
func (r *ProdutoRepo) BuscarPorNomeECategoria(ctx context.Context, nome, categoria string) ([]*entity.Produto, error) {
	return r.listar(ctx, `
		SELECT `+produtoCols+` FROM produto
		WHERE nome ILIKE '%' || $1 || '%' AND categoria = $2`, nome, categoria)
}

// ListarCategoriasDistintas devolve os nomes de categoria em uso por produtos.
func (r *ProdutoRepo) ListarCategoriasDistintas(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT DISTINCT categoria FROM produto ORDER BY categoria`)
	if err != nil {
		return nil, fmt.Errorf("listar categorias: %w", err)
	}
	defer rows.Close()
	var nomes []string
	for rows.Next() {
		var nome string
		if err := rows.Scan(&nome); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		nomes = append(nomes, nome)
	}
	return nomes, rows.Err()
}

func (r *ProdutoRepo) buscarUm(ctx context.Context, query string, args ...any) (*entity.Produto, error) {
	var p entity.Produto
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.Nome, &p.Unidade, &p.Preco, &p.Quantidade, &p.QtdMinima, &p.QtdMaxima, &p.Categoria,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar produto: %w", err)
	}
	return &p, nil
}

func (r *ProdutoRepo) listar(ctx context.Context, query string, args ...any) ([]*entity.Produto, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		var p entity.Produto
		if err := rows.Scan(&p.ID, &p.Nome, &p.Unidade, &p.Preco, &p.Quantidade, &p.QtdMinima, &p.QtdMaxima, &p.Categoria); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
