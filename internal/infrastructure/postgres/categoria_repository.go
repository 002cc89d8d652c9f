package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bnsant/estoque-api/internal/domain"
	"github.com/bnsant/estoque-api/internal/domain/entity"
	"github.com/bnsant/estoque-api/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementação da porta CategoriaRepository sobre PostgreSQL (pool ou tx).
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository constrói o adaptador de categorias. Passar pool ou tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Criar persiste uma nova categoria e devolve o ID gerado no próprio struct.
func (r *CategoriaRepo) Criar(ctx context.Context, c *entity.Categoria) error {
	query := `
		INSERT INTO categoria (nome, tamanho, embalagem)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, c.Nome, c.Tamanho, c.Embalagem).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// Atualizar grava nome, tamanho e embalagem. A FK de produto.categoria tem
// ON UPDATE CASCADE: renomear aqui propaga para os produtos.
func (r *CategoriaRepo) Atualizar(ctx context.Context, c *entity.Categoria) error {
	query := `UPDATE categoria SET nome = $2, tamanho = $3, embalagem = $4 WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, c.ID, c.Nome, c.Tamanho, c.Embalagem)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update categoria: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Excluir remove uma categoria. Falha com ErrInvalidInput se ainda houver
// produtos referenciando o nome (restrição de integridade).
func (r *CategoriaRepo) Excluir(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM categoria WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: categoria em uso por produtos", domain.ErrInvalidInput)
		}
		return fmt.Errorf("delete categoria: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Listar devolve todas as categorias na ordem natural das linhas.
func (r *CategoriaRepo) Listar(ctx context.Context) ([]*entity.Categoria, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nome, tamanho, embalagem FROM categoria`)
	if err != nil {
		return nil, fmt.Errorf("listar categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nome, &c.Tamanho, &c.Embalagem); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// BuscarPorID busca uma categoria por ID; nil quando não existe.
func (r *CategoriaRepo) BuscarPorID(ctx context.Context, id int64) (*entity.Categoria, error) {
	var c entity.Categoria
	err := r.q.QueryRow(ctx,
		`SELECT id, nome, tamanho, embalagem FROM categoria WHERE id = $1`, id,
	).Scan(&c.ID, &c.Nome, &c.Tamanho, &c.Embalagem)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar categoria: %w", err)
	}
	return &c, nil
}
