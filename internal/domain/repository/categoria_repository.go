package repository

import (
	"context"

	"github.com/bnsant/estoque-api/internal/domain/entity"
)

// CategoriaRepository porta de persistência de categorias.
type CategoriaRepository interface {
	Criar(ctx context.Context, c *entity.Categoria) error
	Atualizar(ctx context.Context, c *entity.Categoria) error
	Excluir(ctx context.Context, id int64) error
	Listar(ctx context.Context) ([]*entity.Categoria, error)
	BuscarPorID(ctx context.Context, id int64) (*entity.Categoria, error)
}
