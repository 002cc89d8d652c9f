package repository

import (
	"context"

	"github.com/bnsant/estoque-api/internal/domain/entity"
)

// UsuarioRepository porta de persistência de usuários.
type UsuarioRepository interface {
	Criar(ctx context.Context, u *entity.Usuario) error
	BuscarPorEmail(ctx context.Context, email string) (*entity.Usuario, error)
}
