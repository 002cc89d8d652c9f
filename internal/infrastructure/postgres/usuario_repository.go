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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação da porta UsuarioRepository sobre PostgreSQL (pool ou tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador de usuários. Passar pool ou tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Criar persiste um novo usuário.
func (r *UsuarioRepo) Criar(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuario (id, email, senha_hash, nome, papel, status, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.Email, u.SenhaHash, u.Nome, u.Papel, u.Status, u.CriadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// BuscarPorEmail busca um usuário por e-mail; nil quando não existe.
func (r *UsuarioRepo) BuscarPorEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(ctx, `
		SELECT id, email, senha_hash, nome, papel, status, criado_em
		FROM usuario WHERE email = $1`, email,
	).Scan(&u.ID, &u.Email, &u.SenhaHash, &u.Nome, &u.Papel, &u.Status, &u.CriadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	return &u, nil
}
