package usecase

import (
	"context"

	"github.com/bnsant/estoque-api/internal/application/dto"
	"github.com/bnsant/estoque-api/internal/domain"
	"github.com/bnsant/estoque-api/internal/domain/entity"
	"github.com/bnsant/estoque-api/internal/domain/repository"
)

// CategoriaUseCase casos de uso CRUD de categorias.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase constrói o caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Criar cadastra uma nova categoria.
func (uc *CategoriaUseCase) Criar(ctx context.Context, in dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Categoria{Nome: in.Nome, Tamanho: in.Tamanho, Embalagem: in.Embalagem}
	if err := uc.repo.Criar(ctx, c); err != nil {
		return nil, err
	}
	return toCategoriaResponse(c), nil
}

// Atualizar altera uma categoria; o rename propaga para produtos via FK em cascata.
func (uc *CategoriaUseCase) Atualizar(ctx context.Context, id int64, in dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Categoria{ID: id, Nome: in.Nome, Tamanho: in.Tamanho, Embalagem: in.Embalagem}
	if err := uc.repo.Atualizar(ctx, c); err != nil {
		return nil, err
	}
	return toCategoriaResponse(c), nil
}

// Excluir remove uma categoria por ID.
func (uc *CategoriaUseCase) Excluir(ctx context.Context, id int64) error {
	return uc.repo.Excluir(ctx, id)
}

// Listar devolve todas as categorias.
func (uc *CategoriaUseCase) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	list, err := uc.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoriaResponse(c))
	}
	return items, nil
}

// BuscarPorID busca uma categoria por ID.
func (uc *CategoriaUseCase) BuscarPorID(ctx context.Context, id int64) (*dto.CategoriaResponse, error) {
	c, err := uc.repo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoriaResponse(c), nil
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{ID: c.ID, Nome: c.Nome, Tamanho: c.Tamanho, Embalagem: c.Embalagem}
}
