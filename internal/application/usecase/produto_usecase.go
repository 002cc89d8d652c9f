package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bnsant/estoque-api/internal/application/dto"
	"github.com/bnsant/estoque-api/internal/domain"
	"github.com/bnsant/estoque-api/internal/domain/entity"
	"github.com/bnsant/estoque-api/internal/domain/repository"
)

// ProdutoUseCase casos de uso CRUD de produtos.
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo}
}

// Criar cadastra um novo produto. Nome é a chave de negócio (única).
func (uc *ProdutoUseCase) Criar(ctx context.Context, in dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	if in.Nome == "" || in.Categoria == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Preco.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Produto{
		Nome:       in.Nome,
		Unidade:    in.Unidade,
		Preco:      in.Preco,
		Quantidade: in.Quantidade,
		QtdMinima:  in.QtdMinima,
		QtdMaxima:  in.QtdMaxima,
		Categoria:  in.Categoria,
	}
	if err := uc.repo.Criar(ctx, p); err != nil {
		return nil, err
	}
	return toProdutoResponse(p), nil
}

// Atualizar altera um produto existente. A edição direta de Quantidade é
// autoritativa sobre o saldo e não gera linha no livro de movimentações nem
// avaliação de limiar — movimentações são o caminho com aviso.
func (uc *ProdutoUseCase) Atualizar(ctx context.Context, id int64, in dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	p, err := uc.repo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nome != nil {
		p.Nome = *in.Nome
	}
	if in.Unidade != nil {
		p.Unidade = *in.Unidade
	}
	if in.Preco != nil {
		if in.Preco.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.Preco = *in.Preco
	}
	if in.Quantidade != nil {
		p.Quantidade = *in.Quantidade
	}
	if in.QtdMinima != nil {
		p.QtdMinima = *in.QtdMinima
	}
	if in.QtdMaxima != nil {
		p.QtdMaxima = *in.QtdMaxima
	}
	if in.Categoria != nil {
		p.Categoria = *in.Categoria
	}
	if err := uc.repo.Atualizar(ctx, p); err != nil {
		return nil, err
	}
	return toProdutoResponse(p), nil
}

// AtualizarPreco altera só o preço unitário de um produto.
func (uc *ProdutoUseCase) AtualizarPreco(ctx context.Context, id int64, preco decimal.Decimal) error {
	if preco.IsNegative() {
		return domain.ErrInvalidInput
	}
	return uc.repo.AtualizarPreco(ctx, id, preco)
}

// ReajustarPrecos aplica um percentual ao preço de todos os produtos ou só aos
// da categoria informada. Devolve quantos produtos foram reajustados.
func (uc *ProdutoUseCase) ReajustarPrecos(ctx context.Context, in dto.ReajustePrecosRequest) (*dto.ReajustePrecosResponse, error) {
	// Reajuste de -100% ou além zeraria ou negativaria todos os preços.
	if in.Percentual.LessThanOrEqual(decimal.NewFromInt(-100)) {
		return nil, domain.ErrInvalidInput
	}
	n, err := uc.repo.ReajustarPrecos(ctx, in.Percentual, in.Categoria)
	if err != nil {
		return nil, err
	}
	return &dto.ReajustePrecosResponse{ProdutosReajustados: n}, nil
}

// Excluir remove um produto por ID.
func (uc *ProdutoUseCase) Excluir(ctx context.Context, id int64) error {
	return uc.repo.Excluir(ctx, id)
}

// Listar devolve produtos com filtros opcionais: nome (substring) e/ou
// categoria; ordenar="nome" devolve em ordem alfabética.
func (uc *ProdutoUseCase) Listar(ctx context.Context, nome, categoria, ordenar string) ([]dto.ProdutoResponse, error) {
	var (
		list []*entity.Produto
		err  error
	)
	switch {
	case nome != "" && categoria != "":
		list, err = uc.repo.BuscarPorNomeECategoria(ctx, nome, categoria)
	case nome != "":
		list, err = uc.repo.BuscarPorNomeParcial(ctx, nome)
	case categoria != "":
		list, err = uc.repo.BuscarPorCategoria(ctx, categoria)
	case ordenar == "nome":
		list, err = uc.repo.ListarOrdenadoPorNome(ctx)
	default:
		list, err = uc.repo.Listar(ctx)
	}
	if err != nil {
		return nil, err
	}
	return toProdutoResponses(list), nil
}

// ListarAbaixoDoMinimo devolve produtos fora dos limiares, mais críticos primeiro.
func (uc *ProdutoUseCase) ListarAbaixoDoMinimo(ctx context.Context) ([]dto.ProdutoResponse, error) {
	list, err := uc.repo.ListarAbaixoDoMinimo(ctx)
	if err != nil {
		return nil, err
	}
	return toProdutoResponses(list), nil
}

// ListarCategorias devolve os nomes de categoria em uso por produtos.
func (uc *ProdutoUseCase) ListarCategorias(ctx context.Context) ([]string, error) {
	return uc.repo.ListarCategoriasDistintas(ctx)
}

// BuscarPorID busca um produto por ID.
func (uc *ProdutoUseCase) BuscarPorID(ctx context.Context, id int64) (*dto.ProdutoResponse, error) {
	p, err := uc.repo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProdutoResponse(p), nil
}

// BuscarPorNome busca um produto pela chave de negócio.
func (uc *ProdutoUseCase) BuscarPorNome(ctx context.Context, nome string) (*dto.ProdutoResponse, error) {
	p, err := uc.repo.BuscarPorNome(ctx, nome)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProdutoResponse(p), nil
}

func toProdutoResponse(p *entity.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:         p.ID,
		Nome:       p.Nome,
		Unidade:    p.Unidade,
		Preco:      p.Preco,
		Quantidade: p.Quantidade,
		QtdMinima:  p.QtdMinima,
		QtdMaxima:  p.QtdMaxima,
		Categoria:  p.Categoria,
	}
}

func toProdutoResponses(list []*entity.Produto) []dto.ProdutoResponse {
	items := make([]dto.ProdutoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProdutoResponse(p))
	}
	return items
}
