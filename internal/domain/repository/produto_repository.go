package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bnsant/estoque-api/internal/domain/entity"
)

// ProdutoRepository porta de persistência de produtos.
// Atualizar é autoritativo para o saldo (pode gravar Quantidade diretamente);
// movimentações passam por AplicarDelta dentro do coordenador transacional.
type ProdutoRepository interface {
	Criar(ctx context.Context, p *entity.Produto) error
	Atualizar(ctx context.Context, p *entity.Produto) error
	AtualizarPreco(ctx context.Context, id int64, preco decimal.Decimal) error
	// ReajustarPrecos aplica um percentual a todos os produtos (ou só aos da
	// categoria, se não vazia). Devolve quantas linhas foram reajustadas.
	ReajustarPrecos(ctx context.Context, percentual decimal.Decimal, categoria string) (int64, error)
	// AplicarDelta soma delta (positivo ou negativo) ao saldo do produto.
	// Devolve as linhas afetadas: zero significa produto inexistente.
	AplicarDelta(ctx context.Context, id int64, delta int64) (int64, error)
	Excluir(ctx context.Context, id int64) error
	Listar(ctx context.Context) ([]*entity.Produto, error)
	ListarOrdenadoPorNome(ctx context.Context) ([]*entity.Produto, error)
	// ListarAbaixoDoMinimo devolve produtos com saldo fora de [min, max],
	// ordenados por quantidade crescente.
	ListarAbaixoDoMinimo(ctx context.Context) ([]*entity.Produto, error)
	BuscarPorID(ctx context.Context, id int64) (*entity.Produto, error)
	BuscarPorNome(ctx context.Context, nome string) (*entity.Produto, error)
	// BuscarPorNomeParcial filtra por substring do nome (case-insensitive).
	BuscarPorNomeParcial(ctx context.Context, nome string) ([]*entity.Produto, error)
	BuscarPorCategoria(ctx context.Context, categoria string) ([]*entity.Produto, error)
	// BuscarPorNomeECategoria filtra por substring do nome e categoria exata.
	BuscarPorNomeECategoria(ctx context.Context, nome, categoria string) ([]*entity.Produto, error)
	ListarCategoriasDistintas(ctx context.Context) ([]string, error)
}
