package repository

import (
	"context"

	"github.com/bnsant/estoque-api/internal/domain/entity"
)

// MovimentacaoRepository porta do livro de movimentações (append-only:
// sem update nem delete — o histórico é imutável).
type MovimentacaoRepository interface {
	// Criar insere o registro carimbando data_movimentacao no servidor.
	Criar(ctx context.Context, m *entity.RegistroMovimentacao) error
	Listar(ctx context.Context) ([]*entity.RegistroMovimentacao, error)
	ListarPorProduto(ctx context.Context, produtoID int64) ([]*entity.RegistroMovimentacao, error)
}
