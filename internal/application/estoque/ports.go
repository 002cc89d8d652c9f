package estoque

import (
	"context"

	"github.com/bnsant/estoque-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados àquela tx. Garante atomicidade para o coordenador de
// movimentação: ou tudo comita, ou nada fica gravado.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
	) error) error
}
