package estoque

import (
	"context"

	"github.com/bnsant/estoque-api/internal/domain"
	"github.com/bnsant/estoque-api/internal/domain/entity"
	"github.com/bnsant/estoque-api/internal/domain/repository"
	"github.com/bnsant/estoque-api/pkg/logger"
)

// RegistrarMovimentacaoUseCase coordena o registro de movimentação com
// atualização de saldo: insere no livro, aplica o delta no produto e avalia os
// limiares, tudo dentro de uma única transação (Commit/Rollback via TxRunner).
//
// Não há deduplicação: a mesma entrada duas vezes gera duas linhas no livro e
// aplica o delta duas vezes.
type RegistrarMovimentacaoUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewRegistrarMovimentacaoUseCase constrói o coordenador.
func NewRegistrarMovimentacaoUseCase(txRunner TxRunner, log *logger.Logger) *RegistrarMovimentacaoUseCase {
	return &RegistrarMovimentacaoUseCase{txRunner: txRunner, log: log}
}

// MovimentacaoInput entrada para registrar uma movimentação.
// Tipo já validado na borda (tipo fechado); Quantidade é a magnitude, > 0.
type MovimentacaoInput struct {
	ProdutoID  int64
	Tipo       entity.TipoMovimentacao
	Quantidade int64
	Observacao string
}

// Registrar grava a movimentação e ajusta o saldo com semântica tudo-ou-nada:
//
//  1. insere a linha no livro com a data carimbada pelo servidor;
//  2. aplica o delta com sinal no saldo (UPDATE condicional por id — a linha
//     fica bloqueada até o commit, serializando movimentações concorrentes do
//     mesmo produto sem lock em nível de aplicação);
//  3. zero linhas afetadas = produto inexistente: rollback e ErrNotFound;
//  4. relê o produto e avalia os limiares — estourar mínimo ou máximo gera
//     apenas um aviso no log, nunca rollback;
//  5. commit. Qualquer erro nos passos 1–3 desfaz tudo: nem linha no livro,
//     nem saldo alterado. A conexão volta ao pool incondicionalmente.
//
// Saldo negativo é permitido; o coordenador só avisa quando cruza o mínimo.
func (uc *RegistrarMovimentacaoUseCase) Registrar(ctx context.Context, input MovimentacaoInput) error {
	if input.Quantidade <= 0 {
		return domain.ErrInvalidInput
	}
	if input.Tipo != entity.TipoEntrada && input.Tipo != entity.TipoSaida {
		return domain.ErrInvalidInput
	}

	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		mov := &entity.RegistroMovimentacao{
			ProdutoID:  input.ProdutoID,
			Tipo:       input.Tipo,
			Quantidade: input.Quantidade,
			Observacao: input.Observacao,
		}
		if err := movRepo.Criar(ctx, mov); err != nil {
			return err
		}

		delta := input.Tipo.Sinal() * input.Quantidade
		linhas, err := produtoRepo.AplicarDelta(ctx, input.ProdutoID, delta)
		if err != nil {
			return err
		}
		if linhas == 0 {
			return domain.ErrNotFound
		}

		uc.verificarLimiares(ctx, produtoRepo, input.Tipo, input.ProdutoID)
		return nil
	})
}

// verificarLimiares relê o produto dentro da tx e avisa quando uma saída deixa
// o saldo abaixo do mínimo ou uma entrada acima do máximo. Só observabilidade:
// falha na releitura também não derruba a transação.
func (uc *RegistrarMovimentacaoUseCase) verificarLimiares(
	ctx context.Context,
	produtoRepo repository.ProdutoRepository,
	tipo entity.TipoMovimentacao,
	produtoID int64,
) {
	p, err := produtoRepo.BuscarPorID(ctx, produtoID)
	if err != nil || p == nil {
		return
	}
	switch {
	case tipo == entity.TipoSaida && p.Quantidade < p.QtdMinima:
		uc.log.Warn().
			Int64("produto_id", p.ID).
			Str("produto", p.Nome).
			Int64("quantidade", p.Quantidade).
			Int64("qtd_minima", p.QtdMinima).
			Msg("produto abaixo da quantidade mínima")
	case tipo == entity.TipoEntrada && p.Quantidade > p.QtdMaxima:
		uc.log.Warn().
			Int64("produto_id", p.ID).
			Str("produto", p.Nome).
			Int64("quantidade", p.Quantidade).
			Int64("qtd_maxima", p.QtdMaxima).
			Msg("produto acima da quantidade máxima")
	}
}
