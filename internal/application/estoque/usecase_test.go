package estoque_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnsant/estoque-api/internal/application/estoque"
	"github.com/bnsant/estoque-api/internal/domain"
	"github.com/bnsant/estoque-api/internal/domain/entity"
	"github.com/bnsant/estoque-api/internal/domain/repository"
	"github.com/bnsant/estoque-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória com a mesma disciplina do banco real: uma transação por vez
// sobre o mesmo estado (espelha o bloqueio de linha do UPDATE condicional) e
// rollback por snapshot quando o callback falha.
// ──────────────────────────────────────────────────────────────────────────────

type bancoFake struct {
	mu           sync.Mutex
	produtos     map[int64]*entity.Produto
	livro        []entity.RegistroMovimentacao
	proximoMovID int64
	falhaCriar   error // injeção de falha no insert da movimentação
}

func novoBancoFake(produtos ...*entity.Produto) *bancoFake {
	b := &bancoFake{produtos: make(map[int64]*entity.Produto)}
	for _, p := range produtos {
		copia := *p
		b.produtos[p.ID] = &copia
	}
	return b
}

func (b *bancoFake) saldo(t *testing.T, id int64) int64 {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.produtos[id]
	require.True(t, ok, "produto %d deve existir", id)
	return p.Quantidade
}

type txRunnerFake struct {
	banco *bancoFake
}

func (r *txRunnerFake) Run(ctx context.Context, fn func(
	movRepo repository.MovimentacaoRepository,
	produtoRepo repository.ProdutoRepository,
) error) error {
	r.banco.mu.Lock()
	defer r.banco.mu.Unlock()

	// Snapshot para rollback
	snapProdutos := make(map[int64]*entity.Produto, len(r.banco.produtos))
	for id, p := range r.banco.produtos {
		copia := *p
		snapProdutos[id] = &copia
	}
	snapLivro := append([]entity.RegistroMovimentacao(nil), r.banco.livro...)
	snapID := r.banco.proximoMovID

	err := fn(&movRepoFake{banco: r.banco}, &produtoRepoFake{banco: r.banco})
	if err != nil {
		r.banco.produtos = snapProdutos
		r.banco.livro = snapLivro
		r.banco.proximoMovID = snapID
		return err
	}
	return nil
}

type movRepoFake struct {
	banco *bancoFake
}

func (f *movRepoFake) Criar(ctx context.Context, m *entity.RegistroMovimentacao) error {
	if f.banco.falhaCriar != nil {
		return f.banco.falhaCriar
	}
	f.banco.proximoMovID++
	m.ID = f.banco.proximoMovID
	m.DataMovimentacao = time.Now()
	f.banco.livro = append(f.banco.livro, *m)
	return nil
}

func (f *movRepoFake) Listar(ctx context.Context) ([]*entity.RegistroMovimentacao, error) {
	list := make([]*entity.RegistroMovimentacao, 0, len(f.banco.livro))
	for i := range f.banco.livro {
		copia := f.banco.livro[i]
		list = append(list, &copia)
	}
	return list, nil
}

func (f *movRepoFake) ListarPorProduto(ctx context.Context, produtoID int64) ([]*entity.RegistroMovimentacao, error) {
	var list []*entity.RegistroMovimentacao
	for i := range f.banco.livro {
		if f.banco.livro[i].ProdutoID == produtoID {
			copia := f.banco.livro[i]
			list = append(list, &copia)
		}
	}
	return list, nil
}

type produtoRepoFake struct {
	banco *bancoFake
}

func (f *produtoRepoFake) AplicarDelta(ctx context.Context, id int64, delta int64) (int64, error) {
	p, ok := f.banco.produtos[id]
	if !ok {
		return 0, nil
	}
	p.Quantidade += delta
	return 1, nil
}

func (f *produtoRepoFake) BuscarPorID(ctx context.Context, id int64) (*entity.Produto, error) {
	p, ok := f.banco.produtos[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

// Demais métodos da porta não são usados pelo coordenador.
func (f *produtoRepoFake) Criar(ctx context.Context, p *entity.Produto) error     { return nil }
func (f *produtoRepoFake) Atualizar(ctx context.Context, p *entity.Produto) error { return nil }
func (f *produtoRepoFake) AtualizarPreco(ctx context.Context, id int64, preco decimal.Decimal) error {
	return nil
}
func (f *produtoRepoFake) ReajustarPrecos(ctx context.Context, percentual decimal.Decimal, categoria string) (int64, error) {
	return 0, nil
}
func (f *produtoRepoFake) Excluir(ctx context.Context, id int64) error { return nil }
func (f *produtoRepoFake) Listar(ctx context.Context) ([]*entity.Produto, error) {
	return nil, nil
}
func (f *produtoRepoFake) ListarOrdenadoPorNome(ctx context.Context) ([]*entity.Produto, error) {
	return nil, nil
}
func (f *produtoRepoFake) ListarAbaixoDoMinimo(ctx context.Context) ([]*entity.Produto, error) {
	return nil, nil
}
func (f *produtoRepoFake) BuscarPorNome(ctx context.Context, nome string) (*entity.Produto, error) {
	return nil, nil
}
func (f *produtoRepoFake) BuscarPorNomeParcial(ctx context.Context, nome string) ([]*entity.Produto, error) {
	return nil, nil
}
func (f *produtoRepoFake) BuscarPorCategoria(ctx context.Context, categoria string) ([]*entity.Produto, error) {
	return nil, nil
}
func (f *produtoRepoFake) BuscarPorNomeECategoria(ctx context.Context, nome, categoria string) ([]*entity.Produto, error) {
	return nil, nil
}
func (f *produtoRepoFake) ListarCategoriasDistintas(ctx context.Context) ([]string, error) {
	return nil, nil
}

// novoUseCase monta o coordenador sobre o banco fake; o buffer captura os avisos.
func novoUseCase(banco *bancoFake) (*estoque.RegistrarMovimentacaoUseCase, *bytes.Buffer) {
	var buf bytes.Buffer
	log := logger.NewWithOutput(&buf, "warn")
	return estoque.NewRegistrarMovimentacaoUseCase(&txRunnerFake{banco: banco}, log), &buf
}

// ──────────────────────────────────────────────────────────────────────────────
// Sinal correto do delta
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_EntradaSomaSaldo(t *testing.T) {
	banco := novoBancoFake(&entity.Produto{ID: 1, Nome: "Arroz", Quantidade: 10, QtdMinima: 2, QtdMaxima: 100})
	uc, _ := novoUseCase(banco)

	err := uc.Registrar(context.Background(), estoque.MovimentacaoInput{
		ProdutoID: 1, Tipo: entity.TipoEntrada, Quantidade: 5, Observacao: "compra",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(15), banco.saldo(t, 1), "entrada de 5 sobre 10 deve dar 15")
	require.Len(t, banco.livro, 1)
	assert.Equal(t, entity.TipoEntrada, banco.livro[0].Tipo)
	assert.Equal(t, int64(5), banco.livro[0].Quantidade)
	assert.False(t, banco.livro[0].DataMovimentacao.IsZero(), "data deve ser carimbada pelo servidor")
}

func TestRegistrar_SaidaSubtraiSaldo(t *testing.T) {
	banco := novoBancoFake(&entity.Produto{ID: 1, Nome: "Arroz", Quantidade: 10, QtdMinima: 0, QtdMaxima: 100})
	uc, _ := novoUseCase(banco)

	err := uc.Registrar(context.Background(), estoque.MovimentacaoInput{
		ProdutoID: 1, Tipo: entity.TipoSaida, Quantidade: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(6), banco.saldo(t, 1), "saída de 4 sobre 10 deve dar 6")
}

// Saldo negativo é permitido: o coordenador não proíbe descer abaixo de zero.
func TestRegistrar_SaldoNegativoPermitido(t *testing.T) {
	banco := novoBancoFake(&entity.Produto{ID: 1, Nome: "Arroz", Quantidade: 3, QtdMinima: 0, QtdMaxima: 100})
	uc, _ := novoUseCase(banco)

	err := uc.Registrar(context.Background(), estoque.MovimentacaoInput{
		ProdutoID: 1, Tipo: entity.TipoSaida, Quantidade: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-7), banco.saldo(t, 1))
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidade e rollback
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_ProdutoInexistente_RollbackTotal(t *testing.T) {
	banco := novoBancoFake(&entity.Produto{ID: 1, Nome: "Arroz", Quantidade: 10})
	uc, _ := novoUseCase(banco)

	err := uc.Registrar(context.Background(), estoque.MovimentacaoInput{
		ProdutoID: 99, Tipo: entity.TipoEntrada, Quantidade: 5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// O insert no livro veio antes do delta, mas o rollback desfez tudo.
	assert.Empty(t, banco.livro, "nenhuma linha deve sobrar no livro")
	assert.Equal(t, int64(10), banco.saldo(t, 1), "nenhum saldo deve mudar")
}

func TestRegistrar_FalhaNoInsert_NadaPersiste(t *testing.T) {
	banco := novoBancoFake(&entity.Produto{ID: 1, Nome: "Arroz", Quantidade: 10})
	banco.falhaCriar = errors.New("insert movimentacao: conexão perdida")
	uc, _ := novoUseCase(banco)

	err := uc.Registrar(context.Background(), estoque.MovimentacaoInput{
		ProdutoID: 1, Tipo: entity.TipoEntrada, Quantidade: 5,
	})
	require.Error(t, err)
	assert.Empty(t, banco.livro)
	assert.Equal(t, int64(10), banco.saldo(t, 1))
}

// Com a FK de produto_id no livro, o insert já rejeita produto inexistente
// antes do UPDATE de saldo rodar: o adaptador mapeia a violação para
// ErrNotFound e o resultado é o mesmo do caminho de zero linhas afetadas.
func TestRegistrar_FKRejeitaInsert_ErrNotFound(t *testing.T) {
	banco := novoBancoFake(&entity.Produto{ID: 1, Nome: "Arroz", Quantidade: 10})
	banco.falhaCriar = fmt.Errorf("%w: produto 99 inexistente", domain.ErrNotFound)
	uc, _ := novoUseCase(banco)

	err := uc.Registrar(context.Background(), estoque.MovimentacaoInput{
		ProdutoID: 99, Tipo: entity.TipoEntrada, Quantidade: 5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, banco.livro)
	assert.Equal(t, int64(10), banco.saldo(t, 1))
}

func TestRegistrar_EntradaInvalida_NaoAbreTransacao(t *testing.T) {
	banco := novoBancoFake(&entity.Produto{ID: 1, Nome: "Arroz", Quantidade: 10})
	uc, _ := novoUseCase(banco)

	err := uc.Registrar(context.Background(), estoque.MovimentacaoInput{
		ProdutoID: 1, Tipo: entity.TipoEntrada, Quantidade: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantidade zero deve ser rejeitada")

	err = uc.Registrar(context.Background(), estoque.MovimentacaoInput{
		ProdutoID: 1, Tipo: entity.TipoMovimentacao("Ajuste"), Quantidade: 5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo fora do tipo fechado deve ser rejeitado")

	assert.Empty(t, banco.livro)
	assert.Equal(t, int64(10), banco.saldo(t, 1))
}

// ──────────────────────────────────────────────────────────────────────────────
// Avisos de limiar (não fatais)
// ──────────────────────────────────────────────────────────────────────────────

// Cenário de referência: produto {id:7, quantidade:10, min:5, max:100};
// Saída de 8 → sucesso, saldo 2, aviso emitido (2 < 5), uma linha no livro.
func TestRegistrar_SaidaAbaixoDoMinimo_AvisaSemBloquear(t *testing.T) {
	banco := novoBancoFake(&entity.Produto{ID: 7, Nome: "Feijão", Quantidade: 10, QtdMinima: 5, QtdMaxima: 100})
	uc, buf := novoUseCase(banco)

	err := uc.Registrar(context.Background(), estoque.MovimentacaoInput{
		ProdutoID: 7, Tipo: entity.TipoSaida, Quantidade: 8, Observacao: "test",
	})
	require.NoError(t, err, "cruzar o mínimo não pode falhar o registro")

	assert.Equal(t, int64(2), banco.saldo(t, 7))
	require.Len(t, banco.livro, 1)
	assert.Equal(t, entity.TipoSaida, banco.livro[0].Tipo)
	assert.Equal(t, int64(8), banco.livro[0].Quantidade)
	assert.Contains(t, buf.String(), "abaixo da quantidade mínima")
}

func TestRegistrar_EntradaAcimaDoMaximo_AvisaSemBloquear(t *testing.T) {
	banco := novoBancoFake(&entity.Produto{ID: 1, Nome: "Arroz", Quantidade: 90, QtdMinima: 5, QtdMaxima: 100})
	uc, buf := novoUseCase(banco)

	err := uc.Registrar(context.Background(), estoque.MovimentacaoInput{
		ProdutoID: 1, Tipo: entity.TipoEntrada, Quantidade: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(110), banco.saldo(t, 1))
	assert.Contains(t, buf.String(), "acima da quantidade máxima")
}

func TestRegistrar_DentroDosLimiares_SemAviso(t *testing.T) {
	banco := novoBancoFake(&entity.Produto{ID: 1, Nome: "Arroz", Quantidade: 10, QtdMinima: 5, QtdMaxima: 100})
	uc, buf := novoUseCase(banco)

	err := uc.Registrar(context.Background(), estoque.MovimentacaoInput{
		ProdutoID: 1, Tipo: entity.TipoSaida, Quantidade: 2,
	})
	require.NoError(t, err)
	assert.Empty(t, buf.String(), "sem cruzamento de limiar não há aviso")
}

// ──────────────────────────────────────────────────────────────────────────────
// Sem proteção de replay e concorrência
// ──────────────────────────────────────────────────────────────────────────────

// Comportamento documentado: a mesma entrada duas vezes gera duas linhas no
// livro e aplica o delta duas vezes — não há deduplicação.
func TestRegistrar_SemProtecaoDeReplay(t *testing.T) {
	banco := novoBancoFake(&entity.Produto{ID: 1, Nome: "Arroz", Quantidade: 10, QtdMaxima: 100})
	uc, _ := novoUseCase(banco)

	input := estoque.MovimentacaoInput{ProdutoID: 1, Tipo: entity.TipoEntrada, Quantidade: 5, Observacao: "nota fiscal 42"}
	require.NoError(t, uc.Registrar(context.Background(), input))
	require.NoError(t, uc.Registrar(context.Background(), input))

	assert.Equal(t, int64(20), banco.saldo(t, 1))
	assert.Len(t, banco.livro, 2)
}

// N entradas concorrentes de 1 sobre saldo 0 devem terminar em exatamente N,
// com N linhas no livro: o bloqueio da linha no UPDATE serializa as transações.
func TestRegistrar_ConcorrenciaSemPerdaDeAtualizacao(t *testing.T) {
	const n = 50
	banco := novoBancoFake(&entity.Produto{ID: 1, Nome: "Arroz", Quantidade: 0, QtdMaxima: 1000})
	uc, _ := novoUseCase(banco)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := uc.Registrar(context.Background(), estoque.MovimentacaoInput{
				ProdutoID: 1, Tipo: entity.TipoEntrada, Quantidade: 1,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(n), banco.saldo(t, 1), "nenhuma atualização pode se perder")
	assert.Len(t, banco.livro, n)
}
