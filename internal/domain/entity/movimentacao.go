package entity

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/bnsant/estoque-api/internal/domain"
)

// TipoMovimentacao é o tipo fechado de movimentação de estoque.
// A forma canônica é a gravada no banco ("Entrada" / "Saída").
type TipoMovimentacao string

const (
	TipoEntrada TipoMovimentacao = "Entrada"
	TipoSaida   TipoMovimentacao = "Saída"
)

// Sinal devolve o multiplicador do delta de saldo: +1 para entrada, -1 para saída.
func (t TipoMovimentacao) Sinal() int64 {
	if t == TipoEntrada {
		return 1
	}
	return -1
}

func (t TipoMovimentacao) String() string { return string(t) }

// removeAcentos decompõe (NFD), remove marcas diacríticas e recompõe (NFC).
var removeAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// ParseTipoMovimentacao normaliza a entrada uma única vez na borda:
// aceita qualquer caixa e com ou sem acento ("saida", "SAÍDA", "Entrada"...).
// Devolve domain.ErrInvalidInput para valores fora do tipo fechado.
func ParseTipoMovimentacao(s string) (TipoMovimentacao, error) {
	plano, _, err := transform.String(removeAcentos, strings.TrimSpace(s))
	if err != nil {
		return "", domain.ErrInvalidInput
	}
	switch strings.ToLower(plano) {
	case "entrada":
		return TipoEntrada, nil
	case "saida":
		return TipoSaida, nil
	}
	return "", domain.ErrInvalidInput
}

// RegistroMovimentacao é uma linha do livro de movimentações (append-only):
// criada apenas pelo coordenador de movimentação, nunca alterada ou excluída.
type RegistroMovimentacao struct {
	ID               int64
	ProdutoID        int64
	Tipo             TipoMovimentacao
	Quantidade       int64 // magnitude, sempre positiva; o sinal vem do Tipo
	Observacao       string
	DataMovimentacao time.Time // carimbada pelo servidor no registro
}
