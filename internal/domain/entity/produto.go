package entity

import "github.com/shopspring/decimal"

// Produto representa um item do estoque.
// Nome é a chave de negócio (única); Categoria referencia categoria.nome.
// Quantidade pode ficar fora de [QtdMinima, QtdMaxima] e até negativa:
// a violação gera apenas um aviso, nunca rejeição.
type Produto struct {
	ID         int64
	Nome       string
	Unidade    string          // rótulo da unidade de medida (kg, un, cx...)
	Preco      decimal.Decimal // preço unitário, não negativo
	Quantidade int64           // saldo atual
	QtdMinima  int64
	QtdMaxima  int64
	Categoria  string // associação por nome (FK no schema, com ON UPDATE CASCADE)
}
