package dto

import "github.com/shopspring/decimal"

// ValorTotalResponse valor total do estoque (soma de preco * quantidade).
type ValorTotalResponse struct {
	ValorTotal decimal.Decimal `json:"valor_total"`
}

// ContagemCategoriaResponse contagem de produtos de uma categoria.
type ContagemCategoriaResponse struct {
	Categoria string `json:"categoria"`
	Total     int64  `json:"total"`
}

// TopMovimentacaoResponse produto com maior volume acumulado de um tipo.
// Encontrado=false quando o livro não tem movimentações do tipo.
type TopMovimentacaoResponse struct {
	Encontrado bool   `json:"encontrado"`
	Nome       string `json:"nome,omitempty"`
	Total      int64  `json:"total,omitempty"`
}
