package dto

import "github.com/shopspring/decimal"

// CriarProdutoRequest body para POST /api/produtos.
type CriarProdutoRequest struct {
	Nome       string          `json:"nome"`
	Unidade    string          `json:"unidade"`
	Preco      decimal.Decimal `json:"preco"`
	Quantidade int64           `json:"quantidade"`
	QtdMinima  int64           `json:"qtd_minima"`
	QtdMaxima  int64           `json:"qtd_maxima"`
	Categoria  string          `json:"categoria"`
}

// AtualizarProdutoRequest body para PUT /api/produtos/:id. Campos nil mantêm o valor atual.
// Quantidade aqui é autoritativa: edição direta não passa pelo livro de movimentações.
type AtualizarProdutoRequest struct {
	Nome       *string          `json:"nome"`
	Unidade    *string          `json:"unidade"`
	Preco      *decimal.Decimal `json:"preco"`
	Quantidade *int64           `json:"quantidade"`
	QtdMinima  *int64           `json:"qtd_minima"`
	QtdMaxima  *int64           `json:"qtd_maxima"`
	Categoria  *string          `json:"categoria"`
}

// AtualizarPrecoRequest body para PATCH /api/produtos/:id/preco.
type AtualizarPrecoRequest struct {
	Preco decimal.Decimal `json:"preco"`
}

// ReajustePrecosRequest body para POST /api/produtos/reajuste-precos.
// Percentual positivo aumenta, negativo reduz; Categoria vazia atinge todos.
type ReajustePrecosRequest struct {
	Percentual decimal.Decimal `json:"percentual"`
	Categoria  string          `json:"categoria"`
}

// ReajustePrecosResponse resultado do reajuste em massa.
type ReajustePrecosResponse struct {
	ProdutosReajustados int64 `json:"produtos_reajustados"`
}

// ProdutoResponse representação de produto nas respostas.
type ProdutoResponse struct {
	ID         int64           `json:"id"`
	Nome       string          `json:"nome"`
	Unidade    string          `json:"unidade"`
	Preco      decimal.Decimal `json:"preco"`
	Quantidade int64           `json:"quantidade"`
	QtdMinima  int64           `json:"qtd_minima"`
	QtdMaxima  int64           `json:"qtd_maxima"`
	Categoria  string          `json:"categoria"`
}
