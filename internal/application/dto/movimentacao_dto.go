package dto

import "time"

// RegistrarMovimentacaoRequest body para POST /api/movimentacoes.
// Tipo aceita "Entrada"/"Saída" em qualquer caixa, com ou sem acento.
// A data da movimentação é carimbada pelo servidor e não é aceita do chamador.
type RegistrarMovimentacaoRequest struct {
	ProdutoID  int64  `json:"produto_id"`
	Tipo       string `json:"tipo"`
	Quantidade int64  `json:"quantidade"`
	Observacao string `json:"observacao"`
}

// MovimentacaoResponse uma linha do livro de movimentações.
type MovimentacaoResponse struct {
	ID               int64     `json:"id"`
	ProdutoID        int64     `json:"produto_id"`
	Tipo             string    `json:"tipo"`
	Quantidade       int64     `json:"quantidade"`
	Observacao       string    `json:"observacao"`
	DataMovimentacao time.Time `json:"data_movimentacao"`
}
