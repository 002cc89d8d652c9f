package dto

// CategoriaRequest body para POST/PUT /api/categorias.
type CategoriaRequest struct {
	Nome      string `json:"nome"`
	Tamanho   string `json:"tamanho"`
	Embalagem string `json:"embalagem"`
}

// CategoriaResponse representação de categoria nas respostas.
type CategoriaResponse struct {
	ID        int64  `json:"id"`
	Nome      string `json:"nome"`
	Tamanho   string `json:"tamanho"`
	Embalagem string `json:"embalagem"`
}
