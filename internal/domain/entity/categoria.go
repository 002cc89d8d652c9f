package entity

// Categoria agrupa produtos por nome.
type Categoria struct {
	ID        int64
	Nome      string
	Tamanho   string // rótulo de tamanho (P, M, G...)
	Embalagem string // rótulo de embalagem (caixa, saco, fardo...)
}
