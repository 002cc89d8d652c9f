package entity

import "time"

// Papéis válidos para Usuario.
const (
	PapelAdmin    = "admin"
	PapelOperador = "operador"
)

// Usuario representa um usuário do sistema.
type Usuario struct {
	ID        string
	Email     string
	SenhaHash string // hash bcrypt, nunca em claro após persistir
	Nome      string
	Papel     string // admin, operador
	Status    string // active, inactive
	CriadoEm  time.Time
}
