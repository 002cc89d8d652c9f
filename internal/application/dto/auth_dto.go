package dto

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
	Nome  string `json:"nome"`
	Papel string `json:"papel"` // admin | operador; default operador
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// UserResponse representação de usuário nas respostas (sem hash).
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Nome  string `json:"nome"`
	Papel string `json:"papel"`
}

// LoginResponse token + usuário autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
