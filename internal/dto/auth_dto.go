package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type CriarUsuarioRequest struct {
	Nome   string `json:"nome"   validate:"required,min=1"`
	Email  string `json:"email"  validate:"required,email"`
	Senha  string `json:"senha"  validate:"required,min=1"`
	Perfil string `json:"perfil" validate:"required"`
	Ativo  *bool  `json:"ativo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UsuarioResponse is the only shape a Usuario ever leaves the API in —
// there is deliberately no senha field.
type UsuarioResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Perfil    string    `json:"perfil"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginResponse struct {
	User UsuarioResponse `json:"user"`
}
