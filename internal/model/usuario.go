package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Usuario stores system users with role-based access.
// Perfil: "Admin" | "Suporte" | "Controle"
//
// Ativo carries no column default: an explicit false must survive the
// insert, so the default-true rule lives where users are created
// (AuthService.CriarUsuario, cmd/seedadmin).
//
// Senha is stored and compared verbatim — the source system never hashed
// credentials and this port preserves that behavior. Never expose this
// model directly in API responses; use dto.UsuarioResponse.
type Usuario struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Nome      string    `gorm:"not null" json:"nome"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Senha     string    `gorm:"not null" json:"senha"`
	Perfil    string    `gorm:"type:varchar(20);not null" json:"perfil"`
	Ativo     bool      `gorm:"not null" json:"ativo"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Usuario) TableName() string { return "users" }

// BeforeCreate assigns a fresh id unless one was supplied — bulk import
// preserves original ids.
func (u *Usuario) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
