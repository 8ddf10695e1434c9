package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audit actions recorded for every equipment mutation.
const (
	ActionCriacao  = "criacao"
	ActionEdicao   = "edicao"
	ActionExclusao = "exclusao"
)

// Equipment types referenced by Historico entries.
const (
	EquipmentNotebook = "notebook"
	EquipmentCelular  = "celular"
	EquipmentTerminal = "terminal"
)

// Historico registra cada ação sobre um equipamento.
// Entries are immutable — the system never updates or deletes them, and
// deleting an equipment record never cascades here.
//
// UserName is denormalized on purpose: it snapshots the actor's display name
// at write time so history keeps rendering after the user is renamed or
// removed. EquipmentID is nullable for the same reason.
type Historico struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Action        string    `gorm:"not null" json:"action"`
	UserID        string    `gorm:"column:user_id;not null" json:"userId"`
	UserName      string    `gorm:"not null" json:"userName"`
	EquipmentType string    `gorm:"not null" json:"equipmentType"`
	EquipmentID   *string   `gorm:"column:equipment_id;index" json:"equipmentId"`
	Details       string    `gorm:"not null" json:"details"`
	Equipment     *string   `json:"equipment"`
	Timestamp     time.Time `gorm:"not null;index" json:"timestamp"`
}

func (Historico) TableName() string { return "historico" }

func (h *Historico) BeforeCreate(*gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	if h.Timestamp.IsZero() {
		h.Timestamp = time.Now()
	}
	return nil
}
