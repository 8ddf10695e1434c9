package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Terminal is a time-clock device identified by its numeroRelogio.
// StatusNext holds the status planned for the next maintenance window.
type Terminal struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	NumeroRelogio string    `gorm:"not null" json:"numeroRelogio"`
	Status        string    `gorm:"not null" json:"status"`
	UF            string    `gorm:"column:uf;not null" json:"uf"`
	Segmento      string    `gorm:"not null" json:"segmento"`
	CentroCusto   *string   `json:"centroCusto"`
	StatusNext    *string   `json:"statusNext"`
	Observacao    *string   `json:"observacao"`
	DataChecagem  *string   `json:"dataChecagem"`
	TermoLink     *string   `json:"termoLink"`
	FotoLink      *string   `json:"fotoLink"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Terminal) TableName() string { return "terminais" }

func (t *Terminal) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
