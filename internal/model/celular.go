package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Celular is a tracked corporate mobile phone. Login credentials for the
// device accounts are stored in clear text, mirroring the source system.
type Celular struct {
	ID              string           `gorm:"type:varchar(36);primaryKey" json:"id"`
	Responsavel     string           `gorm:"not null" json:"responsavel"`
	NumeroCelular   string           `gorm:"not null" json:"numeroCelular"`
	UF              string           `gorm:"column:uf;not null" json:"uf"`
	CentroCusto     *string          `json:"centroCusto"`
	Segmento        string           `gorm:"not null" json:"segmento"`
	CNPJ            *string          `gorm:"column:cnpj" json:"cnpj"`
	Modelo          string           `gorm:"not null" json:"modelo"`
	Status          string           `gorm:"not null" json:"status"`
	EmailLogin      *string          `json:"emailLogin"`
	SenhaLogin      *string          `json:"senhaLogin"`
	EmailSupervisao *string          `json:"emailSupervisao"`
	SenhaSupervisao *string          `json:"senhaSupervisao"`
	IMEI            *string          `gorm:"column:imei" json:"imei"`
	DataRecebimento *string          `json:"dataRecebimento"`
	Valor           *decimal.Decimal `gorm:"type:decimal(10,2)" json:"valor"`
	DataChecagem    *string          `json:"dataChecagem"`
	TermoLink       *string          `json:"termoLink"`
	FotoLink        *string          `json:"fotoLink"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

func (Celular) TableName() string { return "celulares" }

func (c *Celular) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
