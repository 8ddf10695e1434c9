package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Notebook is a tracked laptop assigned to a responsável.
// Fornecedor: MAGNA | OPUS | ONLY | ALLU
// Status: EM USO | DEVOLVER | CORREIO | GUARDADO | TROCA
//
// Date fields (DataRecebimento, DataChecagem) are free-form strings exactly as
// the forms submit them; the system never parses them as calendar dates.
type Notebook struct {
	ID              string           `gorm:"type:varchar(36);primaryKey" json:"id"`
	Responsavel     string           `gorm:"not null" json:"responsavel"`
	UF              string           `gorm:"column:uf;not null" json:"uf"`
	CentroCusto     *string          `json:"centroCusto"`
	Segmento        string           `gorm:"not null" json:"segmento"`
	CNPJ            *string          `gorm:"column:cnpj" json:"cnpj"`
	Modelo          string           `gorm:"not null" json:"modelo"`
	Fornecedor      string           `gorm:"not null" json:"fornecedor"`
	Status          string           `gorm:"not null" json:"status"`
	Processador     *string          `json:"processador"`
	Office          *string          `json:"office"`
	SenhaAdmin      *string          `json:"senhaAdmin"`
	Patrimonio      *string          `json:"patrimonio"`
	DataRecebimento *string          `json:"dataRecebimento"`
	Valor           *decimal.Decimal `gorm:"type:decimal(10,2)" json:"valor"`
	DataChecagem    *string          `json:"dataChecagem"`
	TermoLink       *string          `json:"termoLink"`
	FotoLink        *string          `json:"fotoLink"`

	ChecklistTermo       bool `gorm:"not null;default:false" json:"checklistTermo"`
	ChecklistAntivirus   bool `gorm:"not null;default:false" json:"checklistAntivirus"`
	ChecklistFerramentaA bool `gorm:"not null;default:false" json:"checklistFerramentaA"`
	ChecklistFerramentaB bool `gorm:"not null;default:false" json:"checklistFerramentaB"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Notebook) TableName() string { return "notebooks" }

func (n *Notebook) BeforeCreate(*gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
