package dto

import "github.com/shopspring/decimal"

// CriarNotebookRequest mirrors the notebook insert schema: required core
// fields, everything else optional. Status and fornecedor are free text by
// design — the store never validates against a fixed enumeration.
type CriarNotebookRequest struct {
	Responsavel     string           `json:"responsavel" validate:"required"`
	UF              string           `json:"uf"          validate:"required"`
	CentroCusto     *string          `json:"centroCusto"`
	Segmento        string           `json:"segmento"    validate:"required"`
	CNPJ            *string          `json:"cnpj"`
	Modelo          string           `json:"modelo"      validate:"required"`
	Fornecedor      string           `json:"fornecedor"  validate:"required"`
	Status          string           `json:"status"      validate:"required"`
	Processador     *string          `json:"processador"`
	Office          *string          `json:"office"`
	SenhaAdmin      *string          `json:"senhaAdmin"`
	Patrimonio      *string          `json:"patrimonio"`
	DataRecebimento *string          `json:"dataRecebimento"`
	Valor           *decimal.Decimal `json:"valor"`
	DataChecagem    *string          `json:"dataChecagem"`
	TermoLink       *string          `json:"termoLink"`
	FotoLink        *string          `json:"fotoLink"`

	ChecklistTermo       *bool `json:"checklistTermo"`
	ChecklistAntivirus   *bool `json:"checklistAntivirus"`
	ChecklistFerramentaA *bool `json:"checklistFerramentaA"`
	ChecklistFerramentaB *bool `json:"checklistFerramentaB"`

	Actor
}
