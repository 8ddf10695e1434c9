package dto

import "github.com/shopspring/decimal"

type CriarCelularRequest struct {
	Responsavel     string           `json:"responsavel"   validate:"required"`
	NumeroCelular   string           `json:"numeroCelular" validate:"required"`
	UF              string           `json:"uf"            validate:"required"`
	CentroCusto     *string          `json:"centroCusto"`
	Segmento        string           `json:"segmento"      validate:"required"`
	CNPJ            *string          `json:"cnpj"`
	Modelo          string           `json:"modelo"        validate:"required"`
	Status          string           `json:"status"        validate:"required"`
	EmailLogin      *string          `json:"emailLogin"`
	SenhaLogin      *string          `json:"senhaLogin"`
	EmailSupervisao *string          `json:"emailSupervisao"`
	SenhaSupervisao *string          `json:"senhaSupervisao"`
	IMEI            *string          `json:"imei"`
	DataRecebimento *string          `json:"dataRecebimento"`
	Valor           *decimal.Decimal `json:"valor"`
	DataChecagem    *string          `json:"dataChecagem"`
	TermoLink       *string          `json:"termoLink"`
	FotoLink        *string          `json:"fotoLink"`

	Actor
}
