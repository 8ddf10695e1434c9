package dto

type CriarTerminalRequest struct {
	NumeroRelogio string  `json:"numeroRelogio" validate:"required"`
	Status        string  `json:"status"        validate:"required"`
	UF            string  `json:"uf"            validate:"required"`
	Segmento      string  `json:"segmento"      validate:"required"`
	CentroCusto   *string `json:"centroCusto"`
	StatusNext    *string `json:"statusNext"`
	Observacao    *string `json:"observacao"`
	DataChecagem  *string `json:"dataChecagem"`
	TermoLink     *string `json:"termoLink"`
	FotoLink      *string `json:"fotoLink"`

	Actor
}
