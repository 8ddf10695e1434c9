package dto

import (
	"time"

	"github.com/AndreiWRoiko/InvetarioOp/internal/model"
)

// BackupDocument is the single-file JSON layout produced by cmd/exportjson
// and consumed by cmd/importjson. It serializes the five tables verbatim —
// including stored credentials — so treat exported files as sensitive.
type BackupDocument struct {
	ExportDate time.Time  `json:"exportDate"`
	Version    string     `json:"version"`
	Data       BackupData `json:"data"`
	Stats      TableStats `json:"stats"`
}

type BackupData struct {
	Users     []model.Usuario   `json:"users"`
	Notebooks []model.Notebook  `json:"notebooks"`
	Celulares []model.Celular   `json:"celulares"`
	Terminais []model.Terminal  `json:"terminais"`
	Historico []model.Historico `json:"historico"`
}

type TableStats struct {
	Users     int `json:"users"`
	Notebooks int `json:"notebooks"`
	Celulares int `json:"celulares"`
	Terminais int `json:"terminais"`
	Historico int `json:"historico"`
}

// ImportResult counts rows actually inserted; rows whose id already existed
// are skipped, never overwritten.
type ImportResult struct {
	Imported TableStats `json:"imported"`
	Skipped  TableStats `json:"skipped"`
}
