package repository

import (
	"context"

	"github.com/AndreiWRoiko/InvetarioOp/internal/model"

	"gorm.io/gorm"
)

type TerminalRepository interface {
	Create(ctx context.Context, t *model.Terminal) error
	FindByID(ctx context.Context, id string) (*model.Terminal, error)
	List(ctx context.Context) ([]model.Terminal, error)
	Update(ctx context.Context, id string, fields map[string]any) (*model.Terminal, error)
	Delete(ctx context.Context, id string) (bool, error)
}

var terminalPatchFields = map[string]string{
	"numeroRelogio": "numero_relogio",
	"status":        "status",
	"uf":            "uf",
	"segmento":      "segmento",
	"centroCusto":   "centro_custo",
	"statusNext":    "status_next",
	"observacao":    "observacao",
	"dataChecagem":  "data_checagem",
	"termoLink":     "termo_link",
	"fotoLink":      "foto_link",
}

type terminalRepo struct{ db *gorm.DB }

func NewTerminalRepository(db *gorm.DB) TerminalRepository { return &terminalRepo{db: db} }

func (r *terminalRepo) Create(ctx context.Context, t *model.Terminal) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *terminalRepo) FindByID(ctx context.Context, id string) (*model.Terminal, error) {
	var t model.Terminal
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (r *terminalRepo) List(ctx context.Context) ([]model.Terminal, error) {
	var terminais []model.Terminal
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&terminais).Error
	return terminais, err
}

func (r *terminalRepo) Update(ctx context.Context, id string, fields map[string]any) (*model.Terminal, error) {
	cols := equipmentPatch(fields, terminalPatchFields)
	res := r.db.WithContext(ctx).Model(&model.Terminal{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *terminalRepo) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Terminal{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
