package repository

import (
	"context"

	"github.com/AndreiWRoiko/InvetarioOp/internal/model"

	"gorm.io/gorm"
)

type CelularRepository interface {
	Create(ctx context.Context, c *model.Celular) error
	FindByID(ctx context.Context, id string) (*model.Celular, error)
	List(ctx context.Context) ([]model.Celular, error)
	Update(ctx context.Context, id string, fields map[string]any) (*model.Celular, error)
	Delete(ctx context.Context, id string) (bool, error)
}

var celularPatchFields = map[string]string{
	"responsavel":     "responsavel",
	"numeroCelular":   "numero_celular",
	"uf":              "uf",
	"centroCusto":     "centro_custo",
	"segmento":        "segmento",
	"cnpj":            "cnpj",
	"modelo":          "modelo",
	"status":          "status",
	"emailLogin":      "email_login",
	"senhaLogin":      "senha_login",
	"emailSupervisao": "email_supervisao",
	"senhaSupervisao": "senha_supervisao",
	"imei":            "imei",
	"dataRecebimento": "data_recebimento",
	"valor":           "valor",
	"dataChecagem":    "data_checagem",
	"termoLink":       "termo_link",
	"fotoLink":        "foto_link",
}

type celularRepo struct{ db *gorm.DB }

func NewCelularRepository(db *gorm.DB) CelularRepository { return &celularRepo{db: db} }

func (r *celularRepo) Create(ctx context.Context, c *model.Celular) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *celularRepo) FindByID(ctx context.Context, id string) (*model.Celular, error) {
	var c model.Celular
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *celularRepo) List(ctx context.Context) ([]model.Celular, error) {
	var celulares []model.Celular
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&celulares).Error
	return celulares, err
}

func (r *celularRepo) Update(ctx context.Context, id string, fields map[string]any) (*model.Celular, error) {
	cols := equipmentPatch(fields, celularPatchFields)
	res := r.db.WithContext(ctx).Model(&model.Celular{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *celularRepo) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Celular{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
