package repository

import (
	"context"

	"github.com/AndreiWRoiko/InvetarioOp/internal/model"

	"gorm.io/gorm"
)

type NotebookRepository interface {
	Create(ctx context.Context, n *model.Notebook) error
	FindByID(ctx context.Context, id string) (*model.Notebook, error)
	List(ctx context.Context) ([]model.Notebook, error)
	// Update merges the supplied JSON fields over the stored record and
	// refreshes updatedAt. Absent fields stay untouched.
	Update(ctx context.Context, id string, fields map[string]any) (*model.Notebook, error)
	// Delete reports whether a record was actually removed.
	Delete(ctx context.Context, id string) (bool, error)
}

var notebookPatchFields = map[string]string{
	"responsavel":          "responsavel",
	"uf":                   "uf",
	"centroCusto":          "centro_custo",
	"segmento":             "segmento",
	"cnpj":                 "cnpj",
	"modelo":               "modelo",
	"fornecedor":           "fornecedor",
	"status":               "status",
	"processador":          "processador",
	"office":               "office",
	"senhaAdmin":           "senha_admin",
	"patrimonio":           "patrimonio",
	"dataRecebimento":      "data_recebimento",
	"valor":                "valor",
	"dataChecagem":         "data_checagem",
	"termoLink":            "termo_link",
	"fotoLink":             "foto_link",
	"checklistTermo":       "checklist_termo",
	"checklistAntivirus":   "checklist_antivirus",
	"checklistFerramentaA": "checklist_ferramenta_a",
	"checklistFerramentaB": "checklist_ferramenta_b",
}

type notebookRepo struct{ db *gorm.DB }

func NewNotebookRepository(db *gorm.DB) NotebookRepository { return &notebookRepo{db: db} }

func (r *notebookRepo) Create(ctx context.Context, n *model.Notebook) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notebookRepo) FindByID(ctx context.Context, id string) (*model.Notebook, error) {
	var n model.Notebook
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&n).Error
	if err != nil {
		return nil, translate(err)
	}
	return &n, nil
}

func (r *notebookRepo) List(ctx context.Context) ([]model.Notebook, error) {
	var notebooks []model.Notebook
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&notebooks).Error
	return notebooks, err
}

func (r *notebookRepo) Update(ctx context.Context, id string, fields map[string]any) (*model.Notebook, error) {
	cols := equipmentPatch(fields, notebookPatchFields)
	res := r.db.WithContext(ctx).Model(&model.Notebook{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *notebookRepo) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Notebook{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
