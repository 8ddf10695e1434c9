package repository

import (
	"context"

	"github.com/AndreiWRoiko/InvetarioOp/internal/model"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	FindByID(ctx context.Context, id string) (*model.Usuario, error)
	// FindByEmail is a byte-exact match — no case normalization.
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	List(ctx context.Context) ([]model.Usuario, error)
	Update(ctx context.Context, id string, fields map[string]any) (*model.Usuario, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// usuarioPatchFields maps PATCH body keys to columns. id and createdAt are
// deliberately absent: neither is mutable.
var usuarioPatchFields = map[string]string{
	"nome":   "nome",
	"email":  "email",
	"senha":  "senha",
	"perfil": "perfil",
	"ativo":  "ativo",
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) FindByID(ctx context.Context, id string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *usuarioRepo) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *usuarioRepo) List(ctx context.Context) ([]model.Usuario, error) {
	var users []model.Usuario
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error
	return users, err
}

func (r *usuarioRepo) Update(ctx context.Context, id string, fields map[string]any) (*model.Usuario, error) {
	cols := patchColumns(fields, usuarioPatchFields)
	if len(cols) > 0 {
		res := r.db.WithContext(ctx).Model(&model.Usuario{}).Where("id = ?", id).Updates(cols)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return r.FindByID(ctx, id)
}

func (r *usuarioRepo) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Usuario{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
