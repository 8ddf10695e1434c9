package repository

import (
	"context"

	"github.com/AndreiWRoiko/InvetarioOp/internal/model"

	"gorm.io/gorm"
)

// HistoricoRepository is append-only: entries are created, never updated or
// deleted. Both queries return newest-first; ties on timestamp fall back to
// id so the order stays stable between calls.
type HistoricoRepository interface {
	Create(ctx context.Context, h *model.Historico) error
	ListAll(ctx context.Context) ([]model.Historico, error)
	ListByEquipment(ctx context.Context, equipmentID string) ([]model.Historico, error)
}

type historicoRepo struct{ db *gorm.DB }

func NewHistoricoRepository(db *gorm.DB) HistoricoRepository { return &historicoRepo{db: db} }

func (r *historicoRepo) Create(ctx context.Context, h *model.Historico) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *historicoRepo) ListAll(ctx context.Context) ([]model.Historico, error) {
	var entries []model.Historico
	err := r.db.WithContext(ctx).Order("timestamp DESC, id DESC").Find(&entries).Error
	return entries, err
}

func (r *historicoRepo) ListByEquipment(ctx context.Context, equipmentID string) ([]model.Historico, error) {
	var entries []model.Historico
	err := r.db.WithContext(ctx).
		Where("equipment_id = ?", equipmentID).
		Order("timestamp DESC, id DESC").
		Find(&entries).Error
	return entries, err
}
