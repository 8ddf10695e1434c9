package service

import (
	"context"

	"github.com/AndreiWRoiko/InvetarioOp/internal/dto"
	"github.com/AndreiWRoiko/InvetarioOp/internal/model"
	"github.com/AndreiWRoiko/InvetarioOp/internal/repository"
)

// Sentinel actor recorded when a mutation arrives without identity hints.
// This is a deliberate default, not a failure.
const (
	SystemUserID   = "system"
	SystemUserName = "Sistema"
)

// Audit details, verbatim from the source system.
const (
	DetailsCriacao  = "Cadastrou novo equipamento"
	DetailsEdicao   = "Atualizou informações do equipamento"
	DetailsExclusao = "Removeu equipamento do inventário"
)

// HistoricoService is the audit recorder: an append-only trail of equipment
// mutations, written synchronously right after each successful
// create/update/delete. There is no transaction spanning the mutation and
// its audit entry — if recording fails the mutation stays committed.
type HistoricoService interface {
	Registrar(ctx context.Context, action string, actor dto.Actor, equipmentType, equipmentID, details, label string) (*model.Historico, error)
	ListarTodos(ctx context.Context) ([]model.Historico, error)
	ListarPorEquipamento(ctx context.Context, equipmentID string) ([]model.Historico, error)
}

type historicoService struct {
	repo repository.HistoricoRepository
}

func NewHistoricoService(repo repository.HistoricoRepository) HistoricoService {
	return &historicoService{repo: repo}
}

func (s *historicoService) Registrar(ctx context.Context, action string, actor dto.Actor, equipmentType, equipmentID, details, label string) (*model.Historico, error) {
	userID, userName := actor.UserID, actor.UserName
	if userID == "" {
		userID = SystemUserID
	}
	if userName == "" {
		userName = SystemUserName
	}

	entry := &model.Historico{
		Action:        action,
		UserID:        userID,
		UserName:      userName,
		EquipmentType: equipmentType,
		Details:       details,
	}
	if equipmentID != "" {
		entry.EquipmentID = &equipmentID
	}
	if label != "" {
		entry.Equipment = &label
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *historicoService) ListarTodos(ctx context.Context) ([]model.Historico, error) {
	return s.repo.ListAll(ctx)
}

func (s *historicoService) ListarPorEquipamento(ctx context.Context, equipmentID string) ([]model.Historico, error) {
	return s.repo.ListByEquipment(ctx, equipmentID)
}
