package service

import (
	"context"
	"fmt"

	"github.com/AndreiWRoiko/InvetarioOp/internal/dto"
	"github.com/AndreiWRoiko/InvetarioOp/internal/model"
	"github.com/AndreiWRoiko/InvetarioOp/internal/repository"
)

type TerminalService interface {
	Criar(ctx context.Context, req dto.CriarTerminalRequest) (*model.Terminal, error)
	ObterPorID(ctx context.Context, id string) (*model.Terminal, error)
	Listar(ctx context.Context) ([]model.Terminal, error)
	Atualizar(ctx context.Context, id string, fields map[string]any, actor dto.Actor) (*model.Terminal, error)
	Remover(ctx context.Context, id string, actor dto.Actor) error
}

type terminalService struct {
	repo      repository.TerminalRepository
	usuarios  repository.UsuarioRepository
	historico HistoricoService
}

func NewTerminalService(repo repository.TerminalRepository, usuarios repository.UsuarioRepository, historico HistoricoService) TerminalService {
	return &terminalService{repo: repo, usuarios: usuarios, historico: historico}
}

// Terminals have no responsável; the display label uses the clock number and
// segment instead.
func terminalLabel(t *model.Terminal) string {
	return fmt.Sprintf("Terminal %s - %s", t.NumeroRelogio, t.Segmento)
}

func (s *terminalService) Criar(ctx context.Context, req dto.CriarTerminalRequest) (*model.Terminal, error) {
	if err := authorizeEquipment(ctx, s.usuarios, req.Actor, model.ActionCriacao); err != nil {
		return nil, err
	}

	t := &model.Terminal{
		NumeroRelogio: req.NumeroRelogio,
		Status:        req.Status,
		UF:            req.UF,
		Segmento:      req.Segmento,
		CentroCusto:   req.CentroCusto,
		StatusNext:    req.StatusNext,
		Observacao:    req.Observacao,
		DataChecagem:  req.DataChecagem,
		TermoLink:     req.TermoLink,
		FotoLink:      req.FotoLink,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	if _, err := s.historico.Registrar(ctx, model.ActionCriacao, req.Actor,
		model.EquipmentTerminal, t.ID, DetailsCriacao, terminalLabel(t)); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *terminalService) ObterPorID(ctx context.Context, id string) (*model.Terminal, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *terminalService) Listar(ctx context.Context) ([]model.Terminal, error) {
	return s.repo.List(ctx)
}

func (s *terminalService) Atualizar(ctx context.Context, id string, fields map[string]any, actor dto.Actor) (*model.Terminal, error) {
	if err := authorizeEquipment(ctx, s.usuarios, actor, model.ActionEdicao); err != nil {
		return nil, err
	}

	t, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	if _, err := s.historico.Registrar(ctx, model.ActionEdicao, actor,
		model.EquipmentTerminal, t.ID, DetailsEdicao, terminalLabel(t)); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *terminalService) Remover(ctx context.Context, id string, actor dto.Actor) error {
	if err := authorizeEquipment(ctx, s.usuarios, actor, model.ActionExclusao); err != nil {
		return err
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return repository.ErrNotFound
	}

	_, err = s.historico.Registrar(ctx, model.ActionExclusao, actor,
		model.EquipmentTerminal, t.ID, DetailsExclusao, terminalLabel(t))
	return err
}
