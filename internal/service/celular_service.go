package service

import (
	"context"
	"fmt"

	"github.com/AndreiWRoiko/InvetarioOp/internal/dto"
	"github.com/AndreiWRoiko/InvetarioOp/internal/model"
	"github.com/AndreiWRoiko/InvetarioOp/internal/repository"
)

type CelularService interface {
	Criar(ctx context.Context, req dto.CriarCelularRequest) (*model.Celular, error)
	ObterPorID(ctx context.Context, id string) (*model.Celular, error)
	Listar(ctx context.Context) ([]model.Celular, error)
	Atualizar(ctx context.Context, id string, fields map[string]any, actor dto.Actor) (*model.Celular, error)
	Remover(ctx context.Context, id string, actor dto.Actor) error
}

type celularService struct {
	repo      repository.CelularRepository
	usuarios  repository.UsuarioRepository
	historico HistoricoService
}

func NewCelularService(repo repository.CelularRepository, usuarios repository.UsuarioRepository, historico HistoricoService) CelularService {
	return &celularService{repo: repo, usuarios: usuarios, historico: historico}
}

func celularLabel(c *model.Celular) string {
	return fmt.Sprintf("Celular %s - %s", c.Modelo, c.Responsavel)
}

func (s *celularService) Criar(ctx context.Context, req dto.CriarCelularRequest) (*model.Celular, error) {
	if err := authorizeEquipment(ctx, s.usuarios, req.Actor, model.ActionCriacao); err != nil {
		return nil, err
	}

	c := &model.Celular{
		Responsavel:     req.Responsavel,
		NumeroCelular:   req.NumeroCelular,
		UF:              req.UF,
		CentroCusto:     req.CentroCusto,
		Segmento:        req.Segmento,
		CNPJ:            req.CNPJ,
		Modelo:          req.Modelo,
		Status:          req.Status,
		EmailLogin:      req.EmailLogin,
		SenhaLogin:      req.SenhaLogin,
		EmailSupervisao: req.EmailSupervisao,
		SenhaSupervisao: req.SenhaSupervisao,
		IMEI:            req.IMEI,
		DataRecebimento: req.DataRecebimento,
		Valor:           req.Valor,
		DataChecagem:    req.DataChecagem,
		TermoLink:       req.TermoLink,
		FotoLink:        req.FotoLink,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	if _, err := s.historico.Registrar(ctx, model.ActionCriacao, req.Actor,
		model.EquipmentCelular, c.ID, DetailsCriacao, celularLabel(c)); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *celularService) ObterPorID(ctx context.Context, id string) (*model.Celular, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *celularService) Listar(ctx context.Context) ([]model.Celular, error) {
	return s.repo.List(ctx)
}

func (s *celularService) Atualizar(ctx context.Context, id string, fields map[string]any, actor dto.Actor) (*model.Celular, error) {
	if err := authorizeEquipment(ctx, s.usuarios, actor, model.ActionEdicao); err != nil {
		return nil, err
	}

	c, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	if _, err := s.historico.Registrar(ctx, model.ActionEdicao, actor,
		model.EquipmentCelular, c.ID, DetailsEdicao, celularLabel(c)); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *celularService) Remover(ctx context.Context, id string, actor dto.Actor) error {
	if err := authorizeEquipment(ctx, s.usuarios, actor, model.ActionExclusao); err != nil {
		return err
	}

	c, err := s.repo.FindByID(ctx, id)
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
		model.EquipmentCelular, c.ID, DetailsExclusao, celularLabel(c))
	return err
}
