package service

import (
	"context"
	"fmt"

	"github.com/AndreiWRoiko/InvetarioOp/internal/dto"
	"github.com/AndreiWRoiko/InvetarioOp/internal/model"
	"github.com/AndreiWRoiko/InvetarioOp/internal/repository"
)

type NotebookService interface {
	Criar(ctx context.Context, req dto.CriarNotebookRequest) (*model.Notebook, error)
	ObterPorID(ctx context.Context, id string) (*model.Notebook, error)
	Listar(ctx context.Context) ([]model.Notebook, error)
	Atualizar(ctx context.Context, id string, fields map[string]any, actor dto.Actor) (*model.Notebook, error)
	Remover(ctx context.Context, id string, actor dto.Actor) error
}

type notebookService struct {
	repo      repository.NotebookRepository
	usuarios  repository.UsuarioRepository
	historico HistoricoService
}

func NewNotebookService(repo repository.NotebookRepository, usuarios repository.UsuarioRepository, historico HistoricoService) NotebookService {
	return &notebookService{repo: repo, usuarios: usuarios, historico: historico}
}

func notebookLabel(n *model.Notebook) string {
	return fmt.Sprintf("Notebook %s - %s", n.Modelo, n.Responsavel)
}

func (s *notebookService) Criar(ctx context.Context, req dto.CriarNotebookRequest) (*model.Notebook, error) {
	if err := authorizeEquipment(ctx, s.usuarios, req.Actor, model.ActionCriacao); err != nil {
		return nil, err
	}

	n := &model.Notebook{
		Responsavel:          req.Responsavel,
		UF:                   req.UF,
		CentroCusto:          req.CentroCusto,
		Segmento:             req.Segmento,
		CNPJ:                 req.CNPJ,
		Modelo:               req.Modelo,
		Fornecedor:           req.Fornecedor,
		Status:               req.Status,
		Processador:          req.Processador,
		Office:               req.Office,
		SenhaAdmin:           req.SenhaAdmin,
		Patrimonio:           req.Patrimonio,
		DataRecebimento:      req.DataRecebimento,
		Valor:                req.Valor,
		DataChecagem:         req.DataChecagem,
		TermoLink:            req.TermoLink,
		FotoLink:             req.FotoLink,
		ChecklistTermo:       boolValue(req.ChecklistTermo),
		ChecklistAntivirus:   boolValue(req.ChecklistAntivirus),
		ChecklistFerramentaA: boolValue(req.ChecklistFerramentaA),
		ChecklistFerramentaB: boolValue(req.ChecklistFerramentaB),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	if _, err := s.historico.Registrar(ctx, model.ActionCriacao, req.Actor,
		model.EquipmentNotebook, n.ID, DetailsCriacao, notebookLabel(n)); err != nil {
		// The notebook is already persisted; the audit failure surfaces as-is.
		return nil, err
	}
	return n, nil
}

func (s *notebookService) ObterPorID(ctx context.Context, id string) (*model.Notebook, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *notebookService) Listar(ctx context.Context) ([]model.Notebook, error) {
	return s.repo.List(ctx)
}

func (s *notebookService) Atualizar(ctx context.Context, id string, fields map[string]any, actor dto.Actor) (*model.Notebook, error) {
	if err := authorizeEquipment(ctx, s.usuarios, actor, model.ActionEdicao); err != nil {
		return nil, err
	}

	n, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	if _, err := s.historico.Registrar(ctx, model.ActionEdicao, actor,
		model.EquipmentNotebook, n.ID, DetailsEdicao, notebookLabel(n)); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *notebookService) Remover(ctx context.Context, id string, actor dto.Actor) error {
	if err := authorizeEquipment(ctx, s.usuarios, actor, model.ActionExclusao); err != nil {
		return err
	}

	// Load first: the audit entry needs the label of the record being removed.
	n, err := s.repo.FindByID(ctx, id)
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
		model.EquipmentNotebook, n.ID, DetailsExclusao, notebookLabel(n))
	return err
}

func boolValue(b *bool) bool {
	return b != nil && *b
}
