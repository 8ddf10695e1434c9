package service

import (
	"context"

	"github.com/AndreiWRoiko/InvetarioOp/internal/dto"
	"github.com/AndreiWRoiko/InvetarioOp/internal/repository"
)

// DashboardService computes the dashboard aggregates. Every call is a full
// scan of the three equipment tables — no cache, no staleness window. The
// volume is small enough that this stays cheap.
type DashboardService interface {
	ComputarStats(ctx context.Context) (*dto.DashboardStats, error)
}

type dashboardService struct {
	notebooks repository.NotebookRepository
	celulares repository.CelularRepository
	terminais repository.TerminalRepository
}

func NewDashboardService(notebooks repository.NotebookRepository, celulares repository.CelularRepository, terminais repository.TerminalRepository) DashboardService {
	return &dashboardService{notebooks: notebooks, celulares: celulares, terminais: terminais}
}

// equipmentTuple is the flattened view every equipment record contributes.
// fornecedor is empty for celulares and terminais — only notebooks have one.
type equipmentTuple struct {
	status     string
	uf         string
	segmento   string
	fornecedor string
}

func (s *dashboardService) ComputarStats(ctx context.Context) (*dto.DashboardStats, error) {
	notebooks, err := s.notebooks.List(ctx)
	if err != nil {
		return nil, err
	}
	celulares, err := s.celulares.List(ctx)
	if err != nil {
		return nil, err
	}
	terminais, err := s.terminais.List(ctx)
	if err != nil {
		return nil, err
	}

	tuples := make([]equipmentTuple, 0, len(notebooks)+len(celulares)+len(terminais))
	for _, n := range notebooks {
		tuples = append(tuples, equipmentTuple{status: n.Status, uf: n.UF, segmento: n.Segmento, fornecedor: n.Fornecedor})
	}
	for _, c := range celulares {
		tuples = append(tuples, equipmentTuple{status: c.Status, uf: c.UF, segmento: c.Segmento})
	}
	for _, t := range terminais {
		tuples = append(tuples, equipmentTuple{status: t.Status, uf: t.UF, segmento: t.Segmento})
	}

	stats := &dto.DashboardStats{
		TotalEquipment: len(tuples),
		ByStatus:       make(map[string]int),
		ByUF:           make(map[string]int),
		BySegmento:     make(map[string]int),
		ByFornecedor:   make(map[string]int),
	}
	for _, eq := range tuples {
		stats.ByStatus[eq.status]++
		stats.ByUF[eq.uf]++
		stats.BySegmento[eq.segmento]++
		if eq.fornecedor != "" {
			stats.ByFornecedor[eq.fornecedor]++
		}
	}
	return stats, nil
}
