package service

import (
	"context"
	"errors"
	"time"

	"github.com/AndreiWRoiko/InvetarioOp/internal/dto"
	"github.com/AndreiWRoiko/InvetarioOp/internal/repository"
)

const backupVersion = "1.0"

// BackupService serializes the five tables into a single JSON document and
// loads such documents back. Import is additive: rows whose id already
// exists are skipped, never overwritten. It runs outside the request path
// (cmd/exportjson, cmd/importjson).
type BackupService interface {
	Exportar(ctx context.Context) (*dto.BackupDocument, error)
	Importar(ctx context.Context, doc *dto.BackupDocument) (*dto.ImportResult, error)
}

type backupService struct {
	usuarios  repository.UsuarioRepository
	notebooks repository.NotebookRepository
	celulares repository.CelularRepository
	terminais repository.TerminalRepository
	historico repository.HistoricoRepository
}

func NewBackupService(
	usuarios repository.UsuarioRepository,
	notebooks repository.NotebookRepository,
	celulares repository.CelularRepository,
	terminais repository.TerminalRepository,
	historico repository.HistoricoRepository,
) BackupService {
	return &backupService{
		usuarios:  usuarios,
		notebooks: notebooks,
		celulares: celulares,
		terminais: terminais,
		historico: historico,
	}
}

func (s *backupService) Exportar(ctx context.Context) (*dto.BackupDocument, error) {
	users, err := s.usuarios.List(ctx)
	if err != nil {
		return nil, err
	}
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
	historico, err := s.historico.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.BackupDocument{
		ExportDate: time.Now(),
		Version:    backupVersion,
		Data: dto.BackupData{
			Users:     users,
			Notebooks: notebooks,
			Celulares: celulares,
			Terminais: terminais,
			Historico: historico,
		},
		Stats: dto.TableStats{
			Users:     len(users),
			Notebooks: len(notebooks),
			Celulares: len(celulares),
			Terminais: len(terminais),
			Historico: len(historico),
		},
	}, nil
}

func (s *backupService) Importar(ctx context.Context, doc *dto.BackupDocument) (*dto.ImportResult, error) {
	if doc == nil {
		return nil, errors.New("documento de backup vazio")
	}
	result := &dto.ImportResult{}

	for i := range doc.Data.Users {
		u := doc.Data.Users[i]
		if _, err := s.usuarios.FindByID(ctx, u.ID); err == nil {
			result.Skipped.Users++
			continue
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		// A fresh id can still trip the email unique index (reseeded
		// databases); skip that row instead of aborting mid-import.
		if _, err := s.usuarios.FindByEmail(ctx, u.Email); err == nil {
			result.Skipped.Users++
			continue
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if err := s.usuarios.Create(ctx, &u); err != nil {
			return nil, err
		}
		result.Imported.Users++
	}

	for i := range doc.Data.Notebooks {
		n := doc.Data.Notebooks[i]
		if _, err := s.notebooks.FindByID(ctx, n.ID); err == nil {
			result.Skipped.Notebooks++
			continue
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if err := s.notebooks.Create(ctx, &n); err != nil {
			return nil, err
		}
		result.Imported.Notebooks++
	}

	for i := range doc.Data.Celulares {
		c := doc.Data.Celulares[i]
		if _, err := s.celulares.FindByID(ctx, c.ID); err == nil {
			result.Skipped.Celulares++
			continue
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if err := s.celulares.Create(ctx, &c); err != nil {
			return nil, err
		}
		result.Imported.Celulares++
	}

	for i := range doc.Data.Terminais {
		t := doc.Data.Terminais[i]
		if _, err := s.terminais.FindByID(ctx, t.ID); err == nil {
			result.Skipped.Terminais++
			continue
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if err := s.terminais.Create(ctx, &t); err != nil {
			return nil, err
		}
		result.Imported.Terminais++
	}

	// Historico has no FindByID on purpose (the API never addresses single
	// entries); dedupe via the full list instead.
	existing, err := s.historico.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(existing))
	for _, h := range existing {
		seen[h.ID] = true
	}
	for i := range doc.Data.Historico {
		h := doc.Data.Historico[i]
		if seen[h.ID] {
			result.Skipped.Historico++
			continue
		}
		if err := s.historico.Create(ctx, &h); err != nil {
			return nil, err
		}
		result.Imported.Historico++
	}

	return result, nil
}
