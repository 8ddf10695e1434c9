package service

import (
	"context"

	"github.com/AndreiWRoiko/InvetarioOp/internal/model"
	"github.com/AndreiWRoiko/InvetarioOp/internal/repository"

	"github.com/google/uuid"
)

// ── In-memory repository stubs ───────────────────────────────────────────────

type stubUsuarioRepo struct {
	users map[string]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[string]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id string) (*model.Usuario, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, id string, fields map[string]any) (*model.Usuario, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if v, ok := fields["nome"].(string); ok {
		u.Nome = v
	}
	if v, ok := fields["email"].(string); ok {
		u.Email = v
	}
	if v, ok := fields["senha"].(string); ok {
		u.Senha = v
	}
	if v, ok := fields["perfil"].(string); ok {
		u.Perfil = v
	}
	if v, ok := fields["ativo"].(bool); ok {
		u.Ativo = v
	}
	return u, nil
}

func (r *stubUsuarioRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

type stubNotebookRepo struct {
	notebooks map[string]*model.Notebook
}

func newStubNotebookRepo() *stubNotebookRepo {
	return &stubNotebookRepo{notebooks: make(map[string]*model.Notebook)}
}

func (r *stubNotebookRepo) Create(_ context.Context, n *model.Notebook) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	r.notebooks[n.ID] = n
	return nil
}

func (r *stubNotebookRepo) FindByID(_ context.Context, id string) (*model.Notebook, error) {
	n, ok := r.notebooks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return n, nil
}

func (r *stubNotebookRepo) List(_ context.Context) ([]model.Notebook, error) {
	out := make([]model.Notebook, 0, len(r.notebooks))
	for _, n := range r.notebooks {
		out = append(out, *n)
	}
	return out, nil
}

func (r *stubNotebookRepo) Update(_ context.Context, id string, fields map[string]any) (*model.Notebook, error) {
	n, ok := r.notebooks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if v, ok := fields["responsavel"].(string); ok {
		n.Responsavel = v
	}
	if v, ok := fields["status"].(string); ok {
		n.Status = v
	}
	if v, ok := fields["modelo"].(string); ok {
		n.Modelo = v
	}
	return n, nil
}

func (r *stubNotebookRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.notebooks[id]; !ok {
		return false, nil
	}
	delete(r.notebooks, id)
	return true, nil
}

type stubCelularRepo struct {
	celulares map[string]*model.Celular
}

func newStubCelularRepo() *stubCelularRepo {
	return &stubCelularRepo{celulares: make(map[string]*model.Celular)}
}

func (r *stubCelularRepo) Create(_ context.Context, c *model.Celular) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	r.celulares[c.ID] = c
	return nil
}

func (r *stubCelularRepo) FindByID(_ context.Context, id string) (*model.Celular, error) {
	c, ok := r.celulares[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

func (r *stubCelularRepo) List(_ context.Context) ([]model.Celular, error) {
	out := make([]model.Celular, 0, len(r.celulares))
	for _, c := range r.celulares {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCelularRepo) Update(_ context.Context, id string, fields map[string]any) (*model.Celular, error) {
	c, ok := r.celulares[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if v, ok := fields["status"].(string); ok {
		c.Status = v
	}
	return c, nil
}

func (r *stubCelularRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.celulares[id]; !ok {
		return false, nil
	}
	delete(r.celulares, id)
	return true, nil
}

type stubTerminalRepo struct {
	terminais map[string]*model.Terminal
}

func newStubTerminalRepo() *stubTerminalRepo {
	return &stubTerminalRepo{terminais: make(map[string]*model.Terminal)}
}

func (r *stubTerminalRepo) Create(_ context.Context, t *model.Terminal) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	r.terminais[t.ID] = t
	return nil
}

func (r *stubTerminalRepo) FindByID(_ context.Context, id string) (*model.Terminal, error) {
	t, ok := r.terminais[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return t, nil
}

func (r *stubTerminalRepo) List(_ context.Context) ([]model.Terminal, error) {
	out := make([]model.Terminal, 0, len(r.terminais))
	for _, t := range r.terminais {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTerminalRepo) Update(_ context.Context, id string, fields map[string]any) (*model.Terminal, error) {
	t, ok := r.terminais[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if v, ok := fields["status"].(string); ok {
		t.Status = v
	}
	return t, nil
}

func (r *stubTerminalRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.terminais[id]; !ok {
		return false, nil
	}
	delete(r.terminais, id)
	return true, nil
}

// stubHistoricoRepo appends in call order so tests can inspect the trail.
type stubHistoricoRepo struct {
	entries []model.Historico
}

func newStubHistoricoRepo() *stubHistoricoRepo { return &stubHistoricoRepo{} }

func (r *stubHistoricoRepo) Create(_ context.Context, h *model.Historico) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	r.entries = append(r.entries, *h)
	return nil
}

func (r *stubHistoricoRepo) ListAll(_ context.Context) ([]model.Historico, error) {
	out := make([]model.Historico, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

func (r *stubHistoricoRepo) ListByEquipment(_ context.Context, equipmentID string) ([]model.Historico, error) {
	var out []model.Historico
	for _, e := range r.entries {
		if e.EquipmentID != nil && *e.EquipmentID == equipmentID {
			out = append(out, e)
		}
	}
	return out, nil
}

// last returns the most recent entry, nil when the trail is empty.
func (r *stubHistoricoRepo) last() *model.Historico {
	if len(r.entries) == 0 {
		return nil
	}
	return &r.entries[len(r.entries)-1]
}
