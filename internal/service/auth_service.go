package service

import (
	"context"
	"errors"

	"github.com/AndreiWRoiko/InvetarioOp/internal/dto"
	"github.com/AndreiWRoiko/InvetarioOp/internal/model"
	"github.com/AndreiWRoiko/InvetarioOp/internal/repository"
)

// AuthService handles login and user management. Credentials are compared
// verbatim against the stored senha — the source system never hashed
// passwords and this port reproduces that behavior as documented-insecure
// rather than silently changing it.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.UsuarioResponse, error)
	CriarUsuario(ctx context.Context, req dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error)
	ObterUsuario(ctx context.Context, id string) (*dto.UsuarioResponse, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	AtualizarUsuario(ctx context.Context, id string, fields map[string]any) (*dto.UsuarioResponse, error)
	RemoverUsuario(ctx context.Context, id string) error
}

type authService struct {
	repo repository.UsuarioRepository
}

func NewAuthService(repo repository.UsuarioRepository) AuthService {
	return &authService{repo: repo}
}

func toUsuarioResponse(u *model.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Nome:      u.Nome,
		Email:     u.Email,
		Perfil:    u.Perfil,
		Ativo:     u.Ativo,
		CreatedAt: u.CreatedAt,
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCredenciaisInvalidas
		}
		return nil, err
	}
	if user.Senha != req.Senha {
		return nil, ErrCredenciaisInvalidas
	}
	// Inactive is only reported after the credential matched.
	if !user.Ativo {
		return nil, ErrUsuarioInativo
	}
	return toUsuarioResponse(user), nil
}

func (s *authService) CriarUsuario(ctx context.Context, req dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error) {
	// App-level uniqueness pre-check, byte-exact: "User@x" and "user@x"
	// coexist. The unique index is the backstop against concurrent creators.
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailCadastrado
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	ativo := true
	if req.Ativo != nil {
		ativo = *req.Ativo
	}
	user := &model.Usuario{
		Nome:   req.Nome,
		Email:  req.Email,
		Senha:  req.Senha,
		Perfil: req.Perfil,
		Ativo:  ativo,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUsuarioResponse(user), nil
}

func (s *authService) ObterUsuario(ctx context.Context, id string) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUsuarioResponse(user), nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, len(users))
	for i := range users {
		resp[i] = *toUsuarioResponse(&users[i])
	}
	return resp, nil
}

func (s *authService) AtualizarUsuario(ctx context.Context, id string, fields map[string]any) (*dto.UsuarioResponse, error) {
	// Same byte-exact pre-check as create when the patch moves the email,
	// so the unique index surfaces as a client error instead of a 500.
	if email, ok := fields["email"].(string); ok {
		if existing, err := s.repo.FindByEmail(ctx, email); err == nil {
			if existing.ID != id {
				return nil, ErrEmailCadastrado
			}
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	user, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return toUsuarioResponse(user), nil
}

func (s *authService) RemoverUsuario(ctx context.Context, id string) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return repository.ErrNotFound
	}
	return nil
}
