package service

import (
	"context"
	"errors"

	"github.com/AndreiWRoiko/InvetarioOp/internal/dto"
	"github.com/AndreiWRoiko/InvetarioOp/internal/model"
	"github.com/AndreiWRoiko/InvetarioOp/internal/policy"
	"github.com/AndreiWRoiko/InvetarioOp/internal/repository"
)

// authorizeEquipment re-checks the stored perfil of an identified actor
// against the attempted equipment action. The source system only gated the
// UI; this closes that gap to the extent the token-less protocol allows:
// when _userId resolves to a stored user, the stored perfil decides. An
// anonymous or unresolvable actor keeps the documented "system" fallback
// path and passes.
func authorizeEquipment(ctx context.Context, usuarios repository.UsuarioRepository, actor dto.Actor, action string) error {
	if actor.IsAnonymous() || actor.UserID == SystemUserID {
		return nil
	}
	u, err := usuarios.FindByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}

	perms := policy.For(u.Perfil)
	allowed := false
	switch action {
	case model.ActionCriacao:
		allowed = perms.CreateEquipment
	case model.ActionEdicao:
		allowed = perms.EditEquipment
	case model.ActionExclusao:
		allowed = perms.DeleteEquipment
	}
	if !allowed {
		return ErrPermissaoNegada
	}
	return nil
}
