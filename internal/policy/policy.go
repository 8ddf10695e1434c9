// Package policy maps a user's perfil to the set of permitted actions.
// The mapping is pure data: the same table drives route availability in the
// clients and the server-side re-check applied to equipment mutations.
package policy

// Perfis conhecidos.
const (
	PerfilAdmin    = "Admin"
	PerfilSuporte  = "Suporte"
	PerfilControle = "Controle"
)

// Permissions enumerates what a perfil may do.
type Permissions struct {
	ViewEquipment   bool
	CreateEquipment bool
	EditEquipment   bool
	DeleteEquipment bool
	ManageUsers     bool
	ViewDashboard   bool
	ViewHistory     bool
}

// For returns the permission set for a perfil. Unknown perfis get no
// permissions at all — safer than guessing.
func For(perfil string) Permissions {
	switch perfil {
	case PerfilAdmin:
		return Permissions{
			ViewEquipment:   true,
			CreateEquipment: true,
			EditEquipment:   true,
			DeleteEquipment: true,
			ManageUsers:     true,
			ViewDashboard:   true,
			ViewHistory:     true,
		}
	case PerfilSuporte:
		return Permissions{
			ViewEquipment:   true,
			CreateEquipment: true,
			EditEquipment:   true,
			ViewDashboard:   true,
			ViewHistory:     true,
		}
	case PerfilControle:
		return Permissions{
			ViewDashboard: true,
			ViewHistory:   true,
		}
	default:
		return Permissions{}
	}
}
