package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissoesPorPerfil(t *testing.T) {
	cases := []struct {
		perfil string
		want   Permissions
	}{
		{
			perfil: PerfilAdmin,
			want: Permissions{
				ViewEquipment:   true,
				CreateEquipment: true,
				EditEquipment:   true,
				DeleteEquipment: true,
				ManageUsers:     true,
				ViewDashboard:   true,
				ViewHistory:     true,
			},
		},
		{
			perfil: PerfilSuporte,
			want: Permissions{
				ViewEquipment:   true,
				CreateEquipment: true,
				EditEquipment:   true,
				ViewDashboard:   true,
				ViewHistory:     true,
			},
		},
		{
			perfil: PerfilControle,
			want: Permissions{
				ViewDashboard: true,
				ViewHistory:   true,
			},
		},
		{perfil: "Gerente", want: Permissions{}},
		{perfil: "", want: Permissions{}},
		// Perfis are case-sensitive literals.
		{perfil: "admin", want: Permissions{}},
	}

	for _, tc := range cases {
		t.Run(tc.perfil, func(t *testing.T) {
			assert.Equal(t, tc.want, For(tc.perfil))
		})
	}
}

func TestSuporteNuncaExcluiNemGerenciaUsuarios(t *testing.T) {
	p := For(PerfilSuporte)
	assert.False(t, p.DeleteEquipment)
	assert.False(t, p.ManageUsers)
}
