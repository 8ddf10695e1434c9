package service

import (
	"context"
	"testing"

	"github.com/AndreiWRoiko/InvetarioOp/internal/dto"
	"github.com/AndreiWRoiko/InvetarioOp/internal/model"
	"github.com/AndreiWRoiko/InvetarioOp/internal/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackupFixture() (BackupService, *stubUsuarioRepo, *stubNotebookRepo, *stubHistoricoRepo) {
	usuarios := newStubUsuarioRepo()
	notebooks := newStubNotebookRepo()
	historico := newStubHistoricoRepo()
	svc := NewBackupService(usuarios, notebooks, newStubCelularRepo(), newStubTerminalRepo(), historico)
	return svc, usuarios, notebooks, historico
}

func TestExportarContagens(t *testing.T) {
	svc, usuarios, notebooks, _ := newBackupFixture()
	ctx := context.Background()

	require.NoError(t, usuarios.Create(ctx, &model.Usuario{Nome: "A", Email: "a@opus.com", Senha: "x", Perfil: policy.PerfilAdmin, Ativo: true}))
	require.NoError(t, notebooks.Create(ctx, &model.Notebook{Responsavel: "A", UF: "SP", Segmento: "Varejo", Modelo: "X", Fornecedor: "OPUS", Status: "EM USO"}))
	require.NoError(t, notebooks.Create(ctx, &model.Notebook{Responsavel: "B", UF: "RJ", Segmento: "Varejo", Modelo: "Y", Fornecedor: "OPUS", Status: "EM USO"}))

	doc, err := svc.Exportar(ctx)
	require.NoError(t, err)

	assert.Equal(t, "1.0", doc.Version)
	assert.False(t, doc.ExportDate.IsZero())
	assert.Equal(t, 1, doc.Stats.Users)
	assert.Equal(t, 2, doc.Stats.Notebooks)
	assert.Equal(t, 0, doc.Stats.Celulares)
	assert.Len(t, doc.Data.Users, 1)
	assert.Len(t, doc.Data.Notebooks, 2)
}

func TestImportarPulaConflitos(t *testing.T) {
	svc, usuarios, notebooks, historico := newBackupFixture()
	ctx := context.Background()

	existente := &model.Notebook{ID: "nb-1", Responsavel: "A", UF: "SP", Segmento: "Varejo", Modelo: "X", Fornecedor: "OPUS", Status: "EM USO"}
	require.NoError(t, notebooks.Create(ctx, existente))

	hID := "h-1"
	require.NoError(t, historico.Create(ctx, &model.Historico{ID: hID, Action: model.ActionCriacao, UserID: "system", UserName: "Sistema", EquipmentType: model.EquipmentNotebook, Details: DetailsCriacao}))

	doc := &dto.BackupDocument{
		Version: "1.0",
		Data: dto.BackupData{
			Users: []model.Usuario{
				{ID: "u-1", Nome: "Nova", Email: "nova@opus.com", Senha: "x", Perfil: policy.PerfilSuporte, Ativo: true},
			},
			Notebooks: []model.Notebook{
				// Same id, different payload: the stored row must win.
				{ID: "nb-1", Responsavel: "Impostor", UF: "RJ", Segmento: "Outro", Modelo: "Z", Fornecedor: "ALLU", Status: "TROCA"},
				{ID: "nb-2", Responsavel: "B", UF: "MG", Segmento: "Varejo", Modelo: "Y", Fornecedor: "OPUS", Status: "EM USO"},
			},
			Historico: []model.Historico{
				{ID: hID, Action: model.ActionCriacao, UserID: "system", UserName: "Sistema", EquipmentType: model.EquipmentNotebook, Details: DetailsCriacao},
				{ID: "h-2", Action: model.ActionEdicao, UserID: "system", UserName: "Sistema", EquipmentType: model.EquipmentNotebook, Details: DetailsEdicao},
			},
		},
	}

	result, err := svc.Importar(ctx, doc)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported.Users)
	assert.Equal(t, 1, result.Imported.Notebooks)
	assert.Equal(t, 1, result.Skipped.Notebooks)
	assert.Equal(t, 1, result.Imported.Historico)
	assert.Equal(t, 1, result.Skipped.Historico)

	kept, err := notebooks.FindByID(ctx, "nb-1")
	require.NoError(t, err)
	assert.Equal(t, "A", kept.Responsavel)

	_, err = usuarios.FindByEmail(ctx, "nova@opus.com")
	assert.NoError(t, err)
}

func TestImportarPulaEmailExistente(t *testing.T) {
	svc, usuarios, _, _ := newBackupFixture()
	ctx := context.Background()

	require.NoError(t, usuarios.Create(ctx, &model.Usuario{ID: "u-1", Nome: "Maria", Email: "maria@opus.com", Senha: "x", Perfil: policy.PerfilAdmin, Ativo: true}))

	// Fresh id, colliding email: the row is skipped, the import finishes.
	doc := &dto.BackupDocument{
		Version: "1.0",
		Data: dto.BackupData{
			Users: []model.Usuario{
				{ID: "u-99", Nome: "Maria Reseed", Email: "maria@opus.com", Senha: "y", Perfil: policy.PerfilSuporte, Ativo: true},
				{ID: "u-2", Nome: "Nova", Email: "nova@opus.com", Senha: "x", Perfil: policy.PerfilControle, Ativo: true},
			},
		},
	}

	result, err := svc.Importar(ctx, doc)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped.Users)
	assert.Equal(t, 1, result.Imported.Users)

	kept, err := usuarios.FindByEmail(ctx, "maria@opus.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", kept.ID)
}

func TestImportarDocumentoNulo(t *testing.T) {
	svc, _, _, _ := newBackupFixture()

	_, err := svc.Importar(context.Background(), nil)
	assert.Error(t, err)
}
