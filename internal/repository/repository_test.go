package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/AndreiWRoiko/InvetarioOp/internal/infra"
	"github.com/AndreiWRoiko/InvetarioOp/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testDB opens a private in-memory database per test so state never leaks
// between cases.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := infra.NewDatabase(dsn)
	require.NoError(t, err)
	return db
}

func seedNotebook(t *testing.T, repo NotebookRepository) *model.Notebook {
	t.Helper()
	n := &model.Notebook{
		Responsavel: "Maria Souza",
		UF:          "SP",
		Segmento:    "Varejo",
		Modelo:      "Dell Latitude 3420",
		Fornecedor:  "OPUS",
		Status:      "EM USO",
	}
	require.NoError(t, repo.Create(context.Background(), n))
	return n
}

func TestNotebookCreateGeraID(t *testing.T) {
	repo := NewNotebookRepository(testDB(t))

	a := seedNotebook(t, repo)
	b := seedNotebook(t, repo)

	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)

	// A caller-supplied id is honored, not replaced.
	custom := &model.Notebook{
		ID: "nb-custom", Responsavel: "X", UF: "RJ", Segmento: "Varejo",
		Modelo: "Y", Fornecedor: "OPUS", Status: "EM USO",
	}
	require.NoError(t, repo.Create(context.Background(), custom))
	assert.Equal(t, "nb-custom", custom.ID)
}

func TestNotebookChecklistDefaultFalse(t *testing.T) {
	repo := NewNotebookRepository(testDB(t))
	n := seedNotebook(t, repo)

	got, err := repo.FindByID(context.Background(), n.ID)
	require.NoError(t, err)
	assert.False(t, got.ChecklistTermo)
	assert.False(t, got.ChecklistAntivirus)
	assert.False(t, got.ChecklistFerramentaA)
	assert.False(t, got.ChecklistFerramentaB)
}

func TestNotebookUpdateParcial(t *testing.T) {
	repo := NewNotebookRepository(testDB(t))
	ctx := context.Background()
	n := seedNotebook(t, repo)

	got, err := repo.Update(ctx, n.ID, map[string]any{
		"status":         "DEVOLVER",
		"checklistTermo": true,
	})
	require.NoError(t, err)
	assert.Equal(t, "DEVOLVER", got.Status)
	assert.True(t, got.ChecklistTermo)
	// Untouched fields survive the merge.
	assert.Equal(t, "Maria Souza", got.Responsavel)
	assert.Equal(t, "Dell Latitude 3420", got.Modelo)
}

func TestNotebookUpdateIgnoraChavesDesconhecidas(t *testing.T) {
	repo := NewNotebookRepository(testDB(t))
	ctx := context.Background()
	n := seedNotebook(t, repo)

	got, err := repo.Update(ctx, n.ID, map[string]any{
		"status":    "TROCA",
		"naoExiste": "valor",
		"id":        "hijack",
		"createdAt": "2001-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "TROCA", got.Status)
	assert.Equal(t, n.ID, got.ID)
}

func TestNotebookUpdateVazioAtualizaTimestamp(t *testing.T) {
	repo := NewNotebookRepository(testDB(t))
	ctx := context.Background()
	n := seedNotebook(t, repo)

	before, err := repo.FindByID(ctx, n.ID)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	got, err := repo.Update(ctx, n.ID, map[string]any{})
	require.NoError(t, err)
	assert.True(t, got.UpdatedAt.After(before.UpdatedAt))
	assert.Equal(t, before.Status, got.Status)
}

func TestNotebookUpdateSobrescreveComVazio(t *testing.T) {
	repo := NewNotebookRepository(testDB(t))
	ctx := context.Background()
	n := seedNotebook(t, repo)

	proc := "i5-1135G7"
	_, err := repo.Update(ctx, n.ID, map[string]any{"processador": proc})
	require.NoError(t, err)

	// An explicit empty string is a value, not an omission.
	got, err := repo.Update(ctx, n.ID, map[string]any{"processador": ""})
	require.NoError(t, err)
	require.NotNil(t, got.Processador)
	assert.Equal(t, "", *got.Processador)

	// An explicit null clears the column.
	got, err = repo.Update(ctx, n.ID, map[string]any{"processador": nil})
	require.NoError(t, err)
	assert.Nil(t, got.Processador)
}

func TestNotebookUpdateInexistente(t *testing.T) {
	repo := NewNotebookRepository(testDB(t))

	_, err := repo.Update(context.Background(), "nope", map[string]any{"status": "TROCA"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNotebookDelete(t *testing.T) {
	repo := NewNotebookRepository(testDB(t))
	ctx := context.Background()
	n := seedNotebook(t, repo)

	removed, err := repo.Delete(ctx, n.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = repo.FindByID(ctx, n.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	removed, err = repo.Delete(ctx, n.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestUsuarioEmailExato(t *testing.T) {
	repo := NewUsuarioRepository(testDB(t))
	ctx := context.Background()

	u := &model.Usuario{Nome: "Maria", Email: "maria@opus.com", Senha: "segredo", Perfil: "Admin", Ativo: true}
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.FindByEmail(ctx, "maria@opus.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	// Lookup is byte-exact.
	_, err = repo.FindByEmail(ctx, "Maria@opus.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUsuarioAtivoFalsePersistido(t *testing.T) {
	repo := NewUsuarioRepository(testDB(t))
	ctx := context.Background()

	// An explicit false must survive the insert, not be swallowed by a
	// column default.
	u := &model.Usuario{Nome: "Desligada", Email: "desligada@opus.com", Senha: "x", Perfil: "Suporte", Ativo: false}
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, got.Ativo)
}

func TestUsuarioUpdateParcial(t *testing.T) {
	repo := NewUsuarioRepository(testDB(t))
	ctx := context.Background()

	u := &model.Usuario{Nome: "Maria", Email: "maria@opus.com", Senha: "segredo", Perfil: "Suporte", Ativo: true}
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.Update(ctx, u.ID, map[string]any{"perfil": "Admin", "ativo": false})
	require.NoError(t, err)
	assert.Equal(t, "Admin", got.Perfil)
	assert.False(t, got.Ativo)
	assert.Equal(t, "segredo", got.Senha)

	// An empty patch is a no-op read.
	got, err = repo.Update(ctx, u.ID, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "Admin", got.Perfil)
}

func TestHistoricoOrdemDecrescente(t *testing.T) {
	repo := NewHistoricoRepository(testDB(t))
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	eqID := "eq-1"
	for i := 0; i < 3; i++ {
		entry := &model.Historico{
			Action:        model.ActionEdicao,
			UserID:        "system",
			UserName:      "Sistema",
			EquipmentType: model.EquipmentNotebook,
			EquipmentID:   &eqID,
			Details:       "Atualizou informações do equipamento",
			Timestamp:     base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(ctx, entry))
	}

	entries, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].Timestamp.After(entries[i-1].Timestamp))
	}

	filtered, err := repo.ListByEquipment(ctx, eqID)
	require.NoError(t, err)
	assert.Len(t, filtered, 3)

	none, err := repo.ListByEquipment(ctx, "outro")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTerminalRepositorio(t *testing.T) {
	repo := NewTerminalRepository(testDB(t))
	ctx := context.Background()

	term := &model.Terminal{NumeroRelogio: "REP-01", Status: "EM USO", UF: "MG", Segmento: "Indústria"}
	require.NoError(t, repo.Create(ctx, term))
	require.NotEmpty(t, term.ID)

	got, err := repo.Update(ctx, term.ID, map[string]any{"statusNext": "DEVOLVER"})
	require.NoError(t, err)
	require.NotNil(t, got.StatusNext)
	assert.Equal(t, "DEVOLVER", *got.StatusNext)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
