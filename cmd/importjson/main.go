// cmd/importjson/main.go — importa um arquivo de backup JSON.
// Registros cujo id já existe são pulados, nunca sobrescritos.
// Uso: go run ./cmd/importjson <arquivo>
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/AndreiWRoiko/InvetarioOp/internal/config"
	"github.com/AndreiWRoiko/InvetarioOp/internal/dto"
	"github.com/AndreiWRoiko/InvetarioOp/internal/infra"
	"github.com/AndreiWRoiko/InvetarioOp/internal/repository"
	"github.com/AndreiWRoiko/InvetarioOp/internal/service"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: importjson <arquivo>")
		os.Exit(1)
	}
	path := os.Args[1]

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read error: %v", err)
	}
	var doc dto.BackupDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Fatalf("parse error: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	svc := service.NewBackupService(
		repository.NewUsuarioRepository(db),
		repository.NewNotebookRepository(db),
		repository.NewCelularRepository(db),
		repository.NewTerminalRepository(db),
		repository.NewHistoricoRepository(db),
	)

	result, err := svc.Importar(context.Background(), &doc)
	if err != nil {
		log.Fatalf("import error: %v", err)
	}

	fmt.Printf("✅ Importação concluída a partir de %s\n", path)
	fmt.Printf("   importados: users=%d notebooks=%d celulares=%d terminais=%d historico=%d\n",
		result.Imported.Users, result.Imported.Notebooks, result.Imported.Celulares,
		result.Imported.Terminais, result.Imported.Historico)
	fmt.Printf("   pulados:    users=%d notebooks=%d celulares=%d terminais=%d historico=%d\n",
		result.Skipped.Users, result.Skipped.Notebooks, result.Skipped.Celulares,
		result.Skipped.Terminais, result.Skipped.Historico)
}
