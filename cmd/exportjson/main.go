// cmd/exportjson/main.go — exporta as cinco tabelas para um arquivo JSON.
// Uso: go run ./cmd/exportjson [diretório]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/AndreiWRoiko/InvetarioOp/internal/config"
	"github.com/AndreiWRoiko/InvetarioOp/internal/infra"
	"github.com/AndreiWRoiko/InvetarioOp/internal/repository"
	"github.com/AndreiWRoiko/InvetarioOp/internal/service"
)

func main() {
	dir := "backups"
	if len(os.Args) > 1 {
		dir = os.Args[1]
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

	doc, err := svc.Exportar(context.Background())
	if err != nil {
		log.Fatalf("export error: %v", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatalf("mkdir error: %v", err)
	}
	name := fmt.Sprintf("database_export_%s.json", time.Now().Format("2006-01-02T15-04-05"))
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatalf("marshal error: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("write error: %v", err)
	}

	fmt.Printf("✅ Backup gravado em %s\n", path)
	fmt.Printf("   users=%d notebooks=%d celulares=%d terminais=%d historico=%d\n",
		doc.Stats.Users, doc.Stats.Notebooks, doc.Stats.Celulares, doc.Stats.Terminais, doc.Stats.Historico)
}
