// cmd/seedadmin/main.go — cria o usuário administrador inicial.
// Uso: go run ./cmd/seedadmin
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/AndreiWRoiko/InvetarioOp/internal/config"
	"github.com/AndreiWRoiko/InvetarioOp/internal/infra"
	"github.com/AndreiWRoiko/InvetarioOp/internal/model"
	"github.com/AndreiWRoiko/InvetarioOp/internal/policy"
	"github.com/AndreiWRoiko/InvetarioOp/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	ctx := context.Background()
	repo := repository.NewUsuarioRepository(db)

	if _, err := repo.FindByEmail(ctx, cfg.AdminEmail); err == nil {
		fmt.Printf("Usuário '%s' já existe, nada a fazer\n", cfg.AdminEmail)
		return
	} else if err != repository.ErrNotFound {
		log.Fatalf("lookup error: %v", err)
	}

	admin := &model.Usuario{
		Nome:   cfg.AdminNome,
		Email:  cfg.AdminEmail,
		Senha:  cfg.AdminSenha,
		Perfil: policy.PerfilAdmin,
		Ativo:  true,
	}
	if err := repo.Create(ctx, admin); err != nil {
		log.Fatalf("insert error: %v", err)
	}

	fmt.Printf("✅ Usuário administrador '%s' criado\n", cfg.AdminEmail)
}
