package router

import (
	"time"

	"github.com/AndreiWRoiko/InvetarioOp/internal/config"
	"github.com/AndreiWRoiko/InvetarioOp/internal/handler"
	"github.com/AndreiWRoiko/InvetarioOp/internal/middleware"
	"github.com/AndreiWRoiko/InvetarioOp/internal/repository"
	"github.com/AndreiWRoiko/InvetarioOp/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.APIRateLimit, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	notebookRepo := repository.NewNotebookRepository(db)
	celularRepo := repository.NewCelularRepository(db)
	terminalRepo := repository.NewTerminalRepository(db)
	historicoRepo := repository.NewHistoricoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo)
	historicoSvc := service.NewHistoricoService(historicoRepo)
	notebookSvc := service.NewNotebookService(notebookRepo, usuarioRepo, historicoSvc)
	celularSvc := service.NewCelularService(celularRepo, usuarioRepo, historicoSvc)
	terminalSvc := service.NewTerminalService(terminalRepo, usuarioRepo, historicoSvc)
	dashboardSvc := service.NewDashboardService(notebookRepo, celularRepo, terminalRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	notebooksH := handler.NewNotebooksHandler(notebookSvc)
	celularesH := handler.NewCelularesHandler(celularSvc)
	terminaisH := handler.NewTerminaisHandler(terminalSvc)
	historicoH := handler.NewHistoricoHandler(historicoSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")
	{
		api.POST("/auth/login", middleware.LoginRateLimiter(rdb, cfg.LoginRateLimit), authH.Login)

		users := api.Group("/users")
		{
			users.GET("", usuariosH.Listar)
			users.GET("/:id", usuariosH.ObterPorID)
			users.POST("", usuariosH.Criar)
			users.PATCH("/:id", usuariosH.Atualizar)
			users.DELETE("/:id", usuariosH.Remover)
		}

		notebooks := api.Group("/notebooks")
		{
			notebooks.GET("", notebooksH.Listar)
			notebooks.GET("/:id", notebooksH.ObterPorID)
			notebooks.POST("", notebooksH.Criar)
			notebooks.PATCH("/:id", notebooksH.Atualizar)
			notebooks.DELETE("/:id", notebooksH.Remover)
		}

		celulares := api.Group("/celulares")
		{
			celulares.GET("", celularesH.Listar)
			celulares.GET("/:id", celularesH.ObterPorID)
			celulares.POST("", celularesH.Criar)
			celulares.PATCH("/:id", celularesH.Atualizar)
			celulares.DELETE("/:id", celularesH.Remover)
		}

		terminais := api.Group("/terminais")
		{
			terminais.GET("", terminaisH.Listar)
			terminais.GET("/:id", terminaisH.ObterPorID)
			terminais.POST("", terminaisH.Criar)
			terminais.PATCH("/:id", terminaisH.Atualizar)
			terminais.DELETE("/:id", terminaisH.Remover)
		}

		api.GET("/historico", historicoH.Listar)
		api.GET("/historico/equipment/:equipmentId", historicoH.ListarPorEquipamento)

		api.GET("/dashboard/stats", dashboardH.Stats)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
