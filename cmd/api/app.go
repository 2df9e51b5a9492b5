package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-cooperativas/docs"
	"github.com/hugohenrick/erp-cooperativas/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-cooperativas/internal/adapter/api/route"
	"github.com/hugohenrick/erp-cooperativas/internal/adapter/repository"
	"github.com/hugohenrick/erp-cooperativas/internal/config"
	"github.com/hugohenrick/erp-cooperativas/internal/domain/cooperative"
	"github.com/hugohenrick/erp-cooperativas/internal/infrastructure/database"
	"github.com/hugohenrick/erp-cooperativas/pkg/auth"
	"github.com/hugohenrick/erp-cooperativas/pkg/logger"
	"github.com/hugohenrick/erp-cooperativas/pkg/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	version         = "1.0.0"
	shutdownTimeout = 10 * time.Second
)

// App representa a aplicação e suas dependências
type App struct {
	config *config.Config
	logger logger.Logger
	db     *database.PostgresDB
	router *gin.Engine
}

// NewApp cria uma nova instância do aplicativo
func NewApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	// Configurar banco de dados
	db, err := database.NewPostgresDB(ctx, database.NewPostgresConfig(cfg))
	if err != nil {
		return nil, err
	}

	// Criar repositórios
	cooperativeRepo := repository.NewPostgresCooperativeRepository(db)

	router, err := newRouter(cfg, log, cooperativeRepo, db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &App{
		config: cfg,
		logger: log,
		db:     db,
		router: router,
	}, nil
}

// newRouter monta o engine do Gin com middlewares globais e rotas
func newRouter(cfg *config.Config, log logger.Logger, cooperativeRepo cooperative.Repository, db controller.Pinger) (*gin.Engine, error) {
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))

	// Configurar CORS
	if origins := cfg.Server.AllowedOrigins(); len(origins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = origins
		corsConfig.AddAllowHeaders("Authorization", middleware.RequestIDHeader)
		corsConfig.AddExposeHeaders(controller.TotalCountHeader, middleware.RequestIDHeader)
		router.Use(cors.New(corsConfig))
	} else {
		router.Use(cors.Default())
	}

	docs.SwaggerInfo.BasePath = cfg.Server.BasePath
	docs.SwaggerInfo.Version = version
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(cfg.Server.BasePath)

	// Health check
	route.SetupHealthRoutes(api, controller.NewHealthController(db, version))

	// Autenticação só é exigida quando há chave configurada
	var protected []gin.HandlerFunc
	if cfg.JWT.SecretKey != "" {
		jwtService, err := auth.NewJWTService(cfg.JWT.SecretKey, 0)
		if err != nil {
			return nil, fmt.Errorf("erro ao configurar JWT: %w", err)
		}
		protected = append(protected, auth.JWTAuthMiddleware(jwtService))
	} else {
		log.Warn("JWT_SECRET_KEY não definida, rotas de cooperativas sem autenticação")
	}

	cooperativeController := controller.NewCooperativeController(cooperativeRepo, log)
	route.SetupCooperativeRoutes(api, cooperativeController, protected...)

	return router, nil
}

// Start inicia o servidor HTTP e o encerra de forma graciosa quando ctx é cancelado
func (a *App) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:              ":" + a.config.Server.Port,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("servidor iniciado", "port", a.config.Server.Port, "base_path", a.config.Server.BasePath)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("encerrando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("erro ao encerrar servidor: %w", err)
	}

	return nil
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
