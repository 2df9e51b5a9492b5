package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hugohenrick/erp-cooperativas/internal/config"
	"github.com/hugohenrick/erp-cooperativas/pkg/logger"
)

func main() {
	// Carregar configuração (.env opcional + variáveis de ambiente)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	appLogger := logger.NewLogger(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Criar aplicação
	app, err := NewApp(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("erro ao iniciar aplicação", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	// Iniciar o servidor até receber SIGINT ou SIGTERM
	if err := app.Start(ctx); err != nil {
		appLogger.Error("servidor encerrado com erro", "error", err)
		os.Exit(1)
	}
}
