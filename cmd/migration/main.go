package main

import (
	"flag"
	"log"
	"os"

	"github.com/hugohenrick/erp-cooperativas/internal/config"
	"github.com/hugohenrick/erp-cooperativas/internal/infrastructure/database"
	"github.com/hugohenrick/erp-cooperativas/pkg/logger"
)

func main() {
	down := flag.Bool("down", false, "desfaz a última migração aplicada")
	flag.Parse()

	// Carregar configuração (.env opcional + variáveis de ambiente)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	appLogger := logger.NewLogger(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	dbURL := cfg.ConnectionString()

	if *down {
		err = database.RollbackMigration(dbURL)
	} else {
		err = database.RunMigrations(dbURL)
	}
	if err != nil {
		appLogger.Error("erro ao executar migrações", "error", err, "down", *down)
		os.Exit(1)
	}

	version, dirty, err := database.MigrationVersion(dbURL)
	if err != nil {
		appLogger.Error("erro ao consultar versão do schema", "error", err)
		os.Exit(1)
	}

	appLogger.Info("migrações executadas com sucesso", "version", version, "dirty", dirty)
}
