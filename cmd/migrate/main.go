package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ecom/backend/internal/domain/cart"
	"github.com/ecom/backend/internal/domain/catalog"
	"github.com/ecom/backend/internal/domain/identity"
	"github.com/ecom/backend/internal/domain/importing"
	"github.com/ecom/backend/internal/domain/order"
	"github.com/ecom/backend/internal/domain/partner"
	"github.com/ecom/backend/internal/infrastructure/config"
	"github.com/ecom/backend/internal/infrastructure/logger"
	"github.com/ecom/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

func main() {
	var logLevel string
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logger.New(logLevel, "console", "stdout")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	log.Info("Running schema migration", zap.String("database", cfg.Database.DBName))

	err = db.DB.AutoMigrate(
		&identity.User{},
		&partner.Location{},
		&catalog.Category{},
		&catalog.Product{},
		&cart.Item{},
		&order.Order{},
		&order.Line{},
		&importing.Import{},
		&importing.Line{},
	)
	if err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}

	log.Info("Migration completed")
}
