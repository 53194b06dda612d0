package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cartapp "github.com/ecom/backend/internal/application/cart"
	catalogapp "github.com/ecom/backend/internal/application/catalog"
	identityapp "github.com/ecom/backend/internal/application/identity"
	importingapp "github.com/ecom/backend/internal/application/importing"
	orderapp "github.com/ecom/backend/internal/application/order"
	partnerapp "github.com/ecom/backend/internal/application/partner"
	paymentapp "github.com/ecom/backend/internal/application/payment"
	"github.com/ecom/backend/internal/domain/cart"
	"github.com/ecom/backend/internal/domain/catalog"
	"github.com/ecom/backend/internal/domain/identity"
	"github.com/ecom/backend/internal/domain/importing"
	"github.com/ecom/backend/internal/domain/order"
	"github.com/ecom/backend/internal/domain/partner"
	"github.com/ecom/backend/internal/infrastructure/config"
	"github.com/ecom/backend/internal/infrastructure/logger"
	"github.com/ecom/backend/internal/infrastructure/notification"
	"github.com/ecom/backend/internal/infrastructure/payment"
	"github.com/ecom/backend/internal/infrastructure/persistence"
	"github.com/ecom/backend/internal/interfaces/http/handler"
	"github.com/ecom/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting shop backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Repositories
	categoryRepo := persistence.NewGormCrudRepository[catalog.Category](db.DB)
	productRepo := persistence.NewGormCrudRepository[catalog.Product](db.DB)
	userRepo := persistence.NewGormCrudRepository[identity.User](db.DB)
	locationRepo := persistence.NewGormCrudRepository[partner.Location](db.DB)
	cartRepo := persistence.NewGormCrudRepository[cart.Item](db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	importRepo := persistence.NewGormImportRepository(db.DB)
	codes := persistence.NewGormCodeGenerator(db.DB, map[string]string{
		order.CodePrefix:     order.Order{}.TableName(),
		importing.CodePrefix: importing.Import{}.TableName(),
	})

	// Application services
	categoriesSvc := catalogapp.NewCategoryService(categoryRepo)
	productsSvc := catalogapp.NewProductService(productRepo)
	usersSvc := identityapp.NewUserService(userRepo)
	locationsSvc := partnerapp.NewLocationService(locationRepo)
	cartsSvc := cartapp.NewService(cartRepo)

	ordersSvc := orderapp.NewService(orderRepo, codes, log)
	notifier := notification.NewLogNotifier(log)
	ordersSvc.SetNotifier(notifier)
	ordersSvc.SetMailer(notifier)
	managementSvc := orderapp.NewManagementService(orderRepo, log)
	importsSvc := importingapp.NewService(importRepo, codes, log)

	gateway, err := payment.NewMomoAdapter(&payment.MomoConfig{
		PartnerCode: os.Getenv("ECOM_MOMO_PARTNER_CODE"),
		AccessKey:   os.Getenv("ECOM_MOMO_ACCESS_KEY"),
		SecretKey:   os.Getenv("ECOM_MOMO_SECRET_KEY"),
		RedirectURL: os.Getenv("ECOM_MOMO_REDIRECT_URL"),
		IPNURL:      os.Getenv("ECOM_MOMO_IPN_URL"),
		Sandbox:     cfg.App.Env != "production",
	})
	var paymentsSvc *paymentapp.Service
	if err != nil {
		log.Warn("Momo gateway not configured, payment initiation disabled", zap.Error(err))
		paymentsSvc = paymentapp.NewService(nil, orderRepo, ordersSvc, log)
	} else {
		paymentsSvc = paymentapp.NewService(gateway, orderRepo, ordersSvc, log)
	}

	engine := router.New(log, router.Handlers{
		System:     handler.NewSystemHandler(db.Ping),
		Categories: handler.NewCategoryHandler(categoriesSvc),
		Products:   handler.NewProductHandler(productsSvc),
		Users:      handler.NewUserHandler(usersSvc),
		Locations:  handler.NewLocationHandler(locationsSvc),
		Carts:      handler.NewCartHandler(cartsSvc),
		Orders:     handler.NewOrderHandler(ordersSvc, managementSvc),
		Imports:    handler.NewImportHandler(importsSvc),
		Payments:   handler.NewPaymentHandler(paymentsSvc),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
