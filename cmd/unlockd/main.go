package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Renal37/valerius-unlock/internal/admin"
	"github.com/Renal37/valerius-unlock/internal/database"
	router "github.com/Renal37/valerius-unlock/internal/http"
	"github.com/Renal37/valerius-unlock/internal/logger"
	"github.com/Renal37/valerius-unlock/internal/middlewares"
	"github.com/Renal37/valerius-unlock/internal/models"
	"github.com/Renal37/valerius-unlock/internal/remote"
	"github.com/Renal37/valerius-unlock/internal/services"
	"github.com/Renal37/valerius-unlock/internal/utils"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

func newDataSource(config Config) models.DataSource {
	if config.adminSource == sourceMock {
		logger.Log.Info("admin panel uses built-in sample data")
		return admin.NewMockSource()
	}

	return remote.New(config.dataAPIURL, config.dataAPIKey, config.requestTimeout)
}

func newVerifier(config Config) models.CredentialVerifier {
	if config.adminPasswordHash != "" {
		return admin.BcryptVerifier{Username: config.adminUsername, Hash: []byte(config.adminPasswordHash)}
	}

	if config.adminPassword != "" {
		return admin.StaticVerifier{Username: config.adminUsername, Password: config.adminPassword}
	}

	logger.Log.Warn("ADMIN_PASSWORD is not set, default admin credentials are used")
	return admin.DefaultVerifier()
}

func main() {
	config, err := NewConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("Config wasn't parsed due to %s", err)
	}

	if err := logger.Initialize(config.logLevel, config.env); err != nil {
		log.Fatalf("Logger wasn't initialized due to %s", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	jobQueueService := services.NewJobQueueService(ctx, 100, 2)
	notifier := services.NewTelegramNotifier(config.telegramBotToken, config.telegramChatID, jobQueueService)
	if !notifier.Enabled() {
		logger.Log.Info("telegram notifications are disabled")
	}

	var db *database.Database
	handlers := middlewares.Services{}

	if config.dsn != "" {
		db, err = database.New(ctx, config.dsn)
		if err != nil {
			log.Fatalf("Database wasn't initialized due to %s", err)
		}

		if err := db.RunMigrations(); err != nil {
			log.Fatalf("Migrations weren't run due to %s", err)
		}

		handlers.Catalog = services.NewCatalogService(db)
		handlers.Orders = services.NewOrderService(db, notifier)
		handlers.Reviews = services.NewReviewService(db)
	} else {
		logger.Log.Info("DATABASE_URI is not set, data API is disabled")
	}

	jwtService := services.NewJWTService(config.authSecretKey, config.tokenTTL)
	handlers.JWT = jwtService
	handlers.Sessions = admin.NewSessions(newVerifier(config), newDataSource(config), admin.DefaultPolicy(), jwtService.TTL())

	server := router.New(router.Config{
		Endpoint:       config.endpoint,
		AllowedOrigins: config.allowedOrigins,
		DataAPIKey:     config.dataAPIKey,
	}, handlers)

	utils.HandleTerminationProcess(func() {
		shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
		defer stop()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("server wasn't stopped gracefully", zap.Error(err))
		}

		jobQueueService.Shutdown()
		cancel()

		if db != nil {
			db.Close()
		}
		_ = logger.Log.Sync()
	})

	if err := server.Run(); err != nil {
		log.Fatalf("Server was stopped due to %s", err)
	}

	// Run возвращается сразу после начала остановки; процесс завершит обработчик сигнала.
	select {}
}
