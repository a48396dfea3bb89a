package main

import (
	"context"
	"fmt"
	"os"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"personalfinance/internal/config"
	"personalfinance/internal/logger"
	"personalfinance/internal/server"
	"personalfinance/internal/validator"

	_ "personalfinance/internal/docs" // Import swagger docs
)

// @title           Personal Finance Ledger API
// @version         1.0
// @description     Wallets, transactions and saving goals kept consistent by a single-writer ledger.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	validator.Register()

	backend, err := server.Open(context.Background(), appConfig, "api")
	if err != nil {
		return err
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Warnf("failed to close store: %v", err)
		}
	}()

	router := server.NewRouter(backend.Ledger, backend.Audit, appConfig.ReportLocation)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Infof("Starting personal finance server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
