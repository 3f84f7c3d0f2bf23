package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"github.com/TabularInc/invoice-test-cases-generator/internal/application/service"
	"github.com/TabularInc/invoice-test-cases-generator/internal/config"
	httpserver "github.com/TabularInc/invoice-test-cases-generator/internal/interfaces/http"
	"github.com/TabularInc/invoice-test-cases-generator/pkg/utils"
)

func main() {
	// Optional .env for local development; ignore if absent
	_ = gotenv.Load()

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting invoice test-case generator",
		zap.String("version", "1.0.0"),
		zap.Int("port", cfg.Server.Port))

	suiteService := service.NewSuiteService(logger, service.Defaults{
		OwnCompanyName:  cfg.Generator.OwnCompanyName,
		OwnCompanyEmail: cfg.Generator.OwnCompanyEmail,
	})

	server := httpserver.NewServer(httpserver.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, suiteService, utils.NewKVLogger(logger))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		logger.Fatal("Server exited with error", zap.Error(err))
	}

	logger.Info("Server stopped")
}
