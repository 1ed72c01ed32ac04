package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dexscreener"
	"dexscreener/internal/config"
	"dexscreener/internal/metrics"
	"dexscreener/internal/pkg/logger"
	"dexscreener/internal/pkg/utils"
	"dexscreener/internal/restapi"
	"dexscreener/internal/service"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	// Bootstrap logger for the window before the real one is configured.
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	// Load configuration
	cfgPath := utils.GetEnv("CONFIG_PATH", "config/config.yaml")
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Update bootstrap log level from config
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		log.Warnf("Invalid log level in config: %s. Defaulting to Info.", cfg.Logging.Level)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	zapLogger, err := logger.New(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	defer zapLogger.Sync() // flushes buffer, if any

	// Route slog-based libraries through the same zap core.
	logger.SetSlogDefault(zapLogger)

	zapLogger.Info("Configuration loaded", zap.String("path", cfgPath))

	// Initialize Prometheus metrics
	metrics.MustRegisterMetrics()

	// Initialize DEXScreener client
	requestTimeout := time.Duration(cfg.DEXScreener.RequestTimeoutMillis) * time.Millisecond
	dexClient := dexscreener.New(
		dexscreener.WithBaseURL(cfg.DEXScreener.BaseURL),
		dexscreener.WithTimeout(requestTimeout),
		dexscreener.WithLogger(zapLogger),
	)
	zapLogger.Info("DEXScreener client initialized", zap.String("baseURL", cfg.DEXScreener.BaseURL))

	pairService := service.NewPairService(zapLogger, cfg, dexClient)
	zapLogger.Info("PairService initialized")

	// Warm the cache for the tracked tokens in the background.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := pairService.WarmTrackedTokens(ctx); err != nil {
			zapLogger.Error("Failed to warm tracked token pairs", zap.Error(err))
		} else {
			zapLogger.Info("Tracked token pair warm-up completed.")
		}
	}()

	pairHandler := restapi.NewPairHandler(pairService, cfg, zapLogger)
	router := restapi.NewRouter(pairHandler, zapLogger)

	// Start server
	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		zapLogger.Info(fmt.Sprintf("Server starting on port %s", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting")
}
