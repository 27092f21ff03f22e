package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"taxsite/internal/config"
	"taxsite/internal/database"
	"taxsite/internal/domain/lead"
	"taxsite/internal/pkg/logger"
	"taxsite/internal/server"
	"taxsite/internal/storage/blob"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.IsProdLike(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if cfg.IsProdLike() {
		gin.SetMode(gin.ReleaseMode)
	}

	var leads lead.Repository
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL, zl)
		if err != nil {
			zl.Fatal("database connect failed", zap.Error(err))
		}
		if err := lead.Migrate(db); err != nil {
			zl.Fatal("lead migration failed", zap.Error(err))
		}
		leads = lead.NewRepository(db)
	} else {
		zl.Info("DATABASE_URL not set, local leads are not persisted")
	}

	var store blob.Store
	switch s, err := blob.FromConfig(cfg.Blob); {
	case errors.Is(err, blob.ErrNotConfigured):
		zl.Warn("blob storage not configured, uploads and the document portal are disabled")
	case err != nil:
		zl.Fatal("blob storage init failed", zap.Error(err))
	default:
		store = s
		zl.Info("blob storage ready", zap.String("backend", cfg.Blob.Backend))
	}

	r := server.NewRouter(server.Deps{
		Config: cfg,
		Log:    zl,
		Store:  store,
		Leads:  leads,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Serve(ctx, fmt.Sprintf(":%d", cfg.Port), r, zl); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
	zl.Info("server stopped")
}
