package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"url_shortener/internal/app/di"
	"url_shortener/internal/config"
	"url_shortener/internal/platform/db"
	"url_shortener/internal/platform/logger"
)

// shutdownTimeout bounds how long in-flight requests may run after a stop signal.
const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync(zl)
	}()

	// JWT秘密鍵チェック（開発中の注意喚起）
	if cfg.UsesInsecureSecret() {
		zl.Warn("SECRET_KEY is not set; using the insecure development key. Set a strong secret in production.")
	}

	// db
	gdb, err := db.Open(cfg.DB, zl)
	if err != nil {
		return err
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			zl.Error("failed to close database", zap.Error(err))
		}
	}()

	if cfg.RunMigrations {
		if err := db.Migrate(gdb); err != nil {
			return err
		}
		zl.Info("database migrated")
	}

	// ルータ生成
	engine, err := di.NewEngine(cfg, gdb, zl)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		zl.Info("server starting",
			zap.String("addr", cfg.ServerAddress),
			zap.String("prefix", cfg.URLPrefix),
			zap.String("version", cfg.AppVersion),
		)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
