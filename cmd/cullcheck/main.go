// Package main is the entry point for cullcheck, which culls a scene file
// against a camera frustum and reports what is visible.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/cullcore/internal/config"
	"github.com/Faultbox/cullcore/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var store *logger.Storage
	if cfg.Logging.StorageCapacity > 0 {
		store = logger.NewStorage(cfg.Logging.StorageCapacity)
	}
	opts := logger.Options{Level: cfg.Logging.Level, Console: true, Storage: store}
	if cfg.Logging.LogFile != "" {
		opts.File = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if err := logger.InitWithOptions(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== cullcheck ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = run(ctx, cfg, os.Stdout, logger.Log)
	// The full store drops this entry too; console and file still get it.
	if store != nil && store.Dropped() > 0 {
		logger.Warn("log history overflowed", zap.Int("dropped", store.Dropped()))
	}
	if err != nil {
		logger.Error("cullcheck failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
