package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"opening-hours-normalizer/internal/server"
	"opening-hours-normalizer/internal/vocab"
	"opening-hours-normalizer/pkg/config"
	"opening-hours-normalizer/pkg/logging"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.Env)
	if err != nil {
		log.Fatalf("Logger setup failed: %v", err)
	}
	defer logger.Sync()

	vocabs := vocab.NewRegistry()
	if err := vocabs.LoadDir(cfg.VocabDir); err != nil {
		logger.Fatal("loading vocabulary overrides", zap.Error(err))
	}
	logger.Info("vocabularies ready",
		zap.Int("languages", len(vocabs.Tags())),
		zap.String("vocab_dir", cfg.VocabDir))

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		logger.Info("received shutdown signal, initiating graceful shutdown")
		cancel()
	}()

	srv := server.New(cfg, logger, vocabs)
	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Fatal("HTTP server error", zap.Error(err))
	}
	logger.Info("shutdown complete")
}
