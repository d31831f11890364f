package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"scribe/internal/config"
	"scribe/internal/deps"
	"scribe/internal/jobs"
	"scribe/internal/logging"
	"scribe/internal/media"
	"scribe/internal/queue"
	"scribe/internal/recognition"
	"scribe/internal/storage"
	"scribe/internal/worker"
)

func main() {
	configPath := flag.String("config", "", "configuration file path")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		log.Fatalf("prepare directories: %v", err)
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	if err := deps.Verify(cfg.Tools); err != nil {
		logger.Error("dependency check", logging.Error(err))
		os.Exit(1)
	}

	store, err := jobs.Open(ctx, cfg.Database.URL)
	if err != nil {
		logger.Error("open job store", logging.Error(err))
		os.Exit(1)
	}
	defer store.Close()

	q, err := queue.NewClient(cfg.Queue.RedisURL, cfg.Queue.Key)
	if err != nil {
		logger.Error("connect queue", logging.Error(err))
		os.Exit(1)
	}
	defer q.Close()
	if err := q.Ping(ctx); err != nil {
		logger.Error("queue unreachable", logging.Error(err))
		os.Exit(1)
	}

	objects, err := storage.New(cfg.Storage)
	if err != nil {
		logger.Error("connect object store", logging.Error(err))
		os.Exit(1)
	}

	backend, err := recognition.NewGoogleClient(ctx, cfg.Recognition.ProjectID, cfg.Recognition.Region)
	if err != nil {
		logger.Error("connect speech backend", logging.Error(err))
		os.Exit(1)
	}
	defer backend.Close()

	adapter := recognition.NewAdapter(backend, recognition.Config{
		Language:    cfg.Recognition.Language,
		Model:       cfg.Recognition.Model,
		Punctuation: true,
		PhraseHints: cfg.Recognition.PhraseHints,
	}, logger)

	w := worker.New(cfg, q, store, objects, media.NewTools(cfg.Tools), adapter, logger)
	if err := w.RunOnce(ctx); err != nil {
		os.Exit(1)
	}
}
