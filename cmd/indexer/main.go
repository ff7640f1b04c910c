package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"message-triage-assistant/config"
	"message-triage-assistant/internal/kb"
	qdrantRepo "message-triage-assistant/internal/triage/repository/qdrant"
	"message-triage-assistant/pkg/log"
	"message-triage-assistant/pkg/qdrant"
	"message-triage-assistant/pkg/voyage"
)

// Offline knowledge-base build: reads markdown articles, chunks them,
// embeds the chunks and upserts them into Qdrant. Run once before
// starting the API, and again whenever the articles change.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof(ctx, "Indexing knowledge base from %v into collection %s",
		cfg.Triage.KnowledgeDataDirs, cfg.Qdrant.CollectionName)

	docs, err := kb.LoadDocuments(cfg.Triage.KnowledgeDataDirs, kb.DefaultChunkSize, kb.DefaultOverlap)
	if err != nil {
		logger.Error(ctx, "Failed to load documents: ", err)
		os.Exit(1)
	}
	if len(docs) == 0 {
		logger.Warn(ctx, "No markdown documents found, nothing to index")
		return
	}
	logger.Infof(ctx, "Loaded %d chunks", len(docs))

	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Voyage client: ", err)
		os.Exit(1)
	}

	repo := qdrantRepo.New(
		qdrant.NewClient(cfg.Qdrant.URL),
		embedder,
		cfg.Qdrant.CollectionName,
		cfg.Qdrant.VectorSize,
		logger,
	)

	if err := repo.EnsureCollection(ctx); err != nil {
		logger.Error(ctx, "Failed to ensure collection: ", err)
		os.Exit(1)
	}

	count, err := repo.IndexDocuments(ctx, docs)
	if err != nil {
		logger.Error(ctx, "Failed to index documents: ", err)
		os.Exit(1)
	}

	logger.Infof(ctx, "Done: %d chunks indexed", count)
}
