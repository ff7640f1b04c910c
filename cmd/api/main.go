package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"message-triage-assistant/config"
	"message-triage-assistant/config/postgre"
	_ "message-triage-assistant/docs" // Swagger docs
	"message-triage-assistant/internal/httpserver"
	"message-triage-assistant/internal/triage"
	tgDelivery "message-triage-assistant/internal/triage/delivery/telegram"
	postgresRepo "message-triage-assistant/internal/triage/repository/postgres"
	qdrantRepo "message-triage-assistant/internal/triage/repository/qdrant"
	"message-triage-assistant/internal/triage/usecase"
	"message-triage-assistant/pkg/log"
	"message-triage-assistant/pkg/openrouter"
	"message-triage-assistant/pkg/qdrant"
	"message-triage-assistant/pkg/telegram"
	"message-triage-assistant/pkg/voyage"
)

// @title       Message Triage Assistant API
// @description Telegram assistant that classifies inbound messages, answers questions over a knowledge base and records sale inquiries.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Message Triage Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Clients
	llm, err := openrouter.New(openrouter.Config{
		APIKey:  cfg.OpenRouter.APIKey,
		BaseURL: cfg.OpenRouter.BaseURL,
		Model:   cfg.OpenRouter.Model,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize OpenRouter client: ", err)
		return
	}

	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Voyage client: ", err)
		return
	}

	qdrantClient := qdrant.NewClient(cfg.Qdrant.URL)
	telegramBot := telegram.NewBot(cfg.Telegram.BotToken)

	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Postgres: ", err)
		return
	}
	defer postgre.Disconnect(db)

	// 4. Repositories
	leadRepo := postgresRepo.New(db, logger)
	if err := leadRepo.Migrate(ctx); err != nil {
		logger.Error(ctx, "Failed to migrate database: ", err)
		return
	}

	knowledgeRepo := qdrantRepo.New(qdrantClient, embedder, cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize, logger)

	// 5. UseCase + delivery
	triageUC := usecase.New(logger, llm, knowledgeRepo, leadRepo, triage.Policy{
		ExtractionMode: triage.ExtractionMode(cfg.Triage.ExtractionMode),
		PersistSpam:    cfg.Triage.PersistSpam,
		RetrieveTopK:   cfg.Triage.RetrieveTopK,
	})

	telegramHandler := tgDelivery.New(logger, triageUC, telegramBot)

	if cfg.Telegram.WebhookURL != "" {
		if whErr := telegramBot.SetWebhook(cfg.Telegram.WebhookURL); whErr != nil {
			logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
		} else {
			logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
