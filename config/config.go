package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Message triage specifics
	OpenRouter OpenRouterConfig
	Qdrant     QdrantConfig
	Voyage     VoyageConfig
	Telegram   TelegramConfig
	Postgres   PostgresConfig
	Triage     TriageConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type OpenRouterConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type QdrantConfig struct {
	URL            string
	CollectionName string
	VectorSize     int
}

type VoyageConfig struct {
	APIKey string
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type PostgresConfig struct {
	DSN string
}

// TriageConfig tunes the triage workflow itself.
type TriageConfig struct {
	ExtractionMode    string
	PersistSpam       bool
	RetrieveTopK      int
	KnowledgeDataDirs []string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// OpenRouter LLM gateway
	cfg.OpenRouter.APIKey = viper.GetString("openrouter.api_key")
	cfg.OpenRouter.BaseURL = viper.GetString("openrouter.base_url")
	cfg.OpenRouter.Model = viper.GetString("openrouter.model")
	if key := viper.GetString("openrouter_api_key"); key != "" {
		cfg.OpenRouter.APIKey = key
	}

	// Qdrant vector store
	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")
	if qdrantURL := viper.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Qdrant.URL = qdrantURL
	}

	// Voyage AI embeddings
	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// Postgres
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}

	// Triage workflow
	cfg.Triage.ExtractionMode = viper.GetString("triage.extraction_mode")
	cfg.Triage.PersistSpam = viper.GetBool("triage.persist_spam")
	cfg.Triage.RetrieveTopK = viper.GetInt("triage.retrieve_top_k")

	// Split dirs since viper might not parse array seamlessly from env
	var dirs []string
	if rawDirs := viper.GetString("triage.knowledge_data_dirs"); rawDirs != "" {
		for _, dir := range strings.Split(rawDirs, ",") {
			dir = strings.TrimSpace(dir)
			if dir != "" {
				dirs = append(dirs, dir)
			}
		}
	}
	cfg.Triage.KnowledgeDataDirs = dirs

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("qdrant.collection_name", "wine_knowledge")
	viper.SetDefault("qdrant.vector_size", 1024)
	viper.SetDefault("triage.extraction_mode", "lead")
	viper.SetDefault("triage.persist_spam", false)
	viper.SetDefault("triage.retrieve_top_k", 3)
	viper.SetDefault("triage.knowledge_data_dirs", "data")
}
