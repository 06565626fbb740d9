package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for festbot.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values for fields that support both.
// Secrets (tokens, API keys) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"0.0.0.0"`
	Port     string `yaml:"port" env:"PORT" env-default:"8000"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// SyncToken guards the catalog sync and stats endpoints.
	// When empty, those endpoints reject every request.
	SyncToken string `yaml:"-" env:"SYNC_TOKEN"` // Secret - not in YAML

	// Data sources the responder is built from.
	Data DataConfig `yaml:"data"`

	// Database configuration (PostgreSQL, optional). When Host is empty the
	// catalog is loaded from the events file only.
	Database DatabaseConfig `yaml:"database"`

	// Redis configuration (optional fallback-answer cache).
	Redis RedisConfig `yaml:"redis"`

	// AI endpoints for the retrieval and generation fallback.
	AI AIConfig `yaml:"ai"`
}

// DataConfig points at the files the catalog and retrieval index load from.
type DataConfig struct {
	// EventsPath is the JSON event catalog produced by the sync scripts.
	EventsPath string `yaml:"events_path" env:"EVENTS_PATH" env-default:"data/events.json"`

	// FestivalInfoPath is the sectioned festival info document indexed for
	// retrieval. Optional.
	FestivalInfoPath string `yaml:"festival_info_path" env:"FESTIVAL_INFO_PATH" env-default:"data/festival_info.txt"`

	// TablesPath overrides the compiled-in keyword tables. Optional.
	TablesPath string `yaml:"tables_path" env:"TABLES_PATH" env-default:""`

	// MigrationsPath is the directory holding SQL migrations.
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"migrations"`
}

// DatabaseConfig holds PostgreSQL database configuration.
type DatabaseConfig struct {
	Host           string `yaml:"host" env:"PGHOST" env-default:""`
	Port           int    `yaml:"port" env:"PGPORT" env-default:"5432"`
	User           string `yaml:"user" env:"PGUSER" env-default:"festbot"`
	Password       string `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database       string `yaml:"database" env:"PGDATABASE" env-default:"festbot"`
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"10"`
	SSLMode        string `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
}

// IsConfigured returns true if a database host is set.
func (c *DatabaseConfig) IsConfigured() bool {
	return c.Host != ""
}

// ConnectionString returns a PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:""`
	Port     int    `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"-" env:"REDIS_PASSWORD"` // Secret - not in YAML
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`

	// AnswerTTLMinutes is how long generated fallback answers stay cached.
	AnswerTTLMinutes int `yaml:"answer_ttl_minutes" env:"REDIS_ANSWER_TTL_MINUTES" env-default:"60"`
}

// AIConfig holds the model endpoints for retrieval embeddings and answer
// generation. Provider selects the generation backend: "openai" (default,
// also covers any OpenAI-compatible endpoint) or "anthropic".
type AIConfig struct {
	Provider string `yaml:"provider" env:"AI_PROVIDER" env-default:"openai"`

	// OpenAI-compatible endpoint. Used for generation when Provider is
	// "openai" and always for embeddings.
	BaseURL string `yaml:"base_url" env:"AI_BASE_URL" env-default:"https://api.openai.com/v1"`
	Model   string `yaml:"model" env:"AI_MODEL" env-default:"gpt-4o-mini"`
	APIKey  string `yaml:"-" env:"AI_API_KEY"` // Secret - not in YAML

	// Anthropic generation settings, used when Provider is "anthropic".
	AnthropicModel  string `yaml:"anthropic_model" env:"ANTHROPIC_MODEL" env-default:"claude-3-5-haiku-latest"`
	AnthropicAPIKey string `yaml:"-" env:"ANTHROPIC_API_KEY"` // Secret - not in YAML

	EmbeddingModel string `yaml:"embedding_model" env:"AI_EMBEDDING_MODEL" env-default:"text-embedding-3-small"`
}

// IsAvailable returns true if a generation backend is configured.
func (c *AIConfig) IsAvailable() bool {
	if c.Provider == "anthropic" {
		return c.AnthropicAPIKey != ""
	}
	return c.APIKey != "" || c.BaseURL != "https://api.openai.com/v1"
}

// Load reads configuration from config.yaml with environment variable
// overrides. The version parameter is injected at build time and set on the
// returned Config. Secrets (SYNC_TOKEN, PGPASSWORD, AI_API_KEY,
// ANTHROPIC_API_KEY, REDIS_PASSWORD) must come from environment variables
// (yaml:"-" fields).
func Load(version string) (*Config, error) {
	return LoadFrom("config.yaml", version)
}

// LoadFrom reads configuration from the given YAML path. Tests use this to
// point at fixture files.
func LoadFrom(path, version string) (*Config, error) {
	cfg := &Config{Version: version}
	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return cfg, nil
}
