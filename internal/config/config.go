package config

import (
	"os"
	"strconv"

	dderr "github.com/dadddeck/deck-bot-discord/internal/errors"
)

// Config holds all application configuration
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
	Catalog CatalogConfig
	Economy EconomyConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string // Empty registers commands globally
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// CatalogConfig holds the DadDeck catalog API configuration
type CatalogConfig struct {
	BaseURL string // Empty uses the production API
	APIKey  string
}

// EconomyConfig holds the upgrade economy tunables
type EconomyConfig struct {
	MaxLevel             int
	CostPerLevel         int
	StatIncreasePerLevel int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Discord: DiscordConfig{
			Token:   os.Getenv("DISCORD_TOKEN"),
			AppID:   os.Getenv("DISCORD_APP_ID"),
			GuildID: os.Getenv("DISCORD_GUILD_ID"),
		},
		Redis: RedisConfig{
			Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvIntOrDefault("REDIS_DB", 0),
		},
		Catalog: CatalogConfig{
			BaseURL: os.Getenv("DADDECK_API_URL"),
			APIKey:  os.Getenv("DADDECK_API_KEY"),
		},
		Economy: EconomyConfig{
			MaxLevel:             getEnvIntOrDefault("UPGRADE_MAX_LEVEL", 10),
			CostPerLevel:         getEnvIntOrDefault("UPGRADE_COST_PER_LEVEL", 2),
			StatIncreasePerLevel: getEnvIntOrDefault("UPGRADE_STAT_INCREASE", 5),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required configuration is present
func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return dderr.InvalidArgument("DISCORD_TOKEN is required")
	}
	if c.Discord.AppID == "" {
		return dderr.InvalidArgument("DISCORD_APP_ID is required")
	}
	if c.Catalog.APIKey == "" {
		return dderr.InvalidArgument("DADDECK_API_KEY is required")
	}
	if c.Economy.MaxLevel < 1 || c.Economy.CostPerLevel < 1 {
		return dderr.InvalidArgument("upgrade economy values must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
