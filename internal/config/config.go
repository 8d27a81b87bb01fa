package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}
}

// Config holds everything the bot reads from the environment.
type Config struct {
	DiscordToken      string        `env:"DISCORD_TOKEN,required"`
	OwnerIDs          []string      `env:"OWNER_IDS" envSeparator:","`
	Prefix            string        `env:"COMMAND_PREFIX" envDefault:"."`
	StoragePath       string        `env:"STORAGE_PATH" envDefault:"data/rolehub.db"`
	BlacklistPath     string        `env:"BLACKLIST_PATH" envDefault:"data/blacklist.json"`
	CommandCachePath  string        `env:"COMMAND_CACHE_PATH" envDefault:"data/commands-cache.json"`
	HomeGuildID       string        `env:"HOME_GUILD_ID"`
	BlacklistInterval time.Duration `env:"BLACKLIST_REFRESH_INTERVAL" envDefault:"60s"`
	InitSlashCommands bool          `env:"INIT_SLASH_COMMANDS" envDefault:"true"`
}

// New parses the environment into a Config.
func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// IsOwner reports whether userID is one of the configured bot owners.
func (c *Config) IsOwner(userID string) bool {
	for _, id := range c.OwnerIDs {
		if id == userID {
			return true
		}
	}
	return false
}
