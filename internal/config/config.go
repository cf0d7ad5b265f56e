package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from a .env file, an optional TOML file named by
// CONFIG_FILE, and the environment, in increasing order of precedence.
// Missing required settings are fatal.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	cfg, err := parse(os.LookupEnv)
	if err != nil {
		log.Fatalf("Error: %s", err)
	}
	return cfg
}

// parse builds a Config from a lookup function so it can be exercised without
// touching the process environment.
func parse(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{
		Database: DatabaseConfig{Driver: DriverSQLite, Name: "tournament.db"},
	}

	if path, ok := lookup("CONFIG_FILE"); ok && path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to decode config file %s: %w", path, err)
		}
		log.Info("Loaded config file", "path", path)
	}

	override := func(key string, dst *string) {
		if value, ok := lookup(key); ok && value != "" {
			*dst = value
		}
	}
	override("PORT", &cfg.Port)
	override("DB_DRIVER", &cfg.Database.Driver)
	override("DB_NAME", &cfg.Database.Name)
	override("DATABASE_URL", &cfg.Database.URL)
	override("TURSO_PRIMARY_URL", &cfg.Database.URL)
	override("TURSO_AUTH_TOKEN", &cfg.Database.AuthToken)
	override("SLACK_BOT_TOKEN", &cfg.Slack.Token)
	override("SLACK_CHANNEL_ID", &cfg.Slack.ChannelID)
	override("GCP_PROJECT", &cfg.ProjectID)

	if cfg.Port == "" {
		return Config{}, fmt.Errorf("required environment variable PORT is not set")
	}

	switch cfg.Database.Driver {
	case DriverSQLite:
		if cfg.Database.Name == "" {
			return Config{}, fmt.Errorf("DB_NAME is required for driver %s", cfg.Database.Driver)
		}
	case DriverLibSQL, DriverPostgres:
		if cfg.Database.URL == "" {
			return Config{}, fmt.Errorf("a database URL is required for driver %s", cfg.Database.Driver)
		}
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	return cfg, nil
}
