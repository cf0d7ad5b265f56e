package config

// Config holds all configuration for the application.
type Config struct {
	Port      string         `toml:"port"`
	Database  DatabaseConfig `toml:"database"`
	Slack     SlackConfig    `toml:"slack"`
	ProjectID string         `toml:"gcp_project"`
}

// DatabaseConfig selects the SQL driver and where it connects to.
type DatabaseConfig struct {
	Driver    string `toml:"driver"`
	Name      string `toml:"name"`
	URL       string `toml:"url"`
	AuthToken string `toml:"auth_token"`
}

type SlackConfig struct {
	Token     string `toml:"token"`
	ChannelID string `toml:"channel_id"`
}

const (
	DriverSQLite   = "sqlite3"
	DriverLibSQL   = "libsql"
	DriverPostgres = "postgres"
)
