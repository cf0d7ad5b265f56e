package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := parse(lookupFrom(map[string]string{"PORT": "8080"}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "tournament.db", cfg.Database.Name)
	assert.Empty(t, cfg.Slack.Token)
	assert.Empty(t, cfg.ProjectID)
}

func TestParse_RequiresPort(t *testing.T) {
	_, err := parse(lookupFrom(map[string]string{}))
	assert.ErrorContains(t, err, "PORT")
}

func TestParse_Postgres(t *testing.T) {
	t.Run("requires a url", func(t *testing.T) {
		_, err := parse(lookupFrom(map[string]string{"PORT": "8080", "DB_DRIVER": "postgres"}))
		assert.Error(t, err)
	})

	t.Run("accepts DATABASE_URL", func(t *testing.T) {
		cfg, err := parse(lookupFrom(map[string]string{
			"PORT":         "8080",
			"DB_DRIVER":    "postgres",
			"DATABASE_URL": "postgres://localhost/tournament?sslmode=disable",
		}))
		require.NoError(t, err)
		assert.Equal(t, DriverPostgres, cfg.Database.Driver)
		assert.Equal(t, "postgres://localhost/tournament?sslmode=disable", cfg.Database.URL)
	})
}

func TestParse_UnknownDriver(t *testing.T) {
	_, err := parse(lookupFrom(map[string]string{"PORT": "8080", "DB_DRIVER": "mysql"}))
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}

func TestParse_ConfigFileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swiss.toml")
	content := `
port = "9000"
gcp_project = "from-file"

[database]
driver = "libsql"
url = "libsql://tournament.turso.io"
auth_token = "file-token"

[slack]
token = "xoxb-file"
channel_id = "C-FILE"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parse(lookupFrom(map[string]string{
		"CONFIG_FILE":      path,
		"SLACK_CHANNEL_ID": "C-ENV",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, DriverLibSQL, cfg.Database.Driver)
	assert.Equal(t, "libsql://tournament.turso.io", cfg.Database.URL)
	assert.Equal(t, "file-token", cfg.Database.AuthToken)
	assert.Equal(t, "xoxb-file", cfg.Slack.Token)
	assert.Equal(t, "C-ENV", cfg.Slack.ChannelID)
	assert.Equal(t, "from-file", cfg.ProjectID)
}

func TestParse_MissingConfigFile(t *testing.T) {
	_, err := parse(lookupFrom(map[string]string{
		"PORT":        "8080",
		"CONFIG_FILE": filepath.Join(t.TempDir(), "missing.toml"),
	}))
	assert.ErrorContains(t, err, "failed to decode config file")
}
