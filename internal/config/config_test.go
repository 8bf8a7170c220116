package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "halisaha"
password = "secret"
dbname = "halisaha_booking"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/app.log"
level = "info"

[metrics]
enabled = true
service_name = "halisaha-booking-service"
path = "/metrics"

[sweeper]
interval = 1800
grace = 86400

[auth]
admin_token = "token-from-file"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "halisaha_booking", cfg.Database.DBName)
	assert.Contains(t, cfg.Database.DSN(), "dbname=halisaha_booking")
	assert.Contains(t, cfg.Database.DSN(), "password=secret")
	assert.Equal(t, "token-from-file", cfg.Auth.AdminToken)
	assert.Equal(t, 1800, cfg.Sweeper.Interval)
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "env-password")
	t.Setenv("ADMIN_TOKEN", "env-token")

	cfg, err := Load(writeConfig(t, sampleConfig))

	require.NoError(t, err)
	assert.Equal(t, "env-password", cfg.Database.Password)
	assert.Equal(t, "env-token", cfg.Auth.AdminToken)
}

func TestLoad_MissingAdminToken(t *testing.T) {
	content := `
[server]
http_port = 8080

[database]
host = "localhost"
dbname = "db"

[sweeper]
interval = 1800
grace = 86400
`
	_, err := Load(writeConfig(t, content))

	assert.Error(t, err)
}

func TestLoad_InvalidSweeperInterval(t *testing.T) {
	content := `
[server]
http_port = 8080

[database]
host = "localhost"
dbname = "db"

[sweeper]
interval = 0
grace = 86400

[auth]
admin_token = "x"
`
	_, err := Load(writeConfig(t, content))

	assert.Error(t, err)
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	assert.Error(t, err)
}

func TestSweeperConfig_Durations(t *testing.T) {
	s := SweeperConfig{Interval: 1800, Grace: 86400}

	assert.Equal(t, "30m0s", s.IntervalDuration().String())
	assert.Equal(t, "24h0m0s", s.GraceDuration().String())
}
