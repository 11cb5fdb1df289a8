package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.GRPCPort)
	assert.Equal(t, BackendPostgres, cfg.DataBackend)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	path := writeFile(t, `
server:
  grpc_port: 7000
  metrics_port: 7001
db:
  host: db.internal
  name: milestones
redis:
  addr: cache:6379
  ttl: 30s
data_backend: memory
`)
	t.Setenv("DB_HOST", "override.internal")
	t.Setenv("REDIS_TTL", "2m")
	t.Setenv("API_TOKEN", "secret-token")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.GRPCPort)
	assert.Equal(t, 7001, cfg.Server.MetricsPort)
	assert.Equal(t, "override.internal", cfg.DB.Host)
	assert.Equal(t, "milestones", cfg.DB.Name)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 2*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "secret-token", cfg.Auth.APIToken)
	assert.Equal(t, BackendMemory, cfg.DataBackend)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Server.GRPCPort = 0
	cfg.DataBackend = "sqlite"
	cfg.Auth.APIToken = " "
	cfg.Admin.Email = "admin@example.com"
	cfg.Admin.Password = "123"

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.grpc_port")
	assert.Contains(t, err.Error(), "data_backend")
	assert.Contains(t, err.Error(), "auth.api_token")
	assert.Contains(t, err.Error(), "admin.password")
}

func TestDBConfig_ConnString(t *testing.T) {
	cfg := Default().DB
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=savings sslmode=disable", cfg.ConnString())

	t.Setenv("DB_CONN_STR", "postgres://u:p@h/db")
	assert.Equal(t, "postgres://u:p@h/db", cfg.ConnString())
}
