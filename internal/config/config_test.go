package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "trivia", cfg.Database.Name)
	assert.True(t, cfg.Database.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Zero(t, cfg.Quiz.Seed)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("TRIVIA_SERVER_PORT", "9090")
	t.Setenv("TRIVIA_DATABASE_DRIVER", "sqlite")
	t.Setenv("TRIVIA_DATABASE_SEED", "false")
	t.Setenv("TRIVIA_SERVER_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("TRIVIA_QUIZ_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.False(t, cfg.Database.Seed)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, int64(42), cfg.Quiz.Seed)
}

func TestLoadConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	body := []byte("database:\n  driver: sqlite\n  path: /tmp/quiz.db\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "trivia.yaml"), body, 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/quiz.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	chdirTemp(t)
	t.Setenv("TRIVIA_CONFIG", "/nonexistent/trivia.yaml")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	chdirTemp(t)
	t.Setenv("TRIVIA_DATABASE_DRIVER", "oracle")

	_, err := Load()
	assert.ErrorContains(t, err, "oracle")
}

func TestPostgresDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5433", User: "u", Password: "p", Name: "trivia", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=trivia sslmode=disable", d.PostgresDSN())
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	chdirTemp(t)
	t.Setenv("TRIVIA_SERVER_MODE", "turbo")

	_, err := Load()
	assert.ErrorContains(t, err, "turbo")
}
