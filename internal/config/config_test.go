package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "schedule.db", cfg.Database.Path)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "08:00", cfg.Telegram.DigestTime)
	assert.False(t, cfg.Telegram.Enabled())
	assert.False(t, cfg.SeedDemo)
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `database:
  path: "data/planner.db"
server:
  addr: ":9090"
telegram:
  token: "secret"
  chat_id: 42
  digest_time: "07:15"
seed_demo: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "data/planner.db", cfg.Database.Path)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "secret", cfg.Telegram.Token)
	assert.Equal(t, int64(42), cfg.Telegram.ChatID)
	assert.Equal(t, "07:15", cfg.Telegram.DigestTime)
	assert.True(t, cfg.Telegram.Enabled())
	assert.True(t, cfg.SeedDemo)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PLANNER_SERVER__ADDR", ":7070")
	t.Setenv("PLANNER_DATABASE__PATH", "override.db")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "override.db", cfg.Database.Path)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9090\"\n"), 0o644))
	t.Setenv("PLANNER_SERVER__ADDR", ":7070")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	_, err := Load("config.toml")
	assert.Error(t, err)
}

func TestValidateTelegram(t *testing.T) {
	cfg := Config{}
	cfg.SetDefaults()
	cfg.Telegram.Token = "secret"
	assert.Error(t, cfg.Validate())

	cfg.Telegram.ChatID = 42
	assert.NoError(t, cfg.Validate())
}
