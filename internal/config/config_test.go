package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1000.0, cfg.Session.InitialCash)
	assert.Equal(t, 10.0, cfg.Session.InitialPrice)
	assert.Equal(t, 7, cfg.Session.Days)
	require.NotNil(t, cfg.Session.BankruptThreshold)
	assert.Equal(t, 10.0, *cfg.Session.BankruptThreshold)
	assert.Equal(t, 180, cfg.Night.Frames)
	assert.Equal(t, 120, cfg.Night.PathBuffer)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "follow", cfg.Autoplay.Policy)
	assert.Empty(t, cfg.Database.SQLitePath)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
session:
  initial_cash: 5000
  days: 5
night:
  frames: 60
  frame_interval: 16ms
seed: 77
catalog_file: events.yaml
database:
  sqlite_path: data/coinlife.db
log:
  level: debug
  pretty: true
autoplay:
  cron: "0 0 * * * *"
  policy: hodl
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 5000.0, cfg.Session.InitialCash)
	assert.Equal(t, 5, cfg.Session.Days)
	assert.Equal(t, 60, cfg.Night.Frames)
	assert.Equal(t, 16*time.Millisecond, cfg.Night.FrameInterval)
	assert.Equal(t, int64(77), cfg.Seed)
	assert.Equal(t, "events.yaml", cfg.CatalogFile)
	assert.True(t, cfg.Log.Pretty)
	assert.Equal(t, "hodl", cfg.Autoplay.Policy)

	sc := cfg.SessionConfig()
	assert.Equal(t, 5000.0, sc.InitialCash)
	assert.Equal(t, 60, sc.Frames)
	assert.Equal(t, int64(77), sc.Seed)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("COINLIFE_SEED", "123")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("AUTOPLAY_POLICY", "contrarian")
	t.Setenv("NIGHT_FRAMES", "30")

	cfg, err := Load(writeFile(t, "config.yaml", "seed: 5\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(123), cfg.Seed)
	assert.Equal(t, "/tmp/x.db", cfg.Database.SQLitePath)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "contrarian", cfg.Autoplay.Policy)
	assert.Equal(t, 30, cfg.Night.Frames)

	t.Setenv("COINLIFE_SEED", "not-a-number")
	_, err = Load("")
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeFile(t, "config.yaml", "session: ["))
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))

	t.Setenv("AUTOPLAY_CRON", "")
	path := writeFile(t, ".env", "AUTOPLAY_CRON=\"0 0 12 * * *\"\n")
	os.Unsetenv("AUTOPLAY_CRON")
	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "0 0 12 * * *", os.Getenv("AUTOPLAY_CRON"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative cash", func(c *Config) { c.Session.InitialCash = -1 }},
		{"zero price", func(c *Config) { c.Session.InitialPrice = 0 }},
		{"no days", func(c *Config) { c.Session.Days = 0 }},
		{"threshold above cash", func(c *Config) { v := 2000.0; c.Session.BankruptThreshold = &v }},
		{"zero threshold", func(c *Config) { v := 0.0; c.Session.BankruptThreshold = &v }},
		{"no frames", func(c *Config) { c.Night.Frames = 0 }},
		{"negative interval", func(c *Config) { c.Night.FrameInterval = -time.Second }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad policy", func(c *Config) { c.Autoplay.Policy = "martingale" }},
		{"token without chat", func(c *Config) { c.Telegram.BotToken = "tok"; c.Telegram.ChatID = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoad_TelegramEnv(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "tok")
	t.Setenv("TELEGRAM_CHAT_ID", "42")
	t.Setenv("HTTPS_PROXY", "http://proxy:8080")

	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.TelegramEnabled())
	assert.Equal(t, "42", cfg.Telegram.ChatID)
	assert.Equal(t, "http://proxy:8080", cfg.Proxy)
}

func TestLoad_BankruptThreshold(t *testing.T) {
	path := writeFile(t, "config.yaml", "session:\n  bankrupt_threshold: 25\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 25.0, cfg.SessionConfig().BankruptThreshold)

	path = writeFile(t, "zero.yaml", "session:\n  bankrupt_threshold: 0\n")
	cfg, err = Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Session.BankruptThreshold)
	assert.Zero(t, *cfg.Session.BankruptThreshold)
	assert.ErrorContains(t, cfg.Validate(), "bankrupt_threshold")
}
