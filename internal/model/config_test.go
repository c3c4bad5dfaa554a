package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 15, cfg.Server.ReadTimeoutSec)
	assert.Equal(t, 15, cfg.Server.WriteTimeoutSec)
	assert.Equal(t, DefaultDatabasePath(), cfg.Database.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `server:
  addr: ":9000"
  read_timeout_sec: 30
database:
  path: /var/lib/projecthub/hub.db
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	t.Setenv("PROJECTHUB_LOG_LEVEL", "warn")
	t.Setenv("PROJECTHUB_LOG_FORMAT", "console")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("db", "", "")
	flags.String("addr", "", "")
	require.NoError(t, flags.Parse([]string{"--db", ":memory:"}))

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr, "unchanged flag must not override the file")
	assert.Equal(t, 30, cfg.Server.ReadTimeoutSec)
	assert.Equal(t, 15, cfg.Server.WriteTimeoutSec)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfigRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))

	_, err := LoadConfig(path, nil)
	assert.Error(t, err)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := defaultAppConfig()
	cfg.Server.Addr = "127.0.0.1:7000"
	cfg.Log.Format = "console"

	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", loaded.Server.Addr)
	assert.Equal(t, "console", loaded.Log.Format)
}
