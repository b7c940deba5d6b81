package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults fill the gaps", func(t *testing.T) {
		// Given: a file that only sets the http port
		path := writeConfig(t, "http-port: \"8080\"\n")

		// When: loading it
		conf, err := Load(path)

		// Then: everything else has its default
		require.NoError(t, err)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, "3000", conf.SocketPort)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 20, conf.Game.TickRate)
		assert.Equal(t, 1024, conf.Game.EventQueue)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 168*time.Hour, conf.Archive.TTL)
		assert.Equal(t, int64(1000), conf.Archive.MaxEntries)
		assert.Equal(t, "@every 10m", conf.Archive.PruneSchedule)
	})

	t.Run("Nested sections", func(t *testing.T) {
		path := writeConfig(t, `
game:
  tick-rate: 30
redis:
  enabled: true
  host: cache
  port: "6380"
  db: 2
archive:
  ttl: 1h
  max-entries: 50
`)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 30, conf.Game.TickRate)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 2, conf.Redis.DB)
		assert.Equal(t, time.Hour, conf.Archive.TTL)
		assert.Equal(t, int64(50), conf.Archive.MaxEntries)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "log-level: info\n")
		t.Setenv("LOG_LEVEL", "debug")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.Error(t, err)
	})
}
