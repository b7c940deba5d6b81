package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Writes to the rotating file", func(t *testing.T) {
		// Given: a logger with a file sink
		path := filepath.Join(t.TempDir(), "server.log")
		log, err := New("info", path)
		require.NoError(t, err)

		// When: logging below and at the level
		log.Debug("hidden")
		log.Info("room created")
		_ = log.Sync()

		// Then: only the info entry lands in the file
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "room created")
		assert.Contains(t, string(data), "INFO")
		assert.NotContains(t, string(data), "hidden")
	})

	t.Run("Unknown level", func(t *testing.T) {
		_, err := New("loud", "")

		require.Error(t, err)
	})
}
