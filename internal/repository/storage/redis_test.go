package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestNewRedisStorage(t *testing.T) {
	t.Run("Connects to a live server", func(t *testing.T) {
		// Given: a running redis
		mini := miniredis.RunT(t)

		// When: connecting
		st, err := NewRedisStorage(context.Background(), mini.Addr(), 0)

		// Then: the connection is usable
		require.NoError(t, err)
		require.NoError(t, st.Connection.Set(context.Background(), "k", "v", 0).Err())
		require.NoError(t, st.Close())
	})

	t.Run("Fails when nothing listens", func(t *testing.T) {
		mini := miniredis.RunT(t)
		addr := mini.Addr()
		mini.Close()

		_, err := NewRedisStorage(context.Background(), addr, 0)

		require.Error(t, err)
	})
}
