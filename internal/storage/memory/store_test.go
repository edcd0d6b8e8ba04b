package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Miguelburitica/accounts-project/internal/storage/memory"
	"github.com/stretchr/testify/require"
)

func TestMemoryStateStore(t *testing.T) {
	t.Parallel()

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		store := memory.NewMemoryStateStore()

		v, ok, err := store.Get(context.Background(), "financial-data")
		require.NoError(t, err)
		require.False(t, ok)
		require.Empty(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		t.Parallel()

		store := memory.NewMemoryStateStore()
		require.NoError(t, store.Set(context.Background(), "financial-data", `{"periods":[]}`))
		require.NoError(t, store.Set(context.Background(), "financial-data", `{"goals":[]}`))

		v, ok, err := store.Get(context.Background(), "financial-data")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, `{"goals":[]}`, v)
	})

	t.Run("injected failure", func(t *testing.T) {
		t.Parallel()

		store := memory.NewMemoryStateStore()
		store.Fail(errors.New("disk full"))

		require.ErrorContains(t, store.Set(context.Background(), "k", "v"), "disk full")
		_, _, err := store.Get(context.Background(), "k")
		require.ErrorContains(t, err, "disk full")

		store.Fail(nil)
		require.NoError(t, store.Set(context.Background(), "k", "v"))
	})
}
