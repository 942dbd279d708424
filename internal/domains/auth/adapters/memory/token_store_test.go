package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/auth/ports"
)

func TestBoundedTokenStore_EvictsOldestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewBoundedTokenStore()

	for i := 1; i <= 10; i++ {
		require.NoError(t, store.Insert(ctx, fmt.Sprintf("t%d", i)))

		n, err := store.Len(ctx)
		require.NoError(t, err)
		require.LessOrEqual(t, n, DefaultCapacity)

		snapshot, err := store.Snapshot(ctx)
		require.NoError(t, err)
		if i > DefaultCapacity {
			// The oldest survivor is always the one inserted capacity-1 steps earlier.
			assert.Equal(t, fmt.Sprintf("t%d", i-DefaultCapacity+1), snapshot[0])
		}
	}

	snapshot, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"t8", "t9", "t10"}, snapshot)
}

func TestBoundedTokenStore_ContainsAndRemove(t *testing.T) {
	ctx := context.Background()
	store := NewBoundedTokenStore()
	require.NoError(t, store.Insert(ctx, "a"))
	require.NoError(t, store.Insert(ctx, "b"))

	ok, err := store.Contains(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Contains(ctx, "A")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Remove(ctx, "a"))
	ok, err = store.Contains(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.ErrorIs(t, store.Remove(ctx, "a"), ports.ErrTokenNotFound)

	snapshot, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, snapshot)
}

func TestBoundedTokenStore_RemoveFirstDuplicateOnly(t *testing.T) {
	ctx := context.Background()
	store := NewBoundedTokenStore()
	require.NoError(t, store.Insert(ctx, "x"))
	require.NoError(t, store.Insert(ctx, "y"))
	require.NoError(t, store.Insert(ctx, "x"))

	require.NoError(t, store.Remove(ctx, "x"))
	snapshot, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"y", "x"}, snapshot)
}

func TestBoundedTokenStore_SnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	store := NewBoundedTokenStore()
	require.NoError(t, store.Insert(ctx, "a"))

	snapshot, err := store.Snapshot(ctx)
	require.NoError(t, err)
	snapshot[0] = "mutated"

	ok, err := store.Contains(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBoundedTokenStore_ConcurrentInsertKeepsBound(t *testing.T) {
	ctx := context.Background()
	store := NewBoundedTokenStore()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			token := fmt.Sprintf("token-%d", idx)
			_ = store.Insert(ctx, token)
			_, _ = store.Contains(ctx, token)
		}(i)
	}
	wg.Wait()

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultCapacity, n)
}
