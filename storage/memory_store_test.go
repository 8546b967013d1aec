package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	in := map[string]int{"a": 1, "b": 2}
	require.NoError(t, s.Save(ctx, "owner", KeyKRAServices, in))

	var out map[string]int
	require.NoError(t, s.Load(ctx, "owner", KeyKRAServices, &out))
	assert.Equal(t, in, out)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	s := NewMemoryStore()

	var out map[string]int
	err := s.Load(context.Background(), "owner", "missing", &out)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreKeysAreScopedToOwner(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "alice", KeyPendingRequest, "hers"))

	var out string
	err := s.Load(ctx, "bob", KeyPendingRequest, &out)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "owner", KeyPendingRequest, "x"))
	require.NoError(t, s.Delete(ctx, "owner", KeyPendingRequest))

	var out string
	assert.ErrorIs(t, s.Load(ctx, "owner", KeyPendingRequest, &out), ErrNotFound)

	// Deleting again is not an error
	assert.NoError(t, s.Delete(ctx, "owner", KeyPendingRequest))
}
