package blob

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client), mr
}

func TestSaveThenLoad(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "bosta:test", payload{Name: "cart", Count: 3}))

	var got payload
	require.True(t, store.Load(ctx, "bosta:test", &got))
	assert.Equal(t, payload{Name: "cart", Count: 3}, got)
}

func TestLoadMissingKeyReportsEmpty(t *testing.T) {
	store, _ := newStore(t)

	var got payload
	assert.False(t, store.Load(context.Background(), "bosta:absent", &got))
	assert.Zero(t, got)
}

func TestLoadCorruptBlobReportsEmpty(t *testing.T) {
	store, mr := newStore(t)
	require.NoError(t, mr.Set("bosta:test", "{not json"))

	got := payload{Name: "pre-filled"}
	assert.False(t, store.Load(context.Background(), "bosta:test", &got))
	assert.Equal(t, "pre-filled", got.Name, "corrupt blob leaves dest untouched")
}

func TestDelete(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "bosta:test", payload{Name: "x"}))
	require.NoError(t, store.Delete(ctx, "bosta:test"))

	var got payload
	assert.False(t, store.Load(ctx, "bosta:test", &got))

	// Deleting an absent key is fine.
	assert.NoError(t, store.Delete(ctx, "bosta:never-existed"))
}

func TestNilStoreIsInert(t *testing.T) {
	var store *Store
	ctx := context.Background()

	var got payload
	assert.False(t, store.Load(ctx, "k", &got))
	assert.NoError(t, store.Save(ctx, "k", payload{}))
	assert.NoError(t, store.Delete(ctx, "k"))
}
