package repository_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/model"
	infrarepo "storefront/internal/infra/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*infrarepo.CartRedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := infrarepo.NewRedisClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return infrarepo.NewCartRedisStore(client, ttl), mr
}

func TestCartRedisStore_LoadMissingIsEmpty(t *testing.T) {
	store, _ := newRedisStore(t, time.Hour)

	cart, err := store.Load(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartRedisStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t, time.Hour)

	cart := model.NewCart()
	require.NoError(t, cart.Add("p1", 2))
	require.NoError(t, cart.Add("p2", 1))
	require.NoError(t, store.Save(ctx, "sid-1", cart))

	assert.True(t, mr.Exists("cart:sid-1"))
	assert.Equal(t, time.Hour, mr.TTL("cart:sid-1"))

	got, err := store.Load(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, cart.Items(), got.Items())

	// 別セッションには見えない
	other, err := store.Load(ctx, "sid-2")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())
}

func TestCartRedisStore_SaveEmptyDeletes(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t, time.Hour)

	cart := model.NewCart()
	require.NoError(t, cart.Add("p1", 1))
	require.NoError(t, store.Save(ctx, "sid-1", cart))

	cart.Clear()
	require.NoError(t, store.Save(ctx, "sid-1", cart))
	assert.False(t, mr.Exists("cart:sid-1"))
}

func TestCartRedisStore_Expires(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t, time.Minute)

	cart := model.NewCart()
	require.NoError(t, cart.Add("p1", 1))
	require.NoError(t, store.Save(ctx, "sid-1", cart))

	mr.FastForward(2 * time.Minute)

	got, err := store.Load(ctx, "sid-1")
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestCartRedisStore_CorruptValue(t *testing.T) {
	store, mr := newRedisStore(t, time.Hour)
	require.NoError(t, mr.Set("cart:sid-1", "{broken"))

	_, err := store.Load(context.Background(), "sid-1")
	assert.Error(t, err)
}

func TestCartRedisStore_ConnectionError(t *testing.T) {
	store, mr := newRedisStore(t, time.Hour)
	mr.Close()

	_, err := store.Load(context.Background(), "sid-1")
	assert.Error(t, err)
	assert.Error(t, store.Ping(context.Background()))
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := infrarepo.NewRedisClient("not-a-url")
	assert.Error(t, err)
}
