package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*TokenStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewTokenStore(client), mr
}

func TestTokenStore_StoreExistsRevoke(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.Store(ctx, AccessTokenKind, userID, "t1", time.Minute))

	ok, err := store.Exists(ctx, AccessTokenKind, userID, "t1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(ctx, RefreshTokenKind, userID, "t1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Revoke(ctx, AccessTokenKind, userID, "t1"))
	ok, err = store.Exists(ctx, AccessTokenKind, userID, "t1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTokenStore_Expiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.Store(ctx, AccessTokenKind, userID, "t1", time.Minute))
	mr.FastForward(2 * time.Minute)

	ok, err := store.Exists(ctx, AccessTokenKind, userID, "t1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTokenStore_RevokeAll(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()
	other := uuid.New()

	require.NoError(t, store.Store(ctx, AccessTokenKind, userID, "a1", time.Hour))
	require.NoError(t, store.Store(ctx, AccessTokenKind, userID, "a2", time.Hour))
	require.NoError(t, store.Store(ctx, RefreshTokenKind, userID, "r1", time.Hour))
	require.NoError(t, store.Store(ctx, AccessTokenKind, other, "a3", time.Hour))

	require.NoError(t, store.RevokeAll(ctx, userID))

	assert.Equal(t, []string{"access_token:" + other.String() + ":a3"}, mr.Keys())
}

func TestTokenStore_RedisDown(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	_, err := store.Exists(context.Background(), AccessTokenKind, uuid.New(), "t1")
	assert.Error(t, err)
}
