package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/coder/quartz"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardtable/hearts/internal/game"
)

func testSnapshot() *game.Snapshot {
	return &game.Snapshot{
		HandNumber: 2,
		State:      game.AwaitingHuman,
		Players:    [game.NumPlayers]string{"human", "standard", "advanced", "counting"},
		Leader:     1,
	}
}

func TestMemoryStoreSaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour, quartz.NewReal())

	require.NoError(t, store.Save(ctx, "abc", testSnapshot()))

	snap, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 2, snap.HandNumber)
	assert.Equal(t, game.AwaitingHuman, snap.State)

	require.NoError(t, store.Delete(ctx, "abc"))
	_, err = store.Load(ctx, "abc")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStoreExpiresSessions(t *testing.T) {
	ctx := context.Background()
	clock := quartz.NewMock(t)
	store := NewMemoryStore(time.Minute, clock)

	require.NoError(t, store.Save(ctx, "abc", testSnapshot()))

	clock.Advance(30 * time.Second)
	_, err := store.Load(ctx, "abc")
	require.NoError(t, err)

	clock.Advance(31 * time.Second)
	_, err = store.Load(ctx, "abc")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStoreSaveRefreshesExpiry(t *testing.T) {
	ctx := context.Background()
	clock := quartz.NewMock(t)
	store := NewMemoryStore(time.Minute, clock)

	require.NoError(t, store.Save(ctx, "abc", testSnapshot()))
	clock.Advance(45 * time.Second)
	require.NoError(t, store.Save(ctx, "abc", testSnapshot()))
	clock.Advance(45 * time.Second)

	_, err := store.Load(ctx, "abc")
	assert.NoError(t, err, "save should have refreshed the TTL")
}

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStore(client, time.Hour), mr
}

func TestRedisStoreSaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedisStore(t)

	require.NoError(t, store.Save(ctx, "abc", testSnapshot()))

	snap, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 2, snap.HandNumber)
	assert.Equal(t, [game.NumPlayers]string{"human", "standard", "advanced", "counting"}, snap.Players)

	require.NoError(t, store.Delete(ctx, "abc"))
	_, err = store.Load(ctx, "abc")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRedisStoreExpiresSessions(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)

	require.NoError(t, store.Save(ctx, "abc", testSnapshot()))
	mr.FastForward(2 * time.Hour)

	_, err := store.Load(ctx, "abc")
	assert.True(t, errors.Is(err, ErrNotFound))
}
