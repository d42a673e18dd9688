package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/telegram-avia-bot/internal/domain/entity"
)

func newTestStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStoreWithClient(client)
}

func TestSearchCache_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	snap := entity.SearchSnapshot{
		DestIATA:      "DXB",
		IsRoundTrip:   false,
		DisplayDepart: "15.03.2026",
		Flights: []entity.Offer{
			{Origin: "MOW", Destination: "DXB", Price: 18500, Airline: "SU"},
		},
	}
	require.NoError(t, s.SaveSearch(ctx, "abc", snap))

	got, err := s.GetSearch(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "DXB", got.DestIATA)
	require.Len(t, got.Flights, 1)
	assert.Equal(t, 18500, got.Flights[0].Price)
}

func TestSearchCache_MissReturnsNil(t *testing.T) {
	s := newTestStore(t)

	got, err := s.GetSearch(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSearchCache_Delete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSearch(ctx, "abc", entity.SearchSnapshot{DestIATA: "DXB"}))
	require.NoError(t, s.DeleteSearch(ctx, "abc"))

	got, err := s.GetSearch(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWatch_SaveGetRemove(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	w := entity.PriceWatch{
		UserID:       42,
		Origin:       "MOW",
		Dest:         "DXB",
		DepartDate:   "15.03",
		CurrentPrice: 18500,
		Passengers:   "2",
	}
	key, err := s.SaveWatch(ctx, w)
	require.NoError(t, err)
	assert.Equal(t, "flight_bot:watch:42:MOW:DXB:15.03", key)

	got, err := s.GetWatch(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, 18500, got.CurrentPrice)

	watches, err := s.UserWatches(ctx, 42)
	require.NoError(t, err)
	require.Len(t, watches, 1)

	require.NoError(t, s.RemoveWatch(ctx, 42, key))

	got, err = s.GetWatch(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)

	watches, err = s.UserWatches(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, watches)
}

func TestWatch_RoundTripKeyIncludesReturnDate(t *testing.T) {
	w := entity.PriceWatch{UserID: 7, Origin: "MOW", Dest: "DXB", DepartDate: "15.03", ReturnDate: "25.03"}
	assert.Equal(t, "flight_bot:watch:7:MOW:DXB:15.03:25.03", WatchKey(w))
}

func TestWatch_AllWatchKeys(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.SaveWatch(ctx, entity.PriceWatch{UserID: 1, Origin: "MOW", Dest: "DXB", DepartDate: "15.03"})
	require.NoError(t, err)
	_, err = s.SaveWatch(ctx, entity.PriceWatch{UserID: 2, Origin: "LED", Dest: "AER", DepartDate: "20.04"})
	require.NoError(t, err)

	keys, err := s.AllWatchKeys(ctx)
	require.NoError(t, err)
	assert.Len(t, keys, 2)
}

func TestWatch_UpdateRewritesPayload(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	w := entity.PriceWatch{UserID: 3, Origin: "MOW", Dest: "DXB", DepartDate: "15.03", CurrentPrice: 20000}
	key, err := s.SaveWatch(ctx, w)
	require.NoError(t, err)

	w.CurrentPrice = 17000
	require.NoError(t, s.UpdateWatch(ctx, key, w))

	got, err := s.GetWatch(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 17000, got.CurrentPrice)
}

func TestDisabledStore_AllOpsAreNoOps(t *testing.T) {
	s := &RedisStore{}
	ctx := context.Background()

	assert.False(t, s.Enabled())
	require.NoError(t, s.SaveSearch(ctx, "x", entity.SearchSnapshot{}))

	got, err := s.GetSearch(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, got)

	key, err := s.SaveWatch(ctx, entity.PriceWatch{UserID: 1})
	require.NoError(t, err)
	assert.Empty(t, key)

	keys, err := s.AllWatchKeys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	assert.True(t, s.IsFirstTimeUser(ctx, 1))
	require.NoError(t, s.Close())
}

func TestIsFirstTimeUser_MarksUserSeen(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	assert.True(t, s.IsFirstTimeUser(ctx, 99))
	assert.False(t, s.IsFirstTimeUser(ctx, 99))
	assert.True(t, s.IsFirstTimeUser(ctx, 100))
}
