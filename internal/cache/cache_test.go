package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func TestKey(t *testing.T) {
	require.Equal(t, "grocer:products", Key("products"))
}

func TestGetJSON(t *testing.T) {
	ctx := context.Background()

	miss := &FakeCache{GetFn: func(context.Context, string) *redis.StringCmd {
		return redis.NewStringResult("", redis.Nil)
	}}
	var got []item
	hit, err := GetJSON(ctx, miss, "k", &got)
	require.NoError(t, err)
	require.False(t, hit)

	broken := &FakeCache{GetFn: func(context.Context, string) *redis.StringCmd {
		return redis.NewStringResult("", errors.New("conn reset"))
	}}
	_, err = GetJSON(ctx, broken, "k", &got)
	require.ErrorContains(t, err, "conn reset")

	garbage := &FakeCache{GetFn: func(context.Context, string) *redis.StringCmd {
		return redis.NewStringResult("{", nil)
	}}
	hit, err = GetJSON(ctx, garbage, "k", &got)
	require.Error(t, err)
	require.False(t, hit)

	ok := &FakeCache{GetFn: func(_ context.Context, key string) *redis.StringCmd {
		require.Equal(t, "grocer:products", key)
		return redis.NewStringResult(`[{"name":"Milk","price":1.5}]`, nil)
	}}
	hit, err = GetJSON(ctx, ok, Key("products"), &got)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, []item{{Name: "Milk", Price: 1.5}}, got)
}

func TestSetJSON(t *testing.T) {
	ctx := context.Background()
	var stored []byte
	var ttl time.Duration
	c := &FakeCache{SetFn: func(_ context.Context, key string, v any, exp time.Duration) *redis.StatusCmd {
		stored = v.([]byte)
		ttl = exp
		return redis.NewStatusResult("OK", nil)
	}}
	require.NoError(t, SetJSON(ctx, c, "k", []item{{Name: "Eggs", Price: 3}}, time.Minute))
	require.JSONEq(t, `[{"name":"Eggs","price":3}]`, string(stored))
	require.Equal(t, time.Minute, ttl)

	require.NoError(t, SetJSON(ctx, c, "k", item{}, -time.Second))
	require.Zero(t, ttl)

	failing := &FakeCache{SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
		return redis.NewStatusResult("", errors.New("readonly"))
	}}
	require.ErrorContains(t, SetJSON(ctx, failing, "k", item{}, 0), "readonly")
	require.Error(t, SetJSON(ctx, c, "k", func() {}, 0))
}

func TestFakeCachePanicsWhenUnset(t *testing.T) {
	c := &FakeCache{}
	require.Panics(t, func() { c.Get(context.Background(), "k") })
	require.Panics(t, func() { c.Set(context.Background(), "k", 1, 0) })
	require.Panics(t, func() { c.Del(context.Background(), "k") })
	require.NoError(t, c.Close())

	c.CloseFn = func() error { return errors.New("close") }
	require.EqualError(t, c.Close(), "close")
}
