package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCache(t *testing.T) {
	c := &FakeCache{}
	ctx := context.Background()
	require.Panics(t, func() { c.Get(ctx, "k") })
	require.Panics(t, func() { c.Set(ctx, "k", 1, 0) })
	require.Panics(t, func() { c.Incr(ctx, "k") })
	require.NoError(t, c.Close())

	var calls []string
	c.GetFn = func(context.Context, string) *redis.StringCmd {
		calls = append(calls, "get")
		return redis.NewStringResult("v", nil)
	}
	c.SetFn = func(context.Context, string, any, time.Duration) *redis.StatusCmd {
		calls = append(calls, "set")
		return redis.NewStatusResult("OK", nil)
	}
	c.IncrFn = func(context.Context, string) *redis.IntCmd {
		calls = append(calls, "incr")
		return redis.NewIntResult(2, nil)
	}
	c.CloseFn = func() error { calls = append(calls, "close"); return errors.New("close") }

	require.Equal(t, "v", c.Get(ctx, "k").Val())
	require.Equal(t, "OK", c.Set(ctx, "k", 1, time.Minute).Val())
	require.Equal(t, int64(2), c.Incr(ctx, "k").Val())
	require.EqualError(t, c.Close(), "close")
	require.Equal(t, []string{"get", "set", "incr", "close"}, calls)
}

func TestNop(t *testing.T) {
	var c Cache = Nop{}
	ctx := context.Background()
	require.ErrorIs(t, c.Get(ctx, "k").Err(), redis.Nil)
	require.NoError(t, c.Set(ctx, "k", "v", 0).Err())
	require.NoError(t, c.Incr(ctx, "k").Err())
	require.NoError(t, c.Close())
}
