package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"grocer/internal/cache"
	"grocer/internal/database/databasetest"
	"grocer/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestCatalogWithoutCache(t *testing.T) {
	db := databasetest.New(t)
	ctx := context.Background()
	c := NewCatalog(db, nil, time.Minute, nil)

	products, err := c.Products(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.Product{}, products)

	n, err := c.Seed(ctx, []model.Product{
		{Name: "Milk", Category: "Dairy", Price: 2.99},
		{Name: "Bread", Category: "Bakery", Price: 1.5},
	})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.NoError(t, c.Invalidate(ctx))

	products, err = c.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, "Milk", products[0].Name)
}

func TestCatalogCacheMissPopulates(t *testing.T) {
	db := databasetest.New(t)
	ctx := context.Background()

	var stored []byte
	var storedTTL time.Duration
	fc := &cache.FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd { return redis.NewStringResult("", redis.Nil) },
		SetFn: func(_ context.Context, key string, v any, ttl time.Duration) *redis.StatusCmd {
			require.Equal(t, productsCacheKey, key)
			stored = v.([]byte)
			storedTTL = ttl
			return redis.NewStatusResult("OK", nil)
		},
		DelFn: func(context.Context, ...string) *redis.IntCmd { return redis.NewIntResult(1, nil) },
	}
	c := NewCatalog(db, fc, 30*time.Second, nil)

	_, err := c.Seed(ctx, []model.Product{{Name: "Milk", Category: "Dairy", Price: 2.99}})
	require.NoError(t, err)

	products, err := c.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, 30*time.Second, storedTTL)

	var cached []model.Product
	require.NoError(t, json.Unmarshal(stored, &cached))
	require.Equal(t, products, cached)
}

func TestCatalogCacheHitSkipsDatabase(t *testing.T) {
	db := databasetest.New(t)
	raw, _ := json.Marshal([]model.Product{{ID: 9, Name: "Cached", Category: "X", Price: 1}})
	fc := &cache.FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd { return redis.NewStringResult(string(raw), nil) },
	}
	c := NewCatalog(db, fc, time.Minute, nil)

	// 資料庫是空的，回傳的是快取內容
	products, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Equal(t, []model.Product{{ID: 9, Name: "Cached", Category: "X", Price: 1}}, products)
}

func TestCatalogCacheErrorsFallThrough(t *testing.T) {
	db := databasetest.New(t)
	fc := &cache.FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd { return redis.NewStringResult("", errors.New("down")) },
		SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("", errors.New("down"))
		},
		DelFn: func(context.Context, ...string) *redis.IntCmd { return redis.NewIntResult(0, errors.New("down")) },
	}
	c := NewCatalog(db, fc, time.Minute, nil)

	products, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Empty(t, products)

	require.Error(t, c.Invalidate(context.Background()))
	// Seed 仍成功，只記錄快取錯誤
	n, err := c.Seed(context.Background(), []model.Product{{Name: "Milk", Category: "Dairy", Price: 1}})
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
