package service

import (
	"context"
	"log/slog"
	"time"

	"grocer/internal/cache"
	"grocer/internal/database"
	"grocer/internal/model"
	"grocer/internal/store"
)

var productsCacheKey = cache.Key("products")

// Catalog 讀取商品清單，設定 cache 時以 cache-aside 方式快取整份清單
type Catalog struct {
	db     database.DB
	cache  cache.Cache
	ttl    time.Duration
	logger *slog.Logger
}

// NewCatalog c 可為 nil，表示不使用快取
func NewCatalog(db database.DB, c cache.Cache, ttl time.Duration, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{db: db, cache: c, ttl: ttl, logger: logger}
}

// Products 回傳所有商品；快取錯誤只記錄，不影響回應
func (c *Catalog) Products(ctx context.Context) ([]model.Product, error) {
	if c.cache != nil {
		var cached []model.Product
		hit, err := cache.GetJSON(ctx, c.cache, productsCacheKey, &cached)
		if err != nil {
			c.logger.WarnContext(ctx, "product cache read failed", slog.Any("error", err))
		}
		if hit && cached != nil {
			return cached, nil
		}
	}

	products, err := store.ListProducts(ctx, c.db)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := cache.SetJSON(ctx, c.cache, productsCacheKey, products, c.ttl); err != nil {
			c.logger.WarnContext(ctx, "product cache write failed", slog.Any("error", err))
		}
	}
	return products, nil
}

// Invalidate 刪除快取的商品清單
func (c *Catalog) Invalidate(ctx context.Context) error {
	if c.cache == nil {
		return nil
	}
	return c.cache.Del(ctx, productsCacheKey).Err()
}

// Seed 在單一交易內新增商品並讓快取失效
func (c *Catalog) Seed(ctx context.Context, products []model.Product) (int, error) {
	err := c.db.InTx(ctx, func(q database.Querier) error {
		for i := range products {
			if _, err := store.CreateProduct(ctx, q, &products[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if err := c.Invalidate(ctx); err != nil {
		c.logger.WarnContext(ctx, "product cache invalidate failed", slog.Any("error", err))
	}
	return len(products), nil
}
