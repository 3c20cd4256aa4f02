package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/fekuna/omnipos-fulfillment-service/internal/catalog"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/cache"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
	"go.uber.org/zap"
)

// Cache is the part of the redis client the catalog needs.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type catalogUseCase struct {
	repo   catalog.Repository
	cache  Cache
	ttl    time.Duration
	logger logger.ZapLogger
}

// NewCatalogUseCase reads products through a cache-aside snapshot. cache may be nil.
func NewCatalogUseCase(repo catalog.Repository, c Cache, ttl time.Duration, log logger.ZapLogger) catalog.UseCase {
	return &catalogUseCase{repo: repo, cache: c, ttl: ttl, logger: log}
}

func cacheKey(productID int64) string {
	return fmt.Sprintf("fulfillment:product:%d", productID)
}

func (uc *catalogUseCase) GetProduct(ctx context.Context, productID int64) (*model.Product, error) {
	key := cacheKey(productID)

	if uc.cache != nil {
		var cached model.Product
		err := uc.cache.GetJSON(ctx, key, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			uc.logger.Warn("product cache read failed", zap.Int64("product_id", productID), zap.Error(err))
		}
	}

	p, err := uc.repo.FindProduct(ctx, productID)
	if err != nil {
		return nil, apperr.Persistence("get product", err)
	}
	if p == nil {
		return nil, apperr.NotFound("product %d not found", productID)
	}

	if uc.cache != nil {
		if err := uc.cache.SetJSON(ctx, key, p, uc.ttl); err != nil {
			uc.logger.Warn("product cache write failed", zap.Int64("product_id", productID), zap.Error(err))
		}
	}
	return p, nil
}

func (uc *catalogUseCase) Invalidate(ctx context.Context, productID int64) error {
	if uc.cache == nil {
		return nil
	}
	return uc.cache.Delete(ctx, cacheKey(productID))
}
