package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/cache"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
)

type countingRepo struct {
	products map[int64]model.Product
	calls    int
}

func (r *countingRepo) FindProduct(_ context.Context, id int64) (*model.Product, error) {
	r.calls++
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

type mapCache struct {
	data map[string][]byte
}

func (c *mapCache) GetJSON(_ context.Context, key string, dest interface{}) error {
	b, ok := c.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(b, dest)
}

func (c *mapCache) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *mapCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func TestGetProductUsesCache(t *testing.T) {
	repo := &countingRepo{products: map[int64]model.Product{
		3: {ID: 3, Name: "Steel pen", UnitCost: 20, Weights: model.BillOfMaterials{"steel": 5}},
	}}
	c := &mapCache{data: map[string][]byte{}}
	uc := NewCatalogUseCase(repo, c, time.Minute, logger.NewNop())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		p, err := uc.GetProduct(ctx, 3)
		if err != nil {
			t.Fatal(err)
		}
		if p.Weights["steel"] != 5 {
			t.Errorf("Unexpected weights %v", p.Weights)
		}
	}
	if repo.calls != 1 {
		t.Errorf("Expected one repository read, got %d", repo.calls)
	}

	if err := uc.Invalidate(ctx, 3); err != nil {
		t.Fatal(err)
	}
	uc.GetProduct(ctx, 3)
	if repo.calls != 2 {
		t.Errorf("Expected a read after invalidation, got %d", repo.calls)
	}
}

func TestGetProductNotFound(t *testing.T) {
	uc := NewCatalogUseCase(&countingRepo{}, nil, 0, logger.NewNop())
	if _, err := uc.GetProduct(context.Background(), 1); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("Expected NotFound, got %v", err)
	}
}
