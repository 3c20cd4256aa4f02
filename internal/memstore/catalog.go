package memstore

import (
	"context"

	"github.com/fekuna/omnipos-fulfillment-service/internal/catalog"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
)

var _ catalog.Repository = (*CatalogRepository)(nil)

type CatalogRepository struct {
	s *Store
}

// Seed stores a product as the configurator would, normalizing material names.
func (r *CatalogRepository) Seed(p model.Product) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	weights := make(model.BillOfMaterials, len(p.Weights))
	for name, w := range p.Weights {
		weights[model.NormalizeMaterialName(name)] += w
	}
	p.Weights = weights
	if p.ID == 0 {
		p.ID = r.s.nextID("products")
	}
	r.s.data.products[p.ID] = p
}

func (r *CatalogRepository) FindProduct(ctx context.Context, productID int64) (*model.Product, error) {
	defer r.s.lock(ctx)()

	p, ok := r.s.data.products[productID]
	if !ok {
		return nil, nil
	}
	p.Weights = p.Weights.Clone()
	return &p, nil
}
