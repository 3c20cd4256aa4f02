package catalog

import (
	"context"

	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
)

type Repository interface {
	// FindProduct returns nil, nil when the product does not exist.
	FindProduct(ctx context.Context, productID int64) (*model.Product, error)
}
