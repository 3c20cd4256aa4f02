package catalog

import (
	"context"

	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
)

type UseCase interface {
	GetProduct(ctx context.Context, productID int64) (*model.Product, error)
	Invalidate(ctx context.Context, productID int64) error
}
