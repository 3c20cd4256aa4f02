package purchasing

import (
	"context"

	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, po *model.PurchaseOrder) error
	FindByID(ctx context.Context, id int64) (*model.PurchaseOrder, error)
	FindOpen(ctx context.Context) ([]model.PurchaseOrder, error)

	// MarkReceived flips is_received for an open purchase order and returns the updated
	// row. It returns nil, nil when the order was already received.
	MarkReceived(ctx context.Context, id int64) (*model.PurchaseOrder, error)
}
