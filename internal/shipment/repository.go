package shipment

import (
	"context"

	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
)

type Filters struct {
	CustomerID int64
	OrderID    int64
	Page       int
	PageSize   int
}

type Repository interface {
	// Create fails with apperr.PreconditionFailed when the order already has a shipment.
	Create(ctx context.Context, s *model.Shipment) error
	FindByID(ctx context.Context, id int64) (*model.Shipment, error)
	FindByOrderID(ctx context.Context, orderID int64) (*model.Shipment, error)
	FindAll(ctx context.Context, filters *Filters) ([]model.Shipment, int, error)
}

type UseCase interface {
	Get(ctx context.Context, id int64) (*model.Shipment, error)
	GetByOrder(ctx context.Context, orderID int64) (*model.Shipment, error)
	List(ctx context.Context, filters *Filters) ([]model.Shipment, int, error)
}
