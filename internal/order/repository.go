package order

import (
	"context"

	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/internal/order/dto"
)

type Repository interface {
	Create(ctx context.Context, o *model.Order) error
	// FindByID returns nil, nil when the order does not exist.
	FindByID(ctx context.Context, id int64) (*model.Order, error)
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id int64) (*model.Order, error)
	FindAll(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, int, error)
	CountByStatus(ctx context.Context, status model.OrderStatus) (int, error)

	// Update writes o only if the stored status still equals from. It returns
	// apperr.PreconditionFailed when another transition got there first.
	Update(ctx context.Context, o *model.Order, from model.OrderStatus) error
}
