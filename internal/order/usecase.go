package order

import (
	"context"

	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/internal/order/dto"
	"github.com/fekuna/omnipos-fulfillment-service/internal/requirement"
)

// UseCase is the order state machine. Orders change only through these transitions.
type UseCase interface {
	Create(ctx context.Context, input *dto.CreateOrderInput) (*model.Order, error)
	Get(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, int, error)
	CheckAvailability(ctx context.Context, id int64) (*requirement.Availability, error)

	Accept(ctx context.Context, id int64) (*model.Order, error)
	MarkPaid(ctx context.Context, id int64) (*model.Order, error)
	Cancel(ctx context.Context, id int64) (*model.Order, error)
	StartProduction(ctx context.Context, id int64) (*model.Order, error)
	FinishProduction(ctx context.Context, input *dto.FinishProductionInput) (*dto.FinishProductionResult, error)
}
