package grievance

import (
	"context"

	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
)

type Filters struct {
	CustomerID int64
	OrderID    int64
}

type Repository interface {
	Create(ctx context.Context, g *model.Grievance) error
	FindAll(ctx context.Context, filters *Filters) ([]model.Grievance, error)
}

type UseCase interface {
	List(ctx context.Context, filters *Filters) ([]model.Grievance, error)
}
