package purchasing

import (
	"context"

	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/internal/purchasing/dto"
)

type UseCase interface {
	Create(ctx context.Context, input *dto.CreatePurchaseOrdersInput) ([]model.PurchaseOrder, error)
	ListOpen(ctx context.Context) ([]model.PurchaseOrder, error)
	Receive(ctx context.Context, id int64) (*dto.ReceiveResult, error)
}
