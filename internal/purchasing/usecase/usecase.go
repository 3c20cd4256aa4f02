package usecase

import (
	"context"

	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/fekuna/omnipos-fulfillment-service/internal/event"
	"github.com/fekuna/omnipos-fulfillment-service/internal/inventory"
	invdto "github.com/fekuna/omnipos-fulfillment-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/internal/pricing"
	"github.com/fekuna/omnipos-fulfillment-service/internal/purchasing"
	"github.com/fekuna/omnipos-fulfillment-service/internal/purchasing/dto"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/database"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
	"go.uber.org/zap"
)

type purchasingUseCase struct {
	repo      purchasing.Repository
	inventory inventory.UseCase
	pricing   *pricing.Table
	tx        database.Transactor
	events    event.Publisher
	logger    logger.ZapLogger
}

func NewPurchasingUseCase(repo purchasing.Repository, inv inventory.UseCase, table *pricing.Table, tx database.Transactor, events event.Publisher, log logger.ZapLogger) purchasing.UseCase {
	if events == nil {
		events = event.NopPublisher{}
	}
	if table == nil {
		table = pricing.Default()
	}
	return &purchasingUseCase{
		repo:      repo,
		inventory: inv,
		pricing:   table,
		tx:        tx,
		events:    events,
		logger:    log,
	}
}

// Create raises one purchase order per line, priced per gram from the pricing table.
func (uc *purchasingUseCase) Create(ctx context.Context, input *dto.CreatePurchaseOrdersInput) ([]model.PurchaseOrder, error) {
	if len(input.Lines) == 0 {
		return nil, apperr.InvalidInput("at least one purchase line is required")
	}
	for _, line := range input.Lines {
		if model.NormalizeMaterialName(line.MaterialName) == "" {
			return nil, apperr.InvalidInput("material name is required")
		}
		if !(line.WeightGrams > 0) {
			return nil, apperr.InvalidInput("weight for %s must be positive, got %v", line.MaterialName, line.WeightGrams)
		}
	}

	var created []model.PurchaseOrder
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		for _, line := range input.Lines {
			name := model.NormalizeMaterialName(line.MaterialName)
			po := &model.PurchaseOrder{
				MaterialName: name,
				WeightGrams:  line.WeightGrams,
				TotalCost:    uc.pricing.MaterialCost(name, line.WeightGrams),
				VendorID:     input.VendorID,
			}
			if err := uc.repo.Create(ctx, po); err != nil {
				return err
			}
			created = append(created, *po)
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Persistence("create purchase orders", err)
	}

	uc.logger.Info("purchase orders created", zap.Int("count", len(created)))
	uc.events.Publish(ctx, event.New(event.TypePurchaseOrdersCreated, 0, created))
	return created, nil
}

func (uc *purchasingUseCase) ListOpen(ctx context.Context) ([]model.PurchaseOrder, error) {
	items, err := uc.repo.FindOpen(ctx)
	if err != nil {
		return nil, apperr.Persistence("list open purchase orders", err)
	}
	return items, nil
}

// Receive restocks the ledger with a purchase order's weight. The flag flip and the
// restock share a transaction, so a purchase order restocks at most once.
func (uc *purchasingUseCase) Receive(ctx context.Context, id int64) (*dto.ReceiveResult, error) {
	result := &dto.ReceiveResult{}
	txCtx, buf := event.WithBuffer(ctx)

	err := uc.tx.WithinTx(txCtx, func(ctx context.Context) error {
		po, err := uc.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if po == nil {
			return apperr.NotFound("purchase order %d not found", id)
		}

		received, err := uc.repo.MarkReceived(ctx, id)
		if err != nil {
			return err
		}
		if received == nil {
			result.PurchaseOrder = po
			result.AlreadyReceived = true
			return nil
		}
		result.PurchaseOrder = received

		mat, err := uc.inventory.Restock(ctx, &invdto.RestockInput{
			MaterialName: received.MaterialName,
			Weight:       received.WeightGrams,
			MovementType: model.MovementPurchaseReceipt,
			Reference:    invdto.PurchaseOrderReference(id),
		})
		if err != nil {
			return err
		}
		result.Material = mat

		event.Emit(ctx, uc.events, event.New(event.TypePurchaseOrderReceived, 0, received))
		return nil
	})
	if err != nil {
		buf.Discard()
		return nil, apperr.Persistence("receive purchase order", err)
	}
	buf.Flush(ctx, uc.events)

	if result.AlreadyReceived {
		uc.logger.Info("purchase order already received", zap.Int64("purchase_order_id", id))
	} else {
		uc.logger.Info("purchase order received",
			zap.Int64("purchase_order_id", id),
			zap.String("material", result.PurchaseOrder.MaterialName),
			zap.Float64("weight", result.PurchaseOrder.WeightGrams),
		)
	}
	return result, nil
}
