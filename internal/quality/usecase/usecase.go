package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/fekuna/omnipos-fulfillment-service/internal/event"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/internal/order"
	"github.com/fekuna/omnipos-fulfillment-service/internal/quality"
	"github.com/fekuna/omnipos-fulfillment-service/internal/quality/dto"
	"github.com/fekuna/omnipos-fulfillment-service/internal/shipment"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/cache"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/database"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
	"go.uber.org/zap"
)

type Dependencies struct {
	Quality          quality.Repository
	Orders           order.Repository
	Shipments        shipment.Repository
	Tx               database.Transactor
	Locker           cache.Locker
	Events           event.Publisher
	Logger           logger.ZapLogger
	Clock            func() time.Time
	ShippingLeadDays int
	LockTTL          time.Duration
}

type qualityUseCase struct {
	repo      quality.Repository
	orders    order.Repository
	shipments shipment.Repository
	tx        database.Transactor
	locker    cache.Locker
	events    event.Publisher
	logger    logger.ZapLogger
	clock     func() time.Time
	leadDays  int
	lockTTL   time.Duration
}

func NewQualityUseCase(deps Dependencies) quality.UseCase {
	uc := &qualityUseCase{
		repo:      deps.Quality,
		orders:    deps.Orders,
		shipments: deps.Shipments,
		tx:        deps.Tx,
		locker:    deps.Locker,
		events:    deps.Events,
		logger:    deps.Logger,
		clock:     deps.Clock,
		leadDays:  deps.ShippingLeadDays,
		lockTTL:   deps.LockTTL,
	}
	if uc.events == nil {
		uc.events = event.NopPublisher{}
	}
	if uc.clock == nil {
		uc.clock = time.Now
	}
	return uc
}

func (uc *qualityUseCase) Get(ctx context.Context, id int64) (*model.QualityAssuranceRecord, error) {
	rec, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Persistence("get QA record", err)
	}
	if rec == nil {
		return nil, apperr.NotFound("QA record %d not found", id)
	}
	return rec, nil
}

func (uc *qualityUseCase) List(ctx context.Context, filters *dto.QAFilters) ([]model.QualityAssuranceRecord, int, error) {
	items, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, apperr.Persistence("list QA records", err)
	}
	return items, count, nil
}

// PassQA passes a pending record and ships the order. A record that already passed with
// a shipment returns that shipment, so a retried pass never ships twice.
func (uc *qualityUseCase) PassQA(ctx context.Context, input *dto.PassQAInput) (*dto.PassQAResult, error) {
	if input.QAID <= 0 || input.OrderID <= 0 {
		return nil, apperr.InvalidInput("qa id and order id are required")
	}

	result := &dto.PassQAResult{}
	err := uc.locked(ctx, input.OrderID, func() error {
		txCtx, buf := event.WithBuffer(ctx)
		err := uc.tx.WithinTx(txCtx, func(ctx context.Context) error {
			rec, err := uc.loadRecord(ctx, input.QAID, input.OrderID)
			if err != nil {
				return err
			}
			result.Record = rec

			switch rec.Status {
			case model.QAStatusFailed:
				return apperr.PreconditionFailed("QA record %d has failed and cannot pass", rec.ID)
			case model.QAStatusPassed:
				existing, err := uc.shipments.FindByOrderID(ctx, input.OrderID)
				if err != nil {
					return apperr.Persistence("get shipment", err)
				}
				if existing != nil {
					result.Shipment = existing
					return nil
				}
			case model.QAStatusPending:
				rec.Status = model.QAStatusPassed
				rec.InspectionDate = model.Date(uc.clock())
				if input.InspectorName != "" {
					rec.InspectorName = input.InspectorName
				}
				if input.Notes != "" {
					rec.Notes = input.Notes
				}
				if err := uc.repo.Update(ctx, rec, model.QAStatusPending); err != nil {
					return apperr.Persistence("update QA record", err)
				}
				event.Emit(ctx, uc.events, event.New(event.TypeQAPassed, input.OrderID, rec))
			}

			sh, err := uc.ship(ctx, input.OrderID)
			if err != nil {
				return err
			}
			result.Shipment = sh
			result.Created = true
			return nil
		})
		if err != nil {
			buf.Discard()
			return err
		}
		buf.Flush(ctx, uc.events)
		return nil
	})
	if err != nil {
		return nil, apperr.Persistence("pass QA", err)
	}

	if result.Created {
		uc.logger.Info("order shipped",
			zap.Int64("order_id", input.OrderID),
			zap.Int64("shipment_id", result.Shipment.ID),
			zap.Int("shipped_count", result.Shipment.ShippedCount),
		)
	}
	return result, nil
}

func (uc *qualityUseCase) ship(ctx context.Context, orderID int64) (*model.Shipment, error) {
	o, err := uc.orders.FindByIDForUpdate(ctx, orderID)
	if err != nil {
		return nil, apperr.Persistence("load order", err)
	}
	if o == nil {
		return nil, apperr.NotFound("order %d not found", orderID)
	}
	if o.Status != model.OrderStatusProductionComplete {
		return nil, apperr.PreconditionFailed("order %d is %s, expected %s", orderID, o.Status, model.OrderStatusProductionComplete)
	}

	o.Status = model.OrderStatusShipped
	if err := uc.orders.Update(ctx, o, model.OrderStatusProductionComplete); err != nil {
		return nil, apperr.Persistence("update order", err)
	}

	sh := shipment.Build(o, uc.clock(), uc.leadDays)
	if err := uc.shipments.Create(ctx, &sh); err != nil {
		return nil, apperr.Persistence("create shipment", err)
	}
	event.Emit(ctx, uc.events, event.New(event.TypeShipmentCreated, orderID, sh))
	return &sh, nil
}

func (uc *qualityUseCase) FailQA(ctx context.Context, input *dto.FailQAInput) (*model.QualityAssuranceRecord, error) {
	if input.QAID <= 0 || input.OrderID <= 0 {
		return nil, apperr.InvalidInput("qa id and order id are required")
	}
	if input.DefectsFound < 0 {
		return nil, apperr.InvalidInput("defects found must not be negative, got %d", input.DefectsFound)
	}

	var result *model.QualityAssuranceRecord
	err := uc.locked(ctx, input.OrderID, func() error {
		txCtx, buf := event.WithBuffer(ctx)
		err := uc.tx.WithinTx(txCtx, func(ctx context.Context) error {
			rec, err := uc.loadRecord(ctx, input.QAID, input.OrderID)
			if err != nil {
				return err
			}
			result = rec

			switch rec.Status {
			case model.QAStatusFailed:
				return nil
			case model.QAStatusPassed:
				return apperr.PreconditionFailed("QA record %d has already passed", rec.ID)
			}

			rec.Status = model.QAStatusFailed
			rec.InspectionDate = model.Date(uc.clock())
			rec.DefectsFound = input.DefectsFound
			if input.InspectorName != "" {
				rec.InspectorName = input.InspectorName
			}
			if input.Notes != "" {
				rec.Notes = input.Notes
			}
			if err := uc.repo.Update(ctx, rec, model.QAStatusPending); err != nil {
				return apperr.Persistence("update QA record", err)
			}
			event.Emit(ctx, uc.events, event.New(event.TypeQAFailed, input.OrderID, rec))
			return nil
		})
		if err != nil {
			buf.Discard()
			return err
		}
		buf.Flush(ctx, uc.events)
		return nil
	})
	if err != nil {
		return nil, apperr.Persistence("fail QA", err)
	}

	uc.logger.Info("QA failed", zap.Int64("order_id", input.OrderID), zap.Int("defects_found", result.DefectsFound))
	return result, nil
}

func (uc *qualityUseCase) loadRecord(ctx context.Context, qaID, orderID int64) (*model.QualityAssuranceRecord, error) {
	rec, err := uc.repo.FindByIDForUpdate(ctx, qaID)
	if err != nil {
		return nil, apperr.Persistence("load QA record", err)
	}
	if rec == nil || rec.OrderID != orderID {
		return nil, apperr.NotFound("QA record %d not found for order %d", qaID, orderID)
	}
	return rec, nil
}

func (uc *qualityUseCase) locked(ctx context.Context, orderID int64, fn func() error) error {
	opts := cache.DefaultLockOptions
	if uc.lockTTL > 0 {
		opts.TTL = uc.lockTTL
	}

	err := cache.WithLock(ctx, uc.locker, order.LockKey(orderID), opts, fn)
	if errors.Is(err, cache.ErrLockBusy) {
		return apperr.PreconditionFailed("order %d is being updated, try again later", orderID)
	}
	return err
}
