package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/fekuna/omnipos-fulfillment-service/internal/catalog"
	"github.com/fekuna/omnipos-fulfillment-service/internal/event"
	"github.com/fekuna/omnipos-fulfillment-service/internal/grievance"
	"github.com/fekuna/omnipos-fulfillment-service/internal/inventory"
	invdto "github.com/fekuna/omnipos-fulfillment-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/internal/order"
	"github.com/fekuna/omnipos-fulfillment-service/internal/order/dto"
	"github.com/fekuna/omnipos-fulfillment-service/internal/pricing"
	"github.com/fekuna/omnipos-fulfillment-service/internal/quality"
	"github.com/fekuna/omnipos-fulfillment-service/internal/requirement"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/cache"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/database"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
	"go.uber.org/zap"
)

// Settings are the quoting and locking knobs from config.FulfillmentConfig.
type Settings struct {
	TaxPercent         float64
	ProductionDays     int
	RawMaterialDays    int
	QualityControlDays int
	BacklogDays        int
	BacklogThreshold   int
	LockTTL            time.Duration
}

type Dependencies struct {
	Orders     order.Repository
	Inventory  inventory.UseCase
	Resolver   *requirement.Resolver
	Catalog    catalog.UseCase
	Pricing    *pricing.Table
	Quality    quality.Repository
	Grievances grievance.Repository
	Tx         database.Transactor
	Locker     cache.Locker
	Events     event.Publisher
	Logger     logger.ZapLogger
	Clock      func() time.Time
	Settings   Settings
}

type orderUseCase struct {
	repo       order.Repository
	inventory  inventory.UseCase
	resolver   *requirement.Resolver
	catalog    catalog.UseCase
	pricing    *pricing.Table
	quality    quality.Repository
	grievances grievance.Repository
	tx         database.Transactor
	locker     cache.Locker
	events     event.Publisher
	logger     logger.ZapLogger
	clock      func() time.Time
	settings   Settings
}

func NewOrderUseCase(deps Dependencies) order.UseCase {
	uc := &orderUseCase{
		repo:       deps.Orders,
		inventory:  deps.Inventory,
		resolver:   deps.Resolver,
		catalog:    deps.Catalog,
		pricing:    deps.Pricing,
		quality:    deps.Quality,
		grievances: deps.Grievances,
		tx:         deps.Tx,
		locker:     deps.Locker,
		events:     deps.Events,
		logger:     deps.Logger,
		clock:      deps.Clock,
		settings:   deps.Settings,
	}
	if uc.events == nil {
		uc.events = event.NopPublisher{}
	}
	if uc.clock == nil {
		uc.clock = time.Now
	}
	if uc.pricing == nil {
		uc.pricing = pricing.Default()
	}
	return uc
}

func (uc *orderUseCase) today() time.Time {
	return model.Date(uc.clock())
}

func (uc *orderUseCase) Create(ctx context.Context, input *dto.CreateOrderInput) (*model.Order, error) {
	if input.UnitCount <= 0 {
		return nil, apperr.InvalidInput("unit count must be positive, got %d", input.UnitCount)
	}
	if input.CustomerID <= 0 || input.ProductID <= 0 {
		return nil, apperr.InvalidInput("customer and product are required")
	}

	product, err := uc.catalog.GetProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	rate := input.TaxPercent
	if (rate == nil || *rate < 0) && uc.pricing.Tax == nil {
		def := uc.settings.TaxPercent
		rate = &def
	}
	quote := uc.pricing.Quote(product.UnitCost, input.UnitCount, rate)

	bom := product.Weights.Clone()
	start := uc.today()
	end := start.AddDate(0, 0, uc.estimateDays(ctx, bom, input.UnitCount))

	o := &model.Order{
		CustomerID: input.CustomerID,
		ProductID:  input.ProductID,
		UnitCount:  input.UnitCount,
		BOM:        bom,
		Status:     model.OrderStatusAwaitingConfirmation,
		StartDate:  &start,
		EndDate:    &end,
		IsBusiness: input.IsBusiness,
		UnitCost:   quote.UnitCost,
		Subtotal:   quote.Subtotal,
		TaxAmount:  quote.TaxAmount,
		GrandTotal: quote.GrandTotal,
	}
	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, apperr.Persistence("create order", err)
	}

	uc.logger.Info("order created",
		zap.Int64("order_id", o.ID),
		zap.Int64("customer_id", o.CustomerID),
		zap.Int("unit_count", o.UnitCount),
		zap.String("grand_total", o.GrandTotal.String()),
	)
	uc.events.Publish(ctx, event.New(event.TypeOrderCreated, o.ID, o))
	return o, nil
}

// estimateDays quotes the manufacturing duration: production and QC always, raw material
// ordering when stock is short, and a backlog allowance when the floor is busy.
func (uc *orderUseCase) estimateDays(ctx context.Context, bom model.BillOfMaterials, unitCount int) int {
	s := uc.settings
	days := s.ProductionDays + s.QualityControlDays

	avail := uc.resolver.CheckAvailability(ctx, requirement.ComputeRequirement(bom, unitCount))
	if !avail.AllAvailable {
		days += s.RawMaterialDays
	}

	busy, err := uc.repo.CountByStatus(ctx, model.OrderStatusInProduction)
	if err != nil {
		uc.logger.Warn("failed to count orders in production", zap.Error(err))
	} else if busy > s.BacklogThreshold {
		days += s.BacklogDays
	}
	return days
}

func (uc *orderUseCase) Get(ctx context.Context, id int64) (*model.Order, error) {
	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Persistence("get order", err)
	}
	if o == nil {
		return nil, apperr.NotFound("order %d not found", id)
	}
	return o, nil
}

func (uc *orderUseCase) List(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, int, error) {
	if filters.Status != "" && !filters.Status.Valid() {
		return nil, 0, apperr.InvalidInput("unknown order status %q", filters.Status)
	}
	items, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, apperr.Persistence("list orders", err)
	}
	return items, count, nil
}

func (uc *orderUseCase) CheckAvailability(ctx context.Context, id int64) (*requirement.Availability, error) {
	o, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.resolver.CheckAvailability(ctx, requirement.ComputeRequirement(o.BOM, o.UnitCount)), nil
}

func (uc *orderUseCase) Accept(ctx context.Context, id int64) (*model.Order, error) {
	var result *model.Order
	err := uc.locked(ctx, id, func() error {
		var err error
		result, err = uc.mutate(ctx, id, func(ctx context.Context, o *model.Order) error {
			if o.Status == model.OrderStatusCancelled {
				return apperr.PreconditionFailed("order %d is cancelled", id)
			}
			if o.IsAccepted() {
				return nil
			}
			if err := uc.repo.Update(ctx, withStatus(o, model.OrderStatusAccepted), model.OrderStatusAwaitingConfirmation); err != nil {
				return err
			}
			event.Emit(ctx, uc.events, event.New(event.TypeOrderAccepted, id, nil))
			uc.logger.Info("order accepted", zap.Int64("order_id", id))
			return nil
		})
		return err
	})
	return result, err
}

func (uc *orderUseCase) MarkPaid(ctx context.Context, id int64) (*model.Order, error) {
	var result *model.Order
	err := uc.locked(ctx, id, func() error {
		var err error
		result, err = uc.mutate(ctx, id, func(ctx context.Context, o *model.Order) error {
			if o.Status == model.OrderStatusCancelled {
				return apperr.PreconditionFailed("order %d is cancelled", id)
			}
			if o.IsPaid {
				return nil
			}
			o.IsPaid = true
			if err := uc.repo.Update(ctx, o, o.Status); err != nil {
				return err
			}
			event.Emit(ctx, uc.events, event.New(event.TypeOrderPaid, id, nil))
			uc.logger.Info("order marked paid", zap.Int64("order_id", id))
			return nil
		})
		return err
	})
	return result, err
}

func (uc *orderUseCase) Cancel(ctx context.Context, id int64) (*model.Order, error) {
	var result *model.Order
	err := uc.locked(ctx, id, func() error {
		var err error
		result, err = uc.mutate(ctx, id, func(ctx context.Context, o *model.Order) error {
			from := o.Status
			if from != model.OrderStatusAwaitingConfirmation && from != model.OrderStatusAccepted {
				return apperr.PreconditionFailed("order %d is %s and can no longer be cancelled", id, from)
			}
			if err := uc.repo.Update(ctx, withStatus(o, model.OrderStatusCancelled), from); err != nil {
				return err
			}
			event.Emit(ctx, uc.events, event.New(event.TypeOrderCancelled, id, nil))
			uc.logger.Info("order cancelled", zap.Int64("order_id", id), zap.String("from", string(from)))
			return nil
		})
		return err
	})
	return result, err
}

func (uc *orderUseCase) StartProduction(ctx context.Context, id int64) (*model.Order, error) {
	var result *model.Order
	err := uc.locked(ctx, id, func() error {
		current, err := uc.Get(ctx, id)
		if err != nil {
			return err
		}
		if current.Status != model.OrderStatusAccepted {
			return apperr.PreconditionFailed("order %d is %s, expected %s", id, current.Status, model.OrderStatusAccepted)
		}

		req := requirement.ComputeRequirement(current.BOM, current.UnitCount)
		avail := uc.resolver.CheckAvailability(ctx, req)
		if !avail.AllAvailable {
			uc.logger.Info("production blocked by missing materials",
				zap.Int64("order_id", id),
				zap.Strings("materials", avail.UnavailableMaterials),
			)
			return apperr.InsufficientMaterials(avail.Shortages(), nil)
		}

		result, err = uc.mutate(ctx, id, func(ctx context.Context, o *model.Order) error {
			if o.Status != model.OrderStatusAccepted {
				return apperr.PreconditionFailed("order %d is %s, expected %s", id, o.Status, model.OrderStatusAccepted)
			}

			// The BOM is re-read under the row lock so the reservation matches what is stored.
			req := requirement.ComputeRequirement(o.BOM, o.UnitCount)
			if err := uc.inventory.Reserve(ctx, req, invdto.OrderReference(id)); err != nil {
				if apperr.KindOf(err) == apperr.KindInsufficientInventory {
					return apperr.InsufficientMaterials(apperr.ShortagesOf(err), err)
				}
				return err
			}

			today := uc.today()
			o.StartDate = &today
			if err := uc.repo.Update(ctx, withStatus(o, model.OrderStatusInProduction), model.OrderStatusAccepted); err != nil {
				return err
			}
			event.Emit(ctx, uc.events, event.New(event.TypeProductionStarted, id, req))
			return nil
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("production started", zap.Int64("order_id", id), zap.Int("unit_count", result.UnitCount))
	return result, nil
}

func (uc *orderUseCase) FinishProduction(ctx context.Context, input *dto.FinishProductionInput) (*dto.FinishProductionResult, error) {
	id := input.OrderID
	if input.DefectiveCount < 0 {
		return nil, apperr.InvalidInput("defective count must not be negative, got %d", input.DefectiveCount)
	}

	result := &dto.FinishProductionResult{}
	err := uc.locked(ctx, id, func() error {
		var err error
		result.Order, err = uc.mutate(ctx, id, func(ctx context.Context, o *model.Order) error {
			if o.Status != model.OrderStatusInProduction {
				return apperr.PreconditionFailed("order %d is %s, expected %s", id, o.Status, model.OrderStatusInProduction)
			}
			if input.DefectiveCount > o.UnitCount {
				return apperr.InvalidInput("defective count %d exceeds unit count %d", input.DefectiveCount, o.UnitCount)
			}

			today := uc.today()
			o.EndDate = &today
			o.DefectiveCount = input.DefectiveCount
			if err := uc.repo.Update(ctx, withStatus(o, model.OrderStatusProductionComplete), model.OrderStatusInProduction); err != nil {
				return err
			}

			if o.DefectiveCount > 0 {
				g, err := uc.returnDefects(ctx, o)
				if err != nil {
					return err
				}
				result.Grievance = g
			}

			rec := &model.QualityAssuranceRecord{
				OrderID:        id,
				Status:         model.QAStatusPending,
				InspectorName:  model.DefaultInspectorName,
				InspectionDate: today,
				DefectsFound:   0,
				Notes:          model.AutoQANote,
			}
			if err := uc.quality.Create(ctx, rec); err != nil {
				return apperr.Persistence("create QA record", err)
			}
			result.QARecord = rec

			event.Emit(ctx, uc.events, event.New(event.TypeProductionFinished, id, map[string]interface{}{
				"defective_count": o.DefectiveCount,
				"qa_id":           rec.ID,
			}))
			return nil
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("production finished",
		zap.Int64("order_id", id),
		zap.Int("defective_count", result.Order.DefectiveCount),
		zap.Int64("qa_id", result.QARecord.ID),
	)
	return result, nil
}

// returnDefects raises the customer grievance and puts the defective units' materials
// back into the ledger.
func (uc *orderUseCase) returnDefects(ctx context.Context, o *model.Order) (*model.Grievance, error) {
	g := &model.Grievance{
		OrderID:        o.ID,
		CustomerID:     o.CustomerID,
		Message:        grievance.DefectMessage(o.DefectiveCount, o.UnitCount),
		DefectiveCount: o.DefectiveCount,
	}
	if err := uc.grievances.Create(ctx, g); err != nil {
		return nil, apperr.Persistence("create grievance", err)
	}

	returned := requirement.ComputeRequirement(o.BOM, o.DefectiveCount)
	for _, name := range sortedKeys(returned) {
		_, err := uc.inventory.Restock(ctx, &invdto.RestockInput{
			MaterialName: name,
			Weight:       returned[name],
			MovementType: model.MovementDefectReturn,
			Reference:    invdto.OrderReference(o.ID),
		})
		if err != nil {
			return nil, err
		}
	}

	event.Emit(ctx, uc.events, event.New(event.TypeGrievanceCreated, o.ID, g))
	return g, nil
}

// mutate loads the order for update and runs fn in one transaction. Events emitted by fn
// are published only once the transaction has committed.
func (uc *orderUseCase) mutate(ctx context.Context, id int64, fn func(ctx context.Context, o *model.Order) error) (*model.Order, error) {
	var result *model.Order
	txCtx, buf := event.WithBuffer(ctx)

	err := uc.tx.WithinTx(txCtx, func(ctx context.Context) error {
		o, err := uc.repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return apperr.Persistence("load order", err)
		}
		if o == nil {
			return apperr.NotFound("order %d not found", id)
		}
		if err := fn(ctx, o); err != nil {
			return err
		}
		result = o
		return nil
	})
	if err != nil {
		buf.Discard()
		return nil, apperr.Persistence("update order", err)
	}

	buf.Flush(ctx, uc.events)
	return result, nil
}

func (uc *orderUseCase) locked(ctx context.Context, id int64, fn func() error) error {
	opts := cache.DefaultLockOptions
	if uc.settings.LockTTL > 0 {
		opts.TTL = uc.settings.LockTTL
	}

	err := cache.WithLock(ctx, uc.locker, order.LockKey(id), opts, fn)
	if errors.Is(err, cache.ErrLockBusy) {
		uc.logger.Warn("order lock busy", zap.Int64("order_id", id), zap.Error(err))
		return apperr.PreconditionFailed("order %d is being updated, try again later", id)
	}
	return err
}

func withStatus(o *model.Order, s model.OrderStatus) *model.Order {
	o.Status = s
	return o
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
