package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	catalogusecase "github.com/fekuna/omnipos-fulfillment-service/internal/catalog/usecase"
	"github.com/fekuna/omnipos-fulfillment-service/internal/event"
	inventoryusecase "github.com/fekuna/omnipos-fulfillment-service/internal/inventory/usecase"
	"github.com/fekuna/omnipos-fulfillment-service/internal/memstore"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/internal/order"
	orderdto "github.com/fekuna/omnipos-fulfillment-service/internal/order/dto"
	orderusecase "github.com/fekuna/omnipos-fulfillment-service/internal/order/usecase"
	"github.com/fekuna/omnipos-fulfillment-service/internal/quality"
	"github.com/fekuna/omnipos-fulfillment-service/internal/quality/dto"
	"github.com/fekuna/omnipos-fulfillment-service/internal/requirement"
	"github.com/fekuna/omnipos-fulfillment-service/internal/shipment"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
)

var testNow = time.Date(2026, 3, 30, 10, 0, 0, 0, time.UTC)

type fixture struct {
	store  *memstore.Store
	orders order.UseCase
	uc     quality.UseCase
	events *event.Recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memstore.New()
	clock := func() time.Time { return testNow }
	store.SetClock(clock)

	log := logger.NewNop()
	rec := &event.Recorder{}
	locker := memstore.NewLocker()
	inv := inventoryusecase.NewInventoryUseCase(store.Inventory(), rec, log, 100)

	store.Catalog().Seed(model.Product{ID: 1, Name: "Gold nib fountain pen", UnitCost: 100, Weights: model.BillOfMaterials{"gold": 2, "resin": 4}})
	store.Inventory().Seed("gold", 500)
	store.Inventory().Seed("resin", 500)

	orders := orderusecase.NewOrderUseCase(orderusecase.Dependencies{
		Orders:     store.Orders(),
		Inventory:  inv,
		Resolver:   requirement.NewResolver(inv, log),
		Catalog:    catalogusecase.NewCatalogUseCase(store.Catalog(), nil, 0, log),
		Quality:    store.Quality(),
		Grievances: store.Grievances(),
		Tx:         store,
		Locker:     locker,
		Events:     rec,
		Logger:     log,
		Clock:      clock,
		Settings:   orderusecase.Settings{TaxPercent: 18, ProductionDays: 5, QualityControlDays: 1},
	})

	uc := NewQualityUseCase(Dependencies{
		Quality:          store.Quality(),
		Orders:           store.Orders(),
		Shipments:        store.Shipments(),
		Tx:               store,
		Locker:           locker,
		Events:           rec,
		Logger:           log,
		Clock:            clock,
		ShippingLeadDays: 7,
	})

	return &fixture{store: store, orders: orders, uc: uc, events: rec}
}

// finishedOrder drives an order through production and returns it with its QA record.
func (f *fixture) finishedOrder(t *testing.T, units, defective int) (*model.Order, *model.QualityAssuranceRecord) {
	t.Helper()
	ctx := context.Background()

	o, err := f.orders.Create(ctx, &orderdto.CreateOrderInput{CustomerID: 11, ProductID: 1, UnitCount: units})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.orders.Accept(ctx, o.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := f.orders.StartProduction(ctx, o.ID); err != nil {
		t.Fatal(err)
	}
	res, err := f.orders.FinishProduction(ctx, &orderdto.FinishProductionInput{OrderID: o.ID, DefectiveCount: defective})
	if err != nil {
		t.Fatal(err)
	}
	return res.Order, res.QARecord
}

func TestPassQAShipsNonDefectiveUnits(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o, rec := f.finishedOrder(t, 25, 3)

	res, err := f.uc.PassQA(ctx, &dto.PassQAInput{QAID: rec.ID, OrderID: o.ID, InspectorName: "R. Iyer", Notes: "clean"})
	if err != nil {
		t.Fatalf("Failed to pass QA: %v", err)
	}

	if !res.Created {
		t.Error("Expected a new shipment")
	}
	if res.Record.Status != model.QAStatusPassed || res.Record.InspectorName != "R. Iyer" {
		t.Errorf("Unexpected record %+v", res.Record)
	}
	if res.Shipment.ShippedCount != 22 || res.Shipment.TotalCount != 25 || res.Shipment.DefectiveCount != 3 {
		t.Errorf("Unexpected shipment counts %+v", res.Shipment)
	}
	wantArrival := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	if !res.Shipment.EstimatedArrivalDate.Equal(wantArrival) {
		t.Errorf("Expected arrival %s, got %s", wantArrival, res.Shipment.EstimatedArrivalDate)
	}

	shipped, _ := f.orders.Get(ctx, o.ID)
	if shipped.Status != model.OrderStatusShipped {
		t.Errorf("Expected order shipped, got %s", shipped.Status)
	}
}

func TestPassQAIsAtMostOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o, rec := f.finishedOrder(t, 10, 0)
	input := &dto.PassQAInput{QAID: rec.ID, OrderID: o.ID}

	first, err := f.uc.PassQA(ctx, input)
	if err != nil {
		t.Fatal(err)
	}
	second, err := f.uc.PassQA(ctx, input)
	if err != nil {
		t.Fatalf("Expected repeated pass to succeed, got %v", err)
	}

	if second.Created {
		t.Error("Expected the repeated pass to reuse the shipment")
	}
	if second.Shipment.ID != first.Shipment.ID {
		t.Errorf("Expected shipment %d, got %d", first.Shipment.ID, second.Shipment.ID)
	}

	_, total, _ := f.store.Shipments().FindAll(ctx, &shipment.Filters{OrderID: o.ID})
	if total != 1 {
		t.Errorf("Expected one shipment, got %d", total)
	}

	created := 0
	for _, typ := range f.events.Types() {
		if typ == event.TypeShipmentCreated {
			created++
		}
	}
	if created != 1 {
		t.Errorf("Expected one ShipmentCreated event, got %d", created)
	}
}

func TestPassQARejectsMismatchedOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o, rec := f.finishedOrder(t, 2, 0)

	tests := []struct {
		name  string
		input dto.PassQAInput
		kind  apperr.Kind
	}{
		{name: "unknown_record", input: dto.PassQAInput{QAID: 999, OrderID: o.ID}, kind: apperr.KindNotFound},
		{name: "other_order", input: dto.PassQAInput{QAID: rec.ID, OrderID: o.ID + 1}, kind: apperr.KindNotFound},
		{name: "missing_ids", input: dto.PassQAInput{}, kind: apperr.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.PassQA(ctx, &tt.input)
			if apperr.KindOf(err) != tt.kind {
				t.Errorf("Expected %s, got %v", tt.kind, err)
			}
		})
	}

	got, _ := f.orders.Get(ctx, o.ID)
	if got.Status != model.OrderStatusProductionComplete {
		t.Errorf("Expected order untouched, got %s", got.Status)
	}
}

func TestFailQA(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o, rec := f.finishedOrder(t, 5, 1)

	failed, err := f.uc.FailQA(ctx, &dto.FailQAInput{QAID: rec.ID, OrderID: o.ID, InspectorName: "M. Sen", DefectsFound: 2, Notes: "ink leak"})
	if err != nil {
		t.Fatalf("Failed to fail QA: %v", err)
	}
	if failed.Status != model.QAStatusFailed || failed.DefectsFound != 2 {
		t.Errorf("Unexpected record %+v", failed)
	}

	got, _ := f.orders.Get(ctx, o.ID)
	if got.Status != model.OrderStatusProductionComplete {
		t.Errorf("Expected order to remain production_complete, got %s", got.Status)
	}
	if sh, _ := f.store.Shipments().FindByOrderID(ctx, o.ID); sh != nil {
		t.Error("Expected no shipment after a failed QA")
	}

	if _, err := f.uc.PassQA(ctx, &dto.PassQAInput{QAID: rec.ID, OrderID: o.ID}); apperr.KindOf(err) != apperr.KindPreconditionFailed {
		t.Errorf("Expected passing a failed record to be rejected, got %v", err)
	}
}

func TestFailQAAfterPass(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o, rec := f.finishedOrder(t, 5, 0)

	if _, err := f.uc.PassQA(ctx, &dto.PassQAInput{QAID: rec.ID, OrderID: o.ID}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.uc.FailQA(ctx, &dto.FailQAInput{QAID: rec.ID, OrderID: o.ID}); apperr.KindOf(err) != apperr.KindPreconditionFailed {
		t.Errorf("Expected PreconditionFailed, got %v", err)
	}
}

func TestListAndGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o, rec := f.finishedOrder(t, 1, 0)

	got, err := f.uc.Get(ctx, rec.ID)
	if err != nil || got.OrderID != o.ID {
		t.Errorf("Expected record for order %d, got %+v (%v)", o.ID, got, err)
	}
	if _, err := f.uc.Get(ctx, 404); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("Expected NotFound, got %v", err)
	}

	items, total, err := f.uc.List(ctx, &dto.QAFilters{Status: model.QAStatusPending})
	if err != nil || total != 1 || len(items) != 1 {
		t.Errorf("Expected one pending record, got %d (%v)", total, err)
	}
}
