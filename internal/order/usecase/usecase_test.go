package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	catalogusecase "github.com/fekuna/omnipos-fulfillment-service/internal/catalog/usecase"
	"github.com/fekuna/omnipos-fulfillment-service/internal/event"
	"github.com/fekuna/omnipos-fulfillment-service/internal/grievance"
	"github.com/fekuna/omnipos-fulfillment-service/internal/inventory"
	invdto "github.com/fekuna/omnipos-fulfillment-service/internal/inventory/dto"
	inventoryusecase "github.com/fekuna/omnipos-fulfillment-service/internal/inventory/usecase"
	"github.com/fekuna/omnipos-fulfillment-service/internal/memstore"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/internal/order"
	"github.com/fekuna/omnipos-fulfillment-service/internal/order/dto"
	qadto "github.com/fekuna/omnipos-fulfillment-service/internal/quality/dto"
	"github.com/fekuna/omnipos-fulfillment-service/internal/requirement"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
)

var testNow = time.Date(2026, 3, 30, 10, 0, 0, 0, time.UTC)

type fixture struct {
	store  *memstore.Store
	inv    inventory.UseCase
	uc     order.UseCase
	events *event.Recorder
}

type fixtureOption func(deps *Dependencies)

func newFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()

	store := memstore.New()
	clock := func() time.Time { return testNow }
	store.SetClock(clock)

	log := logger.NewNop()
	rec := &event.Recorder{}
	inv := inventoryusecase.NewInventoryUseCase(store.Inventory(), rec, log, 100)

	store.Catalog().Seed(model.Product{ID: 1, Name: "Gold nib fountain pen", UnitCost: 100, Weights: model.BillOfMaterials{"Gold": 2, "resin": 4}})
	store.Catalog().Seed(model.Product{ID: 2, Name: "Gold ballpoint", UnitCost: 40, Weights: model.BillOfMaterials{"gold": 1}})

	deps := Dependencies{
		Orders:     store.Orders(),
		Inventory:  inv,
		Resolver:   requirement.NewResolver(inv, log),
		Catalog:    catalogusecase.NewCatalogUseCase(store.Catalog(), nil, 0, log),
		Quality:    store.Quality(),
		Grievances: store.Grievances(),
		Tx:         store,
		Locker:     memstore.NewLocker(),
		Events:     rec,
		Logger:     log,
		Clock:      clock,
		Settings: Settings{
			TaxPercent:         18,
			ProductionDays:     5,
			RawMaterialDays:    3,
			QualityControlDays: 1,
			BacklogDays:        2,
			BacklogThreshold:   3,
			LockTTL:            time.Second,
		},
	}
	for _, opt := range opts {
		opt(&deps)
	}

	return &fixture{store: store, inv: inv, uc: NewOrderUseCase(deps), events: rec}
}

func (f *fixture) onHand(t *testing.T, name string) float64 {
	t.Helper()
	m, err := f.inv.GetOnHand(context.Background(), []string{name})
	if err != nil {
		t.Fatalf("Failed to read ledger: %v", err)
	}
	return m[name]
}

// acceptedOrder creates and accepts an order for units of product.
func (f *fixture) acceptedOrder(t *testing.T, productID int64, units int) *model.Order {
	t.Helper()
	ctx := context.Background()

	o, err := f.uc.Create(ctx, &dto.CreateOrderInput{CustomerID: 11, ProductID: productID, UnitCount: units})
	if err != nil {
		t.Fatalf("Failed to create order: %v", err)
	}
	o, err = f.uc.Accept(ctx, o.ID)
	if err != nil {
		t.Fatalf("Failed to accept order: %v", err)
	}
	return o
}

func TestCreate(t *testing.T) {
	f := newFixture(t)
	f.store.Inventory().Seed("gold", 1000)
	f.store.Inventory().Seed("resin", 1000)

	o, err := f.uc.Create(context.Background(), &dto.CreateOrderInput{CustomerID: 11, ProductID: 1, UnitCount: 25})
	if err != nil {
		t.Fatalf("Failed to create: %v", err)
	}

	if o.Status != model.OrderStatusAwaitingConfirmation {
		t.Errorf("Expected awaiting_confirmation, got %s", o.Status)
	}
	if o.BOM["gold"] != 2 || o.BOM["resin"] != 4 {
		t.Errorf("Expected BOM snapshot from the catalog, got %v", o.BOM)
	}
	if o.Subtotal.String() != "2500" || o.TaxAmount.String() != "450" || o.GrandTotal.String() != "2950" {
		t.Errorf("Unexpected pricing: subtotal %s tax %s total %s", o.Subtotal, o.TaxAmount, o.GrandTotal)
	}
	wantEnd := model.Date(testNow).AddDate(0, 0, 6)
	if o.EndDate == nil || !o.EndDate.Equal(wantEnd) {
		t.Errorf("Expected quoted end %s, got %v", wantEnd, o.EndDate)
	}
	if f.onHand(t, "gold") != 1000 {
		t.Error("Expected creation to leave the ledger untouched")
	}
}

func TestCreateQuotesRawMaterialDaysWhenShort(t *testing.T) {
	f := newFixture(t)

	o, err := f.uc.Create(context.Background(), &dto.CreateOrderInput{CustomerID: 11, ProductID: 1, UnitCount: 5})
	if err != nil {
		t.Fatalf("Failed to create: %v", err)
	}
	wantEnd := model.Date(testNow).AddDate(0, 0, 9)
	if !o.EndDate.Equal(wantEnd) {
		t.Errorf("Expected quoted end %s, got %s", wantEnd, o.EndDate)
	}
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input dto.CreateOrderInput
		kind  apperr.Kind
	}{
		{name: "zero_units", input: dto.CreateOrderInput{CustomerID: 1, ProductID: 1, UnitCount: 0}, kind: apperr.KindInvalidInput},
		{name: "negative_units", input: dto.CreateOrderInput{CustomerID: 1, ProductID: 1, UnitCount: -2}, kind: apperr.KindInvalidInput},
		{name: "missing_customer", input: dto.CreateOrderInput{ProductID: 1, UnitCount: 1}, kind: apperr.KindInvalidInput},
		{name: "unknown_product", input: dto.CreateOrderInput{CustomerID: 1, ProductID: 99, UnitCount: 1}, kind: apperr.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Create(ctx, &tt.input)
			if apperr.KindOf(err) != tt.kind {
				t.Errorf("Expected %s, got %v", tt.kind, err)
			}
		})
	}
}

func TestAcceptIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := f.acceptedOrder(t, 1, 1)

	again, err := f.uc.Accept(ctx, o.ID)
	if err != nil {
		t.Fatalf("Expected second accept to succeed, got %v", err)
	}
	if again.Status != model.OrderStatusAccepted {
		t.Errorf("Expected accepted, got %s", again.Status)
	}

	accepted := 0
	for _, typ := range f.events.Types() {
		if typ == event.TypeOrderAccepted {
			accepted++
		}
	}
	if accepted != 1 {
		t.Errorf("Expected one OrderAccepted event, got %d", accepted)
	}
}

func TestAcceptMissingOrder(t *testing.T) {
	f := newFixture(t)
	if _, err := f.uc.Accept(context.Background(), 404); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Expected NotFound, got %v", err)
	}
}

func TestCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.Inventory().Seed("gold", 100)
	f.store.Inventory().Seed("resin", 100)

	o := f.acceptedOrder(t, 1, 1)
	cancelled, err := f.uc.Cancel(ctx, o.ID)
	if err != nil {
		t.Fatalf("Failed to cancel: %v", err)
	}
	if cancelled.Status != model.OrderStatusCancelled {
		t.Errorf("Expected cancelled, got %s", cancelled.Status)
	}
	if _, err := f.uc.Accept(ctx, o.ID); apperr.KindOf(err) != apperr.KindPreconditionFailed {
		t.Errorf("Expected accepting a cancelled order to fail, got %v", err)
	}

	started := f.acceptedOrder(t, 1, 1)
	if _, err := f.uc.StartProduction(ctx, started.ID); err != nil {
		t.Fatalf("Failed to start: %v", err)
	}
	if _, err := f.uc.Cancel(ctx, started.ID); apperr.KindOf(err) != apperr.KindPreconditionFailed {
		t.Errorf("Expected cancelling an in-production order to fail, got %v", err)
	}
}

func TestMarkPaid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.acceptedOrder(t, 1, 1)
	second := f.acceptedOrder(t, 1, 1)

	paid, err := f.uc.MarkPaid(ctx, first.ID)
	if err != nil {
		t.Fatalf("Failed to mark paid: %v", err)
	}
	if !paid.IsPaid {
		t.Error("Expected order to be paid")
	}
	if _, err := f.uc.MarkPaid(ctx, first.ID); err != nil {
		t.Errorf("Expected repeated mark paid to succeed, got %v", err)
	}

	other, _ := f.uc.Get(ctx, second.ID)
	if other.IsPaid {
		t.Error("Expected other orders of the customer to stay unpaid")
	}
}

func TestStartProductionPreconditions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.Inventory().Seed("gold", 100)
	f.store.Inventory().Seed("resin", 100)

	o, _ := f.uc.Create(ctx, &dto.CreateOrderInput{CustomerID: 11, ProductID: 1, UnitCount: 1})
	if _, err := f.uc.StartProduction(ctx, o.ID); apperr.KindOf(err) != apperr.KindPreconditionFailed {
		t.Errorf("Expected unaccepted order to be rejected, got %v", err)
	}
	if _, err := f.uc.StartProduction(ctx, 404); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("Expected NotFound, got %v", err)
	}
	if f.onHand(t, "gold") != 100 {
		t.Error("Expected rejected starts to leave the ledger untouched")
	}
}

func TestStartProductionInsufficientMaterials(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.Inventory().Seed("gold", 100)
	f.store.Inventory().Seed("resin", 10)

	o := f.acceptedOrder(t, 1, 25)
	_, err := f.uc.StartProduction(ctx, o.ID)

	if apperr.KindOf(err) != apperr.KindInsufficientMaterials {
		t.Fatalf("Expected InsufficientMaterials, got %v", err)
	}
	shortages := apperr.ShortagesOf(err)
	if len(shortages) != 1 || shortages[0].Material != "resin" || shortages[0].RequiredGrams != 100 {
		t.Errorf("Unexpected shortages %+v", shortages)
	}

	got, _ := f.uc.Get(ctx, o.ID)
	if got.Status != model.OrderStatusAccepted {
		t.Errorf("Expected order to stay accepted, got %s", got.Status)
	}
	if f.onHand(t, "gold") != 100 || f.onHand(t, "resin") != 10 {
		t.Error("Expected ledger untouched")
	}
}

func TestProductionLifecycleWithDefects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.Inventory().Seed("gold", 200)
	f.store.Inventory().Seed("resin", 300)

	o := f.acceptedOrder(t, 1, 25)

	started, err := f.uc.StartProduction(ctx, o.ID)
	if err != nil {
		t.Fatalf("Failed to start production: %v", err)
	}
	if started.Status != model.OrderStatusInProduction {
		t.Errorf("Expected in_production, got %s", started.Status)
	}
	if started.StartDate == nil || !started.StartDate.Equal(model.Date(testNow)) {
		t.Errorf("Expected start date today, got %v", started.StartDate)
	}
	if f.onHand(t, "gold") != 150 || f.onHand(t, "resin") != 200 {
		t.Fatalf("Expected 50g gold and 100g resin reserved, got gold %v resin %v", f.onHand(t, "gold"), f.onHand(t, "resin"))
	}

	res, err := f.uc.FinishProduction(ctx, &dto.FinishProductionInput{OrderID: o.ID, DefectiveCount: 3})
	if err != nil {
		t.Fatalf("Failed to finish production: %v", err)
	}

	if res.Order.Status != model.OrderStatusProductionComplete || res.Order.DefectiveCount != 3 {
		t.Errorf("Unexpected order after finish: %+v", res.Order)
	}
	if f.onHand(t, "gold") != 156 || f.onHand(t, "resin") != 212 {
		t.Errorf("Expected defect materials returned, got gold %v resin %v", f.onHand(t, "gold"), f.onHand(t, "resin"))
	}

	if res.Grievance == nil || res.Grievance.DefectiveCount != 3 || res.Grievance.Message != grievance.DefectMessage(3, 25) {
		t.Errorf("Unexpected grievance %+v", res.Grievance)
	}
	if res.QARecord == nil || res.QARecord.Status != model.QAStatusPending || res.QARecord.InspectorName != model.DefaultInspectorName {
		t.Errorf("Unexpected QA record %+v", res.QARecord)
	}

	moves, _, err := f.inv.ListMovements(ctx, &invdto.MovementFilters{ReferenceType: "order", MovementType: string(model.MovementDefectReturn)})
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 2 {
		t.Errorf("Expected two defect return movements, got %d", len(moves))
	}

	records, _, _ := f.store.Quality().FindAll(ctx, &qadto.QAFilters{OrderID: o.ID})
	if len(records) != 1 {
		t.Errorf("Expected exactly one QA record, got %d", len(records))
	}
}

func TestFinishProductionWithoutDefects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.Inventory().Seed("gold", 100)

	o := f.acceptedOrder(t, 2, 10)
	if _, err := f.uc.StartProduction(ctx, o.ID); err != nil {
		t.Fatal(err)
	}
	res, err := f.uc.FinishProduction(ctx, &dto.FinishProductionInput{OrderID: o.ID})
	if err != nil {
		t.Fatalf("Failed to finish: %v", err)
	}
	if res.Grievance != nil {
		t.Error("Expected no grievance without defects")
	}
	if f.onHand(t, "gold") != 90 {
		t.Errorf("Expected no materials returned, got %v", f.onHand(t, "gold"))
	}
}

func TestFinishProductionValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.Inventory().Seed("gold", 100)

	o := f.acceptedOrder(t, 2, 10)
	if _, err := f.uc.FinishProduction(ctx, &dto.FinishProductionInput{OrderID: o.ID}); apperr.KindOf(err) != apperr.KindPreconditionFailed {
		t.Errorf("Expected finishing an accepted order to fail, got %v", err)
	}

	if _, err := f.uc.StartProduction(ctx, o.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := f.uc.FinishProduction(ctx, &dto.FinishProductionInput{OrderID: o.ID, DefectiveCount: 11}); apperr.KindOf(err) != apperr.KindInvalidInput {
		t.Errorf("Expected InvalidInput for too many defects, got %v", err)
	}
	if _, err := f.uc.FinishProduction(ctx, &dto.FinishProductionInput{OrderID: o.ID, DefectiveCount: -1}); apperr.KindOf(err) != apperr.KindInvalidInput {
		t.Errorf("Expected InvalidInput for negative defects, got %v", err)
	}

	got, _ := f.uc.Get(ctx, o.ID)
	if got.Status != model.OrderStatusInProduction {
		t.Errorf("Expected order to remain in production, got %s", got.Status)
	}
}

type failingRestock struct {
	inventory.UseCase
}

func (failingRestock) Restock(context.Context, *invdto.RestockInput) (*model.Material, error) {
	return nil, apperr.Persistence("restock", errors.New("connection reset"))
}

func TestFinishProductionRollsBackWhenRestockFails(t *testing.T) {
	f := newFixture(t, func(deps *Dependencies) {
		deps.Inventory = failingRestock{UseCase: deps.Inventory}
	})
	ctx := context.Background()
	f.store.Inventory().Seed("gold", 200)
	f.store.Inventory().Seed("resin", 300)

	o := f.acceptedOrder(t, 1, 25)
	if _, err := f.uc.StartProduction(ctx, o.ID); err != nil {
		t.Fatal(err)
	}

	_, err := f.uc.FinishProduction(ctx, &dto.FinishProductionInput{OrderID: o.ID, DefectiveCount: 3})
	if apperr.KindOf(err) != apperr.KindPersistenceFailure {
		t.Fatalf("Expected PersistenceFailure, got %v", err)
	}

	got, _ := f.uc.Get(ctx, o.ID)
	if got.Status != model.OrderStatusInProduction || got.DefectiveCount != 0 {
		t.Errorf("Expected order unchanged, got %+v", got)
	}
	gs, _ := f.store.Grievances().FindAll(ctx, &grievance.Filters{OrderID: o.ID})
	if len(gs) != 0 {
		t.Errorf("Expected no grievance, got %d", len(gs))
	}
	rec, _ := f.store.Quality().FindByOrderID(ctx, o.ID)
	if rec != nil {
		t.Error("Expected no QA record")
	}
	if f.onHand(t, "gold") != 150 {
		t.Errorf("Expected ledger unchanged at 150, got %v", f.onHand(t, "gold"))
	}
	for _, typ := range f.events.Types() {
		if typ == event.TypeProductionFinished || typ == event.TypeGrievanceCreated {
			t.Errorf("Expected no %s event after rollback", typ)
		}
	}
}

func TestConcurrentStartsNeverOversell(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.Inventory().Seed("gold", 100)

	a := f.acceptedOrder(t, 2, 60)
	b := f.acceptedOrder(t, 2, 60)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []int64{a.ID, b.ID} {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			_, errs[i] = f.uc.StartProduction(ctx, id)
		}(i, id)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case apperr.KindOf(err) != apperr.KindInsufficientMaterials:
			t.Errorf("Expected InsufficientMaterials for the loser, got %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("Expected exactly one start to succeed, got %d", succeeded)
	}
	if got := f.onHand(t, "gold"); got != 40 {
		t.Errorf("Expected 40g left, got %v", got)
	}
}

func TestCheckAvailability(t *testing.T) {
	f := newFixture(t)
	f.store.Inventory().Seed("gold", 30)

	o, _ := f.uc.Create(context.Background(), &dto.CreateOrderInput{CustomerID: 1, ProductID: 1, UnitCount: 10})
	avail, err := f.uc.CheckAvailability(context.Background(), o.ID)
	if err != nil {
		t.Fatal(err)
	}
	if avail.AllAvailable {
		t.Fatal("Expected resin to be missing")
	}
	if len(avail.UnavailableMaterials) != 1 || avail.UnavailableMaterials[0] != "resin" {
		t.Errorf("Unexpected unavailable list %v", avail.UnavailableMaterials)
	}
}

func TestList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.acceptedOrder(t, 1, 1)
	f.uc.Create(ctx, &dto.CreateOrderInput{CustomerID: 12, ProductID: 1, UnitCount: 1})

	items, total, err := f.uc.List(ctx, &dto.OrderFilters{Status: model.OrderStatusAccepted})
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || len(items) != 1 {
		t.Errorf("Expected one accepted order, got %d", total)
	}

	if _, _, err := f.uc.List(ctx, &dto.OrderFilters{Status: "lost"}); apperr.KindOf(err) != apperr.KindInvalidInput {
		t.Errorf("Expected InvalidInput for unknown status, got %v", err)
	}
}
