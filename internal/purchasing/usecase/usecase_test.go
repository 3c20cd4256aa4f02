package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/fekuna/omnipos-fulfillment-service/internal/event"
	inventoryusecase "github.com/fekuna/omnipos-fulfillment-service/internal/inventory/usecase"
	"github.com/fekuna/omnipos-fulfillment-service/internal/memstore"
	"github.com/fekuna/omnipos-fulfillment-service/internal/pricing"
	"github.com/fekuna/omnipos-fulfillment-service/internal/purchasing"
	"github.com/fekuna/omnipos-fulfillment-service/internal/purchasing/dto"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
)

func newUseCase(t *testing.T) (purchasing.UseCase, *memstore.Store, *event.Recorder) {
	t.Helper()
	table, err := pricing.Parse([]byte("materialPrices:\n  Gold: 6200\n  resin: 0.5\n"))
	if err != nil {
		t.Fatal(err)
	}
	store := memstore.New()
	log := logger.NewNop()
	rec := &event.Recorder{}
	inv := inventoryusecase.NewInventoryUseCase(store.Inventory(), rec, log, 100)
	return NewPurchasingUseCase(store.Purchasing(), inv, table, store, rec, log), store, rec
}

func TestCreatePricesLines(t *testing.T) {
	uc, _, _ := newUseCase(t)
	vendor := int64(5)

	pos, err := uc.Create(context.Background(), &dto.CreatePurchaseOrdersInput{
		VendorID: &vendor,
		Lines: []dto.PurchaseLine{
			{MaterialName: " GOLD ", WeightGrams: 2},
			{MaterialName: "resin", WeightGrams: 300},
		},
	})
	if err != nil {
		t.Fatalf("Failed to create: %v", err)
	}
	if len(pos) != 2 {
		t.Fatalf("Expected 2 purchase orders, got %d", len(pos))
	}
	if pos[0].MaterialName != "gold" || pos[0].TotalCost.String() != "12400" {
		t.Errorf("Unexpected gold line %+v", pos[0])
	}
	if pos[1].TotalCost.String() != "150" {
		t.Errorf("Expected resin cost 150, got %s", pos[1].TotalCost)
	}
}

func TestCreateValidation(t *testing.T) {
	uc, _, _ := newUseCase(t)

	tests := []struct {
		name  string
		input dto.CreatePurchaseOrdersInput
	}{
		{name: "no_lines", input: dto.CreatePurchaseOrdersInput{}},
		{name: "blank_material", input: dto.CreatePurchaseOrdersInput{Lines: []dto.PurchaseLine{{MaterialName: " ", WeightGrams: 1}}}},
		{name: "zero_weight", input: dto.CreatePurchaseOrdersInput{Lines: []dto.PurchaseLine{{MaterialName: "gold"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Create(context.Background(), &tt.input); apperr.KindOf(err) != apperr.KindInvalidInput {
				t.Errorf("Expected InvalidInput, got %v", err)
			}
		})
	}
}

func TestReceiveRestocksOnce(t *testing.T) {
	uc, store, rec := newUseCase(t)
	ctx := context.Background()
	store.Inventory().Seed("gold", 10)

	pos, err := uc.Create(ctx, &dto.CreatePurchaseOrdersInput{Lines: []dto.PurchaseLine{{MaterialName: "gold", WeightGrams: 40}}})
	if err != nil {
		t.Fatal(err)
	}
	id := pos[0].ID

	var wg sync.WaitGroup
	results := make([]*dto.ReceiveResult, 3)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = uc.Receive(ctx, id)
		}(i)
	}
	wg.Wait()

	fresh := 0
	for _, r := range results {
		if r == nil {
			t.Fatal("Expected every receipt to succeed")
		}
		if !r.AlreadyReceived {
			fresh++
		}
	}
	if fresh != 1 {
		t.Errorf("Expected exactly one receipt to restock, got %d", fresh)
	}

	onHand, _ := store.Inventory().GetOnHand(ctx, []string{"gold"})
	if onHand["gold"] != 50 {
		t.Errorf("Expected 50g after one receipt, got %v", onHand["gold"])
	}

	open, _ := uc.ListOpen(ctx)
	if len(open) != 0 {
		t.Errorf("Expected no open purchase orders, got %d", len(open))
	}

	received := 0
	for _, typ := range rec.Types() {
		if typ == event.TypePurchaseOrderReceived {
			received++
		}
	}
	if received != 1 {
		t.Errorf("Expected one PurchaseOrderReceived event, got %d", received)
	}
}

func TestReceiveUnknown(t *testing.T) {
	uc, _, _ := newUseCase(t)
	if _, err := uc.Receive(context.Background(), 77); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("Expected NotFound, got %v", err)
	}
}
