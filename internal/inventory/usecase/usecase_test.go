package usecase

import (
	"context"
	"math"
	"testing"

	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/fekuna/omnipos-fulfillment-service/internal/event"
	"github.com/fekuna/omnipos-fulfillment-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-fulfillment-service/internal/memstore"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
)

func TestRestock(t *testing.T) {
	store := memstore.New()
	rec := &event.Recorder{}
	uc := NewInventoryUseCase(store.Inventory(), rec, logger.NewNop(), 100)
	ctx := context.Background()

	m, err := uc.Restock(ctx, &dto.RestockInput{MaterialName: "  Gold ", Weight: 12.5})
	if err != nil {
		t.Fatalf("Failed to restock: %v", err)
	}
	if m.Name != "gold" || m.OnHandWeight != 12.5 {
		t.Errorf("Unexpected material %+v", m)
	}

	moves, _, _ := uc.ListMovements(ctx, &dto.MovementFilters{MaterialName: "GOLD"})
	if len(moves) != 1 || moves[0].MovementType != model.MovementRestock {
		t.Errorf("Expected one restock movement, got %+v", moves)
	}
	if types := rec.Types(); len(types) != 1 || types[0] != event.TypeInventoryRestocked {
		t.Errorf("Expected InventoryRestocked event, got %v", types)
	}
}

func TestRestockValidation(t *testing.T) {
	uc := NewInventoryUseCase(memstore.New().Inventory(), nil, logger.NewNop(), 100)

	tests := []struct {
		name  string
		input dto.RestockInput
	}{
		{name: "negative_weight", input: dto.RestockInput{MaterialName: "gold", Weight: -1}},
		{name: "nan_weight", input: dto.RestockInput{MaterialName: "gold", Weight: math.NaN()}},
		{name: "blank_name", input: dto.RestockInput{MaterialName: "  ", Weight: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Restock(context.Background(), &tt.input); apperr.KindOf(err) != apperr.KindInvalidInput {
				t.Errorf("Expected InvalidInput, got %v", err)
			}
		})
	}
}

func TestReserveNormalizesNames(t *testing.T) {
	store := memstore.New()
	store.Inventory().Seed("gold", 10)
	uc := NewInventoryUseCase(store.Inventory(), nil, logger.NewNop(), 100)
	ctx := context.Background()

	if err := uc.Reserve(ctx, map[string]float64{"Gold": 4, "gold ": 4}, dto.OrderReference(1)); err != nil {
		t.Fatalf("Failed to reserve: %v", err)
	}
	onHand, _ := uc.GetOnHand(ctx, []string{"GOLD"})
	if onHand["gold"] != 2 {
		t.Errorf("Expected 2g left, got %v", onHand["gold"])
	}

	err := uc.Reserve(ctx, map[string]float64{"gold": 3}, dto.OrderReference(2))
	if apperr.KindOf(err) != apperr.KindInsufficientInventory {
		t.Errorf("Expected InsufficientInventory, got %v", err)
	}
	if err := uc.Reserve(ctx, map[string]float64{"gold": -1}, dto.OrderReference(3)); apperr.KindOf(err) != apperr.KindInvalidInput {
		t.Errorf("Expected InvalidInput, got %v", err)
	}
}

func TestBelowThresholdDefault(t *testing.T) {
	store := memstore.New()
	store.Inventory().Seed("gold", 50)
	store.Inventory().Seed("resin", 150)
	uc := NewInventoryUseCase(store.Inventory(), nil, logger.NewNop(), 100)

	items, err := uc.BelowThreshold(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Name != "gold" {
		t.Errorf("Expected only gold below the default threshold, got %+v", items)
	}

	items, _ = uc.BelowThreshold(context.Background(), 200)
	if len(items) != 2 {
		t.Errorf("Expected both materials below 200g, got %d", len(items))
	}
}
