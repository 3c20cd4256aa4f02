package requirement

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
)

type stubStock struct {
	onHand map[string]float64
	err    error
	asked  []string
}

func (s *stubStock) GetOnHand(_ context.Context, names []string) (map[string]float64, error) {
	s.asked = names
	if s.err != nil {
		return nil, s.err
	}
	out := make(map[string]float64, len(names))
	for _, n := range names {
		out[n] = s.onHand[n]
	}
	return out, nil
}

func TestComputeRequirement(t *testing.T) {
	tests := []struct {
		name      string
		bom       model.BillOfMaterials
		unitCount int
		expected  map[string]float64
	}{
		{
			name:      "multiplies_per_unit_weights",
			bom:       model.BillOfMaterials{"gold": 2.5, "resin": 10},
			unitCount: 4,
			expected:  map[string]float64{"gold": 10, "resin": 40},
		},
		{
			name:      "drops_invalid_entries",
			bom:       model.BillOfMaterials{"gold": 1, "silver": 0, "steel": -3, "ink": math.NaN(), "dust": math.Inf(1)},
			unitCount: 2,
			expected:  map[string]float64{"gold": 2},
		},
		{
			name:      "merges_names_that_normalize_equal",
			bom:       model.BillOfMaterials{"Gold": 1, " gold ": 2},
			unitCount: 3,
			expected:  map[string]float64{"gold": 9},
		},
		{
			name:      "zero_units",
			bom:       model.BillOfMaterials{"gold": 1},
			unitCount: 0,
			expected:  map[string]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeRequirement(tt.bom, tt.unitCount)
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %d materials, got %d (%v)", len(tt.expected), len(got), got)
			}
			for name, want := range tt.expected {
				if got[name] != want {
					t.Errorf("Expected %s=%v, got %v", name, want, got[name])
				}
			}
		})
	}
}

func TestCheckAvailability(t *testing.T) {
	stock := &stubStock{onHand: map[string]float64{"gold": 100, "resin": 10}}
	r := NewResolver(stock, logger.NewNop())

	result := r.CheckAvailability(context.Background(), map[string]float64{"resin": 40, "gold": 60})

	if result.AllAvailable {
		t.Fatal("Expected not all available")
	}
	if len(result.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(result.Items))
	}
	if result.Items[0].Material != "gold" || !result.Items[0].IsAvailable {
		t.Errorf("Expected gold available first, got %+v", result.Items[0])
	}
	if result.Items[1].Material != "resin" || result.Items[1].IsAvailable || result.Items[1].AvailableGrams != 10 {
		t.Errorf("Expected resin short with 10g, got %+v", result.Items[1])
	}
	if len(result.UnavailableMaterials) != 1 || result.UnavailableMaterials[0] != "resin" {
		t.Errorf("Unexpected unavailable list %v", result.UnavailableMaterials)
	}

	shortages := result.Shortages()
	if len(shortages) != 1 || shortages[0].RequiredGrams != 40 {
		t.Errorf("Unexpected shortages %v", shortages)
	}
}

func TestCheckAvailabilityExactAmountIsAvailable(t *testing.T) {
	stock := &stubStock{onHand: map[string]float64{"gold": 60}}
	r := NewResolver(stock, logger.NewNop())

	result := r.CheckAvailability(context.Background(), map[string]float64{"gold": 60})
	if !result.AllAvailable {
		t.Errorf("Expected exact on-hand weight to satisfy the requirement, got %+v", result.Items)
	}
}

func TestCheckAvailabilityMissingMaterialIsZero(t *testing.T) {
	stock := &stubStock{onHand: map[string]float64{}}
	r := NewResolver(stock, logger.NewNop())

	result := r.CheckAvailability(context.Background(), map[string]float64{"platinum": 1})
	if result.AllAvailable || result.Items[0].AvailableGrams != 0 {
		t.Errorf("Expected missing material to resolve to 0, got %+v", result.Items)
	}
}

func TestCheckAvailabilityReadFailureIsConservative(t *testing.T) {
	stock := &stubStock{err: errors.New("connection refused")}
	r := NewResolver(stock, logger.NewNop())

	result := r.CheckAvailability(context.Background(), map[string]float64{"gold": 1, "resin": 1})

	if result.AllAvailable {
		t.Fatal("Expected read failure to report unavailable")
	}
	if len(result.UnavailableMaterials) != 2 {
		t.Errorf("Expected every material unavailable, got %v", result.UnavailableMaterials)
	}
	for _, it := range result.Items {
		if it.AvailableGrams != 0 || it.IsAvailable {
			t.Errorf("Expected zeroed item, got %+v", it)
		}
	}
}

func TestCheckAvailabilityEmptyRequirement(t *testing.T) {
	stock := &stubStock{}
	r := NewResolver(stock, logger.NewNop())

	result := r.CheckAvailability(context.Background(), map[string]float64{"gold": 0})
	if !result.AllAvailable || len(result.Items) != 0 {
		t.Errorf("Expected empty requirement to be available, got %+v", result)
	}
	if stock.asked != nil {
		t.Error("Expected no ledger read for an empty requirement")
	}
}
