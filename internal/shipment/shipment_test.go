package shipment

import (
	"testing"
	"time"

	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
)

func TestBuild(t *testing.T) {
	now := time.Date(2026, 3, 30, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name      string
		units     int
		defective int
		shipped   int
	}{
		{name: "partial_defects", units: 25, defective: 3, shipped: 22},
		{name: "no_defects", units: 10, defective: 0, shipped: 10},
		{name: "all_defective", units: 4, defective: 4, shipped: 0},
		{name: "clamps_at_zero", units: 2, defective: 5, shipped: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &model.Order{ID: 7, CustomerID: 3, ProductID: 9, UnitCount: tt.units, DefectiveCount: tt.defective}

			s := Build(o, now, 7)

			if s.ShippedCount != tt.shipped {
				t.Errorf("Expected shipped %d, got %d", tt.shipped, s.ShippedCount)
			}
			if s.TotalCount != tt.units || s.DefectiveCount != tt.defective {
				t.Errorf("Unexpected counts %+v", s)
			}
			if s.OrderID != 7 || s.CustomerID != 3 || s.ProductID != 9 {
				t.Errorf("Expected order identity copied, got %+v", s)
			}
			want := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
			if !s.EstimatedArrivalDate.Equal(want) {
				t.Errorf("Expected arrival %s, got %s", want, s.EstimatedArrivalDate)
			}
		})
	}
}
