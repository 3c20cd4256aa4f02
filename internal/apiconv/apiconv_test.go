package apiconv

import (
	"testing"
	"time"

	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/shopspring/decimal"
)

func TestOrder(t *testing.T) {
	start := time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC)
	o := &model.Order{
		ID:         4,
		UnitCount:  25,
		Status:     model.OrderStatusInProduction,
		StartDate:  &start,
		GrandTotal: decimal.RequireFromString("2950"),
	}

	msg := Order(o)
	if msg.StartDate != "2026-03-30" || msg.EndDate != "" {
		t.Errorf("Unexpected dates %q %q", msg.StartDate, msg.EndDate)
	}
	if msg.GrandTotal != "2950.00" {
		t.Errorf("Expected 2950.00, got %s", msg.GrandTotal)
	}
	if msg.Status != "in_production" || msg.UnitCount != 25 {
		t.Errorf("Unexpected message %+v", msg)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		wantNil bool
		wantErr bool
	}{
		{in: "", wantNil: true},
		{in: "2026-04-06"},
		{in: "2026-04-06T10:00:00Z"},
		{in: "06/04/2026", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: unexpected error %v", tt.in, err)
		}
		if !tt.wantErr && (got == nil) != tt.wantNil {
			t.Errorf("%q: unexpected result %v", tt.in, got)
		}
	}
}
