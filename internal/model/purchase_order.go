package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PurchaseOrder struct {
	ID           int64           `db:"id" json:"id"`
	MaterialName string          `db:"material_name" json:"material_name"`
	WeightGrams  float64         `db:"weight_grams" json:"weight_grams"`
	TotalCost    decimal.Decimal `db:"total_cost" json:"total_cost"`
	VendorID     *int64          `db:"vendor_id" json:"vendor_id,omitempty"`
	IsReceived   bool            `db:"is_received" json:"is_received"`
	ReceivedAt   *time.Time      `db:"received_at" json:"received_at,omitempty"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}
