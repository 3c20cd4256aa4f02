package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusAwaitingConfirmation OrderStatus = "awaiting_confirmation"
	OrderStatusAccepted             OrderStatus = "accepted"
	OrderStatusInProduction         OrderStatus = "in_production"
	OrderStatusProductionComplete   OrderStatus = "production_complete"
	OrderStatusShipped              OrderStatus = "shipped"
	OrderStatusCancelled            OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusAwaitingConfirmation, OrderStatusAccepted, OrderStatusInProduction,
		OrderStatusProductionComplete, OrderStatusShipped, OrderStatusCancelled:
		return true
	}
	return false
}

// BillOfMaterials maps a material name to the grams needed for one unit.
type BillOfMaterials map[string]float64

func (b BillOfMaterials) Value() (driver.Value, error) {
	if b == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(b)
}

func (b *BillOfMaterials) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*b = BillOfMaterials{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("bill of materials: unsupported type %T", src)
	}
	return json.Unmarshal(data, b)
}

// Clone returns a copy so a snapshot cannot be changed through a shared map.
func (b BillOfMaterials) Clone() BillOfMaterials {
	out := make(BillOfMaterials, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

type Order struct {
	ID             int64           `db:"id" json:"id"`
	CustomerID     int64           `db:"customer_id" json:"customer_id"`
	ProductID      int64           `db:"product_id" json:"product_id"`
	UnitCount      int             `db:"unit_count" json:"unit_count"`
	BOM            BillOfMaterials `db:"bom" json:"bom"`
	Status         OrderStatus     `db:"status" json:"status"`
	DefectiveCount int             `db:"defective_count" json:"defective_count"`
	StartDate      *time.Time      `db:"start_date" json:"start_date,omitempty"`
	EndDate        *time.Time      `db:"end_date" json:"end_date,omitempty"`
	IsPaid         bool            `db:"is_paid" json:"is_paid"`
	IsBusiness     bool            `db:"is_business" json:"is_business"`
	UnitCost       decimal.Decimal `db:"unit_cost" json:"unit_cost"`
	Subtotal       decimal.Decimal `db:"subtotal" json:"subtotal"`
	TaxAmount      decimal.Decimal `db:"tax_amount" json:"tax_amount"`
	GrandTotal     decimal.Decimal `db:"grand_total" json:"grand_total"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

// IsAccepted reports whether the order has passed the acceptance gate.
func (o *Order) IsAccepted() bool {
	switch o.Status {
	case OrderStatusAccepted, OrderStatusInProduction, OrderStatusProductionComplete, OrderStatusShipped:
		return true
	}
	return false
}

func (o *Order) IsFinished() bool {
	return o.Status == OrderStatusProductionComplete || o.Status == OrderStatusShipped
}

// Date truncates t to midnight UTC; order and shipment dates carry no time of day.
func Date(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
