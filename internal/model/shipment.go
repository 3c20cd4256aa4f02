package model

import "time"

type Shipment struct {
	ID                   int64     `db:"id" json:"id"`
	OrderID              int64     `db:"order_id" json:"order_id"`
	CustomerID           int64     `db:"customer_id" json:"customer_id"`
	ProductID            int64     `db:"product_id" json:"product_id"`
	TotalCount           int       `db:"total_count" json:"total_count"`
	DefectiveCount       int       `db:"defective_count" json:"defective_count"`
	ShippedCount         int       `db:"shipped_count" json:"shipped_count"`
	EstimatedArrivalDate time.Time `db:"estimated_arrival_date" json:"estimated_arrival_date"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
}
