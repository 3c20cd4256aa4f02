package model

import "time"

type Grievance struct {
	ID             int64     `db:"id" json:"id"`
	OrderID        int64     `db:"order_id" json:"order_id"`
	CustomerID     int64     `db:"customer_id" json:"customer_id"`
	Message        string    `db:"message" json:"message"`
	DefectiveCount int       `db:"defective_count" json:"defective_count"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
