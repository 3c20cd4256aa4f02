package model

import "time"

type QAStatus string

const (
	QAStatusPending QAStatus = "pending"
	QAStatusPassed  QAStatus = "passed"
	QAStatusFailed  QAStatus = "failed"
)

const (
	DefaultInspectorName = "Awaiting Assignment"
	AutoQANote           = "Auto-generated QA record after production completion"
)

type QualityAssuranceRecord struct {
	ID             int64     `db:"id" json:"id"`
	OrderID        int64     `db:"order_id" json:"order_id"`
	Status         QAStatus  `db:"status" json:"status"`
	InspectorName  string    `db:"inspector_name" json:"inspector_name"`
	InspectionDate time.Time `db:"inspection_date" json:"inspection_date"`
	DefectsFound   int       `db:"defects_found" json:"defects_found"`
	Notes          string    `db:"notes" json:"notes"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
