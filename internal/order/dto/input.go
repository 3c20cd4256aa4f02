package dto

import "github.com/fekuna/omnipos-fulfillment-service/internal/model"

type CreateOrderInput struct {
	CustomerID int64
	ProductID  int64
	UnitCount  int
	IsBusiness bool
	// TaxPercent overrides the configured rate when set.
	TaxPercent *float64
}

type FinishProductionInput struct {
	OrderID        int64
	DefectiveCount int
}

type FinishProductionResult struct {
	Order     *model.Order                  `json:"order"`
	QARecord  *model.QualityAssuranceRecord `json:"qa_record"`
	Grievance *model.Grievance              `json:"grievance,omitempty"`
}
