package shipment

import (
	"time"

	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
)

// Build derives the shipment for a finished order. Only non-defective units ship, and
// the estimated arrival is leadDays after the shipping date.
func Build(o *model.Order, now time.Time, leadDays int) model.Shipment {
	shipped := o.UnitCount - o.DefectiveCount
	if shipped < 0 {
		shipped = 0
	}
	return model.Shipment{
		OrderID:              o.ID,
		CustomerID:           o.CustomerID,
		ProductID:            o.ProductID,
		TotalCount:           o.UnitCount,
		DefectiveCount:       o.DefectiveCount,
		ShippedCount:         shipped,
		EstimatedArrivalDate: model.Date(now).AddDate(0, 0, leadDays),
	}
}
