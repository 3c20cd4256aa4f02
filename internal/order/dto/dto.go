package dto

import "github.com/fekuna/omnipos-fulfillment-service/internal/model"

type OrderFilters struct {
	CustomerID int64
	ProductID  int64
	Status     model.OrderStatus
	Page       int
	PageSize   int
}
