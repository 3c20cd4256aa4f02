package dto

import "github.com/fekuna/omnipos-fulfillment-service/internal/model"

type QAFilters struct {
	OrderID  int64
	Status   model.QAStatus
	Page     int
	PageSize int
}

type PassQAInput struct {
	QAID          int64
	OrderID       int64
	InspectorName string
	Notes         string
}

type FailQAInput struct {
	QAID          int64
	OrderID       int64
	InspectorName string
	DefectsFound  int
	Notes         string
}

type PassQAResult struct {
	Record   *model.QualityAssuranceRecord `json:"qa_record"`
	Shipment *model.Shipment               `json:"shipment"`
	// Created is false when the order had already been shipped by an earlier pass.
	Created bool `json:"created"`
}
