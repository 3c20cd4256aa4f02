package dto

import "github.com/fekuna/omnipos-fulfillment-service/internal/model"

type PurchaseLine struct {
	MaterialName string  `json:"material_name"`
	WeightGrams  float64 `json:"weight_grams"`
}

type CreatePurchaseOrdersInput struct {
	VendorID *int64
	Lines    []PurchaseLine
}

type ReceiveResult struct {
	PurchaseOrder *model.PurchaseOrder `json:"purchase_order"`
	Material      *model.Material      `json:"material,omitempty"`
	// AlreadyReceived is true when an earlier receipt restocked this order.
	AlreadyReceived bool `json:"already_received"`
}
