package dto

import (
	"strconv"

	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
)

// Reference ties a ledger movement to the record that caused it.
type Reference struct {
	Type string
	ID   string
}

func OrderReference(orderID int64) Reference {
	return Reference{Type: "order", ID: strconv.FormatInt(orderID, 10)}
}

func PurchaseOrderReference(purchaseOrderID int64) Reference {
	return Reference{Type: "purchase_order", ID: strconv.FormatInt(purchaseOrderID, 10)}
}

type RestockInput struct {
	MaterialName string
	Weight       float64
	MovementType model.MovementType
	Reference    Reference
}
