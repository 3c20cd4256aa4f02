package model

import (
	"strings"
	"time"
)

// Material is one row of the inventory ledger, keyed by normalized name.
type Material struct {
	Name         string    `db:"name" json:"name"`
	OnHandWeight float64   `db:"on_hand_weight" json:"on_hand_weight"`
	CostPerGram  float64   `db:"cost_per_gram" json:"cost_per_gram"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type MovementType string

const (
	MovementReserve         MovementType = "reserve"
	MovementRestock         MovementType = "restock"
	MovementDefectReturn    MovementType = "defect_return"
	MovementPurchaseReceipt MovementType = "purchase_receipt"
)

// InventoryMovement is the audit row written for every ledger mutation.
type InventoryMovement struct {
	ID             string       `db:"id" json:"id"`
	MaterialName   string       `db:"material_name" json:"material_name"`
	MovementType   MovementType `db:"movement_type" json:"movement_type"`
	QuantityChange float64      `db:"quantity_change" json:"quantity_change"`
	QuantityBefore float64      `db:"quantity_before" json:"quantity_before"`
	QuantityAfter  float64      `db:"quantity_after" json:"quantity_after"`
	ReferenceType  *string      `db:"reference_type" json:"reference_type,omitempty"`
	ReferenceID    *string      `db:"reference_id" json:"reference_id,omitempty"`
	CreatedAt      time.Time    `db:"created_at" json:"created_at"`
}

// NormalizeMaterialName is the ledger key for a material.
func NormalizeMaterialName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
