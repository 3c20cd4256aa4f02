package inventory

import (
	"context"

	"github.com/fekuna/omnipos-fulfillment-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
)

// Repository is the only writer of material rows. Reserve and Restock join the
// caller's transaction when the context carries one.
type Repository interface {
	GetOnHand(ctx context.Context, names []string) (map[string]float64, error)
	FindAll(ctx context.Context) ([]model.Material, error)
	BelowThreshold(ctx context.Context, threshold float64) ([]model.Material, error)

	// Reserve deducts every requirement or nothing. A shortfall is reported as
	// apperr.InsufficientInventory listing every short material.
	Reserve(ctx context.Context, requirements map[string]float64, ref dto.Reference) error
	Restock(ctx context.Context, name string, weight float64, movementType model.MovementType, ref dto.Reference) (*model.Material, error)

	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryMovement, int, error)
}
