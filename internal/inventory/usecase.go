package inventory

import (
	"context"

	"github.com/fekuna/omnipos-fulfillment-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
)

type UseCase interface {
	GetOnHand(ctx context.Context, names []string) (map[string]float64, error)
	ListMaterials(ctx context.Context) ([]model.Material, error)
	BelowThreshold(ctx context.Context, threshold float64) ([]model.Material, error)
	Reserve(ctx context.Context, requirements map[string]float64, ref dto.Reference) error
	Restock(ctx context.Context, input *dto.RestockInput) (*model.Material, error)
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryMovement, int, error)
}
