package usecase

import (
	"context"
	"math"
	"sort"

	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/fekuna/omnipos-fulfillment-service/internal/event"
	"github.com/fekuna/omnipos-fulfillment-service/internal/inventory"
	"github.com/fekuna/omnipos-fulfillment-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
	"go.uber.org/zap"
)

type inventoryUseCase struct {
	repo             inventory.Repository
	events           event.Publisher
	logger           logger.ZapLogger
	defaultThreshold float64
}

func NewInventoryUseCase(repo inventory.Repository, events event.Publisher, log logger.ZapLogger, defaultThreshold float64) inventory.UseCase {
	if events == nil {
		events = event.NopPublisher{}
	}
	return &inventoryUseCase{
		repo:             repo,
		events:           events,
		logger:           log,
		defaultThreshold: defaultThreshold,
	}
}

func (uc *inventoryUseCase) GetOnHand(ctx context.Context, names []string) (map[string]float64, error) {
	seen := make(map[string]struct{}, len(names))
	normalized := make([]string, 0, len(names))
	for _, name := range names {
		n := model.NormalizeMaterialName(name)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		normalized = append(normalized, n)
	}
	sort.Strings(normalized)

	onHand, err := uc.repo.GetOnHand(ctx, normalized)
	if err != nil {
		return nil, apperr.Persistence("get on-hand weights", err)
	}
	return onHand, nil
}

func (uc *inventoryUseCase) ListMaterials(ctx context.Context) ([]model.Material, error) {
	items, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Persistence("list materials", err)
	}
	return items, nil
}

func (uc *inventoryUseCase) BelowThreshold(ctx context.Context, threshold float64) ([]model.Material, error) {
	if threshold <= 0 || math.IsNaN(threshold) {
		threshold = uc.defaultThreshold
	}
	items, err := uc.repo.BelowThreshold(ctx, threshold)
	if err != nil {
		return nil, apperr.Persistence("list materials below threshold", err)
	}
	return items, nil
}

func (uc *inventoryUseCase) Reserve(ctx context.Context, requirements map[string]float64, ref dto.Reference) error {
	normalized := make(map[string]float64, len(requirements))
	for name, weight := range requirements {
		n := model.NormalizeMaterialName(name)
		if n == "" {
			return apperr.InvalidInput("material name is required")
		}
		if !validWeight(weight) {
			return apperr.InvalidInput("invalid weight %v for %s", weight, n)
		}
		if weight == 0 {
			continue
		}
		normalized[n] += weight
	}
	if len(normalized) == 0 {
		return nil
	}

	if err := uc.repo.Reserve(ctx, normalized, ref); err != nil {
		if apperr.KindOf(err) == apperr.KindInsufficientInventory {
			uc.logger.Info("reservation rejected",
				zap.String("reference_id", ref.ID),
				zap.Int("shortages", len(apperr.ShortagesOf(err))),
			)
			return err
		}
		return apperr.Persistence("reserve materials", err)
	}
	return nil
}

func (uc *inventoryUseCase) Restock(ctx context.Context, input *dto.RestockInput) (*model.Material, error) {
	name := model.NormalizeMaterialName(input.MaterialName)
	if name == "" {
		return nil, apperr.InvalidInput("material name is required")
	}
	if !validWeight(input.Weight) {
		return nil, apperr.InvalidInput("restock weight must be a non-negative number, got %v", input.Weight)
	}

	movementType := input.MovementType
	if movementType == "" {
		movementType = model.MovementRestock
	}

	mat, err := uc.repo.Restock(ctx, name, input.Weight, movementType, input.Reference)
	if err != nil {
		return nil, apperr.Persistence("restock "+name, err)
	}

	event.Emit(ctx, uc.events, event.New(event.TypeInventoryRestocked, 0, map[string]interface{}{
		"material":       mat.Name,
		"weight":         input.Weight,
		"on_hand_weight": mat.OnHandWeight,
		"movement_type":  movementType,
		"reference_id":   input.Reference.ID,
	}))
	return mat, nil
}

func (uc *inventoryUseCase) ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryMovement, int, error) {
	if filters.MaterialName != "" {
		filters.MaterialName = model.NormalizeMaterialName(filters.MaterialName)
	}
	items, count, err := uc.repo.ListMovements(ctx, filters)
	if err != nil {
		return nil, 0, apperr.Persistence("list movements", err)
	}
	return items, count, nil
}

func validWeight(w float64) bool {
	return w >= 0 && !math.IsNaN(w) && !math.IsInf(w, 0)
}
