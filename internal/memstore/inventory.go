package memstore

import (
	"context"
	"sort"

	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/fekuna/omnipos-fulfillment-service/internal/inventory"
	"github.com/fekuna/omnipos-fulfillment-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/google/uuid"
)

var _ inventory.Repository = (*InventoryRepository)(nil)

type InventoryRepository struct {
	s *Store
}

// Seed sets a material's on-hand weight directly, bypassing the movement log.
func (r *InventoryRepository) Seed(name string, weight float64) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	name = model.NormalizeMaterialName(name)
	r.s.data.materials[name] = model.Material{Name: name, OnHandWeight: weight, UpdatedAt: r.s.now()}
}

func (r *InventoryRepository) GetOnHand(ctx context.Context, names []string) (map[string]float64, error) {
	defer r.s.lock(ctx)()
	out := make(map[string]float64, len(names))
	for _, name := range names {
		out[name] = r.s.data.materials[name].OnHandWeight
	}
	return out, nil
}

func (r *InventoryRepository) FindAll(ctx context.Context) ([]model.Material, error) {
	defer r.s.lock(ctx)()
	items := make([]model.Material, 0, len(r.s.data.materials))
	for _, m := range r.s.data.materials {
		items = append(items, m)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (r *InventoryRepository) BelowThreshold(ctx context.Context, threshold float64) ([]model.Material, error) {
	defer r.s.lock(ctx)()
	items := []model.Material{}
	for _, m := range r.s.data.materials {
		if m.OnHandWeight < threshold {
			items = append(items, m)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].OnHandWeight != items[j].OnHandWeight {
			return items[i].OnHandWeight < items[j].OnHandWeight
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (r *InventoryRepository) Reserve(ctx context.Context, requirements map[string]float64, ref dto.Reference) error {
	defer r.s.lock(ctx)()

	names := make([]string, 0, len(requirements))
	for name := range requirements {
		names = append(names, name)
	}
	sort.Strings(names)

	var shortages []apperr.Shortage
	for _, name := range names {
		amount := requirements[name]
		if amount <= 0 {
			continue
		}
		available := r.s.data.materials[name].OnHandWeight
		if available < amount {
			shortages = append(shortages, apperr.Shortage{Material: name, RequiredGrams: amount, AvailableGrams: available})
		}
	}
	if len(shortages) > 0 {
		return apperr.InsufficientInventory(shortages)
	}

	now := r.s.now()
	for _, name := range names {
		amount := requirements[name]
		if amount <= 0 {
			continue
		}
		m := r.s.data.materials[name]
		before := m.OnHandWeight
		m.OnHandWeight -= amount
		m.UpdatedAt = now
		r.s.data.materials[name] = m
		r.s.data.movements = append(r.s.data.movements, movement(name, model.MovementReserve, -amount, before, m.OnHandWeight, ref, r.s))
	}
	return nil
}

func (r *InventoryRepository) Restock(ctx context.Context, name string, weight float64, movementType model.MovementType, ref dto.Reference) (*model.Material, error) {
	defer r.s.lock(ctx)()

	m, ok := r.s.data.materials[name]
	if !ok {
		m = model.Material{Name: name}
	}
	before := m.OnHandWeight
	m.OnHandWeight += weight
	m.UpdatedAt = r.s.now()
	r.s.data.materials[name] = m
	r.s.data.movements = append(r.s.data.movements, movement(name, movementType, weight, before, m.OnHandWeight, ref, r.s))

	out := m
	return &out, nil
}

func (r *InventoryRepository) ListMovements(ctx context.Context, f *dto.MovementFilters) ([]model.InventoryMovement, int, error) {
	defer r.s.lock(ctx)()

	items := []model.InventoryMovement{}
	for i := len(r.s.data.movements) - 1; i >= 0; i-- {
		m := r.s.data.movements[i]
		if f.MaterialName != "" && m.MaterialName != f.MaterialName {
			continue
		}
		if f.MovementType != "" && string(m.MovementType) != f.MovementType {
			continue
		}
		if f.ReferenceType != "" && (m.ReferenceType == nil || *m.ReferenceType != f.ReferenceType) {
			continue
		}
		if f.ReferenceID != "" && (m.ReferenceID == nil || *m.ReferenceID != f.ReferenceID) {
			continue
		}
		if f.StartDate != nil && m.CreatedAt.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && !m.CreatedAt.Before(*f.EndDate) {
			continue
		}
		items = append(items, m)
	}
	return paginate(items, f.Page, f.PageSize), len(items), nil
}

func movement(name string, movementType model.MovementType, change, before, after float64, ref dto.Reference, s *Store) model.InventoryMovement {
	m := model.InventoryMovement{
		ID:             uuid.New().String(),
		MaterialName:   name,
		MovementType:   movementType,
		QuantityChange: change,
		QuantityBefore: before,
		QuantityAfter:  after,
		CreatedAt:      s.now(),
	}
	if ref.Type != "" {
		refType := ref.Type
		m.ReferenceType = &refType
	}
	if ref.ID != "" {
		refID := ref.ID
		m.ReferenceID = &refID
	}
	return m
}
