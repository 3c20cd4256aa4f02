// Package requirement turns a bill of materials into gram requirements and checks them
// against the inventory ledger.
package requirement

import (
	"context"
	"math"
	"sort"

	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
	"go.uber.org/zap"
)

// StockReader is the read side of the inventory ledger.
type StockReader interface {
	GetOnHand(ctx context.Context, names []string) (map[string]float64, error)
}

type Item struct {
	Material       string  `json:"material"`
	RequestedGrams float64 `json:"requested_grams"`
	AvailableGrams float64 `json:"available_grams"`
	IsAvailable    bool    `json:"is_available"`
}

type Availability struct {
	Items                []Item   `json:"items"`
	UnavailableMaterials []string `json:"unavailable_materials"`
	AllAvailable         bool     `json:"all_available"`
}

// Shortages lists the unavailable items in the shape carried by apperr.
func (a *Availability) Shortages() []apperr.Shortage {
	var out []apperr.Shortage
	for _, it := range a.Items {
		if !it.IsAvailable {
			out = append(out, apperr.Shortage{
				Material:       it.Material,
				RequiredGrams:  it.RequestedGrams,
				AvailableGrams: it.AvailableGrams,
			})
		}
	}
	return out
}

type Resolver struct {
	stock  StockReader
	logger logger.ZapLogger
}

func NewResolver(stock StockReader, log logger.ZapLogger) *Resolver {
	return &Resolver{stock: stock, logger: log}
}

// ComputeRequirement multiplies each per-unit weight by unitCount. Non-positive, NaN and
// infinite entries are dropped; names are normalized and merged.
func ComputeRequirement(bom model.BillOfMaterials, unitCount int) map[string]float64 {
	out := make(map[string]float64, len(bom))
	if unitCount <= 0 {
		return out
	}
	for name, perUnit := range bom {
		n := model.NormalizeMaterialName(name)
		if n == "" || !(perUnit > 0) || math.IsInf(perUnit, 0) {
			continue
		}
		out[n] += perUnit * float64(unitCount)
	}
	return out
}

// CheckAvailability compares requirement against current on-hand weights. If the ledger
// cannot be read every material is reported unavailable.
func (r *Resolver) CheckAvailability(ctx context.Context, requirement map[string]float64) *Availability {
	names := make([]string, 0, len(requirement))
	for name, grams := range requirement {
		if grams > 0 && !math.IsInf(grams, 0) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	result := &Availability{Items: []Item{}, UnavailableMaterials: []string{}, AllAvailable: true}
	if len(names) == 0 {
		return result
	}

	onHand, err := r.stock.GetOnHand(ctx, names)
	if err != nil {
		r.logger.Error("failed to read inventory, treating all materials as unavailable", zap.Error(err))
		onHand = nil
	}

	for _, name := range names {
		available := onHand[name]
		requested := requirement[name]
		ok := err == nil && available >= requested
		result.Items = append(result.Items, Item{
			Material:       name,
			RequestedGrams: requested,
			AvailableGrams: available,
			IsAvailable:    ok,
		})
		if !ok {
			result.UnavailableMaterials = append(result.UnavailableMaterials, name)
		}
	}
	result.AllAvailable = len(result.UnavailableMaterials) == 0
	return result
}
