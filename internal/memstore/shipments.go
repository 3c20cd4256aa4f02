package memstore

import (
	"context"
	"sort"

	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/internal/shipment"
)

var _ shipment.Repository = (*ShipmentRepository)(nil)

type ShipmentRepository struct {
	s *Store
}

func (r *ShipmentRepository) Create(ctx context.Context, sh *model.Shipment) error {
	defer r.s.lock(ctx)()

	for _, existing := range r.s.data.shipments {
		if existing.OrderID == sh.OrderID {
			return apperr.PreconditionFailed("order %d already has shipment %d", sh.OrderID, existing.ID)
		}
	}
	sh.ID = r.s.nextID("shipments")
	sh.CreatedAt = r.s.now()
	r.s.data.shipments[sh.ID] = *sh
	return nil
}

func (r *ShipmentRepository) FindByID(ctx context.Context, id int64) (*model.Shipment, error) {
	defer r.s.lock(ctx)()

	sh, ok := r.s.data.shipments[id]
	if !ok {
		return nil, nil
	}
	return &sh, nil
}

func (r *ShipmentRepository) FindByOrderID(ctx context.Context, orderID int64) (*model.Shipment, error) {
	defer r.s.lock(ctx)()

	for _, sh := range r.s.data.shipments {
		if sh.OrderID == orderID {
			out := sh
			return &out, nil
		}
	}
	return nil, nil
}

func (r *ShipmentRepository) FindAll(ctx context.Context, f *shipment.Filters) ([]model.Shipment, int, error) {
	defer r.s.lock(ctx)()

	items := []model.Shipment{}
	for _, sh := range r.s.data.shipments {
		if f.CustomerID != 0 && sh.CustomerID != f.CustomerID {
			continue
		}
		if f.OrderID != 0 && sh.OrderID != f.OrderID {
			continue
		}
		items = append(items, sh)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	return paginate(items, f.Page, f.PageSize), len(items), nil
}
