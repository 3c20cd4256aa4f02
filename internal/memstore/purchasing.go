package memstore

import (
	"context"
	"sort"

	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/internal/purchasing"
)

var _ purchasing.Repository = (*PurchasingRepository)(nil)

type PurchasingRepository struct {
	s *Store
}

func (r *PurchasingRepository) Create(ctx context.Context, po *model.PurchaseOrder) error {
	defer r.s.lock(ctx)()

	po.ID = r.s.nextID("purchase_orders")
	po.CreatedAt = r.s.now()
	r.s.data.purchaseOrders[po.ID] = *po
	return nil
}

func (r *PurchasingRepository) FindByID(ctx context.Context, id int64) (*model.PurchaseOrder, error) {
	defer r.s.lock(ctx)()

	po, ok := r.s.data.purchaseOrders[id]
	if !ok {
		return nil, nil
	}
	return &po, nil
}

func (r *PurchasingRepository) FindOpen(ctx context.Context) ([]model.PurchaseOrder, error) {
	defer r.s.lock(ctx)()

	items := []model.PurchaseOrder{}
	for _, po := range r.s.data.purchaseOrders {
		if !po.IsReceived {
			items = append(items, po)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *PurchasingRepository) MarkReceived(ctx context.Context, id int64) (*model.PurchaseOrder, error) {
	defer r.s.lock(ctx)()

	po, ok := r.s.data.purchaseOrders[id]
	if !ok || po.IsReceived {
		return nil, nil
	}
	now := r.s.now()
	po.IsReceived = true
	po.ReceivedAt = &now
	r.s.data.purchaseOrders[id] = po
	return &po, nil
}
