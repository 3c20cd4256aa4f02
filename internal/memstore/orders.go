package memstore

import (
	"context"
	"sort"

	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/internal/order"
	"github.com/fekuna/omnipos-fulfillment-service/internal/order/dto"
)

var _ order.Repository = (*OrderRepository)(nil)

type OrderRepository struct {
	s *Store
}

func (r *OrderRepository) Create(ctx context.Context, o *model.Order) error {
	defer r.s.lock(ctx)()

	now := r.s.now()
	o.ID = r.s.nextID("orders")
	o.CreatedAt = now
	o.UpdatedAt = now
	r.s.data.orders[o.ID] = cloneOrder(*o)
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	defer r.s.lock(ctx)()

	o, ok := r.s.data.orders[id]
	if !ok {
		return nil, nil
	}
	out := cloneOrder(o)
	return &out, nil
}

// FindByIDForUpdate is FindByID: a transaction already holds the whole store.
func (r *OrderRepository) FindByIDForUpdate(ctx context.Context, id int64) (*model.Order, error) {
	return r.FindByID(ctx, id)
}

func (r *OrderRepository) FindAll(ctx context.Context, f *dto.OrderFilters) ([]model.Order, int, error) {
	defer r.s.lock(ctx)()

	items := []model.Order{}
	for _, o := range r.s.data.orders {
		if f.CustomerID != 0 && o.CustomerID != f.CustomerID {
			continue
		}
		if f.ProductID != 0 && o.ProductID != f.ProductID {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		items = append(items, cloneOrder(o))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	return paginate(items, f.Page, f.PageSize), len(items), nil
}

func (r *OrderRepository) CountByStatus(ctx context.Context, status model.OrderStatus) (int, error) {
	defer r.s.lock(ctx)()

	n := 0
	for _, o := range r.s.data.orders {
		if o.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *OrderRepository) Update(ctx context.Context, o *model.Order, from model.OrderStatus) error {
	defer r.s.lock(ctx)()

	stored, ok := r.s.data.orders[o.ID]
	if !ok {
		return apperr.NotFound("order %d not found", o.ID)
	}
	if stored.Status != from {
		return apperr.PreconditionFailed("order %d is %s, expected %s", o.ID, stored.Status, from)
	}
	o.UpdatedAt = r.s.now()
	r.s.data.orders[o.ID] = cloneOrder(*o)
	return nil
}
