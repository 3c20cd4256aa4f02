package memstore

import (
	"context"
	"sort"

	"github.com/fekuna/omnipos-fulfillment-service/internal/grievance"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
)

var _ grievance.Repository = (*GrievanceRepository)(nil)

type GrievanceRepository struct {
	s *Store
}

func (r *GrievanceRepository) Create(ctx context.Context, g *model.Grievance) error {
	defer r.s.lock(ctx)()

	g.ID = r.s.nextID("grievances")
	g.CreatedAt = r.s.now()
	r.s.data.grievances[g.ID] = *g
	return nil
}

func (r *GrievanceRepository) FindAll(ctx context.Context, f *grievance.Filters) ([]model.Grievance, error) {
	defer r.s.lock(ctx)()

	items := []model.Grievance{}
	for _, g := range r.s.data.grievances {
		if f.CustomerID != 0 && g.CustomerID != f.CustomerID {
			continue
		}
		if f.OrderID != 0 && g.OrderID != f.OrderID {
			continue
		}
		items = append(items, g)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	return items, nil
}
