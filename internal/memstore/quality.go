package memstore

import (
	"context"
	"sort"

	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/internal/quality"
	"github.com/fekuna/omnipos-fulfillment-service/internal/quality/dto"
)

var _ quality.Repository = (*QualityRepository)(nil)

type QualityRepository struct {
	s *Store
}

func (r *QualityRepository) Create(ctx context.Context, rec *model.QualityAssuranceRecord) error {
	defer r.s.lock(ctx)()

	for _, existing := range r.s.data.qa {
		if existing.OrderID == rec.OrderID {
			return apperr.PreconditionFailed("order %d already has a QA record", rec.OrderID)
		}
	}
	now := r.s.now()
	rec.ID = r.s.nextID("quality_assurance")
	rec.CreatedAt = now
	rec.UpdatedAt = now
	r.s.data.qa[rec.ID] = *rec
	return nil
}

func (r *QualityRepository) FindByID(ctx context.Context, id int64) (*model.QualityAssuranceRecord, error) {
	defer r.s.lock(ctx)()

	rec, ok := r.s.data.qa[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *QualityRepository) FindByIDForUpdate(ctx context.Context, id int64) (*model.QualityAssuranceRecord, error) {
	return r.FindByID(ctx, id)
}

func (r *QualityRepository) FindByOrderID(ctx context.Context, orderID int64) (*model.QualityAssuranceRecord, error) {
	defer r.s.lock(ctx)()

	for _, rec := range r.s.data.qa {
		if rec.OrderID == orderID {
			out := rec
			return &out, nil
		}
	}
	return nil, nil
}

func (r *QualityRepository) FindAll(ctx context.Context, f *dto.QAFilters) ([]model.QualityAssuranceRecord, int, error) {
	defer r.s.lock(ctx)()

	items := []model.QualityAssuranceRecord{}
	for _, rec := range r.s.data.qa {
		if f.OrderID != 0 && rec.OrderID != f.OrderID {
			continue
		}
		if f.Status != "" && rec.Status != f.Status {
			continue
		}
		items = append(items, rec)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	return paginate(items, f.Page, f.PageSize), len(items), nil
}

func (r *QualityRepository) Update(ctx context.Context, rec *model.QualityAssuranceRecord, from model.QAStatus) error {
	defer r.s.lock(ctx)()

	stored, ok := r.s.data.qa[rec.ID]
	if !ok {
		return apperr.NotFound("QA record %d not found", rec.ID)
	}
	if stored.Status != from {
		return apperr.PreconditionFailed("QA record %d is %s, expected %s", rec.ID, stored.Status, from)
	}
	rec.UpdatedAt = r.s.now()
	r.s.data.qa[rec.ID] = *rec
	return nil
}
