package quality

import (
	"context"

	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/internal/quality/dto"
)

type Repository interface {
	Create(ctx context.Context, r *model.QualityAssuranceRecord) error
	// FindByID returns nil, nil when the record does not exist.
	FindByID(ctx context.Context, id int64) (*model.QualityAssuranceRecord, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*model.QualityAssuranceRecord, error)
	FindByOrderID(ctx context.Context, orderID int64) (*model.QualityAssuranceRecord, error)
	FindAll(ctx context.Context, filters *dto.QAFilters) ([]model.QualityAssuranceRecord, int, error)

	// Update writes r only if the stored status still equals from.
	Update(ctx context.Context, r *model.QualityAssuranceRecord, from model.QAStatus) error
}
