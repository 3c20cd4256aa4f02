package quality

import (
	"context"

	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/internal/quality/dto"
)

type UseCase interface {
	Get(ctx context.Context, id int64) (*model.QualityAssuranceRecord, error)
	List(ctx context.Context, filters *dto.QAFilters) ([]model.QualityAssuranceRecord, int, error)
	PassQA(ctx context.Context, input *dto.PassQAInput) (*dto.PassQAResult, error)
	FailQA(ctx context.Context, input *dto.FailQAInput) (*model.QualityAssuranceRecord, error)
}
