package usecase

import (
	"context"

	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/fekuna/omnipos-fulfillment-service/internal/grievance"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
)

type grievanceUseCase struct {
	repo grievance.Repository
}

func NewGrievanceUseCase(repo grievance.Repository) grievance.UseCase {
	return &grievanceUseCase{repo: repo}
}

func (uc *grievanceUseCase) List(ctx context.Context, filters *grievance.Filters) ([]model.Grievance, error) {
	items, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, apperr.Persistence("list grievances", err)
	}
	return items, nil
}
