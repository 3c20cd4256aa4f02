package usecase

import (
	"context"

	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/internal/shipment"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
)

type shipmentUseCase struct {
	repo   shipment.Repository
	logger logger.ZapLogger
}

func NewShipmentUseCase(repo shipment.Repository, log logger.ZapLogger) shipment.UseCase {
	return &shipmentUseCase{repo: repo, logger: log}
}

func (uc *shipmentUseCase) Get(ctx context.Context, id int64) (*model.Shipment, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Persistence("get shipment", err)
	}
	if s == nil {
		return nil, apperr.NotFound("shipment %d not found", id)
	}
	return s, nil
}

func (uc *shipmentUseCase) GetByOrder(ctx context.Context, orderID int64) (*model.Shipment, error) {
	s, err := uc.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, apperr.Persistence("get shipment by order", err)
	}
	if s == nil {
		return nil, apperr.NotFound("order %d has not been shipped", orderID)
	}
	return s, nil
}

func (uc *shipmentUseCase) List(ctx context.Context, filters *shipment.Filters) ([]model.Shipment, int, error) {
	items, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, apperr.Persistence("list shipments", err)
	}
	return items, count, nil
}
