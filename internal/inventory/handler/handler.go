package handler

import (
	"context"

	fulfillmentv1 "github.com/fekuna/omnipos-fulfillment-service/api/fulfillmentv1"
	"github.com/fekuna/omnipos-fulfillment-service/internal/apiconv"
	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/fekuna/omnipos-fulfillment-service/internal/inventory"
	"github.com/fekuna/omnipos-fulfillment-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	fulfillmentv1.UnimplementedInventoryServiceServer
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *InventoryHandler) GetOnHand(ctx context.Context, req *fulfillmentv1.GetOnHandRequest) (*fulfillmentv1.GetOnHandResponse, error) {
	onHand, err := h.uc.GetOnHand(ctx, req.Materials)
	if err != nil {
		return nil, h.fail("failed to read on-hand weights", err)
	}
	return &fulfillmentv1.GetOnHandResponse{OnHand: onHand}, nil
}

func (h *InventoryHandler) ListMaterials(ctx context.Context, _ *fulfillmentv1.Empty) (*fulfillmentv1.ListMaterialsResponse, error) {
	items, err := h.uc.ListMaterials(ctx)
	if err != nil {
		return nil, h.fail("failed to list materials", err)
	}
	return &fulfillmentv1.ListMaterialsResponse{Materials: apiconv.Materials(items)}, nil
}

func (h *InventoryHandler) ListLowStock(ctx context.Context, req *fulfillmentv1.ListLowStockRequest) (*fulfillmentv1.ListMaterialsResponse, error) {
	items, err := h.uc.BelowThreshold(ctx, req.ThresholdGrams)
	if err != nil {
		return nil, h.fail("failed to list low stock", err)
	}
	return &fulfillmentv1.ListMaterialsResponse{Materials: apiconv.Materials(items)}, nil
}

func (h *InventoryHandler) Restock(ctx context.Context, req *fulfillmentv1.RestockRequest) (*fulfillmentv1.Material, error) {
	input := &dto.RestockInput{
		MaterialName: req.Material,
		Weight:       req.WeightGrams,
		MovementType: model.MovementRestock,
		Reference:    dto.Reference{Type: req.ReferenceType, ID: req.ReferenceId},
	}
	if input.Reference.Type == "" {
		input.Reference.Type = "manual"
	}

	m, err := h.uc.Restock(ctx, input)
	if err != nil {
		return nil, h.fail("failed to restock material", err)
	}
	return apiconv.Material(m), nil
}

func (h *InventoryHandler) ListMovements(ctx context.Context, req *fulfillmentv1.ListMovementsRequest) (*fulfillmentv1.ListMovementsResponse, error) {
	start, err := apiconv.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperr.GRPCStatus(apperr.InvalidInput("invalid start_date %q", req.StartDate))
	}
	end, err := apiconv.ParseDate(req.EndDate)
	if err != nil {
		return nil, apperr.GRPCStatus(apperr.InvalidInput("invalid end_date %q", req.EndDate))
	}

	filters := &dto.MovementFilters{
		MaterialName:  model.NormalizeMaterialName(req.Material),
		MovementType:  req.MovementType,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceId,
		StartDate:     start,
		EndDate:       end,
		Page:          int(req.Page),
		PageSize:      int(req.PageSize),
	}

	mvs, count, err := h.uc.ListMovements(ctx, filters)
	if err != nil {
		return nil, h.fail("failed to list movements", err)
	}

	out := make([]*fulfillmentv1.InventoryMovement, len(mvs))
	for i := range mvs {
		out[i] = apiconv.Movement(&mvs[i])
	}
	return &fulfillmentv1.ListMovementsResponse{
		Movements: out,
		Total:     int32(count),
	}, nil
}

func (h *InventoryHandler) fail(msg string, err error) error {
	if k := apperr.KindOf(err); k == apperr.KindPersistenceFailure || k == apperr.KindUnknown {
		h.logger.Error(msg, zap.Error(err))
	}
	return apperr.GRPCStatus(err)
}
