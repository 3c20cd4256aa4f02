package handler

import (
	"context"

	fulfillmentv1 "github.com/fekuna/omnipos-fulfillment-service/api/fulfillmentv1"
	"github.com/fekuna/omnipos-fulfillment-service/internal/apiconv"
	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/fekuna/omnipos-fulfillment-service/internal/grievance"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
	"go.uber.org/zap"
)

type GrievanceHandler struct {
	fulfillmentv1.UnimplementedGrievanceServiceServer
	uc     grievance.UseCase
	logger logger.ZapLogger
}

func NewGrievanceHandler(uc grievance.UseCase, log logger.ZapLogger) *GrievanceHandler {
	return &GrievanceHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *GrievanceHandler) ListGrievances(ctx context.Context, req *fulfillmentv1.ListGrievancesRequest) (*fulfillmentv1.ListGrievancesResponse, error) {
	items, err := h.uc.List(ctx, &grievance.Filters{
		CustomerID: req.CustomerId,
		OrderID:    req.OrderId,
	})
	if err != nil {
		h.logger.Error("failed to list grievances", zap.Error(err))
		return nil, apperr.GRPCStatus(err)
	}

	out := make([]*fulfillmentv1.Grievance, len(items))
	for i := range items {
		out[i] = apiconv.Grievance(&items[i])
	}
	return &fulfillmentv1.ListGrievancesResponse{Grievances: out}, nil
}
