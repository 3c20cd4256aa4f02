package handler

import (
	"context"

	fulfillmentv1 "github.com/fekuna/omnipos-fulfillment-service/api/fulfillmentv1"
	"github.com/fekuna/omnipos-fulfillment-service/internal/apiconv"
	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/fekuna/omnipos-fulfillment-service/internal/shipment"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
	"go.uber.org/zap"
)

type ShipmentHandler struct {
	fulfillmentv1.UnimplementedShipmentServiceServer
	uc     shipment.UseCase
	logger logger.ZapLogger
}

func NewShipmentHandler(uc shipment.UseCase, log logger.ZapLogger) *ShipmentHandler {
	return &ShipmentHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ShipmentHandler) GetShipment(ctx context.Context, req *fulfillmentv1.ShipmentIDRequest) (*fulfillmentv1.Shipment, error) {
	s, err := h.uc.Get(ctx, req.Id)
	if err != nil {
		return nil, h.fail("failed to get shipment", err)
	}
	return apiconv.Shipment(s), nil
}

func (h *ShipmentHandler) GetShipmentByOrder(ctx context.Context, req *fulfillmentv1.OrderIDRequest) (*fulfillmentv1.Shipment, error) {
	s, err := h.uc.GetByOrder(ctx, req.Id)
	if err != nil {
		return nil, h.fail("failed to get shipment by order", err)
	}
	return apiconv.Shipment(s), nil
}

func (h *ShipmentHandler) ListShipments(ctx context.Context, req *fulfillmentv1.ListShipmentsRequest) (*fulfillmentv1.ListShipmentsResponse, error) {
	items, count, err := h.uc.List(ctx, &shipment.Filters{
		CustomerID: req.CustomerId,
		OrderID:    req.OrderId,
		Page:       int(req.Page),
		PageSize:   int(req.PageSize),
	})
	if err != nil {
		return nil, h.fail("failed to list shipments", err)
	}

	out := make([]*fulfillmentv1.Shipment, len(items))
	for i := range items {
		out[i] = apiconv.Shipment(&items[i])
	}
	return &fulfillmentv1.ListShipmentsResponse{
		Shipments: out,
		Total:     int32(count),
	}, nil
}

func (h *ShipmentHandler) fail(msg string, err error) error {
	if k := apperr.KindOf(err); k == apperr.KindPersistenceFailure || k == apperr.KindUnknown {
		h.logger.Error(msg, zap.Error(err))
	}
	return apperr.GRPCStatus(err)
}
