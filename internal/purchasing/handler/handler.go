package handler

import (
	"context"

	fulfillmentv1 "github.com/fekuna/omnipos-fulfillment-service/api/fulfillmentv1"
	"github.com/fekuna/omnipos-fulfillment-service/internal/apiconv"
	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/fekuna/omnipos-fulfillment-service/internal/purchasing"
	"github.com/fekuna/omnipos-fulfillment-service/internal/purchasing/dto"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
	"go.uber.org/zap"
)

type PurchasingHandler struct {
	fulfillmentv1.UnimplementedPurchasingServiceServer
	uc     purchasing.UseCase
	logger logger.ZapLogger
}

func NewPurchasingHandler(uc purchasing.UseCase, log logger.ZapLogger) *PurchasingHandler {
	return &PurchasingHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *PurchasingHandler) CreatePurchaseOrders(ctx context.Context, req *fulfillmentv1.CreatePurchaseOrdersRequest) (*fulfillmentv1.PurchaseOrdersResponse, error) {
	input := &dto.CreatePurchaseOrdersInput{
		Lines: make([]dto.PurchaseLine, 0, len(req.Lines)),
	}
	if req.VendorId != 0 {
		vendorID := req.VendorId
		input.VendorID = &vendorID
	}
	for _, l := range req.Lines {
		if l == nil {
			continue
		}
		input.Lines = append(input.Lines, dto.PurchaseLine{MaterialName: l.Material, WeightGrams: l.WeightGrams})
	}

	pos, err := h.uc.Create(ctx, input)
	if err != nil {
		return nil, h.fail("failed to create purchase orders", err)
	}
	return &fulfillmentv1.PurchaseOrdersResponse{PurchaseOrders: apiconv.PurchaseOrders(pos)}, nil
}

func (h *PurchasingHandler) ListOpenPurchaseOrders(ctx context.Context, _ *fulfillmentv1.Empty) (*fulfillmentv1.PurchaseOrdersResponse, error) {
	pos, err := h.uc.ListOpen(ctx)
	if err != nil {
		return nil, h.fail("failed to list open purchase orders", err)
	}
	return &fulfillmentv1.PurchaseOrdersResponse{PurchaseOrders: apiconv.PurchaseOrders(pos)}, nil
}

func (h *PurchasingHandler) ReceivePurchaseOrder(ctx context.Context, req *fulfillmentv1.ReceivePurchaseOrderRequest) (*fulfillmentv1.ReceivePurchaseOrderResponse, error) {
	res, err := h.uc.Receive(ctx, req.Id)
	if err != nil {
		return nil, h.fail("failed to receive purchase order", err, zap.Int64("purchase_order_id", req.Id))
	}
	return &fulfillmentv1.ReceivePurchaseOrderResponse{
		PurchaseOrder:   apiconv.PurchaseOrder(res.PurchaseOrder),
		Material:        apiconv.Material(res.Material),
		AlreadyReceived: res.AlreadyReceived,
	}, nil
}

func (h *PurchasingHandler) fail(msg string, err error, fields ...zap.Field) error {
	if k := apperr.KindOf(err); k == apperr.KindPersistenceFailure || k == apperr.KindUnknown {
		h.logger.Error(msg, append(fields, zap.Error(err))...)
	}
	return apperr.GRPCStatus(err)
}
