package handler

import (
	"context"

	fulfillmentv1 "github.com/fekuna/omnipos-fulfillment-service/api/fulfillmentv1"
	"github.com/fekuna/omnipos-fulfillment-service/internal/apiconv"
	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/internal/order"
	"github.com/fekuna/omnipos-fulfillment-service/internal/order/dto"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
	"go.uber.org/zap"
)

type OrderHandler struct {
	fulfillmentv1.UnimplementedOrderServiceServer
	uc     order.UseCase
	logger logger.ZapLogger
}

func NewOrderHandler(uc order.UseCase, log logger.ZapLogger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *OrderHandler) CreateOrder(ctx context.Context, req *fulfillmentv1.CreateOrderRequest) (*fulfillmentv1.Order, error) {
	input := &dto.CreateOrderInput{
		CustomerID: req.CustomerId,
		ProductID:  req.ProductId,
		UnitCount:  int(req.UnitCount),
		IsBusiness: req.IsBusiness,
		TaxPercent: req.TaxPercent,
	}

	o, err := h.uc.Create(ctx, input)
	if err != nil {
		return nil, h.fail("failed to create order", err)
	}
	return apiconv.Order(o), nil
}

func (h *OrderHandler) GetOrder(ctx context.Context, req *fulfillmentv1.OrderIDRequest) (*fulfillmentv1.Order, error) {
	o, err := h.uc.Get(ctx, req.Id)
	if err != nil {
		return nil, h.fail("failed to get order", err)
	}
	return apiconv.Order(o), nil
}

func (h *OrderHandler) ListOrders(ctx context.Context, req *fulfillmentv1.ListOrdersRequest) (*fulfillmentv1.ListOrdersResponse, error) {
	filters := &dto.OrderFilters{
		CustomerID: req.CustomerId,
		ProductID:  req.ProductId,
		Status:     model.OrderStatus(req.Status),
		Page:       int(req.Page),
		PageSize:   int(req.PageSize),
	}

	orders, count, err := h.uc.List(ctx, filters)
	if err != nil {
		return nil, h.fail("failed to list orders", err)
	}

	out := make([]*fulfillmentv1.Order, len(orders))
	for i := range orders {
		out[i] = apiconv.Order(&orders[i])
	}
	return &fulfillmentv1.ListOrdersResponse{
		Orders: out,
		Total:  int32(count),
	}, nil
}

func (h *OrderHandler) CheckAvailability(ctx context.Context, req *fulfillmentv1.OrderIDRequest) (*fulfillmentv1.AvailabilityResponse, error) {
	a, err := h.uc.CheckAvailability(ctx, req.Id)
	if err != nil {
		return nil, h.fail("failed to check availability", err)
	}
	return apiconv.Availability(a), nil
}

func (h *OrderHandler) AcceptOrder(ctx context.Context, req *fulfillmentv1.OrderIDRequest) (*fulfillmentv1.Order, error) {
	return h.transition(ctx, "accept", req.Id, h.uc.Accept)
}

func (h *OrderHandler) MarkPaid(ctx context.Context, req *fulfillmentv1.OrderIDRequest) (*fulfillmentv1.Order, error) {
	return h.transition(ctx, "mark paid", req.Id, h.uc.MarkPaid)
}

func (h *OrderHandler) CancelOrder(ctx context.Context, req *fulfillmentv1.OrderIDRequest) (*fulfillmentv1.Order, error) {
	return h.transition(ctx, "cancel", req.Id, h.uc.Cancel)
}

func (h *OrderHandler) StartProduction(ctx context.Context, req *fulfillmentv1.OrderIDRequest) (*fulfillmentv1.Order, error) {
	return h.transition(ctx, "start production", req.Id, h.uc.StartProduction)
}

func (h *OrderHandler) FinishProduction(ctx context.Context, req *fulfillmentv1.FinishProductionRequest) (*fulfillmentv1.FinishProductionResponse, error) {
	res, err := h.uc.FinishProduction(ctx, &dto.FinishProductionInput{
		OrderID:        req.OrderId,
		DefectiveCount: int(req.DefectiveCount),
	})
	if err != nil {
		return nil, h.fail("failed to finish production", err)
	}
	return &fulfillmentv1.FinishProductionResponse{
		Order:     apiconv.Order(res.Order),
		QaRecord:  apiconv.QARecord(res.QARecord),
		Grievance: apiconv.Grievance(res.Grievance),
	}, nil
}

func (h *OrderHandler) transition(ctx context.Context, action string, id int64, fn func(context.Context, int64) (*model.Order, error)) (*fulfillmentv1.Order, error) {
	o, err := fn(ctx, id)
	if err != nil {
		return nil, h.fail("failed to "+action+" order", err, zap.Int64("order_id", id))
	}
	return apiconv.Order(o), nil
}

func (h *OrderHandler) fail(msg string, err error, fields ...zap.Field) error {
	if k := apperr.KindOf(err); k == apperr.KindPersistenceFailure || k == apperr.KindUnknown {
		h.logger.Error(msg, append(fields, zap.Error(err))...)
	}
	return apperr.GRPCStatus(err)
}
