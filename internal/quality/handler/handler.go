package handler

import (
	"context"

	fulfillmentv1 "github.com/fekuna/omnipos-fulfillment-service/api/fulfillmentv1"
	"github.com/fekuna/omnipos-fulfillment-service/internal/apiconv"
	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/internal/quality"
	"github.com/fekuna/omnipos-fulfillment-service/internal/quality/dto"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
	"go.uber.org/zap"
)

type QualityHandler struct {
	fulfillmentv1.UnimplementedQualityServiceServer
	uc     quality.UseCase
	logger logger.ZapLogger
}

func NewQualityHandler(uc quality.UseCase, log logger.ZapLogger) *QualityHandler {
	return &QualityHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *QualityHandler) GetQARecord(ctx context.Context, req *fulfillmentv1.QAIDRequest) (*fulfillmentv1.QARecord, error) {
	r, err := h.uc.Get(ctx, req.Id)
	if err != nil {
		return nil, h.fail("failed to get qa record", err)
	}
	return apiconv.QARecord(r), nil
}

func (h *QualityHandler) ListQARecords(ctx context.Context, req *fulfillmentv1.ListQARecordsRequest) (*fulfillmentv1.ListQARecordsResponse, error) {
	records, count, err := h.uc.List(ctx, &dto.QAFilters{
		OrderID:  req.OrderId,
		Status:   model.QAStatus(req.Status),
		Page:     int(req.Page),
		PageSize: int(req.PageSize),
	})
	if err != nil {
		return nil, h.fail("failed to list qa records", err)
	}

	out := make([]*fulfillmentv1.QARecord, len(records))
	for i := range records {
		out[i] = apiconv.QARecord(&records[i])
	}
	return &fulfillmentv1.ListQARecordsResponse{
		Records: out,
		Total:   int32(count),
	}, nil
}

func (h *QualityHandler) PassQA(ctx context.Context, req *fulfillmentv1.PassQARequest) (*fulfillmentv1.PassQAResponse, error) {
	res, err := h.uc.PassQA(ctx, &dto.PassQAInput{
		QAID:          req.QaId,
		OrderID:       req.OrderId,
		InspectorName: req.InspectorName,
		Notes:         req.Notes,
	})
	if err != nil {
		return nil, h.fail("failed to pass qa", err, zap.Int64("qa_id", req.QaId), zap.Int64("order_id", req.OrderId))
	}
	return &fulfillmentv1.PassQAResponse{
		Record:   apiconv.QARecord(res.Record),
		Shipment: apiconv.Shipment(res.Shipment),
		Created:  res.Created,
	}, nil
}

func (h *QualityHandler) FailQA(ctx context.Context, req *fulfillmentv1.FailQARequest) (*fulfillmentv1.QARecord, error) {
	r, err := h.uc.FailQA(ctx, &dto.FailQAInput{
		QAID:          req.QaId,
		OrderID:       req.OrderId,
		InspectorName: req.InspectorName,
		DefectsFound:  int(req.DefectsFound),
		Notes:         req.Notes,
	})
	if err != nil {
		return nil, h.fail("failed to fail qa", err, zap.Int64("qa_id", req.QaId), zap.Int64("order_id", req.OrderId))
	}
	return apiconv.QARecord(r), nil
}

func (h *QualityHandler) fail(msg string, err error, fields ...zap.Field) error {
	if k := apperr.KindOf(err); k == apperr.KindPersistenceFailure || k == apperr.KindUnknown {
		h.logger.Error(msg, append(fields, zap.Error(err))...)
	}
	return apperr.GRPCStatus(err)
}
