package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-fulfillment-service/internal/event"
	"github.com/fekuna/omnipos-fulfillment-service/internal/purchasing"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by broker.KafkaConsumer.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ProcurementListener struct {
	consumer MessageReader
	uc       purchasing.UseCase
	logger   logger.ZapLogger
}

func NewProcurementListener(consumer MessageReader, uc purchasing.UseCase, logger logger.ZapLogger) *ProcurementListener {
	return &ProcurementListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
	}
}

func (l *ProcurementListener) Start(ctx context.Context) {
	l.logger.Info("Starting Procurement Kafka Listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping Procurement Kafka Listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type ReceiptEvent struct {
	EventID   string         `json:"event_id"`
	EventType string         `json:"event_type"`
	Payload   ReceiptPayload `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
}

type ReceiptPayload struct {
	PurchaseOrderID int64 `json:"purchase_order_id"`
}

func (l *ProcurementListener) processMessage(ctx context.Context, value []byte) {
	var evt ReceiptEvent
	if err := json.Unmarshal(value, &evt); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if evt.EventType != event.TypePurchaseOrderReceived {
		return
	}
	if evt.Payload.PurchaseOrderID <= 0 {
		l.logger.Warn("Receipt event without purchase order id", zap.String("event_id", evt.EventID))
		return
	}

	l.logger.Info("Processing PurchaseOrderReceived event", zap.Int64("purchase_order_id", evt.Payload.PurchaseOrderID))

	if _, err := l.uc.Receive(ctx, evt.Payload.PurchaseOrderID); err != nil {
		l.logger.Error("Failed to receive purchase order",
			zap.Int64("purchase_order_id", evt.Payload.PurchaseOrderID),
			zap.Error(err),
		)
	}
}
