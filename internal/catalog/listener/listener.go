package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-fulfillment-service/internal/catalog"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	TypeProductUpdated = "ProductUpdated"
	TypeProductDeleted = "ProductDeleted"
)

// MessageReader is satisfied by broker.KafkaConsumer.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// CatalogListener drops cached product snapshots when the configurator changes a product.
type CatalogListener struct {
	consumer MessageReader
	uc       catalog.UseCase
	logger   logger.ZapLogger
}

func NewCatalogListener(consumer MessageReader, uc catalog.UseCase, logger logger.ZapLogger) *CatalogListener {
	return &CatalogListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
	}
}

func (l *CatalogListener) Start(ctx context.Context) {
	l.logger.Info("Starting Catalog Kafka Listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping Catalog Kafka Listener")
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

type ProductEvent struct {
	EventID   string         `json:"event_id"`
	EventType string         `json:"event_type"`
	Payload   ProductPayload `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
}

type ProductPayload struct {
	ProductID int64 `json:"product_id"`
}

func (l *CatalogListener) processMessage(ctx context.Context, value []byte) {
	var evt ProductEvent
	if err := json.Unmarshal(value, &evt); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if evt.EventType != TypeProductUpdated && evt.EventType != TypeProductDeleted {
		return
	}
	if evt.Payload.ProductID <= 0 {
		l.logger.Warn("Product event without product id", zap.String("event_id", evt.EventID))
		return
	}

	l.logger.Debug("Invalidating product snapshot",
		zap.String("event_type", evt.EventType),
		zap.Int64("product_id", evt.Payload.ProductID),
	)

	if err := l.uc.Invalidate(ctx, evt.Payload.ProductID); err != nil {
		l.logger.Error("Failed to invalidate product snapshot",
			zap.Int64("product_id", evt.Payload.ProductID),
			zap.Error(err),
		)
	}
}
