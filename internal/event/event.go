package event

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/fekuna/omnipos-fulfillment-service/pkg/broker"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	TypeOrderCreated          = "OrderCreated"
	TypeOrderAccepted         = "OrderAccepted"
	TypeOrderPaid             = "OrderPaid"
	TypeOrderCancelled        = "OrderCancelled"
	TypeProductionStarted     = "ProductionStarted"
	TypeProductionFinished    = "ProductionFinished"
	TypeGrievanceCreated      = "GrievanceCreated"
	TypeQAPassed              = "QAPassed"
	TypeQAFailed              = "QAFailed"
	TypeShipmentCreated       = "ShipmentCreated"
	TypeInventoryRestocked    = "InventoryRestocked"
	TypePurchaseOrderReceived = "PurchaseOrderReceived"
	TypePurchaseOrdersCreated = "PurchaseOrdersCreated"
)

// Event is the envelope published on the fulfillment topic.
type Event struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	OrderID   int64       `json:"order_id,omitempty"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

func New(eventType string, orderID int64, payload interface{}) Event {
	return Event{
		EventID:   uuid.New().String(),
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// Publisher delivers events on a best-effort basis. Delivery failures are logged by
// the implementation and never fail the operation that produced the event.
type Publisher interface {
	Publish(ctx context.Context, evt Event)
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) {}

type KafkaPublisher struct {
	producer *broker.KafkaProducer
	logger   logger.ZapLogger
}

func NewKafkaPublisher(producer *broker.KafkaProducer, log logger.ZapLogger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, logger: log}
}

func (p *KafkaPublisher) Publish(ctx context.Context, evt Event) {
	data, err := json.Marshal(evt)
	if err != nil {
		p.logger.Error("failed to marshal event", zap.String("event_type", evt.EventType), zap.Error(err))
		return
	}

	key := evt.EventID
	if evt.OrderID != 0 {
		key = strconv.FormatInt(evt.OrderID, 10)
	}
	if err := p.producer.Publish(ctx, key, data); err != nil {
		p.logger.Error("failed to publish event",
			zap.String("event_type", evt.EventType),
			zap.Int64("order_id", evt.OrderID),
			zap.Error(err),
		)
	}
}

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(_ context.Context, evt Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
}

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Types lists recorded event types in publish order.
func (r *Recorder) Types() []string {
	events := r.Events()
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.EventType
	}
	return out
}
