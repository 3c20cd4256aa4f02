package listener

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
)

type recordingUseCase struct {
	invalidated []int64
}

func (r *recordingUseCase) GetProduct(context.Context, int64) (*model.Product, error) {
	return nil, nil
}

func (r *recordingUseCase) Invalidate(_ context.Context, productID int64) error {
	r.invalidated = append(r.invalidated, productID)
	return nil
}

func TestProcessMessage(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantIDs []int64
	}{
		{"updated", `{"event_type":"ProductUpdated","payload":{"product_id":3}}`, []int64{3}},
		{"deleted", `{"event_type":"ProductDeleted","payload":{"product_id":4}}`, []int64{4}},
		{"other event", `{"event_type":"ProductCreated","payload":{"product_id":5}}`, nil},
		{"missing id", `{"event_type":"ProductUpdated","payload":{}}`, nil},
		{"garbage", `{`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &recordingUseCase{}
			l := NewCatalogListener(nil, uc, logger.NewNop())

			l.processMessage(context.Background(), []byte(tt.value))

			if len(uc.invalidated) != len(tt.wantIDs) {
				t.Fatalf("Expected %v, got %v", tt.wantIDs, uc.invalidated)
			}
			for i, id := range tt.wantIDs {
				if uc.invalidated[i] != id {
					t.Errorf("Expected %d, got %d", id, uc.invalidated[i])
				}
			}
		})
	}
}
