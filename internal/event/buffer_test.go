package event

import (
	"context"
	"testing"
)

func TestEmitWithoutBufferPublishes(t *testing.T) {
	rec := &Recorder{}
	Emit(context.Background(), rec, New(TypeOrderAccepted, 1, nil))

	if got := rec.Types(); len(got) != 1 || got[0] != TypeOrderAccepted {
		t.Errorf("Expected immediate publish, got %v", got)
	}
}

func TestBufferFlushKeepsOrder(t *testing.T) {
	rec := &Recorder{}
	ctx, buf := WithBuffer(context.Background())

	Emit(ctx, rec, New(TypeProductionFinished, 7, nil))
	Emit(ctx, rec, New(TypeGrievanceCreated, 7, nil))
	if len(rec.Events()) != 0 {
		t.Fatal("Expected events to be held until flush")
	}

	buf.Flush(context.Background(), rec)
	got := rec.Types()
	if len(got) != 2 || got[0] != TypeProductionFinished || got[1] != TypeGrievanceCreated {
		t.Errorf("Unexpected publish order %v", got)
	}

	buf.Flush(context.Background(), rec)
	if len(rec.Events()) != 2 {
		t.Error("Expected a second flush to publish nothing")
	}
}

func TestBufferDiscard(t *testing.T) {
	rec := &Recorder{}
	ctx, buf := WithBuffer(context.Background())

	Emit(ctx, rec, New(TypeQAPassed, 3, nil))
	buf.Discard()
	buf.Flush(context.Background(), rec)

	if len(rec.Events()) != 0 {
		t.Errorf("Expected discarded events to stay unpublished, got %v", rec.Types())
	}
}
