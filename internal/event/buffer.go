package event

import (
	"context"
	"sync"
)

type bufferKey struct{}

// Buffer holds events raised inside a transaction until it commits.
type Buffer struct {
	mu     sync.Mutex
	events []Event
}

// WithBuffer returns a context whose Emit calls are held in the returned buffer.
func WithBuffer(ctx context.Context) (context.Context, *Buffer) {
	buf := &Buffer{}
	return context.WithValue(ctx, bufferKey{}, buf), buf
}

// Emit publishes evt, or holds it when ctx carries a Buffer.
func Emit(ctx context.Context, p Publisher, evt Event) {
	if buf, ok := ctx.Value(bufferKey{}).(*Buffer); ok {
		buf.mu.Lock()
		buf.events = append(buf.events, evt)
		buf.mu.Unlock()
		return
	}
	p.Publish(ctx, evt)
}

// Flush publishes held events in the order they were raised.
func (b *Buffer) Flush(ctx context.Context, p Publisher) {
	b.mu.Lock()
	events := b.events
	b.events = nil
	b.mu.Unlock()

	for _, evt := range events {
		p.Publish(ctx, evt)
	}
}

// Discard drops held events; used when the transaction rolled back.
func (b *Buffer) Discard() {
	b.mu.Lock()
	b.events = nil
	b.mu.Unlock()
}
