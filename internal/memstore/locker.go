package memstore

import (
	"context"
	"sync"
	"time"
)

// Locker is an in-process stand-in for the redis lock with the same expiry semantics.
type Locker struct {
	mu   sync.Mutex
	held map[string]heldLock
}

type heldLock struct {
	value   string
	expires time.Time
}

func NewLocker() *Locker {
	return &Locker{held: make(map[string]heldLock)}
}

func (l *Locker) AcquireLock(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if cur, ok := l.held[key]; ok && time.Now().Before(cur.expires) {
		return false, nil
	}
	l.held[key] = heldLock{value: value, expires: time.Now().Add(ttl)}
	return true, nil
}

func (l *Locker) ReleaseLock(_ context.Context, key, value string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if cur, ok := l.held[key]; ok && cur.value == value {
		delete(l.held, key)
	}
	return nil
}
