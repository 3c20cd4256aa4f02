package cache

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrLockBusy is returned when a lock could not be taken after all retries.
var ErrLockBusy = errors.New("system busy, please try again later (lock)")

type Locker interface {
	AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, value string) error
}

type LockOptions struct {
	TTL        time.Duration
	Attempts   int
	RetryDelay time.Duration
}

var DefaultLockOptions = LockOptions{TTL: 5 * time.Second, Attempts: 3, RetryDelay: 100 * time.Millisecond}

// WithLock runs fn while holding key. A nil locker runs fn unguarded.
func WithLock(ctx context.Context, locker Locker, key string, opts LockOptions, fn func() error) error {
	if locker == nil {
		return fn()
	}
	if opts.Attempts <= 0 {
		opts.Attempts = 1
	}

	token := uuid.New().String()
	acquired := false
	var lastErr error
	for i := 0; i < opts.Attempts; i++ {
		ok, err := locker.AcquireLock(ctx, key, token, opts.TTL)
		if err != nil {
			lastErr = err
		}
		if ok {
			acquired = true
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(opts.RetryDelay):
		}
	}
	if !acquired {
		if lastErr != nil {
			return errors.Join(ErrLockBusy, lastErr)
		}
		return ErrLockBusy
	}
	defer locker.ReleaseLock(context.WithoutCancel(ctx), key, token)

	return fn()
}
