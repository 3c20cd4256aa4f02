package database

import "context"

// Transactor runs fn as one atomic unit of work. Implementations join an outer unit
// when ctx already carries one.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
