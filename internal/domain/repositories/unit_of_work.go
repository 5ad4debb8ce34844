package repositories

import (
	"context"
)

// UnitOfWork groups repository writes into one atomic scope. Join,
// registration, approval and archival flows all run through it.
type UnitOfWork interface {
	// Do runs fn inside a transaction; any error rolls the whole scope back.
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
