package repositories

import (
	"context"
)

// UnitOfWork defines the interface for atomic operations. Counter-maintaining
// mutations (member counts, comment counts, vote tallies) run inside one.
type UnitOfWork interface {
	// Do executes the given function within a transaction scope
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
