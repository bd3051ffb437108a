package ports

import (
	"context"
	"time"

	"github.com/maazimam/parkeasy-sub000/internal/interval"
)

type AvailabilityRepo interface {
	Get(ctx context.Context, listingID string) ([]interval.Interval, error)
	GetMany(ctx context.Context, listingIDs []string) (map[string][]interval.Interval, error)
	Replace(ctx context.Context, listingID string, slots []interval.Interval) error
	Bounds(ctx context.Context, listingID string) (earliest, latest time.Time, ok bool, err error)
	PruneExpired(ctx context.Context, now time.Time) (int64, error)
}

// TxManager serialises mutations of one listing. Repositories called with
// the ctx passed to fn take part in the same transaction.
type TxManager interface {
	WithinListingLock(ctx context.Context, listingID string, fn func(ctx context.Context) error) error
}
