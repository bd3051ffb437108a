package ports

import (
	"context"
	"time"

	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/maazimam/parkeasy-sub000/internal/interval"
)

type ListingRepo interface {
	Create(ctx context.Context, l *domain.Listing, availability []interval.Interval) error
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, filter domain.ListingFilter, now time.Time) ([]*domain.Listing, error)
}

// SearchCache keeps search results until the next availability change.
type SearchCache interface {
	Get(ctx context.Context, key string) ([]domain.ListingResult, bool)
	Set(ctx context.Context, key string, results []domain.ListingResult)
	Invalidate(ctx context.Context)
}
