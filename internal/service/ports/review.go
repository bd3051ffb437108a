package ports

import (
	"context"

	"github.com/maazimam/parkeasy-sub000/internal/domain"
)

type ReviewRepo interface {
	Create(ctx context.Context, r *domain.Review) error
	ExistsForBooking(ctx context.Context, bookingID string) (bool, error)
	ListByListing(ctx context.Context, listingID string) ([]*domain.Review, error)
	Summary(ctx context.Context, listingID string) (domain.RatingSummary, error)
}
