package ports

import (
	"context"
	"time"

	"github.com/maazimam/parkeasy-sub000/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByRenter(ctx context.Context, renterID string) ([]*domain.Booking, error)
	ListByListing(ctx context.Context, listingID string, statuses ...domain.BookingStatus) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, at time.Time) error
	Delete(ctx context.Context, id string) error
}
