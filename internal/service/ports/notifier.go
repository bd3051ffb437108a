package ports

import (
	"context"

	"github.com/maazimam/parkeasy-sub000/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, event domain.BookingEvent)
	NotifyBookingApproved(ctx context.Context, event domain.BookingEvent)
	NotifyBookingDeclined(ctx context.Context, event domain.BookingEvent)
	NotifyBookingCancelled(ctx context.Context, event domain.BookingEvent)
}
