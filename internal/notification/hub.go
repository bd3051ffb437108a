package notification

import (
	"context"

	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Sender delivers a booking event over one channel.
type Sender interface {
	Send(ctx context.Context, event domain.BookingEvent) error
}

type channel struct {
	name   string
	sender Sender
}

// Hub fans booking events out to every registered channel. A failing channel
// is logged and does not stop the others.
type Hub struct {
	channels []channel
	logger   logger.Logger
}

func NewHub(logger logger.Logger) *Hub {
	return &Hub{logger: logger}
}

func (h *Hub) Register(name string, s Sender) {
	h.channels = append(h.channels, channel{name: name, sender: s})
}

func (h *Hub) NotifyBookingCreated(ctx context.Context, event domain.BookingEvent) {
	h.dispatch(ctx, event)
}

func (h *Hub) NotifyBookingApproved(ctx context.Context, event domain.BookingEvent) {
	h.dispatch(ctx, event)
}

func (h *Hub) NotifyBookingDeclined(ctx context.Context, event domain.BookingEvent) {
	h.dispatch(ctx, event)
}

func (h *Hub) NotifyBookingCancelled(ctx context.Context, event domain.BookingEvent) {
	h.dispatch(ctx, event)
}

func (h *Hub) dispatch(ctx context.Context, event domain.BookingEvent) {
	for _, c := range h.channels {
		if err := ctx.Err(); err != nil {
			h.logger.Debug("notification skipped (context cancelled)",
				logger.String("channel", c.name),
			)
			return
		}

		if err := c.sender.Send(ctx, event); err != nil {
			h.logger.Error("failed to send notification",
				logger.String("channel", c.name),
				logger.String("kind", string(event.Kind)),
				logger.String("booking_id", bookingID(event)),
				logger.String("error", err.Error()),
			)
		}
	}
}

func bookingID(event domain.BookingEvent) string {
	if event.Booking == nil {
		return ""
	}
	return event.Booking.ID
}
