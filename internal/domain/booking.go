package domain

import (
	"time"

	"github.com/maazimam/parkeasy-sub000/internal/interval"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "PENDING"
	BookingStatusApproved BookingStatus = "APPROVED"
	BookingStatusDeclined BookingStatus = "DECLINED"
)

type Booking struct {
	ID         string              `json:"id"`
	ListingID  string              `json:"listing_id"`
	RenterID   string              `json:"renter_id"`
	Email      string              `json:"email"`
	Status     BookingStatus       `json:"status"`
	TotalPrice decimal.Decimal     `json:"total_price"`
	Slots      []interval.Interval `json:"slots"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// LastSlotEnd returns the latest end among the booking's slots.
func (b *Booking) LastSlotEnd() (time.Time, bool) {
	var last time.Time
	for _, s := range b.Slots {
		if s.End.After(last) {
			last = s.End
		}
	}
	return last, len(b.Slots) > 0
}

// HasPassed reports whether every slot of the booking has ended by now.
func (b *Booking) HasPassed(now time.Time) bool {
	last, ok := b.LastSlotEnd()
	return ok && !last.After(now)
}

type CreateBookingInput struct {
	RenterID  string
	ListingID string
	Email     string
	Slots     []interval.Interval
	Recurring *Recurrence
}

type BookingEventKind string

const (
	BookingCreated   BookingEventKind = "booking.created"
	BookingApproved  BookingEventKind = "booking.approved"
	BookingDeclined  BookingEventKind = "booking.declined"
	BookingCancelled BookingEventKind = "booking.cancelled"
)

// BookingEvent is handed to notifiers after the owning transaction commits.
type BookingEvent struct {
	Kind    BookingEventKind
	Booking *Booking
	Listing *Listing
	Renter  *User
	At      time.Time
}
