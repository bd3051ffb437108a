package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidSlots       = errors.New("invalid slots")
	ErrPattern            = errors.New("invalid recurring pattern")
	ErrInvariantViolation = errors.New("availability invariant violated")
)

var (
	ErrNotAvailable      = errors.New("listing is not available for the requested time")
	ErrConflict          = errors.New("booking no longer fits the listing availability")
	ErrApprovedConflict  = errors.New("new availability does not cover an approved booking")
	ErrPendingExists     = errors.New("listing has pending bookings")
	ErrBookingNotPending = errors.New("booking is not in pending status")
)

var (
	ErrSelfBooking = errors.New("owners cannot book their own listing")
	ErrNotAllowed  = errors.New("action not allowed for this user")
)

var (
	ErrNotReviewable = errors.New("booking cannot be reviewed")
	ErrUsernameTaken = errors.New("username is already taken")
)

// NotAvailableError lists the dates whose requested slots are not covered
// by the listing's availability.
type NotAvailableError struct {
	Dates []time.Time
}

func (e *NotAvailableError) Error() string {
	if len(e.Dates) == 0 {
		return ErrNotAvailable.Error()
	}
	parts := make([]string, len(e.Dates))
	for i, d := range e.Dates {
		parts[i] = d.Format("2006-01-02")
	}
	return fmt.Sprintf("%s: %s", ErrNotAvailable, strings.Join(parts, ", "))
}

func (e *NotAvailableError) Is(target error) bool {
	return target == ErrNotAvailable
}
