package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/maazimam/parkeasy-sub000/internal/interval"
	"github.com/maazimam/parkeasy-sub000/internal/recurrence"
	"github.com/maazimam/parkeasy-sub000/internal/service/ports"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

var minutesPerHour = decimal.NewFromInt(60)

// BookingService drives the booking state machine. Every transition that
// reads or writes availability runs under the listing lock.
type BookingService struct {
	tx           ports.TxManager
	bookingRepo  ports.BookingRepo
	listingRepo  ports.ListingRepo
	availability ports.AvailabilityRepo
	userRepo     ports.UserRepo
	cache        ports.SearchCache
	notifier     ports.BookingNotifier
	logger       logger.Logger
}

func NewBookingService(
	tx ports.TxManager,
	bookingRepo ports.BookingRepo,
	listingRepo ports.ListingRepo,
	availability ports.AvailabilityRepo,
	userRepo ports.UserRepo,
	cache ports.SearchCache,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		tx:           tx,
		bookingRepo:  bookingRepo,
		listingRepo:  listingRepo,
		availability: availability,
		userRepo:     userRepo,
		cache:        cache,
		notifier:     notifier,
		logger:       logger,
	}
}

// Create validates the requested slots and stores a PENDING booking.
// Availability is not modified.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput, now time.Time) (*domain.Booking, error) {
	slots := input.Slots
	if input.Recurring != nil {
		if len(input.Slots) > 0 {
			return nil, fmt.Errorf("%w: give either slots or a recurring pattern", domain.ErrInvalidSlots)
		}
		expanded, err := recurrence.Expand(*input.Recurring, now)
		if err != nil {
			return nil, err
		}
		slots = expanded
	}
	if err := validateSlots(slots, now); err != nil {
		return nil, err
	}

	listing, err := s.listingRepo.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if listing.OwnerID == input.RenterID {
		return nil, domain.ErrSelfBooking
	}

	renter, err := s.userRepo.GetByID(ctx, input.RenterID)
	if err != nil {
		return nil, fmt.Errorf("check renter: %w", err)
	}

	email := input.Email
	if email == "" {
		email = renter.Email
	}
	if email == "" {
		return nil, fmt.Errorf("%w: contact email is required", domain.ErrValidation)
	}

	booking := &domain.Booking{
		ID:         uuid.New().String(),
		ListingID:  listing.ID,
		RenterID:   renter.ID,
		Email:      email,
		Status:     domain.BookingStatusPending,
		TotalPrice: totalPrice(listing.RentPerHour, slots),
		Slots:      sortedCopy(slots),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = s.tx.WithinListingLock(ctx, listing.ID, func(ctx context.Context) error {
		avail, err := s.availability.Get(ctx, listing.ID)
		if err != nil {
			return fmt.Errorf("get availability: %w", err)
		}
		if missing := uncovered(booking.Slots, avail); len(missing) > 0 {
			return &domain.NotAvailableError{Dates: startDates(missing)}
		}
		return s.bookingRepo.Create(ctx, booking)
	})
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("listing_id", listing.ID),
		logger.String("renter_id", renter.ID),
		logger.Int("slots", len(booking.Slots)),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), domain.BookingEvent{
		Kind:    domain.BookingCreated,
		Booking: booking,
		Listing: listing,
		Renter:  renter,
		At:      now,
	})

	return booking, nil
}

// Approve moves a PENDING booking to APPROVED and blocks its slots out of
// availability. It fails with ErrConflict when availability no longer covers
// the slots.
func (s *BookingService) Approve(ctx context.Context, bookingID, actorID string, now time.Time) (*domain.Booking, error) {
	listing, err := s.ownedListing(ctx, bookingID, actorID)
	if err != nil {
		return nil, err
	}

	var booking *domain.Booking
	err = s.tx.WithinListingLock(ctx, listing.ID, func(ctx context.Context) error {
		b, err := s.bookingRepo.GetByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if b.Status != domain.BookingStatusPending {
			return fmt.Errorf("%w: booking is %s", domain.ErrBookingNotPending, b.Status)
		}

		avail, err := s.availability.Get(ctx, listing.ID)
		if err != nil {
			return fmt.Errorf("get availability: %w", err)
		}
		if missing := uncovered(b.Slots, avail); len(missing) > 0 {
			return fmt.Errorf("%w: %d slot(s) no longer available", domain.ErrConflict, len(missing))
		}

		if err = s.availability.Replace(ctx, listing.ID, BlockOut(avail, b.Slots)); err != nil {
			return fmt.Errorf("block out: %w", err)
		}
		if err = s.bookingRepo.UpdateStatus(ctx, b.ID, domain.BookingStatusApproved, now); err != nil {
			return err
		}

		b.Status, b.UpdatedAt = domain.BookingStatusApproved, now
		booking = b
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("approve booking: %w", err)
	}

	s.cache.Invalidate(ctx)
	s.logger.Info("booking approved",
		logger.String("booking_id", booking.ID),
		logger.String("listing_id", listing.ID),
	)

	go s.notify(context.WithoutCancel(ctx), domain.BookingApproved, booking, listing, now)

	return booking, nil
}

// Decline moves a PENDING or APPROVED booking to DECLINED. Slots of an
// APPROVED booking are restored to availability. Declining twice is a no-op.
func (s *BookingService) Decline(ctx context.Context, bookingID, actorID string, now time.Time) (*domain.Booking, error) {
	listing, err := s.ownedListing(ctx, bookingID, actorID)
	if err != nil {
		return nil, err
	}

	var (
		booking  *domain.Booking
		restored bool
		changed  bool
	)
	err = s.tx.WithinListingLock(ctx, listing.ID, func(ctx context.Context) error {
		b, err := s.bookingRepo.GetByID(ctx, bookingID)
		if err != nil {
			return err
		}
		booking = b
		if b.Status == domain.BookingStatusDeclined {
			return nil
		}

		if b.Status == domain.BookingStatusApproved {
			if err = s.restore(ctx, listing.ID, b.Slots); err != nil {
				return err
			}
			restored = true
		}
		if err = s.bookingRepo.UpdateStatus(ctx, b.ID, domain.BookingStatusDeclined, now); err != nil {
			return err
		}

		b.Status, b.UpdatedAt = domain.BookingStatusDeclined, now
		changed = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("decline booking: %w", err)
	}
	if !changed {
		return booking, nil
	}

	if restored {
		s.cache.Invalidate(ctx)
	}
	s.logger.Info("booking declined",
		logger.String("booking_id", booking.ID),
		logger.String("listing_id", listing.ID),
		logger.Any("restored", restored),
	)

	go s.notify(context.WithoutCancel(ctx), domain.BookingDeclined, booking, listing, now)

	return booking, nil
}

// Cancel deletes the renter's booking, restoring availability when it was APPROVED.
func (s *BookingService) Cancel(ctx context.Context, bookingID, actorID string, now time.Time) error {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}
	if b.RenterID != actorID {
		return fmt.Errorf("%w: only the renter can cancel a booking", domain.ErrNotAllowed)
	}

	listing, err := s.listingRepo.GetByID(ctx, b.ListingID)
	if err != nil {
		return fmt.Errorf("get listing: %w", err)
	}

	var restored bool
	err = s.tx.WithinListingLock(ctx, listing.ID, func(ctx context.Context) error {
		cur, err := s.bookingRepo.GetByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if cur.Status == domain.BookingStatusApproved {
			if err = s.restore(ctx, listing.ID, cur.Slots); err != nil {
				return err
			}
			restored = true
		}
		b = cur
		return s.bookingRepo.Delete(ctx, cur.ID)
	})
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	if restored {
		s.cache.Invalidate(ctx)
	}
	s.logger.Info("booking cancelled",
		logger.String("booking_id", b.ID),
		logger.String("listing_id", listing.ID),
		logger.Any("restored", restored),
	)

	go s.notify(context.WithoutCancel(ctx), domain.BookingCancelled, b, listing, now)

	return nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) ListByRenter(ctx context.Context, renterID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByRenter(ctx, renterID)
}

// ListByListing is the owner's view of the bookings made on a listing.
func (s *BookingService) ListByListing(ctx context.Context, listingID, actorID string) ([]*domain.Booking, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if listing.OwnerID != actorID {
		return nil, fmt.Errorf("%w: only the owner can list bookings", domain.ErrNotAllowed)
	}

	return s.bookingRepo.ListByListing(ctx, listingID)
}

// ownedListing resolves the listing of a booking and checks that actorID owns it.
func (s *BookingService) ownedListing(ctx context.Context, bookingID, actorID string) (*domain.Listing, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	listing, err := s.listingRepo.GetByID(ctx, b.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if listing.OwnerID != actorID {
		return nil, fmt.Errorf("%w: only the listing owner can do this", domain.ErrNotAllowed)
	}

	return listing, nil
}

func (s *BookingService) restore(ctx context.Context, listingID string, slots []interval.Interval) error {
	avail, err := s.availability.Get(ctx, listingID)
	if err != nil {
		return fmt.Errorf("get availability: %w", err)
	}
	if err = s.availability.Replace(ctx, listingID, Restore(avail, slots)); err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	return nil
}

func (s *BookingService) notify(ctx context.Context, kind domain.BookingEventKind, b *domain.Booking, listing *domain.Listing, now time.Time) {
	renter, err := s.userRepo.GetByID(ctx, b.RenterID)
	if err != nil {
		s.logger.Error("failed to get renter for notification",
			logger.String("renter_id", b.RenterID),
			logger.String("error", err.Error()),
		)
		return
	}

	event := domain.BookingEvent{Kind: kind, Booking: b, Listing: listing, Renter: renter, At: now}
	switch kind {
	case domain.BookingApproved:
		s.notifier.NotifyBookingApproved(ctx, event)
	case domain.BookingDeclined:
		s.notifier.NotifyBookingDeclined(ctx, event)
	case domain.BookingCancelled:
		s.notifier.NotifyBookingCancelled(ctx, event)
	}
}

// totalPrice is the summed slot duration in hours times the hourly rate,
// rounded to cents.
func totalPrice(rate decimal.Decimal, slots []interval.Interval) decimal.Decimal {
	minutes := decimal.NewFromInt(interval.TotalMinutes(slots))
	return rate.Mul(minutes).Div(minutesPerHour).Round(2)
}
