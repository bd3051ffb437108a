package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/maazimam/parkeasy-sub000/internal/geo"
	"github.com/maazimam/parkeasy-sub000/internal/interval"
	"github.com/maazimam/parkeasy-sub000/internal/recurrence"
	"github.com/maazimam/parkeasy-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ListingService struct {
	tx           ports.TxManager
	listingRepo  ports.ListingRepo
	availability ports.AvailabilityRepo
	bookingRepo  ports.BookingRepo
	reviewRepo   ports.ReviewRepo
	cache        ports.SearchCache
	logger       logger.Logger
}

func NewListingService(
	tx ports.TxManager,
	listingRepo ports.ListingRepo,
	availability ports.AvailabilityRepo,
	bookingRepo ports.BookingRepo,
	reviewRepo ports.ReviewRepo,
	cache ports.SearchCache,
	logger logger.Logger,
) *ListingService {
	return &ListingService{
		tx:           tx,
		listingRepo:  listingRepo,
		availability: availability,
		bookingRepo:  bookingRepo,
		reviewRepo:   reviewRepo,
		cache:        cache,
		logger:       logger,
	}
}

func (s *ListingService) Create(ctx context.Context, input domain.CreateListingInput, now time.Time) (*domain.Listing, error) {
	if err := validateListing(&input); err != nil {
		return nil, err
	}

	slots := input.Availability
	if input.Recurring != nil {
		if len(input.Availability) > 0 {
			return nil, fmt.Errorf("%w: give either availability or a recurring pattern", domain.ErrValidation)
		}
		expanded, err := recurrence.Expand(*input.Recurring, now)
		if err != nil {
			return nil, err
		}
		slots = expanded
	}
	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: at least one availability slot is required", domain.ErrInvalidSlots)
	}
	for i, sl := range slots {
		if !sl.Valid() || !sl.Aligned() {
			return nil, fmt.Errorf("%w: availability slot %d must be a non-empty half-hour range", domain.ErrInvalidSlots, i+1)
		}
		if sl.Expired(now) {
			return nil, fmt.Errorf("%w: availability slot %d is in the past", domain.ErrInvalidSlots, i+1)
		}
	}

	listing := &domain.Listing{
		ID:            uuid.New().String(),
		OwnerID:       input.OwnerID,
		Title:         input.Title,
		Location:      input.Location,
		Description:   input.Description,
		RentPerHour:   input.RentPerHour,
		SpotSize:      input.SpotSize,
		HasEVCharger:  input.HasEVCharger,
		ChargerLevel:  input.ChargerLevel,
		ConnectorType: input.ConnectorType,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.listingRepo.Create(ctx, listing, interval.Merge(slots)); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	s.cache.Invalidate(ctx)
	s.logger.Info("listing created",
		logger.String("listing_id", listing.ID),
		logger.String("owner_id", listing.OwnerID),
	)

	return listing, nil
}

func validateListing(input *domain.CreateListingInput) error {
	input.Title = strings.TrimSpace(input.Title)
	input.Location = strings.TrimSpace(input.Location)

	switch {
	case input.OwnerID == "":
		return fmt.Errorf("%w: owner is required", domain.ErrValidation)
	case input.Title == "":
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	case input.Location == "":
		return fmt.Errorf("%w: location is required", domain.ErrValidation)
	case !input.RentPerHour.IsPositive():
		return fmt.Errorf("%w: rent per hour must be positive", domain.ErrValidation)
	case input.RentPerHour.Exponent() < -2 && !input.RentPerHour.Equal(input.RentPerHour.Round(2)):
		return fmt.Errorf("%w: rent per hour has more than two decimal places", domain.ErrValidation)
	}

	if input.SpotSize == "" {
		input.SpotSize = domain.SpotSizeStandard
	}
	if !input.SpotSize.Valid() {
		return fmt.Errorf("%w: unknown spot size %q", domain.ErrValidation, input.SpotSize)
	}

	if !input.HasEVCharger {
		input.ChargerLevel, input.ConnectorType = "", ""
		return nil
	}
	if !input.ChargerLevel.Valid() {
		return fmt.Errorf("%w: unknown charger level %q", domain.ErrValidation, input.ChargerLevel)
	}
	if !input.ConnectorType.Valid() {
		return fmt.Errorf("%w: unknown connector type %q", domain.ErrValidation, input.ConnectorType)
	}

	return nil
}

// Get returns the listing with its upcoming availability and rating summary.
func (s *ListingService) Get(ctx context.Context, id string, now time.Time) (*domain.ListingDetails, error) {
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	avail, err := s.availability.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get availability: %w", err)
	}

	summary, err := s.reviewRepo.Summary(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get rating: %w", err)
	}

	return &domain.ListingDetails{
		Listing:       *listing,
		Availability:  dropExpired(avail, now),
		ShortLocation: geo.SimplifyLocation(listing.Location),
		AverageRating: summary.Average,
		ReviewCount:   summary.Count,
	}, nil
}

func (s *ListingService) Delete(ctx context.Context, id, actorID string) error {
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get listing: %w", err)
	}
	if listing.OwnerID != actorID {
		return fmt.Errorf("%w: only the owner can delete a listing", domain.ErrNotAllowed)
	}

	if err = s.listingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}

	s.cache.Invalidate(ctx)
	s.logger.Info("listing deleted", logger.String("listing_id", id))

	return nil
}

// Schedule is the owner's editable view: availability plus the slots of
// approved bookings.
func (s *ListingService) Schedule(ctx context.Context, id, actorID string) ([]interval.Interval, error) {
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if listing.OwnerID != actorID {
		return nil, fmt.Errorf("%w: only the owner can view the schedule", domain.ErrNotAllowed)
	}

	avail, err := s.availability.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get availability: %w", err)
	}

	approved, err := s.bookingRepo.ListByListing(ctx, id, domain.BookingStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("list approved bookings: %w", err)
	}

	return interval.Union(avail, bookedSlots(approved)), nil
}

// EditAvailability replaces the owner's schedule. The submitted set must
// keep every upcoming approved slot; those slots are then subtracted so that
// only free time is stored. Edits are refused while bookings are pending.
func (s *ListingService) EditAvailability(ctx context.Context, id, actorID string, slots []interval.Interval, now time.Time) ([]interval.Interval, error) {
	for i, sl := range slots {
		if !sl.Valid() {
			return nil, fmt.Errorf("%w: slot %d must end after it starts", domain.ErrInvariantViolation, i+1)
		}
		if !sl.Aligned() {
			return nil, fmt.Errorf("%w: slot %d is not on the half-hour grid", domain.ErrInvariantViolation, i+1)
		}
	}

	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if listing.OwnerID != actorID {
		return nil, fmt.Errorf("%w: only the owner can edit availability", domain.ErrNotAllowed)
	}

	var persisted []interval.Interval
	err = s.tx.WithinListingLock(ctx, id, func(ctx context.Context) error {
		pending, err := s.bookingRepo.ListByListing(ctx, id, domain.BookingStatusPending)
		if err != nil {
			return fmt.Errorf("list pending bookings: %w", err)
		}
		if len(pending) > 0 {
			return fmt.Errorf("%w: %d booking(s) awaiting a decision", domain.ErrPendingExists, len(pending))
		}

		approved, err := s.bookingRepo.ListByListing(ctx, id, domain.BookingStatusApproved)
		if err != nil {
			return fmt.Errorf("list approved bookings: %w", err)
		}
		reserved := bookedSlots(approved)

		proposed := interval.Merge(slots)
		if missing := uncovered(dropExpired(reserved, now), proposed); len(missing) > 0 {
			return fmt.Errorf("%w: slot %s is booked", domain.ErrApprovedConflict, missing[0])
		}

		persisted = dropExpired(BlockOut(proposed, reserved), now)
		return s.availability.Replace(ctx, id, persisted)
	})
	if err != nil {
		return nil, fmt.Errorf("edit availability: %w", err)
	}

	s.cache.Invalidate(ctx)
	s.logger.Info("availability replaced",
		logger.String("listing_id", id),
		logger.Int("intervals", len(persisted)),
	)

	return persisted, nil
}

// Search returns the listings matching every predicate of the filter,
// ordered by distance when a search point is given.
func (s *ListingService) Search(ctx context.Context, filter domain.ListingFilter, now time.Time) ([]domain.ListingResult, error) {
	targets, err := searchTargets(filter, now)
	if err != nil {
		return nil, err
	}

	key := searchKey(filter, now)
	if cached, ok := s.cache.Get(ctx, key); ok {
		return cached, nil
	}

	listings, err := s.listingRepo.Search(ctx, filter, now)
	if err != nil {
		return nil, fmt.Errorf("search listings: %w", err)
	}

	if len(targets) > 0 && len(listings) > 0 {
		ids := make([]string, len(listings))
		for i, l := range listings {
			ids[i] = l.ID
		}
		avail, err := s.availability.GetMany(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("get availability: %w", err)
		}

		kept := listings[:0]
		for _, l := range listings {
			if coversAll(targets, avail[l.ID]) {
				kept = append(kept, l)
			}
		}
		listings = kept
	}

	results := make([]domain.ListingResult, 0, len(listings))
	for _, l := range listings {
		res := domain.ListingResult{Listing: *l}
		if filter.Near != nil {
			if p, ok := geo.ParseLocation(l.Location); ok {
				d := geo.Distance(geo.Point{Lat: filter.Near.Lat, Lng: filter.Near.Lng}, p)
				if filter.RadiusKM != nil && d > *filter.RadiusKM {
					continue
				}
				res.DistanceKM = &d
			}
		}
		results = append(results, res)
	}

	if filter.Near != nil {
		sort.SliceStable(results, func(i, j int) bool {
			a, b := results[i].DistanceKM, results[j].DistanceKM
			if a == nil || b == nil {
				return a != nil && b == nil
			}
			return *a < *b
		})
	}

	s.cache.Set(ctx, key, results)

	return results, nil
}

// searchTargets validates the temporal part of the filter and returns the
// intervals every result must cover.
func searchTargets(f domain.ListingFilter, now time.Time) ([]interval.Interval, error) {
	switch f.Mode {
	case domain.TemporalNone:
		if len(f.Targets) > 0 || f.Recurring != nil {
			return nil, fmt.Errorf("%w: time filters need a mode", domain.ErrValidation)
		}
		return nil, nil
	case domain.TemporalSingle:
		if len(f.Targets) != 1 {
			return nil, fmt.Errorf("%w: single mode takes exactly one range", domain.ErrValidation)
		}
	case domain.TemporalMultiple:
		if len(f.Targets) == 0 {
			return nil, fmt.Errorf("%w: multiple mode takes at least one range", domain.ErrValidation)
		}
	case domain.TemporalRecurring:
		if f.Recurring == nil || len(f.Targets) > 0 {
			return nil, fmt.Errorf("%w: recurring mode takes a pattern only", domain.ErrValidation)
		}
		return recurrence.Expand(*f.Recurring, now)
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", domain.ErrValidation, f.Mode)
	}

	for i, t := range f.Targets {
		if !t.Valid() || !t.Aligned() {
			return nil, fmt.Errorf("%w: range %d must be a non-empty half-hour range", domain.ErrValidation, i+1)
		}
	}
	return f.Targets, nil
}

func searchKey(f domain.ListingFilter, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "t=%d|size=%s|ev=%t|lvl=%s|conn=%s|mode=%s",
		now.Truncate(interval.Step).Unix(), f.SpotSize, f.EVCharger, f.ChargerLevel, f.ConnectorType, f.Mode)
	if f.MaxPrice != nil {
		fmt.Fprintf(&b, "|max=%s", f.MaxPrice.String())
	}
	for _, t := range f.Targets {
		fmt.Fprintf(&b, "|%d-%d", t.Start.Unix(), t.End.Unix())
	}
	if r := f.Recurring; r != nil {
		fmt.Fprintf(&b, "|rec=%s,%s,%s,%d,%s,%s,%t", r.Pattern, r.StartDate.Format(interval.DateLayout),
			r.EndDate.Format(interval.DateLayout), r.Weeks, r.StartTime, r.EndTime, r.Overnight)
	}
	if f.Near != nil {
		fmt.Fprintf(&b, "|near=%f,%f", f.Near.Lat, f.Near.Lng)
	}
	if f.RadiusKM != nil {
		fmt.Fprintf(&b, "|r=%f", *f.RadiusKM)
	}
	return b.String()
}

func bookedSlots(bookings []*domain.Booking) []interval.Interval {
	var slots []interval.Interval
	for _, b := range bookings {
		slots = append(slots, b.Slots...)
	}
	return slots
}
