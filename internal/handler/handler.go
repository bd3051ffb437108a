package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/maazimam/parkeasy-sub000/internal/handler/dto"
	"github.com/maazimam/parkeasy-sub000/internal/interval"
	"github.com/wb-go/wbf/ginext"
)

type ListingSvc interface {
	Create(ctx context.Context, input domain.CreateListingInput, now time.Time) (*domain.Listing, error)
	Get(ctx context.Context, id string, now time.Time) (*domain.ListingDetails, error)
	Delete(ctx context.Context, id, actorID string) error
	Schedule(ctx context.Context, id, actorID string) ([]interval.Interval, error)
	EditAvailability(ctx context.Context, id, actorID string, slots []interval.Interval, now time.Time) ([]interval.Interval, error)
	Search(ctx context.Context, filter domain.ListingFilter, now time.Time) ([]domain.ListingResult, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput, now time.Time) (*domain.Booking, error)
	Approve(ctx context.Context, bookingID, actorID string, now time.Time) (*domain.Booking, error)
	Decline(ctx context.Context, bookingID, actorID string, now time.Time) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, actorID string, now time.Time) error
	Get(ctx context.Context, id string) (*domain.Booking, error)
	ListByRenter(ctx context.Context, renterID string) ([]*domain.Booking, error)
	ListByListing(ctx context.Context, listingID, actorID string) ([]*domain.Booking, error)
}

type AvailabilitySvc interface {
	Uncovered(ctx context.Context, listingID string, targets []interval.Interval) ([]interval.Interval, error)
	AvailableTimes(ctx context.Context, listingID string, date time.Time, from, to *interval.Clock) ([]interval.Clock, error)
	Bounds(ctx context.Context, listingID string) (time.Time, time.Time, bool, error)
}

type ReviewSvc interface {
	Create(ctx context.Context, input domain.CreateReviewInput, now time.Time) (*domain.Review, error)
	ListByListing(ctx context.Context, listingID string) ([]*domain.Review, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	listingService      ListingSvc
	bookingService      BookingSvc
	availabilityService AvailabilitySvc
	reviewService       ReviewSvc
	userService         UserSvc

	now func() time.Time
}

func NewHandler(
	listingService ListingSvc,
	bookingService BookingSvc,
	availabilityService AvailabilitySvc,
	reviewService ReviewSvc,
	userService UserSvc,
) *Handler {
	return &Handler{
		listingService:      listingService,
		bookingService:      bookingService,
		availabilityService: availabilityService,
		reviewService:       reviewService,
		userService:         userService,
		now:                 func() time.Time { return interval.Wall(time.Now()) },
	}
}

// pathID reads a uuid path parameter, answering 400 when it is malformed.
func pathID(c *ginext.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return "", false
	}
	return id, true
}

func (h *Handler) badRequest(c *ginext.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	_ = c.Error(err)

	var notAvailable *domain.NotAvailableError
	switch {
	case errors.As(err, &notAvailable):
		dates := make([]string, 0, len(notAvailable.Dates))
		for _, d := range notAvailable.Dates {
			dates = append(dates, d.Format(interval.DateLayout))
		}
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: domain.ErrNotAvailable.Error(), Dates: dates})

	case errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotAvailable),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrApprovedConflict),
		errors.Is(err, domain.ErrPendingExists),
		errors.Is(err, domain.ErrBookingNotPending),
		errors.Is(err, domain.ErrNotReviewable),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidSlots),
		errors.Is(err, domain.ErrPattern),
		errors.Is(err, domain.ErrInvariantViolation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSelfBooking),
		errors.Is(err, domain.ErrNotAllowed):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
