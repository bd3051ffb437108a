package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/maazimam/parkeasy-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	minRating = 1
	maxRating = 5
)

type ReviewService struct {
	reviewRepo  ports.ReviewRepo
	bookingRepo ports.BookingRepo
	logger      logger.Logger
}

func NewReviewService(reviewRepo ports.ReviewRepo, bookingRepo ports.BookingRepo, logger logger.Logger) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Create records the renter's review of a finished, approved booking.
// A booking can be reviewed once.
func (s *ReviewService) Create(ctx context.Context, input domain.CreateReviewInput, now time.Time) (*domain.Review, error) {
	if input.Rating < minRating || input.Rating > maxRating {
		return nil, fmt.Errorf("%w: rating must be between %d and %d", domain.ErrValidation, minRating, maxRating)
	}

	b, err := s.bookingRepo.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if b.RenterID != input.ActorID {
		return nil, fmt.Errorf("%w: only the renter can review a booking", domain.ErrNotAllowed)
	}
	if b.Status != domain.BookingStatusApproved {
		return nil, fmt.Errorf("%w: booking is %s", domain.ErrNotReviewable, b.Status)
	}
	if !b.HasPassed(now) {
		return nil, fmt.Errorf("%w: booking has not ended yet", domain.ErrNotReviewable)
	}

	exists, err := s.reviewRepo.ExistsForBooking(ctx, b.ID)
	if err != nil {
		return nil, fmt.Errorf("check review: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: booking already reviewed", domain.ErrNotReviewable)
	}

	review := &domain.Review{
		ID:        uuid.New().String(),
		BookingID: b.ID,
		ListingID: b.ListingID,
		RenterID:  b.RenterID,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
		CreatedAt: now,
	}
	if err = s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.logger.Info("review created",
		logger.String("review_id", review.ID),
		logger.String("booking_id", b.ID),
		logger.Int("rating", review.Rating),
	)

	return review, nil
}

func (s *ReviewService) ListByListing(ctx context.Context, listingID string) ([]*domain.Review, error) {
	return s.reviewRepo.ListByListing(ctx, listingID)
}
