package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

type ReviewRepository struct {
	executor
}

func NewReviewRepo(db *dbpg.DB) *ReviewRepository {
	return &ReviewRepository{executor: newExecutor(db)}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	query := `INSERT INTO reviews (id, booking_id, listing_id, renter_id, rating, comment, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.exec(ctx, query, rv.ID, rv.BookingID, rv.ListingID, rv.RenterID, rv.Rating, rv.Comment, rv.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: booking already reviewed", domain.ErrNotReviewable)
		}
		return fmt.Errorf("insert review: %w", err)
	}

	return nil
}

func (r *ReviewRepository) ExistsForBooking(ctx context.Context, bookingID string) (bool, error) {
	row, err := r.queryRow(ctx, `SELECT EXISTS (SELECT 1 FROM reviews WHERE booking_id = $1)`, bookingID)
	if err != nil {
		return false, fmt.Errorf("check review: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan review exists: %w", err)
	}

	return exists, nil
}

func (r *ReviewRepository) ListByListing(ctx context.Context, listingID string) ([]*domain.Review, error) {
	query := `SELECT id, booking_id, listing_id, renter_id, rating, comment, created_at
			  FROM reviews
			  WHERE listing_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.query(ctx, query, listingID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var res []*domain.Review
	for rows.Next() {
		var rv domain.Review
		if err = rows.Scan(&rv.ID, &rv.BookingID, &rv.ListingID, &rv.RenterID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		res = append(res, &rv)
	}

	return res, rows.Err()
}

// Summary returns the average rating and review count of a listing.
func (r *ReviewRepository) Summary(ctx context.Context, listingID string) (domain.RatingSummary, error) {
	row, err := r.queryRow(ctx, `SELECT AVG(rating)::float8, COUNT(*) FROM reviews WHERE listing_id = $1`, listingID)
	if err != nil {
		return domain.RatingSummary{}, fmt.Errorf("rating summary: %w", err)
	}

	var avg sql.NullFloat64
	var s domain.RatingSummary
	if err = row.Scan(&avg, &s.Count); err != nil {
		return domain.RatingSummary{}, fmt.Errorf("scan rating summary: %w", err)
	}
	if avg.Valid {
		s.Average = &avg.Float64
	}

	return s, nil
}
