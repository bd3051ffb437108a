package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/maazimam/parkeasy-sub000/internal/interval"
	"github.com/wb-go/wbf/dbpg"
)

const bookingColumns = `id, listing_id, renter_id, email, status, total_price, created_at, updated_at`

type BookingRepository struct {
	executor
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{executor: newExecutor(db)}
}

// Create persists the booking and its slots atomically.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.inTx(ctx, func(ctx context.Context) error {
		query := `INSERT INTO bookings (id, listing_id, renter_id, email, status, total_price, created_at, updated_at)
				  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
		_, err := r.exec(
			ctx, query, b.ID, b.ListingID, b.RenterID, b.Email,
			b.Status, b.TotalPrice, b.CreatedAt, b.UpdatedAt,
		)
		if err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("insert booking: %w", err)
		}

		if err = insertSlotRows(ctx, r.executor, "booking_slots", "booking_id", b.ID, b.Slots); err != nil {
			return fmt.Errorf("insert booking slots: %w", err)
		}

		return nil
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.queryRow(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = row.Scan(
		&b.ID, &b.ListingID, &b.RenterID, &b.Email,
		&b.Status, &b.TotalPrice, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	if err = r.attachSlots(ctx, []*domain.Booking{&b}); err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingRepository) ListByRenter(ctx context.Context, renterID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE renter_id = $1
			  ORDER BY created_at DESC`

	return r.list(ctx, query, renterID)
}

// ListByListing returns the listing's bookings, optionally restricted to statuses.
func (r *BookingRepository) ListByListing(ctx context.Context, listingID string, statuses ...domain.BookingStatus) ([]*domain.Booking, error) {
	if len(statuses) == 0 {
		query := `SELECT ` + bookingColumns + `
				  FROM bookings
				  WHERE listing_id = $1
				  ORDER BY created_at DESC`
		return r.list(ctx, query, listingID)
	}

	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}

	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE listing_id = $1 AND status = ANY($2)
			  ORDER BY created_at DESC`

	return r.list(ctx, query, listingID, pq.Array(names))
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, at time.Time) error {
	res, err := r.exec(ctx, `UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`, id, status, at)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(
			&b.ID, &b.ListingID, &b.RenterID, &b.Email,
			&b.Status, &b.TotalPrice, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = r.attachSlots(ctx, res); err != nil {
		return nil, err
	}

	return res, nil
}

// attachSlots loads the slots of all bookings with one query.
func (r *BookingRepository) attachSlots(ctx context.Context, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Booking, len(bookings))
	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		byID[b.ID] = b
		ids = append(ids, b.ID)
	}

	query := `SELECT booking_id, starts_at, ends_at FROM booking_slots
			  WHERE booking_id = ANY($1)
			  ORDER BY booking_id, starts_at`

	rows, err := r.query(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("list booking slots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var s interval.Interval
		if err = rows.Scan(&id, &s.Start, &s.End); err != nil {
			return fmt.Errorf("scan booking slot: %w", err)
		}
		if b, ok := byID[id]; ok {
			b.Slots = append(b.Slots, s)
		}
	}

	return rows.Err()
}
