package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/maazimam/parkeasy-sub000/internal/interval"
	"github.com/wb-go/wbf/dbpg"
)

const listingColumns = `id, owner_id, title, location, description, rent_per_hour, spot_size,
		has_ev_charger, COALESCE(charger_level, ''), COALESCE(connector_type, ''), created_at, updated_at`

type ListingRepository struct {
	executor
}

func NewListingRepo(db *dbpg.DB) *ListingRepository {
	return &ListingRepository{executor: newExecutor(db)}
}

// Create stores the listing together with its initial availability.
func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing, availability []interval.Interval) error {
	return r.inTx(ctx, func(ctx context.Context) error {
		query := `INSERT INTO listings (id, owner_id, title, location, description, rent_per_hour, spot_size,
		              has_ev_charger, charger_level, connector_type, created_at, updated_at)
				  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), NULLIF($10, ''), $11, $12)`
		_, err := r.exec(
			ctx, query, l.ID, l.OwnerID, l.Title, l.Location, l.Description, l.RentPerHour,
			l.SpotSize, l.HasEVCharger, l.ChargerLevel, l.ConnectorType, l.CreatedAt, l.UpdatedAt,
		)
		if err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("insert listing: %w", err)
		}

		return insertSlots(ctx, r.executor, l.ID, interval.Merge(availability))
	})
}

func (r *ListingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`

	row, err := r.queryRow(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	l, err := scanListing(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("scan listing: %w", err)
	}

	return l, nil
}

func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("listing rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrListingNotFound
	}

	return nil
}

// Search applies the price and feature predicates of f and drops listings
// with no availability ending after now. Temporal and distance predicates are
// evaluated by the caller.
func (r *ListingRepository) Search(ctx context.Context, f domain.ListingFilter, now time.Time) ([]*domain.Listing, error) {
	where := []string{`EXISTS (SELECT 1 FROM listing_slots s WHERE s.listing_id = l.id AND s.ends_at > $1)`}
	args := []any{now}

	add := func(cond string, arg any) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if f.MaxPrice != nil {
		add("l.rent_per_hour <= $%d", *f.MaxPrice)
	}
	if f.SpotSize != "" {
		add("l.spot_size = $%d", f.SpotSize)
	}
	if f.EVCharger {
		where = append(where, "l.has_ev_charger")
		if f.ChargerLevel != "" {
			add("l.charger_level = $%d", f.ChargerLevel)
		}
		if f.ConnectorType != "" {
			add("l.connector_type = $%d", f.ConnectorType)
		}
	}

	query := `SELECT ` + listingColumns + ` FROM listings l WHERE ` + strings.Join(where, " AND ") + ` ORDER BY l.created_at DESC`

	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search listings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		res = append(res, l)
	}

	return res, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (*domain.Listing, error) {
	var l domain.Listing
	if err := row.Scan(
		&l.ID, &l.OwnerID, &l.Title, &l.Location, &l.Description, &l.RentPerHour, &l.SpotSize,
		&l.HasEVCharger, &l.ChargerLevel, &l.ConnectorType, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &l, nil
}
