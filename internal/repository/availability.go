package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/maazimam/parkeasy-sub000/internal/interval"
	"github.com/wb-go/wbf/dbpg"
)

// AvailabilityRepository stores the availability intervals of listings.
// Every write persists a merged set.
type AvailabilityRepository struct {
	executor
}

func NewAvailabilityRepo(db *dbpg.DB) *AvailabilityRepository {
	return &AvailabilityRepository{executor: newExecutor(db)}
}

func (r *AvailabilityRepository) Get(ctx context.Context, listingID string) ([]interval.Interval, error) {
	query := `SELECT starts_at, ends_at FROM listing_slots
			  WHERE listing_id = $1
			  ORDER BY starts_at`

	rows, err := r.query(ctx, query, listingID)
	if err != nil {
		return nil, fmt.Errorf("get availability: %w", err)
	}
	defer rows.Close()

	var res []interval.Interval
	for rows.Next() {
		var iv interval.Interval
		if err = rows.Scan(&iv.Start, &iv.End); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, iv)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return interval.Merge(res), nil
}

func (r *AvailabilityRepository) GetMany(ctx context.Context, listingIDs []string) (map[string][]interval.Interval, error) {
	res := make(map[string][]interval.Interval, len(listingIDs))
	if len(listingIDs) == 0 {
		return res, nil
	}

	query := `SELECT listing_id, starts_at, ends_at FROM listing_slots
			  WHERE listing_id = ANY($1)
			  ORDER BY listing_id, starts_at`

	rows, err := r.query(ctx, query, pq.Array(listingIDs))
	if err != nil {
		return nil, fmt.Errorf("get availability batch: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var iv interval.Interval
		if err = rows.Scan(&id, &iv.Start, &iv.End); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res[id] = append(res[id], iv)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for id, set := range res {
		res[id] = interval.Merge(set)
	}

	return res, nil
}

// Replace swaps the listing's availability for the merged input.
func (r *AvailabilityRepository) Replace(ctx context.Context, listingID string, slots []interval.Interval) error {
	for _, s := range slots {
		if !s.Valid() {
			return fmt.Errorf("%w: slot %s has no duration", domain.ErrInvariantViolation, s)
		}
		if !s.Aligned() {
			return fmt.Errorf("%w: slot %s is off the half-hour grid", domain.ErrInvariantViolation, s)
		}
	}

	return r.inTx(ctx, func(ctx context.Context) error {
		if _, err := r.exec(ctx, `DELETE FROM listing_slots WHERE listing_id = $1`, listingID); err != nil {
			return fmt.Errorf("clear availability: %w", err)
		}
		return insertSlots(ctx, r.executor, listingID, interval.Merge(slots))
	})
}

func (r *AvailabilityRepository) Bounds(ctx context.Context, listingID string) (time.Time, time.Time, bool, error) {
	query := `SELECT MIN(starts_at), MAX(ends_at) FROM listing_slots WHERE listing_id = $1`

	row, err := r.queryRow(ctx, query, listingID)
	if err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("get bounds: %w", err)
	}

	var earliest, latest sql.NullTime
	if err = row.Scan(&earliest, &latest); err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("scan bounds: %w", err)
	}
	if !earliest.Valid || !latest.Valid {
		return time.Time{}, time.Time{}, false, nil
	}

	return earliest.Time, latest.Time, true, nil
}

// PruneExpired deletes availability intervals that ended at or before now.
// It runs without the per-listing lock: only rows with ends_at <= now may be
// touched, so a racing Replace can at most rewrite an already expired piece.
func (r *AvailabilityRepository) PruneExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.exec(ctx, `DELETE FROM listing_slots WHERE ends_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("prune availability: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("pruned rows affected: %w", err)
	}

	return n, nil
}

// maxSlotsPerInsert keeps each statement well under the 65535 bind parameter limit.
const maxSlotsPerInsert = 1000

func insertSlots(ctx context.Context, e executor, listingID string, slots []interval.Interval) error {
	if err := insertSlotRows(ctx, e, "listing_slots", "listing_id", listingID, slots); err != nil {
		return fmt.Errorf("insert slots: %w", err)
	}
	return nil
}

// insertSlotRows writes (owner, start, end) rows in batches of maxSlotsPerInsert.
func insertSlotRows(ctx context.Context, e executor, table, ownerColumn, ownerID string, slots []interval.Interval) error {
	for len(slots) > 0 {
		n := min(len(slots), maxSlotsPerInsert)
		values, args := slotValues(ownerID, slots[:n])
		query := `INSERT INTO ` + table + ` (` + ownerColumn + `, starts_at, ends_at) VALUES ` + values
		if _, err := e.exec(ctx, query, args...); err != nil {
			return err
		}
		slots = slots[n:]
	}
	return nil
}

// slotValues builds a multi-row VALUES list of (owner, start, end) tuples.
func slotValues(ownerID string, slots []interval.Interval) (string, []any) {
	rows := make([]string, 0, len(slots))
	args := make([]any, 0, 1+2*len(slots))
	args = append(args, ownerID)
	for _, s := range slots {
		args = append(args, s.Start, s.End)
		rows = append(rows, fmt.Sprintf("($1, $%d, $%d)", len(args)-1, len(args)))
	}
	return strings.Join(rows, ", "), args
}
