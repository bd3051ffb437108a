package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/maazimam/parkeasy-sub000/internal/interval"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

var day = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func at(h int) time.Time {
	return day.Add(time.Duration(h) * time.Hour)
}

func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &dbpg.DB{Master: db}, mock
}

func noRetry(e *executor) {
	e.strategy = retry.Strategy{Attempts: 1}
}

// --- TxManager ---

func TestTxManager_WithinListingLock_Commits(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTxManager(db)
	repo := NewAvailabilityRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM listings WHERE id = $1 FOR UPDATE`)).
		WithArgs("l1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("l1"))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM listing_slots WHERE ends_at <= $1`)).
		WithArgs(at(12)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	var pruned int64
	err := tm.WithinListingLock(context.Background(), "l1", func(ctx context.Context) error {
		var err error
		pruned, err = repo.PruneExpired(ctx, at(12))
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), pruned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_WithinListingLock_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTxManager(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM listings WHERE id = $1 FOR UPDATE`)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	called := false
	err := tm.WithinListingLock(context.Background(), "missing", func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, domain.ErrListingNotFound)
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_WithinListingLock_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTxManager(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM listings WHERE id = $1 FOR UPDATE`)).
		WithArgs("l1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("l1"))
	mock.ExpectRollback()

	err := tm.WithinListingLock(context.Background(), "l1", func(ctx context.Context) error {
		return domain.ErrConflict
	})

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// --- Availability ---

func TestAvailabilityRepository_Get_MergesRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAvailabilityRepo(db)
	noRetry(&repo.executor)

	mock.ExpectQuery(`SELECT starts_at, ends_at FROM listing_slots`).
		WithArgs("l1").
		WillReturnRows(sqlmock.NewRows([]string{"starts_at", "ends_at"}).
			AddRow(at(10), at(12)).
			AddRow(at(12), at(14)).
			AddRow(at(16), at(18)))

	got, err := repo.Get(context.Background(), "l1")

	require.NoError(t, err)
	assert.Equal(t, []interval.Interval{{Start: at(10), End: at(14)}, {Start: at(16), End: at(18)}}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailabilityRepository_GetMany(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAvailabilityRepo(db)
	noRetry(&repo.executor)

	mock.ExpectQuery(`SELECT listing_id, starts_at, ends_at FROM listing_slots`).
		WithArgs(pq.Array([]string{"l1", "l2"})).
		WillReturnRows(sqlmock.NewRows([]string{"listing_id", "starts_at", "ends_at"}).
			AddRow("l1", at(10), at(12)).
			AddRow("l2", at(8), at(9)).
			AddRow("l2", at(9), at(10)))

	got, err := repo.GetMany(context.Background(), []string{"l1", "l2"})

	require.NoError(t, err)
	assert.Equal(t, []interval.Interval{{Start: at(10), End: at(12)}}, got["l1"])
	assert.Equal(t, []interval.Interval{{Start: at(8), End: at(10)}}, got["l2"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailabilityRepository_GetMany_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAvailabilityRepo(db)

	got, err := repo.GetMany(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailabilityRepository_Replace_MergesBeforeInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAvailabilityRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM listing_slots WHERE listing_id = $1`)).
		WithArgs("l1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO listing_slots (listing_id, starts_at, ends_at) VALUES ($1, $2, $3), ($1, $4, $5)`)).
		WithArgs("l1", at(8), at(12), at(14), at(16)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.Replace(context.Background(), "l1", []interval.Interval{
		{Start: at(14), End: at(16)},
		{Start: at(10), End: at(12)},
		{Start: at(8), End: at(10)},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailabilityRepository_Replace_BatchesLargeSets(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAvailabilityRepo(db)

	slots := make([]interval.Interval, maxSlotsPerInsert+1)
	for i := range slots {
		start := at(2 * i)
		slots[i] = interval.Interval{Start: start, End: start.Add(time.Hour)}
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM listing_slots WHERE listing_id = $1`)).
		WithArgs("l1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO listing_slots .*\(\$1, \$2000, \$2001\)$`).
		WillReturnResult(sqlmock.NewResult(0, int64(maxSlotsPerInsert)))
	mock.ExpectExec(`INSERT INTO listing_slots \(listing_id, starts_at, ends_at\) VALUES \(\$1, \$2, \$3\)$`).
		WithArgs("l1", slots[maxSlotsPerInsert].Start, slots[maxSlotsPerInsert].End).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Replace(context.Background(), "l1", slots))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailabilityRepository_Replace_RejectsInvalid(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAvailabilityRepo(db)

	err := repo.Replace(context.Background(), "l1", []interval.Interval{{Start: at(12), End: at(12)}})
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)

	err = repo.Replace(context.Background(), "l1", []interval.Interval{{Start: at(12), End: at(13).Add(10 * time.Minute)}})
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailabilityRepository_Bounds(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAvailabilityRepo(db)
	noRetry(&repo.executor)

	mock.ExpectQuery(`SELECT MIN\(starts_at\), MAX\(ends_at\)`).
		WithArgs("l1").
		WillReturnRows(sqlmock.NewRows([]string{"min", "max"}).AddRow(at(8), at(20)))
	mock.ExpectQuery(`SELECT MIN\(starts_at\), MAX\(ends_at\)`).
		WithArgs("l2").
		WillReturnRows(sqlmock.NewRows([]string{"min", "max"}).AddRow(nil, nil))

	earliest, latest, ok, err := repo.Bounds(context.Background(), "l1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, at(8), earliest)
	assert.Equal(t, at(20), latest)

	_, _, ok, err = repo.Bounds(context.Background(), "l2")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// --- Listings ---

func TestListingRepository_Search_BuildsPredicates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepo(db)
	noRetry(&repo.executor)

	maxPrice := decimal.NewFromInt(20)
	filter := domain.ListingFilter{
		MaxPrice:      &maxPrice,
		SpotSize:      domain.SpotSizeStandard,
		EVCharger:     true,
		ConnectorType: domain.ConnectorTesla,
	}

	rows := sqlmock.NewRows([]string{
		"id", "owner_id", "title", "location", "description", "rent_per_hour", "spot_size",
		"has_ev_charger", "charger_level", "connector_type", "created_at", "updated_at",
	}).AddRow("l1", "o1", "Driveway", "Brooklyn [40.6,-73.9]", "", "12.50", "STANDARD", true, "L2", "TESLA", day, day)

	mock.ExpectQuery(`rent_per_hour <= \$2 AND l\.spot_size = \$3 AND l\.has_ev_charger AND l\.connector_type = \$4`).
		WithArgs(at(9), maxPrice, domain.SpotSizeStandard, domain.ConnectorTesla).
		WillReturnRows(rows)

	got, err := repo.Search(context.Background(), filter, at(9))

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "l1", got[0].ID)
	assert.True(t, decimal.RequireFromString("12.5").Equal(got[0].RentPerHour))
	assert.Equal(t, domain.ChargerLevel2, got[0].ChargerLevel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_Search_IgnoresChargerRefinementsWithoutEV(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepo(db)
	noRetry(&repo.executor)

	mock.ExpectQuery(`s\.ends_at > \$1\) ORDER BY`).
		WithArgs(at(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := repo.Search(context.Background(), domain.ListingFilter{ChargerLevel: domain.ChargerLevel3}, at(9))

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepo(db)
	noRetry(&repo.executor)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM listings WHERE id = $1`)).
		WithArgs("l1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "l1")

	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

// --- Bookings ---

func TestListingRepository_Create_UnknownOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepo(db)

	l := &domain.Listing{
		ID: "l1", OwnerID: "ghost", Title: "Driveway", Location: "1 Main St",
		RentPerHour: decimal.NewFromInt(10), SpotSize: domain.SpotSizeStandard,
		CreatedAt: day, UpdatedAt: day,
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO listings`).WillReturnError(&pq.Error{Code: "23503"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), l, []interval.Interval{{Start: at(10), End: at(12)}})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_GetByID_LoadsSlots(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)
	noRetry(&repo.executor)

	mock.ExpectQuery(`FROM bookings WHERE id = \$1`).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "listing_id", "renter_id", "email", "status", "total_price", "created_at", "updated_at",
		}).AddRow("b1", "l1", "r1", "r@example.com", "PENDING", "30.00", day, day))
	mock.ExpectQuery(`FROM booking_slots`).
		WithArgs(pq.Array([]string{"b1"})).
		WillReturnRows(sqlmock.NewRows([]string{"booking_id", "starts_at", "ends_at"}).
			AddRow("b1", at(10), at(12)).
			AddRow("b1", at(14), at(15)))

	got, err := repo.GetByID(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, got.Status)
	assert.Equal(t, []interval.Interval{{Start: at(10), End: at(12)}, {Start: at(14), End: at(15)}}, got.Slots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)
	noRetry(&repo.executor)

	mock.ExpectQuery(`FROM bookings WHERE id = \$1`).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepository_Create_WritesSlots(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	b := &domain.Booking{
		ID: "b1", ListingID: "l1", RenterID: "r1", Email: "r@example.com",
		Status: domain.BookingStatusPending, TotalPrice: decimal.NewFromInt(30),
		Slots:     []interval.Interval{{Start: at(10), End: at(12)}},
		CreatedAt: day, UpdatedAt: day,
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO bookings`).
		WithArgs("b1", "l1", "r1", "r@example.com", domain.BookingStatusPending, b.TotalPrice, day, day).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO booking_slots (booking_id, starts_at, ends_at) VALUES ($1, $2, $3)`)).
		WithArgs("b1", at(10), at(12)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), b))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_UpdateStatus_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)
	noRetry(&repo.executor)

	mock.ExpectExec(`UPDATE bookings SET status`).
		WithArgs("b1", domain.BookingStatusApproved, day).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "b1", domain.BookingStatusApproved, day)

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

// --- Reviews and users ---

func TestReviewRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepo(db)
	noRetry(&repo.executor)

	mock.ExpectExec(`INSERT INTO reviews`).WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), &domain.Review{ID: "rv1", BookingID: "b1", Rating: 5})

	assert.ErrorIs(t, err, domain.ErrNotReviewable)
}

func TestReviewRepository_Summary(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepo(db)
	noRetry(&repo.executor)

	mock.ExpectQuery(`SELECT AVG\(rating\)`).
		WithArgs("l1").
		WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(4.5, 2))
	mock.ExpectQuery(`SELECT AVG\(rating\)`).
		WithArgs("l2").
		WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(nil, 0))

	s, err := repo.Summary(context.Background(), "l1")
	require.NoError(t, err)
	require.NotNil(t, s.Average)
	assert.Equal(t, 4.5, *s.Average)
	assert.Equal(t, 2, s.Count)

	s, err = repo.Summary(context.Background(), "l2")
	require.NoError(t, err)
	assert.Nil(t, s.Average)
	assert.Equal(t, 0, s.Count)
}

func TestUserRepository_Create_UsernameTaken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)
	noRetry(&repo.executor)

	mock.ExpectExec(`INSERT INTO users`).WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), &domain.User{ID: "u1", Username: "alice"})

	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserRepository_GetByID_DriverError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)
	noRetry(&repo.executor)

	mock.ExpectQuery(`FROM users`).WithArgs("u1").WillReturnError(errors.New("connection reset"))

	_, err := repo.GetByID(context.Background(), "u1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUserNotFound)
}
