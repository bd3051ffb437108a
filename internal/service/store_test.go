package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/maazimam/parkeasy-sub000/internal/interval"
)

type lockedKey struct{}

// memStore is an in-memory stand-in for the Postgres repositories. A single
// mutex plays the role of the listing row lock; a failed critical section
// restores the state it started from.
type memStore struct {
	mu       sync.Mutex
	listings map[string]*domain.Listing
	avail    map[string][]interval.Interval
	bookings map[string]*domain.Booking
	users    map[string]*domain.User
}

func newMemStore() *memStore {
	return &memStore{
		listings: map[string]*domain.Listing{},
		avail:    map[string][]interval.Interval{},
		bookings: map[string]*domain.Booking{},
		users:    map[string]*domain.User{},
	}
}

func (s *memStore) lock(ctx context.Context) func() {
	if ctx.Value(lockedKey{}) != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *memStore) WithinListingLock(ctx context.Context, listingID string, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.listings[listingID]; !ok {
		return domain.ErrListingNotFound
	}

	availSnap := make(map[string][]interval.Interval, len(s.avail))
	for k, v := range s.avail {
		availSnap[k] = append([]interval.Interval(nil), v...)
	}
	bookingSnap := make(map[string]*domain.Booking, len(s.bookings))
	for k, v := range s.bookings {
		bookingSnap[k] = cloneBooking(v)
	}

	if err := fn(context.WithValue(ctx, lockedKey{}, true)); err != nil {
		s.avail, s.bookings = availSnap, bookingSnap
		return err
	}
	return nil
}

// --- listings ---

func (s *memStore) addListing(l *domain.Listing, avail ...interval.Interval) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings[l.ID] = l
	s.avail[l.ID] = interval.Merge(avail)
}

func (s *memStore) Create(ctx context.Context, l *domain.Listing, availability []interval.Interval) error {
	defer s.lock(ctx)()
	s.listings[l.ID] = l
	s.avail[l.ID] = interval.Merge(availability)
	return nil
}

func (s *memStore) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	defer s.lock(ctx)()
	l, ok := s.listings[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	cp := *l
	return &cp, nil
}

func (s *memStore) Delete(ctx context.Context, id string) error {
	defer s.lock(ctx)()
	if _, ok := s.listings[id]; !ok {
		return domain.ErrListingNotFound
	}
	delete(s.listings, id)
	delete(s.avail, id)
	for bid, b := range s.bookings {
		if b.ListingID == id {
			delete(s.bookings, bid)
		}
	}
	return nil
}

func (s *memStore) Search(ctx context.Context, f domain.ListingFilter, now time.Time) ([]*domain.Listing, error) {
	defer s.lock(ctx)()
	var res []*domain.Listing
	for id, l := range s.listings {
		if len(dropExpired(s.avail[id], now)) == 0 {
			continue
		}
		if f.MaxPrice != nil && l.RentPerHour.GreaterThan(*f.MaxPrice) {
			continue
		}
		if f.SpotSize != "" && l.SpotSize != f.SpotSize {
			continue
		}
		if f.EVCharger && !l.HasEVCharger {
			continue
		}
		cp := *l
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

// --- availability ---

type memAvailability struct{ *memStore }

func (a memAvailability) Get(ctx context.Context, listingID string) ([]interval.Interval, error) {
	defer a.lock(ctx)()
	return append([]interval.Interval(nil), a.avail[listingID]...), nil
}

func (a memAvailability) GetMany(ctx context.Context, ids []string) (map[string][]interval.Interval, error) {
	defer a.lock(ctx)()
	res := make(map[string][]interval.Interval, len(ids))
	for _, id := range ids {
		res[id] = append([]interval.Interval(nil), a.avail[id]...)
	}
	return res, nil
}

func (a memAvailability) Replace(ctx context.Context, listingID string, slots []interval.Interval) error {
	for _, sl := range slots {
		if !sl.Valid() {
			return fmt.Errorf("%w: %s", domain.ErrInvariantViolation, sl)
		}
	}
	defer a.lock(ctx)()
	a.avail[listingID] = interval.Merge(slots)
	return nil
}

func (a memAvailability) Bounds(ctx context.Context, listingID string) (time.Time, time.Time, bool, error) {
	defer a.lock(ctx)()
	set := a.avail[listingID]
	if len(set) == 0 {
		return time.Time{}, time.Time{}, false, nil
	}
	return set[0].Start, set[len(set)-1].End, true, nil
}

func (a memAvailability) PruneExpired(ctx context.Context, now time.Time) (int64, error) {
	defer a.lock(ctx)()
	var n int64
	for id, set := range a.avail {
		kept := dropExpired(set, now)
		n += int64(len(set) - len(kept))
		a.avail[id] = kept
	}
	return n, nil
}

// --- bookings ---

type memBookings struct{ *memStore }

func cloneBooking(b *domain.Booking) *domain.Booking {
	cp := *b
	cp.Slots = append([]interval.Interval(nil), b.Slots...)
	return &cp
}

func (m memBookings) Create(ctx context.Context, b *domain.Booking) error {
	defer m.lock(ctx)()
	m.bookings[b.ID] = cloneBooking(b)
	return nil
}

func (m memBookings) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	defer m.lock(ctx)()
	b, ok := m.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return cloneBooking(b), nil
}

func (m memBookings) ListByRenter(ctx context.Context, renterID string) ([]*domain.Booking, error) {
	defer m.lock(ctx)()
	var res []*domain.Booking
	for _, b := range m.bookings {
		if b.RenterID == renterID {
			res = append(res, cloneBooking(b))
		}
	}
	return res, nil
}

func (m memBookings) ListByListing(ctx context.Context, listingID string, statuses ...domain.BookingStatus) ([]*domain.Booking, error) {
	defer m.lock(ctx)()
	var res []*domain.Booking
	for _, b := range m.bookings {
		if b.ListingID != listingID {
			continue
		}
		match := len(statuses) == 0
		for _, st := range statuses {
			match = match || b.Status == st
		}
		if match {
			res = append(res, cloneBooking(b))
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (m memBookings) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, at time.Time) error {
	defer m.lock(ctx)()
	b, ok := m.bookings[id]
	if !ok {
		return domain.ErrBookingNotFound
	}
	b.Status, b.UpdatedAt = status, at
	return nil
}

func (m memBookings) Delete(ctx context.Context, id string) error {
	defer m.lock(ctx)()
	if _, ok := m.bookings[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(m.bookings, id)
	return nil
}

// --- users ---

type memUsers struct{ *memStore }

func (m memUsers) Create(ctx context.Context, u *domain.User) error {
	defer m.lock(ctx)()
	m.users[u.ID] = u
	return nil
}

func (m memUsers) GetByID(ctx context.Context, id string) (*domain.User, error) {
	defer m.lock(ctx)()
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m memUsers) List(ctx context.Context) ([]*domain.User, error) {
	defer m.lock(ctx)()
	var res []*domain.User
	for _, u := range m.users {
		cp := *u
		res = append(res, &cp)
	}
	return res, nil
}

// --- cache and notifier ---

type nopCache struct{}

func (nopCache) Get(context.Context, string) ([]domain.ListingResult, bool) { return nil, false }
func (nopCache) Set(context.Context, string, []domain.ListingResult)        {}
func (nopCache) Invalidate(context.Context)                                 {}

type recordingNotifier struct {
	mu     sync.Mutex
	events []domain.BookingEvent
}

func (n *recordingNotifier) record(e domain.BookingEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
}

func (n *recordingNotifier) NotifyBookingCreated(_ context.Context, e domain.BookingEvent) {
	n.record(e)
}
func (n *recordingNotifier) NotifyBookingApproved(_ context.Context, e domain.BookingEvent) {
	n.record(e)
}
func (n *recordingNotifier) NotifyBookingDeclined(_ context.Context, e domain.BookingEvent) {
	n.record(e)
}
func (n *recordingNotifier) NotifyBookingCancelled(_ context.Context, e domain.BookingEvent) {
	n.record(e)
}
