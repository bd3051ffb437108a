package service

import (
	"context"
	"errors"
	"testing"

	"github.com/maazimam/parkeasy-sub000/internal/interval"
	"github.com/maazimam/parkeasy-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityService_AvailableFor(t *testing.T) {
	repo := mocks.NewMockAvailabilityRepo(t)
	svc := NewAvailabilityService(repo, mocks.NewMockSearchCache(t), newTestLogger(t))

	repo.EXPECT().Get(mock.Anything, "l1").Return([]interval.Interval{span(2, 10, 14), span(2, 16, 18)}, nil)

	ok, err := svc.AvailableFor(context.Background(), "l1", []interval.Interval{span(2, 10, 12), span(2, 16, 17)})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.AvailableFor(context.Background(), "l1", []interval.Interval{span(2, 13, 17)})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAvailabilityService_AvailableTimes(t *testing.T) {
	repo := mocks.NewMockAvailabilityRepo(t)
	svc := NewAvailabilityService(repo, mocks.NewMockSearchCache(t), newTestLogger(t))

	repo.EXPECT().Get(mock.Anything, "l1").Return([]interval.Interval{
		{Start: june(2, 9, 0), End: june(2, 10, 30)},
		{Start: june(2, 22, 0), End: june(3, 2, 0)},
	}, nil)

	from := interval.Clock{Hour: 9, Minute: 30}
	times, err := svc.AvailableTimes(context.Background(), "l1", june(2, 0, 0), &from, nil)

	require.NoError(t, err)
	assert.Equal(t, []interval.Clock{
		{Hour: 9, Minute: 30}, {Hour: 10}, {Hour: 10, Minute: 30},
		{Hour: 22}, {Hour: 22, Minute: 30}, {Hour: 23}, {Hour: 23, Minute: 30},
	}, times)
}

func TestAvailabilityService_PruneExpired(t *testing.T) {
	repo := mocks.NewMockAvailabilityRepo(t)
	cache := mocks.NewMockSearchCache(t)
	svc := NewAvailabilityService(repo, cache, newTestLogger(t))

	repo.EXPECT().PruneExpired(mock.Anything, testNow).Return(int64(3), nil).Once()
	cache.EXPECT().Invalidate(mock.Anything).Return().Once()

	n, err := svc.PruneExpired(context.Background(), testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestAvailabilityService_PruneExpired_NothingToDo(t *testing.T) {
	repo := mocks.NewMockAvailabilityRepo(t)
	svc := NewAvailabilityService(repo, mocks.NewMockSearchCache(t), newTestLogger(t))

	repo.EXPECT().PruneExpired(mock.Anything, testNow).Return(int64(0), nil)

	n, err := svc.PruneExpired(context.Background(), testNow)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAvailabilityService_PruneExpired_Error(t *testing.T) {
	repo := mocks.NewMockAvailabilityRepo(t)
	svc := NewAvailabilityService(repo, mocks.NewMockSearchCache(t), newTestLogger(t))

	repo.EXPECT().PruneExpired(mock.Anything, testNow).Return(int64(0), errors.New("db down"))

	_, err := svc.PruneExpired(context.Background(), testNow)
	assert.Error(t, err)
}
