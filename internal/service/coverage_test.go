package service

import (
	"testing"
	"time"

	"github.com/maazimam/parkeasy-sub000/internal/interval"
	"github.com/stretchr/testify/assert"
)

func TestUncovered_OvernightNeedsBothDays(t *testing.T) {
	overnight := interval.Interval{Start: june(2, 20, 0), End: june(3, 8, 0)}

	split := []interval.Interval{
		{Start: june(2, 18, 0), End: june(3, 0, 0)},
		{Start: june(3, 0, 0), End: june(3, 9, 0)},
	}
	assert.Empty(t, uncovered([]interval.Interval{overnight}, split), "adjacent pieces merge across midnight")

	eveningOnly := []interval.Interval{{Start: june(2, 18, 0), End: june(3, 0, 0)}}
	assert.Equal(t, []interval.Interval{overnight}, uncovered([]interval.Interval{overnight}, eveningOnly))
}

func TestStartDates_Distinct(t *testing.T) {
	got := startDates([]interval.Interval{span(3, 10, 11), span(2, 10, 11), span(3, 14, 15)})

	assert.Equal(t, []time.Time{june(3, 0, 0), june(2, 0, 0)}, got)
}

func TestBlockOutRestoreRoundTrip(t *testing.T) {
	avail := []interval.Interval{span(2, 10, 20)}
	slots := []interval.Interval{span(2, 11, 12), span(2, 15, 17)}

	blocked := BlockOut(avail, slots)
	assert.Equal(t, []interval.Interval{span(2, 10, 11), span(2, 12, 15), span(2, 17, 20)}, blocked)
	assert.Equal(t, avail, Restore(blocked, slots))
}

func TestValidateSlots_AllowsAdjacent(t *testing.T) {
	assert.NoError(t, validateSlots([]interval.Interval{span(2, 10, 12), span(2, 12, 14)}, engineNow))
}

func TestDropExpired(t *testing.T) {
	got := dropExpired([]interval.Interval{
		{Start: june(1, 6, 0), End: june(1, 8, 0)},
		{Start: june(1, 7, 0), End: june(1, 9, 0)},
	}, engineNow)

	assert.Equal(t, []interval.Interval{{Start: june(1, 7, 0), End: june(1, 9, 0)}}, got)
}
