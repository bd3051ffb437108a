package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/maazimam/parkeasy-sub000/internal/interval"
)

// uncovered returns the targets that availability does not cover, in input
// order. A target crossing midnight is covered only when every one of its
// day pieces is.
func uncovered(targets, availability []interval.Interval) []interval.Interval {
	merged := interval.Merge(availability)

	var missing []interval.Interval
	for _, t := range targets {
		for _, piece := range interval.SplitAtMidnight(t) {
			if !interval.Covers(piece, merged) {
				missing = append(missing, t)
				break
			}
		}
	}
	return missing
}

func coversAll(targets, availability []interval.Interval) bool {
	return len(uncovered(targets, availability)) == 0
}

// BlockOut removes the booked slots from availability.
func BlockOut(availability, slots []interval.Interval) []interval.Interval {
	return interval.SubtractAll(availability, slots)
}

// Restore returns booked slots to availability.
func Restore(availability, slots []interval.Interval) []interval.Interval {
	return interval.Union(availability, slots)
}

// startDates returns the distinct start dates of the intervals, in order of appearance.
func startDates(intervals []interval.Interval) []time.Time {
	seen := make(map[time.Time]bool, len(intervals))
	dates := make([]time.Time, 0, len(intervals))
	for _, iv := range intervals {
		d := interval.Day(iv.Start)
		if !seen[d] {
			seen[d] = true
			dates = append(dates, d)
		}
	}
	return dates
}

// validateSlots checks the structure of requested booking slots.
func validateSlots(slots []interval.Interval, now time.Time) error {
	if len(slots) == 0 {
		return fmt.Errorf("%w: at least one slot is required", domain.ErrInvalidSlots)
	}

	for i, s := range slots {
		if !s.Valid() {
			return fmt.Errorf("%w: slot %d must end after it starts", domain.ErrInvalidSlots, i+1)
		}
		if !s.Aligned() {
			return fmt.Errorf("%w: slot %d is not on the half-hour grid", domain.ErrInvalidSlots, i+1)
		}
		if s.Start.Before(now) {
			return fmt.Errorf("%w: slot %d starts in the past", domain.ErrInvalidSlots, i+1)
		}
	}

	if !interval.Disjoint(slots) {
		return fmt.Errorf("%w: slots overlap", domain.ErrInvalidSlots)
	}

	return nil
}

func sortedCopy(slots []interval.Interval) []interval.Interval {
	out := make([]interval.Interval, len(slots))
	copy(out, slots)
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

// dropExpired keeps the intervals that end after now.
func dropExpired(intervals []interval.Interval, now time.Time) []interval.Interval {
	out := make([]interval.Interval, 0, len(intervals))
	for _, iv := range intervals {
		if !iv.Expired(now) {
			out = append(out, iv)
		}
	}
	return out
}
