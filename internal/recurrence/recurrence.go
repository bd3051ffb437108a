// Package recurrence expands daily and weekly patterns into explicit intervals.
package recurrence

import (
	"fmt"
	"time"

	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/maazimam/parkeasy-sub000/internal/interval"
)

const (
	MaxWeeks = 52
	// MaxDays bounds the span of a daily pattern, start and end date inclusive.
	MaxDays = 366
)

// Validate checks the descriptor against the reference date today.
func Validate(d domain.Recurrence, today time.Time) error {
	startDate := interval.Day(d.StartDate)
	if startDate.Before(interval.Day(today)) {
		return fmt.Errorf("%w: start date %s is in the past", domain.ErrPattern, startDate.Format(interval.DateLayout))
	}

	switch d.Pattern {
	case domain.PatternDaily:
		endDate := interval.Day(d.EndDate)
		if endDate.Before(startDate) {
			return fmt.Errorf("%w: end date must not be before start date", domain.ErrPattern)
		}
		if !endDate.Before(startDate.AddDate(0, 0, MaxDays)) {
			return fmt.Errorf("%w: daily pattern may span at most %d days", domain.ErrPattern, MaxDays)
		}
	case domain.PatternWeekly:
		if d.Weeks < 1 || d.Weeks > MaxWeeks {
			return fmt.Errorf("%w: weeks must be between 1 and %d", domain.ErrPattern, MaxWeeks)
		}
	default:
		return fmt.Errorf("%w: unknown pattern %q", domain.ErrPattern, d.Pattern)
	}

	if d.StartTime.Minutes() == d.EndTime.Minutes() {
		return fmt.Errorf("%w: start and end time are identical", domain.ErrPattern)
	}
	if d.Overnight && d.StartTime.Before(d.EndTime) {
		return fmt.Errorf("%w: overnight window must end at or before its start time", domain.ErrPattern)
	}
	if !d.Overnight && !d.StartTime.Before(d.EndTime) {
		return fmt.Errorf("%w: start time must be before end time", domain.ErrPattern)
	}

	return nil
}

// Expand validates d and returns one interval per occurrence, in date order.
func Expand(d domain.Recurrence, today time.Time) ([]interval.Interval, error) {
	if err := Validate(d, today); err != nil {
		return nil, err
	}

	dates := occurrences(d)
	out := make([]interval.Interval, 0, len(dates))
	for _, day := range dates {
		endDay := day
		if d.Overnight {
			endDay = day.AddDate(0, 0, 1)
		}
		out = append(out, interval.Interval{
			Start: interval.At(day, d.StartTime),
			End:   interval.At(endDay, d.EndTime),
		})
	}

	return out, nil
}

func occurrences(d domain.Recurrence) []time.Time {
	start := interval.Day(d.StartDate)

	if d.Pattern == domain.PatternWeekly {
		dates := make([]time.Time, 0, d.Weeks)
		for k := 0; k < d.Weeks; k++ {
			dates = append(dates, start.AddDate(0, 0, 7*k))
		}
		return dates
	}

	end := interval.Day(d.EndDate)
	var dates []time.Time
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dates = append(dates, day)
	}
	return dates
}
