package recurrence

import (
	"testing"
	"time"

	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/maazimam/parkeasy-sub000/internal/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return today.AddDate(0, 0, n)
}

func TestExpand_Daily(t *testing.T) {
	d := domain.Recurrence{
		Pattern:   domain.PatternDaily,
		StartDate: day(2),
		EndDate:   day(5),
		StartTime: interval.Clock{Hour: 10},
		EndTime:   interval.Clock{Hour: 14},
	}

	got, err := Expand(d, today)

	require.NoError(t, err)
	require.Len(t, got, 4)
	for i, iv := range got {
		assert.Equal(t, day(2+i).Add(10*time.Hour), iv.Start)
		assert.Equal(t, day(2+i).Add(14*time.Hour), iv.End)
	}
}

func TestExpand_DailySingleDay(t *testing.T) {
	d := domain.Recurrence{
		Pattern:   domain.PatternDaily,
		StartDate: day(0),
		EndDate:   day(0),
		StartTime: interval.Clock{Hour: 9},
		EndTime:   interval.Clock{Hour: 9, Minute: 30},
	}

	got, err := Expand(d, today)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestExpand_Weekly(t *testing.T) {
	d := domain.Recurrence{
		Pattern:   domain.PatternWeekly,
		StartDate: day(1),
		Weeks:     3,
		StartTime: interval.Clock{Hour: 10},
		EndTime:   interval.Clock{Hour: 14},
	}

	got, err := Expand(d, today)

	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.Equal(t, 7*24*time.Hour, got[i].Start.Sub(got[i-1].Start))
	}
}

func TestExpand_OvernightAddsOneDay(t *testing.T) {
	d := domain.Recurrence{
		Pattern:   domain.PatternDaily,
		StartDate: day(0),
		EndDate:   day(6),
		StartTime: interval.Clock{Hour: 20},
		EndTime:   interval.Clock{Hour: 10},
		Overnight: true,
	}

	got, err := Expand(d, today)

	require.NoError(t, err)
	require.Len(t, got, 7)
	for i, iv := range got {
		assert.Equal(t, day(i).Add(20*time.Hour), iv.Start)
		assert.Equal(t, day(i+1).Add(10*time.Hour), iv.End)
	}
}

func TestExpand_Invalid(t *testing.T) {
	valid := domain.Recurrence{
		Pattern:   domain.PatternDaily,
		StartDate: day(1),
		EndDate:   day(3),
		StartTime: interval.Clock{Hour: 10},
		EndTime:   interval.Clock{Hour: 12},
	}

	tests := []struct {
		name   string
		mutate func(d *domain.Recurrence)
	}{
		{"end before start date", func(d *domain.Recurrence) { d.EndDate = day(0) }},
		{"past start date", func(d *domain.Recurrence) { d.StartDate = day(-1) }},
		{"identical times", func(d *domain.Recurrence) { d.EndTime = d.StartTime }},
		{"identical times overnight", func(d *domain.Recurrence) { d.EndTime = d.StartTime; d.Overnight = true }},
		{"reversed without overnight", func(d *domain.Recurrence) { d.StartTime = interval.Clock{Hour: 13} }},
		{"overnight that does not wrap", func(d *domain.Recurrence) { d.Overnight = true }},
		{"zero weeks", func(d *domain.Recurrence) { d.Pattern = domain.PatternWeekly; d.Weeks = 0 }},
		{"too many weeks", func(d *domain.Recurrence) { d.Pattern = domain.PatternWeekly; d.Weeks = 53 }},
		{"unknown pattern", func(d *domain.Recurrence) { d.Pattern = "monthly" }},
		{"daily span too long", func(d *domain.Recurrence) { d.EndDate = day(1 + MaxDays) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)

			got, err := Expand(d, today)

			assert.ErrorIs(t, err, domain.ErrPattern)
			assert.Nil(t, got)
		})
	}
}

func TestExpand_DailyLongestSpan(t *testing.T) {
	d := domain.Recurrence{
		Pattern:   domain.PatternDaily,
		StartDate: day(1),
		EndDate:   day(MaxDays),
		StartTime: interval.Clock{Hour: 10},
		EndTime:   interval.Clock{Hour: 12},
	}

	got, err := Expand(d, today)

	require.NoError(t, err)
	assert.Len(t, got, MaxDays)
}
