package interval

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
	RangeLayout = "2006-01-02T15:04"
)

var (
	ErrOffGrid   = errors.New("time must fall on the hour or half hour")
	ErrBadFormat = errors.New("malformed date or time")
)

// Clock is a wall-clock time of day on the half-hour grid.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses "HH:MM" and rejects minutes other than 00 and 30.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return Clock{}, fmt.Errorf("%w: time %q, expected HH:MM", ErrBadFormat, s)
	}
	if t.Minute() != 0 && t.Minute() != 30 {
		return Clock{}, fmt.Errorf("%w: %s", ErrOffGrid, s)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// ClockOf returns the time of day of t.
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute()}
}

func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c Clock) Before(o Clock) bool {
	return c.Minutes() < o.Minutes()
}

func (c Clock) After(o Clock) bool {
	return c.Minutes() > o.Minutes()
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ParseDate parses "YYYY-MM-DD" into midnight of that date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q, expected YYYY-MM-DD", ErrBadFormat, s)
	}
	return d, nil
}

// At combines a date and a time of day into a wall-clock timestamp.
func At(date time.Time, c Clock) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour, c.Minute, 0, 0, time.UTC)
}

// Day truncates t to midnight of its date.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Wall drops the zone of t, keeping its wall-clock reading.
func Wall(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// OnGrid reports whether t sits exactly on an hour or half hour.
func OnGrid(t time.Time) bool {
	return t.Second() == 0 && t.Nanosecond() == 0 && (t.Minute() == 0 || t.Minute() == 30)
}

// Parse reads "YYYY-MM-DDTHH:MM/YYYY-MM-DDTHH:MM".
func Parse(s string) (Interval, error) {
	from, to, ok := strings.Cut(s, "/")
	if !ok {
		return Interval{}, fmt.Errorf("%w: range %q, expected start/end", ErrBadFormat, s)
	}
	start, err := ParseStamp(from)
	if err != nil {
		return Interval{}, err
	}
	end, err := ParseStamp(to)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}

// ParseStamp reads "YYYY-MM-DDTHH:MM" and rejects minutes off the half-hour grid.
func ParseStamp(s string) (time.Time, error) {
	t, err := time.Parse(RangeLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: timestamp %q, expected YYYY-MM-DDTHH:MM", ErrBadFormat, s)
	}
	if !OnGrid(t) {
		return time.Time{}, fmt.Errorf("%w: %s", ErrOffGrid, s)
	}
	return t, nil
}

// FormatStamp renders t as "YYYY-MM-DDTHH:MM".
func FormatStamp(t time.Time) string {
	return t.Format(RangeLayout)
}
