package domain

import (
	"time"

	"github.com/maazimam/parkeasy-sub000/internal/interval"
)

type Pattern string

const (
	PatternDaily  Pattern = "daily"
	PatternWeekly Pattern = "weekly"
)

// Recurrence describes a daily or weekly series of equal time windows.
// Daily series run from StartDate to EndDate inclusive; weekly series
// repeat Weeks times. Overnight windows end on the following day.
type Recurrence struct {
	Pattern   Pattern
	StartDate time.Time
	EndDate   time.Time
	Weeks     int
	StartTime interval.Clock
	EndTime   interval.Clock
	Overnight bool
}
