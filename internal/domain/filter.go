package domain

import (
	"github.com/maazimam/parkeasy-sub000/internal/interval"
	"github.com/shopspring/decimal"
)

type TemporalMode string

const (
	TemporalNone      TemporalMode = ""
	TemporalSingle    TemporalMode = "single"
	TemporalMultiple  TemporalMode = "multiple"
	TemporalRecurring TemporalMode = "recurring"
)

type GeoPoint struct {
	Lat float64
	Lng float64
}

// ListingFilter combines the search predicates. Charger refinements apply
// only when EVCharger is set. Exactly one temporal mode is active.
type ListingFilter struct {
	MaxPrice      *decimal.Decimal
	SpotSize      SpotSize
	EVCharger     bool
	ChargerLevel  ChargerLevel
	ConnectorType ConnectorType

	Mode      TemporalMode
	Targets   []interval.Interval
	Recurring *Recurrence

	Near     *GeoPoint
	RadiusKM *float64
}
