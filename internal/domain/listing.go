package domain

import (
	"time"

	"github.com/maazimam/parkeasy-sub000/internal/interval"
	"github.com/shopspring/decimal"
)

type SpotSize string

const (
	SpotSizeCompact    SpotSize = "COMPACT"
	SpotSizeStandard   SpotSize = "STANDARD"
	SpotSizeOversize   SpotSize = "OVERSIZE"
	SpotSizeCommercial SpotSize = "COMMERCIAL"
)

type ChargerLevel string

const (
	ChargerLevel1 ChargerLevel = "L1"
	ChargerLevel2 ChargerLevel = "L2"
	ChargerLevel3 ChargerLevel = "L3"
)

type ConnectorType string

const (
	ConnectorJ1772   ConnectorType = "J1772"
	ConnectorTesla   ConnectorType = "TESLA"
	ConnectorCCS     ConnectorType = "CCS"
	ConnectorCHAdeMO ConnectorType = "CHADEMO"
	ConnectorOther   ConnectorType = "OTHER"
)

func (s SpotSize) Valid() bool {
	switch s {
	case SpotSizeCompact, SpotSizeStandard, SpotSizeOversize, SpotSizeCommercial:
		return true
	}
	return false
}

func (l ChargerLevel) Valid() bool {
	switch l {
	case ChargerLevel1, ChargerLevel2, ChargerLevel3:
		return true
	}
	return false
}

func (c ConnectorType) Valid() bool {
	switch c {
	case ConnectorJ1772, ConnectorTesla, ConnectorCCS, ConnectorCHAdeMO, ConnectorOther:
		return true
	}
	return false
}

type Listing struct {
	ID            string          `json:"id"`
	OwnerID       string          `json:"owner_id"`
	Title         string          `json:"title"`
	Location      string          `json:"location"`
	Description   string          `json:"description"`
	RentPerHour   decimal.Decimal `json:"rent_per_hour"`
	SpotSize      SpotSize        `json:"spot_size"`
	HasEVCharger  bool            `json:"has_ev_charger"`
	ChargerLevel  ChargerLevel    `json:"charger_level,omitempty"`
	ConnectorType ConnectorType   `json:"connector_type,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type ListingDetails struct {
	Listing       Listing             `json:"listing"`
	Availability  []interval.Interval `json:"availability"`
	ShortLocation string              `json:"short_location"`
	AverageRating *float64            `json:"average_rating"`
	ReviewCount   int                 `json:"review_count"`
}

type CreateListingInput struct {
	OwnerID       string
	Title         string
	Location      string
	Description   string
	RentPerHour   decimal.Decimal
	SpotSize      SpotSize
	HasEVCharger  bool
	ChargerLevel  ChargerLevel
	ConnectorType ConnectorType
	Availability  []interval.Interval
	Recurring     *Recurrence
}

// ListingResult is one search hit. DistanceKM is nil when no search point
// was given or the listing location has no coordinates.
type ListingResult struct {
	Listing    Listing  `json:"listing"`
	DistanceKM *float64 `json:"distance_km,omitempty"`
}
