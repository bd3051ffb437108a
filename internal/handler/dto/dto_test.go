package dto

import (
	"net/url"
	"testing"
	"time"

	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/maazimam/parkeasy-sub000/internal/interval"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func query(t *testing.T, raw string) url.Values {
	t.Helper()
	q, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return q
}

func TestParseSearchQuery_Empty(t *testing.T) {
	f, err := ParseSearchQuery(url.Values{})

	require.NoError(t, err)
	assert.Equal(t, domain.TemporalNone, f.Mode)
	assert.Nil(t, f.MaxPrice)
	assert.Nil(t, f.Near)
}

func TestParseSearchQuery_Multiple(t *testing.T) {
	f, err := ParseSearchQuery(query(t,
		"mode=multiple&slot=2025-06-02T09:00/2025-06-02T10:00&slot=2025-06-04T22:00/2025-06-05T02:00"))

	require.NoError(t, err)
	assert.Equal(t, domain.TemporalMultiple, f.Mode)
	assert.Equal(t, []interval.Interval{
		interval.New(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)),
		interval.New(time.Date(2025, 6, 4, 22, 0, 0, 0, time.UTC), time.Date(2025, 6, 5, 2, 0, 0, 0, time.UTC)),
	}, f.Targets)
}

func TestParseSearchQuery_Recurring(t *testing.T) {
	f, err := ParseSearchQuery(query(t,
		"mode=recurring&recurring_pattern=weekly&recurring_start_date=2025-06-02&recurring_weeks=4"+
			"&recurring_start_time=21:00&recurring_end_time=07:00&recurring_overnight=true"))

	require.NoError(t, err)
	require.NotNil(t, f.Recurring)
	assert.Equal(t, domain.PatternWeekly, f.Recurring.Pattern)
	assert.Equal(t, 4, f.Recurring.Weeks)
	assert.True(t, f.Recurring.Overnight)
	assert.Equal(t, interval.Clock{Hour: 21}, f.Recurring.StartTime)
}

func TestParseSearchQuery_Attributes(t *testing.T) {
	f, err := ParseSearchQuery(query(t,
		"max_price=15.50&spot_size=oversize&ev_charger=true&charger_level=l2&connector_type=ccs&lat=41.88&lng=-87.63&radius_km=5"))

	require.NoError(t, err)
	assert.True(t, f.MaxPrice.Equal(decimal.RequireFromString("15.5")))
	assert.Equal(t, domain.SpotSizeOversize, f.SpotSize)
	assert.True(t, f.EVCharger)
	assert.Equal(t, domain.ChargerLevel2, f.ChargerLevel)
	assert.Equal(t, domain.ConnectorCCS, f.ConnectorType)
	require.NotNil(t, f.Near)
	assert.Equal(t, domain.GeoPoint{Lat: 41.88, Lng: -87.63}, *f.Near)
	require.NotNil(t, f.RadiusKM)
	assert.Equal(t, 5.0, *f.RadiusKM)
}

func TestParseSearchQuery_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unknown param", "color=red"},
		{"negative price", "max_price=-1"},
		{"bad spot size", "spot_size=tiny"},
		{"bad ev flag", "ev_charger=maybe"},
		{"bad charger level", "ev_charger=true&charger_level=L9"},
		{"single incomplete", "mode=single&start_date=2025-06-02&start_time=09:00"},
		{"single off grid", "mode=single&start_date=2025-06-02&start_time=09:10&end_date=2025-06-02&end_time=10:00"},
		{"multiple malformed", "mode=multiple&slot=2025-06-02T09:00"},
		{"recurring incomplete", "mode=recurring&recurring_pattern=daily"},
		{"recurring bad weeks", "mode=recurring&recurring_pattern=weekly&recurring_start_date=2025-06-02" +
			"&recurring_weeks=two&recurring_start_time=09:00&recurring_end_time=10:00"},
		{"radius without point", "radius_km=3"},
		{"lat without lng", "lat=40"},
		{"lat out of range", "lat=91&lng=0"},
		{"zero radius", "lat=40&lng=-74&radius_km=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSearchQuery(query(t, tt.raw))

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestRecurrenceRequest_ToDomain(t *testing.T) {
	var nilReq *RecurrenceRequest
	rec, err := nilReq.ToDomain()
	require.NoError(t, err)
	assert.Nil(t, rec)

	rec, err = (&RecurrenceRequest{
		Pattern: "daily", StartDate: "2025-06-02", EndDate: "2025-06-06", StartTime: "08:00", EndTime: "09:30",
	}).ToDomain()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC), rec.EndDate)
	assert.Equal(t, interval.Clock{Hour: 9, Minute: 30}, rec.EndTime)

	_, err = (&RecurrenceRequest{Pattern: "daily", StartDate: "2025-06-02", StartTime: "08:00", EndTime: "09:00"}).ToDomain()
	assert.ErrorIs(t, err, domain.ErrValidation)
}
