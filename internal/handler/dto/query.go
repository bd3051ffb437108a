package dto

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/maazimam/parkeasy-sub000/internal/interval"
	"github.com/shopspring/decimal"
)

var searchParams = map[string]bool{
	"max_price": true, "spot_size": true, "ev_charger": true, "charger_level": true, "connector_type": true,
	"mode": true, "start_date": true, "start_time": true, "end_date": true, "end_time": true, "slot": true,
	"recurring_pattern": true, "recurring_start_date": true, "recurring_end_date": true, "recurring_weeks": true,
	"recurring_start_time": true, "recurring_end_time": true, "recurring_overnight": true,
	"lat": true, "lng": true, "radius_km": true,
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{domain.ErrValidation}, args...)...)
}

// ParseSearchQuery turns the listing search query string into a filter.
// Unknown parameters are rejected.
func ParseSearchQuery(q url.Values) (domain.ListingFilter, error) {
	var f domain.ListingFilter

	for key := range q {
		if !searchParams[key] {
			return f, invalid("unknown parameter %q", key)
		}
	}

	if v := q.Get("max_price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil || price.IsNegative() {
			return f, invalid("max_price must be a non-negative number")
		}
		f.MaxPrice = &price
	}

	if v := q.Get("spot_size"); v != "" {
		f.SpotSize = domain.SpotSize(strings.ToUpper(v))
		if !f.SpotSize.Valid() {
			return f, invalid("unknown spot_size %q", v)
		}
	}

	if v := q.Get("ev_charger"); v != "" {
		ev, err := strconv.ParseBool(v)
		if err != nil {
			return f, invalid("ev_charger must be true or false")
		}
		f.EVCharger = ev
	}
	if v := q.Get("charger_level"); v != "" {
		f.ChargerLevel = domain.ChargerLevel(strings.ToUpper(v))
		if !f.ChargerLevel.Valid() {
			return f, invalid("unknown charger_level %q", v)
		}
	}
	if v := q.Get("connector_type"); v != "" {
		f.ConnectorType = domain.ConnectorType(strings.ToUpper(v))
		if !f.ConnectorType.Valid() {
			return f, invalid("unknown connector_type %q", v)
		}
	}

	f.Mode = domain.TemporalMode(q.Get("mode"))
	var err error
	switch f.Mode {
	case domain.TemporalSingle:
		var target interval.Interval
		if target, err = parseSingle(q); err != nil {
			return f, err
		}
		f.Targets = []interval.Interval{target}
	case domain.TemporalMultiple:
		for _, raw := range q["slot"] {
			target, err := interval.Parse(raw)
			if err != nil {
				return f, invalid("slot: %v", err)
			}
			f.Targets = append(f.Targets, target)
		}
	case domain.TemporalRecurring:
		if f.Recurring, err = parseRecurring(q); err != nil {
			return f, err
		}
	}

	return f, parseGeo(q, &f)
}

func parseSingle(q url.Values) (interval.Interval, error) {
	names := []string{"start_date", "start_time", "end_date", "end_time"}
	for _, n := range names {
		if q.Get(n) == "" {
			return interval.Interval{}, invalid("single mode needs %s", strings.Join(names, ", "))
		}
	}

	startDate, err := interval.ParseDate(q.Get("start_date"))
	if err != nil {
		return interval.Interval{}, invalid("%v", err)
	}
	endDate, err := interval.ParseDate(q.Get("end_date"))
	if err != nil {
		return interval.Interval{}, invalid("%v", err)
	}
	startTime, err := interval.ParseClock(q.Get("start_time"))
	if err != nil {
		return interval.Interval{}, invalid("%v", err)
	}
	endTime, err := interval.ParseClock(q.Get("end_time"))
	if err != nil {
		return interval.Interval{}, invalid("%v", err)
	}

	return interval.New(interval.At(startDate, startTime), interval.At(endDate, endTime)), nil
}

func parseRecurring(q url.Values) (*domain.Recurrence, error) {
	req := &RecurrenceRequest{
		Pattern:   q.Get("recurring_pattern"),
		StartDate: q.Get("recurring_start_date"),
		EndDate:   q.Get("recurring_end_date"),
		StartTime: q.Get("recurring_start_time"),
		EndTime:   q.Get("recurring_end_time"),
	}
	if req.Pattern == "" || req.StartDate == "" || req.StartTime == "" || req.EndTime == "" {
		return nil, invalid("recurring mode needs recurring_pattern, recurring_start_date, recurring_start_time and recurring_end_time")
	}

	if v := q.Get("recurring_weeks"); v != "" {
		weeks, err := strconv.Atoi(v)
		if err != nil {
			return nil, invalid("recurring_weeks must be a whole number")
		}
		req.Weeks = weeks
	}
	if v := q.Get("recurring_overnight"); v != "" {
		overnight, err := strconv.ParseBool(v)
		if err != nil {
			return nil, invalid("recurring_overnight must be true or false")
		}
		req.Overnight = overnight
	}

	return req.ToDomain()
}

func parseGeo(q url.Values, f *domain.ListingFilter) error {
	lat, lng, radius := q.Get("lat"), q.Get("lng"), q.Get("radius_km")
	if lat == "" && lng == "" {
		if radius != "" {
			return invalid("radius_km needs lat and lng")
		}
		return nil
	}
	if lat == "" || lng == "" {
		return invalid("lat and lng go together")
	}

	var (
		p   domain.GeoPoint
		err error
	)
	if p.Lat, err = strconv.ParseFloat(lat, 64); err != nil || p.Lat < -90 || p.Lat > 90 {
		return invalid("lat must be between -90 and 90")
	}
	if p.Lng, err = strconv.ParseFloat(lng, 64); err != nil || p.Lng < -180 || p.Lng > 180 {
		return invalid("lng must be between -180 and 180")
	}
	f.Near = &p

	if radius != "" {
		r, err := strconv.ParseFloat(radius, 64)
		if err != nil || r <= 0 {
			return invalid("radius_km must be positive")
		}
		f.RadiusKM = &r
	}
	return nil
}
