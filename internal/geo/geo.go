// Package geo extracts coordinates from listing location text and measures
// distances between them.
package geo

import (
	"math"
	"strconv"
	"strings"
)

const EarthRadiusKM = 6371.0

const defaultCity = "New York"

type Point struct {
	Lat float64
	Lng float64
}

// ParseLocation reads the "[lat,lng]" suffix of a location string.
// The last bracketed pair wins.
func ParseLocation(location string) (Point, bool) {
	open := strings.LastIndex(location, "[")
	if open < 0 {
		return Point{}, false
	}
	closing := strings.Index(location[open:], "]")
	if closing < 0 {
		return Point{}, false
	}

	latText, lngText, ok := strings.Cut(location[open+1:open+closing], ",")
	if !ok {
		return Point{}, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latText), 64)
	if err != nil {
		return Point{}, false
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngText), 64)
	if err != nil {
		return Point{}, false
	}

	return Point{Lat: lat, Lng: lng}, true
}

// Distance returns the great-circle distance in kilometres, rounded to one decimal.
func Distance(a, b Point) float64 {
	lat1, lat2 := radians(a.Lat), radians(b.Lat)
	dLat := lat2 - lat1
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return math.Round(EarthRadiusKM*c*10) / 10
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

var (
	boroughs           = []string{"Brooklyn", "Manhattan", "Queens", "Bronx", "Staten Island"}
	educationalMarkers = []string{"school", "university", "college", "institute"}
)

// SimplifyLocation shortens a geocoded address to "building, street, borough".
// Educational buildings keep only the building and borough. Addresses with a
// single part are returned as is.
func SimplifyLocation(location string) string {
	text := location
	if open := strings.Index(text, "["); open >= 0 {
		text = text[:open]
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	parts := strings.Split(text, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 2 {
		return text
	}

	building, city := parts[0], boroughOf(parts)
	lower := strings.ToLower(building)
	for _, marker := range educationalMarkers {
		if strings.Contains(lower, marker) {
			return building + ", " + city
		}
	}

	return building + ", " + parts[1] + ", " + city
}

func boroughOf(parts []string) string {
	for _, p := range parts {
		for _, b := range boroughs {
			if p == b {
				return b
			}
		}
	}
	return defaultCity
}
