package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   Point
		wantOK bool
	}{
		{"suffix", "Tandon School, Brooklyn [40.6942,-73.9866]", Point{Lat: 40.6942, Lng: -73.9866}, true},
		{"spaces", "Somewhere [ 40.7 , -74.0 ]", Point{Lat: 40.7, Lng: -74.0}, true},
		{"last pair wins", "A [1,2] B [3,4]", Point{Lat: 3, Lng: 4}, true},
		{"no brackets", "Brooklyn, NY", Point{}, false},
		{"not numbers", "X [north,south]", Point{}, false},
		{"missing comma", "X [40.7]", Point{}, false},
		{"unclosed", "X [40.7,-74.0", Point{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLocation(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDistance(t *testing.T) {
	nyu := Point{Lat: 40.7295, Lng: -73.9965}
	tandon := Point{Lat: 40.6942, Lng: -73.9866}

	assert.Equal(t, 0.0, Distance(nyu, nyu))
	assert.Equal(t, 4.0, Distance(nyu, tandon))
	assert.Equal(t, Distance(nyu, tandon), Distance(tandon, nyu))
}

func TestSimplifyLocation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tandon School of Engineering, Johnson Street, Downtown Brooklyn, Brooklyn, Kings County [40.69,-73.98]", "Tandon School of Engineering, Brooklyn"},
		{"12 Main St, Broadway, Midtown, Manhattan, New York [40.75,-73.98]", "12 Main St, Broadway, Manhattan"},
		{"Lot 7, Side Road, Hoboken", "Lot 7, Side Road, New York"},
		{"Garage", "Garage"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SimplifyLocation(tt.in))
	}
}
