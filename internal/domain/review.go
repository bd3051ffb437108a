package domain

import "time"

type Review struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	ListingID string    `json:"listing_id"`
	RenterID  string    `json:"renter_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateReviewInput struct {
	BookingID string
	ActorID   string
	Rating    int
	Comment   string
}

type RatingSummary struct {
	Average *float64
	Count   int
}
