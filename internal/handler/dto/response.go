package dto

import (
	"time"

	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/maazimam/parkeasy-sub000/internal/interval"
	"github.com/shopspring/decimal"
)

type SlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ListingResponse struct {
	ID            string          `json:"id"`
	OwnerID       string          `json:"owner_id"`
	Title         string          `json:"title"`
	Location      string          `json:"location"`
	Description   string          `json:"description"`
	RentPerHour   decimal.Decimal `json:"rent_per_hour"`
	SpotSize      string          `json:"spot_size"`
	HasEVCharger  bool            `json:"has_ev_charger"`
	ChargerLevel  string          `json:"charger_level,omitempty"`
	ConnectorType string          `json:"connector_type,omitempty"`
	CreatedAt     string          `json:"created_at"`
}

type ListingDetailsResponse struct {
	Listing       ListingResponse `json:"listing"`
	ShortLocation string          `json:"short_location"`
	Availability  []SlotResponse  `json:"availability"`
	AverageRating *float64        `json:"average_rating"`
	ReviewCount   int             `json:"review_count"`
}

type SearchResultResponse struct {
	Listing    ListingResponse `json:"listing"`
	DistanceKM *float64        `json:"distance_km,omitempty"`
}

type BookingResponse struct {
	ID         string          `json:"id"`
	ListingID  string          `json:"listing_id"`
	RenterID   string          `json:"renter_id"`
	Email      string          `json:"email"`
	Status     string          `json:"status"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Slots      []SlotResponse  `json:"slots"`
	CreatedAt  string          `json:"created_at"`
}

type ReviewResponse struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`
	ListingID string `json:"listing_id"`
	RenterID  string `json:"renter_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email,omitempty"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

// CoverageResponse answers a coverage query. Window spans the listing's
// earliest and latest available instants and is absent when nothing is available.
type CoverageResponse struct {
	Available bool           `json:"available"`
	Uncovered []SlotResponse `json:"uncovered"`
	Window    *SlotResponse  `json:"window,omitempty"`
}

type TimesResponse struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

type ErrorResponse struct {
	Error string   `json:"error"`
	Dates []string `json:"dates,omitempty"`
}

func ToSlotResponses(slots []interval.Interval) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotResponse{Start: interval.FormatStamp(s.Start), End: interval.FormatStamp(s.End)})
	}
	return out
}

func ToListingResponse(l *domain.Listing) ListingResponse {
	return ListingResponse{
		ID:            l.ID,
		OwnerID:       l.OwnerID,
		Title:         l.Title,
		Location:      l.Location,
		Description:   l.Description,
		RentPerHour:   l.RentPerHour,
		SpotSize:      string(l.SpotSize),
		HasEVCharger:  l.HasEVCharger,
		ChargerLevel:  string(l.ChargerLevel),
		ConnectorType: string(l.ConnectorType),
		CreatedAt:     l.CreatedAt.Format(time.RFC3339),
	}
}

func ToListingDetailsResponse(d *domain.ListingDetails) ListingDetailsResponse {
	return ListingDetailsResponse{
		Listing:       ToListingResponse(&d.Listing),
		ShortLocation: d.ShortLocation,
		Availability:  ToSlotResponses(d.Availability),
		AverageRating: d.AverageRating,
		ReviewCount:   d.ReviewCount,
	}
}

func ToSearchResultResponses(results []domain.ListingResult) []SearchResultResponse {
	out := make([]SearchResultResponse, 0, len(results))
	for i := range results {
		out = append(out, SearchResultResponse{
			Listing:    ToListingResponse(&results[i].Listing),
			DistanceKM: results[i].DistanceKM,
		})
	}
	return out
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		ListingID:  b.ListingID,
		RenterID:   b.RenterID,
		Email:      b.Email,
		Status:     string(b.Status),
		TotalPrice: b.TotalPrice,
		Slots:      ToSlotResponses(b.Slots),
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponses(bookings []*domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, ToBookingResponse(b))
	}
	return out
}

func ToReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		BookingID: r.BookingID,
		ListingID: r.ListingID,
		RenterID:  r.RenterID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
