package dto

import (
	"fmt"

	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/maazimam/parkeasy-sub000/internal/interval"
	"github.com/shopspring/decimal"
)

// SlotRequest is a half-open range with "YYYY-MM-DDTHH:MM" boundaries.
type SlotRequest struct {
	Start string `json:"start" binding:"required,isostamp"`
	End   string `json:"end"   binding:"required,isostamp"`
}

func (r SlotRequest) ToInterval() (interval.Interval, error) {
	start, err := interval.ParseStamp(r.Start)
	if err != nil {
		return interval.Interval{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	end, err := interval.ParseStamp(r.End)
	if err != nil {
		return interval.Interval{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return interval.New(start, end), nil
}

func ToIntervals(slots []SlotRequest) ([]interval.Interval, error) {
	out := make([]interval.Interval, 0, len(slots))
	for _, s := range slots {
		iv, err := s.ToInterval()
		if err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, nil
}

type RecurrenceRequest struct {
	Pattern   string `json:"pattern"    binding:"required,oneof=daily weekly"`
	StartDate string `json:"start_date" binding:"required,isodate"`
	EndDate   string `json:"end_date"   binding:"omitempty,isodate"`
	Weeks     int    `json:"weeks"      binding:"omitempty,min=1,max=52"`
	StartTime string `json:"start_time" binding:"required,halfhour"`
	EndTime   string `json:"end_time"   binding:"required,halfhour"`
	Overnight bool   `json:"overnight"`
}

func (r *RecurrenceRequest) ToDomain() (*domain.Recurrence, error) {
	if r == nil {
		return nil, nil
	}

	rec := &domain.Recurrence{
		Pattern:   domain.Pattern(r.Pattern),
		Weeks:     r.Weeks,
		Overnight: r.Overnight,
	}

	var err error
	if rec.StartDate, err = interval.ParseDate(r.StartDate); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if r.EndDate != "" {
		if rec.EndDate, err = interval.ParseDate(r.EndDate); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
	} else if rec.Pattern == domain.PatternDaily {
		return nil, fmt.Errorf("%w: daily pattern needs an end_date", domain.ErrValidation)
	}
	if rec.StartTime, err = interval.ParseClock(r.StartTime); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if rec.EndTime, err = interval.ParseClock(r.EndTime); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	return rec, nil
}

type CreateListingRequest struct {
	Title         string             `json:"title"          binding:"required,max=200"`
	Location      string             `json:"location"       binding:"required"`
	Description   string             `json:"description"`
	RentPerHour   decimal.Decimal    `json:"rent_per_hour"`
	SpotSize      string             `json:"spot_size"      binding:"omitempty,oneof=COMPACT STANDARD OVERSIZE COMMERCIAL"`
	HasEVCharger  bool               `json:"has_ev_charger"`
	ChargerLevel  string             `json:"charger_level"  binding:"omitempty,oneof=L1 L2 L3"`
	ConnectorType string             `json:"connector_type" binding:"omitempty,oneof=J1772 TESLA CCS CHADEMO OTHER"`
	Availability  []SlotRequest      `json:"availability"   binding:"omitempty,max=1000,dive"`
	Recurring     *RecurrenceRequest `json:"recurring"`
}

type EditAvailabilityRequest struct {
	Slots []SlotRequest `json:"slots" binding:"max=1000,dive"`
}

type CreateBookingRequest struct {
	Email     string             `json:"email" binding:"omitempty,email"`
	Slots     []SlotRequest      `json:"slots" binding:"omitempty,max=1000,dive"`
	Recurring *RecurrenceRequest `json:"recurring"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating"  binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=2000"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	Email          string `json:"email"    binding:"omitempty,email"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
