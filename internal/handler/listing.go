package handler

import (
	"fmt"
	"net/http"

	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/maazimam/parkeasy-sub000/internal/handler/dto"
	"github.com/maazimam/parkeasy-sub000/internal/interval"
	"github.com/maazimam/parkeasy-sub000/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateListing(c *ginext.Context) {
	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	slots, err := dto.ToIntervals(req.Availability)
	if err != nil {
		h.badRequest(c, err)
		return
	}
	recurring, err := req.Recurring.ToDomain()
	if err != nil {
		h.badRequest(c, err)
		return
	}

	input := domain.CreateListingInput{
		OwnerID:       middleware.ActorID(c),
		Title:         req.Title,
		Location:      req.Location,
		Description:   req.Description,
		RentPerHour:   req.RentPerHour,
		SpotSize:      domain.SpotSize(req.SpotSize),
		HasEVCharger:  req.HasEVCharger,
		ChargerLevel:  domain.ChargerLevel(req.ChargerLevel),
		ConnectorType: domain.ConnectorType(req.ConnectorType),
		Availability:  slots,
		Recurring:     recurring,
	}

	listing, err := h.listingService.Create(c.Request.Context(), input, h.now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToListingResponse(listing))
}

func (h *Handler) SearchListings(c *ginext.Context) {
	filter, err := dto.ParseSearchQuery(c.Request.URL.Query())
	if err != nil {
		h.badRequest(c, err)
		return
	}

	results, err := h.listingService.Search(c.Request.Context(), filter, h.now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSearchResultResponses(results))
}

func (h *Handler) GetListing(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	details, err := h.listingService.Get(c.Request.Context(), id, h.now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingDetailsResponse(details))
}

func (h *Handler) DeleteListing(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.listingService.Delete(c.Request.Context(), id, middleware.ActorID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) GetSchedule(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	slots, err := h.listingService.Schedule(c.Request.Context(), id, middleware.ActorID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotResponses(slots))
}

func (h *Handler) EditAvailability(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.EditAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	slots, err := dto.ToIntervals(req.Slots)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	persisted, err := h.listingService.EditAvailability(c.Request.Context(), id, middleware.ActorID(c), slots, h.now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotResponses(persisted))
}

// AvailableTimes lists the bookable half-hour marks of one date.
func (h *Handler) AvailableTimes(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	raw := c.Query("date")
	date, err := interval.ParseDate(raw)
	if err != nil {
		h.badRequest(c, fmt.Errorf("%w: %v", domain.ErrValidation, err))
		return
	}
	from, err := optionalClock(c, "min_time")
	if err != nil {
		h.badRequest(c, err)
		return
	}
	to, err := optionalClock(c, "max_time")
	if err != nil {
		h.badRequest(c, err)
		return
	}

	marks, err := h.availabilityService.AvailableTimes(c.Request.Context(), id, date, from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	times := make([]string, 0, len(marks))
	for _, m := range marks {
		times = append(times, m.String())
	}
	c.JSON(http.StatusOK, dto.TimesResponse{Date: raw, Times: times})
}

func optionalClock(c *ginext.Context, name string) (*interval.Clock, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	clock, err := interval.ParseClock(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrValidation, name, err)
	}
	return &clock, nil
}

// Coverage reports which of the requested slots the listing cannot serve.
func (h *Handler) Coverage(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	raw := c.QueryArray("slot")
	if len(raw) == 0 {
		h.badRequest(c, fmt.Errorf("%w: at least one slot is required", domain.ErrValidation))
		return
	}
	targets := make([]interval.Interval, 0, len(raw))
	for _, r := range raw {
		target, err := interval.Parse(r)
		if err != nil {
			h.badRequest(c, fmt.Errorf("%w: %v", domain.ErrValidation, err))
			return
		}
		targets = append(targets, target)
	}

	missing, err := h.availabilityService.Uncovered(c.Request.Context(), id, targets)
	if err != nil {
		h.handleError(c, err)
		return
	}
	earliest, latest, ok, err := h.availabilityService.Bounds(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.CoverageResponse{
		Available: len(missing) == 0,
		Uncovered: dto.ToSlotResponses(missing),
	}
	if ok {
		resp.Window = &dto.SlotResponse{Start: interval.FormatStamp(earliest), End: interval.FormatStamp(latest)}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListListingBookings(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListByListing(c.Request.Context(), id, middleware.ActorID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) ListListingReviews(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListByListing(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, dto.ToReviewResponse(r))
	}
	c.JSON(http.StatusOK, resp)
}
