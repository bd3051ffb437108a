package handler

import (
	"fmt"
	"net/http"

	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/maazimam/parkeasy-sub000/internal/handler/dto"
	"github.com/maazimam/parkeasy-sub000/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateBooking(c *ginext.Context) {
	listingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	slots, err := dto.ToIntervals(req.Slots)
	if err != nil {
		h.badRequest(c, err)
		return
	}
	recurring, err := req.Recurring.ToDomain()
	if err != nil {
		h.badRequest(c, err)
		return
	}

	input := domain.CreateBookingInput{
		RenterID:  middleware.ActorID(c),
		ListingID: listingID,
		Email:     req.Email,
		Slots:     slots,
		Recurring: recurring,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input, h.now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

// GetBooking shows a booking to its renter.
func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if booking.RenterID != middleware.ActorID(c) {
		h.handleError(c, fmt.Errorf("%w: only the renter can view a booking", domain.ErrNotAllowed))
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ApproveBooking(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.Approve(c.Request.Context(), id, middleware.ActorID(c), h.now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) DeclineBooking(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.Decline(c.Request.Context(), id, middleware.ActorID(c), h.now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), id, middleware.ActorID(c), h.now()); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ReviewBooking(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), domain.CreateReviewInput{
		BookingID: id,
		ActorID:   middleware.ActorID(c),
		Rating:    req.Rating,
		Comment:   req.Comment,
	}, h.now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListByRenter(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}
