package handler

import (
	"net/http"

	"github.com/ptrvv/ArenaBooker/internal/domain"
	"github.com/ptrvv/ArenaBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListBookings(c *ginext.Context) {
	bookings, err := h.bookingService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err, errMessages{fail: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) ListBookingsByUser(c *ginext.Context) {
	bookings, err := h.bookingService.ListByUser(c.Request.Context(), c.Query("firstName"), c.Query("lastName"))
	if err != nil {
		h.handleError(c, err, errMessages{
			notFound: "No bookings found for this user",
			fail:     "Failed to fetch booking by name",
		})
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Please provide all required fields",
			Error:   err.Error(),
			Code:    codeValidation,
		})
		return
	}

	input := domain.CreateBookingInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Date:        req.Date,
		Time:        req.Time,
		IsRepeat:    req.IsRepeat,
		PaymentInfo: req.PaymentInfo,
		ArenaID:     req.ArenaID,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err, errMessages{
			notFound:   "No arenas found for this id",
			badRequest: "Please provide all required fields",
			fail:       "Failed to create booking",
		})
		return
	}

	c.JSON(http.StatusCreated, dto.CreateResponse{
		Message: "Booking created successfully",
		ID:      booking.ID,
	})
}
