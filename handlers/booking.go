package handlers

import (
	"errors"
	"net/http"

	"gbclean/models"
	"gbclean/services/booking"
	"gbclean/services/quote"
	"gbclean/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the public intake endpoint.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler accepts a booking submission, prices it server-side
// and persists it. Any client-computed total in the payload is ignored.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Service.CreateBooking(&input)
	if err != nil {
		writeCreateError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func writeCreateError(c *gin.Context, err error) {
	var validationErr *booking.ValidationError
	var optionErr *quote.InvalidOptionError
	var valueErr *quote.InvalidValueError
	var dupErr *booking.DuplicateError

	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &optionErr),
		errors.As(err, &valueErr):
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
	case errors.As(err, &dupErr):
		utils.JSONError(c, http.StatusTooManyRequests, "duplicate submission", err.Error())
	default:
		zap.L().Error("Failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
	}
}
