package handlers

import (
	"errors"
	"net/http"

	"gbclean/models"
	"gbclean/services/booking"
	"gbclean/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates staff-facing booking operations. The routes that
// reach it are gated by the admin token middleware.
type AdminHandler struct {
	Service booking.BookingService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc booking.BookingService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// ListBookingsHandler returns bookings newest-first. Supports ?status= for
// exact status match and ?q= for a case-insensitive substring search over
// contact and assignment fields.
func (ah *AdminHandler) ListBookingsHandler(c *gin.Context) {
	filter := booking.ListFilter{
		Status: c.Query("status"),
		Search: c.Query("q"),
	}

	bookings, err := ah.Service.ListBookings(filter)
	if err != nil {
		var validationErr *booking.ValidationError
		if errors.As(err, &validationErr) {
			utils.JSONError(c, http.StatusBadRequest, "invalid filter", err.Error())
			return
		}
		zap.L().Error("Failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

type updateBookingRequest struct {
	ID string `json:"id"`
	models.BookingPatch
}

// UpdateBookingHandler applies a sparse patch to one booking and returns the
// post-update record.
func (ah *AdminHandler) UpdateBookingHandler(c *gin.Context) {
	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.ID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "missing id")
		return
	}

	updated, err := ah.Service.UpdateBooking(req.ID, &req.BookingPatch)
	if err != nil {
		writeUpdateError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func writeUpdateError(c *gin.Context, err error) {
	var notFoundErr *booking.NotFoundError
	var transitionErr *booking.InvalidTransitionError
	var validationErr *booking.ValidationError

	switch {
	case errors.Is(err, booking.ErrNoFields):
		utils.JSONError(c, http.StatusBadRequest, "no fields to update", err.Error())
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
	case errors.As(err, &transitionErr), errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "invalid update", err.Error())
	default:
		zap.L().Error("Failed to update booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
	}
}
