package booking

import "gbclean/models"

// ListFilter narrows an admin listing. Status is matched exactly after
// normalization; Search is a case-insensitive substring match over contact
// and assignment fields.
type ListFilter struct {
	Status string
	Search string
}

// BookingService defines the operations of the public intake and the admin
// gateway.
type BookingService interface {
	// CreateBooking validates an intake submission, recomputes its price
	// server-side and persists it with status received.
	CreateBooking(input *models.CreateBookingInput) (*models.Booking, error)
	// ListBookings returns bookings newest-first, optionally filtered.
	ListBookings(filter ListFilter) ([]models.Booking, error)
	// UpdateBooking applies a sparse admin patch to one booking and
	// returns the post-update record.
	UpdateBooking(id string, patch *models.BookingPatch) (*models.Booking, error)
}
