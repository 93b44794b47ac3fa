package bookingRepo

import (
	"errors"

	"gbclean/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(b *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetAll retrieves bookings newest-created-first, optionally narrowed
	// to a single status (empty status means all).
	GetAll(status models.BookingStatus) ([]models.Booking, error)
	// ApplyPatch atomically sets the given fields on one booking and
	// returns the post-update record.
	ApplyPatch(id string, set bson.M) (*models.Booking, error)
}
