package booking

import (
	"errors"
	"fmt"
	"strings"

	bookingRepo "gbclean/database/repository/booking"
	"gbclean/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ListBookings returns bookings newest-first. The status filter is matched
// in the store; the search filter is a case-insensitive substring match
// applied in memory (listings are unpaginated and small).
func (s *DefaultBookingService) ListBookings(filter ListFilter) ([]models.Booking, error) {
	var status models.BookingStatus
	if filter.Status != "" {
		normalized, ok := models.NormalizeStatus(filter.Status)
		if !ok {
			return nil, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown value %q", filter.Status)}
		}
		status = normalized
	}

	bookings, err := s.Repo.GetAll(status)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	if search == "" {
		return bookings, nil
	}

	matched := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if bookingMatches(&b, search) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func bookingMatches(b *models.Booking, search string) bool {
	for _, field := range []string{
		b.Name, b.Phone, b.Email, b.Zip, b.Frequency, string(b.Status), b.AssignedCleaner,
	} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// UpdateBooking applies a sparse patch to one booking. All fields are
// validated against the current record before a single atomic write; on any
// validation failure the record is left unchanged.
func (s *DefaultBookingService) UpdateBooking(id string, patch *models.BookingPatch) (*models.Booking, error) {
	if patch == nil || patch.IsEmpty() {
		return nil, ErrNoFields
	}

	current, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to load booking %s: %w", id, err)
	}

	set := bson.M{}

	if patch.Status != nil {
		target, ok := models.NormalizeStatus(*patch.Status)
		if !ok || !CanTransition(current.Status, target) {
			return nil, &InvalidTransitionError{From: current.Status, To: *patch.Status}
		}
		set["status"] = target
	}

	if patch.AssignedCleaner != nil {
		cleaner := strings.TrimSpace(*patch.AssignedCleaner)
		set["assigned_cleaner"] = cleaner
		// Naming a cleaner on a fresh booking advances it to assigned.
		// Clearing the cleaner never reverts status.
		if cleaner != "" && current.Status == models.StatusReceived && patch.Status == nil {
			set["status"] = models.StatusAssigned
		}
	}

	if patch.AdminNotes != nil {
		set["admin_notes"] = *patch.AdminNotes
	}

	if patch.AdminPriceCents != nil {
		if *patch.AdminPriceCents < 0 {
			return nil, &ValidationError{Field: "adminPriceCents", Reason: "must not be negative"}
		}
		set["admin_price_cents"] = *patch.AdminPriceCents
	}

	updated, err := s.Repo.ApplyPatch(id, set)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to update booking %s: %w", id, err)
	}

	zap.L().Info("booking updated",
		zap.String("id", id),
		zap.String("status", string(updated.Status)))
	return updated, nil
}
