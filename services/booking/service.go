package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	bookingRepo "gbclean/database/repository/booking"
	"gbclean/models"
	"gbclean/services/quote"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService over a booking repository
// and an immutable rate catalog.
type DefaultBookingService struct {
	Repo    bookingRepo.BookingRepository
	Catalog *models.RateCatalog

	// Dedupe, when non-nil, rejects an identical immediate resubmit from
	// the same phone number. DedupeTTL bounds the window.
	Dedupe    *redis.Client
	DedupeTTL time.Duration
}

// CreateBooking validates the submission, prices it against the live catalog
// and persists it. Any total the client computed is discarded; the stored
// totalCents is always this server's own quote.
func (s *DefaultBookingService) CreateBooking(input *models.CreateBookingInput) (*models.Booking, error) {
	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		return nil, &ValidationError{Field: "phone", Reason: "is required"}
	}

	extras := input.SelectedExtras()
	partial := input.SelectedPartialOptions()
	// A submission carrying partial selections counts as partial even if
	// the flag was omitted.
	partialEnabled := input.PartialEnabled || len(partial) > 0

	serviceType := input.ServiceType
	if serviceType == "" {
		serviceType = "standard"
	}

	sel := quote.Selection{
		Sqft:           input.Sqft,
		Frequency:      input.Frequency,
		ServiceType:    serviceType,
		Bedrooms:       input.Bedrooms,
		Bathrooms:      input.Bathrooms,
		Extras:         extras,
		PartialEnabled: partialEnabled,
		PartialOptions: partial,
	}
	totalCents, err := quote.ComputeTotalCents(sel, s.Catalog)
	if err != nil {
		return nil, err
	}

	if err := s.checkDuplicate(phone); err != nil {
		return nil, err
	}

	b := &models.Booking{
		ID:              uuid.New().String(),
		CreatedAt:       time.Now().UTC(),
		Name:            strings.TrimSpace(input.Name),
		Phone:           phone,
		Email:           strings.TrimSpace(input.Email),
		Zip:             strings.TrimSpace(input.Zip),
		Frequency:       input.Frequency,
		ServiceType:     sel.ServiceType,
		Sqft:            input.Sqft,
		Bedrooms:        input.Bedrooms,
		Bathrooms:       input.Bathrooms,
		Extras:          extras,
		PartialEnabled:  partialEnabled,
		PartialCleaning: partial,
		Notes:           input.Notes,
		TotalCents:      totalCents,
		Status:          models.StatusReceived,
	}

	if err := s.Repo.Create(b); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	zap.L().Info("booking created",
		zap.String("id", b.ID),
		zap.Int64("totalCents", b.TotalCents),
		zap.String("frequency", b.Frequency))
	return b, nil
}

// checkDuplicate applies the redis SETNX guard. A missing redis client
// disables the guard; a redis failure is logged and ignored rather than
// blocking intake.
func (s *DefaultBookingService) checkDuplicate(phone string) error {
	if s.Dedupe == nil {
		return nil
	}
	ttl := s.DedupeTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := "intake:phone:" + phone
	ok, err := s.Dedupe.SetNX(ctx, key, 1, ttl).Result()
	if err != nil {
		zap.L().Warn("duplicate guard unavailable", zap.Error(err))
		return nil
	}
	if !ok {
		return &DuplicateError{Phone: phone}
	}
	return nil
}
