package models

import (
	"sort"
	"strings"
	"time"
)

// BookingStatus is the canonical booking lifecycle state.
type BookingStatus string

const (
	StatusReceived  BookingStatus = "received"
	StatusAssigned  BookingStatus = "assigned"
	StatusCompleted BookingStatus = "completed"
	StatusCanceled  BookingStatus = "canceled"
)

// NormalizeStatus maps external status vocabulary onto the canonical enum.
// Older admin tooling used new/approved/scheduled; both spellings of
// canceled are accepted. The second return is false for unknown values.
func NormalizeStatus(s string) (BookingStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "received", "new":
		return StatusReceived, true
	case "assigned", "approved", "scheduled":
		return StatusAssigned, true
	case "completed":
		return StatusCompleted, true
	case "canceled", "cancelled":
		return StatusCanceled, true
	default:
		return "", false
	}
}

// Booking is a persisted booking request.
type Booking struct {
	ID        string    `bson:"id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`

	// Customer contact.
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone" json:"phone"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
	Zip   string `bson:"zip,omitempty" json:"zip,omitempty"`

	// Quote selections. Extras and PartialCleaning hold validated catalog
	// keys, sorted; PartialCleaning is meaningful only when PartialEnabled.
	Frequency       string   `bson:"frequency" json:"frequency"`
	ServiceType     string   `bson:"service_type" json:"serviceType"`
	Sqft            string   `bson:"sqft" json:"sqft"`
	Bedrooms        int      `bson:"bedrooms" json:"bedrooms"`
	Bathrooms       float64  `bson:"bathrooms" json:"bathrooms"`
	Extras          []string `bson:"extras" json:"extras"`
	PartialEnabled  bool     `bson:"partial_enabled" json:"partialEnabled"`
	PartialCleaning []string `bson:"partial_cleaning" json:"partialCleaning"`
	Notes           string   `bson:"notes,omitempty" json:"notes,omitempty"`

	// TotalCents is always the server-computed quote for the selections
	// above; client-submitted totals are discarded at intake.
	TotalCents int64 `bson:"total_cents" json:"totalCents"`

	Status          BookingStatus `bson:"status" json:"status"`
	AssignedCleaner string        `bson:"assigned_cleaner,omitempty" json:"assignedCleaner,omitempty"`
	AdminNotes      string        `bson:"admin_notes,omitempty" json:"adminNotes,omitempty"`
	AdminPriceCents *int64        `bson:"admin_price_cents,omitempty" json:"adminPriceCents,omitempty"`
}

// CreateBookingInput is the public intake payload. Extras and PartialCleaning
// arrive as key→bool maps, matching the booking form's selection state.
type CreateBookingInput struct {
	Name            string          `json:"name"`
	Phone           string          `json:"phone"`
	Email           string          `json:"email"`
	Zip             string          `json:"zip"`
	Frequency       string          `json:"frequency"`
	ServiceType     string          `json:"serviceType"`
	Sqft            string          `json:"sqft"`
	Bedrooms        int             `json:"bedrooms"`
	Bathrooms       float64         `json:"bathrooms"`
	Extras          map[string]bool `json:"extras"`
	PartialEnabled  bool            `json:"partialEnabled"`
	PartialCleaning map[string]bool `json:"partialCleaning"`
	Notes           string          `json:"notes"`
}

// SelectedExtras returns the chosen extra keys, sorted.
func (in *CreateBookingInput) SelectedExtras() []string {
	return selectedKeys(in.Extras)
}

// SelectedPartialOptions returns the chosen partial-cleaning keys, sorted.
func (in *CreateBookingInput) SelectedPartialOptions() []string {
	return selectedKeys(in.PartialCleaning)
}

func selectedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k, on := range m {
		if on {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// BookingPatch is the sparse admin update. Nil fields are left untouched.
type BookingPatch struct {
	Status          *string `json:"status"`
	AssignedCleaner *string `json:"assignedCleaner"`
	AdminNotes      *string `json:"adminNotes"`
	AdminPriceCents *int64  `json:"adminPriceCents"`
}

// IsEmpty reports whether the patch carries no recognized fields.
func (p *BookingPatch) IsEmpty() bool {
	return p.Status == nil && p.AssignedCleaner == nil && p.AdminNotes == nil && p.AdminPriceCents == nil
}
