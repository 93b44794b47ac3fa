package booking

import (
	"errors"
	"fmt"

	"gbclean/models"
)

// ErrNoFields is returned when an admin patch carries no recognized fields.
var ErrNoFields = errors.New("no fields to update")

// ValidationError indicates malformed or missing required intake input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError indicates an operation targeting an unknown booking id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("booking %s not found", e.ID)
}

// InvalidTransitionError indicates a disallowed status change. The booking
// is left unchanged.
type InvalidTransitionError struct {
	From models.BookingStatus
	To   string
}

func (e *InvalidTransitionError) Error() string {
	if _, ok := models.NormalizeStatus(e.To); !ok {
		return fmt.Sprintf("unknown status %q", e.To)
	}
	return fmt.Sprintf("cannot change status from %s to %s", e.From, e.To)
}

// DuplicateError indicates the intake duplicate guard rejected a resubmit.
type DuplicateError struct {
	Phone string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("a booking for %s was just submitted", e.Phone)
}
