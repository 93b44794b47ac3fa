package booking

import "gbclean/models"

// allowedTransitions is the booking lifecycle. received and assigned are
// working states; completed and canceled are terminal. assigned may move back
// to received for manual reassignment.
var allowedTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.StatusReceived:  {models.StatusAssigned, models.StatusCanceled},
	models.StatusAssigned:  {models.StatusCompleted, models.StatusCanceled, models.StatusReceived},
	models.StatusCompleted: {},
	models.StatusCanceled:  {},
}

// CanTransition reports whether a booking may move from one status to
// another. Terminal bookings accept no transition requests at all; elsewhere
// a no-op transition to the current status is allowed.
func CanTransition(from, to models.BookingStatus) bool {
	if IsTerminal(from) {
		return false
	}
	if from == to {
		return true
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a status accepts no further transitions.
func IsTerminal(s models.BookingStatus) bool {
	return len(allowedTransitions[s]) == 0
}
