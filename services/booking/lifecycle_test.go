package booking

import (
	"testing"

	"gbclean/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    models.BookingStatus
		to      models.BookingStatus
		allowed bool
	}{
		{models.StatusReceived, models.StatusAssigned, true},
		{models.StatusReceived, models.StatusCanceled, true},
		{models.StatusReceived, models.StatusCompleted, false},
		{models.StatusAssigned, models.StatusCompleted, true},
		{models.StatusAssigned, models.StatusCanceled, true},
		{models.StatusAssigned, models.StatusReceived, true},
		{models.StatusReceived, models.StatusReceived, true},
		{models.StatusAssigned, models.StatusAssigned, true},
		{models.StatusCompleted, models.StatusAssigned, false},
		{models.StatusCompleted, models.StatusCompleted, false},
		{models.StatusCompleted, models.StatusCanceled, false},
		{models.StatusCanceled, models.StatusReceived, false},
		{models.StatusCanceled, models.StatusCanceled, false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.allowed, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(models.StatusReceived))
	assert.False(t, IsTerminal(models.StatusAssigned))
	assert.True(t, IsTerminal(models.StatusCompleted))
	assert.True(t, IsTerminal(models.StatusCanceled))
}

func TestNormalizeStatusVocabulary(t *testing.T) {
	cases := map[string]models.BookingStatus{
		"received":  models.StatusReceived,
		"new":       models.StatusReceived,
		"assigned":  models.StatusAssigned,
		"approved":  models.StatusAssigned,
		"scheduled": models.StatusAssigned,
		"completed": models.StatusCompleted,
		"canceled":  models.StatusCanceled,
		"cancelled": models.StatusCanceled,
		"Completed": models.StatusCompleted,
	}
	for in, want := range cases {
		got, ok := models.NormalizeStatus(in)
		assert.Truef(t, ok, "normalize %q", in)
		assert.Equal(t, want, got)
	}

	_, ok := models.NormalizeStatus("archived")
	assert.False(t, ok)
}
