package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gbclean/models"
	"gbclean/services/booking"
	"gbclean/services/quote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingHandlerReturnsRecord(t *testing.T) {
	svc := &fakeBookingService{}
	router := newTestRouter(svc)

	body := `{"name":"Dana","phone":"206-555-0142","frequency":"biweekly","sqft":"1-999","bedrooms":2,"bathrooms":1,"extras":{"inside_oven":true},"totalCents":1}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.StatusReceived, got.Status)
	assert.Equal(t, 1, svc.createCalls)
}

func TestCreateBookingHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"missing phone", &booking.ValidationError{Field: "phone", Reason: "is required"}, http.StatusBadRequest},
		{"unknown extra", &quote.InvalidOptionError{Field: "extras", Key: "chimney_sweep"}, http.StatusBadRequest},
		{"bad bathrooms", &quote.InvalidValueError{Field: "bathrooms", Reason: "must be a multiple of 0.5"}, http.StatusBadRequest},
		{"duplicate", &booking.DuplicateError{Phone: "206-555-0142"}, http.StatusTooManyRequests},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeBookingService{createErr: tc.err}
			router := newTestRouter(svc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"phone":"206-555-0142"}`))
			router.ServeHTTP(w, req)
			require.Equal(t, tc.code, w.Code)
		})
	}
}

func TestCreateBookingHandlerRejectsOtherVerbs(t *testing.T) {
	svc := &fakeBookingService{}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/bookings", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Zero(t, svc.createCalls)
}

func TestCreateBookingHandlerRejectsMalformedJSON(t *testing.T) {
	svc := &fakeBookingService{}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"phone":`))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.createCalls)
}
