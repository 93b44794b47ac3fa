package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gbclean/config"
	"gbclean/middleware"
	"gbclean/models"
	"gbclean/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingService records calls so tests can assert the authorization
// gate rejects requests before any operation runs.
type fakeBookingService struct {
	listCalls   int
	updateCalls int
	createCalls int

	createErr error
	updateErr error
}

func (f *fakeBookingService) CreateBooking(input *models.CreateBookingInput) (*models.Booking, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Booking{ID: "b-1", Phone: input.Phone, Status: models.StatusReceived}, nil
}

func (f *fakeBookingService) ListBookings(filter booking.ListFilter) ([]models.Booking, error) {
	f.listCalls++
	return []models.Booking{}, nil
}

func (f *fakeBookingService) UpdateBooking(id string, patch *models.BookingPatch) (*models.Booking, error) {
	f.updateCalls++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &models.Booking{ID: id, Status: models.StatusAssigned}, nil
}

func newTestRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true

	hb := &HandlerBundle{
		Booking: NewBookingHandler(svc),
		Admin:   NewAdminHandler(svc),
	}
	r.POST("/api/bookings", hb.Booking.CreateBookingHandler)

	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.AdminAuthMiddleware())
	adminGroup.GET("/bookings", hb.Admin.ListBookingsHandler)
	adminGroup.PATCH("/bookings", hb.Admin.UpdateBookingHandler)
	return r
}

func TestAdminRoutesRejectMissingToken(t *testing.T) {
	config.AppConfig.AdminToken = "sekret"
	svc := &fakeBookingService{}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, "/api/admin/bookings", strings.NewReader(`{"id":"b-1","status":"assigned"}`))
	req.Header.Set("X-Admin-Token", "wrong")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	assert.Zero(t, svc.listCalls, "rejected requests must not reach the service")
	assert.Zero(t, svc.updateCalls)
}

func TestAdminRoutesRejectWhenTokenUnset(t *testing.T) {
	config.AppConfig.AdminToken = ""
	svc := &fakeBookingService{}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
	req.Header.Set("X-Admin-Token", "")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, svc.listCalls)
}

func TestAdminListWithCorrectToken(t *testing.T) {
	config.AppConfig.AdminToken = "sekret"
	svc := &fakeBookingService{}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings?status=received&q=maria", nil)
	req.Header.Set("X-Admin-Token", "sekret")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.listCalls)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestAdminUpdateErrorMapping(t *testing.T) {
	config.AppConfig.AdminToken = "sekret"

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", &booking.NotFoundError{ID: "b-9"}, http.StatusNotFound},
		{"empty patch", booking.ErrNoFields, http.StatusBadRequest},
		{"bad transition", &booking.InvalidTransitionError{From: models.StatusReceived, To: "completed"}, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeBookingService{updateErr: tc.err}
			router := newTestRouter(svc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPatch, "/api/admin/bookings", strings.NewReader(`{"id":"b-9","status":"completed"}`))
			req.Header.Set("X-Admin-Token", "sekret")
			router.ServeHTTP(w, req)
			require.Equal(t, tc.code, w.Code)
		})
	}
}
