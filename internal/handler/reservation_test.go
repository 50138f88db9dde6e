package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marieteam/ferry-reservation/internal/booking"
	"github.com/marieteam/ferry-reservation/internal/repository"
)

// fakeRecorder returns a canned confirmation or error and captures
// the request it was given.
type fakeRecorder struct {
	conf *booking.Confirmation
	err  error
	got  booking.Request
}

func (f *fakeRecorder) Submit(_ context.Context, req booking.Request) (*booking.Confirmation, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.conf, nil
}

func newCreateContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/reservations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint64(7))
	return c, rec
}

const validBody = `{
	"sailing_num": 42,
	"holder_name": "Camille Le Goff",
	"address": "3 quai Bonnelle",
	"postal_code": "56360",
	"city": "Le Palais",
	"lines": [{"category":1,"quantity":2},{"category":4,"quantity":1}]
}`

func TestCreateReservationSuccess(t *testing.T) {
	conf := &booking.Confirmation{
		ReservationNum: "0f8a8f5e-3a3e-4a57-9d05-2f6b8f6f8a10",
		SailingNum:     42,
		DeparturePort:  "Quiberon",
		ArrivalPort:    "Le Palais",
		Date:           "14/07/2025",
		TotalCents:     9000,
	}
	rec := &fakeRecorder{conf: conf}
	h := NewReservationHandler(rec, &repository.ReservationRepo{}, false)

	c, w := newCreateContext(t, validBody)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, w.Code)

	var got booking.Confirmation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, conf.ReservationNum, got.ReservationNum)
	assert.Equal(t, uint64(9000), got.TotalCents)

	assert.Equal(t, uint64(7), rec.got.AccountID)
	assert.Equal(t, uint64(42), rec.got.SailingNum)
	assert.Equal(t, uint32(2), rec.got.Quantities[booking.CategoryAdult])
	assert.Equal(t, uint32(1), rec.got.Quantities[booking.CategoryCar])
}

func TestCreateReservationValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing sailing", `{"holder_name":"a","address":"b","postal_code":"c","city":"d"}`},
		{"missing holder", `{"sailing_num":42,"address":"b","postal_code":"c","city":"d"}`},
		{"blank address", `{"sailing_num":42,"holder_name":"a","address":"  ","postal_code":"c","city":"d"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewReservationHandler(&fakeRecorder{}, &repository.ReservationRepo{}, false)
			c, w := newCreateContext(t, tt.body)
			require.NoError(t, h.Create(c))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateReservationErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"sailing not found", booking.ErrSailingNotFound, http.StatusNotFound},
		{"empty request", booking.ErrEmptyRequest, http.StatusBadRequest},
		{"invalid category", booking.ErrInvalidCategory, http.StatusBadRequest},
		{"data integrity", booking.ErrDataIntegrity, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewReservationHandler(&fakeRecorder{err: tt.err}, &repository.ReservationRepo{}, false)
			c, w := newCreateContext(t, validBody)
			require.NoError(t, h.Create(c))
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestCreateReservationCapacityConflict(t *testing.T) {
	capErr := &booking.CapacityError{Class: booking.ClassPassenger, Requested: 6, Remaining: 2}
	h := NewReservationHandler(&fakeRecorder{err: capErr}, &repository.ReservationRepo{}, false)

	c, w := newCreateContext(t, validBody)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusConflict, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "A", resp["place_code"])
	assert.Equal(t, float64(6), resp["requested"])
	assert.Equal(t, float64(2), resp["remaining"])
}

func TestCreateReservationUnauthenticated(t *testing.T) {
	h := NewReservationHandler(&fakeRecorder{}, &repository.ReservationRepo{}, false)
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/reservations", strings.NewReader(validBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	c := e.NewContext(req, w)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
