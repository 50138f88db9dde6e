package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marieteam/ferry-reservation/internal/booking"
)

type fakeResolver struct {
	av  *booking.Availability
	err error
}

func (f *fakeResolver) Resolve(_ context.Context, _ uint64) (*booking.Availability, error) {
	return f.av, f.err
}

func TestGetSailingErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", booking.ErrSailingNotFound, http.StatusNotFound},
		{"broken tariffs", fmt.Errorf("%w: no tariff period covers 2025-07-14", booking.ErrDataIntegrity), http.StatusInternalServerError},
		{"bad persisted line", booking.ErrInvalidCategory, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &PublicHandler{Resolver: &fakeResolver{err: tt.err}}
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/v1/sailings/42", nil)
			w := httptest.NewRecorder()
			c := e.NewContext(req, w)
			c.SetPath("/v1/sailings/:num")
			c.SetParamNames("num")
			c.SetParamValues("42")

			require.NoError(t, h.GetSailing(c))
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestGetSailingInvalidNum(t *testing.T) {
	h := &PublicHandler{Resolver: &fakeResolver{}}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/sailings/abc", nil)
	w := httptest.NewRecorder()
	c := e.NewContext(req, w)
	c.SetPath("/v1/sailings/:num")
	c.SetParamNames("num")
	c.SetParamValues("abc")

	require.NoError(t, h.GetSailing(c))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchSailingsRejectsBadParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"missing everything", ""},
		{"missing date", "departure=Quiberon&arrival=Le%20Palais"},
		{"malformed date", "departure=Quiberon&arrival=Le%20Palais&date=14/07/2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &PublicHandler{Resolver: &fakeResolver{}}
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/v1/sailings/search?"+tt.query, nil)
			w := httptest.NewRecorder()
			c := e.NewContext(req, w)

			require.NoError(t, h.SearchSailings(c))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSailingResponseShape(t *testing.T) {
	av := &booking.Availability{
		Capacity:  map[booking.Class]uint32{booking.ClassPassenger: 300, booking.ClassSmallVehicle: 40, booking.ClassLargeVehicle: 12},
		Booked:    map[booking.Class]uint64{booking.ClassPassenger: 120},
		Remaining: map[booking.Class]int64{booking.ClassPassenger: 180, booking.ClassSmallVehicle: 40, booking.ClassLargeVehicle: 12},
		Prices: map[booking.Category]uint32{
			booking.CategoryAdult: 1790, booking.CategoryJunior: 1190, booking.CategoryChild: 590,
			booking.CategoryCar: 7450, booking.CategoryVan: 9100,
			booking.CategoryMotorhome: 12300, booking.CategoryTruck: 15800,
		},
	}
	av.Sailing.Num = 42
	av.Sailing.BoatName = "Vindilis"
	av.Sailing.Departure = "09:30:00"
	av.Sailing.Arrival = "10:15:00"

	out := sailingResponse("Quiberon", "Le Palais", av)

	assert.Equal(t, "09h30", out.Departure)
	assert.Equal(t, "45m", out.Crossing)
	require.Len(t, out.Availability, 3)
	assert.Equal(t, "A", out.Availability[0].PlaceCode)
	assert.Equal(t, int64(180), out.Availability[0].Remaining)
	require.Len(t, out.Prices, 7)
	assert.Equal(t, "Adulte", out.Prices[0].Label)
	assert.Equal(t, uint32(1790), out.Prices[0].PriceCents)
	assert.Equal(t, "Camion", out.Prices[6].Label)
}
