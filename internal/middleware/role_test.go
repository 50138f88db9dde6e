package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name    string
		role    any
		allowed []string
		code    int
	}{
		{"admin allowed", "ADMIN", []string{"ADMIN"}, http.StatusOK},
		{"customer rejected on admin route", "CUSTOMER", []string{"ADMIN"}, http.StatusForbidden},
		{"either role accepted", "CUSTOMER", []string{"ADMIN", "CUSTOMER"}, http.StatusOK},
		{"missing role", nil, []string{"ADMIN"}, http.StatusForbidden},
		{"non-string role", 42, []string{"ADMIN"}, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.role != nil {
				c.Set("role", tt.role)
			}

			h := RequireRole(tt.allowed...)(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})
			require.NoError(t, h(c))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
