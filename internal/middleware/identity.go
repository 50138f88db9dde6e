package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// requesterID builds a cache and rate-limit key component for the
// current request: the authenticated account id when present,
// otherwise "guest".
func requesterID(c echo.Context) string {
	if v := c.Get("user_id"); v != nil {
		return fmt.Sprintf("%v", v)
	}
	return "guest"
}
