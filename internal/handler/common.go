package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// currentAccountID extracts the account id that the JWT middleware
// stored in the context.  The second return is false when the value is
// missing or not numeric.
func currentAccountID(c echo.Context) (uint64, bool) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, true
	case int:
		return uint64(t), true
	case int64:
		return uint64(t), true
	case float64:
		return uint64(t), true
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}
