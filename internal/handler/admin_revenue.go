package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type revenuePoint struct {
	Day   string `json:"day"`
	Cents uint64 `json:"cents"`
}

// Revenue returns booked revenue per day over [from, to], inclusive.
// Days without reservations are filled with zero so the series charts
// without gaps.  The range is capped at one year.
func (h *AdminHandler) Revenue(c echo.Context) error {
	fromStr := c.QueryParam("from")
	toStr := c.QueryParam("to")
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "from must be YYYY-MM-DD"})
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "to must be YYYY-MM-DD"})
	}
	if to.Before(from) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "to must not precede from"})
	}
	if to.Sub(from) > 366*24*time.Hour {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "range too large"})
	}

	rows, err := h.Reservations.RevenueBetween(c.Request().Context(), from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	byDay := make(map[string]uint64, len(rows))
	for _, r := range rows {
		byDay[r.Day] = r.Cents
	}
	var series []revenuePoint
	var total uint64
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		cents := byDay[key]
		total += cents
		series = append(series, revenuePoint{Day: key, Cents: cents})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"from":        from.Format("2006-01-02"),
		"to":          to.Format("2006-01-02"),
		"total_cents": total,
		"days":        series,
	})
}
