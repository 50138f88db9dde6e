// This file defines handlers for the public browsing API: ports,
// sailing search and per-sailing availability.  These routes serve
// unauthenticated users; booking itself requires an account.

package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/marieteam/ferry-reservation/internal/booking"
	"github.com/marieteam/ferry-reservation/internal/repository"
)

// AvailabilityResolver is implemented by booking.Resolver.  Handlers
// depend on the interface so tests can substitute a fake.
type AvailabilityResolver interface {
	Resolve(ctx context.Context, sailingNum uint64) (*booking.Availability, error)
}

// PublicHandler aggregates the repositories needed for unauthenticated
// browsing.
type PublicHandler struct {
	Ports    *repository.PortRepo
	Liaisons *repository.LiaisonRepo
	Sailings *repository.SailingRepo
	Resolver AvailabilityResolver
}

// publicPort is a port exposed via the public API.
type publicPort struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// classPart is the availability of one place class on a sailing.
// Remaining may be negative when the sailing is overbooked.
type classPart struct {
	PlaceCode string `json:"place_code"`
	Class     string `json:"class"`
	Capacity  uint32 `json:"capacity"`
	Booked    uint64 `json:"booked"`
	Remaining int64  `json:"remaining"`
}

// pricePart is the unit price of one category on a sailing.
type pricePart struct {
	Category   uint8  `json:"category"`
	Label      string `json:"label"`
	PriceCents uint32 `json:"price_cents"`
}

// sailingPart is one search result: the crossing plus its live
// availability and price list.
type sailingPart struct {
	Num           uint64      `json:"num"`
	DeparturePort string      `json:"departure_port"`
	ArrivalPort   string      `json:"arrival_port"`
	BoatName      string      `json:"boat_name"`
	Date          string      `json:"date"`
	Departure     string      `json:"departure"`
	Arrival       string      `json:"arrival"`
	Crossing      string      `json:"crossing,omitempty"`
	Availability  []classPart `json:"availability"`
	Prices        []pricePart `json:"prices"`
}

// ListPorts returns every port, for the search form.
func (h *PublicHandler) ListPorts(c echo.Context) error {
	ports, err := h.Ports.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]publicPort, 0, len(ports))
	for _, p := range ports {
		out = append(out, publicPort{ID: p.ID, Name: p.Name})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// ListSectors returns the sectors liaisons are grouped under.
func (h *PublicHandler) ListSectors(c echo.Context) error {
	sectors, err := h.Ports.ListSectors(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": sectors})
}

// SearchSailings finds the sailings between two named ports on a date.
// Query parameters: departure, arrival (port names, matched loosely)
// and date (YYYY-MM-DD).  Each result carries live availability, so a
// sailing with a broken tariff or capacity setup is skipped rather
// than failing the whole search.
func (h *PublicHandler) SearchSailings(c echo.Context) error {
	departure := strings.TrimSpace(c.QueryParam("departure"))
	arrival := strings.TrimSpace(c.QueryParam("arrival"))
	dateStr := strings.TrimSpace(c.QueryParam("date"))
	if departure == "" || arrival == "" || dateStr == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "departure, arrival and date are required"})
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}

	ctx := c.Request().Context()

	from, err := h.Ports.FindByName(ctx, departure)
	if err != nil {
		if errors.Is(err, repository.ErrPortNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "departure port not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	to, err := h.Ports.FindByName(ctx, arrival)
	if err != nil {
		if errors.Is(err, repository.ErrPortNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "arrival port not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	liaisonCode, err := h.Liaisons.FindByPorts(ctx, from.ID, to.ID)
	if err != nil {
		if errors.Is(err, repository.ErrLiaisonNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no liaison between these ports"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	sailings, err := h.Sailings.ListByLiaisonAndDate(ctx, liaisonCode, date.Format("2006-01-02"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	items := make([]sailingPart, 0, len(sailings))
	for _, s := range sailings {
		av, err := h.Resolver.Resolve(ctx, s.Num)
		if err != nil {
			if errors.Is(err, booking.ErrDataIntegrity) || errors.Is(err, booking.ErrInvalidCategory) {
				continue
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		items = append(items, sailingResponse(from.Name, to.Name, av))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetSailing returns one sailing with its availability and prices.
func (h *PublicHandler) GetSailing(c echo.Context) error {
	num, err := strconv.ParseUint(c.Param("num"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid sailing number"})
	}
	ctx := c.Request().Context()

	av, err := h.Resolver.Resolve(ctx, num)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSailingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "sailing not found"})
		case errors.Is(err, booking.ErrDataIntegrity), errors.Is(err, booking.ErrInvalidCategory):
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "inconsistent reference data"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
	}

	liaison, err := h.Liaisons.GetByCode(ctx, av.Sailing.LiaisonCode)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, sailingResponse(liaison.DeparturePort, liaison.ArrivalPort, av))
}

func sailingResponse(departurePort, arrivalPort string, av *booking.Availability) sailingPart {
	out := sailingPart{
		Num:           av.Sailing.Num,
		DeparturePort: departurePort,
		ArrivalPort:   arrivalPort,
		BoatName:      av.Sailing.BoatName,
		Date:          booking.FormatDate(av.Sailing.Date),
		Departure:     booking.FormatTimeOfDay(av.Sailing.Departure),
		Arrival:       booking.FormatTimeOfDay(av.Sailing.Arrival),
		Crossing:      booking.FormatCrossing(av.Sailing.Departure, av.Sailing.Arrival),
	}
	for _, cl := range booking.Classes {
		out.Availability = append(out.Availability, classPart{
			PlaceCode: cl.PlaceCode(),
			Class:     cl.String(),
			Capacity:  av.Capacity[cl],
			Booked:    av.Booked[cl],
			Remaining: av.Remaining[cl],
		})
	}
	for cat := booking.CategoryMin; cat <= booking.CategoryMax; cat++ {
		out.Prices = append(out.Prices, pricePart{
			Category:   uint8(cat),
			Label:      cat.Label(),
			PriceCents: av.Prices[cat],
		})
	}
	return out
}
