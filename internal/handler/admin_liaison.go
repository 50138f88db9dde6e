package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/marieteam/ferry-reservation/internal/model"
	"github.com/marieteam/ferry-reservation/internal/repository"
)

// AdminHandler bundles the repositories behind the administration
// endpoints: liaison management and the revenue report.
type AdminHandler struct {
	Liaisons     *repository.LiaisonRepo
	Reservations *repository.ReservationRepo
}

func NewAdminHandler(liaisons *repository.LiaisonRepo, reservations *repository.ReservationRepo) *AdminHandler {
	if liaisons == nil || reservations == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{Liaisons: liaisons, Reservations: reservations}
}

type liaisonReq struct {
	SectorID    uint64  `json:"sector_id"`
	DepartureID uint64  `json:"departure_id"`
	ArrivalID   uint64  `json:"arrival_id"`
	Distance    float64 `json:"distance"`
}

func (r liaisonReq) validate() string {
	if r.SectorID == 0 || r.DepartureID == 0 || r.ArrivalID == 0 {
		return "sector_id, departure_id and arrival_id are required"
	}
	if r.DepartureID == r.ArrivalID {
		return "departure and arrival must differ"
	}
	if r.Distance <= 0 {
		return "distance must be positive"
	}
	return ""
}

// ListLiaisons returns every liaison with sector and port names.
func (h *AdminHandler) ListLiaisons(c echo.Context) error {
	items, err := h.Liaisons.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetLiaison returns one liaison by code.
func (h *AdminHandler) GetLiaison(c echo.Context) error {
	code, err := strconv.ParseUint(c.Param("code"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid code"})
	}
	d, err := h.Liaisons.GetByCode(c.Request().Context(), code)
	if err != nil {
		if errors.Is(err, repository.ErrLiaisonNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "liaison not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, d)
}

// CreateLiaison adds a liaison.  The (sector, departure, arrival)
// triple must be unique.
func (h *AdminHandler) CreateLiaison(c echo.Context) error {
	var req liaisonReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	l := model.Liaison{
		SectorID:    req.SectorID,
		DepartureID: req.DepartureID,
		ArrivalID:   req.ArrivalID,
		Distance:    req.Distance,
	}
	code, err := h.Liaisons.Create(c.Request().Context(), &l)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "liaison already exists for these ports"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"code":         code,
		"sector_id":    l.SectorID,
		"departure_id": l.DepartureID,
		"arrival_id":   l.ArrivalID,
		"distance":     l.Distance,
	})
}

// UpdateLiaison rewrites a liaison.
func (h *AdminHandler) UpdateLiaison(c echo.Context) error {
	code, err := strconv.ParseUint(c.Param("code"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid code"})
	}
	var req liaisonReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	l := model.Liaison{
		Code:        code,
		SectorID:    req.SectorID,
		DepartureID: req.DepartureID,
		ArrivalID:   req.ArrivalID,
		Distance:    req.Distance,
	}
	if err := h.Liaisons.Update(c.Request().Context(), &l); err != nil {
		switch {
		case errors.Is(err, repository.ErrLiaisonNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "liaison not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "liaison already exists for these ports"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"code":         code,
		"sector_id":    l.SectorID,
		"departure_id": l.DepartureID,
		"arrival_id":   l.ArrivalID,
		"distance":     l.Distance,
	})
}

// DeleteLiaison removes a liaison that no sailing references.
func (h *AdminHandler) DeleteLiaison(c echo.Context) error {
	code, err := strconv.ParseUint(c.Param("code"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid code"})
	}
	if err := h.Liaisons.Delete(c.Request().Context(), code); err != nil {
		switch {
		case errors.Is(err, repository.ErrLiaisonNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "liaison not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "liaison still has sailings"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}
