package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/marieteam/ferry-reservation/internal/booking"
	"github.com/marieteam/ferry-reservation/internal/queue"
	"github.com/marieteam/ferry-reservation/internal/repository"
	queue_publisher "github.com/marieteam/ferry-reservation/internal/service"
)

// ReservationRecorder is implemented by booking.Recorder.  Handlers
// depend on the interface so tests can substitute a mock.
type ReservationRecorder interface {
	Submit(ctx context.Context, req booking.Request) (*booking.Confirmation, error)
}

// ReservationHandler serves reservation submission and the customer's
// own reservation pages.
type ReservationHandler struct {
	Recorder     ReservationRecorder
	Reservations *repository.ReservationRepo

	// PublishEvents enables best-effort publication of confirmation
	// events to the broker.
	PublishEvents bool
}

func NewReservationHandler(rec ReservationRecorder, repo *repository.ReservationRepo, publish bool) *ReservationHandler {
	if rec == nil || repo == nil {
		panic("nil dependency passed to NewReservationHandler")
	}
	return &ReservationHandler{Recorder: rec, Reservations: repo, PublishEvents: publish}
}

type reservationLineReq struct {
	Category uint8  `json:"category"`
	Quantity uint32 `json:"quantity"`
}

type createReservationReq struct {
	SailingNum uint64               `json:"sailing_num"`
	HolderName string               `json:"holder_name"`
	Address    string               `json:"address"`
	PostalCode string               `json:"postal_code"`
	City       string               `json:"city"`
	Lines      []reservationLineReq `json:"lines"`
}

// Create records a reservation.  Quantities are re-checked against
// live capacity inside the recorder's transaction; a class overrun
// comes back as 409 with the limiting class and its remaining places.
func (h *ReservationHandler) Create(c echo.Context) error {
	uid, ok := currentAccountID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.HolderName = strings.TrimSpace(req.HolderName)
	req.Address = strings.TrimSpace(req.Address)
	req.PostalCode = strings.TrimSpace(req.PostalCode)
	req.City = strings.TrimSpace(req.City)
	if req.SailingNum == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "sailing_num required"})
	}
	if req.HolderName == "" || req.Address == "" || req.PostalCode == "" || req.City == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "holder_name, address, postal_code and city are required"})
	}

	quantities := make(map[booking.Category]uint32, len(req.Lines))
	for _, ln := range req.Lines {
		quantities[booking.Category(ln.Category)] += ln.Quantity
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	conf, err := h.Recorder.Submit(ctx, booking.Request{
		SailingNum: req.SailingNum,
		AccountID:  uid,
		HolderName: req.HolderName,
		Address:    req.Address,
		PostalCode: req.PostalCode,
		City:       req.City,
		Quantities: quantities,
	})
	if err != nil {
		var capErr *booking.CapacityError
		switch {
		case errors.Is(err, booking.ErrSailingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "sailing not found"})
		case errors.Is(err, booking.ErrInvalidCategory):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category"})
		case errors.Is(err, booking.ErrEmptyRequest):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "at least one quantity must be positive"})
		case errors.As(err, &capErr):
			return c.JSON(http.StatusConflict, echo.Map{
				"error":      "not enough places",
				"place_code": capErr.Class.PlaceCode(),
				"class":      capErr.Class.String(),
				"requested":  capErr.Requested,
				"remaining":  capErr.Remaining,
			})
		case errors.Is(err, booking.ErrDataIntegrity):
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "inconsistent reference data"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reservation failed"})
		}
	}

	if h.PublishEvents {
		go publishConfirmation(uid, conf)
	}

	return c.JSON(http.StatusCreated, conf)
}

// publishConfirmation sends the confirmation event to the broker.
// Failures are logged inside the publisher and otherwise ignored; the
// reservation is already committed.
func publishConfirmation(accountID uint64, conf *booking.Confirmation) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	quantities := make(map[string]uint32, len(conf.Lines))
	for _, ln := range conf.Lines {
		quantities[ln.Label] = ln.Quantity
	}
	_ = queue_publisher.PublishReservationConfirmed(ctx, queue.ReservationConfirmedEvent{
		ReservationNum: conf.ReservationNum,
		AccountID:      accountID,
		SailingNum:     conf.SailingNum,
		DeparturePort:  conf.DeparturePort,
		ArrivalPort:    conf.ArrivalPort,
		Date:           conf.Date,
		Departure:      conf.Departure,
		Quantities:     quantities,
		TotalCents:     conf.TotalCents,
		ConfirmedAt:    time.Now().UTC().Format(time.RFC3339),
	})
}

// ListMine returns every reservation of the authenticated account,
// newest first.
func (h *ReservationHandler) ListMine(c echo.Context) error {
	uid, ok := currentAccountID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.Reservations.ListByAccount(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetMine returns one reservation of the authenticated account.
// A reservation belonging to another account reads as absent.
func (h *ReservationHandler) GetMine(c echo.Context) error {
	uid, ok := currentAccountID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	num := strings.TrimSpace(c.Param("num"))
	if num == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation number"})
	}
	d, err := h.Reservations.GetByNumForAccount(c.Request().Context(), num, uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, d)
}
