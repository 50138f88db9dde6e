package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/marieteam/ferry-reservation/internal/model"
)

// Request is one reservation submission: who is booking which sailing
// and how many places of each category.
type Request struct {
	SailingNum uint64
	AccountID  uint64
	HolderName string
	Address    string
	PostalCode string
	City       string
	Quantities map[Category]uint32
}

// ConfirmationLine is one priced category of a confirmation.
type ConfirmationLine struct {
	Category   Category `json:"category"`
	Label      string   `json:"label"`
	Quantity   uint32   `json:"quantity"`
	UnitCents  uint32   `json:"unit_price_cents"`
	TotalCents uint64   `json:"line_total_cents"`
}

// Confirmation is the priced result of a successful submission.
type Confirmation struct {
	ReservationNum string             `json:"reservation_num"`
	SailingNum     uint64             `json:"sailing_num"`
	DeparturePort  string             `json:"departure_port"`
	ArrivalPort    string             `json:"arrival_port"`
	Date           string             `json:"date"`
	Departure      string             `json:"departure"`
	Arrival        string             `json:"arrival"`
	Lines          []ConfirmationLine `json:"lines"`
	TotalCents     uint64             `json:"total_cents"`
}

// Recorder validates and persists reservations.  Prices and remaining
// capacity are always re-derived inside the submission transaction;
// nothing the caller displayed earlier is trusted.
type Recorder struct {
	store TxStore
	now   func() time.Time
}

// NewRecorder returns a Recorder writing through the given store.
func NewRecorder(store TxStore) *Recorder {
	if store == nil {
		panic("nil store passed to NewRecorder")
	}
	return &Recorder{store: store, now: time.Now}
}

// Submit validates the request against current remaining capacity and
// persists the reservation header plus one line per non-zero category,
// all inside a single transaction with the sailing row locked.  Two
// concurrent submissions for the same sailing therefore serialize and
// the loser sees the winner's lines; overbooking through the classic
// check-then-act window is not possible.
//
// Failures: ErrInvalidCategory for a category outside 1..7,
// ErrEmptyRequest when every quantity is zero, ErrSailingNotFound,
// ErrDataIntegrity from resolution, and *CapacityError when a class
// would be overrun.
func (r *Recorder) Submit(ctx context.Context, req Request) (*Confirmation, error) {
	// Class totals are accumulated in uint64: seven uint32 quantities
	// cannot wrap there, so an absurd request fails the capacity check
	// instead of slipping past it.
	requested := map[Class]uint64{}
	total := uint64(0)
	for cat, qty := range req.Quantities {
		class, err := cat.Class()
		if err != nil {
			return nil, err
		}
		requested[class] += uint64(qty)
		total += uint64(qty)
	}
	if total == 0 {
		return nil, ErrEmptyRequest
	}

	var conf *Confirmation
	err := r.store.InTx(ctx, func(tx Store) error {
		av, err := resolve(ctx, tx, req.SailingNum)
		if err != nil {
			return err
		}

		for _, class := range Classes {
			want := requested[class]
			if want == 0 {
				continue
			}
			if av.Remaining[class] < 0 || want > uint64(av.Remaining[class]) {
				return &CapacityError{Class: class, Requested: want, Remaining: av.Remaining[class]}
			}
		}

		res := model.Reservation{
			Num:        uuid.NewString(),
			SailingNum: req.SailingNum,
			AccountID:  req.AccountID,
			HolderName: req.HolderName,
			Address:    req.Address,
			PostalCode: req.PostalCode,
			City:       req.City,
			CreatedAt:  r.now().UTC(),
		}
		if err := tx.CreateReservation(ctx, &res); err != nil {
			return err
		}

		lines := make([]model.ReservationLine, 0, len(req.Quantities))
		confLines := make([]ConfirmationLine, 0, len(req.Quantities))
		var totalCents uint64
		for cat := CategoryMin; cat <= CategoryMax; cat++ {
			qty := req.Quantities[cat]
			if qty == 0 {
				continue
			}
			lines = append(lines, model.ReservationLine{
				ReservationNum: res.Num,
				Category:       uint8(cat),
				Quantity:       qty,
			})
			lineTotal := uint64(av.Prices[cat]) * uint64(qty)
			totalCents += lineTotal
			confLines = append(confLines, ConfirmationLine{
				Category:   cat,
				Label:      cat.Label(),
				Quantity:   qty,
				UnitCents:  av.Prices[cat],
				TotalCents: lineTotal,
			})
		}
		if err := tx.CreateLines(ctx, lines); err != nil {
			return err
		}

		departure, arrival, err := tx.LiaisonPorts(ctx, av.Sailing.LiaisonCode)
		if err != nil {
			return err
		}
		conf = &Confirmation{
			ReservationNum: res.Num,
			SailingNum:     req.SailingNum,
			DeparturePort:  departure,
			ArrivalPort:    arrival,
			Date:           FormatDate(av.Sailing.Date),
			Departure:      FormatTimeOfDay(av.Sailing.Departure),
			Arrival:        FormatTimeOfDay(av.Sailing.Arrival),
			Lines:          confLines,
			TotalCents:     totalCents,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return conf, nil
}
