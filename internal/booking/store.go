package booking

import (
	"context"
	"time"

	"github.com/marieteam/ferry-reservation/internal/model"
)

// Store is the persistence surface the resolver and recorder need.
// The production implementation lives in the repository package; tests
// use an in-memory fake.
//
// Implementations must return ErrSailingNotFound from Sailing when no
// trajet row exists, and report a missing tariff line through the ok
// flag of UnitPrice rather than an error.
type Store interface {
	// Sailing fetches one trajet row with its boat name joined in.
	// Inside a transaction the row is locked until commit so that
	// concurrent submissions for the same sailing serialize.
	Sailing(ctx context.Context, num uint64) (*model.Sailing, error)

	// CapacityByClass returns the contenir rows of a boat keyed by
	// class.  A boat with complete reference data has all three.
	CapacityByClass(ctx context.Context, boatID uint64) (map[Class]uint32, error)

	// BookedLines returns every enregistrer row attached to any
	// reservation of the sailing.  The sum of these rows is the
	// authoritative booked figure; no counter is kept anywhere.
	BookedLines(ctx context.Context, sailingNum uint64) ([]model.ReservationLine, error)

	// PeriodsCovering returns all tariff periods whose [start, end]
	// range contains the date.
	PeriodsCovering(ctx context.Context, date time.Time) ([]model.TariffPeriod, error)

	// UnitPrice returns the tarifer price in cents for one category
	// of one liaison within one period; ok is false when no line
	// exists.
	UnitPrice(ctx context.Context, liaisonCode uint64, cat Category, periodID uint64) (cents uint32, ok bool, err error)

	// LiaisonPorts returns the departure and arrival port names of a
	// liaison.
	LiaisonPorts(ctx context.Context, liaisonCode uint64) (departure, arrival string, err error)

	// CreateReservation inserts the reservation header row.
	CreateReservation(ctx context.Context, res *model.Reservation) error

	// CreateLines bulk-inserts the enregistrer rows of a reservation.
	CreateLines(ctx context.Context, lines []model.ReservationLine) error
}

// TxStore is a Store that can additionally run a function inside a
// single database transaction.  The Store handed to fn is scoped to
// that transaction; the transaction commits when fn returns nil and
// rolls back otherwise.
type TxStore interface {
	Store
	InTx(ctx context.Context, fn func(Store) error) error
}
