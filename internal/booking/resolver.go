package booking

import (
	"context"
	"fmt"

	"github.com/marieteam/ferry-reservation/internal/model"
)

// Availability is the result of resolving one sailing: static and
// remaining capacity per class, the tariff period active on the
// sailing's date and the unit price of every category within it.
type Availability struct {
	Sailing model.Sailing

	// Capacity and Booked are keyed by class; Booked is recomputed
	// from the reservation lines on every resolve and summed in
	// uint64 so persisted line quantities cannot wrap it.
	Capacity map[Class]uint32
	Booked   map[Class]uint64

	// Remaining is Capacity - Booked per class.  It is not clamped:
	// an overbooked sailing yields a negative value and the recorder
	// decides what to do with it.
	Remaining map[Class]int64

	Period model.TariffPeriod

	// Prices holds the unit price in cents for each of the seven
	// categories.
	Prices map[Category]uint32
}

// Resolver computes availability and pricing for sailings.  It holds
// no state beyond the store it reads from; every call recomputes the
// booked figures from the reservation lines.
type Resolver struct {
	store Store
}

// NewResolver returns a Resolver reading from the given store.
func NewResolver(store Store) *Resolver {
	if store == nil {
		panic("nil store passed to NewResolver")
	}
	return &Resolver{store: store}
}

// Resolve computes the availability of one sailing.  It returns
// ErrSailingNotFound when the trajet row is absent, ErrInvalidCategory
// when a persisted line carries a category outside 1..7, and
// ErrDataIntegrity (wrapped with detail) when a capacity row or tariff
// line is missing or the sailing date is covered by zero or several
// tariff periods.
func (r *Resolver) Resolve(ctx context.Context, sailingNum uint64) (*Availability, error) {
	return resolve(ctx, r.store, sailingNum)
}

// resolve is shared with the recorder, which runs it against a
// transaction-scoped store so the read and the subsequent writes see
// a consistent inventory.
func resolve(ctx context.Context, store Store, sailingNum uint64) (*Availability, error) {
	sailing, err := store.Sailing(ctx, sailingNum)
	if err != nil {
		return nil, err
	}

	capacity, err := store.CapacityByClass(ctx, sailing.BoatID)
	if err != nil {
		return nil, err
	}
	for _, class := range Classes {
		if _, ok := capacity[class]; !ok {
			return nil, fmt.Errorf("%w: boat %d has no capacity row for place %s",
				ErrDataIntegrity, sailing.BoatID, class.PlaceCode())
		}
	}

	lines, err := store.BookedLines(ctx, sailingNum)
	if err != nil {
		return nil, err
	}
	booked := map[Class]uint64{ClassPassenger: 0, ClassSmallVehicle: 0, ClassLargeVehicle: 0}
	for _, line := range lines {
		class, err := Category(line.Category).Class()
		if err != nil {
			return nil, fmt.Errorf("%w: reservation %s line has category %d",
				ErrInvalidCategory, line.ReservationNum, line.Category)
		}
		booked[class] += uint64(line.Quantity)
	}

	remaining := make(map[Class]int64, len(Classes))
	for _, class := range Classes {
		remaining[class] = int64(capacity[class]) - int64(booked[class])
	}

	periods, err := store.PeriodsCovering(ctx, sailing.Date)
	if err != nil {
		return nil, err
	}
	if len(periods) != 1 {
		return nil, fmt.Errorf("%w: %d tariff periods cover %s",
			ErrDataIntegrity, len(periods), sailing.Date.Format("2006-01-02"))
	}
	period := periods[0]

	prices := make(map[Category]uint32, int(CategoryMax))
	for cat := CategoryMin; cat <= CategoryMax; cat++ {
		cents, ok, err := store.UnitPrice(ctx, sailing.LiaisonCode, cat, period.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: no tariff line for liaison %d category %d period %d",
				ErrDataIntegrity, sailing.LiaisonCode, cat, period.ID)
		}
		prices[cat] = cents
	}

	return &Availability{
		Sailing:   *sailing,
		Capacity:  capacity,
		Booked:    booked,
		Remaining: remaining,
		Period:    period,
		Prices:    prices,
	}, nil
}
