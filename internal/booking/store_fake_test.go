package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/marieteam/ferry-reservation/internal/model"
)

// fakeStore is an in-memory Store/TxStore used by the resolver and
// recorder tests.  InTx simply runs the function against the same
// store; transactional isolation is the repository's concern, not the
// core's.
type fakeStore struct {
	sailings     map[uint64]model.Sailing
	capacities   map[uint64]map[Class]uint32 // by boat ID
	lines        []model.ReservationLine
	lineSailing  map[string]uint64 // reservation num -> sailing num
	periods      []model.TariffPeriod
	prices       map[string]uint32 // "liaison/cat/period" -> cents
	ports        map[uint64][2]string
	reservations []model.Reservation

	failCreateLines bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sailings:    map[uint64]model.Sailing{},
		capacities:  map[uint64]map[Class]uint32{},
		lineSailing: map[string]uint64{},
		prices:      map[string]uint32{},
		ports:       map[uint64][2]string{},
	}
}

func priceKey(liaison uint64, cat Category, period uint64) string {
	return fmt.Sprintf("%d/%d/%d", liaison, cat, period)
}

func (f *fakeStore) Sailing(_ context.Context, num uint64) (*model.Sailing, error) {
	s, ok := f.sailings[num]
	if !ok {
		return nil, ErrSailingNotFound
	}
	return &s, nil
}

func (f *fakeStore) CapacityByClass(_ context.Context, boatID uint64) (map[Class]uint32, error) {
	out := map[Class]uint32{}
	for class, c := range f.capacities[boatID] {
		out[class] = c
	}
	return out, nil
}

func (f *fakeStore) BookedLines(_ context.Context, sailingNum uint64) ([]model.ReservationLine, error) {
	var out []model.ReservationLine
	for _, l := range f.lines {
		if f.lineSailing[l.ReservationNum] == sailingNum {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeStore) PeriodsCovering(_ context.Context, date time.Time) ([]model.TariffPeriod, error) {
	var out []model.TariffPeriod
	for _, p := range f.periods {
		if !date.Before(p.Start) && !date.After(p.End) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) UnitPrice(_ context.Context, liaison uint64, cat Category, period uint64) (uint32, bool, error) {
	cents, ok := f.prices[priceKey(liaison, cat, period)]
	return cents, ok, nil
}

func (f *fakeStore) LiaisonPorts(_ context.Context, liaison uint64) (string, string, error) {
	p := f.ports[liaison]
	return p[0], p[1], nil
}

func (f *fakeStore) CreateReservation(_ context.Context, res *model.Reservation) error {
	f.reservations = append(f.reservations, *res)
	f.lineSailing[res.Num] = res.SailingNum
	return nil
}

func (f *fakeStore) CreateLines(_ context.Context, lines []model.ReservationLine) error {
	if f.failCreateLines {
		return fmt.Errorf("injected line insert failure")
	}
	f.lines = append(f.lines, lines...)
	return nil
}

func (f *fakeStore) InTx(_ context.Context, fn func(Store) error) error {
	return fn(f)
}

// seedSailing installs a complete sailing: boat 1 on liaison 10,
// capacities per class, one tariff period covering the date and a
// full price list.
func (f *fakeStore) seedSailing(num uint64, passenger, small, large uint32) {
	date := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)
	f.sailings[num] = model.Sailing{
		Num:         num,
		LiaisonCode: 10,
		BoatID:      1,
		BoatName:    "Vindilis",
		Date:        date,
		Departure:   "09:30:00",
		Arrival:     "10:15:00",
	}
	f.capacities[1] = map[Class]uint32{
		ClassPassenger:    passenger,
		ClassSmallVehicle: small,
		ClassLargeVehicle: large,
	}
	f.periods = []model.TariffPeriod{{
		ID:    3,
		Start: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
	}}
	for cat := CategoryMin; cat <= CategoryMax; cat++ {
		f.prices[priceKey(10, cat, 3)] = 1000 * uint32(cat) // 10, 20, ... 70 euros
	}
	f.ports[10] = [2]string{"Quiberon", "Le Palais"}
}

// seedBooking records an existing reservation with the given line
// quantities so resolve sees them as already booked.
func (f *fakeStore) seedBooking(num string, sailingNum uint64, quantities map[Category]uint32) {
	f.lineSailing[num] = sailingNum
	for cat, qty := range quantities {
		f.lines = append(f.lines, model.ReservationLine{
			ReservationNum: num,
			Category:       uint8(cat),
			Quantity:       qty,
		})
	}
}
