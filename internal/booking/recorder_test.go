package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitReq(quantities map[Category]uint32) Request {
	return Request{
		SailingNum: 42,
		AccountID:  7,
		HolderName: "Auxence Dupuis",
		Address:    "3 rue du Port",
		PostalCode: "56360",
		City:       "Le Palais",
		Quantities: quantities,
	}
}

func TestRecorder_RejectsEmptyRequest(t *testing.T) {
	store := newFakeStore()
	store.seedSailing(42, 100, 20, 8)

	_, err := NewRecorder(store).Submit(context.Background(), submitReq(map[Category]uint32{
		CategoryAdult: 0,
		CategoryCar:   0,
	}))
	assert.ErrorIs(t, err, ErrEmptyRequest)
	assert.Empty(t, store.reservations)
}

func TestRecorder_RejectsInvalidCategory(t *testing.T) {
	store := newFakeStore()
	store.seedSailing(42, 100, 20, 8)

	_, err := NewRecorder(store).Submit(context.Background(), submitReq(map[Category]uint32{
		Category(8): 1,
	}))
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestRecorder_PersistsOnlyNonZeroLines(t *testing.T) {
	store := newFakeStore()
	store.seedSailing(42, 100, 20, 8)

	conf, err := NewRecorder(store).Submit(context.Background(), submitReq(map[Category]uint32{
		CategoryAdult:  2,
		CategoryJunior: 0,
		CategoryChild:  0,
		CategoryCar:    1,
		CategoryVan:    0,
	}))
	require.NoError(t, err)

	require.Len(t, store.reservations, 1)
	require.Len(t, store.lines, 2)
	assert.Equal(t, uint8(CategoryAdult), store.lines[0].Category)
	assert.Equal(t, uint32(2), store.lines[0].Quantity)
	assert.Equal(t, uint8(CategoryCar), store.lines[1].Category)
	assert.Equal(t, uint32(1), store.lines[1].Quantity)

	assert.NotEmpty(t, conf.ReservationNum)
	assert.Equal(t, store.reservations[0].Num, conf.ReservationNum)
}

func TestRecorder_TotalIsDerivedFromResolvedPrices(t *testing.T) {
	store := newFakeStore()
	store.seedSailing(42, 100, 20, 8)

	conf, err := NewRecorder(store).Submit(context.Background(), submitReq(map[Category]uint32{
		CategoryAdult: 2, // 2 x 10.00
		CategoryChild: 1, // 1 x 30.00
		CategoryCar:   1, // 1 x 40.00
	}))
	require.NoError(t, err)

	require.Len(t, conf.Lines, 3)
	assert.Equal(t, "Adulte", conf.Lines[0].Label)
	assert.Equal(t, uint64(2000), conf.Lines[0].TotalCents)
	assert.Equal(t, uint64(9000), conf.TotalCents)

	assert.Equal(t, "Quiberon", conf.DeparturePort)
	assert.Equal(t, "Le Palais", conf.ArrivalPort)
	assert.Equal(t, "14/07/2025", conf.Date)
	assert.Equal(t, "09h30", conf.Departure)
	assert.Equal(t, "10h15", conf.Arrival)
}

func TestRecorder_CapacityBoundary(t *testing.T) {
	// Passenger capacity 100 with 95 already booked: a request for
	// exactly the 5 remaining places succeeds, one more fails.
	store := newFakeStore()
	store.seedSailing(42, 100, 20, 8)
	store.seedBooking("prior", 42, map[Category]uint32{CategoryAdult: 95})

	recorder := NewRecorder(store)
	conf, err := recorder.Submit(context.Background(), submitReq(map[Category]uint32{
		CategoryAdult:  3,
		CategoryJunior: 2,
	}))
	require.NoError(t, err)
	assert.NotNil(t, conf)

	_, err = recorder.Submit(context.Background(), submitReq(map[Category]uint32{
		CategoryAdult:  4,
		CategoryJunior: 2,
	}))
	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, ClassPassenger, capErr.Class)
	assert.Equal(t, uint64(6), capErr.Requested)
	assert.Equal(t, int64(0), capErr.Remaining)
}

func TestRecorder_HugeQuantitiesCannotWrapCapacityCheck(t *testing.T) {
	// Two quantities of 2^31 sum to zero in 32-bit arithmetic, which
	// would sail past both the empty-request guard and the capacity
	// check. The class total must reject them instead.
	store := newFakeStore()
	store.seedSailing(42, 100, 20, 8)

	_, err := NewRecorder(store).Submit(context.Background(), submitReq(map[Category]uint32{
		CategoryAdult:  1 << 31,
		CategoryJunior: 1 << 31,
		CategoryChild:  5,
	}))
	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, ClassPassenger, capErr.Class)
	assert.Equal(t, uint64(1)<<32+5, capErr.Requested)
	assert.Equal(t, int64(100), capErr.Remaining)
	assert.Empty(t, store.reservations)
	assert.Empty(t, store.lines)
}

func TestRecorder_SequentialSubmissionsDrainCapacity(t *testing.T) {
	store := newFakeStore()
	store.seedSailing(42, 10, 20, 8)

	recorder := NewRecorder(store)
	_, err := recorder.Submit(context.Background(), submitReq(map[Category]uint32{CategoryAdult: 10}))
	require.NoError(t, err)

	av, err := NewResolver(store).Resolve(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(0), av.Remaining[ClassPassenger])

	_, err = recorder.Submit(context.Background(), submitReq(map[Category]uint32{CategoryChild: 1}))
	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, ClassPassenger, capErr.Class)
}

func TestRecorder_ClassesAreIndependent(t *testing.T) {
	store := newFakeStore()
	store.seedSailing(42, 0, 20, 8)

	// No passenger places left, but vehicle-only bookings still go
	// through.
	conf, err := NewRecorder(store).Submit(context.Background(), submitReq(map[Category]uint32{
		CategoryTruck: 2,
	}))
	require.NoError(t, err)
	assert.Equal(t, uint64(14000), conf.TotalCents)
}

func TestRecorder_FailedLineInsertAbortsSubmission(t *testing.T) {
	store := newFakeStore()
	store.seedSailing(42, 100, 20, 8)
	store.failCreateLines = true

	_, err := NewRecorder(store).Submit(context.Background(), submitReq(map[Category]uint32{
		CategoryAdult: 1,
	}))
	assert.Error(t, err)
	assert.Empty(t, store.lines)
}
