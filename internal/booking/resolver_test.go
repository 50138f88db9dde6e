package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marieteam/ferry-reservation/internal/model"
)

func TestResolver_RemainingIsCapacityMinusBooked(t *testing.T) {
	store := newFakeStore()
	store.seedSailing(42, 100, 20, 8)
	store.seedBooking("r1", 42, map[Category]uint32{
		CategoryAdult:  30,
		CategoryJunior: 10,
		CategoryChild:  5,
		CategoryCar:    7,
		CategoryTruck:  2,
	})
	store.seedBooking("r2", 42, map[Category]uint32{
		CategoryAdult: 15,
		CategoryVan:   4,
	})

	av, err := NewResolver(store).Resolve(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, uint64(60), av.Booked[ClassPassenger])
	assert.Equal(t, uint64(11), av.Booked[ClassSmallVehicle])
	assert.Equal(t, uint64(2), av.Booked[ClassLargeVehicle])

	assert.Equal(t, int64(40), av.Remaining[ClassPassenger])
	assert.Equal(t, int64(9), av.Remaining[ClassSmallVehicle])
	assert.Equal(t, int64(6), av.Remaining[ClassLargeVehicle])
}

func TestResolver_RemainingGoesNegativeWhenOverbooked(t *testing.T) {
	store := newFakeStore()
	store.seedSailing(42, 10, 5, 2)
	store.seedBooking("r1", 42, map[Category]uint32{CategoryAdult: 12})

	av, err := NewResolver(store).Resolve(context.Background(), 42)
	require.NoError(t, err)

	// The resolver surfaces the true arithmetic value; clamping is
	// the recorder's call.
	assert.Equal(t, int64(-2), av.Remaining[ClassPassenger])
}

func TestResolver_HugeLineQuantitiesSumWithoutWrapping(t *testing.T) {
	store := newFakeStore()
	store.seedSailing(42, 100, 20, 8)
	store.seedBooking("r1", 42, map[Category]uint32{CategoryAdult: 1 << 31})
	store.seedBooking("r2", 42, map[Category]uint32{CategoryJunior: 1 << 31})
	store.seedBooking("r3", 42, map[Category]uint32{CategoryChild: 5})

	av, err := NewResolver(store).Resolve(context.Background(), 42)
	require.NoError(t, err)

	// Two quantities of 2^31 would cancel out in 32-bit arithmetic;
	// the booked total must report all of them.
	assert.Equal(t, uint64(1)<<32+5, av.Booked[ClassPassenger])
	assert.Equal(t, int64(100)-int64(uint64(1)<<32+5), av.Remaining[ClassPassenger])
}

func TestResolver_SailingNotFound(t *testing.T) {
	store := newFakeStore()

	_, err := NewResolver(store).Resolve(context.Background(), 99)
	assert.ErrorIs(t, err, ErrSailingNotFound)
}

func TestResolver_MissingCapacityRow(t *testing.T) {
	store := newFakeStore()
	store.seedSailing(42, 100, 20, 8)
	delete(store.capacities[1], ClassLargeVehicle)

	_, err := NewResolver(store).Resolve(context.Background(), 42)
	assert.ErrorIs(t, err, ErrDataIntegrity)
}

func TestResolver_PeriodResolution(t *testing.T) {
	tests := []struct {
		name    string
		periods []model.TariffPeriod
		wantErr bool
		wantID  uint64
	}{
		{
			name: "exactly one covering period",
			periods: []model.TariffPeriod{{
				ID:    7,
				Start: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
			}},
			wantID: 7,
		},
		{
			name:    "no covering period",
			periods: nil,
			wantErr: true,
		},
		{
			name: "two overlapping periods",
			periods: []model.TariffPeriod{
				{
					ID:    1,
					Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
					End:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
				},
				{
					ID:    2,
					Start: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
					End:   time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			store.seedSailing(42, 100, 20, 8)
			store.periods = tt.periods
			if tt.wantID != 0 {
				for cat := CategoryMin; cat <= CategoryMax; cat++ {
					store.prices[priceKey(10, cat, tt.wantID)] = 500
				}
			}

			av, err := NewResolver(store).Resolve(context.Background(), 42)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrDataIntegrity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, av.Period.ID)
		})
	}
}

func TestResolver_PeriodBoundsAreInclusive(t *testing.T) {
	store := newFakeStore()
	store.seedSailing(42, 100, 20, 8)
	// Period ends exactly on the sailing date.
	store.periods[0].End = store.sailings[42].Date

	av, err := NewResolver(store).Resolve(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), av.Period.ID)
}

func TestResolver_MissingTariffLine(t *testing.T) {
	store := newFakeStore()
	store.seedSailing(42, 100, 20, 8)
	delete(store.prices, priceKey(10, CategoryVan, 3))

	_, err := NewResolver(store).Resolve(context.Background(), 42)
	assert.ErrorIs(t, err, ErrDataIntegrity)
}

func TestResolver_RejectsPersistedInvalidCategory(t *testing.T) {
	store := newFakeStore()
	store.seedSailing(42, 100, 20, 8)
	store.lineSailing["bad"] = 42
	store.lines = append(store.lines, model.ReservationLine{
		ReservationNum: "bad",
		Category:       8,
		Quantity:       1,
	})

	_, err := NewResolver(store).Resolve(context.Background(), 42)
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestResolver_PricesCoverAllCategories(t *testing.T) {
	store := newFakeStore()
	store.seedSailing(42, 100, 20, 8)

	av, err := NewResolver(store).Resolve(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, av.Prices, 7)
	for cat := CategoryMin; cat <= CategoryMax; cat++ {
		assert.Equal(t, 1000*uint32(cat), av.Prices[cat])
	}
}
