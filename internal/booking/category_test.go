package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryClassPartition(t *testing.T) {
	want := map[Category]Class{
		CategoryAdult:     ClassPassenger,
		CategoryJunior:    ClassPassenger,
		CategoryChild:     ClassPassenger,
		CategoryCar:       ClassSmallVehicle,
		CategoryVan:       ClassSmallVehicle,
		CategoryMotorhome: ClassLargeVehicle,
		CategoryTruck:     ClassLargeVehicle,
	}
	for cat, class := range want {
		got, err := cat.Class()
		require.NoError(t, err)
		assert.Equal(t, class, got, "category %d", cat)
	}
}

func TestCategoryClassRejectsOutOfRange(t *testing.T) {
	for _, cat := range []Category{0, 8, 200} {
		_, err := cat.Class()
		assert.ErrorIs(t, err, ErrInvalidCategory, "category %d", cat)
		assert.False(t, cat.Valid())
		assert.Equal(t, "", cat.Label())
	}
}

func TestCategoryLabels(t *testing.T) {
	assert.Equal(t, "Adulte", CategoryAdult.Label())
	assert.Equal(t, "Camping-car", CategoryMotorhome.Label())
	assert.Equal(t, "Camion", CategoryTruck.Label())
}

func TestClassPlaceCodes(t *testing.T) {
	assert.Equal(t, "A", ClassPassenger.PlaceCode())
	assert.Equal(t, "B", ClassSmallVehicle.PlaceCode())
	assert.Equal(t, "C", ClassLargeVehicle.PlaceCode())
}

func TestFormatTimeOfDay(t *testing.T) {
	assert.Equal(t, "09h30", FormatTimeOfDay("09:30:00"))
	assert.Equal(t, "23h05", FormatTimeOfDay("23:05:59"))
	assert.Equal(t, "bad", FormatTimeOfDay("bad"))
}

func TestFormatCrossing(t *testing.T) {
	assert.Equal(t, "2h 35m", FormatCrossing("08:00:00", "10:35:00"))
	assert.Equal(t, "45m", FormatCrossing("09:30:00", "10:15:00"))
	assert.Equal(t, "", FormatCrossing("oops", "10:15:00"))
}
