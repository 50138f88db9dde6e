// Package booking implements the inventory and pricing core of the
// reservation system: the capacity/tariff resolver and the reservation
// recorder.  It talks to persistence only through the Store interface
// so the logic can be exercised without a database.
package booking

// Category is a fine-grained passenger or vehicle type, numbered 1
// through 7 as in the tarifer and enregistrer tables.  Categories are
// grouped into three capacity classes: 1-3 occupy passenger places,
// 4-5 small-vehicle places and 6-7 large-vehicle places.
type Category uint8

const (
	CategoryAdult     Category = 1
	CategoryJunior    Category = 2
	CategoryChild     Category = 3
	CategoryCar       Category = 4
	CategoryVan       Category = 5
	CategoryMotorhome Category = 6
	CategoryTruck     Category = 7

	CategoryMin Category = CategoryAdult
	CategoryMax Category = CategoryTruck
)

// Class is one of the three inventory classes a boat tracks capacity
// for, matching the id_place codes of the contenir table.
type Class uint8

const (
	ClassPassenger Class = iota
	ClassSmallVehicle
	ClassLargeVehicle
)

// Classes lists the three classes in place-code order.
var Classes = [3]Class{ClassPassenger, ClassSmallVehicle, ClassLargeVehicle}

var classPlaceCodes = [3]string{"A", "B", "C"}

var classNames = [3]string{"passenger", "small-vehicle", "large-vehicle"}

var categoryLabels = [...]string{
	CategoryAdult:     "Adulte",
	CategoryJunior:    "Junior",
	CategoryChild:     "Enfant",
	CategoryCar:       "Voiture",
	CategoryVan:       "Camionnette",
	CategoryMotorhome: "Camping-car",
	CategoryTruck:     "Camion",
}

// Valid reports whether c is one of the seven defined categories.
func (c Category) Valid() bool { return c >= CategoryMin && c <= CategoryMax }

// Class returns the capacity class the category counts against.  The
// partition is fixed: {1,2,3} passenger, {4,5} small vehicle, {6,7}
// large vehicle.  ErrInvalidCategory is returned for anything outside
// 1..7.
func (c Category) Class() (Class, error) {
	switch {
	case c >= CategoryAdult && c <= CategoryChild:
		return ClassPassenger, nil
	case c == CategoryCar || c == CategoryVan:
		return ClassSmallVehicle, nil
	case c == CategoryMotorhome || c == CategoryTruck:
		return ClassLargeVehicle, nil
	}
	return 0, ErrInvalidCategory
}

// Label returns the French display label of the category, or "" for
// an undefined category number.
func (c Category) Label() string {
	if !c.Valid() {
		return ""
	}
	return categoryLabels[c]
}

// PlaceCode returns the contenir id_place code of the class ("A",
// "B" or "C").
func (cl Class) PlaceCode() string { return classPlaceCodes[cl] }

func (cl Class) String() string { return classNames[cl] }
