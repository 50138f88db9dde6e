package model

// Boat is a vessel operating trajets.
type Boat struct {
	ID   uint64 // bateau.id
	Name string // bateau.nom
}

// BoatCapacity mirrors the contenir table: the static maximum capacity
// of one boat for one place class.  PlaceCode is "A" (passenger),
// "B" (vehicle under 2m) or "C" (vehicle over 2m).
type BoatCapacity struct {
	BoatID    uint64 // contenir.id_bateau
	PlaceCode string // contenir.id_place
	Capacity  uint32 // contenir.capacite
}
