package model

// Liaison is a scheduled route between two ports inside a sector.
// The (sector, departure, arrival) triple is unique; the code is the
// primary key referenced by trajet and tarifer rows.
//
// Fields:
//  Code        – primary key identifier.
//  SectorID    – sector the liaison belongs to.
//  DepartureID – port of departure.
//  ArrivalID   – port of arrival.
//  Distance    – crossing distance in nautical miles.
type Liaison struct {
	Code        uint64  // liaison.code
	SectorID    uint64  // liaison.secteur_id
	DepartureID uint64  // liaison.depart_id
	ArrivalID   uint64  // liaison.arrivee_id
	Distance    float64 // liaison.distance
}

// LiaisonDetail is a liaison joined with its sector and port names for
// display in the administration screens.
type LiaisonDetail struct {
	Code          uint64  `json:"code"`
	SectorID      uint64  `json:"sector_id"`
	SectorName    string  `json:"sector_name"`
	DepartureID   uint64  `json:"departure_id"`
	DeparturePort string  `json:"departure_port"`
	ArrivalID     uint64  `json:"arrival_id"`
	ArrivalPort   string  `json:"arrival_port"`
	Distance      float64 `json:"distance"`
}
