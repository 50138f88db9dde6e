package model

import "time"

// Sailing is one dated, timed crossing of a liaison by a specific
// boat (a trajet row).  Departure and arrival are TIME columns and
// are kept as "HH:MM:SS" strings; only their display formatting
// depends on them.
//
// Fields:
//  Num         – primary key identifier.
//  LiaisonCode – liaison being crossed.
//  BoatID      – boat operating the crossing.
//  BoatName    – joined from bateau for display.
//  Date        – calendar day of the crossing (UTC midnight).
//  Departure   – departure time of day, "HH:MM:SS".
//  Arrival     – arrival time of day, "HH:MM:SS".
type Sailing struct {
	Num         uint64    // trajet.num
	LiaisonCode uint64    // trajet.id_liaison
	BoatID      uint64    // trajet.id_bateau
	BoatName    string    // bateau.nom (joined)
	Date        time.Time // trajet.date
	Departure   string    // trajet.heure_depart
	Arrival     string    // trajet.heure_arrivee
}
