package model

import "time"

// Reservation records a booking for a specific sailing.  It is the
// header row; the per-category quantities live in ReservationLine.
// The number is a server-generated UUID so that rapid double submits
// cannot collide; a duplicate is rejected by the primary key.
//
// Fields:
//  Num        – primary key, UUID string.
//  SailingNum – sailing being booked.
//  AccountID  – account that made the booking.
//  HolderName – name of the reservation holder.
//  Address    – street address of the holder.
//  PostalCode – postal code of the holder.
//  City       – city of the holder.
//  CreatedAt  – creation timestamp.
type Reservation struct {
	Num        string    // reservation.num
	SailingNum uint64    // reservation.id_trajet
	AccountID  uint64    // reservation.compte_id
	HolderName string    // reservation.nom
	Address    string    // reservation.adresse
	PostalCode string    // reservation.code_postal
	City       string    // reservation.ville
	CreatedAt  time.Time // reservation.date
}

// ReservationLine mirrors the enregistrer table: the quantity booked
// for one category within one reservation.  Rows only exist for
// categories with a quantity greater than zero.
type ReservationLine struct {
	ReservationNum string // enregistrer.reservation_num
	Category       uint8  // enregistrer.type_num
	Quantity       uint32 // enregistrer.quantite
}
