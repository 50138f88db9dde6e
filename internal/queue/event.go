// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationConfirmedEvent is published when a reservation is
// successfully recorded.  It carries enough information for downstream
// consumers to log or notify without querying the primary database.
type ReservationConfirmedEvent struct {
	ReservationNum string            `json:"reservation_num"`
	AccountID      uint64            `json:"account_id"`
	SailingNum     uint64            `json:"sailing_num"`
	DeparturePort  string            `json:"departure_port"`
	ArrivalPort    string            `json:"arrival_port"`
	Date           string            `json:"date"`
	Departure      string            `json:"departure"`
	Quantities     map[string]uint32 `json:"quantities"`
	TotalCents     uint64            `json:"total_cents"`
	ConfirmedAt    string            `json:"confirmed_at"`
}
