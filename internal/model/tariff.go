package model

import "time"

// TariffPeriod is a date range within which a fixed price list
// applies.  Periods are expected not to overlap; exactly one period
// must cover any sailing date that gets priced.
type TariffPeriod struct {
	ID    uint64    // periode.id
	Start time.Time // periode.date_debut
	End   time.Time // periode.date_fin
}

// TariffLine mirrors the tarifer table: the unit price for one
// category on one liaison within one period.  Prices are stored in
// cents.
type TariffLine struct {
	LiaisonCode uint64 // tarifer.liaison_code
	Category    uint8  // tarifer.type_num
	PeriodID    uint64 // tarifer.periode_id
	PriceCents  uint32 // tarifer.tarif
}
