package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// ReservationRepo reads reservations back for display.  Writing goes
// through the BookingStore inside the recorder's transaction; this
// repo only serves the account pages and the revenue report.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a ReservationRepo bound to the given
// database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// ReservationDetail is a reservation joined with its sailing, liaison
// and port names, plus the priced lines.  It is what customers see on
// their account page.
type ReservationDetail struct {
	Num           string            `json:"num"`
	SailingNum    uint64            `json:"sailing_num"`
	DeparturePort string            `json:"departure_port"`
	ArrivalPort   string            `json:"arrival_port"`
	BoatName      string            `json:"boat_name"`
	Date          string            `json:"date"`
	Departure     string            `json:"departure"`
	Arrival       string            `json:"arrival"`
	HolderName    string            `json:"holder_name"`
	CreatedAt     string            `json:"created_at"`
	Lines         []ReservationItem `json:"lines"`
	TotalCents    uint64            `json:"total_cents"`
}

// ReservationItem is one priced line of a ReservationDetail.  The
// unit price is resolved through the tariff period covering the
// sailing's date, the same resolution the recorder performed when the
// reservation was made.
type ReservationItem struct {
	Category   uint8  `json:"category"`
	Quantity   uint32 `json:"quantity"`
	UnitCents  uint32 `json:"unit_price_cents"`
	TotalCents uint64 `json:"line_total_cents"`
}

const reservationDetailSelect = `SELECT r.num, r.id_trajet, pd.nom, pa.nom, b.nom,
	       DATE_FORMAT(t.date, '%d/%m/%Y'), t.heure_depart, t.heure_arrivee,
	       r.nom, DATE_FORMAT(r.date, '%Y-%m-%dT%H:%i:%sZ')
	FROM reservation r
	JOIN trajet t ON t.num = r.id_trajet
	JOIN bateau b ON b.id = t.id_bateau
	JOIN liaison l ON l.code = t.id_liaison
	JOIN port pd ON pd.id = l.depart_id
	JOIN port pa ON pa.id = l.arrivee_id`

// lineSelect joins each enregistrer row with its unit price through
// the period covering the sailing date.
const lineSelect = `SELECT e.reservation_num, e.type_num, e.quantite, tf.tarif
	FROM enregistrer e
	JOIN reservation r ON r.num = e.reservation_num
	JOIN trajet t ON t.num = r.id_trajet
	JOIN periode p ON t.date BETWEEN p.date_debut AND p.date_fin
	JOIN tarifer tf ON tf.liaison_code = t.id_liaison AND tf.type_num = e.type_num AND tf.periode_id = p.id`

func scanReservationDetail(row interface{ Scan(...any) error }, d *ReservationDetail) error {
	var depTime, arrTime string
	if err := row.Scan(&d.Num, &d.SailingNum, &d.DeparturePort, &d.ArrivalPort, &d.BoatName,
		&d.Date, &depTime, &arrTime, &d.HolderName, &d.CreatedAt); err != nil {
		return err
	}
	d.Departure = depTime
	d.Arrival = arrTime
	d.Lines = []ReservationItem{}
	return nil
}

// ListByAccount returns all reservations of an account, newest first,
// each with its priced lines and total.
func (r *ReservationRepo) ListByAccount(ctx context.Context, accountID uint64) ([]ReservationDetail, error) {
	rows, err := r.db.QueryContext(ctx,
		reservationDetailSelect+` WHERE r.compte_id = ? ORDER BY r.date DESC`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	details := make([]ReservationDetail, 0)
	index := make(map[string]int)
	for rows.Next() {
		var d ReservationDetail
		if err := scanReservationDetail(rows, &d); err != nil {
			return nil, err
		}
		index[d.Num] = len(details)
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return details, nil
	}

	// Fetch the lines of all reservations in one query.
	nums := make([]any, 0, len(details))
	placeholders := make([]string, 0, len(details))
	for _, d := range details {
		nums = append(nums, d.Num)
		placeholders = append(placeholders, "?")
	}
	lineQ := lineSelect + ` WHERE e.reservation_num IN (` + strings.Join(placeholders, ",") + `)
	        ORDER BY e.reservation_num, e.type_num`
	lrows, err := r.db.QueryContext(ctx, lineQ, nums...)
	if err != nil {
		return nil, err
	}
	defer lrows.Close()
	for lrows.Next() {
		var num string
		var item ReservationItem
		if err := lrows.Scan(&num, &item.Category, &item.Quantity, &item.UnitCents); err != nil {
			return nil, err
		}
		item.TotalCents = uint64(item.UnitCents) * uint64(item.Quantity)
		idx, ok := index[num]
		if !ok {
			continue
		}
		details[idx].Lines = append(details[idx].Lines, item)
		details[idx].TotalCents += item.TotalCents
	}
	return details, lrows.Err()
}

// GetByNumForAccount returns one reservation of an account with its
// priced lines.  sql.ErrNoRows is returned when the reservation does
// not exist or belongs to someone else.
func (r *ReservationRepo) GetByNumForAccount(ctx context.Context, num string, accountID uint64) (*ReservationDetail, error) {
	var d ReservationDetail
	err := scanReservationDetail(r.db.QueryRowContext(ctx,
		reservationDetailSelect+` WHERE r.num = ? AND r.compte_id = ?`, num, accountID), &d)
	if err != nil {
		return nil, err
	}
	lrows, err := r.db.QueryContext(ctx, lineSelect+` WHERE e.reservation_num = ? ORDER BY e.type_num`, num)
	if err != nil {
		return nil, err
	}
	defer lrows.Close()
	for lrows.Next() {
		var resNum string
		var item ReservationItem
		if err := lrows.Scan(&resNum, &item.Category, &item.Quantity, &item.UnitCents); err != nil {
			return nil, err
		}
		item.TotalCents = uint64(item.UnitCents) * uint64(item.Quantity)
		d.Lines = append(d.Lines, item)
		d.TotalCents += item.TotalCents
	}
	if err := lrows.Err(); err != nil {
		return nil, err
	}
	return &d, nil
}

// DailyRevenue is the revenue booked on one calendar day.
type DailyRevenue struct {
	Day   string
	Cents uint64
}

// RevenueBetween sums quantity x tariff for every reservation line
// whose reservation was created in [from, to], grouped by day.  Days
// without revenue are absent from the result; the handler fills the
// series with zeroes for charting.
func (r *ReservationRepo) RevenueBetween(ctx context.Context, from, to time.Time) ([]DailyRevenue, error) {
	const q = `SELECT DATE_FORMAT(DATE(r.date), '%Y-%m-%d'), SUM(e.quantite * tf.tarif)
	           FROM reservation r
	           JOIN trajet t ON t.num = r.id_trajet
	           JOIN enregistrer e ON e.reservation_num = r.num
	           JOIN periode p ON t.date BETWEEN p.date_debut AND p.date_fin
	           JOIN tarifer tf ON tf.liaison_code = t.id_liaison AND tf.type_num = e.type_num AND tf.periode_id = p.id
	           WHERE DATE(r.date) BETWEEN ? AND ?
	           GROUP BY DATE(r.date)
	           ORDER BY DATE(r.date)`
	rows, err := r.db.QueryContext(ctx, q, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]DailyRevenue, 0)
	for rows.Next() {
		var d DailyRevenue
		if err := rows.Scan(&d.Day, &d.Cents); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
