package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/marieteam/ferry-reservation/internal/booking"
	"github.com/marieteam/ferry-reservation/internal/model"
)

// querier is the subset of *sql.DB and *sql.Tx the store needs, so
// the same query code serves both the plain and transactional paths.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// BookingStore implements booking.Store and booking.TxStore on top of
// the trajet/contenir/periode/tarifer/reservation/enregistrer tables.
// The transaction-scoped variant locks the trajet row on read so that
// concurrent submissions for the same sailing serialize on the
// database instead of racing between the capacity check and the line
// inserts.
type BookingStore struct {
	q    querier
	db   *sql.DB // nil when tx-scoped
	inTx bool
}

// NewBookingStore returns a store bound to the given database.
func NewBookingStore(db *sql.DB) *BookingStore { return &BookingStore{q: db, db: db} }

// InTx runs fn against a transaction-scoped copy of the store.  The
// transaction commits when fn returns nil and rolls back otherwise.
func (s *BookingStore) InTx(ctx context.Context, fn func(booking.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := fn(&BookingStore{q: tx, inTx: true}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// Sailing fetches one trajet row with the boat name joined in.  The
// transactional variant takes a row lock so the booked sums computed
// afterwards stay valid until commit.
func (s *BookingStore) Sailing(ctx context.Context, num uint64) (*model.Sailing, error) {
	q := `SELECT t.num, t.id_liaison, t.id_bateau, b.nom, t.date, t.heure_depart, t.heure_arrivee
	      FROM trajet t
	      JOIN bateau b ON b.id = t.id_bateau
	      WHERE t.num = ?`
	if s.inTx {
		q += " FOR UPDATE"
	}
	var sl model.Sailing
	err := s.q.QueryRowContext(ctx, q, num).Scan(
		&sl.Num, &sl.LiaisonCode, &sl.BoatID, &sl.BoatName,
		&sl.Date, &sl.Departure, &sl.Arrival,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, booking.ErrSailingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sl, nil
}

// CapacityByClass returns the contenir rows of a boat keyed by class.
// Unknown place codes are skipped; the resolver checks completeness.
func (s *BookingStore) CapacityByClass(ctx context.Context, boatID uint64) (map[booking.Class]uint32, error) {
	const q = `SELECT id_place, capacite FROM contenir WHERE id_bateau = ?`
	rows, err := s.q.QueryContext(ctx, q, boatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[booking.Class]uint32, 3)
	for rows.Next() {
		var place string
		var capacity uint32
		if err := rows.Scan(&place, &capacity); err != nil {
			return nil, err
		}
		for _, class := range booking.Classes {
			if class.PlaceCode() == place {
				out[class] = capacity
			}
		}
	}
	return out, rows.Err()
}

// BookedLines returns every enregistrer row attached to a reservation
// of the sailing.
func (s *BookingStore) BookedLines(ctx context.Context, sailingNum uint64) ([]model.ReservationLine, error) {
	const q = `SELECT e.reservation_num, e.type_num, e.quantite
	           FROM enregistrer e
	           JOIN reservation r ON r.num = e.reservation_num
	           WHERE r.id_trajet = ?`
	rows, err := s.q.QueryContext(ctx, q, sailingNum)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.ReservationLine
	for rows.Next() {
		var l model.ReservationLine
		if err := rows.Scan(&l.ReservationNum, &l.Category, &l.Quantity); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// PeriodsCovering returns all periode rows whose range contains the
// date.  The resolver treats anything other than exactly one row as a
// data-integrity failure, so no LIMIT here.
func (s *BookingStore) PeriodsCovering(ctx context.Context, date time.Time) ([]model.TariffPeriod, error) {
	const q = `SELECT id, date_debut, date_fin FROM periode WHERE date_debut <= ? AND date_fin >= ?`
	day := date.Format("2006-01-02")
	rows, err := s.q.QueryContext(ctx, q, day, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.TariffPeriod
	for rows.Next() {
		var p model.TariffPeriod
		if err := rows.Scan(&p.ID, &p.Start, &p.End); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// UnitPrice returns the tarifer price in cents, with ok=false when no
// line exists for the key.
func (s *BookingStore) UnitPrice(ctx context.Context, liaisonCode uint64, cat booking.Category, periodID uint64) (uint32, bool, error) {
	const q = `SELECT tarif FROM tarifer WHERE liaison_code = ? AND type_num = ? AND periode_id = ?`
	var cents uint32
	err := s.q.QueryRowContext(ctx, q, liaisonCode, uint8(cat), periodID).Scan(&cents)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return cents, true, nil
}

// LiaisonPorts returns the departure and arrival port names of a
// liaison.
func (s *BookingStore) LiaisonPorts(ctx context.Context, liaisonCode uint64) (string, string, error) {
	const q = `SELECT pd.nom, pa.nom
	           FROM liaison l
	           JOIN port pd ON pd.id = l.depart_id
	           JOIN port pa ON pa.id = l.arrivee_id
	           WHERE l.code = ?`
	var departure, arrival string
	err := s.q.QueryRowContext(ctx, q, liaisonCode).Scan(&departure, &arrival)
	return departure, arrival, err
}

// CreateReservation inserts the reservation header row.
func (s *BookingStore) CreateReservation(ctx context.Context, res *model.Reservation) error {
	const q = `INSERT INTO reservation (num, id_trajet, compte_id, nom, adresse, code_postal, ville, date)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.q.ExecContext(ctx, q,
		res.Num, res.SailingNum, res.AccountID,
		res.HolderName, res.Address, res.PostalCode, res.City,
		res.CreatedAt)
	return err
}

// CreateLines bulk-inserts enregistrer rows in a single statement.
// An empty slice is a no-op.
func (s *BookingStore) CreateLines(ctx context.Context, lines []model.ReservationLine) error {
	if len(lines) == 0 {
		return nil
	}
	q := `INSERT INTO enregistrer (reservation_num, type_num, quantite) VALUES `
	args := make([]any, 0, len(lines)*3)
	for i, l := range lines {
		if i > 0 {
			q += ","
		}
		q += "(?, ?, ?)"
		args = append(args, l.ReservationNum, l.Category, l.Quantity)
	}
	_, err := s.q.ExecContext(ctx, q, args...)
	return err
}
