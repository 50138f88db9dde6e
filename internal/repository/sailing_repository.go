package repository

import (
	"context"
	"database/sql"

	"github.com/marieteam/ferry-reservation/internal/model"
)

// SailingRepo provides read access to trajet rows for the search
// pages.  Availability and pricing of an individual sailing are the
// booking package's concern; this repo only lists which sailings
// exist.
type SailingRepo struct {
	db *sql.DB
}

// NewSailingRepo returns a SailingRepo bound to the given database.
func NewSailingRepo(db *sql.DB) *SailingRepo { return &SailingRepo{db: db} }

// ListByLiaisonAndDate returns all sailings of a liaison on a
// calendar day, ordered by departure time, with boat names joined in.
func (r *SailingRepo) ListByLiaisonAndDate(ctx context.Context, liaisonCode uint64, date string) ([]model.Sailing, error) {
	const q = `SELECT t.num, t.id_liaison, t.id_bateau, b.nom, t.date, t.heure_depart, t.heure_arrivee
	           FROM trajet t
	           JOIN bateau b ON b.id = t.id_bateau
	           WHERE t.id_liaison = ? AND t.date = ?
	           ORDER BY t.heure_depart`
	rows, err := r.db.QueryContext(ctx, q, liaisonCode, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Sailing, 0)
	for rows.Next() {
		var s model.Sailing
		if err := rows.Scan(&s.Num, &s.LiaisonCode, &s.BoatID, &s.BoatName,
			&s.Date, &s.Departure, &s.Arrival); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
