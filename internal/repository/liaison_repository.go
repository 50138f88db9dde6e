package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/marieteam/ferry-reservation/internal/model"
)

// LiaisonRepo provides CRUD operations for liaisons.  Every read
// joins the sector and both port names since the administration
// screens always display them together.
type LiaisonRepo struct {
	db *sql.DB
}

// NewLiaisonRepo returns a LiaisonRepo bound to the given database.
func NewLiaisonRepo(db *sql.DB) *LiaisonRepo { return &LiaisonRepo{db: db} }

const liaisonDetailSelect = `SELECT l.code, l.secteur_id, s.nom, l.depart_id, pd.nom, l.arrivee_id, pa.nom, l.distance
	FROM liaison l
	JOIN secteur s ON s.id = l.secteur_id
	JOIN port pd ON pd.id = l.depart_id
	JOIN port pa ON pa.id = l.arrivee_id`

func scanLiaisonDetail(row interface{ Scan(...any) error }, d *model.LiaisonDetail) error {
	return row.Scan(&d.Code, &d.SectorID, &d.SectorName,
		&d.DepartureID, &d.DeparturePort, &d.ArrivalID, &d.ArrivalPort, &d.Distance)
}

// List returns all liaisons with sector and port names, ordered by
// sector then departure port.
func (r *LiaisonRepo) List(ctx context.Context) ([]model.LiaisonDetail, error) {
	rows, err := r.db.QueryContext(ctx, liaisonDetailSelect+` ORDER BY s.nom, pd.nom, pa.nom`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.LiaisonDetail, 0)
	for rows.Next() {
		var d model.LiaisonDetail
		if err := scanLiaisonDetail(rows, &d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// GetByCode returns one liaison with its joined names, or
// ErrLiaisonNotFound.
func (r *LiaisonRepo) GetByCode(ctx context.Context, code uint64) (*model.LiaisonDetail, error) {
	var d model.LiaisonDetail
	err := scanLiaisonDetail(r.db.QueryRowContext(ctx, liaisonDetailSelect+` WHERE l.code = ?`, code), &d)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLiaisonNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// exists reports whether a liaison with the same (sector, departure,
// arrival) triple already exists, ignoring excludeCode (0 to exclude
// nothing) so updates can keep their own triple.
func (r *LiaisonRepo) exists(ctx context.Context, sectorID, departureID, arrivalID, excludeCode uint64) (bool, error) {
	const q = `SELECT code FROM liaison
	           WHERE secteur_id = ? AND depart_id = ? AND arrivee_id = ? LIMIT 1`
	var code uint64
	err := r.db.QueryRowContext(ctx, q, sectorID, departureID, arrivalID).Scan(&code)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return code != excludeCode, nil
}

// Create inserts a liaison and returns its generated code.  It
// returns ErrConflict when the (sector, departure, arrival) triple
// already exists.  The pre-check gives the common case a clean
// answer; the unique index on the triple catches concurrent inserts,
// which come back as duplicate-key errors.
func (r *LiaisonRepo) Create(ctx context.Context, l *model.Liaison) (uint64, error) {
	dup, err := r.exists(ctx, l.SectorID, l.DepartureID, l.ArrivalID, 0)
	if err != nil {
		return 0, err
	}
	if dup {
		return 0, ErrConflict
	}
	const q = `INSERT INTO liaison (secteur_id, depart_id, arrivee_id, distance) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, l.SectorID, l.DepartureID, l.ArrivalID, l.Distance)
	if err != nil {
		if isDuplicateEntry(err) {
			return 0, ErrConflict
		}
		return 0, err
	}
	code, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	l.Code = uint64(code)
	return l.Code, nil
}

// Update rewrites a liaison.  It returns ErrLiaisonNotFound when the
// code does not exist and ErrConflict when the new triple collides
// with another liaison.
func (r *LiaisonRepo) Update(ctx context.Context, l *model.Liaison) error {
	dup, err := r.exists(ctx, l.SectorID, l.DepartureID, l.ArrivalID, l.Code)
	if err != nil {
		return err
	}
	if dup {
		return ErrConflict
	}
	const q = `UPDATE liaison SET secteur_id = ?, depart_id = ?, arrivee_id = ?, distance = ? WHERE code = ?`
	res, err := r.db.ExecContext(ctx, q, l.SectorID, l.DepartureID, l.ArrivalID, l.Distance, l.Code)
	if err != nil {
		if isDuplicateEntry(err) {
			return ErrConflict
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Distinguish "absent" from "unchanged": an update writing
		// identical values affects zero rows on MySQL.
		if _, err := r.GetByCode(ctx, l.Code); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a liaison.  It returns ErrLiaisonNotFound when the
// code does not exist and ErrConflict when sailings still reference
// it (foreign key restriction).
func (r *LiaisonRepo) Delete(ctx context.Context, code uint64) error {
	var refs int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM trajet WHERE id_liaison = ?`, code).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return ErrConflict
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM liaison WHERE code = ?`, code)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrLiaisonNotFound
	}
	return nil
}

// FindByPorts returns the code of the liaison between two ports, or
// ErrLiaisonNotFound.  Sailing search resolves port names first and
// then looks the liaison up by the pair.
func (r *LiaisonRepo) FindByPorts(ctx context.Context, departureID, arrivalID uint64) (uint64, error) {
	const q = `SELECT code FROM liaison WHERE depart_id = ? AND arrivee_id = ? LIMIT 1`
	var code uint64
	err := r.db.QueryRowContext(ctx, q, departureID, arrivalID).Scan(&code)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrLiaisonNotFound
	}
	return code, err
}
