package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/marieteam/ferry-reservation/internal/model"
)

// PortRepo provides read access to ports and sectors.  Both tables
// are reference data edited outside this application; only the
// liaison administration screens write anything in this area.
type PortRepo struct {
	db *sql.DB
}

// NewPortRepo returns a PortRepo bound to the given database.
func NewPortRepo(db *sql.DB) *PortRepo { return &PortRepo{db: db} }

// List returns all ports ordered by name.
func (r *PortRepo) List(ctx context.Context) ([]model.Port, error) {
	const q = `SELECT id, nom FROM port ORDER BY nom`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Port, 0)
	for rows.Next() {
		var p model.Port
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListSectors returns all sectors ordered by name.
func (r *PortRepo) ListSectors(ctx context.Context) ([]model.Sector, error) {
	const q = `SELECT id, nom FROM secteur ORDER BY nom`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Sector, 0)
	for rows.Next() {
		var s model.Sector
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// FindByName returns the first port whose name contains the given
// fragment, case-insensitively.  The search pages let users type a
// partial name ("palais" finds "Le Palais").  ErrPortNotFound is
// returned when nothing matches.
func (r *PortRepo) FindByName(ctx context.Context, name string) (model.Port, error) {
	const q = `SELECT id, nom FROM port WHERE LOWER(nom) LIKE ? ORDER BY nom LIMIT 1`
	var p model.Port
	err := r.db.QueryRowContext(ctx, q, "%"+strings.ToLower(strings.TrimSpace(name))+"%").
		Scan(&p.ID, &p.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Port{}, ErrPortNotFound
	}
	return p, err
}
