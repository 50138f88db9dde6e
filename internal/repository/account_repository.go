package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/marieteam/ferry-reservation/internal/model"
	"github.com/marieteam/ferry-reservation/internal/utils"
)

// AccountRepo persists user accounts in the compte table.
type AccountRepo struct{ DB *sql.DB }

// NewAccountRepo returns an AccountRepo bound to the given database.
func NewAccountRepo(db *sql.DB) *AccountRepo { return &AccountRepo{DB: db} }

// Create inserts an account and returns its ID.  Emails are
// normalized to lower case; a duplicate returns ErrEmailExists.
func (r *AccountRepo) Create(ctx context.Context, email, password, firstName, lastName, role string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO compte (mail, mdp_hash, prenom, nom, role) VALUES (?,?,?,?,?)",
		email, hash, firstName, lastName, role)
	if err != nil {
		if isDuplicateEntry(err) {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches an account by normalized email.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var a model.Account
	var phone sql.NullString
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,mail,mdp_hash,prenom,nom,telephone,role,created_at,updated_at FROM compte WHERE mail=? LIMIT 1",
		email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.FirstName, &a.LastName, &phone, &a.Role, &a.CreatedAt, &a.UpdatedAt)
	if phone.Valid {
		a.Phone = phone.String
	}
	return a, err
}

// GetByID fetches an account by id.
func (r *AccountRepo) GetByID(ctx context.Context, id uint64) (model.Account, error) {
	var a model.Account
	var phone sql.NullString
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,mail,mdp_hash,prenom,nom,telephone,role,created_at,updated_at FROM compte WHERE id=? LIMIT 1",
		id).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.FirstName, &a.LastName, &phone, &a.Role, &a.CreatedAt, &a.UpdatedAt)
	if phone.Valid {
		a.Phone = phone.String
	}
	return a, err
}

// UpdateProfile rewrites the editable profile fields of an account.
func (r *AccountRepo) UpdateProfile(ctx context.Context, id uint64, firstName, lastName, phone string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE compte SET prenom=?, nom=?, telephone=?, updated_at=NOW() WHERE id=?",
		firstName, lastName, phone, id)
	return err
}
