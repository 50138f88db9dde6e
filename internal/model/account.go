package model

import "time"

// Account mirrors the compte table.  Roles are ADMIN and CUSTOMER;
// registration always creates customers, administrators are seeded
// directly in the database.
type Account struct {
	ID           uint64    // compte.id
	Email        string    // compte.mail
	PasswordHash string    // compte.mdp_hash
	FirstName    string    // compte.prenom
	LastName     string    // compte.nom
	Phone        string    // compte.telephone
	Role         string    // compte.role
	CreatedAt    time.Time // compte.created_at
	UpdatedAt    time.Time // compte.updated_at
}
