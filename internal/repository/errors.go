// Package repository implements data access over the legacy ferry
// schema (port, secteur, liaison, trajet, bateau, contenir, periode,
// tarifer, reservation, enregistrer, compte).  Sentinel errors let
// handlers map failure scenarios onto HTTP responses without string
// matching.
package repository

import (
	"errors"
	"strings"
)

// ErrConflict is returned when an insert or update collides with
// existing state, such as creating a liaison whose (sector, departure,
// arrival) triple already exists.  Handlers translate this into an
// HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ErrLiaisonNotFound is returned when a liaison code does not exist.
var ErrLiaisonNotFound = errors.New("liaison not found")

// ErrPortNotFound is returned when a port name search matches
// nothing.
var ErrPortNotFound = errors.New("port not found")

// ErrEmailExists is returned when registering an email that is
// already taken.
var ErrEmailExists = errors.New("email already exists")

// isDuplicateEntry reports whether err is a MySQL duplicate-key
// violation (error 1062).  The unique indexes on compte.mail and on
// the liaison triple surface concurrent inserts here.
func isDuplicateEntry(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
