package booking

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the resolver and recorder.  Handlers
// translate these into HTTP responses: ErrSailingNotFound becomes a
// 404, ErrInvalidCategory and ErrEmptyRequest a 400, and
// ErrDataIntegrity a 500 because it signals broken reference data
// (a missing capacity row, a missing tariff line, or a date covered
// by zero or several tariff periods).
var (
	ErrSailingNotFound = errors.New("sailing not found")
	ErrInvalidCategory = errors.New("invalid category")
	ErrEmptyRequest    = errors.New("all requested quantities are zero")
	ErrDataIntegrity   = errors.New("data integrity error")
)

// CapacityError reports that a submission asked for more places in
// one class than the sailing has left.  Handlers translate it into a
// 409 response.  Requested is the class total, which can exceed the
// uint32 range of a single line.
type CapacityError struct {
	Class     Class
	Requested uint64
	Remaining int64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity exceeded for %s places: requested %d, remaining %d",
		e.Class, e.Requested, e.Remaining)
}
