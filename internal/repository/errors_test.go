package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateEntry(t *testing.T) {
	assert.True(t, isDuplicateEntry(errors.New(
		"Error 1062 (23000): Duplicate entry 'alice@example.com' for key 'compte.mail'")))
	assert.True(t, isDuplicateEntry(errors.New(
		"Error 1062 (23000): Duplicate entry '1-2-3' for key 'liaison.uniq_triple'")))

	assert.False(t, isDuplicateEntry(nil))
	assert.False(t, isDuplicateEntry(errors.New(
		"Error 1451 (23000): Cannot delete or update a parent row")))
	assert.False(t, isDuplicateEntry(errors.New("connection refused")))
}
