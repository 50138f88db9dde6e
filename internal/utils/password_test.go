package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		problems int
	}{
		{"valid", "Grande-Maree!2025", 0},
		{"too short", "Ab!short", 1},
		{"no upper case", "tres-long-mot-de-passe!", 1},
		{"no special char", "TresLongMotDePasse2025", 1},
		{"everything missing", "abc", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, ValidatePassword(tt.password), tt.problems)
		})
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Grande-Maree!2025", 4)
	assert.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "Grande-Maree!2025"))
	assert.False(t, VerifyPassword(hash, "autre-mot-de-passe"))
}
