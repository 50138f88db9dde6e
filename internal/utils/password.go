package utils

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a bcrypt hash using the given cost.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword safely compares a bcrypt hash and a plain password.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// passwordMinLength is the minimum accepted password length.
const passwordMinLength = 13

const specialChars = `!@#$%^&*(),.?":{}|<>`

// ValidatePassword checks the registration password policy: at least
// 13 characters with an upper-case letter, a lower-case letter and a
// special character.  It returns the list of unmet criteria, empty
// when the password is acceptable.
func ValidatePassword(plain string) []string {
	var problems []string
	if len(plain) < passwordMinLength {
		problems = append(problems, "at least 13 characters")
	}
	hasUpper, hasLower, hasSpecial := false, false, false
	for _, r := range plain {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
		if strings.ContainsRune(specialChars, r) {
			hasSpecial = true
		}
	}
	if !hasUpper {
		problems = append(problems, "an upper-case letter")
	}
	if !hasLower {
		problems = append(problems, "a lower-case letter")
	}
	if !hasSpecial {
		problems = append(problems, "a special character")
	}
	return problems
}
