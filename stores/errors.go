package stores

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when a user signup hits the unique
	// index on users.email.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// isUniqueViolation detects a unique-constraint failure from the driver.
// gorm translates these to ErrDuplicatedKey when it can; the SQLSTATE text
// match is the fallback for untranslated errors.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") || strings.Contains(msg, "duplicate key")
}
