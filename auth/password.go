package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/hadiheib99/storefront-backend/config"
)

// HashPassword digests password+pepper with bcrypt at the configured cost.
// The pepper is a server-wide secret, so a leaked digest cannot be cracked
// from database contents alone.
func HashPassword(cfg *config.Config, password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password+cfg.Pepper), cfg.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPassword reports whether password+pepper matches the stored digest.
func CheckPassword(cfg *config.Config, password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password+cfg.Pepper)) == nil
}
