package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hadiheib99/storefront-backend/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Pepper:     "test-pepper",
		BcryptCost: bcrypt.MinCost,
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	cfg := testConfig()

	digest, err := HashPassword(cfg, "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	require.NotEqual(t, "secret123", digest)

	require.True(t, CheckPassword(cfg, "secret123", digest))
	require.False(t, CheckPassword(cfg, "wrong-password", digest))
}

func TestHashesAreSalted(t *testing.T) {
	cfg := testConfig()

	first, err := HashPassword(cfg, "secret123")
	require.NoError(t, err)
	second, err := HashPassword(cfg, "secret123")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}

func TestCheckPasswordNeedsSamePepper(t *testing.T) {
	cfg := testConfig()

	digest, err := HashPassword(cfg, "secret123")
	require.NoError(t, err)

	other := &config.Config{Pepper: "different-pepper", BcryptCost: bcrypt.MinCost}
	require.False(t, CheckPassword(other, "secret123", digest))
}
