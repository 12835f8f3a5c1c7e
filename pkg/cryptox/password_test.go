package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Fiscal123!")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$2"), "expected bcrypt encoded hash")
	require.NotContains(t, hash, "Fiscal123!")

	require.NoError(t, VerifyPassword("Fiscal123!", hash))
	require.ErrorIs(t, VerifyPassword("fiscal123!", hash), ErrMismatch)
	require.ErrorIs(t, VerifyPassword("", hash), ErrMismatch)
}

func TestHashPasswordIsSalted(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("same-password")
	require.NoError(t, err)
	b, err := HashPassword("same-password")
	require.NoError(t, err)

	require.NotEqual(t, a, b, "two hashes of the same password must differ by salt")
}

func TestVerifyPasswordRejectsGarbageHash(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, VerifyPassword("anything", "not-a-hash"), ErrMismatch)
}
