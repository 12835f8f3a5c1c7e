package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is tuned so a verify takes on the order of 100ms on current
// hardware. Raising it invalidates nothing: bcrypt stores the cost alongside
// the salt and hash in the encoded string.
const hashCost = 12

// ErrMismatch reports that a password does not match its stored hash.
var ErrMismatch = errors.New("cryptox: password does not match")

// HashPassword derives a salted bcrypt hash. Salt, cost and hash are encoded
// together in the returned opaque string.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword recomputes the hash with the stored salt and compares in
// constant time. Returns ErrMismatch on failure; callers must not leak
// anything more specific than a generic credentials error.
func VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err != nil {
		return ErrMismatch
	}
	return nil
}
