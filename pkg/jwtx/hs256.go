package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpired reports a structurally valid token whose expiry has passed.
	// Callers surface this distinctly from ErrInvalid so users can tell an
	// expired session from a tampered token.
	ErrExpired = errors.New("jwtx: token expired")

	// ErrInvalid reports a malformed token or a bad signature.
	ErrInvalid = errors.New("jwtx: invalid token")
)

// HS256 signs and verifies tokens with a single server-held symmetric secret.
type HS256 struct {
	secret []byte
	issuer string
}

func NewHS256(secret []byte, issuer string) (*HS256, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwtx: empty HS256 secret")
	}
	return &HS256{secret: secret, issuer: issuer}, nil
}

// Sign turns claims into a signed compact JWT string.
func (h *HS256) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(h.secret)
}

// Verify validates the token signature and expiry and returns its claims.
// Expired tokens yield ErrExpired; anything else wrong yields ErrInvalid.
func (h *HS256) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return h.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalid
	}
	if h.issuer != "" && claims.Issuer != h.issuer {
		return Claims{}, ErrInvalid
	}

	return *claims, nil
}
