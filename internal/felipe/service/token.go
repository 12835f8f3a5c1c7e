package service

import (
	"time"

	"github.com/wramaba/felipe/pkg/jwtx"
)

// TokenService issues signed, time-limited bearer tokens. The payload carries
// the subject id and expiry only; authorization is re-checked per request
// against the store, so nothing else belongs in the token.
type TokenService struct {
	Signer *jwtx.HS256
	Issuer string
	TTL    time.Duration
}

// Issue produces a signed token for the subject with an absolute expiry
// TTL from now.
func (s *TokenService) Issue(subjectID string) (string, error) {
	claims := jwtx.NewAccessClaims(subjectID, s.Issuer, s.TTL, time.Now())
	return s.Signer.Sign(claims)
}

// Verify validates a token and returns its subject id. Expired tokens come
// back as jwtx.ErrExpired, everything else wrong as jwtx.ErrInvalid.
func (s *TokenService) Verify(token string) (string, error) {
	claims, err := s.Signer.Verify(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
