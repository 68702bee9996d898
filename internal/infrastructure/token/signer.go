package token

import (
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
)

// Signer issues and verifies HS256 access tokens. The secret and the
// token lifetime come from configuration.
type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSigner(secret string, ttl time.Duration) *Signer {
	return &Signer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue returns a signed token carrying the username and an expiry a
// fixed duration in the future.
func (s *Signer) Issue(username string) (string, error) {
	now := s.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", crerr.Wrap(err, "sign access token")
	}

	return signed, nil
}

// Verify checks signature and expiry and returns the embedded
// username. Malformed, tampered and expired tokens all fail here.
func (s *Signer) Verify(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil {
		return "", crerr.Wrap(err, "parse access token")
	}
	if !parsed.Valid || strings.TrimSpace(claims.Subject) == "" {
		return "", crerr.New("access token carries no subject")
	}

	return claims.Subject, nil
}
