// internal/app/system/token/token.go

// Package token signs and verifies the bearer tokens that authenticate API
// requests. Tokens are stateless HS256 JWTs: validity is determined solely
// by signature and expiry, and there is no server-side revocation list, so
// a logout cannot invalidate a still-live token.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TTL is the fixed token lifetime from issuance.
const TTL = 7 * 24 * time.Hour

// ErrInvalidToken is the single error returned for any verification
// failure: expired, tampered, malformed, or wrong algorithm. The cause is
// deliberately not distinguished so the endpoint cannot be used as an
// oracle.
var ErrInvalidToken = errors.New("invalid token")

// Claims carried by a Harmony bearer token. Subject is the user ID.
type Claims struct {
	jwt.RegisteredClaims

	Email string `json:"email"`
	Role  string `json:"role"`
}

// SubjectID returns the user ID the token was issued for.
func (c Claims) SubjectID() string { return c.Subject }

// Codec issues and verifies tokens with a process-wide secret. Rotating the
// secret invalidates all outstanding tokens.
type Codec struct {
	secret []byte
	now    func() time.Time
}

// New creates a Codec signing with the given secret.
func New(secret string) *Codec {
	return &Codec{secret: []byte(secret), now: time.Now}
}

// Issue signs a token for the given user with expiry now + TTL. Each token
// carries a unique jti: timestamps have second resolution, so without it
// two tokens issued within the same second for the same user would be
// byte-identical.
func (c *Codec) Issue(subjectID, email, role string) (string, error) {
	now := c.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
		Email: email,
		Role:  role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify parses and validates a token, returning its claims or
// ErrInvalidToken.
func (c *Codec) Verify(raw string) (Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
