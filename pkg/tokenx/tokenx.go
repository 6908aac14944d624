// Package tokenx implements the bearer-token codec: a user id goes in, a
// signed compact JWT comes out, and verification recovers the id.
//
// The codec is deliberately stateless. Verification proves signature and
// structural validity only; confirming the subject still resolves to a live
// account is the caller's job.
package tokenx

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/corkboardhq/corkd/pkg/idx"
)

// Audience is the fixed purpose claim baked into every issued token.
const Audience = "login"

// DefaultTTL bounds token lifetime. The system this replaces issued tokens
// with no expiry at all; a bounded lifetime is a documented enhancement.
const DefaultTTL = 24 * time.Hour

// ErrInvalidToken covers every verification failure: malformed structure,
// bad signature, wrong issuer or audience, expiry, unparseable subject.
// Collapsing these into one kind avoids telling a caller which part of
// their forged or stale token was wrong.
var ErrInvalidToken = errors.New("tokenx: invalid token")

// Claims is the strongly-typed claim set carried by issued tokens. Only
// registered claims are used; the subject is the decimal user id.
type Claims struct {
	jwt.RegisteredClaims
}

// Codec signs and verifies login tokens with a process-wide symmetric
// secret. The secret is loaded once at startup and never mutated, so a
// single Codec value is safe for concurrent use.
type Codec struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

// Issue produces a signed, URL-safe compact token embedding userID as its
// subject along with the fixed issuer and audience.
func (c *Codec) Issue(userID int64) (string, error) {
	now := time.Now().UTC()

	ttl := c.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.Issuer,
			Subject:   strconv.FormatInt(userID, 10),
			Audience:  jwt.ClaimStrings{Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        idx.New().String(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.Secret)
}

// Verify checks the signature and structural validity of a token and
// returns the embedded user id. It does not confirm the user still exists.
func (c *Codec) Verify(tokenStr string) (int64, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.Issuer),
		jwt.WithAudience(Audience),
		jwt.WithExpirationRequired(),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return c.Secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrInvalidToken
	}

	return userID, nil
}
