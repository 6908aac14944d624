package tokenx

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newTestCodec() *Codec {
	return &Codec{
		Secret: []byte("test-secret-test-secret-test-1234"),
		Issuer: "corkd",
		TTL:    time.Hour,
	}
}

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	c := newTestCodec()

	token, err := c.Issue(42)
	require.NoError(t, err)
	require.Equal(t, 3, len(strings.Split(token, ".")), "expected compact JWS form")

	userID, err := c.Verify(token)
	require.NoError(t, err)
	require.EqualValues(t, 42, userID)
}

func TestVerifyNeverConfusesSubjects(t *testing.T) {
	t.Parallel()

	c := newTestCodec()

	seen := make(map[int64]string)
	for id := int64(1); id <= 50; id++ {
		token, err := c.Issue(id)
		require.NoError(t, err)
		seen[id] = token
	}

	for id, token := range seen {
		got, err := c.Verify(token)
		require.NoError(t, err)
		require.Equal(t, id, got)
	}
}

func TestVerifyFailsClosed(t *testing.T) {
	t.Parallel()

	c := newTestCodec()

	t.Run("malformed token", func(t *testing.T) {
		_, err := c.Verify("not-a-token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tampered payload", func(t *testing.T) {
		token, err := c.Issue(7)
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		parts[1] = strings.Repeat("A", len(parts[1]))
		_, err = c.Verify(strings.Join(parts, "."))
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret yields same failure kind", func(t *testing.T) {
		other := newTestCodec()
		other.Secret = []byte("a-completely-different-secret-00")

		token, err := other.Issue(7)
		require.NoError(t, err)

		_, err = c.Verify(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := newTestCodec()
		other.Issuer = "someone-else"

		token, err := other.Issue(7)
		require.NoError(t, err)

		_, err = c.Verify(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		short := newTestCodec()
		short.TTL = -time.Minute

		token, err := short.Issue(7)
		require.NoError(t, err)

		_, err = c.Verify(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("non-numeric subject", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Issuer:    c.Issuer,
			Subject:   "abc",
			Audience:  jwt.ClaimStrings{Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.Secret)
		require.NoError(t, err)

		_, err = c.Verify(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unsigned algorithm rejected", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Issuer:    c.Issuer,
			Subject:   "7",
			Audience:  jwt.ClaimStrings{Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = c.Verify(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestIssueDefaultsTTL(t *testing.T) {
	t.Parallel()

	c := newTestCodec()
	c.TTL = 0

	token, err := c.Issue(9)
	require.NoError(t, err)

	_, err = c.Verify(token)
	require.NoError(t, err)
}
