package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, role string, exp time.Time) string {
	t.Helper()
	claims := AccessClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

func TestDecode_ReadsClaimsWithoutSecret(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(15 * time.Minute)
	claims, err := Decode(signedToken(t, "admin", exp))
	require.NoError(t, err)

	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "user-1", claims.Subject)
	assert.False(t, claims.Expired(time.Now()))
}

func TestDecode_ExpiredTokenStillDecodes(t *testing.T) {
	t.Parallel()

	claims, err := Decode(signedToken(t, "user", time.Now().Add(-time.Hour)))
	require.NoError(t, err)
	assert.True(t, claims.Expired(time.Now()))
}

func TestDecode_Garbage(t *testing.T) {
	t.Parallel()

	_, err := Decode("not-a-jwt")
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestExpired_MissingExp(t *testing.T) {
	t.Parallel()

	claims := &AccessClaims{Role: "user"}
	assert.True(t, claims.Expired(time.Now()))
}
