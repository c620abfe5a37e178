package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims is the subset of the backend's access-token payload the
// client cares about. The client never verifies the signature (it holds no
// secret); it only reads identity hints the backend already authenticated.
type AccessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

var ErrMalformedToken = errors.New("malformed access token")

// Decode parses the token without signature verification and returns its
// claims. Expired tokens still decode; call Expired to check.
func Decode(tokenStr string) (*AccessClaims, error) {
	var claims AccessClaims
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(tokenStr, &claims); err != nil {
		return nil, ErrMalformedToken
	}
	return &claims, nil
}

// Expired reports whether the claims carry an exp in the past. Claims
// without an exp are treated as expired so a junk token never looks live.
func (c *AccessClaims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return true
	}
	return c.ExpiresAt.Time.Before(now)
}
