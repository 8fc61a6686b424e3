// Package token issues and verifies the signed, time-bounded identity tokens
// used as bearer credentials. Tokens are immutable once issued; expiry is the
// only invalidation mechanism.
package token

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/airlinehq/airline-api/internal/core/domain"
)

// DefaultTTL is the token lifetime applied when the configured expiration
// window is missing or unparseable.
const DefaultTTL = 30 * 24 * time.Hour

// Claims is the decoded, verified content of a token.
type Claims struct {
	Subject   string
	Role      domain.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type jwtClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs and verifies identity tokens with a symmetric key. The secret
// and lifetime are fixed at construction; the codec holds no mutable state
// and is safe for concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec builds a Codec. A missing secret is a startup precondition
// violation, not a per-request error.
func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, domain.NewInternalError("token signing secret is not configured", nil)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for the given subject and role, valid from now until
// now plus the configured lifetime.
func (c *Codec) Issue(userID int64, role domain.Role) (string, error) {
	now := c.now()
	claims := jwtClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", domain.NewInternalError("token signing failed", err)
	}
	return signed, nil
}

// Verify decodes the token, checks the signature and then the expiry against
// the current time. Expiry is checked here rather than by the parser so the
// boundary is exact: a token is valid iff now <= exp, with no leeway.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	var claims jwtClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, domain.NewAuthError("invalid token")
		}
		return nil, domain.NewAuthError("token validation failed")
	}

	if claims.ExpiresAt == nil {
		return nil, domain.NewAuthError("invalid token")
	}
	if c.now().After(claims.ExpiresAt.Time) {
		return nil, domain.NewAuthError("token expired")
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return nil, domain.NewAuthError("invalid token")
	}

	out := &Claims{
		Subject:   claims.Subject,
		Role:      role,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	return out, nil
}

// ParseTTL parses an expiration window in the form "<integer><unit>" where
// unit is one of s, m, h, d (e.g. "30d", "12h"). Missing or unparseable
// values fall back to DefaultTTL.
func ParseTTL(s string) time.Duration {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return DefaultTTL
	}

	amount, err := strconv.ParseInt(s[:len(s)-1], 10, 64)
	if err != nil || amount <= 0 {
		return DefaultTTL
	}

	switch s[len(s)-1] {
	case 's':
		return time.Duration(amount) * time.Second
	case 'm':
		return time.Duration(amount) * time.Minute
	case 'h':
		return time.Duration(amount) * time.Hour
	case 'd':
		return time.Duration(amount) * 24 * time.Hour
	default:
		return DefaultTTL
	}
}
