// Package token creates and validates the signed session tokens the service
// hands out at login. Tokens are self-contained HS256 JWTs; validity is
// decided purely by signature and expiry, there is no server-side session
// record and no revocation.
package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired means the token was well-formed and correctly signed
	// but its expiry has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid covers every other decode failure: bad signature,
	// malformed structure, wrong signing algorithm, missing claims.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims is the payload signed into every session token.
type Claims struct {
	UserID     int  `json:"user_id"`
	RememberMe bool `json:"remember_me"`
	jwt.RegisteredClaims
}

// Codec issues and decodes session tokens. The signing secret and lifetimes
// are fixed at construction and never change afterwards.
type Codec struct {
	secret      []byte
	defaultTTL  time.Duration
	rememberTTL time.Duration
	now         func() time.Time
}

// NewCodec creates a Codec. The secret must be non-empty; callers are
// expected to have validated configuration at startup.
func NewCodec(secret []byte, defaultTTL, rememberTTL time.Duration) *Codec {
	return &Codec{
		secret:      secret,
		defaultTTL:  defaultTTL,
		rememberTTL: rememberTTL,
		now:         time.Now,
	}
}

// TTL returns the token lifetime for the given remember flag. The session
// cookie max-age is derived from this same value so the cookie can never
// outlive or underlive the token.
func (c *Codec) TTL(rememberMe bool) time.Duration {
	if rememberMe {
		return c.rememberTTL
	}
	return c.defaultTTL
}

// Issue signs a token for the given account. Subject is the account email,
// expiry is now plus the lifetime selected by rememberMe.
func (c *Codec) Issue(email string, userID int, rememberMe bool) (string, error) {
	now := c.now()
	claims := Claims{
		UserID:     userID,
		RememberMe: rememberMe,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.TTL(rememberMe))),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// stripBearer removes an optional "Bearer " scheme prefix and surrounding
// whitespace, so tokens taken straight from an Authorization header or the
// session cookie decode the same way.
func stripBearer(token string) string {
	token = strings.TrimSpace(token)
	token = strings.TrimPrefix(token, "Bearer ")
	return strings.TrimSpace(token)
}

// Decode verifies the signature and structure of token and returns its
// claims. Expired tokens fail with ErrTokenExpired; every other failure maps
// to ErrTokenInvalid. The two cases are distinct so callers can branch.
func (c *Codec) Decode(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(stripBearer(token), claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return c.secret, nil
		},
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// Alive decodes token and re-checks expiry against the current clock with a
// fresh comparison, independent of the library's own validation. It returns
// ErrTokenInvalid when the exp claim is absent and ErrTokenExpired when it
// has passed.
func (c *Codec) Alive(token string) error {
	claims, err := c.Decode(token)
	if err != nil {
		return err
	}
	if claims.ExpiresAt == nil {
		return fmt.Errorf("%w: missing exp claim", ErrTokenInvalid)
	}
	if claims.ExpiresAt.Time.Before(c.now()) {
		return ErrTokenExpired
	}
	return nil
}
