package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the cookie that carries the encoded session.
const CookieName = "linkhub_session"

// ErrInvalidToken is returned by Decode for tokens that are malformed,
// tampered with, expired, or carry a session violating the view invariant.
var ErrInvalidToken = errors.New("invalid session token")

type claims struct {
	Authenticated bool   `json:"auth"`
	Username      string `json:"username,omitempty"`
	View          string `json:"view"`
	jwt.RegisteredClaims
}

// Codec signs sessions into compact tokens and back. It carries view state
// between requests; it does not vouch for who the visitor is.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec builds a codec signing with HS256 under secret. A non-positive ttl
// means tokens never expire.
func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Encode signs s.
func (c *Codec) Encode(s Session) (string, error) {
	now := c.now()
	rc := jwt.RegisteredClaims{
		ID:       uuid.NewString(),
		IssuedAt: jwt.NewNumericDate(now),
	}
	if c.ttl > 0 {
		rc.ExpiresAt = jwt.NewNumericDate(now.Add(c.ttl))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Authenticated:    s.Authenticated,
		Username:         s.Username,
		View:             string(s.View),
		RegisteredClaims: rc,
	})
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return signed, nil
}

// Decode verifies raw and returns the session it carries.
func (c *Codec) Decode(raw string) (Session, error) {
	var cl claims
	_, err := jwt.ParseWithClaims(raw, &cl, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return New(), fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	view, err := ParseView(cl.View)
	if err != nil {
		return New(), fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	s := Session{Authenticated: cl.Authenticated, Username: cl.Username, View: view}
	if !s.Valid() {
		return New(), fmt.Errorf("%w: dashboard without login", ErrInvalidToken)
	}
	return s, nil
}

// DecodeOrNew is Decode that falls back to the initial session. An empty raw
// value is the normal case for a first visit and is not reported as an error.
func (c *Codec) DecodeOrNew(raw string) (Session, error) {
	if raw == "" {
		return New(), nil
	}
	return c.Decode(raw)
}
