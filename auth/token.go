package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Claims are the verified contents of a session token
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenCodec issues and verifies self-contained session tokens: JWTs
// signed with a symmetric HMAC key. It holds no mutable state.
type TokenCodec struct {
	method *jwt.SigningMethodHMAC
	key    []byte
	now    func() time.Time
	parser *jwt.Parser
}

// CodecOption configures a TokenCodec
type CodecOption func(*TokenCodec)

// WithClock replaces the clock used to set and check token expiry
func WithClock(now func() time.Time) CodecOption {
	return func(c *TokenCodec) {
		c.now = now
	}
}

// NewTokenCodec creates a TokenCodec signing with key and method. A nil
// method selects HS256.
func NewTokenCodec(key []byte, method *jwt.SigningMethodHMAC, opts ...CodecOption) (*TokenCodec, error) {
	if len(key) == 0 {
		return nil, errors.New("session signing key must not be empty")
	}
	if method == nil {
		method = jwt.SigningMethodHS256
	}
	c := &TokenCodec{
		method: method,
		key:    key,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	// strict decoding rejects signatures with non-zero trailing bits, which
	// would otherwise decode to the same MAC as the issued one
	c.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithoutClaimsValidation(),
		jwt.WithStrictDecoding(),
	)
	return c, nil
}

// Issue returns a signed token for subject that expires after ttl.
// Timestamps have second precision; the issue time is truncated.
func (c *TokenCodec) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", errors.Errorf("session token lifetime must be positive, got %s", ttl)
	}
	now := c.now().Truncate(time.Second)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token, err := jwt.NewWithClaims(c.method, claims).SignedString(c.key)
	if err != nil {
		return "", errors.Wrap(err, "could not sign session token")
	}
	return token, nil
}

// Verify checks token and returns its claims. The signature is checked
// before the content is interpreted, so any change to the signed part or
// the signature yields ErrInvalidSignature. A token that does not have
// three segments, or whose signed content is not a JWT with an expiry,
// yields ErrMalformed. A token at or past its expiry yields ErrExpired.
func (c *TokenCodec) Verify(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, ErrMalformed
	}
	sig, err := c.parser.DecodeSegment(parts[2])
	if err != nil {
		return nil, ErrInvalidSignature
	}
	if err = c.method.Verify(parts[0]+"."+parts[1], sig, c.key); err != nil {
		return nil, ErrInvalidSignature
	}

	var registered jwt.RegisteredClaims
	if _, err = c.parser.ParseWithClaims(
		token, &registered, func(*jwt.Token) (any, error) {
			return c.key, nil
		},
	); err != nil {
		log.WithError(err).Debug("signed session token could not be parsed")
		return nil, ErrMalformed
	}
	if registered.ExpiresAt == nil {
		return nil, ErrMalformed
	}
	claims := &Claims{
		Subject:   registered.Subject,
		ExpiresAt: registered.ExpiresAt.Time,
	}
	if registered.IssuedAt != nil {
		claims.IssuedAt = registered.IssuedAt.Time
	}
	if !c.now().Before(claims.ExpiresAt) {
		return nil, ErrExpired
	}
	return claims, nil
}
