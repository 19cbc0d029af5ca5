package auth

import (
	"os"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/pkg/errors"
)

// minKeyLen is the shortest signing key accepted without a warning
const minKeyLen = 32

// SigningMethod returns the HMAC signing method for the JOSE algorithm name
// alg, e.g. "HS256". Non-HMAC algorithms are rejected.
func SigningMethod(alg string) (*jwt.SigningMethodHMAC, error) {
	a, ok := jwa.LookupSignatureAlgorithm(alg)
	if !ok {
		return nil, errors.Errorf("unknown signing algorithm '%s'", alg)
	}
	method, ok := jwt.GetSigningMethod(a.String()).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, errors.Errorf("signing algorithm '%s' is not an HMAC algorithm", alg)
	}
	return method, nil
}

// LoadSigningKey returns the symmetric session signing key. An inline
// secret takes precedence; otherwise keyFile must hold a JWK of type "oct".
func LoadSigningKey(secret, keyFile string) ([]byte, error) {
	if secret != "" {
		return []byte(secret), nil
	}
	if keyFile == "" {
		return nil, errors.New("neither a session secret nor a key file is configured")
	}
	data, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, errors.Wrap(err, "could not read session key file")
	}
	key, err := jwk.ParseKey(data)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse session key file")
	}
	var raw []byte
	if err = jwk.Export(key, &raw); err != nil {
		return nil, errors.Wrap(err, "session key file does not hold a symmetric key")
	}
	if len(raw) == 0 {
		return nil, errors.New("session key file holds an empty key")
	}
	return raw, nil
}

// IsWeakKey reports whether key is shorter than recommended for HMAC
func IsWeakKey(key []byte) bool {
	return len(key) < minKeyLen
}
