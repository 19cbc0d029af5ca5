package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/argon2"
)

// Argon2idParams configures Argon2id hashing parameters
type Argon2idParams struct {
	Time        uint32 `yaml:"time"`
	MemoryKiB   uint32 `yaml:"memory_kib"`
	Parallelism uint8  `yaml:"parallelism"`
	KeyLen      uint32 `yaml:"key_len"`
	SaltLen     uint32 `yaml:"salt_len"`
}

// DefaultArgon2idParams returns the parameters used when none are configured
func DefaultArgon2idParams() Argon2idParams {
	return Argon2idParams{Time: 1, MemoryKiB: 64 * 1024, Parallelism: 4, KeyLen: 32, SaltLen: 16}
}

// CredentialStore holds the credentials of the single admin. It is
// immutable after construction and safe for concurrent use.
type CredentialStore struct {
	username     string
	passwordHash string
}

// NewCredentialStore creates a CredentialStore for the passed username and
// PHC-formatted argon2id password hash. The hash is parsed once so that a
// broken configuration is reported at start-up instead of at the first login.
func NewCredentialStore(username, passwordHash string) (*CredentialStore, error) {
	if username == "" {
		return nil, errors.New("admin username must not be empty")
	}
	if _, _, _, err := parseArgon2id(passwordHash); err != nil {
		return nil, errors.Wrap(err, "invalid admin password hash")
	}
	return &CredentialStore{
		username:     username,
		passwordHash: passwordHash,
	}, nil
}

// Username returns the configured admin username
func (s *CredentialStore) Username() string {
	return s.username
}

// MatchUsername reports whether candidate is the admin username
func (s *CredentialStore) MatchUsername(candidate string) bool {
	return candidate == s.username
}

// VerifyPassword reports whether candidate matches the stored password
// hash. Any verification error counts as a mismatch.
func (s *CredentialStore) VerifyPassword(candidate string) bool {
	ok, err := verifyPasswordArgon2id(s.passwordHash, candidate)
	if err != nil {
		log.WithError(err).Error("could not verify admin password")
		return false
	}
	return ok
}

// HashPassword returns a PHC-formatted argon2id hash of password that can
// be used as the configured admin password hash.
func HashPassword(password string, p Argon2idParams) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	return hashPasswordArgon2id(password, p)
}

// hashPasswordArgon2id returns a PHC-formatted argon2id hash string
// Format: $argon2id$v=19$m=65536,t=1,p=4$<saltB64>$<hashB64>
func hashPasswordArgon2id(password string, p Argon2idParams) (string, error) {
	if p.Time == 0 {
		p = DefaultArgon2idParams()
	}
	salt := make([]byte, p.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	dk := argon2.IDKey([]byte(password), salt, p.Time, p.MemoryKiB, p.Parallelism, p.KeyLen)
	saltB64 := base64.RawStdEncoding.EncodeToString(salt)
	hashB64 := base64.RawStdEncoding.EncodeToString(dk)
	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s", argon2.Version, p.MemoryKiB, p.Time, p.Parallelism, saltB64, hashB64,
	), nil
}

// verifyPasswordArgon2id verifies the given password against a PHC-formatted argon2id hash
func verifyPasswordArgon2id(encoded, password string) (bool, error) {
	params, salt, hash, err := parseArgon2id(encoded)
	if err != nil {
		return false, err
	}
	dk := argon2.IDKey([]byte(password), salt, params.Time, params.MemoryKiB, params.Parallelism, uint32(len(hash)))
	return subtle.ConstantTimeCompare(dk, hash) == 1, nil
}

// parseArgon2id parses a PHC-formatted argon2id hash and returns parameters, salt and hash bytes.
func parseArgon2id(encoded string) (Argon2idParams, []byte, []byte, error) {
	var out Argon2idParams
	if !strings.HasPrefix(encoded, "$argon2id$") {
		return out, nil, nil, errors.Errorf("unsupported password hash format")
	}
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return out, nil, nil, errors.Errorf("invalid argon2id hash format")
	}
	if parts[2] != fmt.Sprintf("v=%d", argon2.Version) {
		return out, nil, nil, errors.Errorf("unsupported argon2 version")
	}
	for _, kv := range strings.Split(parts[3], ",") {
		key, value, found := strings.Cut(kv, "=")
		if !found {
			return out, nil, nil, errors.Errorf("invalid argon2 parameter '%s'", kv)
		}
		switch key {
		case "m":
			v, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return out, nil, nil, errors.Wrap(err, "invalid argon2 memory")
			}
			out.MemoryKiB = uint32(v)
		case "t":
			v, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return out, nil, nil, errors.Wrap(err, "invalid argon2 time")
			}
			out.Time = uint32(v)
		case "p":
			v, err := strconv.ParseUint(value, 10, 8)
			if err != nil {
				return out, nil, nil, errors.Wrap(err, "invalid argon2 parallelism")
			}
			out.Parallelism = uint8(v)
		}
	}
	if out.Time == 0 || out.MemoryKiB == 0 || out.Parallelism == 0 {
		return out, nil, nil, errors.Errorf("incomplete argon2 parameters")
	}
	salt, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(parts[4], "="))
	if err != nil {
		return out, nil, nil, errors.Wrap(err, "invalid argon2 salt")
	}
	hash, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(parts[5], "="))
	if err != nil {
		return out, nil, nil, errors.Wrap(err, "invalid argon2 hash")
	}
	if len(hash) == 0 {
		return out, nil, nil, errors.Errorf("empty argon2 hash")
	}
	out.SaltLen = uint32(len(salt))
	out.KeyLen = uint32(len(hash))
	return out, salt, hash, nil
}
