package auth

import (
	"testing"
	"time"
)

var testParams = Argon2idParams{Time: 1, MemoryKiB: 1024, Parallelism: 1, KeyLen: 32, SaltLen: 16}

var testKey = []byte("0123456789abcdef0123456789abcdef")

// fixedClock returns a clock frozen at start that can be moved with the
// returned setter
func fixedClock(start time.Time) (func() time.Time, func(time.Time)) {
	now := start
	return func() time.Time { return now }, func(t time.Time) { now = t }
}

func newTestCredentials(t *testing.T, username, password string) *CredentialStore {
	t.Helper()
	hash, err := HashPassword(password, testParams)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	creds, err := NewCredentialStore(username, hash)
	if err != nil {
		t.Fatalf("NewCredentialStore failed: %v", err)
	}
	return creds
}

func newTestCodec(t *testing.T, opts ...CodecOption) *TokenCodec {
	t.Helper()
	codec, err := NewTokenCodec(testKey, nil, opts...)
	if err != nil {
		t.Fatalf("NewTokenCodec failed: %v", err)
	}
	return codec
}
