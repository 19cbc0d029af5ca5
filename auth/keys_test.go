package auth

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
)

func TestSigningMethod(t *testing.T) {
	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		method, err := SigningMethod(alg)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", alg, err)
		}
		if method.Alg() != alg {
			t.Fatalf("expected %s, got %s", alg, method.Alg())
		}
	}
	for _, alg := range []string{"ES256", "RS256", "none-such", ""} {
		if _, err := SigningMethod(alg); err == nil {
			t.Fatalf("%s: expected an error", alg)
		}
	}
}

func TestLoadSigningKey(t *testing.T) {
	key, err := LoadSigningKey("inline secret", "/does/not/matter")
	if err != nil || string(key) != "inline secret" {
		t.Fatalf("expected inline secret to win, got %q, %v", key, err)
	}

	raw := []byte("0123456789abcdef0123456789abcdef")
	file := filepath.Join(t.TempDir(), "session.jwk")
	jwkJSON := `{"kty":"oct","k":"` + base64.RawURLEncoding.EncodeToString(raw) + `"}`
	if err = os.WriteFile(file, []byte(jwkJSON), 0o600); err != nil {
		t.Fatalf("could not write key file: %v", err)
	}
	key, err = LoadSigningKey("", file)
	if err != nil {
		t.Fatalf("LoadSigningKey failed: %v", err)
	}
	if !bytes.Equal(key, raw) {
		t.Fatalf("unexpected key %x", key)
	}
	if IsWeakKey(key) {
		t.Fatal("a 32 byte key is not weak")
	}

	if _, err = LoadSigningKey("", ""); err == nil {
		t.Fatal("expected an error without secret and key file")
	}
	if _, err = LoadSigningKey("", filepath.Join(t.TempDir(), "missing.jwk")); err == nil {
		t.Fatal("expected an error for a missing key file")
	}
}
