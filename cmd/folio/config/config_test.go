package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/folio-cms/folio/storage"
)

const testHash = "$argon2id$v=19$m=1024,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g"

const minimalConfig = `
admin:
  password_hash: "` + testHash + `"
  session:
    secret: "0123456789abcdef0123456789abcdef"
`

func TestParseDefaults(t *testing.T) {
	conf, err := parse([]byte(minimalConfig))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if conf.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", conf.Server.Port)
	}
	if len(conf.Server.CORS.AllowOrigins) != 1 || conf.Server.CORS.AllowOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected cors origins %v", conf.Server.CORS.AllowOrigins)
	}
	if conf.Admin.Username != "admin" {
		t.Fatalf("expected default username, got %q", conf.Admin.Username)
	}
	if conf.Admin.Session.Method != jwt.SigningMethodHS256 {
		t.Fatalf("expected HS256, got %v", conf.Admin.Session.Method)
	}
	if string(conf.Admin.Session.Key) != "0123456789abcdef0123456789abcdef" {
		t.Fatal("expected the configured secret as signing key")
	}
	if conf.Admin.Session.TTL.Duration() != 12*time.Hour {
		t.Fatalf("expected 12h session ttl, got %s", conf.Admin.Session.TTL.Duration())
	}
	if conf.Storage.Driver != storage.DriverSQLite {
		t.Fatalf("expected sqlite, got %s", conf.Storage.Driver)
	}
	if conf.Upload.PublicURL() != "/uploads" {
		t.Fatalf("unexpected upload url %q", conf.Upload.PublicURL())
	}
	if conf.Caching.TTL.Duration() != 5*time.Minute {
		t.Fatalf("unexpected cache ttl %s", conf.Caching.TTL.Duration())
	}
}

func TestParseFullConfig(t *testing.T) {
	data := minimalConfig + `
server:
  port: 9000
  cors:
    allow_origins:
      - https://portfolio.example.com
storage:
  driver: postgres
  user: folio
  password: pw
  host: db
  db: content
caching:
  ttl: 30s
  max_entries: 10
upload:
  dir: /srv/uploads
  url_prefix: media/
  base_url: https://cdn.example.com/
  max_size: 1048576
`
	data = strings.Replace(data, "  session:\n", "  session:\n    alg: HS512\n    ttl: 1h\n", 1)
	conf, err := parse([]byte(data))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if conf.Server.Port != 9000 || conf.Server.CORS.AllowOrigins[0] != "https://portfolio.example.com" {
		t.Fatalf("unexpected server conf %+v", conf.Server)
	}
	if conf.Admin.Session.Method != jwt.SigningMethodHS512 || conf.Admin.Session.TTL.Duration() != time.Hour {
		t.Fatalf("unexpected session conf %+v", conf.Admin.Session)
	}
	if !strings.Contains(conf.Storage.DSN, "host=db") || !strings.Contains(conf.Storage.DSN, "dbname=content") {
		t.Fatalf("unexpected dsn %q", conf.Storage.DSN)
	}
	if conf.Caching.TTL.Duration() != 30*time.Second || conf.Caching.MaxEntries != 10 {
		t.Fatalf("unexpected caching conf %+v", conf.Caching)
	}
	if got := conf.Upload.PublicURL(); got != "https://cdn.example.com/media" {
		t.Fatalf("unexpected upload url %q", got)
	}
	if conf.Server.BodyLimit != 1048576+multipartOverhead {
		t.Fatalf("expected body limit derived from upload size, got %d", conf.Server.BodyLimit)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SECRET_KEY", "from-the-environment-from-the-environment")
	t.Setenv("ADMIN_USERNAME", "owner")
	t.Setenv("ADMIN_PASSWORD_HASH", testHash)
	t.Setenv("FOLIO_DB_DSN", "/tmp/folio-test.db")
	t.Setenv("FOLIO_REDIS_ADDR", "redis:6379")
	t.Setenv("FOLIO_UPLOAD_DIR", "/data/uploads")
	t.Setenv("FOLIO_UPLOAD_BASE_URL", "https://files.example.com")

	conf, err := parse(nil)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if string(conf.Admin.Session.Key) != "from-the-environment-from-the-environment" {
		t.Fatal("expected SECRET_KEY to be used")
	}
	if conf.Admin.Username != "owner" || conf.Admin.PasswordHash != testHash {
		t.Fatalf("unexpected admin conf %+v", conf.Admin)
	}
	if conf.Storage.DSN != "/tmp/folio-test.db" {
		t.Fatalf("unexpected dsn %q", conf.Storage.DSN)
	}
	if conf.Caching.RedisAddr != "redis:6379" {
		t.Fatalf("unexpected redis addr %q", conf.Caching.RedisAddr)
	}
	if conf.Upload.Dir != "/data/uploads" || conf.Upload.PublicURL() != "https://files.example.com/uploads" {
		t.Fatalf("unexpected upload conf %+v", conf.Upload)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("SECRET_KEY", "environment-secret-environment-secret")
	t.Setenv("FOLIO_DB_PASSWORD", "env-password")
	conf, err := parse([]byte(minimalConfig + "storage:\n  driver: mysql\n  password: file-password\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if string(conf.Admin.Session.Key) != "environment-secret-environment-secret" {
		t.Fatal("expected the environment to take precedence over the file")
	}
	if !strings.Contains(conf.Storage.DSN, ":env-password@") {
		t.Fatalf("expected FOLIO_DB_PASSWORD in dsn, got %q", conf.Storage.DSN)
	}
}

func TestSessionKeyFile(t *testing.T) {
	keyFile := filepath.Join(t.TempDir(), "session.jwk")
	// base64url of "0123456789abcdef0123456789abcdef"
	jwk := `{"kty":"oct","k":"MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY"}`
	if err := os.WriteFile(keyFile, []byte(jwk), 0o600); err != nil {
		t.Fatal(err)
	}
	data := "admin:\n  password_hash: \"" + testHash + "\"\n  session:\n    key_file: " + keyFile + "\n"
	conf, err := parse([]byte(data))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if string(conf.Admin.Session.Key) != "0123456789abcdef0123456789abcdef" {
		t.Fatalf("unexpected key %q", conf.Admin.Session.Key)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing password hash", "admin:\n  session:\n    secret: s\n"},
		{"missing secret", "admin:\n  password_hash: \"" + testHash + "\"\n"},
		{"asymmetric alg", strings.Replace(minimalConfig, "  session:\n", "  session:\n    alg: ES256\n", 1)},
		{"unknown alg", strings.Replace(minimalConfig, "  session:\n", "  session:\n    alg: XX1\n", 1)},
		{"short ttl", strings.Replace(minimalConfig, "  session:\n", "  session:\n    ttl: 10s\n", 1)},
		{"unknown driver", minimalConfig + "storage:\n  driver: oracle\n"},
		{"root url prefix", minimalConfig + "upload:\n  url_prefix: /\n"},
		{"relative base url", minimalConfig + "upload:\n  base_url: cdn.example.com\n"},
		{"negative max size", minimalConfig + "upload:\n  max_size: -1\n"},
		{"missing log dir", minimalConfig + "logging:\n  internal:\n    dir: /does/not/exist\n"},
		{"wildcard cors", minimalConfig + "server:\n  cors:\n    allow_origins: ['*']\n"},
		{"tls without cert", minimalConfig + "server:\n  tls:\n    enabled: true\n"},
		{"not yaml", "admin: [\n"},
	}
	for _, test := range tests {
		t.Run(
			test.name, func(t *testing.T) {
				if _, err := parse([]byte(test.data)); err == nil {
					t.Fatal("expected an error")
				}
			},
		)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(minimalConfig), 0o600); err != nil {
		t.Fatal(err)
	}
	conf, err := load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if conf.Admin.PasswordHash != testHash {
		t.Fatal("expected password hash from file")
	}
	if _, err = load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadStorageConfIgnoresOtherSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "storage:\n  driver: postgres\n  host: db\n  db: content\n  sslmode: require\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := load(path); err == nil {
		t.Fatal("expected the full config to require admin credentials")
	}
	conf, err := loadStorageConf(path)
	if err != nil {
		t.Fatalf("loadStorageConf failed: %v", err)
	}
	if !strings.Contains(conf.DSN, "host=db") || !strings.Contains(conf.DSN, "sslmode=require") {
		t.Fatalf("unexpected dsn %q", conf.DSN)
	}

	t.Setenv("FOLIO_DB_DSN", "host=other dbname=x")
	if conf, err = loadStorageConf(path); err != nil {
		t.Fatalf("loadStorageConf failed: %v", err)
	}
	if conf.DSN != "host=other dbname=x" {
		t.Fatalf("expected FOLIO_DB_DSN to win, got %q", conf.DSN)
	}
	if err = os.WriteFile(path, []byte("storage:\n  driver: oracle\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err = loadStorageConf(path); err == nil {
		t.Fatal("expected an unsupported driver to be rejected")
	}
}
