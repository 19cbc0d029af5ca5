package adminapi

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"

	"github.com/folio-cms/folio/auth"
	"github.com/folio-cms/folio/cache"
	"github.com/folio-cms/folio/storage"
	"github.com/folio-cms/folio/upload"
)

const (
	testUsername = "admin"
	testPassword = "correct"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

type testEnv struct {
	app     *fiber.App
	codec   *auth.TokenCodec
	uploads afero.Fs
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	hash, err := auth.HashPassword(
		testPassword, auth.Argon2idParams{Time: 1, MemoryKiB: 1024, Parallelism: 1, KeyLen: 32, SaltLen: 16},
	)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	creds, err := auth.NewCredentialStore(testUsername, hash)
	if err != nil {
		t.Fatalf("NewCredentialStore failed: %v", err)
	}
	codec, err := auth.NewTokenCodec(testKey, nil)
	if err != nil {
		t.Fatalf("NewTokenCodec failed: %v", err)
	}
	fs := afero.NewMemMapFs()
	uploads, err := upload.NewStore(fs, "/uploads", 0)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	store, err := storage.NewStorage(
		storage.Config{
			Driver:  storage.DriverSQLite,
			DataDir: t.TempDir(),
		},
	)
	if err != nil {
		t.Fatalf("NewStorage failed: %v", err)
	}
	memory := cache.NewMemory(0)
	t.Cleanup(memory.Close)

	app := fiber.New()
	if err = Register(
		app, Services{
			Backends:      store.Backends(),
			Authenticator: auth.NewAuthenticator(creds, codec, 0),
			Guard:         auth.NewGuard(codec),
			Uploads:       uploads,
			Cache:         memory,
		}, &Options{
			ServerURL: "https://folio.example.com",
			CacheTTL:  time.Minute,
		},
	); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return &testEnv{
		app:     app,
		codec:   codec,
		uploads: fs,
	}
}

func (e *testEnv) do(t *testing.T, req *http.Request, cookie *http.Cookie) *http.Response {
	t.Helper()
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", req.Method, req.URL.Path, err)
	}
	return resp
}

func (e *testEnv) doJSON(t *testing.T, method, path string, body any, cookie *http.Cookie) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("could not marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return e.do(t, req, cookie)
}

func (e *testEnv) login(t *testing.T) *http.Cookie {
	t.Helper()
	resp := e.doJSON(
		t, fiber.MethodPost, "/admin/login", map[string]string{
			"username": testUsername,
			"password": testPassword,
		}, nil,
	)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("login failed with status %d", resp.StatusCode)
	}
	cookie := findCookie(resp, SessionCookieName)
	if cookie == nil {
		t.Fatal("login did not set the session cookie")
	}
	return cookie
}

func (e *testEnv) uploadFile(t *testing.T, filename string, content []byte, cookie *http.Cookie) *http.Response {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if filename != "" {
		part, err := w.CreateFormFile(uploadFormField, filename)
		if err != nil {
			t.Fatalf("could not create form file: %v", err)
		}
		if _, err = part.Write(content); err != nil {
			t.Fatalf("could not write form file: %v", err)
		}
	} else if err := w.WriteField("other", "value"); err != nil {
		t.Fatalf("could not write form field: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("could not close multipart writer: %v", err)
	}
	req := httptest.NewRequest(fiber.MethodPost, "/upload", &body)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return e.do(t, req, cookie)
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func decode(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		t.Fatalf("could not decode response body: %v", err)
	}
}

func expectStatus(t *testing.T, resp *http.Response, status int) {
	t.Helper()
	if resp.StatusCode != status {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected status %d, got %d: %s", status, resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

func expectDetail(t *testing.T, resp *http.Response, status int, want string) {
	t.Helper()
	expectStatus(t, resp, status)
	var body struct {
		Detail string `json:"detail"`
	}
	decode(t, resp, &body)
	if body.Detail != want {
		t.Fatalf("expected detail %q, got %q", want, body.Detail)
	}
}
