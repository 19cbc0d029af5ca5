package auth

import (
	"time"
)

// DefaultSessionTTL is the lifetime of a session token
const DefaultSessionTTL = 12 * time.Hour

// Authenticator exchanges the admin credentials for a session token
type Authenticator struct {
	credentials *CredentialStore
	tokens      *TokenCodec
	ttl         time.Duration
}

// NewAuthenticator creates an Authenticator; a ttl of zero selects
// DefaultSessionTTL
func NewAuthenticator(credentials *CredentialStore, tokens *TokenCodec, ttl time.Duration) *Authenticator {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Authenticator{
		credentials: credentials,
		tokens:      tokens,
		ttl:         ttl,
	}
}

// TTL returns the lifetime of the issued session tokens
func (a *Authenticator) TTL() time.Duration {
	return a.ttl
}

// Login verifies username and password and returns a new session token.
// An unknown username and a wrong password both yield
// ErrInvalidCredentials.
func (a *Authenticator) Login(username, password string) (string, error) {
	if !a.credentials.MatchUsername(username) {
		return "", ErrInvalidCredentials
	}
	if !a.credentials.VerifyPassword(password) {
		return "", ErrInvalidCredentials
	}
	return a.tokens.Issue(SubjectAdmin, a.ttl)
}
