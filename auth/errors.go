package auth

// Error is the error type returned by this package. All values are
// constants, so callers compare with errors.Is or ==.
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	// ErrMalformed is returned for tokens that cannot be parsed
	ErrMalformed Error = "malformed session token"
	// ErrInvalidSignature is returned for tokens whose signature does not
	// match their content
	ErrInvalidSignature Error = "invalid session token signature"
	// ErrExpired is returned for correctly signed tokens past their expiry
	ErrExpired Error = "session token expired"
	// ErrForbidden is the only error the Guard returns, whatever check failed
	ErrForbidden Error = "Forbidden"
	// ErrInvalidCredentials is returned by a failed login, whatever check failed
	ErrInvalidCredentials Error = "Invalid credentials"
)
