package auth

import (
	log "github.com/sirupsen/logrus"
)

// SubjectAdmin is the subject of every session token issued by folio
const SubjectAdmin = "admin"

// Guard decides whether a request carrying a session token may reach a
// protected endpoint.
type Guard struct {
	tokens *TokenCodec
}

// NewGuard creates a Guard verifying tokens with the passed codec
func NewGuard(tokens *TokenCodec) *Guard {
	return &Guard{tokens: tokens}
}

// Authorize returns the claims of token if it is a valid admin session.
// Every failure is reported as ErrForbidden; the cause is only logged.
func (g *Guard) Authorize(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrForbidden
	}
	claims, err := g.tokens.Verify(token)
	if err != nil {
		log.WithError(err).Debug("rejected session token")
		return nil, ErrForbidden
	}
	if claims.Subject != SubjectAdmin {
		log.WithField("subject", claims.Subject).Debug("rejected session token with foreign subject")
		return nil, ErrForbidden
	}
	return claims, nil
}
