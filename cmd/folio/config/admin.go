package config

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/zachmann/go-utils/duration"

	"github.com/folio-cms/folio/auth"
)

// adminConf holds the credentials of the single admin and the session settings
type adminConf struct {
	Username     string      `yaml:"username"`
	PasswordHash string      `yaml:"password_hash"`
	Session      sessionConf `yaml:"session"`
}

type sessionConf struct {
	Secret  string                  `yaml:"secret"`
	KeyFile string                  `yaml:"key_file"`
	Alg     string                  `yaml:"alg"`
	TTL     duration.DurationOption `yaml:"ttl"`
	Method  *jwt.SigningMethodHMAC  `yaml:"-"`
	Key     []byte                  `yaml:"-"`
}

var defaultAdminConf = adminConf{
	Username: "admin",
	Session: sessionConf{
		Alg: "HS256",
		TTL: duration.DurationOption(auth.DefaultSessionTTL),
	},
}

func (c *adminConf) validate() error {
	if c.Username == "" {
		return errors.New("error in admin conf: username must be specified")
	}
	if c.PasswordHash == "" {
		return errors.New("error in admin conf: password_hash must be specified (or ADMIN_PASSWORD_HASH)")
	}
	return c.Session.validate()
}

func (c *sessionConf) validate() error {
	var err error
	c.Method, err = auth.SigningMethod(c.Alg)
	if err != nil {
		return errors.Wrap(err, "error in session conf")
	}
	c.Key, err = auth.LoadSigningKey(c.Secret, c.KeyFile)
	if err != nil {
		return errors.Wrap(err, "error in session conf: a secret (or SECRET_KEY) or key_file must be specified")
	}
	if auth.IsWeakKey(c.Key) {
		log.Warn("the session signing key is shorter than 32 bytes; use 'foliocli gen-secret' to create a strong one")
	}
	if c.TTL.Duration() <= 0 {
		c.TTL = duration.DurationOption(auth.DefaultSessionTTL)
	}
	if c.TTL.Duration() < time.Minute {
		return errors.New("error in session conf: ttl must be at least one minute")
	}
	return nil
}
