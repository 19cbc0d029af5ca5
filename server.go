package folio

import (
	"strings"

	"github.com/pkg/errors"
)

// ServerConf holds the configuration of the http server
type ServerConf struct {
	IPListen          string   `yaml:"ip_listen"`
	Port              int      `yaml:"port"`
	TLS               tlsConf  `yaml:"tls"`
	TrustedProxies    []string `yaml:"trusted_proxies"`
	ForwardedIPHeader string   `yaml:"forwarded_ip_header"`
	CORS              CORSConf `yaml:"cors"`

	// ExternalURL is the URL clients reach folio under; it is advertised in
	// the API documentation
	ExternalURL string `yaml:"external_url"`
	// BodyLimit is the maximum request body size in bytes; uploads count
	// against it
	BodyLimit int `yaml:"body_limit"`
}

type tlsConf struct {
	Enabled      bool   `yaml:"enabled"`
	RedirectHTTP bool   `yaml:"redirect_http"`
	Cert         string `yaml:"cert"`
	Key          string `yaml:"key"`
}

// CORSConf lists the origins allowed to make credentialed cross-origin requests
type CORSConf struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

// Validate checks the server configuration
func (c *ServerConf) Validate() error {
	if c.TLS.Enabled && (c.TLS.Cert == "" || c.TLS.Key == "") {
		return errors.New("error in server conf: tls.cert and tls.key must be specified if tls is enabled")
	}
	if c.Port < 0 || c.Port > 65535 {
		return errors.Errorf("error in server conf: invalid port %d", c.Port)
	}
	if c.BodyLimit < 0 {
		return errors.New("error in server conf: body_limit must not be negative")
	}
	for _, o := range c.CORS.AllowOrigins {
		if strings.TrimSpace(o) == "*" {
			// the session cookie requires credentialed requests, which
			// browsers refuse for wildcard origins
			return errors.New("error in server conf: cors.allow_origins must not contain '*'")
		}
	}
	return nil
}
