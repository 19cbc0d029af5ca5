package config

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

type uploadConf struct {
	Dir       string `yaml:"dir"`
	URLPrefix string `yaml:"url_prefix"`
	BaseURL   string `yaml:"base_url"`
	MaxSize   int64  `yaml:"max_size"`
}

var defaultUploadConf = uploadConf{
	Dir:       "uploads",
	URLPrefix: "/uploads",
}

func (c *uploadConf) validate() error {
	if c.Dir == "" {
		return errors.New("error in upload conf: dir must be specified")
	}
	c.URLPrefix = "/" + strings.Trim(c.URLPrefix, "/")
	if c.URLPrefix == "/" {
		return errors.New("error in upload conf: url_prefix must not be empty or '/'")
	}
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errors.Errorf("error in upload conf: base_url '%s' must be an absolute http(s) url", c.BaseURL)
		}
		c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	}
	if c.MaxSize < 0 {
		return errors.New("error in upload conf: max_size must not be negative")
	}
	return nil
}

// PublicURL returns the URL under which the upload directory is served
func (c uploadConf) PublicURL() string {
	return c.BaseURL + c.URLPrefix
}
