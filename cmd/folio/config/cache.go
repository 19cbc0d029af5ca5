package config

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/zachmann/go-utils/duration"

	"github.com/folio-cms/folio/cache"
)

type cachingConf struct {
	Disabled   bool                    `yaml:"disabled"`
	RedisAddr  string                  `yaml:"redis_addr"`
	Username   string                  `yaml:"username"`
	Password   string                  `yaml:"password"`
	RedisDB    int                     `yaml:"redis_db"`
	MaxEntries int                     `yaml:"max_entries"`
	TTL        duration.DurationOption `yaml:"ttl"`
}

var defaultCachingConf = cachingConf{
	TTL: duration.DurationOption(5 * time.Minute),
}

func (c *cachingConf) validate() error {
	if c.TTL.Duration() < 0 {
		return errors.New("error in caching conf: ttl must not be negative")
	}
	if c.MaxEntries < 0 {
		return errors.New("error in caching conf: max_entries must not be negative")
	}
	return nil
}

// NewCache creates the configured response cache: nothing if caching is
// disabled, redis if an address is set and an in-memory cache otherwise
func (c cachingConf) NewCache(ctx context.Context) (cache.Cache, error) {
	if c.Disabled {
		log.Info("Caching is disabled")
		return cache.Noop{}, nil
	}
	if c.RedisAddr != "" {
		r, err := cache.NewRedis(
			ctx, &redis.Options{
				Addr:     c.RedisAddr,
				Username: c.Username,
				Password: c.Password,
				DB:       c.RedisDB,
			},
		)
		if err != nil {
			return nil, err
		}
		log.WithField("addr", c.RedisAddr).Info("Loaded Redis Cache")
		return r, nil
	}
	log.Info("Loaded in-memory cache")
	return cache.NewMemory(c.MaxEntries), nil
}
