package adminapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/folio-cms/folio/cache"
	"github.com/folio-cms/folio/storage/model"
)

// cacheStatusHeader tells whether a public response came from the cache
const cacheStatusHeader = "X-Cache"

// registerPublic wires the unauthenticated read-only routes the portfolio
// site renders from
func registerPublic(g fiber.Router, backends model.Backends, responseCache cache.Cache, ttl time.Duration) {
	g.Get("/projects", cachedJSON(responseCache, ttl, "projects", backends.Projects.List))
	g.Get("/education", cachedJSON(responseCache, ttl, "education", backends.Education.List))
	g.Get("/skills", cachedJSON(responseCache, ttl, "skills", backends.SkillIcons.List))
	g.Get("/settings", cachedJSON(responseCache, ttl, "settings", backends.Settings.Current))
}

// cachedJSON answers with the cached value of name or, on a miss, with the
// freshly loaded one, which is then cached. Cache failures only cost the
// cache; errors of load are not cached.
func cachedJSON[T any](
	responseCache cache.Cache, ttl time.Duration, name string, load func() (T, error),
) fiber.Handler {
	key := cache.Key(publicCacheNamespace, name)
	return func(c *fiber.Ctx) error {
		var value T
		found, err := responseCache.Get(c.UserContext(), key, &value)
		if err != nil {
			log.WithError(err).WithField("key", key).Warn("could not read from response cache")
		}
		if found {
			c.Set(cacheStatusHeader, "HIT")
			return c.JSON(value)
		}
		value, err = load()
		if err != nil {
			return storeError(c, err)
		}
		if err = responseCache.Set(c.UserContext(), key, value, ttl); err != nil {
			log.WithError(err).WithField("key", key).Warn("could not write to response cache")
		}
		c.Set(cacheStatusHeader, "MISS")
		return c.JSON(value)
	}
}
