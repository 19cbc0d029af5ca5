package adminapi

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/folio-cms/folio/cache"
)

// publicCacheNamespace is the first part of the cache keys of all public
// responses
const publicCacheNamespace = "public"

// publicCacheInvalidationMiddleware clears the cached public responses for
// requests that successfully modify content. Reads pass through untouched.
func publicCacheInvalidationMiddleware(responseCache cache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodGet || c.Method() == fiber.MethodHead {
			return c.Next()
		}
		if err := c.Next(); err != nil {
			return err
		}
		status := c.Response().StatusCode()
		if status >= 200 && status < 400 {
			if err := responseCache.Clear(c.UserContext(), cache.Prefix(publicCacheNamespace)); err != nil {
				log.WithError(err).Warn("could not clear public response cache")
			}
		}
		return nil
	}
}
