package adminapi

import (
	"embed"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/folio-cms/folio/auth"
	"github.com/folio-cms/folio/cache"
	"github.com/folio-cms/folio/storage/model"
	"github.com/folio-cms/folio/upload"
)

//go:embed swagger.html openapi.yaml
var assets embed.FS

// Services are the collaborators the routes delegate to
type Services struct {
	Backends      model.Backends
	Authenticator *auth.Authenticator
	Guard         *auth.Guard
	Uploads       *upload.Store
	// Cache holds responses of the public routes; nil disables caching
	Cache cache.Cache
}

// Options controls optional features of the route registration.
type Options struct {
	// ServerURL is advertised in the served OpenAPI document
	ServerURL string
	// CacheTTL is the lifetime of cached public responses; zero keeps them
	// until the next admin write
	CacheTTL time.Duration
}

// Register mounts the admin, upload and public routes on r.
func Register(r fiber.Router, services Services, opts *Options) error {
	if services.Authenticator == nil || services.Guard == nil {
		return errors.New("adminapi: authenticator and guard are required")
	}
	if services.Uploads == nil {
		return errors.New("adminapi: upload store is required")
	}
	if opts == nil {
		opts = &Options{}
	}
	responseCache := services.Cache
	if responseCache == nil {
		responseCache = cache.Noop{}
	}

	openapiRaw, err := assets.ReadFile("openapi.yaml")
	if err != nil {
		return errors.Wrap(err, "adminapi: failed to read openapi.yaml")
	}
	openapiData := updateOpenAPIServers(openapiRaw, opts.ServerURL)
	swaggerHTML, err := assets.ReadFile("swagger.html")
	if err != nil {
		return errors.Wrap(err, "adminapi: failed to read swagger.html")
	}
	r.Get(
		"/openapi.yaml", func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderContentType, "application/yaml")
			return c.Send(openapiData)
		},
	)
	r.Get(
		"/docs", func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
			return c.Send(swaggerHTML)
		},
	)

	guard := requireSession(services.Guard)
	invalidate := publicCacheInvalidationMiddleware(responseCache)

	// Session
	registerAuth(r, services.Authenticator, guard)
	// Uploads
	registerUpload(r, services.Uploads, guard)
	// Entities
	registerCRUD[model.Project](
		r.Group("/projects", guard, invalidate), services.Backends.Projects, model.NewProject,
	)
	registerCRUD[model.Education](
		r.Group("/education", guard, invalidate), services.Backends.Education, newZero[model.Education],
	)
	registerCRUD[model.SkillIcon](
		r.Group("/skills", guard, invalidate), services.Backends.SkillIcons, newZero[model.SkillIcon],
	)
	registerSettings(r.Group("/settings", guard, invalidate), services.Backends.Settings)
	// Public read-only mirror
	registerPublic(r.Group("/public"), services.Backends, responseCache, opts.CacheTTL)
	return nil
}

func updateOpenAPIServers(doc []byte, serverURL string) []byte {
	if len(serverURL) == 0 {
		return doc
	}
	var full map[string]any
	if err := yaml.Unmarshal(doc, &full); err != nil {
		return doc
	}
	full["servers"] = []map[string]any{
		{
			"url":         serverURL,
			"description": "This instance",
		},
	}
	res, err := yaml.Marshal(full)
	if err != nil {
		return doc
	}
	return res
}
