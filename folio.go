package folio

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"

	"github.com/folio-cms/folio/api/adminapi"
	"github.com/folio-cms/folio/internal/version"
)

// DefaultBodyLimit is the request body limit used when none is configured
const DefaultBodyLimit = 100 << 20

// FiberServerConfig is the fiber.Config that is used to init the http fiber.App
var FiberServerConfig = fiber.Config{
	ReadTimeout:    30 * time.Second,
	WriteTimeout:   30 * time.Second,
	IdleTimeout:    150 * time.Second,
	ReadBufferSize: 8192,
	ErrorHandler:   handleError,
	Network:        "tcp",
}

// UploadsConf describes where uploads are stored and under which path they
// are served
type UploadsConf struct {
	Dir       string
	URLPrefix string
}

// Folio is the portfolio content backend: the admin routes, the public
// content mirror and the uploaded files, served by one fiber.App
type Folio struct {
	server     *fiber.App
	serverConf ServerConf
}

// NewFolio creates a new Folio. Access logs are written to accessLog; a nil
// accessLog selects stderr.
func NewFolio(
	serverConf ServerConf, services adminapi.Services, uploads UploadsConf, apiOpts *adminapi.Options,
	accessLog io.Writer,
) (*Folio, error) {
	config := FiberServerConfig
	if tps := serverConf.TrustedProxies; len(tps) > 0 {
		config.TrustedProxies = serverConf.TrustedProxies
		config.EnableTrustedProxyCheck = true
	}
	config.ProxyHeader = serverConf.ForwardedIPHeader
	config.BodyLimit = serverConf.BodyLimit
	if config.BodyLimit == 0 {
		config.BodyLimit = DefaultBodyLimit
	}
	if accessLog == nil {
		accessLog = os.Stderr
	}

	server := fiber.New(config)
	server.Use(recover.New())
	server.Use(requestid.New())
	server.Use(compress.New())
	server.Use(
		logger.New(
			logger.Config{
				Format: "${time} ${locals:requestid} ${ip} ${status} - ${latency} ${method} ${path}\n",
				Output: accessLog,
			},
		),
	)
	if origins := serverConf.CORS.AllowOrigins; len(origins) > 0 {
		server.Use(
			cors.New(
				cors.Config{
					AllowOrigins:     strings.Join(origins, ","),
					AllowCredentials: true,
				},
			),
		)
	}

	server.Get(
		"/version", func(ctx *fiber.Ctx) error {
			return ctx.JSON(fiber.Map{"version": version.VERSION})
		},
	)
	if uploads.Dir != "" {
		prefix := uploads.URLPrefix
		if prefix == "" {
			prefix = "/"
		}
		server.Static(
			prefix, uploads.Dir, fiber.Static{
				Browse: false,
			},
		)
	}
	if err := adminapi.Register(server, services, apiOpts); err != nil {
		return nil, err
	}
	return &Folio{
		server:     server,
		serverConf: serverConf,
	}, nil
}

// HttpHandlerFunc returns an http.HandlerFunc for serving all the necessary endpoints
func (f Folio) HttpHandlerFunc() http.HandlerFunc {
	return adaptor.FiberApp(f.server)
}

// Listen starts an http server at the specific address for serving all the
// necessary endpoints
func (f Folio) Listen(addr string) error {
	return f.server.Listen(addr)
}

// Shutdown gracefully stops the server
func (f Folio) Shutdown() error {
	return f.server.Shutdown()
}

// Start serves folio as configured. It returns after Shutdown and exits
// the process if the server fails.
func (f Folio) Start() {
	conf := f.serverConf
	log.WithField("version", version.VERSION).Info("starting folio")
	if !conf.TLS.Enabled {
		log.WithField("port", conf.Port).Info("TLS is disabled starting http server")
		if err := f.Listen(fmt.Sprintf("%s:%d", conf.IPListen, conf.Port)); err != nil {
			log.WithError(err).Fatal("http server failed")
		}
		return
	}
	// TLS enabled
	if conf.TLS.RedirectHTTP {
		httpServer := fiber.New(FiberServerConfig)
		httpServer.All(
			"*", func(ctx *fiber.Ctx) error {
				//goland:noinspection HttpUrlsUsage
				return ctx.Redirect(
					strings.Replace(ctx.Request().URI().String(), "http://", "https://", 1),
					fiber.StatusPermanentRedirect,
				)
			},
		)
		log.Info("TLS and http redirect enabled, starting redirect server on port 80")
		go func() {
			log.WithError(httpServer.Listen(fmt.Sprintf("%s:80", conf.IPListen))).Fatal()
		}()
	}
	port := conf.Port
	if port == 0 {
		port = 443
	}
	log.WithField("port", port).Info("TLS enabled, starting https server")
	if err := f.server.ListenTLS(fmt.Sprintf("%s:%d", conf.IPListen, port), conf.TLS.Cert, conf.TLS.Key); err != nil {
		log.WithError(err).Fatal("https server failed")
	}
}
