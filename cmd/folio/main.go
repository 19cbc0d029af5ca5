package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/folio-cms/folio"
	"github.com/folio-cms/folio/api/adminapi"
	"github.com/folio-cms/folio/auth"
	"github.com/folio-cms/folio/cmd/folio/config"
	"github.com/folio-cms/folio/internal/logger"
	"github.com/folio-cms/folio/upload"
)

func main() {
	var configFile string
	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}
	config.Load(configFile)
	c := config.Get()
	if err := logger.Init(c.Logging.Internal); err != nil {
		log.WithError(err).Fatal("could not init logger")
	}
	log.Info("Loaded Config")
	accessLog, err := logger.AccessWriter(c.Logging.Access)
	if err != nil {
		log.WithError(err).Fatal("could not open access log")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	responseCache, err := c.Caching.NewCache(ctx)
	cancel()
	if err != nil {
		log.WithError(err).Fatal("could not init cache")
	}

	backs, err := config.LoadStorageBackends(c.Storage)
	if err != nil {
		log.Fatal(err)
	}

	credentials, err := auth.NewCredentialStore(c.Admin.Username, c.Admin.PasswordHash)
	if err != nil {
		log.Fatal(err)
	}
	log.WithField("username", credentials.Username()).Info("Loaded admin credentials")
	tokens, err := auth.NewTokenCodec(c.Admin.Session.Key, c.Admin.Session.Method)
	if err != nil {
		log.Fatal(err)
	}
	log.WithField("alg", c.Admin.Session.Method.Alg()).Info("Loaded session signing key")

	uploads, err := upload.NewOSStore(c.Upload.Dir, c.Upload.PublicURL(), c.Upload.MaxSize)
	if err != nil {
		log.Fatal(err)
	}
	log.WithField("dir", c.Upload.Dir).Info("Initialized upload store")

	f, err := folio.NewFolio(
		c.Server,
		adminapi.Services{
			Backends:      backs,
			Authenticator: auth.NewAuthenticator(credentials, tokens, c.Admin.Session.TTL.Duration()),
			Guard:         auth.NewGuard(tokens),
			Uploads:       uploads,
			Cache:         responseCache,
		},
		folio.UploadsConf{
			Dir:       c.Upload.Dir,
			URLPrefix: c.Upload.URLPrefix,
		},
		&adminapi.Options{
			ServerURL: c.Server.ExternalURL,
			CacheTTL:  c.Caching.TTL.Duration(),
		},
		accessLog,
	)
	if err != nil {
		log.Fatal(err)
	}
	log.Info("Added Endpoints")

	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
		sig := <-signals
		log.WithField("signal", sig.String()).Info("shutting down")
		if err := f.Shutdown(); err != nil {
			log.WithError(err).Error("could not shut down gracefully")
		}
		os.Exit(0)
	}()
	f.Start()
}
