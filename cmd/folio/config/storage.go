package config

import (
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/folio-cms/folio/storage"
	"github.com/folio-cms/folio/storage/model"
)

type storageConf struct {
	storage.DSNConf `yaml:",inline"`

	Driver  storage.DriverType `yaml:"driver"`
	DataDir string             `yaml:"data_dir"`
	DSN     string             `yaml:"dsn"`
	Debug   bool               `yaml:"debug"`
}

func (c *storageConf) validate() error {
	if !slices.Contains(storage.SupportedDrivers, c.Driver) {
		return errors.Errorf("error in storage conf: unsupported driver '%s'", c.Driver)
	}
	if c.Driver == storage.DriverSQLite {
		if c.DataDir == "" && c.DSN == "" {
			return errors.New("error in storage conf: data_dir must be specified")
		}
		return nil
	}
	var err error
	if c.DSN == "" {
		c.DSN, err = storage.DSN(c.Driver, c.DSNConf)
	}
	return err
}

var defaultStorageConf = storageConf{
	Driver:  storage.DriverSQLite,
	DataDir: ".",
	DSNConf: storage.DSNConf{
		User: "folio",
		Host: "localhost",
		DB:   "folio",
	},
	Debug: false,
}

// LoadStorageBackends loads and returns the storage backends for the passed Config
func LoadStorageBackends(c storageConf) (model.Backends, error) {
	cfg := storage.Config{
		Driver:  c.Driver,
		DSN:     c.DSN,
		DataDir: c.DataDir,
		Debug:   c.Debug,
	}
	backs, err := storage.LoadStorageBackends(cfg)
	if err != nil {
		return model.Backends{}, err
	}
	log.WithField("driver", c.Driver).Info("Loaded storage backend")
	return backs, nil
}

// OpenStorage loads only the storage section of the config file (and its
// environment overrides) and opens the database. Tools that just read
// content use it, so they do not need the admin credentials configured.
func OpenStorage(filename string) (model.Backends, error) {
	conf, err := loadStorageConf(filename)
	if err != nil {
		return model.Backends{}, err
	}
	return LoadStorageBackends(conf)
}

func loadStorageConf(filename string) (storageConf, error) {
	data, err := readConfigFile(filename)
	if err != nil {
		return storageConf{}, err
	}
	conf := struct {
		Storage storageConf `yaml:"storage"`
	}{Storage: defaultStorageConf}
	if err = yaml.Unmarshal(data, &conf); err != nil {
		return storageConf{}, errors.Wrap(err, "could not parse config")
	}
	var overrides envOverrides
	if err = env.Parse(&overrides); err != nil {
		return storageConf{}, errors.Wrap(err, "could not parse environment")
	}
	if err = env.Parse(&conf.Storage.DSNConf); err != nil {
		return storageConf{}, errors.Wrap(err, "could not parse environment")
	}
	if overrides.DBDSN != "" {
		conf.Storage.DSN = overrides.DBDSN
	}
	if err = conf.Storage.validate(); err != nil {
		return storageConf{}, errors.Wrap(err, "validation failed for field 'Storage'")
	}
	return conf.Storage, nil
}
