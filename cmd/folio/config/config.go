package config

import (
	"os"
	"path/filepath"
	"reflect"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/zachmann/go-utils/fileutils"
	"gopkg.in/yaml.v3"

	"github.com/folio-cms/folio"
)

// Config holds the complete configuration of the folio server
type Config struct {
	Server  folio.ServerConf `yaml:"server"`
	Logging loggingConf      `yaml:"logging"`
	Storage storageConf      `yaml:"storage"`
	Caching cachingConf      `yaml:"caching"`
	Admin   adminConf        `yaml:"admin"`
	Upload  uploadConf       `yaml:"upload"`
}

type configValidator interface {
	validate() error
}

// envOverrides are the environment variables that take precedence over the
// configuration file
type envOverrides struct {
	SecretKey         string `env:"SECRET_KEY"`
	AdminUsername     string `env:"ADMIN_USERNAME"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`
	DBDSN             string `env:"FOLIO_DB_DSN"`
	RedisAddr         string `env:"FOLIO_REDIS_ADDR"`
	UploadDir         string `env:"FOLIO_UPLOAD_DIR"`
	UploadBaseURL     string `env:"FOLIO_UPLOAD_BASE_URL"`
}

var defaultConfig = Config{
	Server:  defaultServerConf,
	Logging: defaultLoggingConf,
	Storage: defaultStorageConf,
	Caching: defaultCachingConf,
	Admin:   defaultAdminConf,
	Upload:  defaultUploadConf,
}

const configFileName = "config.yaml"

var possibleConfigLocations = []string{
	".",
	"config",
	"/config",
	"/folio",
	"/folio/config",
	"/etc/folio",
}

var c *Config

// Get returns the loaded Config
func Get() Config {
	if c == nil {
		log.Fatal("config not loaded")
	}
	return *c
}

// Load reads the config file, applies environment overrides and validates
// the result. Without a file name the default locations are searched; if
// no file is found the defaults and the environment are used. Errors are
// fatal.
func Load(filename string) {
	conf, err := load(filename)
	if err != nil {
		log.WithError(err).Fatal("could not load config")
	}
	c = conf
}

func load(filename string) (*Config, error) {
	data, err := readConfigFile(filename)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

// readConfigFile returns the content of filename or, without a file name,
// of the first config file found. No file yields no data.
func readConfigFile(filename string) ([]byte, error) {
	if filename == "" {
		filename = findConfigFile()
	}
	if filename == "" {
		return nil, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read config file '%s'", filename)
	}
	return data, nil
}

func findConfigFile() string {
	for _, dir := range possibleConfigLocations {
		path := filepath.Join(dir, configFileName)
		if fileutils.FileExists(path) {
			return path
		}
	}
	return ""
}

// parse builds a validated Config from yaml data and the environment
func parse(data []byte) (*Config, error) {
	conf := defaultConfig
	conf.Server.CORS.AllowOrigins = append([]string(nil), defaultConfig.Server.CORS.AllowOrigins...)
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &conf); err != nil {
			return nil, errors.Wrap(err, "could not parse config")
		}
	}
	if err := conf.applyEnv(); err != nil {
		return nil, err
	}
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (conf *Config) applyEnv() error {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return errors.Wrap(err, "could not parse environment")
	}
	if err := env.Parse(&conf.Storage.DSNConf); err != nil {
		return errors.Wrap(err, "could not parse environment")
	}
	set := func(target *string, value string) {
		if value != "" {
			*target = value
		}
	}
	set(&conf.Admin.Session.Secret, overrides.SecretKey)
	set(&conf.Admin.Username, overrides.AdminUsername)
	set(&conf.Admin.PasswordHash, overrides.AdminPasswordHash)
	set(&conf.Storage.DSN, overrides.DBDSN)
	set(&conf.Caching.RedisAddr, overrides.RedisAddr)
	set(&conf.Upload.Dir, overrides.UploadDir)
	set(&conf.Upload.BaseURL, overrides.UploadBaseURL)
	return nil
}

func (conf *Config) validate() error {
	if err := conf.Server.Validate(); err != nil {
		return err
	}
	v := reflect.ValueOf(conf).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		fieldVal := v.Field(i)
		if !fieldVal.CanAddr() {
			continue
		}
		if validator, ok := fieldVal.Addr().Interface().(configValidator); ok {
			if err := validator.validate(); err != nil {
				return errors.Errorf("validation failed for field '%s': %s", t.Field(i).Name, err.Error())
			}
		}
	}
	if conf.Server.BodyLimit == 0 && conf.Upload.MaxSize > 0 {
		conf.Server.BodyLimit = int(conf.Upload.MaxSize) + multipartOverhead
	}
	return nil
}
