package storage

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/folio-cms/folio/storage/model"
)

// DriverType represents the type of database driver
type DriverType string

const (
	// DriverSQLite is the SQLite driver
	DriverSQLite DriverType = "sqlite"
	// DriverMySQL is the MySQL driver
	DriverMySQL DriverType = "mysql"
	// DriverPostgres is the PostgreSQL driver
	DriverPostgres DriverType = "postgres"
)

// SupportedDrivers lists the database drivers folio can connect with
var SupportedDrivers = []DriverType{
	DriverSQLite,
	DriverMySQL,
	DriverPostgres,
}

const (
	sqliteFile        = "folio.db"
	sqliteBusyTimeout = 5 * time.Second
)

// postgresSSLModes are the sslmode values libpq understands
var postgresSSLModes = []string{"disable", "allow", "prefer", "require", "verify-ca", "verify-full"}

// DSNConf holds the connection parameters a MySQL or PostgreSQL DSN is
// built from when no explicit DSN is configured.
type DSNConf struct {
	User     string `yaml:"user"`
	Password string `yaml:"password" env:"FOLIO_DB_PASSWORD"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	DB       string `yaml:"db"`
	// SSLMode is only used for PostgreSQL; empty means "disable"
	SSLMode string `yaml:"sslmode"`
}

// DSN builds the connection string for driver from conf
func DSN(driver DriverType, conf DSNConf) (string, error) {
	if driver == DriverSQLite {
		return "", errors.Errorf("driver %s does not use dsn", driver)
	}
	if conf.Host == "" || conf.DB == "" {
		return "", errors.Errorf("%s needs a host and a database name", driver)
	}
	switch driver {
	case DriverMySQL:
		if conf.Port == 0 {
			conf.Port = 3306
		}
		c := gomysql.NewConfig()
		c.User = conf.User
		c.Passwd = conf.Password
		c.Net = "tcp"
		c.Addr = net.JoinHostPort(conf.Host, strconv.Itoa(conf.Port))
		c.DBName = conf.DB
		c.ParseTime = true
		c.Loc = time.UTC
		c.Params = map[string]string{"charset": "utf8mb4"}
		return c.FormatDSN(), nil
	case DriverPostgres:
		if conf.Port == 0 {
			conf.Port = 5432
		}
		if conf.SSLMode == "" {
			conf.SSLMode = "disable"
		}
		if !slices.Contains(postgresSSLModes, conf.SSLMode) {
			return "", errors.Errorf("unknown postgres sslmode '%s'", conf.SSLMode)
		}
		return fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=UTC",
			pgQuote(conf.Host), pgQuote(conf.User), pgQuote(conf.Password), pgQuote(conf.DB), conf.Port,
			conf.SSLMode,
		), nil
	default:
		return "", errors.Errorf("unsupported driver '%s'", driver)
	}
}

// pgQuote quotes a value for a libpq key/value connection string if needed
func pgQuote(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(v) + "'"
}

// Config represents the database configuration
type Config struct {
	Driver DriverType `yaml:"driver"`
	// DSN is the connection string; for SQLite the database file. An empty
	// DSN selects folio.db in DataDir for SQLite and is an error otherwise.
	DSN     string `yaml:"dsn"`
	DataDir string `yaml:"data_dir"`
	// Debug logs every SQL statement
	Debug bool `yaml:"debug"`
}

// sqliteDSN returns the database file for cfg with a busy timeout, so that
// concurrent writers wait for the lock instead of failing
func sqliteDSN(cfg Config) (string, error) {
	file := cfg.DSN
	if file == "" {
		if err := os.MkdirAll(cfg.DataDir, 0o750); err != nil {
			return "", errors.Wrapf(err, "could not create data directory '%s'", cfg.DataDir)
		}
		file = filepath.Join(cfg.DataDir, sqliteFile)
	}
	if strings.Contains(file, "?") {
		return file, nil
	}
	return fmt.Sprintf("%s?_busy_timeout=%d", file, sqliteBusyTimeout.Milliseconds()), nil
}

// Connect opens the database described by cfg
func Connect(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverSQLite:
		dsn, err := sqliteDSN(cfg)
		if err != nil {
			return nil, err
		}
		dialector = sqlite.Open(dsn)
	case DriverMySQL, DriverPostgres:
		if cfg.DSN == "" {
			return nil, errors.Errorf("no dsn configured for %s", cfg.Driver)
		}
		if cfg.Driver == DriverMySQL {
			dialector = mysql.Open(cfg.DSN)
		} else {
			dialector = postgres.Open(cfg.DSN)
		}
	default:
		return nil, errors.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	logMode := logger.Silent
	if cfg.Debug {
		logMode = logger.Info
	}
	return gorm.Open(
		dialector, &gorm.Config{
			Logger:  logger.Default.LogMode(logMode),
			NowFunc: func() time.Time { return time.Now().UTC() },
		},
	)
}

// LoadStorageBackends opens the database and returns the entity stores
func LoadStorageBackends(cfg Config) (model.Backends, error) {
	s, err := NewStorage(cfg)
	if err != nil {
		return model.Backends{}, err
	}
	return s.Backends(), nil
}
