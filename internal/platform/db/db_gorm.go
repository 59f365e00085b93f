// Package db opens and migrates the relational store through GORM.
package db

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	authentity "url_shortener/internal/feature/auth/domain/entity"
	linkentity "url_shortener/internal/feature/links/domain/entity"
)

// retryInterval is the pause between connection attempts.
const retryInterval = 3 * time.Second

// Supported values of Config.Protocol.
const (
	ProtocolSQLite     = "sqlite"
	ProtocolPostgres   = "postgres"
	ProtocolPostgreSQL = "postgresql"
	ProtocolMySQL      = "mysql"
)

// Config holds the database connection settings.
type Config struct {
	Protocol       string        `env:"DATABASE_PROTOCOL" envDefault:"sqlite"`
	User           string        `env:"DATABASE_USER"`
	Password       string        `env:"DATABASE_PASSWORD"`
	Host           string        `env:"DATABASE_HOSTNAME"`
	Port           string        `env:"DATABASE_PORT"`
	Name           string        `env:"DATABASE_NAME" envDefault:"url_shortner.db"`
	ConnectTimeout time.Duration `env:"DATABASE_CONNECT_TIMEOUT" envDefault:"60s"`
}

// LoadConfigFromEnv reads the database settings from environment variables.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse database config: %w", err)
	}
	return cfg, nil
}

// protocol returns the lower-cased protocol, defaulting to SQLite.
func (c Config) protocol() string {
	p := strings.ToLower(strings.TrimSpace(c.Protocol))
	if p == "" {
		return ProtocolSQLite
	}
	return p
}

// BuildDSN renders the driver-specific connection string for cfg.
func BuildDSN(cfg Config) string {
	switch cfg.protocol() {
	case ProtocolPostgres, ProtocolPostgreSQL:
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(cfg.User, cfg.Password),
			Host:   net.JoinHostPort(cfg.Host, cfg.Port),
			Path:   "/" + cfg.Name,
		}
		return u.String()
	case ProtocolMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
	default:
		// Foreign keys are off by default in SQLite; cascades need them.
		sep := "?"
		if strings.Contains(cfg.Name, "?") {
			sep = "&"
		}
		return cfg.Name + sep + "_foreign_keys=on"
	}
}

// Opener opens a GORM connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// NewOpener returns an Opener for the protocol configured in cfg.
func NewOpener(cfg Config, gormCfg *gorm.Config) (Opener, error) {
	var dialect func(dsn string) gorm.Dialector
	switch cfg.protocol() {
	case ProtocolSQLite:
		dialect = sqlite.Open
	case ProtocolPostgres, ProtocolPostgreSQL:
		dialect = postgres.Open
	case ProtocolMySQL:
		dialect = mysql.Open
	default:
		return nil, fmt.Errorf("unsupported database protocol %q", cfg.Protocol)
	}

	return func(dsn string) (*gorm.DB, error) {
		return gorm.Open(dialect(dsn), gormCfg)
	}, nil
}

// ConnectWithRetry calls open until it succeeds or timeout elapses,
// sleeping retryInterval between attempts.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("db connect failed after %v: %w", timeout, err)
		}
		time.Sleep(retryInterval)
	}
}

// Open connects to the configured database, retrying until cfg.ConnectTimeout.
// Unique-constraint violations surface as gorm.ErrDuplicatedKey.
func Open(cfg Config, log *zap.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(zap.NewStdLog(log), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}

	open, err := NewOpener(cfg, gormCfg)
	if err != nil {
		return nil, err
	}

	dsn := BuildDSN(cfg)
	db, err := ConnectWithRetry(dsn, cfg.ConnectTimeout, func(dsn string) (*gorm.DB, error) {
		db, err := open(dsn)
		if err != nil {
			log.Warn("db connect failed, retrying", zap.String("protocol", cfg.protocol()), zap.Error(err))
		}
		return db, err
	})
	if err != nil {
		return nil, err
	}

	if cfg.protocol() == ProtocolSQLite {
		// SQLite allows a single writer; serialise through one connection.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	log.Info("db connected", zap.String("protocol", cfg.protocol()), zap.String("name", cfg.Name))
	return db, nil
}

// Migrate creates or updates the users and urls tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&authentity.User{}, &linkentity.Link{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
