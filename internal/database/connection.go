package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel changes the level of the package logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// RetryPolicy controls how often a failed connection is retried
type RetryPolicy struct {
	Delays []time.Duration
}

// DefaultRetryPolicy waits 1s, 2s, 4s and 8s between five attempts
var DefaultRetryPolicy = RetryPolicy{
	Delays: []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second},
}

// InitDatabase connects with DefaultRetryPolicy
func InitDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	return Connect(context.Background(), cfg, DefaultRetryPolicy)
}

// Connect opens the database described by cfg, retrying with backoff until
// it answers a ping, the policy is exhausted or ctx is done.
func Connect(ctx context.Context, cfg DatabaseConfig, policy RetryPolicy) (*gorm.DB, error) {
	dialector, err := newDialector(cfg)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"db_driver": dialector.Name(),
		"db_host":   cfg.Host,
		"db_name":   cfg.Name,
		"db_path":   cfg.Path,
	}).Info("Initializing database connection")

	attempts := len(policy.Delays) + 1
	for attempt := 1; ; attempt++ {
		var db *gorm.DB
		db, err = open(ctx, dialector, cfg)
		if err == nil {
			log.WithFields(logrus.Fields{
				"db_driver": dialector.Name(),
				"attempt":   attempt,
			}).Info("Database initialized successfully")
			return db, nil
		}

		log.WithFields(logrus.Fields{
			"attempt":      attempt,
			"max_attempts": attempts,
			"error":        err.Error(),
		}).Warn("Database connection attempt failed")

		if attempt == attempts {
			break
		}

		delay := policy.Delays[attempt-1]
		log.WithField("delay", delay).Info("Retrying database connection")
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("database connection cancelled: %w", ctx.Err())
		case <-time.After(delay):
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
}

// newDialector selects the gorm driver for cfg.Driver
func newDialector(cfg DatabaseConfig) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Driver) {
	case "postgres", "postgresql":
		return postgres.Open(cfg.DSN()), nil
	case "sqlite", "":
		return sqlite.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", cfg.Driver)
	}
}

// open makes one connection attempt and verifies it with a ping
func open(ctx context.Context, dialector gorm.Dialector, cfg DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, newGormConfig())
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.inMemory() {
		configureSingleConnection(sqlDB)
	} else {
		configureConnectionPool(sqlDB)
	}
	return db, nil
}

// newGormConfig returns the settings shared by every driver.
// TranslateError maps unique and foreign key violations to gorm.ErrDuplicatedKey
// and gorm.ErrForeignKeyViolated so callers do not depend on the driver.
func newGormConfig() *gorm.Config {
	return &gorm.Config{
		NamingStrategy: NamingStrategy{},
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
}

// configureConnectionPool sets up connection pool parameters for optimal performance
func configureConnectionPool(sqlDB *sql.DB) {
	// SetMaxOpenConns sets the maximum number of open connections to the database
	sqlDB.SetMaxOpenConns(25)

	// SetMaxIdleConns sets the maximum number of connections in the idle connection pool
	sqlDB.SetMaxIdleConns(5)

	// SetConnMaxLifetime sets the maximum amount of time a connection may be reused
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	log.WithFields(logrus.Fields{
		"max_open_conns":    25,
		"max_idle_conns":    5,
		"conn_max_lifetime": "5m",
	}).Debug("Connection pool configured")
}

// configureSingleConnection pins an in-memory SQLite database to one connection,
// since every new connection would open a fresh, empty database
func configureSingleConnection(sqlDB *sql.DB) {
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	log.Debug("In-memory database pinned to a single connection")
}

// Migrate creates or updates the tables for every persisted model
func Migrate(db *gorm.DB) error {
	log.Info("Migrating database schema")
	err := db.AutoMigrate(
		&models.Restaurant{},
		&models.Pizza{},
		&models.RestaurantPizza{},
		&models.APIClient{},
		&models.OAuthToken{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}
	return nil
}
