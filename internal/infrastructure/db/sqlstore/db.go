// Package sqlstore implements the relational repositories on gorm. Postgres is
// the production driver; sqlite serves local development and tests.
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	slowQueryThreshold = 200 * time.Millisecond
)

type Config struct {
	Driver string
	DSN    string
	Logger zerolog.Logger
}

// Open connects with gorm error translation enabled, so unique and foreign
// key violations surface as gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated.
func Open(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	case DriverSQLite:
		dialector = sqlite.Open(sqliteDSN(cfg.DSN))
	default:
		return nil, fmt.Errorf("sqlstore: unsupported driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(gormWriter{log: cfg.Logger}, gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}

	if cfg.Driver == DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// sqlite serialises writers; one connection also keeps :memory: databases alive.
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// Migrate creates or updates every table, index and constraint.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel{},
		&employerModel{},
		&jobModel{},
		&applicationModel{},
		&notificationModel{},
		&financialResourceModel{},
		&resourceLikeModel{},
	); err != nil {
		return fmt.Errorf("failed to automigrate tables, %w", err)
	}
	return nil
}

// Ping checks the underlying connection pool.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// sqliteDSN turns on foreign key enforcement, which sqlite leaves off by default.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

// translate maps gorm's translated errors to domain errors. A nil target
// leaves that class of error untouched.
func translate(err, notFound, duplicate, missingParent error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case duplicate != nil && errors.Is(err, gorm.ErrDuplicatedKey):
		return duplicate
	case missingParent != nil && errors.Is(err, gorm.ErrForeignKeyViolated):
		return missingParent
	}
	return err
}

type gormWriter struct {
	log zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.Warn().Str("component", "gorm").Msgf(format, args...)
}
