package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ErrEmptyDSN is returned by Connect when no connection string was configured.
var ErrEmptyDSN = errors.New("postgres DSN is empty")

const (
	pingTimeout     = 5 * time.Second
	slowQuery       = 200 * time.Millisecond
	maxOpenConns    = 10
	connMaxLifetime = 30 * time.Minute
)

// Connect opens a pooled PostgreSQL handle via GORM and pings it. Slow queries and
// driver errors are reported through logger.
func Connect(ctx context.Context, dsn string, logger *slog.Logger) (*gorm.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, ErrEmptyDSN
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: newGormLogger(logger)})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// ConnectOptional dials PostgreSQL when dsn is set. Any failure is logged and yields a nil
// handle, so patients stay in memory and northwind stays on sqlite. The returned cleanup is
// never nil.
func ConnectOptional(ctx context.Context, dsn string, logger *slog.Logger) (*gorm.DB, func()) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	noop := func() {}
	if strings.TrimSpace(dsn) == "" {
		logger.Warn("POSTGRES_DSN not set, using in-memory patients and sqlite northwind")
		return nil, noop
	}
	db, err := Connect(ctx, dsn, logger)
	if err != nil {
		logger.Warn("postgres unavailable, using in-memory patients and sqlite northwind", slog.String("error", err.Error()))
		return nil, noop
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("postgres handle unusable", slog.String("error", err.Error()))
		return nil, noop
	}
	logger.Info("postgres connection established")
	return db, func() { _ = sqlDB.Close() }
}

// slogWriter adapts gorm's Printf-style logger output to slog.
type slogWriter struct {
	logger *slog.Logger
}

func (w slogWriter) Printf(format string, args ...any) {
	w.logger.Warn("gorm", slog.String("message", fmt.Sprintf(format, args...)))
}

func newGormLogger(logger *slog.Logger) gormlogger.Interface {
	if logger == nil {
		return gormlogger.Discard
	}
	return gormlogger.New(slogWriter{logger: logger}, gormlogger.Config{
		SlowThreshold:             slowQuery,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}
