package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"seotda-server/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file" // needed
	_ "github.com/lib/pq"                                // postgres driver
	"github.com/sirupsen/logrus"
)

const defaultDSN = "postgres://postgres@localhost:5432/postgres?sslmode=disable"

var (
	instance *sql.DB
	lock     sync.Mutex
)

// Instance returns a database instance
// It panics if the database cannot be reached
func Instance() *sql.DB {
	lock.Lock()
	defer lock.Unlock()

	if instance == nil {
		db, err := Open(context.Background(), dsn())
		if err != nil {
			panic(err)
		}

		instance = db
	}

	return instance
}

func dsn() string {
	if dsn := config.Instance().PGDSN; dsn != "" {
		return dsn
	}

	return defaultDSN
}

// Open connects to postgres and pings it once
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// WaitForDB keeps pinging until the database is up or the timeout expires
func WaitForDB(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(time.Millisecond * 500)
	defer ticker.Stop()

	for {
		db, err := Open(ctx, dsn())
		if err == nil {
			lock.Lock()
			if instance == nil {
				instance = db
			} else {
				_ = db.Close()
			}
			lock.Unlock()

			return nil
		}

		logrus.WithError(err).Debug("database is not ready")

		select {
		case <-ctx.Done():
			return fmt.Errorf("could not connect to database: %w", err)
		case <-ticker.C:
		}
	}
}

func newMigrate() (*migrate.Migrate, error) {
	migrationsPath := config.Instance().MigrationsPath

	driver, err := postgres.WithInstance(Instance(), &postgres.Config{})
	if err != nil {
		return nil, err
	}

	logrus.WithField("migrationsPath", migrationsPath).Debug("loading migrations")
	return migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsPath), "postgres", driver)
}

// Migrate runs every pending up migration
func Migrate() error {
	m, err := newMigrate()
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// MigrateDown rolls back the given number of migrations
func MigrateDown(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}

	m, err := newMigrate()
	if err != nil {
		return err
	}

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// Version returns the current schema version
// A zero version with no error means no migration was applied yet
func Version() (version uint, dirty bool, err error) {
	m, err := newMigrate()
	if err != nil {
		return 0, false, err
	}

	version, dirty, err = m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}

	return version, dirty, err
}

// Scanner is an interface that sql should've provided
// No snark here...
type Scanner interface {
	Scan(...interface{}) error
}
