package database

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"admindash/migrations"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

type poolLimits struct {
	maxOpen  int
	maxIdle  int
	lifetime time.Duration
}

// poolFor keeps an in-memory database on a single connection that is never
// recycled, since a fresh connection would see a new empty database.
func poolFor(path string) poolLimits {
	if path == MemoryPath {
		return poolLimits{maxOpen: 1, maxIdle: 1}
	}
	return poolLimits{maxOpen: 5, maxIdle: 5, lifetime: time.Minute * 5}
}

// Open opens the local state database at path, applies the connection
// pragmas and runs all pending migrations.
func Open(path string) (*sql.DB, error) {
	if path != MemoryPath {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return nil, errors.Wrapf(err, "creating state directory %s", dir)
			}
		}
	}

	dsn := path + "?_journal=WAL&_timeout=10000&_busy_timeout=10000"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "opening state database")
	}

	pool := poolFor(path)
	db.SetMaxOpenConns(pool.maxOpen)
	db.SetMaxIdleConns(pool.maxIdle)
	db.SetConnMaxLifetime(pool.lifetime)

	if path != MemoryPath {
		if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			db.Close()
			return nil, errors.Wrap(err, "setting journal mode")
		}
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000;"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "setting busy timeout")
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "connecting to state database")
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "migrating state database")
	}

	zap.S().Debugw("state database ready", "path", path)
	return db, nil
}
