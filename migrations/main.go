package migrations

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

// Migration is one named, idempotent schema change.
type Migration struct {
	Name string
	Fn   func(*sql.DB) error
}

// All lists every migration in the order it must be applied.
var All = []Migration{
	{"create_client_state", CreateClientState},
}

// RunMigrations executes all migrations in the correct order
func RunMigrations(db *sql.DB) error {
	return Run(db, All)
}

// Run applies the given migrations, skipping those already recorded.
func Run(db *sql.DB, migrations []Migration) error {
	zap.S().Debug("Running migrations...")

	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, migration := range migrations {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM migrations WHERE name = ?", migration.Name).Scan(&count)
		if err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}

		if count > 0 {
			zap.S().Debugf("Skipping already applied migration: %s", migration.Name)
			continue
		}

		zap.S().Infof("Applying migration: %s", migration.Name)
		if err := migration.Fn(db); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", migration.Name, err)
		}

		if _, err := db.Exec("INSERT INTO migrations (name) VALUES (?)", migration.Name); err != nil {
			return fmt.Errorf("failed to record migration: %w", err)
		}
	}

	zap.S().Debug("All migrations completed successfully")
	return nil
}

// Applied returns the names of recorded migrations in application order.
func Applied(db *sql.DB) ([]string, error) {
	rows, err := db.Query("SELECT name FROM migrations ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
