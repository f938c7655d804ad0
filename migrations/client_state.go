package migrations

import (
	"database/sql"
	"fmt"
)

// CreateClientState creates the key/value table holding local session state.
func CreateClientState(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS client_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create client_state table: %w", err)
	}
	return nil
}
