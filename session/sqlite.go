package session

import (
	"database/sql"

	"github.com/pkg/errors"

	"admindash/security"
)

// SQLiteStorage persists values in the client_state table of the local
// state database, encrypted at rest.
type SQLiteStorage struct {
	db     *sql.DB
	cipher *security.Cipher
}

func NewSQLiteStorage(db *sql.DB, cipher *security.Cipher) *SQLiteStorage {
	return &SQLiteStorage{db: db, cipher: cipher}
}

func (s *SQLiteStorage) Get(key string) (string, bool, error) {
	var encrypted string
	err := s.db.QueryRow("SELECT value FROM client_state WHERE key = ?", key).Scan(&encrypted)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "reading %s", key)
	}

	value, err := s.cipher.Decrypt(encrypted)
	if err != nil {
		return "", false, errors.Wrapf(err, "decrypting %s", key)
	}
	return value, true, nil
}

func (s *SQLiteStorage) Set(key, value string) error {
	encrypted, err := s.cipher.Encrypt(value)
	if err != nil {
		return errors.Wrapf(err, "encrypting %s", key)
	}

	_, err = s.db.Exec(`
		INSERT INTO client_state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, encrypted)
	return errors.Wrapf(err, "writing %s", key)
}

func (s *SQLiteStorage) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM client_state WHERE key = ?", key)
	return errors.Wrapf(err, "deleting %s", key)
}
