package storage

import (
	"database/sql"
	"errors"
	"time"
)

// SQLStore backs the key/value contract with the kv_store table. The same
// statements work on sqlite and postgres.
type SQLStore struct{ db *sql.DB }

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Load(key string) ([]byte, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv_store WHERE key=$1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(value), nil
}

func (s *SQLStore) Save(key string, value []byte) error {
	_, err := s.db.Exec(`INSERT INTO kv_store (key,value,updated_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value, updated_at=EXCLUDED.updated_at`,
		key, string(value), time.Now().Unix())
	return err
}
