package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// SQLStorage persists values in the widget_storage table. The statements are
// kept portable between Postgres (deployment) and SQLite (tests), which both
// understand $N placeholders and excluded-row upserts.
type SQLStorage struct {
	db *sql.DB
}

func NewSQLStorage(db *sql.DB) *SQLStorage {
	return &SQLStorage{db: db}
}

func (s *SQLStorage) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM widget_storage WHERE key = $1`

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		err := fmt.Errorf("could not query widget storage: %w", err)
		log.Error(err)
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLStorage) Set(ctx context.Context, key string, value string) error {
	query := `INSERT INTO widget_storage (key, value) VALUES ($1, $2)
              ON CONFLICT (key) DO UPDATE SET value = excluded.value`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		err := fmt.Errorf("could not write widget storage: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
