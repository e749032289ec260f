package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// SQLStore keeps entries in the definition_cache table. The statements are portable
// between MySQL and SQLite.
type SQLStore struct {
	db  *sqlx.DB
	now func() time.Time
}

var _ Store = (*SQLStore)(nil)

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db, now: time.Now}
}

// CachedPayload is a row of the definition_cache table.
type CachedPayload struct {
	Language  string `db:"language"`
	Word      string `db:"word"`
	Payload   string `db:"payload"`
	UpdatedAt int64  `db:"updated_at"`
}

func (s *SQLStore) Get(ctx context.Context, languageCode, word string) ([]byte, error) {
	languageCode, word, err := normalizeKey(languageCode, word)
	if err != nil {
		return nil, fmt.Errorf("normalizeKey > %w", err)
	}

	var row CachedPayload
	err = s.db.GetContext(ctx, &row,
		"SELECT language, word, payload, updated_at FROM definition_cache WHERE language = ? AND word = ?",
		languageCode, word)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(definition_cache) > %w", err)
	}
	return []byte(row.Payload), nil
}

func (s *SQLStore) Put(ctx context.Context, languageCode, word string, payload []byte) error {
	languageCode, word, err := normalizeKey(languageCode, word)
	if err != nil {
		return fmt.Errorf("normalizeKey > %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`REPLACE INTO definition_cache (language, word, payload, updated_at) VALUES (?, ?, ?, ?)`,
		languageCode, word, string(payload), s.now().Unix())
	if err != nil {
		return fmt.Errorf("db.ExecContext(replace definition_cache) > %w", err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, languageCode, word string) error {
	languageCode, word, err := normalizeKey(languageCode, word)
	if err != nil {
		return fmt.Errorf("normalizeKey > %w", err)
	}

	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM definition_cache WHERE language = ? AND word = ?",
		languageCode, word); err != nil {
		return fmt.Errorf("db.ExecContext(delete definition_cache) > %w", err)
	}
	return nil
}
