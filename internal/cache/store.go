package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

//go:generate mockgen -source=store.go -destination=../mocks/cache/mock_store.go -package=mock_cache

// ErrNotFound is returned by a Store when no entry exists for the key.
var ErrNotFound = errors.New("cache entry not found")

// Store persists encoded entries keyed by language code and lowercased word.
type Store interface {
	Get(ctx context.Context, languageCode, word string) ([]byte, error)
	Put(ctx context.Context, languageCode, word string, payload []byte) error
	Delete(ctx context.Context, languageCode, word string) error
}

// normalizeKey lowercases the word and rejects keys that cannot be stored safely.
func normalizeKey(languageCode, word string) (string, string, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if languageCode == "" || word == "" {
		return "", "", fmt.Errorf("empty cache key %q/%q", languageCode, word)
	}
	if strings.ContainsAny(languageCode+word, `/\`) || word == "." || word == ".." {
		return "", "", fmt.Errorf("invalid cache key %q/%q", languageCode, word)
	}
	return languageCode, word, nil
}
