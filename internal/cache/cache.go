// Package cache stores resolved definitions and negative lookups per language and word.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wordleglobal/glossary/internal/definition"
)

// DefaultNegativeTTL is how long a "no definition" answer is trusted.
const DefaultNegativeTTL = 7 * 24 * time.Hour

// State describes the outcome of a Lookup.
type State string

const (
	StateHit      State = "hit"
	StateNegative State = "negative"
	StateExpired  State = "expired"
	StateMiss     State = "miss"
	StateError    State = "error"
)

// Cache wraps a Store with the entry format and negative-entry expiry.
type Cache struct {
	store       Store
	negativeTTL time.Duration
	now         func() time.Time
}

func New(store Store, negativeTTL time.Duration) *Cache {
	if negativeTTL <= 0 {
		negativeTTL = DefaultNegativeTTL
	}
	return &Cache{
		store:       store,
		negativeTTL: negativeTTL,
		now:         time.Now,
	}
}

// Lookup returns a cached result. The result is nil for every state except StateHit.
// Malformed entries are reported as StateMiss so the caller resolves them again.
func (c *Cache) Lookup(ctx context.Context, languageCode, word string) (*definition.Result, State) {
	entry, err := c.Entry(ctx, languageCode, word)
	switch {
	case errors.Is(err, ErrNotFound):
		return nil, StateMiss
	case errors.Is(err, errMalformedEntry):
		return nil, StateMiss
	case err != nil:
		slog.Default().Debug("cache lookup failed",
			"word", word,
			"language", languageCode,
			"error", err,
		)
		return nil, StateError
	}

	if !entry.NotFound {
		return entry.Result, StateHit
	}
	if c.now().Sub(entry.StoredAt) < c.negativeTTL {
		return nil, StateNegative
	}
	return nil, StateExpired
}

// Entry returns the decoded entry as stored.
func (c *Cache) Entry(ctx context.Context, languageCode, word string) (Entry, error) {
	payload, err := c.store.Get(ctx, languageCode, word)
	if err != nil {
		return Entry{}, fmt.Errorf("store.Get > %w", err)
	}
	entry, err := decodeEntry(payload)
	if err != nil {
		return Entry{}, fmt.Errorf("decodeEntry > %w", errors.Join(errMalformedEntry, err))
	}
	return entry, nil
}

// Store writes result for the key, or a negative entry stamped now when result is nil.
func (c *Cache) Store(ctx context.Context, languageCode, word string, result *definition.Result) error {
	entry := Entry{Result: result, NotFound: result == nil, StoredAt: c.now()}
	payload, err := encodeEntry(entry)
	if err != nil {
		return fmt.Errorf("encodeEntry > %w", err)
	}
	if err := c.store.Put(ctx, languageCode, word, payload); err != nil {
		return fmt.Errorf("store.Put > %w", err)
	}
	return nil
}

// Purge removes the entry for the key. Purging a missing entry is not an error.
func (c *Cache) Purge(ctx context.Context, languageCode, word string) error {
	if err := c.store.Delete(ctx, languageCode, word); err != nil {
		return fmt.Errorf("store.Delete > %w", err)
	}
	return nil
}
