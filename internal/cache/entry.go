package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/wordleglobal/glossary/internal/definition"
)

var errMalformedEntry = errors.New("malformed cache entry")

// Entry is either a resolved definition or a negative marker stamped with its creation time.
type Entry struct {
	Result   *definition.Result
	NotFound bool
	StoredAt time.Time
}

type negativeEntry struct {
	NotFound  bool  `json:"not_found"`
	Timestamp int64 `json:"ts"`
}

func encodeEntry(entry Entry) ([]byte, error) {
	if entry.NotFound || entry.Result == nil {
		return json.Marshal(negativeEntry{NotFound: true, Timestamp: entry.StoredAt.Unix()})
	}
	return json.Marshal(entry.Result)
}

func decodeEntry(payload []byte) (Entry, error) {
	var negative negativeEntry
	if err := json.Unmarshal(payload, &negative); err != nil {
		return Entry{}, fmt.Errorf("json.Unmarshal > %w", err)
	}
	if negative.NotFound {
		return Entry{NotFound: true, StoredAt: time.Unix(negative.Timestamp, 0)}, nil
	}

	var result definition.Result
	if err := json.Unmarshal(payload, &result); err != nil {
		return Entry{}, fmt.Errorf("json.Unmarshal > %w", err)
	}
	if result.Definition == "" || result.Source == "" {
		return Entry{}, errMalformedEntry
	}
	return Entry{Result: &result}, nil
}

// Validate reports whether payload decodes as a positive or negative entry.
func Validate(payload []byte) error {
	_, err := decodeEntry(payload)
	return err
}
