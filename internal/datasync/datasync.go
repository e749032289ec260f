// Package datasync copies cached definitions from a file cache directory into another store.
package datasync

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/wordleglobal/glossary/internal/cache"
)

// ImportResult tracks counts for each import outcome.
type ImportResult struct {
	New     int
	Skipped int
	Updated int
	Invalid int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun         bool
	UpdateExisting bool
}

// Importer reads entries from a file cache and writes them to a target store.
type Importer struct {
	source *cache.FileStore
	target cache.Store
	writer io.Writer
}

func NewImporter(source *cache.FileStore, target cache.Store, writer io.Writer) *Importer {
	return &Importer{
		source: source,
		target: target,
		writer: writer,
	}
}

// Import copies every valid entry. Malformed entries are reported and left out.
func (imp *Importer) Import(ctx context.Context, opts ImportOptions) (*ImportResult, error) {
	keys, err := imp.source.Keys()
	if err != nil {
		return nil, fmt.Errorf("source.Keys() > %w", err)
	}

	var result ImportResult
	for _, key := range keys {
		if err := imp.importEntry(ctx, key, opts, &result); err != nil {
			return nil, fmt.Errorf("importEntry(%s/%s) > %w", key.Language, key.Word, err)
		}
	}
	return &result, nil
}

func (imp *Importer) importEntry(ctx context.Context, key cache.Key, opts ImportOptions, result *ImportResult) error {
	payload, err := imp.source.Get(ctx, key.Language, key.Word)
	if err != nil {
		return fmt.Errorf("source.Get() > %w", err)
	}
	if err := cache.Validate(payload); err != nil {
		fmt.Fprintf(imp.writer, "  [INVALID]  %s/%s: %v\n", key.Language, key.Word, err)
		result.Invalid++
		return nil
	}

	existing, err := imp.target.Get(ctx, key.Language, key.Word)
	switch {
	case errors.Is(err, cache.ErrNotFound):
		if !opts.DryRun {
			if err := imp.target.Put(ctx, key.Language, key.Word, payload); err != nil {
				return fmt.Errorf("target.Put() > %w", err)
			}
		}
		fmt.Fprintf(imp.writer, "  [NEW]  %s/%s\n", key.Language, key.Word)
		result.New++
		return nil
	case err != nil:
		return fmt.Errorf("target.Get() > %w", err)
	}

	if !opts.UpdateExisting || bytes.Equal(existing, payload) {
		fmt.Fprintf(imp.writer, "  [SKIP]  %s/%s\n", key.Language, key.Word)
		result.Skipped++
		return nil
	}
	if !opts.DryRun {
		if err := imp.target.Put(ctx, key.Language, key.Word, payload); err != nil {
			return fmt.Errorf("target.Put() > %w", err)
		}
	}
	fmt.Fprintf(imp.writer, "  [UPDATE]  %s/%s\n", key.Language, key.Word)
	result.Updated++
	return nil
}
