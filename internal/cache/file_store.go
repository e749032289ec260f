package cache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps one JSON file per entry at {rootDir}/{language}/{word}.json.
type FileStore struct {
	rootDir string
}

var _ Store = (*FileStore)(nil)

func NewFileStore(cacheDirectory string) *FileStore {
	return &FileStore{
		rootDir: cacheDirectory,
	}
}

func (f *FileStore) filePath(languageCode, word string) (string, error) {
	languageCode, word, err := normalizeKey(languageCode, word)
	if err != nil {
		return "", err
	}
	return filepath.Join(f.rootDir, languageCode, word+".json"), nil
}

func (f *FileStore) Get(_ context.Context, languageCode, word string) ([]byte, error) {
	localFilePath, err := f.filePath(languageCode, word)
	if err != nil {
		return nil, fmt.Errorf("f.filePath > %w", err)
	}
	contents, err := os.ReadFile(localFilePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile > %w", err)
	}
	return contents, nil
}

// Put writes through a temporary file and a rename so readers never see a partial entry.
func (f *FileStore) Put(_ context.Context, languageCode, word string, payload []byte) error {
	localFilePath, err := f.filePath(languageCode, word)
	if err != nil {
		return fmt.Errorf("f.filePath > %w", err)
	}
	dir := filepath.Dir(localFilePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}

	file, err := os.CreateTemp(dir, ".entry-*.tmp")
	if err != nil {
		return fmt.Errorf("os.CreateTemp > %w", err)
	}
	tmpPath := file.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := file.Write(payload); err != nil {
		_ = file.Close()
		return fmt.Errorf("file.Write > %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("file.Close > %w", err)
	}
	if err := os.Rename(tmpPath, localFilePath); err != nil {
		return fmt.Errorf("os.Rename > %w", err)
	}
	return nil
}

func (f *FileStore) Delete(_ context.Context, languageCode, word string) error {
	localFilePath, err := f.filePath(languageCode, word)
	if err != nil {
		return fmt.Errorf("f.filePath > %w", err)
	}
	if err := os.Remove(localFilePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("os.Remove > %w", err)
	}
	return nil
}

// Key identifies one cached entry.
type Key struct {
	Language string
	Word     string
}

// Keys lists every entry in the store, ordered by language and word.
// A missing root directory is an empty store.
func (f *FileStore) Keys() ([]Key, error) {
	languages, err := os.ReadDir(f.rootDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir(%s) > %w", f.rootDir, err)
	}

	var keys []Key
	for _, language := range languages {
		if !language.IsDir() {
			continue
		}
		languageDir := filepath.Join(f.rootDir, language.Name())
		entries, err := os.ReadDir(languageDir)
		if err != nil {
			return nil, fmt.Errorf("os.ReadDir(%s) > %w", languageDir, err)
		}
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != ".json" {
				continue
			}
			keys = append(keys, Key{Language: language.Name(), Word: strings.TrimSuffix(name, ".json")})
		}
	}
	return keys, nil
}
