// Package testutil provides shared test helpers for config files and fake upstream services.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wordleglobal/glossary/internal/dictionary"
)

// SetupTestConfig creates a minimal config file with a file cache under tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	cacheDir := filepath.Join(tmpDir, "cache")
	require.NoError(t, os.MkdirAll(cacheDir, 0755))

	configContent := fmt.Sprintf(`cache:
  backend: file
  directory: %s
dictionaries:
  native_url_format: https://%%s.wiktionary.org
  english_url: https://en.wiktionary.org
`, cacheDir)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithAPIKey creates a config file with a fake OpenAI API key for tests
// that exercise the generative fallback.
func SetupTestConfigWithAPIKey(t *testing.T, tmpDir string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	content = append(content, []byte("openai:\n  api_key: fake-key-for-testing\n  model: gpt-4o-mini\n")...)
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))
	return cfgPath
}

// WiktionaryPages is the content served by a fake Wiktionary.
type WiktionaryPages struct {
	// Native maps subdomain and title to a plaintext extract
	Native map[string]map[string]string
	// English maps a lowercased word to a REST definition response body
	English map[string]string
}

// WiktionaryServer is a fake of both Wiktionary endpoints that counts the requests it serves.
type WiktionaryServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests int
}

// NewWiktionaryServer starts a fake Wiktionary serving pages. It is closed on test cleanup.
func NewWiktionaryServer(t *testing.T, pages WiktionaryPages) *WiktionaryServer {
	t.Helper()

	s := &WiktionaryServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests++
		s.mu.Unlock()

		if strings.HasPrefix(r.URL.Path, "/api/rest_v1/page/definition/") {
			word := strings.TrimPrefix(r.URL.Path, "/api/rest_v1/page/definition/")
			body, ok := pages.English[word]
			if !ok {
				http.NotFound(w, r)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
			return
		}

		subdomain, rest, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/")
		if rest != "w/api.php" {
			http.NotFound(w, r)
			return
		}
		title := r.URL.Query().Get("titles")
		pagesByID := map[string]any{
			"-1": map[string]any{"ns": 0, "title": title, "missing": ""},
		}
		if extract, ok := pages.Native[subdomain][title]; ok {
			pagesByID = map[string]any{
				"1": map[string]any{"pageid": 1, "ns": 0, "title": title, "extract": extract},
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"query": map[string]any{"pages": pagesByID},
		})
	}))
	t.Cleanup(s.Close)
	return s
}

// Requests returns the number of requests served so far.
func (s *WiktionaryServer) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

// DictionaryConfig points the dictionary readers at the fake server.
func (s *WiktionaryServer) DictionaryConfig() dictionary.Config {
	return dictionary.Config{
		NativeURLFormat: s.URL + "/%s",
		EnglishURL:      s.URL,
		UserAgent:       "glossary-test",
		Timeout:         time.Second,
	}
}

// NewOpenAIServer starts a fake chat completions endpoint that always answers with content.
func NewOpenAIServer(t *testing.T, content string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		})
	}))
	t.Cleanup(server.Close)
	return server
}
