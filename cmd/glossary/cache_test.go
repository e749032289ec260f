package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordleglobal/glossary/internal/testutil"
)

func TestCacheCommands(t *testing.T) {
	server := testutil.NewWiktionaryServer(t, testutil.WiktionaryPages{
		Native: map[string]map[string]string{
			"fi": {"koira": "== koira ==\n=== Substantiivi ===\nnelijalkainen kotieläin\n"},
		},
	})
	configPath, cacheDir := writeConfig(t, server.URL)
	run := func(args ...string) string {
		t.Helper()
		got, err := execute(t, append([]string{"--config", configPath}, args...)...)
		require.NoError(t, err)
		return got
	}

	assert.Equal(t, "koira is not cached\n", run("cache", "show", "koira", "--lang", "fi"))

	run("lookup", "koira", "--lang", "fi")
	assert.Equal(t,
		"result:\n    definition: nelijalkainen kotieläin\n    source: native\n    url: "+server.URL+"/fi/wiki/koira\n",
		run("cache", "show", "koira", "--lang", "fi"))

	run("lookup", "xyzzy", "--lang", "fi")
	assert.Contains(t, run("cache", "show", "xyzzy", "--lang", "fi"), "not_found: true\nstored_at: ")

	assert.Equal(t, "purged koira\n", run("cache", "purge", "koira", "--lang", "fi"))
	_, err := os.Stat(filepath.Join(cacheDir, "fi", "koira.json"))
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, "koira is not cached\n", run("cache", "show", "koira", "--lang", "fi"))
}

func TestCacheCommands_DisabledCache(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("cache:\n  backend: none\n"), 0644))

	_, err := execute(t, "--config", configPath, "cache", "show", "koira", "--lang", "fi")
	assert.ErrorContains(t, err, "disabled")
}

func TestCacheImportCommand(t *testing.T) {
	configPath, cacheDir := writeConfig(t, "http://127.0.0.1:1")

	sourceDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(sourceDir, "es"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "es", "gala.json"),
		[]byte(`{"definition":"a festive occasion","source":"english","url":null}`), 0644))

	got, err := execute(t, "--config", configPath, "cache", "import", sourceDir, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, got, "[NEW]  es/gala")
	assert.Contains(t, got, "dry-run mode")
	assert.NoFileExists(t, filepath.Join(cacheDir, "es", "gala.json"))

	got, err = execute(t, "--config", configPath, "cache", "import", sourceDir)
	require.NoError(t, err)
	assert.Contains(t, got, "Entries: 1 new, 0 skipped, 0 updated, 0 invalid")
	assert.FileExists(t, filepath.Join(cacheDir, "es", "gala.json"))

	got, err = execute(t, "--config", configPath, "cache", "show", "gala", "--lang", "es")
	require.NoError(t, err)
	assert.Contains(t, got, "definition: a festive occasion")
}
