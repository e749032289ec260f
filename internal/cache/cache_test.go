package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordleglobal/glossary/internal/definition"
)

func newTestCache(t *testing.T, now time.Time) (*Cache, string) {
	t.Helper()
	dir := t.TempDir()
	c := New(NewFileStore(dir), DefaultNegativeTTL)
	c.now = func() time.Time { return now }
	return c, dir
}

func TestCache_StoreAndLookup(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("positive entry never expires", func(t *testing.T) {
		c, _ := newTestCache(t, now)
		result := definition.NewResult("nelijalkainen kotieläin", definition.SourceNative, "https://fi.wiktionary.org/wiki/koira")
		require.NoError(t, c.Store(ctx, "fi", "Koira", result))

		c.now = func() time.Time { return now.Add(365 * 24 * time.Hour) }
		got, state := c.Lookup(ctx, "fi", "koira")
		assert.Equal(t, StateHit, state)
		assert.Equal(t, result, got)
	})

	t.Run("negative entry within ttl", func(t *testing.T) {
		c, _ := newTestCache(t, now)
		require.NoError(t, c.Store(ctx, "fi", "xyzzy", nil))

		c.now = func() time.Time { return now.Add(6 * 24 * time.Hour) }
		got, state := c.Lookup(ctx, "fi", "xyzzy")
		assert.Equal(t, StateNegative, state)
		assert.Nil(t, got)
	})

	t.Run("negative entry after ttl", func(t *testing.T) {
		c, _ := newTestCache(t, now)
		require.NoError(t, c.Store(ctx, "fi", "xyzzy", nil))

		c.now = func() time.Time { return now.Add(8 * 24 * time.Hour) }
		got, state := c.Lookup(ctx, "fi", "xyzzy")
		assert.Equal(t, StateExpired, state)
		assert.Nil(t, got)
	})

	t.Run("missing entry", func(t *testing.T) {
		c, _ := newTestCache(t, now)
		got, state := c.Lookup(ctx, "fi", "koira")
		assert.Equal(t, StateMiss, state)
		assert.Nil(t, got)
	})

	t.Run("keys are scoped by language", func(t *testing.T) {
		c, _ := newTestCache(t, now)
		require.NoError(t, c.Store(ctx, "es", "casa", definition.NewResult("vivienda", definition.SourceNative, "")))

		_, state := c.Lookup(ctx, "pt", "casa")
		assert.Equal(t, StateMiss, state)
	})
}

func TestCache_MalformedEntryIsAMiss(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "truncated json", payload: `{"definition": "a d`},
		{name: "empty object", payload: `{}`},
		{name: "array", payload: `[1, 2]`},
		{name: "missing source", payload: `{"definition":"a dog","url":null}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, dir := newTestCache(t, time.Now())
			require.NoError(t, os.MkdirAll(filepath.Join(dir, "fi"), 0o755))
			require.NoError(t, os.WriteFile(filepath.Join(dir, "fi", "koira.json"), []byte(tt.payload), 0o644))

			got, state := c.Lookup(context.Background(), "fi", "koira")
			assert.Equal(t, StateMiss, state)
			assert.Nil(t, got)
		})
	}
}

func TestCache_EntryFormat(t *testing.T) {
	now := time.Unix(1700000000, 0)
	ctx := context.Background()
	c, dir := newTestCache(t, now)

	require.NoError(t, c.Store(ctx, "fi", "xyzzy", nil))
	contents, err := os.ReadFile(filepath.Join(dir, "fi", "xyzzy.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"not_found": true, "ts": 1700000000}`, string(contents))

	require.NoError(t, c.Store(ctx, "fi", "koira", definition.NewResult("noun: a dog", definition.SourceAI, "")))
	contents, err = os.ReadFile(filepath.Join(dir, "fi", "koira.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"definition": "noun: a dog", "source": "ai", "url": null}`, string(contents))
}

func TestCache_Purge(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t, time.Now())

	require.NoError(t, c.Store(ctx, "fi", "koira", definition.NewResult("koiraeläin", definition.SourceNative, "")))
	require.NoError(t, c.Purge(ctx, "fi", "koira"))
	_, state := c.Lookup(ctx, "fi", "koira")
	assert.Equal(t, StateMiss, state)

	// purging again is fine
	require.NoError(t, c.Purge(ctx, "fi", "koira"))
}

func TestCache_InvalidKeyIsAnError(t *testing.T) {
	c, _ := newTestCache(t, time.Now())
	_, state := c.Lookup(context.Background(), "fi", "../etc/passwd")
	assert.Equal(t, StateError, state)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{name: "positive", payload: `{"definition":"dog","source":"english","url":null}`},
		{name: "negative", payload: `{"not_found":true,"ts":1700000000}`},
		{name: "missing source", payload: `{"definition":"dog"}`, wantErr: true},
		{name: "empty object", payload: `{}`, wantErr: true},
		{name: "not json", payload: `dog`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]byte(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
