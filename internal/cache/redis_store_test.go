package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)

	store, err := NewRedisStore(ctx, "redis://"+server.Addr()+"/0")
	require.NoError(t, err)
	defer func() {
		_ = store.Close()
	}()

	_, err = store.Get(ctx, "fi", "koira")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, "fi", "Koira", []byte(`{"not_found":true,"ts":1}`)))
	stored, err := server.Get("glossary:definition:fi:koira")
	require.NoError(t, err)
	assert.Equal(t, `{"not_found":true,"ts":1}`, stored)
	assert.Zero(t, server.TTL("glossary:definition:fi:koira"))

	got, err := store.Get(ctx, "fi", "koira")
	require.NoError(t, err)
	assert.Equal(t, `{"not_found":true,"ts":1}`, string(got))

	require.NoError(t, store.Delete(ctx, "fi", "koira"))
	assert.False(t, server.Exists("glossary:definition:fi:koira"))
}

func TestNewRedisStore_Errors(t *testing.T) {
	_, err := NewRedisStore(context.Background(), "not a url")
	assert.Error(t, err)

	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()
	_, err = NewRedisStore(context.Background(), "redis://"+addr)
	assert.Error(t, err)
}

func TestRedisKey(t *testing.T) {
	key, err := RedisKey("nb", "Hund")
	require.NoError(t, err)
	assert.Equal(t, "glossary:definition:nb:hund", key)
}
