// Package app wires configuration into a ready resolver for the command line and the server.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/wordleglobal/glossary/internal/cache"
	"github.com/wordleglobal/glossary/internal/config"
	"github.com/wordleglobal/glossary/internal/database"
	"github.com/wordleglobal/glossary/internal/dictionary"
	"github.com/wordleglobal/glossary/internal/generative"
	"github.com/wordleglobal/glossary/internal/inference/openai"
	"github.com/wordleglobal/glossary/internal/resolver"
)

type App struct {
	Config   *config.Config
	Cache    *cache.Cache
	Resolver *resolver.Resolver

	closers []func() error
}

type options struct {
	noCache bool
}

type Option func(*options)

// WithoutCache resolves every word from the network and writes nothing.
func WithoutCache() Option {
	return func(o *options) {
		o.noCache = true
	}
}

func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{Config: cfg}
	if !o.noCache {
		c, closer, err := OpenCache(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("OpenCache > %w", err)
		}
		a.Cache = c
		a.addCloser(closer)
	}

	dictionaryConfig := dictionary.Config{
		NativeURLFormat: cfg.Dictionaries.NativeURLFormat,
		EnglishURL:      cfg.Dictionaries.EnglishURL,
		UserAgent:       cfg.Dictionaries.UserAgent,
		Timeout:         cfg.Dictionaries.Timeout,
	}

	fallback := generative.New("", nil)
	if cfg.OpenAI.APIKey != "" {
		client := openai.NewClient(openai.Config{
			APIKey:           cfg.OpenAI.APIKey,
			Model:            cfg.OpenAI.Model,
			BaseURL:          cfg.OpenAI.BaseURL,
			MaxRetryAttempts: cfg.OpenAI.MaxRetryAttempts,
		})
		a.addCloser(client.Close)
		fallback = generative.New(cfg.OpenAI.APIKey, client)
	}

	a.Resolver = resolver.New(resolver.Options{
		Cache:      a.Cache,
		Native:     dictionary.NewNativeReader(dictionaryConfig),
		English:    dictionary.NewEnglishReader(dictionaryConfig),
		Generative: fallback,
	})
	return a, nil
}

// OpenCache opens the configured cache backend. The returned cache is nil for the "none"
// backend; the closer may be nil.
func OpenCache(ctx context.Context, cfg *config.Config) (*cache.Cache, func() error, error) {
	if cfg.Cache.Backend == config.CacheBackendNone {
		return nil, nil, nil
	}
	store, closer, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cache.New(store, cfg.Cache.NegativeTTL), closer, nil
}

// OpenStore opens the raw store behind the configured cache backend.
func OpenStore(ctx context.Context, cfg *config.Config) (cache.Store, func() error, error) {
	switch cfg.Cache.Backend {
	case config.CacheBackendNone:
		return nil, nil, errors.New("the definition cache is disabled")
	case config.CacheBackendRedis:
		store, err := cache.NewRedisStore(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("cache.NewRedisStore > %w", err)
		}
		return store, store.Close, nil
	case config.CacheBackendSQL:
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database.Open > %w", err)
		}
		if err := database.Migrate(ctx, db); err != nil {
			return nil, nil, errors.Join(fmt.Errorf("database.Migrate > %w", err), db.Close())
		}
		return cache.NewSQLStore(db), db.Close, nil
	default:
		return cache.NewFileStore(cfg.Cache.Directory), nil, nil
	}
}

func (a *App) addCloser(closer func() error) {
	if closer != nil {
		a.closers = append(a.closers, closer)
	}
}

// Close releases the cache backend and the model client.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	return errors.Join(errs...)
}
