// Package resolver runs the definition tiers in order behind the cache.
package resolver

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/wordleglobal/glossary/internal/cache"
	"github.com/wordleglobal/glossary/internal/candidate"
	"github.com/wordleglobal/glossary/internal/definition"
	"github.com/wordleglobal/glossary/internal/dictionary"
	"github.com/wordleglobal/glossary/internal/dictionary/wikimedia"
	"github.com/wordleglobal/glossary/internal/generative"
	"github.com/wordleglobal/glossary/internal/language"
	"github.com/wordleglobal/glossary/internal/metrics"
	"github.com/wordleglobal/glossary/internal/quality"
	"github.com/wordleglobal/glossary/internal/wiktionary"
)

const (
	TierNative     = "native"
	TierEnglish    = "english"
	TierGenerative = "generative"

	sourceCache = "cache"
)

// Options wires the resolver. Any nil field disables that part of the chain;
// a nil Cache means every call goes to the network and nothing is written.
type Options struct {
	Cache      *cache.Cache
	Native     dictionary.NativeSource
	English    dictionary.EnglishSource
	Generative *generative.Fallback
}

type tier struct {
	name    string
	resolve func(ctx context.Context, word, languageCode string) *definition.Result
}

// Resolver turns a (language, word) pair into a definition, trying the cache and then each tier.
type Resolver struct {
	cache      *cache.Cache
	native     dictionary.NativeSource
	english    dictionary.EnglishSource
	formOf     *FormOfResolver
	generative *generative.Fallback
	tiers      []tier
}

// New builds a Resolver with one tier per configured source.
func New(options Options) *Resolver {
	r := &Resolver{
		cache:      options.Cache,
		native:     options.Native,
		english:    options.English,
		formOf:     NewFormOfResolver(options.English),
		generative: options.Generative,
	}
	if r.native != nil {
		r.tiers = append(r.tiers, tier{name: TierNative, resolve: r.resolveNative})
	}
	if r.english != nil {
		r.tiers = append(r.tiers, tier{name: TierEnglish, resolve: r.resolveEnglish})
	}
	if r.generative != nil {
		r.tiers = append(r.tiers, tier{name: TierGenerative, resolve: r.resolveGenerative})
	}
	return r
}

// Resolve returns a definition for word in the language, or nil when no tier has one.
// Errors from individual sources are logged and treated as misses.
func (r *Resolver) Resolve(ctx context.Context, word, languageCode string) *definition.Result {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil
	}

	if r.cache != nil {
		result, state := r.cache.Lookup(ctx, languageCode, word)
		metrics.RecordCacheLookup(string(state))
		switch state {
		case cache.StateHit:
			metrics.RecordResolution(languageCode, sourceCache)
			return result
		case cache.StateNegative:
			metrics.RecordResolution(languageCode, metrics.SourceNone)
			return nil
		}
	}

	result := r.runTiers(ctx, word, languageCode)
	if result == nil {
		metrics.RecordResolution(languageCode, metrics.SourceNone)
	} else {
		metrics.RecordResolution(languageCode, string(result.Source))
	}

	// Cancelled calls leave no cache entry.
	if r.cache != nil && ctx.Err() == nil {
		if err := r.cache.Store(ctx, languageCode, word, result); err != nil {
			slog.Default().Warn("failed to write definition cache",
				"word", word,
				"language", languageCode,
				"error", err,
			)
		}
	}
	return result
}

func (r *Resolver) runTiers(ctx context.Context, word, languageCode string) *definition.Result {
	for _, t := range r.tiers {
		if ctx.Err() != nil {
			return nil
		}
		start := time.Now()
		result := t.resolve(ctx, word, languageCode)
		metrics.ObserveTier(t.name, time.Since(start))
		if result != nil {
			slog.Default().Debug("definition resolved",
				"word", word,
				"language", languageCode,
				"tier", t.name,
			)
			return result
		}
	}
	return nil
}

func (r *Resolver) resolveNative(ctx context.Context, word, languageCode string) *definition.Result {
	subdomain := language.WiktionarySubdomain(languageCode)
	for _, title := range candidate.Build(word, languageCode) {
		if ctx.Err() != nil {
			return nil
		}
		extracts, err := r.native.FetchExtracts(ctx, subdomain, title)
		if err != nil {
			logCandidateError(TierNative, title, languageCode, err)
			continue
		}
		for _, extract := range extracts {
			text, ok := wiktionary.ParseDefinition(extract, title)
			if !ok || !quality.IsUsable(word, text) {
				continue
			}
			return definition.NewResult(text, definition.SourceNative, r.native.PageURL(subdomain, title))
		}
	}
	return nil
}

func (r *Resolver) resolveEnglish(ctx context.Context, word, languageCode string) *definition.Result {
	for _, title := range candidate.Build(strings.ToLower(word), languageCode) {
		if ctx.Err() != nil {
			return nil
		}
		response, err := r.english.FetchDefinitions(ctx, title)
		if err != nil {
			logCandidateError(TierEnglish, title, languageCode, err)
			continue
		}
		if result := r.pickEnglish(ctx, response.Usages(languageCode, "en"), word, title, languageCode); result != nil {
			return result
		}
	}
	return nil
}

func (r *Resolver) pickEnglish(ctx context.Context, usages []wikimedia.Usage, word, title, languageCode string) *definition.Result {
	for _, usage := range usages {
		for _, sense := range usage.Definitions {
			text := dictionary.StripHTML(sense.Definition)
			if text == "" {
				continue
			}
			if IsFormOf(text) {
				followed, ok := r.formOf.Resolve(ctx, text, languageCode)
				if !ok || !quality.IsUsable(word, followed) {
					continue
				}
				return r.englishResult(followed, usage.PartOfSpeech, title)
			}
			if quality.IsUnhelpful(text) || !quality.IsUsable(word, text) {
				continue
			}
			return r.englishResult(text, usage.PartOfSpeech, title)
		}
	}
	return nil
}

func (r *Resolver) englishResult(text, partOfSpeech, title string) *definition.Result {
	result := definition.NewResult(text, definition.SourceEnglish, r.english.PageURL(title))
	result.PartOfSpeech = partOfSpeech
	return result
}

func (r *Resolver) resolveGenerative(ctx context.Context, word, languageCode string) *definition.Result {
	result := r.generative.Generate(ctx, word, languageCode)
	if result == nil || !quality.IsUsable(word, result.Definition) {
		return nil
	}
	return result
}

func logCandidateError(tierName, title, languageCode string, err error) {
	slog.Default().Debug("candidate lookup failed",
		"tier", tierName,
		"candidate", title,
		"language", languageCode,
		"error", err,
	)
}
