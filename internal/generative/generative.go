// Package generative asks a language model for a gloss when no dictionary has one.
package generative

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/wordleglobal/glossary/internal/definition"
	"github.com/wordleglobal/glossary/internal/inference"
	"github.com/wordleglobal/glossary/internal/language"
)

const (
	DefaultTimeout = 10 * time.Second

	unknownAnswer   = "UNKNOWN"
	minAnswerLength = 3
)

// Fallback is only consulted when an API key is configured and the language is on the
// allow-list; otherwise it never calls the model.
type Fallback struct {
	apiKey  string
	client  inference.Client
	timeout time.Duration
}

func New(apiKey string, client inference.Client) *Fallback {
	return &Fallback{
		apiKey:  apiKey,
		client:  client,
		timeout: DefaultTimeout,
	}
}

// Enabled reports whether Generate may call the model for the language.
func (f *Fallback) Enabled(languageCode string) bool {
	if f == nil || f.apiKey == "" || f.client == nil {
		return false
	}
	_, ok := language.LLMName(languageCode)
	return ok
}

// Generate returns a model-written gloss, or nil when the fallback is disabled, the model
// is unsure, or the call fails.
func (f *Fallback) Generate(ctx context.Context, word, languageCode string) *definition.Result {
	if !f.Enabled(languageCode) {
		return nil
	}
	languageName, _ := language.LLMName(languageCode)

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	response, err := f.client.DefineWord(ctx, inference.DefineWordRequest{
		Word:         word,
		LanguageName: languageName,
	})
	if err != nil {
		slog.Default().Debug("generative definition failed",
			"word", word,
			"language", languageCode,
			"error", err,
		)
		return nil
	}

	text := strings.TrimSpace(response.Text)
	if strings.Contains(strings.ToUpper(text), unknownAnswer) || utf8.RuneCountInString(text) < minAnswerLength {
		return nil
	}
	return definition.NewResult(text, definition.SourceAI, "")
}
