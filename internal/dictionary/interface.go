package dictionary

import (
	"context"

	"github.com/wordleglobal/glossary/internal/dictionary/wikimedia"
)

//go:generate mockgen -source=interface.go -destination=../mocks/dictionary/mock_source.go -package=mock_dictionary

// NativeSource serves plaintext page extracts from a language's own Wiktionary edition.
type NativeSource interface {
	FetchExtracts(ctx context.Context, subdomain, title string) ([]string, error)
	PageURL(subdomain, title string) string
}

// EnglishSource serves structured definitions from the English Wiktionary.
type EnglishSource interface {
	FetchDefinitions(ctx context.Context, word string) (wikimedia.DefinitionResponse, error)
	PageURL(title string) string
}
