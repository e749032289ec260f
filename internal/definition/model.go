// Package definition holds the result type shared by every resolution tier.
package definition

import (
	"unicode/utf8"
)

// MaxLength is the maximum number of runes kept in a definition.
const MaxLength = 300

// Source identifies which tier produced a definition.
type Source string

const (
	SourceNative  Source = "native"
	SourceEnglish Source = "english"
	SourceAI      Source = "ai"
)

// Result is a resolved definition. It is the unit that gets cached and returned to callers.
type Result struct {
	Definition   string  `json:"definition" yaml:"definition"`
	PartOfSpeech string  `json:"part_of_speech,omitempty" yaml:"part_of_speech,omitempty"`
	Source       Source  `json:"source" yaml:"source"`
	URL          *string `json:"url" yaml:"url"`
}

// NewResult builds a Result, truncating the definition to MaxLength runes.
// An empty url is stored as a nil URL.
func NewResult(text string, source Source, url string) *Result {
	result := &Result{
		Definition: Truncate(text, MaxLength),
		Source:     source,
	}
	if url != "" {
		result.URL = &url
	}
	return result
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
