// Package candidate generates dictionary lookup candidates for a possibly inflected word.
package candidate

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

const minBaseLength = 2

// Build returns the lookup candidates for word, original first, without duplicates:
// the word itself, a title-cased variant, suffix additions and suffix-stripped bases.
func Build(word, languageCode string) []string {
	candidates := []string{word}
	if word == "" {
		return candidates
	}

	add := func(c string) {
		if !slices.Contains(candidates, c) {
			candidates = append(candidates, c)
		}
	}

	if first, size := utf8.DecodeRuneInString(word); unicode.IsLower(first) {
		add(string(unicode.ToUpper(first)) + word[size:])
	}

	for _, suffix := range suffixAdditions[languageCode] {
		add(word + suffix)
	}

	lower := strings.ToLower(word)
	runes := []rune(word)
	for _, rule := range stripRules[languageCode] {
		suffixLength := utf8.RuneCountInString(rule.suffix)
		if !strings.HasSuffix(lower, rule.suffix) || len(runes) <= suffixLength {
			continue
		}
		base := string(runes[:len(runes)-suffixLength]) + rule.replacement
		if utf8.RuneCountInString(base) >= minBaseLength {
			add(base)
		}
	}
	return candidates
}
