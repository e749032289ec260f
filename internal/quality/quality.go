// Package quality decides whether a candidate gloss is worth showing to a player.
package quality

import (
	"regexp"
	"strings"

	"github.com/wordleglobal/glossary/internal/wiktionary"
)

var (
	// bareForm matches grammatical labels such as "genitive singular" that name an
	// inflection without pointing at a base word.
	bareForm = regexp.MustCompile(`(?i)^(?:indefinite |definite |strong |mixed |weak )?` +
		`(?:nominative|accusative|dative|genitive|singular|plural|masculine|feminine|neuter|` +
		`first[-/]|second[-/]|third[-/]|imperative)`)

	// spellingVariant matches references that say nothing about meaning.
	spellingVariant = regexp.MustCompile(`(?i)^(?:alternative (?:form|spelling)|misspelling|` +
		`obsolete (?:form|spelling)|archaic (?:form|spelling)|clipping|abbreviation|initialism) of(?:[^\p{L}\p{M}\p{N}_]|$)`)

	crossReference = regexp.MustCompile(`(?i)^See [\p{L}\p{M}\p{N}_]+\.?$`)
)

const trailingPunctuation = ".,;:!?…"

// IsUsable reports whether definition may be returned for word: it must be non-empty,
// must not just repeat the word, and must not be a metadata or headword line.
func IsUsable(word, definition string) bool {
	definition = strings.TrimSpace(definition)
	if definition == "" {
		return false
	}
	if strings.EqualFold(strings.TrimRight(definition, trailingPunctuation), strings.TrimSpace(word)) {
		return false
	}
	return !wiktionary.IsSkipLine(definition, word)
}

// IsUnhelpful reports glosses that are technically definitions but useless as a hint:
// bare inflection labels, spelling variants and "See X" cross references.
func IsUnhelpful(gloss string) bool {
	if bareForm.MatchString(gloss) && !strings.Contains(strings.ToLower(gloss), " of ") {
		return true
	}
	return spellingVariant.MatchString(gloss) || crossReference.MatchString(gloss)
}
