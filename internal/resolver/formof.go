package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/wordleglobal/glossary/internal/definition"
	"github.com/wordleglobal/glossary/internal/dictionary"
)

// BaseDefinitionLength caps the gloss borrowed from a form-of base word.
const BaseDefinitionLength = 200

var (
	// formOfGloss recognises English glosses that only point at another form,
	// e.g. "plural of gala" or "first-person singular present tense form of ser".
	formOfGloss = regexp.MustCompile(`(?i)^(?:synonym|plural|feminine|masculine|diminutive|augmentative|` +
		`alternative|archaic|obsolete|dated|rare|singular|` +
		`(?:first|second|third)[- ]person|past|present|` +
		`comparative|superlative|nominative|genitive|` +
		`dative|accusative|instrumental|imperative|` +
		`infinitive|(?:[\p{L}\p{M}\p{N}_]+ )?(?:form|tense|participle))\s+` +
		`(?:form\s+)?of\s+`)

	formOfBase = regexp.MustCompile(`(?i)^(?:(?:feminine|masculine|neuter|singular|plural|diminutive|augmentative|` +
		`alternative|comparative|superlative|past|present|gerund|` +
		`(?:first|second|third)[- ]person|imperative|infinitive|` +
		`nominative|genitive|dative|accusative|ablative|instrumental)\s+)*` +
		`(?:form|plural|tense|participle|conjugation)?\s*` +
		`(?:of|de|di|du|von|van)\s+([\p{L}\p{M}\p{N}_]+)`)
)

// IsFormOf reports whether gloss is form-of boilerplate that should be followed to its base.
func IsFormOf(gloss string) bool {
	return formOfGloss.MatchString(gloss)
}

// FormOfResolver replaces "X form of BASE" glosses with the English definition of BASE.
type FormOfResolver struct {
	english dictionary.EnglishSource
}

func NewFormOfResolver(english dictionary.EnglishSource) *FormOfResolver {
	return &FormOfResolver{english: english}
}

// Resolve looks up the base word named by gloss. It follows one level only: the base
// word's own definition is returned as is, even when it is form-of boilerplate too.
func (r *FormOfResolver) Resolve(ctx context.Context, gloss, languageCode string) (string, bool) {
	if r == nil || r.english == nil {
		return "", false
	}
	m := formOfBase.FindStringSubmatch(gloss)
	if m == nil {
		return "", false
	}
	base := m[1]

	text, err := r.lookup(ctx, base, languageCode)
	if err != nil {
		slog.Default().Debug("form-of base lookup failed",
			"base", base,
			"language", languageCode,
			"error", err,
		)
		return "", false
	}
	if text == "" {
		return "", false
	}
	return definition.Truncate(text, BaseDefinitionLength), true
}

func (r *FormOfResolver) lookup(ctx context.Context, base, languageCode string) (string, error) {
	response, err := r.english.FetchDefinitions(ctx, base)
	if err != nil {
		return "", fmt.Errorf("english.FetchDefinitions > %w", err)
	}
	for _, usage := range response.Usages(languageCode, "en") {
		for _, sense := range usage.Definitions {
			if text := dictionary.StripHTML(sense.Definition); text != "" {
				return text, nil
			}
		}
	}
	return "", nil
}
