package wiktionary

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/wordleglobal/glossary/internal/definition"
)

type lineClass int

const (
	lineOther lineClass = iota
	lineOpen
	lineClose
)

// classify reports whether a line opens or closes a definition section.
func classify(line string) lineClass {
	switch {
	case definitionHeaders.MatchString(line), definitionMarkers.MatchString(line):
		return lineOpen
	case endMarkers.MatchString(line), anyHeader.MatchString(line):
		return lineClose
	default:
		return lineOther
	}
}

// ParseDefinition extracts the first usable definition line from a Wiktionary plaintext
// extract. When word is empty it is inferred from the first "== title ==" header.
func ParseDefinition(extract, word string) (string, bool) {
	if strings.TrimSpace(extract) == "" {
		return "", false
	}
	lines := strings.Split(extract, "\n")
	if word == "" {
		word = inferWord(lines)
	}

	hw := newHeadword(word)
	inSection := false
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch classify(line) {
		case lineOpen:
			inSection = true
			continue
		case lineClose:
			inSection = false
			continue
		}
		if !inSection || hw.skip(line) {
			continue
		}

		if content, ok, numbered := unwrapNumbering(line); numbered {
			if ok && isDefinition(content, word) {
				return definition.Truncate(content, definition.MaxLength), true
			}
			continue
		}
		if exampleBullet.MatchString(line) {
			continue
		}
		if utf8.RuneCountInString(line) > 3 && isDefinition(line, word) {
			return definition.Truncate(line, definition.MaxLength), true
		}
	}

	return fallback(lines, hw)
}

func inferWord(lines []string) string {
	for _, raw := range lines {
		if m := titleHeader.FindStringSubmatch(strings.TrimSpace(raw)); m != nil {
			return m[1]
		}
	}
	return ""
}

// unwrapNumbering strips sense numbering. numbered reports whether the line carried
// a recognised marker at all; ok reports whether the remaining content is long enough.
func unwrapNumbering(line string) (content string, ok bool, numbered bool) {
	if m := bracketSense.FindStringSubmatch(line); m != nil {
		content = strings.TrimSpace(m[1])
		return content, utf8.RuneCountInString(content) > 5, true
	}
	if m := dottedSense.FindStringSubmatch(line); m != nil {
		content = strings.TrimSpace(m[1])
		if dottedLabel.MatchString(content) {
			return "", false, true
		}
		return content, utf8.RuneCountInString(content) > 5, true
	}
	if m := numberedSense.FindStringSubmatch(line); m != nil {
		content = strings.TrimSpace(m[1])
		return content, utf8.RuneCountInString(content) > 3, true
	}
	return "", false, false
}

// headword matches lines that repeat the headword with grammatical annotations, such as
// "Haus", "koira  (10)", "casa f" or "das Haus n".
type headword struct {
	word       string
	annotation *regexp.Regexp
	gender     *regexp.Regexp
}

func newHeadword(word string) *headword {
	h := &headword{word: word}
	if word != "" {
		// The quoted word may contain backslashes, so it must not pass through mustCompile.
		quoted := regexp.QuoteMeta(word)
		h.annotation = regexp.MustCompile(`(?i)^` + quoted + `[\s\p{Z}]*\(`)
		h.gender = regexp.MustCompile(`(?i)^` + quoted + `[\s\p{Z}]+[mfnžc](?:[^\p{L}\p{M}\p{N}_]|$)`)
	}
	return h
}

func (h *headword) matches(line string) bool {
	if h.word != "" {
		if strings.EqualFold(line, h.word) || h.annotation.MatchString(line) || h.gender.MatchString(line) {
			return true
		}
	}
	switch {
	case inflectionTable.MatchString(line),
		strings.Contains(line, "·"),
		pluralLabel.MatchString(line),
		phoneticLine.MatchString(line),
		phoneticHeadword.MatchString(line),
		italianHeadword.MatchString(line),
		articleHeadword.MatchString(line),
		romanceHeadword.MatchString(line),
		inflectedHeadword.MatchString(line),
		declensionClass.MatchString(line):
		return true
	}
	return false
}

func (h *headword) skip(line string) bool {
	return metadataLines.MatchString(line) || h.matches(line)
}

// IsSkipLine reports whether line is metadata or a headword repetition for word, the
// kind of line ParseDefinition never returns.
func IsSkipLine(line, word string) bool {
	return newHeadword(word).skip(strings.TrimSpace(line))
}

// isDefinition guards against a gloss that merely repeats the headword.
func isDefinition(text, word string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	return word == "" || !strings.EqualFold(strings.TrimRight(text, ".,;:!?"), word)
}

// fallback is a lax pass for editions whose section headers are not recognised. It takes
// the first reasonably sized line after any header that is not etymology, pronunciation
// or references.
func fallback(lines []string, hw *headword) (string, bool) {
	afterHeader := false
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if anyHeader.MatchString(line) {
			afterHeader = !fallbackSkipSections.MatchString(line)
			continue
		}
		if !afterHeader {
			continue
		}
		if fallbackMetadata.MatchString(line) || hw.skip(line) {
			continue
		}
		n := utf8.RuneCountInString(line)
		if n > 5 && n < definition.MaxLength && isDefinition(line, hw.word) {
			return line, true
		}
	}
	return "", false
}
