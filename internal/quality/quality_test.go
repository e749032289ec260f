package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUsable(t *testing.T) {
	tests := []struct {
		name       string
		word       string
		definition string
		want       bool
	}{
		{name: "real gloss", word: "koira", definition: "nelijalkainen kotieläin", want: true},
		{name: "empty", word: "koira", definition: "  ", want: false},
		{name: "same word", word: "koira", definition: "Koira", want: false},
		{name: "same word with punctuation", word: "Haus", definition: "haus.", want: false},
		{name: "headword with declension class", word: "koira", definition: "koira  (10)", want: false},
		{name: "pronunciation line", word: "house", definition: "IPA: /haʊs/", want: false},
		{name: "ai gloss", word: "casa", definition: "noun: a house", want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsUsable(tc.word, tc.definition))
		})
	}
}

func TestIsUnhelpful(t *testing.T) {
	tests := []struct {
		gloss string
		want  bool
	}{
		{gloss: "genitive singular", want: true},
		{gloss: "indefinite plural", want: true},
		{gloss: "third-person singular", want: true},
		{gloss: "genitive singular of hund", want: false},
		{gloss: "Alternative spelling of colour", want: true},
		{gloss: "misspelling of receive", want: true},
		{gloss: "Initialism of North Atlantic Treaty Organization", want: true},
		{gloss: "See cat.", want: true},
		{gloss: "See also the cat", want: false},
		{gloss: "A domesticated carnivorous mammal", want: false},
	}
	for _, tc := range tests {
		t.Run(tc.gloss, func(t *testing.T) {
			assert.Equal(t, tc.want, IsUnhelpful(tc.gloss))
		})
	}
}
