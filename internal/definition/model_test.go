package definition

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResult(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		source  Source
		url     string
		wantLen int
		wantURL bool
	}{
		{
			name:    "native with url",
			text:    "a building for living in",
			source:  SourceNative,
			url:     "https://en.wiktionary.org/wiki/house",
			wantLen: 24,
			wantURL: true,
		},
		{
			name:    "ai without url",
			text:    "noun: a dog",
			source:  SourceAI,
			wantLen: 11,
			wantURL: false,
		},
		{
			name:    "long text is truncated by runes",
			text:    strings.Repeat("ä", 400),
			source:  SourceEnglish,
			url:     "https://en.wiktionary.org/wiki/x",
			wantLen: MaxLength,
			wantURL: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewResult(tt.text, tt.source, tt.url)
			assert.Equal(t, tt.source, got.Source)
			assert.Equal(t, tt.wantLen, len([]rune(got.Definition)))
			if tt.wantURL {
				require.NotNil(t, got.URL)
				assert.Equal(t, tt.url, *got.URL)
			} else {
				assert.Nil(t, got.URL)
			}
		})
	}
}

func TestResult_JSON(t *testing.T) {
	got, err := json.Marshal(NewResult("noun: a dog", SourceAI, ""))
	require.NoError(t, err)
	assert.JSONEq(t, `{"definition":"noun: a dog","source":"ai","url":null}`, string(got))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "дом", Truncate("домик", 3))
	assert.Equal(t, "", Truncate("", 3))
}
