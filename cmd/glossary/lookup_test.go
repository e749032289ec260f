package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordleglobal/glossary/internal/definition"
	"github.com/wordleglobal/glossary/internal/testutil"
)

func TestLookupCommand(t *testing.T) {
	server := testutil.NewWiktionaryServer(t, testutil.WiktionaryPages{
		Native: map[string]map[string]string{
			"fi": {"koira": "== koira ==\n=== Substantiivi ===\nkoira  (10)\nnelijalkainen kotieläin\n"},
		},
		English: map[string]string{
			"gala": `{"es":[{"partOfSpeech":"Noun","language":"Spanish","definitions":[{"definition":"a festive occasion"}]}]}`,
		},
	})
	configPath, _ := writeConfig(t, server.URL)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "native definition",
			args: []string{"lookup", "koira", "--lang", "fi"},
			want: "koira [native]\n  nelijalkainen kotieläin\n  " + server.URL + "/fi/wiki/koira\n",
		},
		{
			name: "english definition with part of speech",
			args: []string{"lookup", "gala", "--lang", "es", "--no-cache"},
			want: "gala (Noun) [english]\n  a festive occasion\n  " + server.URL + "/wiki/gala\n",
		},
		{
			name: "no definition",
			args: []string{"lookup", "xyzzy", "--lang", "fi"},
			want: "No definition found for xyzzy\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, append([]string{"--config", configPath}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupCommand_RequiresLanguage(t *testing.T) {
	_, err := execute(t, "lookup", "koira")
	assert.Error(t, err)

	_, err = execute(t, "lookup", "koira", "--lang", "Finnish")
	assert.Error(t, err)
}

func TestPrintResult(t *testing.T) {
	url := "https://en.wiktionary.org/wiki/kissa"
	tests := []struct {
		name   string
		result *definition.Result
		want   string
	}{
		{
			name:   "ai result has no url line",
			result: &definition.Result{Definition: "noun: a cat", Source: definition.SourceAI},
			want:   "kissa [ai]\n  noun: a cat\n",
		},
		{
			name:   "english result",
			result: &definition.Result{Definition: "cat", PartOfSpeech: "Noun", Source: definition.SourceEnglish, URL: &url},
			want:   "kissa (Noun) [english]\n  cat\n  https://en.wiktionary.org/wiki/kissa\n",
		},
		{
			name: "no result",
			want: "No definition found for kissa\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, printResult(&out, "kissa", tt.result))
			assert.Equal(t, tt.want, out.String())
		})
	}
}
