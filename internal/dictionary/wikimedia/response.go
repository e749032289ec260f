// Package wikimedia holds the response shapes of the Wiktionary endpoints.
//
// https://www.mediawiki.org/wiki/Extension:TextExtracts
// https://en.wiktionary.org/api/rest_v1/#/Page%20content/get_page_definition__term_
package wikimedia

import (
	"sort"
	"strings"
)

// MissingPageID is the key MediaWiki uses for a title that has no page.
const MissingPageID = "-1"

// QueryResponse is the body of action=query&prop=extracts.
type QueryResponse struct {
	Query struct {
		Pages map[string]Page `json:"pages"`
	} `json:"query"`
}

type Page struct {
	PageID  int    `json:"pageid"`
	Title   string `json:"title"`
	Extract string `json:"extract"`
}

// Extracts returns the non-empty plaintext extracts of existing pages, ordered by page id.
func (r QueryResponse) Extracts() []string {
	ids := make([]string, 0, len(r.Query.Pages))
	for id := range r.Query.Pages {
		if id == MissingPageID {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	extracts := make([]string, 0, len(ids))
	for _, id := range ids {
		extract := strings.TrimSpace(r.Query.Pages[id].Extract)
		if extract == "" {
			continue
		}
		extracts = append(extracts, extract)
	}
	return extracts
}

// DefinitionResponse is the body of the REST definition endpoint, keyed by language code.
type DefinitionResponse map[string][]Usage

type Usage struct {
	PartOfSpeech string  `json:"partOfSpeech"`
	Language     string  `json:"language"`
	Definitions  []Sense `json:"definitions"`
}

type Sense struct {
	// Definition is HTML
	Definition string   `json:"definition"`
	Examples   []string `json:"examples,omitempty"`
}

// Usages returns the entries for the given language codes, in the order the codes are given.
func (r DefinitionResponse) Usages(languageCodes ...string) []Usage {
	var usages []Usage
	seen := make(map[string]bool, len(languageCodes))
	for _, code := range languageCodes {
		if seen[code] {
			continue
		}
		seen[code] = true
		usages = append(usages, r[code]...)
	}
	return usages
}
