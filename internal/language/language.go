// Package language holds the per-language lookup tables shared by the dictionary sources
// and the generative fallback.
package language

import (
	"regexp"
)

// wiktionarySubdomains maps game language codes to a different Wiktionary edition.
// Codes not listed here use their own subdomain.
var wiktionarySubdomains = map[string]string{
	"nb":  "no",
	"nn":  "no",
	"hyw": "hy",
	"ckb": "ku",
}

// llmNames is the allow-list of languages the generative fallback may be asked about.
var llmNames = map[string]string{
	"en":  "English",
	"fi":  "Finnish",
	"de":  "German",
	"fr":  "French",
	"es":  "Spanish",
	"it":  "Italian",
	"pt":  "Portuguese",
	"nl":  "Dutch",
	"sv":  "Swedish",
	"nb":  "Norwegian Bokmål",
	"nn":  "Norwegian Nynorsk",
	"da":  "Danish",
	"pl":  "Polish",
	"ru":  "Russian",
	"uk":  "Ukrainian",
	"bg":  "Bulgarian",
	"hr":  "Croatian",
	"sr":  "Serbian",
	"sl":  "Slovenian",
	"cs":  "Czech",
	"sk":  "Slovak",
	"ro":  "Romanian",
	"hu":  "Hungarian",
	"tr":  "Turkish",
	"az":  "Azerbaijani",
	"et":  "Estonian",
	"lt":  "Lithuanian",
	"lv":  "Latvian",
	"el":  "Greek",
	"ka":  "Georgian",
	"hy":  "Armenian",
	"he":  "Hebrew",
	"ar":  "Arabic",
	"fa":  "Persian",
	"vi":  "Vietnamese",
	"id":  "Indonesian",
	"ms":  "Malay",
	"ca":  "Catalan",
	"gl":  "Galician",
	"eu":  "Basque",
	"br":  "Breton",
	"oc":  "Occitan",
	"la":  "Latin",
	"ko":  "Korean",
	"sq":  "Albanian",
	"mk":  "Macedonian",
	"is":  "Icelandic",
	"ga":  "Irish",
	"cy":  "Welsh",
	"mt":  "Maltese",
	"hyw": "Western Armenian",
	"ckb": "Central Kurdish",
}

var codePattern = regexp.MustCompile(`^[a-z]{2,3}$`)

// WiktionarySubdomain returns the Wiktionary edition used for the language code.
func WiktionarySubdomain(code string) string {
	if sub, ok := wiktionarySubdomains[code]; ok {
		return sub
	}
	return code
}

// LLMName returns the English name of a language the generative fallback supports.
func LLMName(code string) (string, bool) {
	name, ok := llmNames[code]
	return name, ok
}

// IsValidCode reports whether code looks like an ISO 639-1/639-3 language code.
func IsValidCode(code string) bool {
	return codePattern.MatchString(code)
}
