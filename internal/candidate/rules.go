package candidate

// suffixAdditions turn a bare stem into a dictionary lemma in agglutinative languages,
// for example the Turkish infinitive "besle" -> "beslemek".
var suffixAdditions = map[string][]string{
	"tr": {"mek", "mak"},
	"az": {"mək", "maq"},
}

type stripRule struct {
	suffix      string
	replacement string
}

// stripRules map common inflected endings back to a lemma. Longer suffixes come first
// so they are tried before the shorter ones they contain.
var stripRules = map[string][]stripRule{
	// Romance
	"es": {{"es", ""}, {"as", "a"}, {"os", "o"}, {"s", ""}},
	"pt": {{"ões", "ão"}, {"es", ""}, {"as", "a"}, {"os", "o"}, {"s", ""}},
	"fr": {{"eaux", "eau"}, {"aux", "al"}, {"es", "e"}, {"s", ""}},
	"it": {{"chi", "co"}, {"ghi", "go"}, {"ni", "ne"}, {"li", "le"}, {"hi", "o"}, {"i", "o"}, {"e", "a"}},
	"ca": {{"ns", "n"}, {"es", ""}, {"s", ""}},
	"ro": {{"uri", ""}, {"i", ""}, {"e", ""}},

	// Germanic
	"de": {{"ern", ""}, {"en", ""}, {"er", ""}, {"e", ""}},
	"nl": {{"en", ""}, {"er", ""}, {"s", ""}},
	"sv": {{"arna", ""}, {"orna", ""}, {"erna", ""}, {"ar", ""}, {"er", ""}, {"or", ""}, {"en", ""}, {"et", ""}, {"na", ""}},
	"nb": {{"ene", ""}, {"er", ""}, {"et", ""}},
	"nn": {{"ane", ""}, {"ar", ""}, {"et", ""}},

	// Slavic
	"hr": {{"ovima", ""}, {"evima", ""}, {"ovi", ""}, {"evi", ""}, {"a", ""}, {"i", ""}, {"e", ""}},
	"sr": {{"ови", ""}, {"еви", ""}, {"а", ""}, {"и", ""}, {"е", ""}},
	"bg": {{"етата", "е"}, {"ите", ""}, {"ата", ""}, {"ът", ""}, {"та", ""}, {"а", ""}, {"и", ""}},
	"ru": {{"ов", ""}, {"ей", ""}, {"а", ""}, {"ы", ""}, {"и", ""}},
	"uk": {{"ів", ""}, {"ей", ""}, {"а", ""}, {"и", ""}, {"і", ""}},
	"cs": {{"ů", ""}, {"ech", ""}, {"y", ""}, {"e", ""}, {"i", ""}},
	"sk": {{"ov", ""}, {"ách", ""}, {"y", ""}, {"e", ""}, {"i", ""}},
	"sl": {{"ov", ""}, {"ev", ""}, {"i", ""}, {"e", ""}, {"a", ""}},

	// Finno-Ugric case endings
	"fi": {{"ssa", ""}, {"ssä", ""}, {"sta", ""}, {"stä", ""}, {"lla", ""}, {"llä", ""}, {"lta", ""}, {"ltä", ""}, {"n", ""}, {"t", ""}},
	"et": {{"de", ""}, {"te", ""}, {"d", ""}},
	"hu": {{"ban", ""}, {"ben", ""}, {"nak", ""}, {"nek", ""}, {"k", ""}, {"t", ""}},
}

// SupportsStripping reports whether the language has inflection strip rules.
func SupportsStripping(languageCode string) bool {
	_, ok := stripRules[languageCode]
	return ok
}
