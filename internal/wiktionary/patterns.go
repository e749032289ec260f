package wiktionary

import (
	"regexp"
	"strings"
)

// Go's \w, \s and \b are ASCII-only. Extracts are written in dozens of scripts, so the
// patterns below are authored with the short forms and expanded to Unicode classes here.
// The expanded \b consumes the following rune, which is fine for MatchString checks.
var unicodeClasses = strings.NewReplacer(
	`\w`, `[\p{L}\p{M}\p{N}_]`,
	`\S`, `[^\s\p{Z}]`,
	`\s`, `[\s\p{Z}]`,
	`\b`, `(?:[^\p{L}\p{M}\p{N}_]|$)`,
)

func mustCompile(pattern string) *regexp.Regexp {
	return regexp.MustCompile(unicodeClasses.Replace(pattern))
}

// definitionHeaders are part-of-speech section headers, per Wiktionary edition.
var definitionHeaders = mustCompile(`(?i)^={2,4}\s*(?:` + strings.Join([]string{
	// English
	`Noun`, `Verb`, `Adjective`, `Adverb`, `Pronoun`, `Preposition`, `Conjunction`, `Interjection`,
	// French
	`Nom commun`, `Verbe`, `Adjectif`, `Adverbe`, `Forme de verbe`, `Forme de nom commun`,
	// Spanish
	`Sustantivo\b`, `Verbo`, `Adjetivo`, `Adverbio`, `Forma adjetiva`, `Forma sustantiva`, `Forma verbal`,
	// Portuguese, Italian
	`Substantivo`, `Sostantivo`, `Aggettivo`,
	// German, Swedish, Danish, Norwegian, Romanian
	`Substantiv`, `Adjektiv`,
	// Finnish
	`Substantiivi`, `Adjektiivi`, `Verbi`, `Adverbi`, `Pronomini`,
	// Estonian
	`Nimisõna`, `Tegusõna`, `Omadussõna`,
	// Lithuanian
	`Daiktavardis`, `Veiksmažodis`, `Būdvardis`,
	// Hungarian
	`Főnév`, `Ige`, `Melléknév`,
	// Breton, Occitan
	`Anv-kadarn`, `Vèrb`,
	// Azerbaijani, Turkish
	`İsim`, `Ad\b`, `Eylem`, `Sıfat`, `Belirteç`,
	// Armenian
	`Գոյական`, `Բայ`, `Ածական`,
	// Kurdish
	`Rengdêr`, `Navdêr`,
	// Vietnamese
	`Danh từ`, `Động từ`, `Tính từ`,
	// Arabic
	`المعاني`,
	// Bulgarian
	`Съществително`, `Прилагателно`, `Глагол`,
	// Russian
	`Значение`,
	// Dutch
	`Bijvoeglijk naamwoord`, `Zelfstandig naamwoord`, `Werkwoord`,
	// Croatian, Bosnian
	`Imenica`, `Glagol`, `Pridjev`, `Prilog`,
	// Serbian
	`Именица`, `Придев`, `Прилог`,
	// Slovenian
	`Samostalnik`, `Pridevnik`,
	// Greek
	`Ουσιαστικό`, `Ρήμα`, `Επίθετο`,
	// Hebrew
	`שם עצם`, `פועל`, `שם תואר`,
	// Romanian
	`Adjectiv`,
	// Czech, Slovak
	`Podstatné jméno`, `Sloveso`, `Přídavné jméno`, `Podstatné meno`, `Prídavné meno`,
	// Georgian
	`არსებითი სახელი`, `ზმნა`,
	// Catalan
	`Nom\b`, `Adjectiu`,
	// Indonesian, Malay
	`Nomina`, `Verba`, `Adjektiva`,
	// Ukrainian
	`Іменник`, `Дієслово`, `Прикметник`,
}, "|") + `)`)

// definitionMarkers open a definition block in editions that use plain-text labels
// instead of nested headers (German, Polish, Ukrainian, Belarusian).
var definitionMarkers = mustCompile(`(?i)^(?:Bedeutungen|znaczenia|Значення|Значэнне)\s*:?\s*$`)

// endMarkers close a plain-text definition block.
var endMarkers = mustCompile(`(?i)^(?:` + strings.Join([]string{
	`Herkunft`, `Synonyme`, `Antonyme`, `Oberbegriffe`, `Beispiele`, `Übersetzungen`,
	`odmiana`, `przykłady`, `składnia`, `kolokacje`, `synonimy`, `antonimy`,
	`wyrazy pokrewne`, `związki frazeologiczne`,
}, "|") + `)\s*:?\s*$`)

var anyHeader = mustCompile(`^={2,4}\s*\S`)

var titleHeader = mustCompile(`^==\s*(.+?)\s*==\s*$`)

// metadataLines never carry a definition, even inside a definition section.
var metadataLines = mustCompile(`(?i)^(?:` + strings.Join([]string{
	`=`, `IPA`, `Rhymes:`, `Homophones:`, `wymowa:`, `Pronúncia`, `Prononciation`, `Pronunciación`,
	`Aussprache`, `Worttrennung`, `Silbentrennung`, `Hörbeispiele`, `Reime`,
	`Étymologie`, `Etimología`, `Etimologia`, `Etymology`, `Herkunft`,
	`Synonym`, `Sinónim`, `Sinônim`, `Antonym`, `Antónim`,
	`Übersetzung`, `Translation`, `Tradução`, `Oberbegriffe`,
	`Beispiele`, `Examples`, `Uso:`, `odmiana:`, `przykłady:`, `składnia:`, `kolokacje:`,
	`synonimy:`, `antonimy:`, `hiperonimy:`, `hiponimy:`, `holonimy:`, `meronimy:`,
	`wyrazy pokrewne:`, `związki frazeologiczne:`, `etymologia:`,
	`Cognate `, `From `, `Du `, `Del `, `Do `, `Uit `, `Vom `, `Van `, `Derived `, `Compare `,
	`rzeczownik`, `przymiotnik`, `przysłówek`, `czasownik`,
	`Deklinacija`, `Konjugacija`, `Склонение`, `Склоненье`,
	`תעתיק`, `הגייה`,
}, "|") + `)`)

var (
	inflectionTable   = mustCompile(`^\S+\s*¦`)
	pluralLabel       = mustCompile(`Plural\s*:`)
	phoneticLine      = mustCompile(`^\\`)
	phoneticHeadword  = mustCompile(`(?i)^[a-záàâãéèêíóòôõúüçñ.·ˈˌ]+\s*\\`)
	italianHeadword   = mustCompile(`(?i)^\w+\s*\(?\s*approfondimento`)
	articleHeadword   = mustCompile(`(?i)^(?:de|het|een|die|das|der)\s+\w+\s+[vmfno]\b`)
	romanceHeadword   = mustCompile(`(?i)^[a-záàâãéèêíóòôõúüçñ.·ˈˌ]+,?\s*(?:masculino|feminino|comum|neutro|féminin|masculin|m\s|f\s|m sing|f sing)`)
	inflectedHeadword = mustCompile(`(?i)^\w+\s*\((?:(?:plural|third-person|present|past)\b|pl\.)`)
	declensionClass   = mustCompile(`^\w+\s+\(\d+`)
	exampleBullet     = mustCompile(`^[▸►]`)
)

var (
	bracketSense  = mustCompile(`^\[\d+\]\s+(.+)`)
	dottedSense   = mustCompile(`^\([\d.]+\)\s+(.+)`)
	dottedLabel   = mustCompile(`(?i)^(?:zdrobn|zgrub|forma)\b`)
	numberedSense = mustCompile(`^\d+\.?\s+(.*)`)
)

// fallbackSkipSections are the headers after which the lax fallback pass ignores lines.
var fallbackSkipSections = mustCompile(`(?i)^={2,4}\s*(?:` + strings.Join([]string{
	`Etymology`, `Pronunciation`, `Etym`, `Pronunc`, `הגייה`, `מקור`,
	`References`, `See also`, `External`, `Anagrams`, `Derived`, `Related`, `Translations`,
	`Übersetzung`, `Etimología`, `Etimologia`, `Étymologie`, `Herkunft`,
}, "|") + `)`)

var fallbackMetadata = mustCompile(`^(?:IPA|Rhymes|Homophones|\[|/|\\)`)
