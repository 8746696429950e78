// Language keyword and pattern profiles for the four supported languages.
// Profiles are built once at package init and never mutated afterwards, so
// they are safe to share across concurrent detect calls.
package language

import "regexp"

// Supported language codes.
const (
	Hausa   = "ha"
	Pidgin  = "pcm"
	Yoruba  = "yo"
	English = "en"
	Unknown = "unknown"
)

// profileOrder fixes the iteration order used for greeting checks and argmax
// tie-breaks. Checking Nigerian languages before English is a deliberate
// tie-break: several greetings ("how far") are valid English word sequences.
var profileOrder = []string{Hausa, Pidgin, Yoruba, English}

var hausaKeywords = newSet(
	"da", "ba", "na", "ta", "ya", "za", "ko", "amma", "kuma", "don",
	"ina", "yaya", "kai", "shi", "ita", "mu", "ku", "su",
	"wannan", "wancan", "wane", "wace", "yana", "tana", "suna",
	"sannu", "yaushe", "kana", "aikawa", "zuwa", "daga",
	"salama", "barka", "gaisuwa", "alheri", "lafiya",
)

var pidginKeywords = newSet(
	"dey", "dem", "wey", "una", "wetin", "abi", "sha", "sef",
	"wahala", "belle", "chop", "yab", "yarn", "gist", "kpai",
	"pipul", "pesin", "pikin", "haus", "mek", "fit", "don",
	"go", "come", "see", "hear", "tok", "no", "abeg",
	"how far", "na so", "na im", "na wa", "e good", "make",
	"for where", "wetin dey", "how you dey", "i dey",
)

var yorubaKeywords = newSet(
	"ni", "ti", "ko", "si", "bi", "je", "se", "ninu", "lati",
	"mo", "o", "a", "won", "awa", "eyin", "awon", "bawo",
	"jowo", "emi", "iwo", "oun", "wa", "ki", "lo", "lon",
	"shele", "sele", "wi", "ri", "fun", "ba", "pe",
	"owo", "ooo", "abi", "kan", "waso", "muri", "nkan",
	"mi", "re", "fi", "gba", "mu", "ra", "bo",
	"de", "fe", "ran", "gb", "to", "da", "ja", "pa",
	"ẹ", "ọ", "ṣ", "ń", "è", "ò", "à", "ì", "ù",
	"bawo ni", "se daadaa", "o dabo", "se dada", "daadaa",
	"ki lon", "ki lo", "kini", "kilode", "kiloni",
	"e kaaro", "e kaasan", "e ku irole", "pele", "e ku ise",
	"ẹ káàárọ̀", "ẹ káàásán", "ẹ kú irọlẹ́", "pẹlẹ", "ẹ kú iṣẹ́",
)

var englishKeywords = newSet(
	"the", "is", "are", "was", "were", "have", "has", "had",
	"do", "does", "did", "will", "would", "should", "could",
	"can", "may", "might", "must", "this", "that", "these",
	"those", "what", "which", "who", "where", "when", "why",
	"how", "hello", "hi", "please", "thank", "you",
)

// yorubaDiacritics marks characters that are a strong Yoruba signal.
// Checked against the original-case input (lowercasing can fold some marks).
var yorubaDiacritics = newRuneSet("ẹọṣńèòàìùáéíóúâêîôûḿǹṅ")

// greetings holds the ordered prefix lists used by the greeting
// short-circuit. First prefix match (in profileOrder) wins.
var greetings = map[string][]string{
	Hausa:   {"sannu", "barka", "ina kwana", "ina wuni", "yaya dai"},
	Pidgin:  {"how far", "wetin dey", "how you dey", "abeg", "na wa"},
	Yoruba: {"bawo", "bawo ni", "ki lon", "ki lo", "pele", "pẹlẹ",
		"ẹ káàárọ̀", "e kaaro", "se daadaa", "se dada", "o dabo"},
	English: {"hello", "hi", "good morning", "good afternoon", "how are you"},
}

// Hausa verb-aspect markers (yana, tana, suna, ...) and question words.
var (
	hausaVerbAspectRe = regexp.MustCompile(`\b(ya|ta|su|mu|ku)na\b`)
	hausaQuestionRe   = regexp.MustCompile(`\b(yaya|ina|yaushe|wane|wace|wanda)\b`)
)

// Distinct Pidgin constructions. Each matched pattern adds a fixed weight.
var pidginConstructionRes = []*regexp.Regexp{
	regexp.MustCompile(`\b(wetin|wahala|abi|sha|sef)\b`),
	regexp.MustCompile(`\b(dem|una)\b`),
	regexp.MustCompile(`\bdey\b`),
	regexp.MustCompile(`\b(pipul|pesin|pikin)\b`),
	regexp.MustCompile(`\b(mek|fit)\s+\w+`),
	regexp.MustCompile(`\bhow\s+(far|you\s+dey)`),
	regexp.MustCompile(`\b(na|e)\s+(so|good|bad)`),
}

var pidginVerbConstructionRe = regexp.MustCompile(`\b(don|go|come|dey)\s+\w+`)

// Yoruba phrase patterns, written without diacritics for robust matching.
var yorubaPhraseRes = []*regexp.Regexp{
	regexp.MustCompile(`\b(bawo\s+ni|bawo)\b`),
	regexp.MustCompile(`\b(ki\s+lo?n?|ki\s+lo)\b`),
	regexp.MustCompile(`\b(she?le|sele)\b`),
	regexp.MustCompile(`\b(se\s+da+da+|se\s+dada)\b`),
	regexp.MustCompile(`\b(pe?le?)\b`),
	regexp.MustCompile(`\b(o\s+dabo|odabo)\b`),
	regexp.MustCompile(`\b(e\s+kaaro|e\s+kaasan)\b`),
}

var (
	yorubaPronounRe  = regexp.MustCompile(`\b(mo|emi|iwo|oun|awa|eyin|won|awon)\b`)
	yorubaEmphasisRe = regexp.MustCompile(`\b(ooo|abi|kan|owo|nkan)\b`)
	yorubaQuestionRe = regexp.MustCompile(`\b(ki|kini|kilode|kiloni|bawo|nibo)\b`)
)

var englishConstructionRes = []*regexp.Regexp{
	regexp.MustCompile(`\b(the|a|an)\s+\w+`),
	regexp.MustCompile(`\b(is|are|was|were)\b`),
	regexp.MustCompile(`\b(have|has|had)\b`),
	regexp.MustCompile(`\b(will|would|should|could)\b`),
	regexp.MustCompile(`\b(this|that|these|those)\b`),
}

// languageNames maps codes to human-readable names.
var languageNames = map[string]string{
	Hausa:   "Hausa",
	Pidgin:  "Nigerian Pidgin",
	Yoruba:  "Yoruba",
	English: "English",
	Unknown: "Unknown",
}

func newSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func newRuneSet(chars string) map[rune]struct{} {
	s := make(map[rune]struct{})
	for _, r := range chars {
		s[r] = struct{}{}
	}
	return s
}
