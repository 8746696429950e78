// Package language identifies which of Hausa, Nigerian Pidgin, Yoruba or
// English a short, often code-mixed utterance is written in.
//
// Detection is rule-based: each language profile contributes a keyword-overlap
// score plus weighted pattern bonuses, all clamped to [0,1]. There is no
// trained model and no tokeniser beyond word extraction, which keeps detection
// deterministic and cheap enough to run on every message.
package language

import (
	"regexp"
	"sort"
	"strings"
)

// Result is the outcome of a single detection call.
// Scores are per-language and independent — each lies in [0,1] but they are
// not normalised to sum to 1.
type Result struct {
	Language   string             `json:"language"`
	Confidence float64            `json:"confidence"`
	Scores     map[string]float64 `json:"scores"`
	IsMixed    bool               `json:"is_mixed"`
}

// Segment is one sentence-level slice of a multi-sentence input, with its own
// detection result.
type Segment struct {
	Text string `json:"text"`
	Result
}

const (
	// unknownFloor: below this top score the text carries too little signal
	// to name a language at all. Kept low to tolerate code-switching.
	unknownFloor = 0.15

	// nigerianOverrideFloor: when English wins but a Nigerian language scores
	// above this, the Nigerian language is preferred. English function words
	// are frequently valid tokens inside code-switched Nigerian speech, so an
	// English maximum alone is weak evidence.
	nigerianOverrideFloor = 0.2

	// mixedSecondaryFloor: a second-place score above this marks the text as
	// mixed-language. Equal to nigerianOverrideFloor by coincidence, not by
	// design — tune independently.
	mixedSecondaryFloor = 0.2

	// greetingConfidence is assigned when the greeting short-circuit fires.
	greetingConfidence = 0.9
)

var (
	wordRe      = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	sentenceRe  = regexp.MustCompile(`[.!?]+`)
	nigerianSet = []string{Hausa, Pidgin, Yoruba}
)

// Detect identifies the language of text.
//
// Empty or whitespace-only input yields {unknown, 0.0, {}, false}. Text
// beginning with a known greeting short-circuits to that greeting's language
// at confidence 0.9, checked in profile order (ha, pcm, yo, en) — first
// prefix match wins.
func Detect(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Language: Unknown, Confidence: 0.0, Scores: map[string]float64{}, IsMixed: false}
	}

	normalized := strings.ToLower(strings.TrimSpace(text))

	if lang, ok := matchGreeting(normalized); ok {
		return Result{
			Language:   lang,
			Confidence: greetingConfidence,
			Scores:     map[string]float64{lang: greetingConfidence},
			IsMixed:    false,
		}
	}

	scores := map[string]float64{
		Hausa:   scoreHausa(normalized),
		Pidgin:  scorePidgin(normalized),
		Yoruba:  scoreYoruba(text), // original case preserves diacritics
		English: scoreEnglish(normalized),
	}

	lang, confidence, isMixed := resolveScores(scores)
	return Result{
		Language:   lang,
		Confidence: confidence,
		Scores:     scores,
		IsMixed:    isMixed,
	}
}

// resolveScores applies the threshold and Nigerian-language preference policy
// to a full score vector and returns the final language, confidence and
// mixed-language flag.
func resolveScores(scores map[string]float64) (string, float64, bool) {
	maxLang, maxScore := argmax(scores, profileOrder)
	sorted := sortedDesc(scores)
	isMixed := len(sorted) > 1 && sorted[1] > mixedSecondaryFloor
	confidence := calculateConfidence(maxScore, sorted)

	switch {
	case maxScore < unknownFloor:
		maxLang = Unknown
		confidence = 0.0
	case maxLang == English && anyAbove(scores, nigerianSet, nigerianOverrideFloor):
		maxLang, maxScore = argmax(scores, nigerianSet)
		confidence = calculateConfidence(maxScore, sorted)
	}

	return maxLang, confidence, isMixed
}

// DetectSegments splits text on sentence terminators and detects each
// non-empty segment independently. One pass, results in input order.
func DetectSegments(text string) []Segment {
	var segments []Segment
	for _, part := range sentenceRe.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		segments = append(segments, Segment{Text: part, Result: Detect(part)})
	}
	return segments
}

// Name returns the human-readable name for a language code.
// Unrecognised codes map to "Unknown".
func Name(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return "Unknown"
}

// Supported reports whether code is one of the four handled languages.
func Supported(code string) bool {
	_, ok := languageNames[code]
	return ok && code != Unknown
}

// matchGreeting checks the greeting prefix lists in fixed profile order.
func matchGreeting(normalized string) (string, bool) {
	for _, lang := range profileOrder {
		for _, greeting := range greetings[lang] {
			if strings.HasPrefix(normalized, greeting) {
				return lang, true
			}
		}
	}
	return "", false
}

// calculateConfidence derives confidence from the score distribution: a clear
// gap between first and second place raises it, a weak winner floors it.
func calculateConfidence(maxScore float64, sortedScores []float64) float64 {
	if maxScore < 0.3 {
		return 0.2
	}
	if len(sortedScores) > 1 {
		gap := maxScore - sortedScores[1]
		return min(1.0, maxScore*(0.5+gap*0.5))
	}
	return maxScore
}

func scoreHausa(text string) float64 {
	words := tokenize(text)
	if len(words) == 0 {
		return 0.0
	}

	count := countKeywords(words, hausaKeywords)

	patternScore := 0.0
	if hausaVerbAspectRe.MatchString(text) {
		patternScore += 0.2
	}
	if hausaQuestionRe.MatchString(text) {
		patternScore += 0.1
	}

	keywordScore := float64(count) / float64(len(words))
	return min(1.0, keywordScore*0.7+patternScore*0.3)
}

func scorePidgin(text string) float64 {
	words := tokenize(text)
	if len(words) == 0 {
		return 0.0
	}

	count := countKeywords(words, pidginKeywords)

	patternScore := 0.0
	for _, re := range pidginConstructionRes {
		if re.MatchString(text) {
			patternScore += 0.15
		}
	}
	if pidginVerbConstructionRe.MatchString(text) {
		patternScore += 0.1
	}

	keywordScore := float64(count) / float64(len(words))
	return min(1.0, keywordScore*0.6+patternScore*0.4)
}

// scoreYoruba takes the original-case text: lowercasing can fold the
// diacritic marks that are Yoruba's strongest signal.
func scoreYoruba(text string) float64 {
	lower := strings.ToLower(text)
	words := tokenize(lower)
	if len(words) == 0 {
		return 0.0
	}

	count := countKeywords(words, yorubaKeywords)

	diacriticScore := 0.0
	diacriticCount := 0
	for _, r := range text {
		if _, ok := yorubaDiacritics[r]; ok {
			diacriticCount++
		}
	}
	if diacriticCount > 0 {
		diacriticScore = min(0.5, float64(diacriticCount)*0.1)
	}

	patternScore := 0.0
	for _, re := range yorubaPhraseRes {
		if re.MatchString(lower) {
			patternScore += 0.2
		}
	}
	if yorubaPronounRe.MatchString(lower) {
		patternScore += 0.1
	}
	if yorubaEmphasisRe.MatchString(lower) {
		patternScore += 0.15
	}
	if yorubaQuestionRe.MatchString(lower) {
		patternScore += 0.15
	}

	// Keyword weight is reduced in favour of patterns: code-switched Yoruba
	// often carries only a few distinctive tokens.
	keywordScore := float64(count) / float64(len(words))
	return min(1.0, keywordScore*0.4+diacriticScore*0.2+patternScore*0.4)
}

func scoreEnglish(text string) float64 {
	words := tokenize(text)
	if len(words) == 0 {
		return 0.0
	}

	count := countKeywords(words, englishKeywords)

	patternScore := 0.0
	for _, re := range englishConstructionRes {
		if re.MatchString(text) {
			patternScore += 0.1
		}
	}

	keywordScore := float64(count) / float64(len(words))
	return min(1.0, keywordScore*0.7+patternScore*0.3)
}

func tokenize(text string) []string {
	return wordRe.FindAllString(text, -1)
}

func countKeywords(words []string, keywords map[string]struct{}) int {
	count := 0
	for _, w := range words {
		if _, ok := keywords[w]; ok {
			count++
		}
	}
	return count
}

// argmax returns the highest-scoring language; ties resolve to the first
// language in order.
func argmax(scores map[string]float64, order []string) (string, float64) {
	best, bestScore := order[0], scores[order[0]]
	for _, lang := range order[1:] {
		if scores[lang] > bestScore {
			best, bestScore = lang, scores[lang]
		}
	}
	return best, bestScore
}

func anyAbove(scores map[string]float64, langs []string, floor float64) bool {
	for _, lang := range langs {
		if scores[lang] > floor {
			return true
		}
	}
	return false
}

func sortedDesc(scores map[string]float64) []float64 {
	vals := make([]float64, 0, len(scores))
	for _, v := range scores {
		vals = append(vals, v)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(vals)))
	return vals
}
