package agent

import (
	"regexp"
	"strings"
)

// translationRequestRes extract the text and target language from a
// translation request, in priority order. Each pattern's first group is the
// text, the second the target language word.
var translationRequestRes = []*regexp.Regexp{
	regexp.MustCompile(`translate\s+(.+?)\s+(?:from|to)\s+(\w+)`),
	regexp.MustCompile(`say\s+(.+?)\s+in\s+(\w+)`),
	regexp.MustCompile(`convert\s+(.+?)\s+to\s+(\w+)`),
	regexp.MustCompile(`fassara\s+(.+?)\s+zuwa\s+(\w+)`), // Hausa: "translate ... to ..."
}

var topicRe = regexp.MustCompile(`(?i)about\s+(.+)`)

// languageNameToCode normalizes spelled-out language names from translation
// requests. Igbo is recognized even though no specialist exists for it yet —
// the English fallback handles the agent side.
var languageNameToCode = map[string]string{
	"hausa":   "ha",
	"pidgin":  "pcm",
	"yoruba":  "yo",
	"english": "en",
	"igbo":    "ig",
}

// parseTranslationRequest extracts (source, target, text) from a free-form
// translation request. The source language is always the detected input
// language. A request with no recognizable pattern falls back to stripping
// the word "translate" and targeting English; failing that the whole message
// is the text.
func parseTranslationRequest(message, detectedLang string) (source, target, text string) {
	lower := strings.ToLower(message)

	for _, re := range translationRequestRes {
		if m := re.FindStringSubmatch(lower); m != nil {
			return detectedLang, normalizeLanguageName(m[2]), strings.TrimSpace(m[1])
		}
	}

	if strings.Contains(lower, "translate") {
		text = strings.TrimSpace(strings.ReplaceAll(lower, "translate", ""))
		return detectedLang, "en", text
	}

	return detectedLang, "en", message
}

func normalizeLanguageName(lang string) string {
	if code, ok := languageNameToCode[strings.ToLower(lang)]; ok {
		return code
	}
	return lang
}

// parseGenerationRequest extracts the topic and content type from a content
// generation request. The topic is whatever follows "about"; without that
// marker the whole message stands in as the topic.
func parseGenerationRequest(message string) (topic, contentType string) {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "story") || strings.Contains(lower, "tale"):
		contentType = "story"
	case strings.Contains(lower, "article") || strings.Contains(lower, "essay"):
		contentType = "article"
	case strings.Contains(lower, "poem"):
		contentType = "poem"
	case strings.Contains(lower, "dialogue") || strings.Contains(lower, "conversation"):
		contentType = "dialogue"
	default:
		contentType = "text"
	}

	if m := topicRe.FindStringSubmatch(message); m != nil {
		return strings.TrimSpace(m[1]), contentType
	}
	return message, contentType
}
