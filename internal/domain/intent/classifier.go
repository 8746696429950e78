// Package intent classifies what a user message is asking for.
//
// Classification is an ordered decision list, not a scored model: rules are
// evaluated top-to-bottom and the first match wins. The rule order is part of
// the contract — reordering silently changes classification outcomes, so any
// change here needs new test baselines.
package intent

import "strings"

// Intent is the classified purpose of a user message.
type Intent string

const (
	Greeting           Intent = "greeting"
	CasualConversation Intent = "casual_conversation"
	Translation        Intent = "translation"
	Question           Intent = "question"
	CulturalQuery      Intent = "cultural_query"
	ContentGeneration  Intent = "content_generation"
	General            Intent = "general"
)

// greetingPatterns matches opening salutations across all four languages.
var greetingPatterns = []string{
	"hello", "hi", "sannu", "how far", "bawo ni", "pẹlẹ", "e ku",
	"good morning", "good afternoon", "good evening",
	"e kaaro", "e kasan", "e ku irole",
}

// casualPatterns matches wellbeing and small-talk phrases, including the
// Nigerian-language variants.
var casualPatterns = []string{
	"how are you", "how's you", "how're you", "how you dey",
	"how are u", "how r u", "you good", "you dey",
	"how's the family", "how is family", "how's your family",
	"how are things", "how's everything", "what's up", "wassup",
	"you alright", "u alright", "hope you good", "hope say",
	"i mean", "i'm saying", "you feel me", "you understand",
	"what about you", "and you", "wetin you talk",
	"se daada ni", "ṣe dara ni", "bawo lo wa", "kana lafiya",
}

var translationPatterns = []string{
	"translate", "convert", "fassara", "turn to", "say in",
	"how do you say", "mean in", "in english", "in hausa",
	"in yoruba", "in pidgin",
}

// factualPatterns matches questions that need knowledge-base grounding.
var factualPatterns = []string{
	"tell me about", "explain", "describe", "who is", "who was",
	"what happened", "when did", "where is", "history of",
	"information about", "facts about", "details about",
	"what is", "what are", "define", "meaning of",
}

// questionWords are bare interrogatives (with Hausa/Pidgin equivalents) that
// need the short-casual disambiguation below.
var questionWords = []string{
	"why", "when", "where", "who", "which",
	"menene", "yaushe", "wane", "wetin",
}

// casualIndicators mark a short question as conversational rather than
// factual ("why you dey like that" vs "why did colonial Nigeria change").
var casualIndicators = []string{"you", "your", "u", "ur", "dey", "are"}

var culturalKeywords = []string{
	"proverb", "idiom", "culture", "tradition", "festival",
	"karin magana", "al'ada", "àṣà", "owe",
}

var generationKeywords = []string{"write", "generate", "create", "compose", "rubuta"}

// shortQuestionWordLimit bounds the "short casual question" override:
// question-word messages at or under this length that also carry a casual
// indicator are treated as conversation.
const shortQuestionWordLimit = 6

// rule is one entry of the decision list. match returns the intent and
// whether this rule fires for the message.
type rule func(message string) (Intent, bool)

// rules is the ordered decision list. Evaluation stops at the first match.
var rules = []rule{
	substringRule(greetingPatterns, Greeting),
	substringRule(casualPatterns, CasualConversation),
	substringRule(translationPatterns, Translation),
	substringRule(factualPatterns, Question),
	questionWordRule,
	substringRule(culturalKeywords, CulturalQuery),
	substringRule(generationKeywords, ContentGeneration),
}

// Classify determines the intent of message.
//
// The language argument is currently unused by the matching rules — the
// pattern lists already mix all four languages — but is kept in the signature
// so per-language rule sets can be introduced without an API change.
func Classify(message, language string) Intent {
	_ = language
	lower := strings.ToLower(message)

	for _, r := range rules {
		if intent, ok := r(lower); ok {
			return intent
		}
	}
	return CasualConversation
}

// substringRule fires when any pattern appears anywhere in the message.
func substringRule(patterns []string, intent Intent) rule {
	return func(message string) (Intent, bool) {
		for _, p := range patterns {
			if strings.Contains(message, p) {
				return intent, true
			}
		}
		return "", false
	}
}

// questionWordRule handles bare interrogatives: short messages with casual
// markers are conversation, everything else is a factual question.
func questionWordRule(message string) (Intent, bool) {
	if !containsAnyWordPattern(message, questionWords) {
		return "", false
	}

	wordCount := len(strings.Fields(message))
	if wordCount <= shortQuestionWordLimit && containsAnyWordPattern(message, casualIndicators) {
		return CasualConversation, true
	}
	return Question, true
}

func containsAnyWordPattern(message string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(message, p) {
			return true
		}
	}
	return false
}
