// Package agent routes user messages through language detection and intent
// classification to per-language specialist agents, grounding factual answers
// in the knowledge base.
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/umaryunusa/wazobia/internal/infra/llm"
)

// languageNames maps supported codes to the names used inside prompts.
// Unknown codes pass through unchanged.
var languageNames = map[string]string{
	"en":  "English",
	"ha":  "Hausa",
	"yo":  "Yoruba",
	"pcm": "Nigerian Pidgin",
}

func languageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

// profile is the static configuration of one language specialist: its prompt
// identity plus the word lists used for mixing detection.
type profile struct {
	code string // "yo"
	name string // "Yoruba"
	tag  string // template tag prefix, e.g. "YORUBA"
	role string

	// strict marks the Nigerian-language specialists: their rules render
	// under CRITICAL_RULES with the first rule flagged highest priority.
	strict bool
	rules  []string

	outputLead string

	greetingInstruction string
	casualInstruction   string
	defaultInstruction  string

	// englishIndicators are matched as whole space-delimited words;
	// otherIndicators as plain substrings. Empty lists disable mixing
	// detection for the language.
	englishIndicators []string
	otherIndicators   []string
}

func (p profile) rulesTag() string {
	if p.strict {
		return "CRITICAL_RULES"
	}
	return "RULES"
}

func (p profile) outputInstruction(contextType string) string {
	switch contextType {
	case "greeting":
		return p.greetingInstruction
	case "casual_conversation":
		return p.casualInstruction
	default:
		return p.defaultInstruction
	}
}

// Specialist is a single-language agent. All LLM failures surface inside the
// returned text rather than as errors: the caller always has something to
// show the user.
type Specialist struct {
	profile     profile
	provider    llm.LLMProvider
	temperature float32
	maxTokens   int
}

func newSpecialist(p profile, provider llm.LLMProvider, temperature float32, maxTokens int) *Specialist {
	return &Specialist{profile: p, provider: provider, temperature: temperature, maxTokens: maxTokens}
}

// Code returns the specialist's language code.
func (s *Specialist) Code() string { return s.profile.code }

// Name returns the specialist's language name.
func (s *Specialist) Name() string { return s.profile.name }

// Respond generates a reply to message in the specialist's language.
// contextType selects the output instruction (greeting, casual_conversation
// or anything else for the default).
func (s *Specialist) Respond(ctx context.Context, message, history, contextType, kbContext string) string {
	prompt := buildResponsePrompt(s.profile, message, contextType, history, kbContext, s.profile.outputInstruction(contextType))
	return s.callLLM(ctx, prompt)
}

// TranslateTo translates text from this specialist's language into the target
// language. When reviewer (the target-language specialist) is non-nil the
// first-pass translation goes through its VerifyTranslation.
func (s *Specialist) TranslateTo(ctx context.Context, text, targetCode string, reviewer *Specialist) string {
	translation := s.callLLM(ctx, buildTranslatePrompt(s.profile.name, languageName(targetCode), text))
	if reviewer != nil {
		translation = reviewer.VerifyTranslation(ctx, text, translation, s.profile.name)
	}
	return translation
}

// VerifyTranslation reviews a translation into this specialist's language and
// returns the corrected (or confirmed) version.
func (s *Specialist) VerifyTranslation(ctx context.Context, original, translated, sourceName string) string {
	return s.callLLM(ctx, buildVerifyTranslationPrompt(s.profile.name, sourceName, original, translated))
}

// ReviewResponse checks a generated response for mixing and grammar issues
// and returns the final version.
func (s *Specialist) ReviewResponse(ctx context.Context, response, originalMessage string) string {
	return s.callLLM(ctx, buildReviewResponsePrompt(s.profile.name, response, originalMessage))
}

// DetectMixing reports whether text contains words from outside the
// specialist's language. Always false for specialists without indicator
// lists.
func (s *Specialist) DetectMixing(text string) bool {
	lower := strings.ToLower(text)
	padded := " " + lower + " "
	for _, word := range s.profile.englishIndicators {
		if strings.Contains(padded, " "+word+" ") {
			return true
		}
	}
	for _, word := range s.profile.otherIndicators {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// CleanResponse regenerates a response that shows language mixing; clean
// responses pass through untouched.
func (s *Specialist) CleanResponse(ctx context.Context, response string) string {
	if !s.DetectMixing(response) {
		return response
	}
	return s.callLLM(ctx, buildRegeneratePrompt(s.profile.name, response))
}

func (s *Specialist) callLLM(ctx context.Context, prompt string) string {
	if s.provider == nil {
		return "[LLM not configured]"
	}

	resp, err := s.provider.ChatCompletion(ctx, llm.ChatRequest{
		Messages:    []llm.Message{{Role: "user", Content: prompt}},
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
	})
	if err != nil {
		return fmt.Sprintf("Error calling LLM (%s): %v", s.provider.ModelInfo().Provider, err)
	}
	return resp.Content
}
