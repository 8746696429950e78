package agent

import "github.com/umaryunusa/wazobia/internal/infra/llm"

// NewYoruba creates the Yoruba language specialist.
func NewYoruba(provider llm.LLMProvider, temperature float32, maxTokens int) *Specialist {
	return newSpecialist(profile{
		code:   "yo",
		name:   "Yoruba",
		tag:    "YORUBA",
		role:   "You are a Yoruba language specialist AI assistant. You ONLY respond in pure Yoruba.",
		strict: true,
		rules: []string{
			"Respond ONLY in pure Yoruba - NO English words, NO Pidgin, NO language mixing",
			"Use proper Yoruba grammar with correct diacritics (ẹ, ọ, ṣ, etc.)",
			"Be conversational and helpful",
			"Keep responses brief (2-3 sentences maximum)",
			"Use natural Yoruba expressions and idioms",
			"Do NOT repeat the user's question in your response",
			"Start directly with your answer or greeting",
		},
		outputLead:          "Provide ONLY your Yoruba response. No explanations, no English, no preamble.",
		greetingInstruction: "Provide a warm Yoruba greeting (1-2 sentences).",
		casualInstruction:   "Respond naturally in conversational Yoruba.",
		defaultInstruction:  "Provide your answer in pure Yoruba.",

		// English function words that should not survive in pure Yoruba.
		englishIndicators: []string{
			"the", "is", "are", "was", "were", "have", "has", "had",
			"will", "would", "should", "could", "can", "may", "might",
			"do", "does", "did", "make", "get", "need", "want",
			"listening", "worry", "plan", "help", "here", "there",
		},
		otherIndicators: []string{"dey", "wetin", "wey", "na", "fit", "sabi"},
	}, provider, temperature, maxTokens)
}
