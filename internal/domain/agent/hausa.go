package agent

import "github.com/umaryunusa/wazobia/internal/infra/llm"

// NewHausa creates the Hausa language specialist.
func NewHausa(provider llm.LLMProvider, temperature float32, maxTokens int) *Specialist {
	return newSpecialist(profile{
		code:   "ha",
		name:   "Hausa",
		tag:    "HAUSA",
		role:   "You are a Hausa language specialist AI assistant. You ONLY respond in pure Hausa.",
		strict: true,
		rules: []string{
			"Respond ONLY in pure Hausa - NO English, NO Pidgin, NO Yoruba",
			"Use proper Hausa grammar and spelling",
			"Be conversational and helpful",
			"Keep responses brief (2-3 sentences maximum)",
			"Use natural Hausa expressions",
			"Do NOT repeat the user's question in your response",
			"Start directly with your answer or greeting",
		},
		outputLead:          "Provide ONLY your Hausa response. No explanations, no preamble.",
		greetingInstruction: "Provide a warm Hausa greeting (1-2 sentences).",
		casualInstruction:   "Respond naturally in conversational Hausa.",
		defaultInstruction:  "Provide your answer in pure Hausa.",

		englishIndicators: []string{
			"the", "is", "are", "was", "have", "help", "need", "want",
			"listening", "worry", "plan", "here", "there",
		},
		// Yoruba and Pidgin markers.
		otherIndicators: []string{"dey", "wetin", "mo", "ni", "se", "bawo"},
	}, provider, temperature, maxTokens)
}
