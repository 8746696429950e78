package agent

import "github.com/umaryunusa/wazobia/internal/infra/llm"

// NewEnglish creates the English specialist, which also serves as the
// fallback for unsupported language codes.
func NewEnglish(provider llm.LLMProvider, temperature float32, maxTokens int) *Specialist {
	return newSpecialist(profile{
		code: "en",
		name: "English",
		tag:  "ENGLISH",
		role: "You are a helpful Nigerian AI assistant speaking in English.",
		rules: []string{
			"Respond in clear, natural English",
			"Be conversational and friendly",
			"Keep responses brief (2-3 sentences maximum)",
			"Reference Nigerian culture when relevant",
			"Do NOT repeat the user's question in your response",
			"Start directly with your answer or greeting",
		},
		outputLead:          "Provide ONLY your English response. No explanations, no preamble.",
		greetingInstruction: "Provide a warm greeting (1-2 sentences).",
		casualInstruction:   "Respond naturally and conversationally.",
		defaultInstruction:  "Provide your answer in English.",
	}, provider, temperature, maxTokens)
}
