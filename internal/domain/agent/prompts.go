// Prompt templates for the language specialists and the grounded handlers.
// Templates use XML-style sections: the tags give weaker models a harder
// structure to follow than prose instructions.
package agent

import (
	"fmt"
	"strings"
)

const (
	noHistoryPlaceholder = "No previous conversation"
	noContextPlaceholder = "No additional context provided"
)

// buildResponsePrompt renders a specialist's response instruction.
// rulesTag is CRITICAL_RULES for the Nigerian languages and RULES for
// English, whose instruction set is advisory rather than restrictive.
func buildResponsePrompt(p profile, message, contextType, history, kbContext, outputInstruction string) string {
	if history == "" {
		history = noHistoryPlaceholder
	}
	if kbContext == "" {
		kbContext = noContextPlaceholder
	}

	rules := make([]string, 0, len(p.rules))
	for i, rule := range p.rules {
		if i == 0 && p.strict {
			rules = append(rules, fmt.Sprintf("        <RULE priority=\"highest\">%s</RULE>", rule))
			continue
		}
		rules = append(rules, fmt.Sprintf("        <RULE>%s</RULE>", rule))
	}

	return fmt.Sprintf(`
<%[1]s_AGENT_INSTRUCTION>
    <ROLE>
        %[2]s
    </ROLE>

    <USER_MESSAGE>
        %[3]s
    </USER_MESSAGE>

    <CONTEXT_TYPE>
        %[4]s
    </CONTEXT_TYPE>

    <CONVERSATION_HISTORY>
        %[5]s
    </CONVERSATION_HISTORY>

    <KNOWLEDGE_BASE_CONTEXT>
        %[6]s
    </KNOWLEDGE_BASE_CONTEXT>

    <%[7]s>
%[8]s
    </%[7]s>

    <OUTPUT_FORMAT>
        %[9]s
        %[10]s
    </OUTPUT_FORMAT>
</%[1]s_AGENT_INSTRUCTION>
`, p.tag, p.role, message, contextType, history, kbContext, p.rulesTag(), strings.Join(rules, "\n"), p.outputLead, outputInstruction)
}

func buildTranslatePrompt(sourceName, targetName, text string) string {
	return fmt.Sprintf(`You are an expert translator from %[1]s to %[2]s.

Translate this text from %[1]s to %[2]s:
"%[3]s"

CRITICAL RULES:
- Translate accurately, preserving the exact meaning
- Use natural %[2]s expressions
- Keep the same tone (casual, formal, etc.)
- Do NOT add extra information or explanations
- Return ONLY the translation, nothing else

Translation in %[2]s:`, sourceName, targetName, text)
}

func buildVerifyTranslationPrompt(languageName, sourceName, original, translated string) string {
	return fmt.Sprintf(`You are a %[1]s language expert reviewing a translation.

Original text (%[2]s): "%[3]s"
Translation to %[1]s: "%[4]s"

Task: Review the translation for accuracy and naturalness.
- If the translation is correct and natural, return it as-is
- If there are errors or it sounds unnatural, provide a corrected version
- Ensure the meaning is preserved
- Use proper %[1]s grammar and expressions

IMPORTANT: Return ONLY the final %[1]s translation, nothing else.

Verified translation in %[1]s:`, languageName, sourceName, original, translated)
}

func buildReviewResponsePrompt(languageName, response, originalMessage string) string {
	return fmt.Sprintf(`You are a %[1]s language expert reviewing a response.

User's message: "%[2]s"
Generated response: "%[3]s"

Task: Review the response and ensure:
1. It's entirely in %[1]s (no language mixing)
2. Grammar and spelling are correct
3. It answers the user's message appropriately
4. It sounds natural and conversational
5. Cultural context is appropriate

CRITICAL RULES:
- Do NOT mix languages (e.g., no Yoruba-English-Pidgin mix)
- Stay 100%% in %[1]s
- If the response has language mixing, rewrite it properly

Return ONLY the final %[1]s response:`, languageName, originalMessage, response)
}

func buildRegeneratePrompt(languageName, mixedResponse string) string {
	return fmt.Sprintf(`This response contains language mixing: "%[2]s"

Rewrite it in PURE %[1]s only. No English. No Pidgin. Only %[1]s.

Pure %[1]s response:`, languageName, mixedResponse)
}

func buildQuestionPrompt(responseLanguage, message, kbContext string) string {
	return fmt.Sprintf(`You are a knowledgeable Nigerian multilingual AI assistant that ONLY provides information from verified sources.

The user asked (in %[1]s): "%[2]s"

Knowledge base information:
%[3]s

CRITICAL INSTRUCTIONS:
- ONLY use information from the knowledge base above to answer
- Do NOT make up, assume, or infer information not explicitly stated in the knowledge base
- Answer in %[1]s (the same language they used)
- Be conversational and natural in tone, but STRICTLY factual in content
- If the knowledge base doesn't contain enough information to answer the question, say: "I don't have enough information in my knowledge base to answer that question accurately" (in %[1]s)
- Keep it concise but accurate (2-4 sentences)
- Cite what you know from the knowledge base, don't speculate beyond it

Your answer in %[1]s (using ONLY knowledge base information):`, responseLanguage, message, kbContext)
}

func buildCulturalPrompt(responseLanguage, message, kbContext string) string {
	return fmt.Sprintf(`You are a Nigerian cultural expert assistant.

The user asked about Nigerian culture (in %[1]s): "%[2]s"

Knowledge base information:
%[3]s

CRITICAL INSTRUCTIONS:
- ONLY provide cultural information from the knowledge base above
- Do NOT invent proverbs, traditions, or cultural facts
- Answer in %[1]s
- If the knowledge base doesn't have information about this topic, say: "I don't have information about that in my knowledge base" (in %[1]s)
- Be conversational but factually accurate
- Keep it concise (2-4 sentences)

Your answer in %[1]s (using ONLY knowledge base information):`, responseLanguage, message, kbContext)
}

func buildContentGenerationPrompt(contentType, targetLanguage, topic string) string {
	return fmt.Sprintf(`
<CONTENT_GENERATION_INSTRUCTION>
    <TASK>
        Generate %[1]s in %[2]s about the following topic.
    </TASK>

    <TOPIC>
        %[3]s
    </TOPIC>

    <CONTENT_TYPE>
        %[1]s
    </CONTENT_TYPE>

    <REQUIREMENTS>
        <REQUIREMENT>Write naturally in %[2]s</REQUIREMENT>
        <REQUIREMENT>Ensure cultural appropriateness for Nigerian audience</REQUIREMENT>
        <REQUIREMENT>Use proper grammar and spelling for the target language</REQUIREMENT>
        <REQUIREMENT>Match the tone and style to the content type</REQUIREMENT>
        <REQUIREMENT>Include relevant cultural references or examples</REQUIREMENT>
    </REQUIREMENTS>

    <OUTPUT_FORMAT>
        Generate the %[1]s in %[2]s.
        Structure the content appropriately for the content type.
    </OUTPUT_FORMAT>
</CONTENT_GENERATION_INSTRUCTION>
`, contentType, targetLanguage, topic)
}

func buildCasualConversationPrompt(languageName, message, history string) string {
	if history == "" {
		history = noHistoryPlaceholder
	}
	return fmt.Sprintf(`
<CONVERSATION_INSTRUCTION>
    <TASK>
        Engage in natural, friendly conversation with the user in %[1]s.
    </TASK>

    <USER_MESSAGE>
        %[2]s
    </USER_MESSAGE>

    <CONVERSATION_CONTEXT>
        %[3]s
    </CONVERSATION_CONTEXT>

    <REQUIREMENTS>
        <REQUIREMENT>Maintain conversational and friendly tone</REQUIREMENT>
        <REQUIREMENT>Use appropriate greetings and expressions for %[1]s</REQUIREMENT>
        <REQUIREMENT>Reference previous conversation context when relevant</REQUIREMENT>
        <REQUIREMENT>Ask follow-up questions to keep conversation flowing</REQUIREMENT>
        <REQUIREMENT>Be culturally sensitive and respectful</REQUIREMENT>
    </REQUIREMENTS>

    <OUTPUT_FORMAT>
        Respond naturally in %[1]s as if having a real conversation.
        Use colloquial expressions and cultural references appropriately.
    </OUTPUT_FORMAT>
</CONVERSATION_INSTRUCTION>
`, languageName, message, history)
}
