package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/umaryunusa/wazobia/internal/domain/intent"
	"github.com/umaryunusa/wazobia/internal/domain/knowledge"
	"github.com/umaryunusa/wazobia/internal/domain/language"
	"github.com/umaryunusa/wazobia/internal/infra/llm"
)

// Reply is the outcome of processing one user message.
type Reply struct {
	Response string         `json:"response"`
	Language string         `json:"language"`
	Intent   string         `json:"intent"`
	Metadata map[string]any `json:"metadata"`
}

// Options carries optional per-request context: language preferences and
// explicit translation parameters.
type Options struct {
	// PreferredLanguages, when set, pins the response language to its first
	// entry whenever the detected input language is not among them.
	PreferredLanguages []string

	// Explicit translation parameters. When set they bypass free-form
	// parsing of the message.
	TextToTranslate string
	SourceLanguage  string
	TargetLanguage  string
}

// Agent routes messages through detection and classification to the
// per-language specialists.
type Agent struct {
	provider    llm.LLMProvider
	base        *knowledge.Base
	retriever   *knowledge.Retriever
	specialists map[string]*Specialist
	history     *History
	temperature float32
	maxTokens   int
}

// New creates an Agent over the given provider and knowledge base. A nil
// provider is allowed: every handler degrades to a placeholder response, so
// the pipeline stays testable without credentials.
func New(provider llm.LLMProvider, base *knowledge.Base, temperature float32, maxTokens int) *Agent {
	return &Agent{
		provider:  provider,
		base:      base,
		retriever: knowledge.NewRetriever(base),
		specialists: map[string]*Specialist{
			"yo":  NewYoruba(provider, temperature, maxTokens),
			"ha":  NewHausa(provider, temperature, maxTokens),
			"pcm": NewPidgin(provider, temperature, maxTokens),
			"en":  NewEnglish(provider, temperature, maxTokens),
		},
		history:     NewHistory(),
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// History exposes the in-process conversation memory.
func (a *Agent) History() *History { return a.history }

// Specialist returns the agent for a language code, falling back to English
// for unsupported codes.
func (a *Agent) Specialist(code string) *Specialist {
	if s, ok := a.specialists[code]; ok {
		return s
	}
	return a.specialists["en"]
}

// ProcessMessage runs the full pipeline for one message: detect language,
// classify intent, dispatch to the matching handler and record the turn.
func (a *Agent) ProcessMessage(ctx context.Context, message string, opts *Options) *Reply {
	detection := language.Detect(message)
	detectedLang := detection.Language

	// Mixed mode: the user pinned response languages and wrote in something
	// else, so handlers answer in the first preferred language.
	responseLang := detectedLang
	if opts != nil && len(opts.PreferredLanguages) > 0 && !contains(opts.PreferredLanguages, detectedLang) {
		responseLang = opts.PreferredLanguages[0]
	}

	msgIntent := intent.Classify(message, detectedLang)

	var reply *Reply
	switch msgIntent {
	case intent.Greeting:
		reply = a.handleGreeting(ctx, message, detectedLang, responseLang)
	case intent.CasualConversation:
		reply = a.handleCasualConversation(ctx, message, detectedLang, responseLang)
	case intent.Translation:
		reply = a.handleTranslation(ctx, message, detectedLang, opts)
	case intent.Question:
		reply = a.handleQuestion(ctx, message, detectedLang, responseLang)
	case intent.CulturalQuery:
		reply = a.handleCulturalQuery(ctx, message, detectedLang, responseLang)
	case intent.ContentGeneration:
		reply = a.handleContentGeneration(ctx, message, detectedLang)
	default:
		reply = a.handleGeneral(ctx, message, detectedLang)
	}
	reply.Intent = string(msgIntent)

	a.history.Append(Turn{
		Timestamp: nowUTC(),
		User:      message,
		Agent:     reply.Response,
		Language:  detectedLang,
		Intent:    reply.Intent,
	})

	return reply
}

func (a *Agent) handleGreeting(ctx context.Context, message, inputLang, responseLang string) *Reply {
	specialist := a.Specialist(responseLang)

	response := specialist.Respond(ctx, message, "", "greeting", "")
	response = specialist.ReviewResponse(ctx, response, message)

	return &Reply{
		Response: response,
		Language: responseLang,
		Metadata: map[string]any{
			"detection_confidence": 0.9,
			"agent":                specialist.agentName(),
			"input_language":       inputLang,
		},
	}
}

func (a *Agent) handleCasualConversation(ctx context.Context, message, inputLang, responseLang string) *Reply {
	specialist := a.Specialist(responseLang)

	response := specialist.Respond(ctx, message, a.history.Context(0), "casual_conversation", "")
	response = specialist.ReviewResponse(ctx, response, message)

	return &Reply{
		Response: response,
		Language: responseLang,
		Metadata: map[string]any{
			"conversational": true,
			"agent":          specialist.agentName(),
			"input_language": inputLang,
		},
	}
}

func (a *Agent) handleTranslation(ctx context.Context, message, detectedLang string, opts *Options) *Reply {
	var sourceLang, targetLang, text string
	if opts != nil && (opts.TextToTranslate != "" || opts.SourceLanguage != "" || opts.TargetLanguage != "") {
		sourceLang, targetLang, text = opts.SourceLanguage, opts.TargetLanguage, opts.TextToTranslate
		if sourceLang == "" {
			sourceLang = detectedLang
		}
		if targetLang == "" {
			targetLang = "en"
		}
	} else {
		sourceLang, targetLang, text = parseTranslationRequest(message, detectedLang)
	}

	if text == "" {
		return &Reply{
			Response: "Please specify the text you want to translate.",
			Language: detectedLang,
			Metadata: map[string]any{"error": "missing_text"},
		}
	}

	sourceAgent := a.Specialist(sourceLang)
	targetAgent := a.Specialist(targetLang)
	translated := sourceAgent.TranslateTo(ctx, text, targetLang, targetAgent)

	return &Reply{
		Response: translated,
		Language: targetLang,
		Metadata: map[string]any{
			"source_language": sourceLang,
			"target_language": targetLang,
			"original_text":   text,
			"source_agent":    sourceAgent.agentName(),
			"target_agent":    targetAgent.agentName(),
		},
	}
}

func (a *Agent) handleQuestion(ctx context.Context, message, inputLang, responseLang string) *Reply {
	docs := a.retriever.Retrieve(message, responseLang, 0)
	kbContext := knowledge.BuildContext(docs)
	responseLanguage := languageName(responseLang)
	if !language.Supported(responseLang) {
		responseLanguage = "English"
	}

	var answer string
	if a.provider != nil {
		answer = a.callLLM(ctx, buildQuestionPrompt(responseLanguage, message, kbContext))
	} else {
		answer = fmt.Sprintf("Based on the available information: %s...", truncateRunes(kbContext, 200))
	}

	sources := make([]string, 0, 3)
	for _, doc := range docs {
		if len(sources) == 3 {
			break
		}
		title := doc.Title
		if title == "" {
			title = "Unknown"
		}
		sources = append(sources, title)
	}

	return &Reply{
		Response: answer,
		Language: responseLang,
		Metadata: map[string]any{
			"input_language": inputLang,
			"sources":        sources,
			"num_sources":    len(docs),
		},
	}
}

func (a *Agent) handleCulturalQuery(ctx context.Context, message, inputLang, responseLang string) *Reply {
	docs := a.retriever.Retrieve(message, responseLang, 3)
	kbContext := knowledge.BuildContext(docs)
	responseLanguage := languageName(responseLang)
	if !language.Supported(responseLang) {
		responseLanguage = "English"
	}

	var response string
	if a.provider != nil {
		response = a.callLLM(ctx, buildCulturalPrompt(responseLanguage, message, kbContext))
	} else {
		response = fmt.Sprintf("Cultural explanation for: %s [LLM not configured]", message)
	}

	return &Reply{
		Response: response,
		Language: responseLang,
		Metadata: map[string]any{
			"has_context":    len(docs) > 0,
			"num_sources":    len(docs),
			"input_language": inputLang,
		},
	}
}

func (a *Agent) handleContentGeneration(ctx context.Context, message, detectedLang string) *Reply {
	topic, contentType := parseGenerationRequest(message)

	var content string
	if a.provider != nil {
		content = a.callLLM(ctx, buildContentGenerationPrompt(contentType, languageName(detectedLang), topic))
	} else {
		content = fmt.Sprintf("[Generated %s about %s in %s]", contentType, topic, detectedLang)
	}

	return &Reply{
		Response: content,
		Language: detectedLang,
		Metadata: map[string]any{
			"topic":        topic,
			"content_type": contentType,
		},
	}
}

func (a *Agent) handleGeneral(ctx context.Context, message, detectedLang string) *Reply {
	var response string
	if a.provider != nil {
		response = a.callLLM(ctx, buildCasualConversationPrompt(language.Name(detectedLang), message, a.history.Context(0)))
	} else {
		response = fmt.Sprintf("I understand you said: %s. (LLM not configured for full responses)", message)
	}

	return &Reply{
		Response: response,
		Language: detectedLang,
		Metadata: map[string]any{},
	}
}

// Translate runs the translation pipeline directly with explicit parameters,
// bypassing detection and intent classification. Does not touch history.
func (a *Agent) Translate(ctx context.Context, text, sourceLang, targetLang string) *Reply {
	reply := a.handleTranslation(ctx, text, sourceLang, &Options{
		TextToTranslate: text,
		SourceLanguage:  sourceLang,
		TargetLanguage:  targetLang,
	})
	reply.Intent = string(intent.Translation)
	return reply
}

// Statistics summarises the agent's state: in-process history length,
// per-partition corpus sizes and the supported languages.
func (a *Agent) Statistics() map[string]any {
	return map[string]any{
		"total_conversations": a.history.Len(),
		"knowledge_base_size": a.base.Sizes(),
		"languages_supported": []string{"Hausa", "Nigerian Pidgin", "Yoruba", "English"},
	}
}

// ClearHistory discards the in-process conversation memory.
func (a *Agent) ClearHistory() {
	a.history.Clear()
}

// callLLM mirrors the specialists' error handling: failures come back as
// text, never as errors.
func (a *Agent) callLLM(ctx context.Context, prompt string) string {
	if a.provider == nil {
		return "[LLM not configured]"
	}
	resp, err := a.provider.ChatCompletion(ctx, llm.ChatRequest{
		Messages:    []llm.Message{{Role: "user", Content: prompt}},
		Temperature: a.temperature,
		MaxTokens:   a.maxTokens,
	})
	if err != nil {
		return fmt.Sprintf("Error calling LLM (%s): %v", a.provider.ModelInfo().Provider, err)
	}
	return resp.Content
}

// agentName renders the handler identity used in reply metadata, e.g.
// "YorubaAgent".
func (s *Specialist) agentName() string {
	tag := strings.ToLower(s.profile.tag)
	return strings.ToUpper(tag[:1]) + tag[1:] + "Agent"
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
