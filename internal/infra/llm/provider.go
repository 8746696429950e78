// LLMProvider interface. Adapters (Anthropic, OpenAI-compatible, local
// Ollama) implement this interface so the agents are never coupled to a
// specific LLM vendor.
package llm

import "context"

// LLMProvider is the model-agnostic interface for LLM operations.
// Streaming is excluded: agent responses are short enough that buffering a
// full completion keeps the call path simple.
type LLMProvider interface {
	// ChatCompletion performs a non-streaming chat completion.
	ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error)

	// ModelInfo returns static metadata about the provider/model.
	ModelInfo() ModelMeta

	// HealthCheck returns nil if the provider is reachable and operational.
	HealthCheck(ctx context.Context) error
}
