// LLM provider router and factory. Router selects a LLMProvider at request
// time; NewProvider builds one from a provider name and credentials.
package llm

import (
	"context"
	"fmt"
)

// ErrUnsupportedProvider wraps an unrecognised provider name. Callers that
// prefer to degrade instead of fail can match it with errors.Is.
var ErrUnsupportedProvider = fmt.Errorf("unsupported llm provider")

// NewProvider constructs the adapter for a provider name.
//
// Supported names: "anthropic", "openai", "groq", "local". Groq reuses the
// OpenAI adapter with the Groq base URL. An empty baseURL selects each
// vendor's public endpoint; "local" defaults to the standard Ollama port.
func NewProvider(name, baseURL, apiKey, model string) (LLMProvider, error) {
	switch name {
	case "anthropic":
		return NewAnthropicProvider(baseURL, apiKey, model), nil
	case "openai":
		return NewOpenAIProvider(baseURL, apiKey, model, "openai"), nil
	case "groq":
		if baseURL == "" {
			baseURL = GroqBaseURL
		}
		return NewOpenAIProvider(baseURL, apiKey, model, "groq"), nil
	case "local":
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return NewOllamaProvider(baseURL, model), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, name)
	}
}

// Router selects a LLMProvider for each request.
type Router struct {
	providers       map[string]LLMProvider
	defaultProvider string
}

// NewRouter creates a Router with an initial set of providers and a default key.
func NewRouter(providers map[string]LLMProvider, defaultProvider string) *Router {
	// the router owns its own copy of the map.
	ps := make(map[string]LLMProvider, len(providers))
	for k, v := range providers {
		ps[k] = v
	}
	return &Router{providers: ps, defaultProvider: defaultProvider}
}

// Register adds (or replaces) a provider under the given key.
// Useful for dynamic reconfiguration or tests.
func (r *Router) Register(key string, p LLMProvider) {
	r.providers[key] = p
}

// Route returns the provider for the current request.
// Pass-through to the default provider; per-request selection (cost tiers,
// fallback chains) would hook in here.
func (r *Router) Route(_ context.Context) (LLMProvider, error) {
	p, ok := r.providers[r.defaultProvider]
	if !ok {
		return nil, fmt.Errorf("llm router: provider %q not registered (available: %v)", r.defaultProvider, r.keys())
	}
	return p, nil
}

// keys returns the registered provider names (for error messages).
func (r *Router) keys() []string {
	out := make([]string, 0, len(r.providers))
	for k := range r.providers {
		out = append(out, k)
	}
	return out
}
