// Unit tests for the provider factory and router.
package llm

import (
	"context"
	"errors"
	"testing"
)

func TestNewProvider_KnownNames(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		vendor string
	}{
		{"anthropic", "anthropic"},
		{"openai", "openai"},
		{"groq", "groq"},
		{"local", "local"},
	}
	for _, tc := range cases {
		p, err := NewProvider(tc.name, "", "key", "some-model")
		if err != nil {
			t.Fatalf("NewProvider(%q) failed: %v", tc.name, err)
		}
		if got := p.ModelInfo().Provider; got != tc.vendor {
			t.Errorf("NewProvider(%q).ModelInfo().Provider = %q, want %q", tc.name, got, tc.vendor)
		}
	}
}

func TestNewProvider_UnsupportedName(t *testing.T) {
	t.Parallel()

	_, err := NewProvider("azure", "", "key", "model")
	if !errors.Is(err, ErrUnsupportedProvider) {
		t.Errorf("err = %v, want ErrUnsupportedProvider", err)
	}
}

func TestRouter_Route_DefaultProvider(t *testing.T) {
	t.Parallel()

	anthropic := NewAnthropicProvider("", "key", "claude-3-5-sonnet-20241022")
	r := NewRouter(map[string]LLMProvider{"anthropic": anthropic}, "anthropic")

	p, err := r.Route(context.Background())
	if err != nil {
		t.Fatalf("Route failed: %v", err)
	}
	if p != LLMProvider(anthropic) {
		t.Error("Route returned a different provider than registered")
	}
}

func TestRouter_Route_MissingDefault(t *testing.T) {
	t.Parallel()

	r := NewRouter(nil, "anthropic")
	if _, err := r.Route(context.Background()); err == nil {
		t.Error("expected error for unregistered default provider, got nil")
	}
}

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	r := NewRouter(nil, "local")
	r.Register("local", NewOllamaProvider("http://localhost:11434", "llama3.2:3b"))

	if _, err := r.Route(context.Background()); err != nil {
		t.Errorf("Route after Register failed: %v", err)
	}
}
