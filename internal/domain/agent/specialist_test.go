package agent

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/umaryunusa/wazobia/internal/infra/llm"
)

// fakeProvider records every prompt and replies with canned content.
type fakeProvider struct {
	mu      sync.Mutex
	prompts []string
	replies []string // consumed in order; last one repeats
	err     error
}

func (f *fakeProvider) ChatCompletion(_ context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
		return nil, errors.New("expected a single user message")
	}
	f.prompts = append(f.prompts, req.Messages[0].Content)
	if f.err != nil {
		return nil, f.err
	}
	reply := "ok"
	if len(f.replies) > 0 {
		reply = f.replies[0]
		if len(f.replies) > 1 {
			f.replies = f.replies[1:]
		}
	}
	return &llm.ChatResponse{Content: reply, StopReason: "stop"}, nil
}

func (f *fakeProvider) ModelInfo() llm.ModelMeta {
	return llm.ModelMeta{ID: "fake-model", Provider: "fake"}
}

func (f *fakeProvider) HealthCheck(context.Context) error { return nil }

func (f *fakeProvider) promptCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

func (f *fakeProvider) prompt(i int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.prompts[i]
}

func TestRespond_YorubaPromptStructure(t *testing.T) {
	fake := &fakeProvider{}
	yo := NewYoruba(fake, 0.7, 2000)

	yo.Respond(context.Background(), "bawo ni", "", "greeting", "")

	if fake.promptCount() != 1 {
		t.Fatalf("got %d prompts, want 1", fake.promptCount())
	}
	prompt := fake.prompt(0)

	for _, want := range []string{
		"<YORUBA_AGENT_INSTRUCTION>",
		"<CRITICAL_RULES>",
		`<RULE priority="highest">Respond ONLY in pure Yoruba`,
		"Provide a warm Yoruba greeting (1-2 sentences).",
		"No previous conversation",
		"No additional context provided",
		"bawo ni",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q\nprompt:\n%s", want, prompt)
		}
	}
}

func TestRespond_EnglishUsesPlainRules(t *testing.T) {
	fake := &fakeProvider{}
	en := NewEnglish(fake, 0.7, 2000)

	en.Respond(context.Background(), "what can you do", "", "casual_conversation", "")

	prompt := fake.prompt(0)
	if !strings.Contains(prompt, "<RULES>") {
		t.Error("English prompt missing <RULES>")
	}
	if strings.Contains(prompt, "<CRITICAL_RULES>") {
		t.Error("English prompt must not use <CRITICAL_RULES>")
	}
	if !strings.Contains(prompt, "Respond naturally and conversationally.") {
		t.Error("casual_conversation output instruction missing")
	}
}

func TestRespond_NilProvider(t *testing.T) {
	yo := NewYoruba(nil, 0.7, 2000)
	got := yo.Respond(context.Background(), "bawo ni", "", "greeting", "")
	if got != "[LLM not configured]" {
		t.Errorf("got %q", got)
	}
}

func TestCallLLM_ErrorSurfacesInText(t *testing.T) {
	fake := &fakeProvider{err: errors.New("boom")}
	ha := NewHausa(fake, 0.7, 2000)

	got := ha.Respond(context.Background(), "sannu", "", "greeting", "")
	if !strings.HasPrefix(got, "Error calling LLM (fake):") {
		t.Errorf("got %q, want error-in-text prefix", got)
	}
}

func TestTranslateTo_VerifiedByTargetAgent(t *testing.T) {
	fake := &fakeProvider{replies: []string{"first pass", "verified"}}
	en := NewEnglish(fake, 0.7, 2000)
	yo := NewYoruba(fake, 0.7, 2000)

	got := en.TranslateTo(context.Background(), "good morning", "yo", yo)

	if got != "verified" {
		t.Errorf("got %q, want the reviewer's output", got)
	}
	if fake.promptCount() != 2 {
		t.Fatalf("got %d prompts, want 2", fake.promptCount())
	}
	if !strings.Contains(fake.prompt(0), "expert translator from English to Yoruba") {
		t.Errorf("translate prompt = %q", fake.prompt(0))
	}
	second := fake.prompt(1)
	if !strings.Contains(second, "Yoruba language expert reviewing a translation") {
		t.Errorf("verify prompt = %q", second)
	}
	if !strings.Contains(second, `"first pass"`) {
		t.Error("verify prompt must carry the first-pass translation")
	}
}

func TestTranslateTo_NoReviewer(t *testing.T) {
	fake := &fakeProvider{replies: []string{"sannu da safe"}}
	en := NewEnglish(fake, 0.7, 2000)

	got := en.TranslateTo(context.Background(), "good morning", "ha", nil)
	if got != "sannu da safe" {
		t.Errorf("got %q", got)
	}
	if fake.promptCount() != 1 {
		t.Errorf("got %d prompts, want 1 without a reviewer", fake.promptCount())
	}
}

func TestDetectMixing(t *testing.T) {
	yo := NewYoruba(nil, 0.7, 2000)
	ha := NewHausa(nil, 0.7, 2000)
	pcm := NewPidgin(nil, 0.7, 2000)

	cases := []struct {
		name       string
		specialist *Specialist
		text       string
		want       bool
	}{
		{"yoruba english word", yo, "mo fẹ́ the ounjẹ", true},
		{"yoruba pidgin word", yo, "ṣe o fit wa", true},
		{"pure yoruba", yo, "báwo lo ṣe wà lónìí", false},
		{"hausa english word", ha, "muna there yanzu", true},
		{"hausa other word", ha, "wetin kake yi", true},
		{"pure hausa", ha, "yaya kake yau", false},
		{"pidgin never flags", pcm, "the thing dey here", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.specialist.DetectMixing(tc.text); got != tc.want {
				t.Errorf("DetectMixing(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestCleanResponse(t *testing.T) {
	fake := &fakeProvider{replies: []string{"ẹ ṣeun gan-an"}}
	yo := NewYoruba(fake, 0.7, 2000)
	ctx := context.Background()

	// Clean text passes through without an LLM call.
	if got := yo.CleanResponse(ctx, "ẹ káàárọ̀ o"); got != "ẹ káàárọ̀ o" {
		t.Errorf("clean text rewritten to %q", got)
	}
	if fake.promptCount() != 0 {
		t.Fatalf("clean text triggered %d LLM calls", fake.promptCount())
	}

	// Mixed text is regenerated.
	got := yo.CleanResponse(ctx, "mo wa the fine")
	if got != "ẹ ṣeun gan-an" {
		t.Errorf("got %q, want regenerated text", got)
	}
	if !strings.Contains(fake.prompt(0), "Rewrite it in PURE Yoruba only.") {
		t.Errorf("regenerate prompt = %q", fake.prompt(0))
	}
}
