package agent

import "testing"

func TestParseTranslationRequest(t *testing.T) {
	cases := []struct {
		name       string
		message    string
		detected   string
		wantSource string
		wantTarget string
		wantText   string
	}{
		{"translate to", "translate how far to english", "pcm", "pcm", "en", "how far"},
		{"say in", "say good evening in hausa", "en", "en", "ha", "good evening"},
		{"convert to", "convert thank you to yoruba", "en", "en", "yo", "thank you"},
		{"hausa fassara", "fassara barka da safiya zuwa english", "ha", "ha", "en", "barka da safiya"},
		{"igbo recognized", "say hello in igbo", "en", "en", "ig", "hello"},
		{"unknown target passes through", "say hello in french", "en", "en", "french", "hello"},
		{"bare translate keyword", "translate how you dey", "pcm", "pcm", "en", "how you dey"},
		{"no pattern at all", "abeg help me with this", "pcm", "pcm", "en", "abeg help me with this"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			source, target, text := parseTranslationRequest(tc.message, tc.detected)
			if source != tc.wantSource || target != tc.wantTarget || text != tc.wantText {
				t.Errorf("got (%q, %q, %q), want (%q, %q, %q)",
					source, target, text, tc.wantSource, tc.wantTarget, tc.wantText)
			}
		})
	}
}

func TestParseGenerationRequest(t *testing.T) {
	cases := []struct {
		message  string
		wantType string
		wantTop  string
	}{
		{"write a story about the tortoise", "story", "the tortoise"},
		{"compose an essay about Nigerian independence", "article", "Nigerian independence"},
		{"write a poem about rain", "poem", "rain"},
		{"create a dialogue about market day", "dialogue", "market day"},
		{"write something for my mother", "text", "write something for my mother"},
	}
	for _, tc := range cases {
		t.Run(tc.message, func(t *testing.T) {
			topic, contentType := parseGenerationRequest(tc.message)
			if contentType != tc.wantType {
				t.Errorf("content type = %q, want %q", contentType, tc.wantType)
			}
			if topic != tc.wantTop {
				t.Errorf("topic = %q, want %q", topic, tc.wantTop)
			}
		})
	}
}
