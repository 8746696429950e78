package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTranslateHandler_Success(t *testing.T) {
	t.Parallel()

	h := NewTranslateHandler(newTestAgent())

	rr := httptest.NewRecorder()
	h.Translate(rr, postJSON(t, "/api/v1/translate", TranslateRequest{
		Text:           "how you dey?",
		SourceLanguage: "pcm",
		TargetLanguage: "en",
	}))

	if rr.Code != http.StatusOK {
		t.Fatalf("Translate status = %d; want %d. body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var resp TranslateResponse
	decodeBody(t, rr, &resp)
	if resp.OriginalText != "how you dey?" {
		t.Errorf("original_text = %q", resp.OriginalText)
	}
	if resp.SourceLanguage != "pcm" || resp.TargetLanguage != "en" {
		t.Errorf("languages = %q -> %q; want pcm -> en", resp.SourceLanguage, resp.TargetLanguage)
	}
	// No provider configured: the pipeline degrades to its placeholder.
	if resp.TranslatedText != "[LLM not configured]" {
		t.Errorf("translated_text = %q", resp.TranslatedText)
	}
}

func TestTranslateHandler_MissingFields(t *testing.T) {
	t.Parallel()

	h := NewTranslateHandler(newTestAgent())

	cases := []struct {
		name string
		req  TranslateRequest
	}{
		{"missing text", TranslateRequest{SourceLanguage: "en", TargetLanguage: "ha"}},
		{"missing source", TranslateRequest{Text: "hello", TargetLanguage: "ha"}},
		{"missing target", TranslateRequest{Text: "hello", SourceLanguage: "en"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.Translate(rr, postJSON(t, "/api/v1/translate", tc.req))
			if rr.Code != http.StatusBadRequest {
				t.Errorf("status = %d; want %d", rr.Code, http.StatusBadRequest)
			}
		})
	}
}
