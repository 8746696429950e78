package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenerateHandler_Success(t *testing.T) {
	t.Parallel()

	h := NewGenerateHandler(newTestAgent())

	rr := httptest.NewRecorder()
	h.Generate(rr, postJSON(t, "/api/v1/generate-content", GenerateRequest{
		Topic:       "rain",
		ContentType: "poem",
		Language:    "pcm",
	}))

	if rr.Code != http.StatusOK {
		t.Fatalf("Generate status = %d; want %d. body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var resp GenerateResponse
	decodeBody(t, rr, &resp)
	if resp.Topic != "rain" {
		t.Errorf("topic = %q; want rain", resp.Topic)
	}
	if resp.ContentType != "poem" {
		t.Errorf("content_type = %q; want poem", resp.ContentType)
	}
	if resp.Language != "pcm" {
		t.Errorf("language = %q; want requested pcm", resp.Language)
	}
	if resp.GeneratedContent == "" {
		t.Error("generated_content is empty")
	}
}

func TestGenerateHandler_MissingFields(t *testing.T) {
	t.Parallel()

	h := NewGenerateHandler(newTestAgent())

	rr := httptest.NewRecorder()
	h.Generate(rr, postJSON(t, "/api/v1/generate-content", GenerateRequest{Topic: "rain"}))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("missing content_type status = %d; want %d", rr.Code, http.StatusBadRequest)
	}
}
