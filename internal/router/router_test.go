package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"transcript-ai/internal/handlers"
	"transcript-ai/internal/models"
	"transcript-ai/internal/services"
)

type fakeTranscripts struct {
	fragments []string
	err       error
	calls     int
}

func (f *fakeTranscripts) GetTranscript(ctx context.Context, videoID string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return strings.Join(f.fragments, " "), nil
}

type fakeGenerator struct {
	response   string
	calls      int
	lastPrompt string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.response, nil
}

func newTestServer(transcripts *fakeTranscripts, generator *fakeGenerator) *httptest.Server {
	summarizer := services.NewSummarizer(transcripts, generator)
	return httptest.NewServer(New(
		handlers.NewSummaryHandler(summarizer, 0),
		handlers.NewVideoHandler(nil),
		"*",
	))
}

func postSummary(t *testing.T, srv *httptest.Server, url string) *http.Response {
	t.Helper()
	body := `{"url":"` + url + `"}`
	resp, err := http.Post(srv.URL+"/api/v1/summaries", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestRouter_Health(t *testing.T) {
	srv := newTestServer(&fakeTranscripts{}, &fakeGenerator{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestRouter_SummaryEndToEnd(t *testing.T) {
	transcripts := &fakeTranscripts{fragments: []string{"Hello", "world"}}
	generator := &fakeGenerator{response: "* Greeting to the world"}
	srv := newTestServer(transcripts, generator)
	defer srv.Close()

	resp := postSummary(t, srv, "https://www.youtube.com/watch?v=abc12345678")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var result models.SummaryResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if result.Summary != "* Greeting to the world" {
		t.Errorf("unexpected summary %q", result.Summary)
	}
	for _, want := range []string{"Hello world", "250", "English"} {
		if !strings.Contains(generator.lastPrompt, want) {
			t.Errorf("expected prompt to contain %q", want)
		}
	}
}

func TestRouter_SummaryTranscriptUnavailable(t *testing.T) {
	transcripts := &fakeTranscripts{err: services.ErrNoTranscriptFound}
	generator := &fakeGenerator{}
	srv := newTestServer(transcripts, generator)
	defer srv.Close()

	resp := postSummary(t, srv, "https://youtu.be/abc12345678")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", resp.StatusCode)
	}
	if generator.calls != 0 {
		t.Errorf("generator must not be called, got %d", generator.calls)
	}
}

func TestRouter_SummaryExplicitZeroWordLimitRejected(t *testing.T) {
	transcripts := &fakeTranscripts{fragments: []string{"Hello"}}
	generator := &fakeGenerator{}
	srv := newTestServer(transcripts, generator)
	defer srv.Close()

	body := `{"url":"https://youtu.be/abc12345678","word_limit":0}`
	resp, err := http.Post(srv.URL+"/api/v1/summaries", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	var payload models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if payload.Error.Code != "VALIDATION_ERROR" || payload.Error.Fields["word_limit"] == "" {
		t.Errorf("expected word_limit validation error, got %+v", payload.Error)
	}
	if transcripts.calls != 0 || generator.calls != 0 {
		t.Errorf("no external calls expected, got transcripts=%d generator=%d", transcripts.calls, generator.calls)
	}
}

func TestRouter_SummaryInvalidURL(t *testing.T) {
	transcripts := &fakeTranscripts{}
	generator := &fakeGenerator{}
	srv := newTestServer(transcripts, generator)
	defer srv.Close()

	resp := postSummary(t, srv, "not a url at all")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	if transcripts.calls != 0 || generator.calls != 0 {
		t.Errorf("no external calls expected, got transcripts=%d generator=%d", transcripts.calls, generator.calls)
	}
}
