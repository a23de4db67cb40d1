package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobhunt-backend/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("sk-test", "gpt-3.5-turbo")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	client.apiURL = server.URL
	return client, server
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient("  ", "gpt-3.5-turbo"); !errors.Is(err, llm.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestNewClientRequiresModel(t *testing.T) {
	if _, err := NewClient("sk-test", ""); err == nil {
		t.Fatal("expected error for blank model")
	}
}

func TestGenerateLetterReturnsContent(t *testing.T) {
	var gotReq chatRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			t.Errorf("missing auth header, got %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "  Dear Hiring Committee,\nI am writing...  "}},
			},
		})
	})

	letter, err := client.GenerateLetter(context.Background(), []llm.Message{
		{Role: "system", Content: "role instruction"},
		{Role: "user", Content: "full prompt"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if letter != "Dear Hiring Committee,\nI am writing..." {
		t.Fatalf("unexpected letter: %q", letter)
	}
	if gotReq.Model != "gpt-3.5-turbo" {
		t.Fatalf("expected model in request, got %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
		t.Fatalf("unexpected request messages: %+v", gotReq.Messages)
	}
}

func TestGenerateLetterAPIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "rate limit exceeded", "type": "insufficient_quota"},
		})
	})

	_, err := client.GenerateLetter(context.Background(), []llm.Message{{Role: "user", Content: "p"}})
	if !errors.Is(err, llm.ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}
}

func TestGenerateLetterEmptyChoices(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	_, err := client.GenerateLetter(context.Background(), []llm.Message{{Role: "user", Content: "p"}})
	if !errors.Is(err, llm.ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}
}
