package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	config "gitlab.com/unnchai/agro.backend/src/production/AGT.Config"
)

func testClient(baseURL string) *ChatClient {
	return NewChatClient(&config.AIConfig{
		Model:   "llama-3.3-70b-versatile",
		APIKey:  "gsk_test_key",
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	})
}

func TestCompleteSendsSystemPromptAndParsesReply(t *testing.T) {
	var captured chatCompletionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer gsk_test_key" {
			t.Errorf("unexpected authorization header: %s", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "**Drip irrigation** suits maize."}},
			},
		})
	}))
	defer srv.Close()

	reply, err := testClient(srv.URL).Complete(context.Background(), "Best irrigation methods for maize?")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if reply != "**Drip irrigation** suits maize." {
		t.Errorf("unexpected reply: %q", reply)
	}
	if captured.Model != "llama-3.3-70b-versatile" {
		t.Errorf("unexpected model: %s", captured.Model)
	}
	if captured.Temperature != chatTemperature {
		t.Errorf("unexpected temperature: %v", captured.Temperature)
	}
	if len(captured.Messages) != 2 {
		t.Fatalf("expected system + user message, got %d messages", len(captured.Messages))
	}
	if captured.Messages[0].Role != "system" || !strings.Contains(captured.Messages[0].Content, "Nepal") {
		t.Errorf("first message is not the Nepal agriculture system prompt: %+v", captured.Messages[0])
	}
	if captured.Messages[1].Role != "user" || captured.Messages[1].Content != "Best irrigation methods for maize?" {
		t.Errorf("unexpected user message: %+v", captured.Messages[1])
	}
}

func TestCompleteAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit exceeded"}}`))
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).Complete(context.Background(), "hello"); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).Complete(context.Background(), "hello"); err == nil {
		t.Fatal("expected error on empty choices")
	}
}

func TestCompleteNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	if _, err := testClient(srv.URL).Complete(context.Background(), "hello"); err == nil {
		t.Fatal("expected error when endpoint is unreachable")
	}
}
