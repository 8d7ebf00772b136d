package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestAsk_SendsPromptPairAndReturnsReply(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody map[string]any
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"deepseek/deepseek-chat","choices":[{"message":{"role":"assistant","content":"{\"name\":\"Jane\"}"}}]}`))
	})

	c := New("test-key", srv.URL, "", "linkedin-cv", "")
	reply, err := c.Ask(context.Background(), "system text", "user text")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if reply != `{"name":"Jane"}` {
		t.Errorf("reply = %q", reply)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if gotPath != "/chat/completions" {
		t.Errorf("path = %q", gotPath)
	}
	// Empty model falls back to the default.
	if gotBody["model"] != "deepseek/deepseek-chat" {
		t.Errorf("model = %v", gotBody["model"])
	}
	msgs, ok := gotBody["messages"].([]any)
	if !ok || len(msgs) != 2 {
		t.Fatalf("messages = %v", gotBody["messages"])
	}
	first := msgs[0].(map[string]any)
	second := msgs[1].(map[string]any)
	if first["role"] != "system" || first["content"] != "system text" {
		t.Errorf("system message = %v", first)
	}
	if second["role"] != "user" || second["content"] != "user text" {
		t.Errorf("user message = %v", second)
	}
}

func TestAsk_EmptyAPIKey(t *testing.T) {
	c := New("", "http://unused", "", "", "")
	if _, err := c.Ask(context.Background(), "s", "u"); err == nil {
		t.Fatal("expected error for empty api key")
	}
}

func TestAsk_NonSuccessStatus(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	})

	c := New("test-key", srv.URL, "", "", "")
	_, err := c.Ask(context.Background(), "s", "u")
	if err == nil {
		t.Fatal("expected error for non-2xx status")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error should carry the status code: %v", err)
	}
}

func TestAsk_NoChoices(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"model":"x","choices":[]}`))
	})

	c := New("test-key", srv.URL, "", "", "")
	if _, err := c.Ask(context.Background(), "s", "u"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}
