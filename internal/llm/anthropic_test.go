package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*AnthropicClient, *httptest.Server) {
	t.Helper()
	os.Setenv("ANTHROPIC_API_KEY", "test-key")
	os.Setenv("ANTHROPIC_MODEL", "claude-test")

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewAnthropicClient()
	client.BaseURL = srv.URL
	return client, srv
}

func TestGenerateDesign_Success(t *testing.T) {
	doc := "<!DOCTYPE html><html><body>menu</body></html>"

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "test-key" {
			t.Error("missing x-api-key header")
		}
		if r.Header.Get("anthropic-version") == "" {
			t.Error("missing anthropic-version header")
		}

		var req map[string]any
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["model"] != "claude-test" {
			t.Errorf("unexpected model %v", req["model"])
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{
				{"type": "text", "text": "```html\n" + doc + "\n```"},
			},
		})
	})

	html, err := client.GenerateDesign(context.Background(), "prompt")
	if err != nil {
		t.Fatal(err)
	}
	if html != doc {
		t.Fatalf("expected fenced html to be stripped, got %q", html)
	}
}

func TestGenerateDesign_APIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"type":"rate_limit_error"}}`))
	})

	_, err := client.GenerateDesign(context.Background(), "prompt")
	if err == nil || !strings.Contains(err.Error(), "anthropic api error") {
		t.Fatalf("expected api error, got %v", err)
	}
}

func TestGenerateDesign_NonHTMLOutput(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{
				{"type": "text", "text": "I cannot design that menu."},
			},
		})
	})

	_, err := client.GenerateDesign(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error for non-html output")
	}
}

func TestGenerateDesign_MissingKey(t *testing.T) {
	os.Setenv("ANTHROPIC_API_KEY", "")
	client := NewAnthropicClient()

	if _, err := client.GenerateDesign(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error when api key is missing")
	}
}
