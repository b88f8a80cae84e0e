package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *HTTPClient) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, NewHTTPClient(srv.URL, "test-key")
}

func completionJSON(content string) string {
	return `{"choices":[{"message":{"content":` + mustMarshal(content) + `}}]}`
}

func mustMarshal(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestComplete_Success(t *testing.T) {
	var gotAuth string
	var gotBody chatRequest
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(completionJSON("analysis text")))
	})

	out, err := client.Complete(context.Background(), Request{
		Model:       "openai/gpt-oss-20b",
		System:      "You are a medical diagnostic assistant.",
		Prompt:      "Analyze this encounter",
		Temperature: 0.7,
		MaxTokens:   2048,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "analysis text" {
		t.Errorf("expected analysis text, got %q", out)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("expected bearer auth, got %q", gotAuth)
	}
	if len(gotBody.Messages) != 2 {
		t.Fatalf("expected system+user messages, got %d", len(gotBody.Messages))
	}
	if gotBody.Messages[0].Role != "system" {
		t.Errorf("expected first message role system, got %s", gotBody.Messages[0].Role)
	}
	if gotBody.MaxTokens != 2048 {
		t.Errorf("expected max_tokens 2048, got %d", gotBody.MaxTokens)
	}
}

func TestComplete_NoSystemMessage(t *testing.T) {
	var gotBody chatRequest
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(completionJSON("ok")))
	})

	if _, err := client.Complete(context.Background(), Request{Model: "m", Prompt: "p"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gotBody.Messages) != 1 {
		t.Errorf("expected single user message, got %d", len(gotBody.Messages))
	}
}

func TestComplete_APIError(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit exceeded"}}`))
	})

	if _, err := client.Complete(context.Background(), Request{Model: "m", Prompt: "p"}); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestComplete_EmptyChoices(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	if _, err := client.Complete(context.Background(), Request{Model: "m", Prompt: "p"}); err == nil {
		t.Error("expected error for empty choices")
	}
}

func TestCompleteVision_SendsImagePart(t *testing.T) {
	var raw map[string]interface{}
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&raw)
		w.Write([]byte(completionJSON(`{"has_findings":false}`)))
	})

	_, err := client.CompleteVision(context.Background(), Request{
		Model:       "meta-llama/llama-4-scout-17b-16e-instruct",
		Prompt:      "analyze",
		Temperature: 0.1,
		MaxTokens:   2048,
	}, "data:image/png;base64,iVBORw0KGgo=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	messages := raw["messages"].([]interface{})
	content := messages[0].(map[string]interface{})["content"].([]interface{})
	if len(content) != 2 {
		t.Fatalf("expected text+image parts, got %d", len(content))
	}
	imagePart := content[1].(map[string]interface{})
	if imagePart["type"] != "image_url" {
		t.Errorf("expected image_url part, got %v", imagePart["type"])
	}
}

func TestComplete_ContextCancelled(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionJSON("ok")))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.Complete(ctx, Request{Model: "m", Prompt: "p"}); err == nil {
		t.Error("expected error for cancelled context")
	}
}
