package ollama

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_Generate(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		io.WriteString(w, `{"response":"  Доброе утро!  \n"}`)
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL}, testLogger())
	if err != nil {
		t.Fatalf("NewClient() = %v", err)
	}

	text, err := client.Generate(context.Background(), "say good morning")
	if err != nil {
		t.Fatalf("Generate() = %v", err)
	}

	if gotPath != "/api/generate" {
		t.Errorf("request path = %q, want /api/generate", gotPath)
	}
	if gotBody["model"] != "llama3" {
		t.Errorf("model = %v, want llama3", gotBody["model"])
	}
	if gotBody["prompt"] != "say good morning" {
		t.Errorf("prompt = %v", gotBody["prompt"])
	}
	if gotBody["stream"] != false {
		t.Errorf("stream = %v, want false", gotBody["stream"])
	}
	if text != "Доброе утро!" {
		t.Errorf("Generate() = %q, want trimmed response", text)
	}
}

func TestClient_Generate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL}, testLogger())
	if err != nil {
		t.Fatalf("NewClient() = %v", err)
	}

	if _, err := client.Generate(context.Background(), "hi"); err == nil {
		t.Error("Generate() = nil, want error for HTTP 404")
	}
}

func TestClient_Generate_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL}, testLogger())
	if err != nil {
		t.Fatalf("NewClient() = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Generate(ctx, "hi"); err == nil {
		t.Error("Generate() = nil, want error for cancelled context")
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.BaseURL != "http://localhost:11434" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Model != "llama3" {
		t.Errorf("Model = %q", cfg.Model)
	}
}
