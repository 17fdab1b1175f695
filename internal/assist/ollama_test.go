package assist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestOllamaClientGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/generate" {
			t.Errorf("path = %s, want /api/generate", r.URL.Path)
		}
		var req ollamaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "llama3" {
			t.Errorf("model = %q, want llama3", req.Model)
		}
		if req.Stream {
			t.Error("stream = true, want false")
		}
		json.NewEncoder(w).Encode(ollamaResponse{Response: "First Story\nSecond Part"})
	}))
	defer srv.Close()

	c := NewOllamaClient(srv.URL, "llama3", time.Second)
	got, err := c.Generate(context.Background(), "split this title")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if want := "First Story\nSecond Part"; got != want {
		t.Errorf("Generate = %q, want %q", got, want)
	}
}

func TestOllamaClientGenerateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewOllamaClient(srv.URL, "missing", time.Second)
	_, err := c.Generate(context.Background(), "prompt")
	var assistErr *Error
	if !errors.As(err, &assistErr) {
		t.Fatalf("Generate error = %v, want *Error", err)
	}
	if assistErr.Backend != "ollama" {
		t.Errorf("Backend = %q, want ollama", assistErr.Backend)
	}
}

func TestOllamaClientContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewOllamaClient(srv.URL, "llama3", 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Generate(ctx, "prompt"); err == nil {
		t.Fatal("Generate with canceled context returned nil error")
	}
}
