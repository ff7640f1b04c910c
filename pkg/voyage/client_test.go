package voyage_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"message-triage-assistant/pkg/voyage"
)

func TestEmbed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req voyage.Request
		json.NewDecoder(r.Body).Decode(&req)
		if len(req.Input) == 2 && req.Input[0] == "fail" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": {"message": "boom"}}`))
			return
		}

		resp := voyage.Response{Data: make([]voyage.EmbeddingData, len(req.Input))}
		for i := range req.Input {
			resp.Data[i] = voyage.EmbeddingData{Embedding: []float32{0.1, 0.2, 0.3}, Index: i}
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	client, err := voyage.New("test-key")
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	client.SetEndpoint(ts.URL)

	t.Run("Missing API Key", func(t *testing.T) {
		if _, err := voyage.New(""); err == nil {
			t.Errorf("expected error for empty API key")
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		if _, err := client.Embed(context.Background(), nil); err == nil {
			t.Errorf("expected error for empty input")
		}
	})

	t.Run("Success", func(t *testing.T) {
		vectors, err := client.Embed(context.Background(), []string{"вино к стейку", "регионы"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(vectors) != 2 {
			t.Fatalf("expected 2 vectors, got %d", len(vectors))
		}
		if len(vectors[0]) != 3 {
			t.Errorf("expected 3-dim vector, got %d", len(vectors[0]))
		}
	})

	t.Run("API Error", func(t *testing.T) {
		if _, err := client.Embed(context.Background(), []string{"fail", "x"}); err == nil {
			t.Errorf("expected API error")
		}
	})
}
