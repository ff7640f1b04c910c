package qdrant

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"message-triage-assistant/internal/triage/repository"
	pkgQdrant "message-triage-assistant/pkg/qdrant"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any)                    {}
func (nopLogger) Infof(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, args ...any)                    {}
func (nopLogger) Warnf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, args ...any)                   {}
func (nopLogger) Errorf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                   {}
func (nopLogger) Fatalf(ctx context.Context, template string, args ...any) {}

type fakeEmbedder struct {
	embedFunc func(ctx context.Context, texts []string) ([][]float32, error)
}

func (f *fakeEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return f.embedFunc(ctx, texts)
}

func constantEmbedder(dim int) *fakeEmbedder {
	return &fakeEmbedder{
		embedFunc: func(ctx context.Context, texts []string) ([][]float32, error) {
			out := make([][]float32, len(texts))
			for i := range texts {
				out[i] = make([]float32, dim)
			}
			return out, nil
		},
	}
}

func TestSearch(t *testing.T) {
	t.Run("Maps Payload To Passages", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/collections/wine_knowledge/points/search" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			var req pkgQdrant.SearchRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("failed to decode request: %v", err)
			}
			if req.Limit != 3 {
				t.Errorf("expected limit 3, got %d", req.Limit)
			}
			if !req.WithPayload {
				t.Error("expected with_payload to be set")
			}

			json.NewEncoder(w).Encode(pkgQdrant.SearchResponse{
				Result: []pkgQdrant.ScoredPoint{
					{
						ID:    "a",
						Score: 0.91,
						Payload: map[string]interface{}{
							"content": "Каберне Совиньон подходит к красному мясу.",
							"title":   "Красные вина",
						},
					},
					{
						// No content payload, must be skipped.
						ID:      "b",
						Score:   0.80,
						Payload: map[string]interface{}{"title": "пусто"},
					},
					{
						ID:      "c",
						Score:   0.74,
						Payload: map[string]interface{}{"content": "Рислинг хорош к рыбе."},
					},
				},
			})
		}))
		defer server.Close()

		repo := New(pkgQdrant.NewClient(server.URL), constantEmbedder(4), "wine_knowledge", 4, nopLogger{})

		passages, err := repo.Search(context.Background(), "что подать к мясу", 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(passages) != 2 {
			t.Fatalf("expected 2 passages, got %d", len(passages))
		}
		if passages[0].Content != "Каберне Совиньон подходит к красному мясу." {
			t.Errorf("unexpected first passage: %q", passages[0].Content)
		}
		if passages[0].Title != "Красные вина" {
			t.Errorf("unexpected first title: %q", passages[0].Title)
		}
		if passages[1].Title != "" {
			t.Errorf("expected empty title, got %q", passages[1].Title)
		}
	})

	t.Run("Embedder Failure", func(t *testing.T) {
		embedder := &fakeEmbedder{
			embedFunc: func(ctx context.Context, texts []string) ([][]float32, error) {
				return nil, fmt.Errorf("voyage unavailable")
			},
		}
		repo := New(pkgQdrant.NewClient("http://127.0.0.1:1"), embedder, "wine_knowledge", 4, nopLogger{})

		if _, err := repo.Search(context.Background(), "вопрос", 3); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("Embedder Returns No Vectors", func(t *testing.T) {
		embedder := &fakeEmbedder{
			embedFunc: func(ctx context.Context, texts []string) ([][]float32, error) {
				return nil, nil
			},
		}
		repo := New(pkgQdrant.NewClient("http://127.0.0.1:1"), embedder, "wine_knowledge", 4, nopLogger{})

		_, err := repo.Search(context.Background(), "вопрос", 3)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if strings.Contains(err.Error(), "%!w") {
			t.Errorf("error must not wrap a nil cause: %v", err)
		}
	})
}

func TestIndexDocuments(t *testing.T) {
	t.Run("Upserts All Chunks", func(t *testing.T) {
		var upserted pkgQdrant.UpsertPointsRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/collections/wine_knowledge/points" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if err := json.NewDecoder(r.Body).Decode(&upserted); err != nil {
				t.Fatalf("failed to decode request: %v", err)
			}
			w.Write([]byte(`{"status":"ok"}`))
		}))
		defer server.Close()

		repo := New(pkgQdrant.NewClient(server.URL), constantEmbedder(4), "wine_knowledge", 4, nopLogger{})

		count, err := repo.IndexDocuments(context.Background(), []repository.Document{
			{Title: "Красные вина", Source: "red.md", Content: "Каберне Совиньон."},
			{Title: "Белые вина", Source: "white.md", Content: "Рислинг."},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 2 {
			t.Fatalf("expected 2 indexed, got %d", count)
		}
		if len(upserted.Points) != 2 {
			t.Fatalf("expected 2 points, got %d", len(upserted.Points))
		}
		if upserted.Points[0].Payload["source"] != "red.md" {
			t.Errorf("unexpected source payload: %v", upserted.Points[0].Payload["source"])
		}
		if id, ok := upserted.Points[0].ID.(string); !ok || id == "" {
			t.Errorf("expected non-empty string point ID, got %v", upserted.Points[0].ID)
		}
	})

	t.Run("No Documents", func(t *testing.T) {
		repo := New(pkgQdrant.NewClient("http://127.0.0.1:1"), constantEmbedder(4), "wine_knowledge", 4, nopLogger{})

		count, err := repo.IndexDocuments(context.Background(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 0 {
			t.Fatalf("expected 0 indexed, got %d", count)
		}
	})
}

func TestEnsureCollection(t *testing.T) {
	var created pkgQdrant.CreateCollectionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if r.URL.Path != "/collections/wine_knowledge" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&created); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	repo := New(pkgQdrant.NewClient(server.URL), constantEmbedder(1024), "wine_knowledge", 1024, nopLogger{})

	if err := repo.EnsureCollection(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Vectors.Size != 1024 {
		t.Errorf("expected vector size 1024, got %d", created.Vectors.Size)
	}
	if created.Vectors.Distance != "Cosine" {
		t.Errorf("expected Cosine distance, got %s", created.Vectors.Distance)
	}
}
