package qdrant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"message-triage-assistant/internal/triage"
	"message-triage-assistant/internal/triage/repository"
	pkgQdrant "message-triage-assistant/pkg/qdrant"
)

// Search embeds the query and returns the top-K most similar passages,
// ordered by score.
func (r *implRepository) Search(ctx context.Context, query string, limit int) ([]triage.Passage, error) {
	vectors, err := r.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("embedder returned no vector for query")
	}

	resp, err := r.client.SearchPoints(ctx, r.collectionName, pkgQdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       limit,
		WithPayload: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search points: %w", err)
	}

	passages := make([]triage.Passage, 0, len(resp.Result))
	for _, point := range resp.Result {
		content, ok := point.Payload["content"].(string)
		if !ok || content == "" {
			r.l.Warnf(ctx, "qdrant repository: point %s has no content payload, skipping", point.ID)
			continue
		}
		title, _ := point.Payload["title"].(string)

		passages = append(passages, triage.Passage{
			Content: content,
			Title:   title,
			Score:   point.Score,
		})
	}

	return passages, nil
}

// EnsureCollection creates the knowledge collection if missing.
func (r *implRepository) EnsureCollection(ctx context.Context) error {
	err := r.client.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name: r.collectionName,
		Vectors: pkgQdrant.VectorConfig{
			Size:     r.vectorSize,
			Distance: "Cosine",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}
	return nil
}

// IndexDocuments embeds and upserts knowledge-base chunks and returns
// the number of points written.
func (r *implRepository) IndexDocuments(ctx context.Context, docs []repository.Document) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Content
	}

	vectors, err := r.embedder.Embed(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("failed to embed documents: %w", err)
	}
	if len(vectors) != len(docs) {
		return 0, fmt.Errorf("embedder returned %d vectors for %d documents", len(vectors), len(docs))
	}

	points := make([]pkgQdrant.Point, len(docs))
	for i, doc := range docs {
		points[i] = pkgQdrant.Point{
			// Qdrant point IDs must be UUIDs or uint64.
			ID:     uuid.NewString(),
			Vector: vectors[i],
			Payload: map[string]interface{}{
				"content": doc.Content,
				"title":   doc.Title,
				"source":  doc.Source,
			},
		}
	}

	err = r.client.UpsertPoints(ctx, r.collectionName, pkgQdrant.UpsertPointsRequest{Points: points})
	if err != nil {
		return 0, fmt.Errorf("failed to upsert points: %w", err)
	}

	r.l.Infof(ctx, "qdrant repository: indexed %d documents into %s", len(points), r.collectionName)
	return len(points), nil
}
