package qdrant

import (
	"message-triage-assistant/internal/triage/repository"
	pkgLog "message-triage-assistant/pkg/log"
	pkgQdrant "message-triage-assistant/pkg/qdrant"
	"message-triage-assistant/pkg/voyage"
)

type implRepository struct {
	client         *pkgQdrant.Client
	embedder       voyage.IVoyage
	collectionName string
	vectorSize     int
	l              pkgLog.Logger
}

// Ensure implRepository serves both retrieval and offline indexing.
var (
	_ repository.KnowledgeRepository = (*implRepository)(nil)
	_ repository.KnowledgeIndexer    = (*implRepository)(nil)
)

// New creates a new Qdrant knowledge repository.
func New(client *pkgQdrant.Client, embedder voyage.IVoyage, collectionName string, vectorSize int, l pkgLog.Logger) *implRepository {
	return &implRepository{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		vectorSize:     vectorSize,
		l:              l,
	}
}
