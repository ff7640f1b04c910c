package repository

import (
	"context"

	"message-triage-assistant/internal/model"
	"message-triage-assistant/internal/triage"
)

// SaveLeadInput carries message provenance plus the extracted fields.
// Nil optional fields are stored as NULL.
type SaveLeadInput struct {
	Message     model.Message
	Category    triage.Category
	ContactInfo *string
	FullName    *string
	Product     *string
	CaseNotes   *string
}

// LeadRepository persists inbound messages and extracted sale-inquiry
// fields. Inserts are independent per message; no cross-run ordering is
// assumed.
type LeadRepository interface {
	// Migrate creates the backing table if it does not exist.
	Migrate(ctx context.Context) error

	// SaveLead durably records the message and whatever fields are available.
	SaveLead(ctx context.Context, input SaveLeadInput) error
}

// KnowledgeRepository returns the top-K passages most similar to a query.
// Consumed as a black box returning ordered snippets.
type KnowledgeRepository interface {
	Search(ctx context.Context, query string, limit int) ([]triage.Passage, error)
}

// Document is one knowledge-base chunk to be indexed.
type Document struct {
	Title   string
	Source  string
	Content string
}

// KnowledgeIndexer builds the knowledge base. Used by the offline indexing
// job, not by the triage workflow.
type KnowledgeIndexer interface {
	EnsureCollection(ctx context.Context) error
	IndexDocuments(ctx context.Context, docs []Document) (int, error)
}
