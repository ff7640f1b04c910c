package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"message-triage-assistant/internal/triage/repository"
)

const createTableQuery = `
CREATE TABLE IF NOT EXISTS user_requests (
    id SERIAL PRIMARY KEY,
    message_id BIGINT NOT NULL,
    user_id BIGINT NOT NULL,
    username VARCHAR(64),
    first_name VARCHAR(128) NOT NULL,
    last_name VARCHAR(128),
    chat_id BIGINT NOT NULL,
    message_date TIMESTAMP NOT NULL,
    message_text TEXT NOT NULL,
    category VARCHAR(32) NOT NULL,
    contact_info VARCHAR(255),
    fio VARCHAR(255),
    product_interest VARCHAR(255),
    case_notes TEXT,
    created_at TIMESTAMP DEFAULT NOW()
);
`

// Migrate creates the user_requests table if it does not exist.
func (r *implRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createTableQuery); err != nil {
		return fmt.Errorf("failed to create user_requests table: %w", err)
	}
	return nil
}

// SaveLead records the message and whatever extracted fields are available.
// Nil optional fields become NULL; each insert is independent, keyed by its
// own message identity.
func (r *implRepository) SaveLead(ctx context.Context, input repository.SaveLeadInput) error {
	query, args, err := buildLeadInsert(input)
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "postgres repository: insert failed for message %d: %v", input.Message.MessageID, err)
		return fmt.Errorf("failed to insert lead: %w", err)
	}

	r.l.Infof(ctx, "postgres repository: saved %s message %d from chat %d",
		input.Category, input.Message.MessageID, input.Message.ChatID)
	return nil
}

// buildLeadInsert assembles the INSERT with $n placeholders.
func buildLeadInsert(input repository.SaveLeadInput) (string, []interface{}, error) {
	msg := input.Message

	return sq.Insert("user_requests").
		Columns(
			"message_id",
			"user_id",
			"username",
			"first_name",
			"last_name",
			"chat_id",
			"message_date",
			"message_text",
			"category",
			"contact_info",
			"fio",
			"product_interest",
			"case_notes",
		).
		Values(
			msg.MessageID,
			msg.UserID,
			nullable(msg.Username),
			msg.FirstName,
			nullable(msg.LastName),
			msg.ChatID,
			msg.Date.UTC(),
			msg.Text,
			string(input.Category),
			input.ContactInfo,
			input.FullName,
			input.Product,
			input.CaseNotes,
		).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// nullable maps an empty string to NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
