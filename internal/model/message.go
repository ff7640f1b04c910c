package model

import "time"

// Message is the unit of work: one inbound chat message.
// Immutable once received; owned by a single triage run for its lifetime.
type Message struct {
	MessageID int64
	UserID    int64
	Username  string
	FirstName string
	LastName  string
	ChatID    int64
	Date      time.Time
	Text      string
}
