package triage

import (
	"context"

	"message-triage-assistant/internal/model"
)

// UseCase is the triage workflow: one inbound message in, one reply out.
type UseCase interface {
	// Handle drives a message through classify → (retrieve | extract) →
	// persist/respond. It always produces a non-empty reply and never
	// returns an error: every failure is converted into a terminal reply.
	Handle(ctx context.Context, msg model.Message) HandleOutput
}
