package triage

import "errors"

// Domain-specific errors for the triage package.
var (
	// ErrClassification wraps an upstream failure during classification.
	// It is not retried within a run; the router maps it to the generic
	// failure reply.
	ErrClassification = errors.New("classification failed")

	// ErrEmptyMessage is returned for messages with no text.
	ErrEmptyMessage = errors.New("message text is empty")

	// ErrPersistence signals that the lead store rejected the write.
	ErrPersistence = errors.New("failed to persist lead")
)
