package openrouter

import "context"

// IOpenRouter defines the interface for the OpenRouter LLM client.
// Implementations are safe for concurrent use.
type IOpenRouter interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Complete(ctx context.Context, prompt string) (string, error)
}
