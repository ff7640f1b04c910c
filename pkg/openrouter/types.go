package openrouter

import (
	"fmt"
	"time"
)

// Config configures the OpenRouter client.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Message is a single chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is the chat completions request body.
type Request struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// Response is the chat completions response body.
type Response struct {
	Choices []Choice `json:"choices"`
}

// Choice is a single completion candidate.
type Choice struct {
	Message Message `json:"message"`
}

// ErrorResponse is the error body returned by the API.
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// UpstreamError is returned when the remote call does not succeed.
// It carries the HTTP status and raw body for diagnostics; callers
// decide whether to retry.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("openrouter: API error %d: %s", e.StatusCode, e.Body)
}
