package openrouter

import "time"

const (
	// DefaultBaseURL is the OpenRouter API endpoint.
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	// DefaultModel is the default model to use.
	DefaultModel = "deepseek/deepseek-r1:free"

	// DefaultTimeout bounds a single completion call.
	DefaultTimeout = 60 * time.Second
)
