package usecase

import "strings"

// stripCodeFence removes a markdown code fence wrapping structured output.
// Models frequently wrap JSON in ```json ... ``` even when instructed not
// to. Total and idempotent: unfenced input passes through unchanged, and
// stripping twice equals stripping once.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
		return strings.TrimSpace(s)
	}
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
		return strings.TrimSpace(s)
	}

	return s
}
