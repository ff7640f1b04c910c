package kb

// Chunk splits text into overlapping windows of roughly chunkSize runes.
// Overlap runes from the tail of each window start the next one, so a fact
// sitting on a window boundary is retrievable from at least one chunk.
// Splitting is rune-based: Cyrillic source text must not be cut mid-character.
func Chunk(text string, chunkSize, overlap int) []string {
	if chunkSize <= 0 {
		return nil
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = 0
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	if len(runes) <= chunkSize {
		return []string{string(runes)}
	}

	step := chunkSize - overlap
	chunks := make([]string, 0, len(runes)/step+1)
	for start := 0; start < len(runes); start += step {
		end := start + chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}

	return chunks
}
