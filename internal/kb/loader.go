package kb

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"message-triage-assistant/internal/triage/repository"
)

const (
	// DefaultChunkSize and DefaultOverlap are tuned for short reference
	// articles where a single chunk should hold one complete topic.
	DefaultChunkSize = 1000
	DefaultOverlap   = 200
)

// LoadDocuments reads every .md file under the given directories, splits
// each into overlapping chunks and returns them as indexable documents.
// The file name (without extension) becomes the chunk title.
func LoadDocuments(dirs []string, chunkSize, overlap int) ([]repository.Document, error) {
	var docs []repository.Document

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read knowledge dir %s: %w", dir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
				continue
			}

			path := filepath.Join(dir, entry.Name())
			raw, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", path, err)
			}

			title := strings.TrimSuffix(entry.Name(), ".md")
			for _, chunk := range Chunk(string(raw), chunkSize, overlap) {
				docs = append(docs, repository.Document{
					Title:   title,
					Source:  path,
					Content: chunk,
				})
			}
		}
	}

	return docs, nil
}
