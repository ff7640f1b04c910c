package voyage

const (
	// Endpoint is the Voyage AI embeddings API URL.
	Endpoint = "https://api.voyageai.com/v1/embeddings"

	// Model is the embedding model used for the knowledge base.
	Model = "voyage-3"
)
