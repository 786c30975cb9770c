package embedding

// EmbeddingProvider converts text into fixed-dimension vectors. EmbedOne is
// used for search queries, EmbedMany for documents; providers that support
// task types pick them accordingly.
type EmbeddingProvider interface {
	EmbedOne(text string) ([]float32, error)
	EmbedMany(texts []string) ([][]float32, error)
}
