package store

import (
	"fmt"
	"math"
	"sort"

	"ticketdesk-be/pkg/embedding"
)

// VectorIndex is an append-only in-memory similarity index. It is built,
// queried and discarded within a single request; it is not safe for
// concurrent use and is never shared between requests.
type VectorIndex struct {
	provider   embedding.EmbeddingProvider
	documents  []Document
	embeddings [][]float32
}

func NewVectorIndex(provider embedding.EmbeddingProvider) *VectorIndex {
	return &VectorIndex{
		provider: provider,
	}
}

func (idx *VectorIndex) Len() int {
	return len(idx.documents)
}

// AddDocuments embeds all docs in one batched provider call and appends them
// in order. On provider failure the index is left untouched: either every
// document lands or none does.
func (idx *VectorIndex) AddDocuments(docs []Document) error {
	if len(docs) == 0 {
		return nil
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Content
	}

	vectors, err := idx.provider.EmbedMany(texts)
	if err != nil {
		return fmt.Errorf("embedding generation failed: %w", err)
	}
	if len(vectors) != len(docs) {
		return fmt.Errorf("embedding provider returned %d vectors for %d documents", len(vectors), len(docs))
	}

	idx.documents = append(idx.documents, docs...)
	idx.embeddings = append(idx.embeddings, vectors...)
	return nil
}

// SimilaritySearch returns up to k documents ranked by cosine similarity to
// the query, highest first. Ties keep insertion order. An empty index yields
// an empty result without touching the embedding provider.
func (idx *VectorIndex) SimilaritySearch(query string, k int) ([]Document, error) {
	if len(idx.documents) == 0 || k <= 0 {
		return []Document{}, nil
	}

	queryVec, err := idx.provider.EmbedOne(query)
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}

	scores := make([]float64, len(idx.embeddings))
	for i, emb := range idx.embeddings {
		scores[i] = cosineSimilarity(queryVec, emb)
	}

	order := make([]int, len(idx.documents))
	for i := range order {
		order[i] = i
	}
	// Stable sort so equal scores keep insertion order; retrieval stays
	// deterministic.
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if k > len(order) {
		k = len(order)
	}

	results := make([]Document, k)
	for i := 0; i < k; i++ {
		results[i] = idx.documents[order[i]]
	}
	return results, nil
}

// cosineSimilarity measures directional similarity of two vectors. A zero
// magnitude on either side yields 0: a zero vector matches nothing, itself
// included.
func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, magA, magB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}

	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
