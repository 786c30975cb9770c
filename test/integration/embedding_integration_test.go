package integration

import (
	"log"
	"os"
	"testing"

	"ticketdesk-be/pkg/embedding"
	"ticketdesk-be/pkg/store"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

// Exercises a real embedding provider against the in-memory index.
// Requires GOOGLE_GEMINI_API_KEY; skipped otherwise.
func TestGeminiEmbeddingWithVectorIndex(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	apiKey := os.Getenv("GOOGLE_GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: GOOGLE_GEMINI_API_KEY not set")
	}

	provider := embedding.NewGeminiProvider(apiKey, os.Getenv("EMBEDDING_MODEL"))

	index := store.NewVectorIndex(provider)
	err := index.AddDocuments([]store.Document{
		{ID: "1", Content: "Title: VPN keeps disconnecting\nDescription: Connection drops every hour\nStatus: OPEN\nPriority: HIGH"},
		{ID: "2", Content: "Title: Printer out of toner\nDescription: Third floor printer needs a cartridge\nStatus: OPEN\nPriority: LOW"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, index.Len())

	results, err := index.SimilaritySearch("my vpn connection is unstable", 1)
	assert.NoError(t, err)
	if assert.Len(t, results, 1) {
		assert.Equal(t, "1", results[0].ID)
	}
}
