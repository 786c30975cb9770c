package retrieval

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ticketdesk-be/internal/constant"
	"ticketdesk-be/internal/entity"
	"ticketdesk-be/internal/pkg/logger"
	"ticketdesk-be/internal/repository/unitofwork"
	"ticketdesk-be/pkg/chatbot"
	"ticketdesk-be/pkg/embedding"
	"ticketdesk-be/pkg/store"
)

// Orchestrator answers a free-form question by embedding the newest tickets
// into a throwaway in-memory index, retrieving the closest one, and asking
// the generation model with that ticket as context.
//
// Answer never returns an error. Every failure mode maps to a locale-specific
// message so callers can hand the string straight to the user.
type Orchestrator struct {
	uowFactory unitofwork.RepositoryFactory
	embedder   embedding.EmbeddingProvider
	generator  chatbot.Generator
	sysLogger  logger.ILogger
}

func NewOrchestrator(
	uowFactory unitofwork.RepositoryFactory,
	embedder embedding.EmbeddingProvider,
	generator chatbot.Generator,
	sysLogger logger.ILogger,
) *Orchestrator {
	return &Orchestrator{
		uowFactory: uowFactory,
		embedder:   embedder,
		generator:  generator,
		sysLogger:  sysLogger,
	}
}

func (o *Orchestrator) Answer(ctx context.Context, query string, locale string) string {
	uow := o.uowFactory.NewUnitOfWork(ctx)
	tickets, err := uow.TicketRepository().FindRecent(ctx, constant.RecentTicketLimit)
	if err != nil {
		o.sysLogger.Error("retrieval", "Failed to load recent tickets", map[string]interface{}{
			"error": err.Error(),
		})
		return systemErrorMessage(locale)
	}
	if len(tickets) == 0 {
		return noTicketsMessage(locale)
	}

	// The index lives only for this request. The corpus is ten documents,
	// so rebuilding is cheaper than keeping an index consistent with writes.
	index := store.NewVectorIndex(o.embedder)
	if err := index.AddDocuments(buildDocuments(tickets)); err != nil {
		return o.failureMessage(locale, err, "embedding tickets")
	}

	results, err := index.SimilaritySearch(query, 1)
	if err != nil {
		return o.failureMessage(locale, err, "embedding query")
	}

	contextParts := make([]string, len(results))
	for i, doc := range results {
		contextParts[i] = doc.Content
	}
	contextText := strings.Join(contextParts, "\n\n")

	prompt := promptTemplate(locale)
	prompt = strings.Replace(prompt, "{context}", contextText, 1)
	prompt = strings.Replace(prompt, "{question}", query, 1)

	result, err := o.generator.GenerateContent(ctx, &chatbot.GenerateRequest{
		Contents: []*chatbot.Content{
			{Role: constant.ChatMessageRoleUser, Parts: []*chatbot.Part{{Text: prompt}}},
		},
	})
	if err != nil {
		return o.failureMessage(locale, err, "generating answer")
	}
	if result.Text == "" {
		return emptyGeneration
	}
	return result.Text
}

func (o *Orchestrator) failureMessage(locale string, err error, stage string) string {
	o.sysLogger.Error("retrieval", "Vector search failed", map[string]interface{}{
		"stage": stage,
		"error": err.Error(),
	})
	if errors.Is(err, chatbot.ErrQuotaExceeded) || strings.Contains(err.Error(), "429") {
		return quotaExceededMessage(locale)
	}
	return systemErrorMessage(locale)
}

func buildDocuments(tickets []*entity.Ticket) []store.Document {
	docs := make([]store.Document, len(tickets))
	for i, t := range tickets {
		docs[i] = store.Document{
			ID: t.Id.String(),
			Content: fmt.Sprintf("Title: %s\nDescription: %s\nStatus: %s\nPriority: %s",
				t.Title, t.Description, t.Status, t.Priority),
			Metadata: map[string]interface{}{
				"id":       t.Id.String(),
				"type":     "ticket",
				"title":    t.Title,
				"status":   t.Status,
				"priority": t.Priority,
			},
		}
	}
	return docs
}
