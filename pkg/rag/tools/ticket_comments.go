package tools

import (
	"context"

	"ticketdesk-be/internal/entity"
	"ticketdesk-be/internal/repository/unitofwork"
	"ticketdesk-be/pkg/chatbot"

	"github.com/google/uuid"
)

type ticketCommentsHandler struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTicketCommentsHandler(uowFactory unitofwork.RepositoryFactory) Handler {
	return &ticketCommentsHandler{uowFactory: uowFactory}
}

func (h *ticketCommentsHandler) Declaration() *chatbot.FunctionDeclaration {
	return &chatbot.FunctionDeclaration{
		Name:        "get_ticket_comments",
		Description: "Get comments for a specific ticket, oldest first.",
		Parameters: &chatbot.Schema{
			Type: "object",
			Properties: map[string]*chatbot.Schema{
				"ticket_id": {Type: "string", Description: "The ID of the ticket"},
			},
			Required: []string{"ticket_id"},
		},
	}
}

func (h *ticketCommentsHandler) Execute(ctx context.Context, args map[string]interface{}) map[string]interface{} {
	id, err := uuid.Parse(stringArg(args, "ticket_id"))
	if err != nil {
		return map[string]interface{}{"error": "Invalid ticket_id"}
	}

	uow := h.uowFactory.NewUnitOfWork(ctx)
	comments, err := uow.CommentRepository().FindByTicketId(ctx, id)
	if err != nil {
		return map[string]interface{}{"error": "Failed to get ticket comments"}
	}

	return map[string]interface{}{"comments": commentSummaries(comments)}
}

func commentSummaries(comments []*entity.Comment) []map[string]interface{} {
	out := make([]map[string]interface{}, len(comments))
	for i, c := range comments {
		entry := map[string]interface{}{
			"id":         c.Id.String(),
			"content":    c.Content,
			"created_at": c.CreatedAt,
		}
		if c.Author != nil {
			entry["author"] = c.Author.Name
		}
		out[i] = entry
	}
	return out
}
