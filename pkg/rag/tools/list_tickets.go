package tools

import (
	"context"

	"ticketdesk-be/internal/constant"
	"ticketdesk-be/internal/entity"
	"ticketdesk-be/internal/repository/contract"
	"ticketdesk-be/internal/repository/unitofwork"
	"ticketdesk-be/pkg/chatbot"
)

type listTicketsHandler struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewListTicketsHandler(uowFactory unitofwork.RepositoryFactory) Handler {
	return &listTicketsHandler{uowFactory: uowFactory}
}

func (h *listTicketsHandler) Declaration() *chatbot.FunctionDeclaration {
	return &chatbot.FunctionDeclaration{
		Name:        "list_tickets",
		Description: "List tickets with optional filtering by status, priority, or search text.",
		Parameters: &chatbot.Schema{
			Type: "object",
			Properties: map[string]*chatbot.Schema{
				"status":   {Type: "string", Description: "Filter by status (OPEN, IN_PROGRESS, CLOSED)"},
				"priority": {Type: "string", Description: "Filter by priority (LOW, MEDIUM, HIGH, URGENT)"},
				"search":   {Type: "string", Description: "Search text in title or description"},
			},
		},
	}
}

func (h *listTicketsHandler) Execute(ctx context.Context, args map[string]interface{}) map[string]interface{} {
	filter := contract.TicketFilter{
		Status:   stringArg(args, "status"),
		Priority: stringArg(args, "priority"),
		Search:   stringArg(args, "search"),
	}

	uow := h.uowFactory.NewUnitOfWork(ctx)
	tickets, err := uow.TicketRepository().FindFiltered(ctx, filter, constant.ToolResultLimit)
	if err != nil {
		return map[string]interface{}{"error": "Failed to list tickets"}
	}

	return map[string]interface{}{"tickets": ticketSummaries(tickets)}
}

func ticketSummaries(tickets []*entity.Ticket) []map[string]interface{} {
	out := make([]map[string]interface{}, len(tickets))
	for i, t := range tickets {
		out[i] = map[string]interface{}{
			"id":          t.Id.String(),
			"title":       t.Title,
			"description": t.Description,
			"status":      t.Status,
			"priority":    t.Priority,
			"created_at":  t.CreatedAt,
		}
	}
	return out
}
