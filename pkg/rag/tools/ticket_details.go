package tools

import (
	"context"

	"ticketdesk-be/internal/entity"
	"ticketdesk-be/internal/repository/unitofwork"
	"ticketdesk-be/pkg/chatbot"

	"github.com/google/uuid"
)

type ticketDetailsHandler struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTicketDetailsHandler(uowFactory unitofwork.RepositoryFactory) Handler {
	return &ticketDetailsHandler{uowFactory: uowFactory}
}

func (h *ticketDetailsHandler) Declaration() *chatbot.FunctionDeclaration {
	return &chatbot.FunctionDeclaration{
		Name:        "get_ticket_details",
		Description: "Get detailed information about a specific ticket by ID.",
		Parameters: &chatbot.Schema{
			Type: "object",
			Properties: map[string]*chatbot.Schema{
				"ticket_id": {Type: "string", Description: "The ID of the ticket"},
			},
			Required: []string{"ticket_id"},
		},
	}
}

func (h *ticketDetailsHandler) Execute(ctx context.Context, args map[string]interface{}) map[string]interface{} {
	id, err := uuid.Parse(stringArg(args, "ticket_id"))
	if err != nil {
		return map[string]interface{}{"error": "Invalid ticket_id"}
	}

	uow := h.uowFactory.NewUnitOfWork(ctx)
	ticket, err := uow.TicketRepository().FindByIdWithUsers(ctx, id)
	if err != nil {
		return map[string]interface{}{"error": "Failed to get ticket details"}
	}
	if ticket == nil {
		return map[string]interface{}{"error": "Ticket not found"}
	}

	return map[string]interface{}{"ticket": ticketDetails(ticket)}
}

func ticketDetails(t *entity.Ticket) map[string]interface{} {
	details := map[string]interface{}{
		"id":          t.Id.String(),
		"title":       t.Title,
		"description": t.Description,
		"status":      t.Status,
		"priority":    t.Priority,
		"created_at":  t.CreatedAt,
		"updated_at":  t.UpdatedAt,
	}
	if t.CreatedBy != nil {
		details["created_by"] = map[string]interface{}{
			"name":  t.CreatedBy.Name,
			"email": t.CreatedBy.Email,
		}
	}
	if t.AssignedTo != nil {
		details["assigned_to"] = map[string]interface{}{
			"name":  t.AssignedTo.Name,
			"email": t.AssignedTo.Email,
		}
	}
	return details
}
