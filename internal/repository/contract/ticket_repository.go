package contract

import (
	"context"

	"ticketdesk-be/internal/entity"
	"ticketdesk-be/internal/repository/specification"

	"github.com/google/uuid"
)

// TicketFilter carries the optional filters a read may apply. Empty string
// means "not set"; Search is a case-sensitive substring match on title and
// description.
type TicketFilter struct {
	Status   string
	Priority string
	Search   string
}

type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	Update(ctx context.Context, ticket *entity.Ticket) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Ticket, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Ticket, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindRecent returns up to limit tickets, newest first.
	FindRecent(ctx context.Context, limit int) ([]*entity.Ticket, error)
	// FindFiltered returns up to limit tickets matching the filter.
	FindFiltered(ctx context.Context, filter TicketFilter, limit int) ([]*entity.Ticket, error)
	// FindByIdWithUsers returns the ticket with creator and assignee loaded,
	// or nil when it does not exist.
	FindByIdWithUsers(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)
}
