package contract

import (
	"context"

	"ticketdesk-be/internal/entity"
	"ticketdesk-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindByTicketId returns the ticket's comments oldest first, with the
	// author loaded on each.
	FindByTicketId(ctx context.Context, ticketId uuid.UUID) ([]*entity.Comment, error)
}
