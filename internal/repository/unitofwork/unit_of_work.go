package unitofwork

import (
	"context"

	"ticketdesk-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	TicketRepository() contract.TicketRepository
	CommentRepository() contract.CommentRepository
}
