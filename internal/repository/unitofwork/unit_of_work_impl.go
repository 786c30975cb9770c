package unitofwork

import (
	"context"
	"fmt"

	"ticketdesk-be/internal/repository/contract"
	"ticketdesk-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB

	userRepository    contract.UserRepository
	ticketRepository  contract.TicketRepository
	commentRepository contract.CommentRepository
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	u.resetRepositories()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	u.resetRepositories()
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	u.resetRepositories()
	return err
}

// resetRepositories drops cached repositories so the next accessor picks up
// the current transaction handle.
func (u *UnitOfWorkImpl) resetRepositories() {
	u.userRepository = nil
	u.ticketRepository = nil
	u.commentRepository = nil
}

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	if u.userRepository == nil {
		u.userRepository = implementation.NewUserRepository(u.getDB())
	}
	return u.userRepository
}

func (u *UnitOfWorkImpl) TicketRepository() contract.TicketRepository {
	if u.ticketRepository == nil {
		u.ticketRepository = implementation.NewTicketRepository(u.getDB())
	}
	return u.ticketRepository
}

func (u *UnitOfWorkImpl) CommentRepository() contract.CommentRepository {
	if u.commentRepository == nil {
		u.commentRepository = implementation.NewCommentRepository(u.getDB())
	}
	return u.commentRepository
}
