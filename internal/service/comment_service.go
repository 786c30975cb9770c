package service

import (
	"context"
	"time"

	"ticketdesk-be/internal/dto"
	"ticketdesk-be/internal/entity"
	"ticketdesk-be/internal/repository/specification"
	"ticketdesk-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICommentService interface {
	Create(ctx context.Context, ticketId, authorId uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	ListByTicket(ctx context.Context, ticketId uuid.UUID) ([]dto.CommentResponse, error)
}

type commentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCommentService(uowFactory unitofwork.RepositoryFactory) ICommentService {
	return &commentService{uowFactory: uowFactory}
}

func (s *commentService) Create(ctx context.Context, ticketId, authorId uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ticket, err := uow.TicketRepository().FindOne(ctx, specification.ByID{ID: ticketId})
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, ErrTicketNotFound
	}

	comment := &entity.Comment{
		Id:        uuid.New(),
		Content:   req.Content,
		TicketId:  ticketId,
		AuthorId:  authorId,
		CreatedAt: time.Now(),
	}

	if err := uow.CommentRepository().Create(ctx, comment); err != nil {
		return nil, err
	}

	res := toCommentResponse(comment)
	return &res, nil
}

func (s *commentService) ListByTicket(ctx context.Context, ticketId uuid.UUID) ([]dto.CommentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	comments, err := uow.CommentRepository().FindByTicketId(ctx, ticketId)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CommentResponse, len(comments))
	for i, comment := range comments {
		out[i] = toCommentResponse(comment)
	}
	return out, nil
}

func toCommentResponse(comment *entity.Comment) dto.CommentResponse {
	res := dto.CommentResponse{
		Id:        comment.Id,
		Content:   comment.Content,
		TicketId:  comment.TicketId,
		CreatedAt: comment.CreatedAt,
	}
	if comment.Author != nil {
		u := toUserResponse(comment.Author)
		res.Author = &u
	}
	return res
}
