package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ticketdesk-be/internal/constant"
	"ticketdesk-be/internal/dto"
	"ticketdesk-be/internal/entity"
	"ticketdesk-be/internal/pkg/logger"
	"ticketdesk-be/internal/pkg/mailer"
	"ticketdesk-be/internal/repository/specification"
	"ticketdesk-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var ErrTicketNotFound = errors.New("ticket not found")

type ITicketService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTicketRequest) (*dto.TicketResponse, error)
	List(ctx context.Context, query *dto.ListTicketsQuery) ([]dto.TicketResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.TicketResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateTicketRequest) (*dto.TicketResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ticketService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	sysLogger    logger.ILogger
}

func NewTicketService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, sysLogger logger.ILogger) ITicketService {
	return &ticketService{
		uowFactory:   uowFactory,
		emailService: emailService,
		sysLogger:    sysLogger,
	}
}

func (s *ticketService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	priority := req.Priority
	if priority == "" {
		priority = constant.TicketPriorityMedium
	}

	ticket := &entity.Ticket{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Status:      constant.TicketStatusOpen,
		Priority:    priority,
		CreatedById: userId,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TicketRepository().Create(ctx, ticket); err != nil {
		return nil, err
	}

	return s.Show(ctx, ticket.Id)
}

func (s *ticketService) List(ctx context.Context, query *dto.ListTicketsQuery) ([]dto.TicketResponse, error) {
	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if query.Status != "" {
		specs = append(specs, specification.ByStatus{Status: query.Status})
	}
	if query.Priority != "" {
		specs = append(specs, specification.ByPriority{Priority: query.Priority})
	}
	if query.Search != "" {
		specs = append(specs, specification.TicketSearchQuery{Query: query.Search})
	}
	if query.Limit > 0 {
		specs = append(specs, specification.Pagination{Limit: query.Limit, Offset: query.Offset})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	tickets, err := uow.TicketRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]dto.TicketResponse, len(tickets))
	for i, ticket := range tickets {
		out[i] = toTicketResponse(ticket)
	}
	return out, nil
}

func (s *ticketService) Show(ctx context.Context, id uuid.UUID) (*dto.TicketResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ticket, err := uow.TicketRepository().FindByIdWithUsers(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, ErrTicketNotFound
	}

	res := toTicketResponse(ticket)
	return &res, nil
}

func (s *ticketService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ticket, err := uow.TicketRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, ErrTicketNotFound
	}

	previousAssignee := ticket.AssignedToId

	if req.Title != "" {
		ticket.Title = req.Title
	}
	if req.Description != "" {
		ticket.Description = req.Description
	}
	if req.Status != "" {
		ticket.Status = req.Status
	}
	if req.Priority != "" {
		ticket.Priority = req.Priority
	}
	if req.AssignedToId != nil {
		ticket.AssignedToId = req.AssignedToId
	}
	ticket.UpdatedAt = time.Now()

	if err := uow.TicketRepository().Update(ctx, ticket); err != nil {
		return nil, err
	}

	if assigneeChanged(previousAssignee, ticket.AssignedToId) {
		s.notifyAssignee(ctx, uow, ticket)
	}

	return s.Show(ctx, ticket.Id)
}

func (s *ticketService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ticket, err := uow.TicketRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if ticket == nil {
		return ErrTicketNotFound
	}

	return uow.TicketRepository().Delete(ctx, id)
}

func assigneeChanged(previous, current *uuid.UUID) bool {
	if current == nil {
		return false
	}
	return previous == nil || *previous != *current
}

func (s *ticketService) notifyAssignee(ctx context.Context, uow unitofwork.UnitOfWork, ticket *entity.Ticket) {
	assignee, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: *ticket.AssignedToId})
	if err != nil || assignee == nil {
		s.sysLogger.Warn("ticket", "Assignee lookup failed, skipping notification", map[string]interface{}{
			"ticket_id": ticket.Id.String(),
		})
		return
	}

	go func() {
		if err := s.emailService.SendTicketAssigned(assignee.Email, assignee.Name, ticket.Title); err != nil {
			fmt.Printf("Error sending assignment email: %v\n", err)
		}
	}()
}

func toTicketResponse(ticket *entity.Ticket) dto.TicketResponse {
	res := dto.TicketResponse{
		Id:          ticket.Id,
		Title:       ticket.Title,
		Description: ticket.Description,
		Status:      ticket.Status,
		Priority:    ticket.Priority,
		CreatedAt:   ticket.CreatedAt,
		UpdatedAt:   ticket.UpdatedAt,
	}
	if ticket.CreatedBy != nil {
		u := toUserResponse(ticket.CreatedBy)
		res.CreatedBy = &u
	}
	if ticket.AssignedTo != nil {
		u := toUserResponse(ticket.AssignedTo)
		res.AssignedTo = &u
	}
	return res
}
