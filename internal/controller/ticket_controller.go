package controller

import (
	"errors"

	"ticketdesk-be/internal/dto"
	"ticketdesk-be/internal/pkg/serverutils"
	"ticketdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITicketController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	CreateComment(ctx *fiber.Ctx) error
	ListComments(ctx *fiber.Ctx) error
}

type ticketController struct {
	ticketService  service.ITicketService
	commentService service.ICommentService
}

func NewTicketController(ticketService service.ITicketService, commentService service.ICommentService) ITicketController {
	return &ticketController{
		ticketService:  ticketService,
		commentService: commentService,
	}
}

func (c *ticketController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ticket/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post(":id/comments", c.CreateComment)
	h.Get(":id/comments", c.ListComments)
}

func (c *ticketController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateTicketRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ticketService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Ticket created", res))
}

func (c *ticketController) List(ctx *fiber.Ctx) error {
	var query dto.ListTicketsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(query); err != nil {
		return err
	}

	res, err := c.ticketService.List(ctx.Context(), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Tickets", res))
}

func (c *ticketController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ticket id")
	}

	res, err := c.ticketService.Show(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Ticket details", res))
}

func (c *ticketController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ticket id")
	}

	var req dto.UpdateTicketRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ticketService.Update(ctx.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Ticket updated", res))
}

func (c *ticketController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ticket id")
	}

	if err := c.ticketService.Delete(ctx.Context(), id); err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Ticket deleted", nil))
}

func (c *ticketController) CreateComment(ctx *fiber.Ctx) error {
	ticketId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ticket id")
	}

	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.commentService.Create(ctx.Context(), ticketId, userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(err.Error()))
		}
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Comment created", res))
}

func (c *ticketController) ListComments(ctx *fiber.Ctx) error {
	ticketId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ticket id")
	}

	res, err := c.commentService.ListByTicket(ctx.Context(), ticketId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Ticket comments", res))
}
