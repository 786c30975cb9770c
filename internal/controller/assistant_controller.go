package controller

import (
	"errors"

	"ticketdesk-be/internal/dto"
	"ticketdesk-be/internal/pkg/serverutils"
	"ticketdesk-be/internal/service"
	"ticketdesk-be/pkg/rag/engine"

	"github.com/gofiber/fiber/v2"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	VectorSearch(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
}

func NewAssistantController(assistantService service.IAssistantService) IAssistantController {
	return &assistantController{assistantService: assistantService}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("chat", c.Chat)
	h.Post("vector-search", c.VectorSearch)
}

func (c *assistantController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assistantService.Chat(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, engine.ErrEmptyMessage) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Last message content is missing"))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Assistant reply", res))
}

func (c *assistantController) VectorSearch(ctx *fiber.Ctx) error {
	var req dto.VectorSearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.assistantService.VectorSearch(ctx.Context(), &req)
	return ctx.JSON(serverutils.SuccessResponse("Vector search result", res))
}
