package bootstrap

import (
	"log"

	"ticketdesk-be/internal/config"
	"ticketdesk-be/internal/controller"
	"ticketdesk-be/internal/pkg/logger"
	"ticketdesk-be/internal/pkg/mailer"
	"ticketdesk-be/internal/repository/unitofwork"
	"ticketdesk-be/internal/service"
	"ticketdesk-be/pkg/chatbot"
	"ticketdesk-be/pkg/embedding"
	"ticketdesk-be/pkg/rag/engine"
	"ticketdesk-be/pkg/rag/retrieval"
	"ticketdesk-be/pkg/rag/tools"

	"gorm.io/gorm"
)

type Container struct {
	AuthController      controller.IAuthController
	UserController      controller.IUserController
	TicketController    controller.ITicketController
	AssistantController controller.IAssistantController

	SysLogger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// AI providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: GEMINI (%s)", cfg.Ai.EmbeddingModel)
	}

	generator := chatbot.NewGeminiChatbot(cfg.Keys.GoogleGemini, cfg.Ai.GenerationModel)

	// Assistant wiring
	registry := tools.NewRegistry(sysLogger,
		tools.NewListTicketsHandler(uowFactory),
		tools.NewTicketDetailsHandler(uowFactory),
		tools.NewTicketCommentsHandler(uowFactory),
	)
	chatEngine := engine.NewEngine(generator, registry, cfg.Ai.MaxToolTurns, sysLogger)
	orchestrator := retrieval.NewOrchestrator(uowFactory, embeddingProvider, generator, sysLogger)

	// Services
	authService := service.NewAuthService(uowFactory)
	userService := service.NewUserService(uowFactory)
	ticketService := service.NewTicketService(uowFactory, emailService, sysLogger)
	commentService := service.NewCommentService(uowFactory)
	assistantService := service.NewAssistantService(chatEngine, orchestrator)

	return &Container{
		AuthController:      controller.NewAuthController(authService),
		UserController:      controller.NewUserController(userService),
		TicketController:    controller.NewTicketController(ticketService, commentService),
		AssistantController: controller.NewAssistantController(assistantService),
		SysLogger:           sysLogger,
	}
}
