package service

import (
	"context"

	"ticketdesk-be/internal/constant"
	"ticketdesk-be/internal/dto"
	"ticketdesk-be/pkg/chatbot"
	"ticketdesk-be/pkg/rag/engine"
	"ticketdesk-be/pkg/rag/retrieval"
)

type IAssistantService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
	VectorSearch(ctx context.Context, req *dto.VectorSearchRequest) *dto.VectorSearchResponse
}

type assistantService struct {
	engine       *engine.Engine
	orchestrator *retrieval.Orchestrator
}

func NewAssistantService(chatEngine *engine.Engine, orchestrator *retrieval.Orchestrator) IAssistantService {
	return &assistantService{
		engine:       chatEngine,
		orchestrator: orchestrator,
	}
}

func (s *assistantService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	messages := make([]chatbot.Message, len(req.Messages))
	for i, msg := range req.Messages {
		role := constant.ChatMessageRoleUser
		if msg.Role == "assistant" || msg.Role == constant.ChatMessageRoleModel {
			role = constant.ChatMessageRoleModel
		}
		messages[i] = chatbot.Message{Role: role, Content: msg.Content}
	}

	content, err := s.engine.Run(ctx, messages, normalizeLocale(req.Locale))
	if err != nil {
		return nil, err
	}
	return &dto.ChatResponse{Content: content}, nil
}

// VectorSearch never fails; the orchestrator folds every error into a
// user-presentable string.
func (s *assistantService) VectorSearch(ctx context.Context, req *dto.VectorSearchRequest) *dto.VectorSearchResponse {
	answer := s.orchestrator.Answer(ctx, req.Message, normalizeLocale(req.Locale))
	return &dto.VectorSearchResponse{Answer: answer}
}

func normalizeLocale(locale string) string {
	if locale == constant.LocaleJA {
		return constant.LocaleJA
	}
	return constant.LocaleEN
}
