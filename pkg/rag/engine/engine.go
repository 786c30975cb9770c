package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ticketdesk-be/internal/constant"
	"ticketdesk-be/internal/pkg/logger"
	"ticketdesk-be/pkg/chatbot"
	"ticketdesk-be/pkg/rag/history"
	"ticketdesk-be/pkg/rag/tools"
)

// ErrEmptyMessage is returned when the newest message has no content.
var ErrEmptyMessage = errors.New("last message content is missing")

// Engine runs a bounded tool-calling conversation against a Generator.
// Each turn the model may request one or more function calls; their results
// are sent back as a single batched response before the model answers again.
type Engine struct {
	generator chatbot.Generator
	registry  *tools.Registry
	maxTurns  int
	sysLogger logger.ILogger
}

func NewEngine(generator chatbot.Generator, registry *tools.Registry, maxTurns int, sysLogger logger.ILogger) *Engine {
	if maxTurns <= 0 {
		maxTurns = constant.DefaultMaxToolTurns
	}
	return &Engine{
		generator: generator,
		registry:  registry,
		maxTurns:  maxTurns,
		sysLogger: sysLogger,
	}
}

// Run sends the conversation to the model and resolves tool calls until the
// model produces a text answer or the turn budget is spent. The newest
// message must be non-empty; older messages are sanitized into a valid
// alternating history first.
func (e *Engine) Run(ctx context.Context, messages []chatbot.Message, locale string) (string, error) {
	if len(messages) == 0 {
		return "", ErrEmptyMessage
	}

	newest := messages[len(messages)-1]
	if strings.TrimSpace(newest.Content) == "" {
		return "", ErrEmptyMessage
	}

	contents := make([]*chatbot.Content, 0, len(messages))
	for _, msg := range history.Sanitize(messages[:len(messages)-1]) {
		contents = append(contents, &chatbot.Content{
			Role:  msg.Role,
			Parts: []*chatbot.Part{{Text: msg.Content}},
		})
	}
	contents = append(contents, &chatbot.Content{
		Role:  constant.ChatMessageRoleUser,
		Parts: []*chatbot.Part{{Text: newest.Content}},
	})

	request := &chatbot.GenerateRequest{
		SystemInstruction: &chatbot.Content{
			Parts: []*chatbot.Part{{Text: systemInstruction(locale)}},
		},
		Contents: contents,
		Tools:    e.registry.Declarations(),
	}

	result, err := e.generator.GenerateContent(ctx, request)
	if err != nil {
		return "", fmt.Errorf("chat generation failed: %w", err)
	}

	for turn := 0; turn < e.maxTurns && len(result.FunctionCalls) > 0; turn++ {
		callParts := make([]*chatbot.Part, len(result.FunctionCalls))
		responseParts := make([]*chatbot.Part, len(result.FunctionCalls))
		for i, call := range result.FunctionCalls {
			callParts[i] = &chatbot.Part{FunctionCall: call}
			responseParts[i] = &chatbot.Part{
				FunctionResponse: &chatbot.FunctionResponse{
					Name:     call.Name,
					Response: e.registry.Dispatch(ctx, call),
				},
			}
		}

		request.Contents = append(request.Contents,
			&chatbot.Content{Role: constant.ChatMessageRoleModel, Parts: callParts},
			&chatbot.Content{Role: constant.ChatMessageRoleUser, Parts: responseParts},
		)

		result, err = e.generator.GenerateContent(ctx, request)
		if err != nil {
			return "", fmt.Errorf("chat generation failed: %w", err)
		}
	}

	if len(result.FunctionCalls) > 0 {
		e.sysLogger.Warn("engine", "Tool turn budget exhausted with calls still pending", map[string]interface{}{
			"max_turns": e.maxTurns,
		})
	}

	return result.Text, nil
}

func systemInstruction(locale string) string {
	language := "English"
	if locale == constant.LocaleJA {
		language = "Japanese"
	}
	return fmt.Sprintf(`You are a helpful assistant for a ticket system.
The user's current locale is '%s'.
You MUST answer all questions in %s.

IMPORTANT: The ticket database may contain content in English or Japanese.
When using tools like 'list_tickets', if the user asks in Japanese, you should TRY to search using English keywords if the Japanese keywords might not match the database content, and vice versa.
Your goal is to find the relevant information regardless of the language mismatch between the query and the data, run always just once.
`, locale, language)
}
