package history

import (
	"ticketdesk-be/internal/constant"
	"ticketdesk-be/pkg/chatbot"
)

// Sanitize repairs a raw message list into a history the generation backend
// accepts: strictly alternating roles starting with "user" and not ending
// with "user". Empty messages are dropped, and any entry whose role breaks
// the expected alternation is dropped rather than reordered. A trailing user
// turn is removed because history is always submitted together with a fresh
// user turn.
func Sanitize(raw []chatbot.Message) []chatbot.Message {
	sanitized := make([]chatbot.Message, 0, len(raw))
	expectedRole := constant.ChatMessageRoleUser

	for _, msg := range raw {
		if msg.Content == "" {
			continue
		}
		if msg.Role != expectedRole {
			continue
		}
		sanitized = append(sanitized, msg)
		if expectedRole == constant.ChatMessageRoleUser {
			expectedRole = constant.ChatMessageRoleModel
		} else {
			expectedRole = constant.ChatMessageRoleUser
		}
	}

	if len(sanitized) > 0 && sanitized[len(sanitized)-1].Role == constant.ChatMessageRoleUser {
		sanitized = sanitized[:len(sanitized)-1]
	}

	return sanitized
}
