package history

import (
	"testing"

	"ticketdesk-be/internal/constant"
	"ticketdesk-be/pkg/chatbot"
)

func msg(role, content string) chatbot.Message {
	return chatbot.Message{Role: role, Content: content}
}

func rolesOf(messages []chatbot.Message) []string {
	roles := make([]string, len(messages))
	for i, m := range messages {
		roles[i] = m.Role
	}
	return roles
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name      string
		raw       []chatbot.Message
		wantRoles []string
	}{
		{
			name:      "empty input",
			raw:       nil,
			wantRoles: []string{},
		},
		{
			name: "clean history unchanged",
			raw: []chatbot.Message{
				msg("user", "hi"),
				msg("model", "hello"),
				msg("user", "how many tickets?"),
				msg("model", "three"),
			},
			wantRoles: []string{"user", "model", "user", "model"},
		},
		{
			name: "double user drops the second",
			raw: []chatbot.Message{
				msg("user", "first"),
				msg("user", "second"),
				msg("model", "reply"),
			},
			wantRoles: []string{"user", "model"},
		},
		{
			name: "leading model dropped",
			raw: []chatbot.Message{
				msg("model", "welcome"),
				msg("user", "hi"),
				msg("model", "hello"),
			},
			wantRoles: []string{"user", "model"},
		},
		{
			name: "empty contents dropped",
			raw: []chatbot.Message{
				msg("user", ""),
				msg("user", "hi"),
				msg("model", ""),
				msg("model", "hello"),
			},
			wantRoles: []string{"user", "model"},
		},
		{
			name: "trailing user removed",
			raw: []chatbot.Message{
				msg("user", "hi"),
				msg("model", "hello"),
				msg("user", "unanswered"),
			},
			wantRoles: []string{"user", "model"},
		},
		{
			name: "single user only",
			raw: []chatbot.Message{
				msg("user", "hi"),
			},
			wantRoles: []string{},
		},
		{
			name: "double model from a retried call",
			raw: []chatbot.Message{
				msg("user", "hi"),
				msg("model", "first answer"),
				msg("model", "retried answer"),
				msg("user", "next"),
				msg("model", "reply"),
			},
			wantRoles: []string{"user", "model", "user", "model"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.raw)
			if len(got) != len(tt.wantRoles) {
				t.Fatalf("got %d messages %v, want %d", len(got), rolesOf(got), len(tt.wantRoles))
			}
			for i, role := range tt.wantRoles {
				if got[i].Role != role {
					t.Errorf("message %d role = %s, want %s", i, got[i].Role, role)
				}
			}
		})
	}
}

func TestSanitizeIsIdempotent(t *testing.T) {
	raw := []chatbot.Message{
		msg("model", "stray"),
		msg("user", "hi"),
		msg("user", "again"),
		msg("model", "hello"),
		msg("user", "dangling"),
	}

	once := Sanitize(raw)
	twice := Sanitize(once)

	if len(once) != len(twice) {
		t.Fatalf("second pass changed length: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("second pass changed message %d", i)
		}
	}
}

func TestSanitizeInvariants(t *testing.T) {
	// Any malformed input must come out strictly alternating, starting with
	// user and never ending with user.
	inputs := [][]chatbot.Message{
		{msg("model", "a"), msg("model", "b")},
		{msg("user", "a"), msg("user", "b"), msg("user", "c")},
		{msg("model", "a"), msg("user", "b"), msg("model", "c"), msg("model", "d"), msg("user", "e")},
		{msg("user", ""), msg("model", "")},
	}

	for _, raw := range inputs {
		got := Sanitize(raw)
		expected := constant.ChatMessageRoleUser
		for i, m := range got {
			if m.Role != expected {
				t.Errorf("input %v: message %d role = %s, want %s", rolesOf(raw), i, m.Role, expected)
			}
			if expected == constant.ChatMessageRoleUser {
				expected = constant.ChatMessageRoleModel
			} else {
				expected = constant.ChatMessageRoleUser
			}
		}
		if len(got) > 0 && got[len(got)-1].Role == constant.ChatMessageRoleUser {
			t.Errorf("input %v: sanitized history ends with a user turn", rolesOf(raw))
		}
	}
}
