package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ticketdesk-be/internal/pkg/logger"
	"ticketdesk-be/pkg/chatbot"
	"ticketdesk-be/pkg/rag/tools"
)

type scriptedGenerator struct {
	results  []*chatbot.GenerateResult
	err      error
	requests []*chatbot.GenerateRequest
}

func (g *scriptedGenerator) GenerateContent(ctx context.Context, request *chatbot.GenerateRequest) (*chatbot.GenerateResult, error) {
	snapshot := &chatbot.GenerateRequest{
		SystemInstruction: request.SystemInstruction,
		Contents:          append([]*chatbot.Content(nil), request.Contents...),
		Tools:             request.Tools,
	}
	g.requests = append(g.requests, snapshot)
	if g.err != nil {
		return nil, g.err
	}
	call := len(g.requests) - 1
	if call >= len(g.results) {
		call = len(g.results) - 1
	}
	return g.results[call], nil
}

type stubHandler struct {
	name    string
	gotArgs []map[string]interface{}
	payload map[string]interface{}
}

func (h *stubHandler) Declaration() *chatbot.FunctionDeclaration {
	return &chatbot.FunctionDeclaration{Name: h.name}
}

func (h *stubHandler) Execute(ctx context.Context, args map[string]interface{}) map[string]interface{} {
	h.gotArgs = append(h.gotArgs, args)
	return h.payload
}

func newTestEngine(generator chatbot.Generator, maxTurns int, handlers ...tools.Handler) *Engine {
	registry := tools.NewRegistry(logger.NewNoop(), handlers...)
	return NewEngine(generator, registry, maxTurns, logger.NewNoop())
}

func TestRunRejectsEmptyNewestMessage(t *testing.T) {
	generator := &scriptedGenerator{results: []*chatbot.GenerateResult{{Text: "unreachable"}}}
	e := newTestEngine(generator, 1)

	cases := [][]chatbot.Message{
		nil,
		{},
		{{Role: "user", Content: ""}},
		{{Role: "user", Content: "hello"}, {Role: "model", Content: "hi"}, {Role: "user", Content: "   "}},
	}
	for _, messages := range cases {
		_, err := e.Run(context.Background(), messages, "en")
		if !errors.Is(err, ErrEmptyMessage) {
			t.Errorf("messages %v: err = %v, want ErrEmptyMessage", messages, err)
		}
	}
	if len(generator.requests) != 0 {
		t.Errorf("generator was called %d times for invalid input", len(generator.requests))
	}
}

func TestRunDirectAnswer(t *testing.T) {
	generator := &scriptedGenerator{results: []*chatbot.GenerateResult{{Text: "All clear."}}}
	e := newTestEngine(generator, 1)

	answer, err := e.Run(context.Background(), []chatbot.Message{
		{Role: "user", Content: "any open tickets?"},
	}, "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "All clear." {
		t.Errorf("answer = %q", answer)
	}
	if len(generator.requests) != 1 {
		t.Fatalf("generator called %d times, want 1", len(generator.requests))
	}

	request := generator.requests[0]
	if request.SystemInstruction == nil || len(request.SystemInstruction.Parts) == 0 {
		t.Fatal("system instruction missing")
	}
	if len(request.Contents) != 1 || request.Contents[0].Role != "user" {
		t.Fatalf("unexpected contents: %+v", request.Contents)
	}
	if request.Contents[0].Parts[0].Text != "any open tickets?" {
		t.Errorf("newest message text = %q", request.Contents[0].Parts[0].Text)
	}
}

func TestRunSanitizesHistory(t *testing.T) {
	generator := &scriptedGenerator{results: []*chatbot.GenerateResult{{Text: "ok"}}}
	e := newTestEngine(generator, 1)

	_, err := e.Run(context.Background(), []chatbot.Message{
		{Role: "model", Content: "stray greeting"},
		{Role: "user", Content: "first"},
		{Role: "user", Content: ""},
		{Role: "model", Content: "reply"},
		{Role: "user", Content: "dangling"},
		{Role: "user", Content: "newest question"},
	}, "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	contents := generator.requests[0].Contents
	wantRoles := []string{"user", "model", "user"}
	wantTexts := []string{"first", "reply", "newest question"}
	if len(contents) != len(wantRoles) {
		t.Fatalf("got %d contents, want %d: %+v", len(contents), len(wantRoles), contents)
	}
	for i := range contents {
		if contents[i].Role != wantRoles[i] || contents[i].Parts[0].Text != wantTexts[i] {
			t.Errorf("content %d = {%s %q}, want {%s %q}",
				i, contents[i].Role, contents[i].Parts[0].Text, wantRoles[i], wantTexts[i])
		}
	}
}

func TestRunSingleToolRound(t *testing.T) {
	handler := &stubHandler{
		name:    "list_tickets",
		payload: map[string]interface{}{"tickets": []map[string]interface{}{}},
	}
	generator := &scriptedGenerator{results: []*chatbot.GenerateResult{
		{FunctionCalls: []*chatbot.FunctionCall{
			{Name: "list_tickets", Args: map[string]interface{}{"status": "OPEN"}},
		}},
		{Text: "There are no open tickets."},
	}}
	e := newTestEngine(generator, 1, handler)

	answer, err := e.Run(context.Background(), []chatbot.Message{
		{Role: "user", Content: "show open tickets"},
	}, "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "There are no open tickets." {
		t.Errorf("answer = %q", answer)
	}
	if len(handler.gotArgs) != 1 || handler.gotArgs[0]["status"] != "OPEN" {
		t.Errorf("handler args = %v", handler.gotArgs)
	}
	if len(generator.requests) != 2 {
		t.Fatalf("generator called %d times, want 2", len(generator.requests))
	}

	contents := generator.requests[1].Contents
	if len(contents) != 3 {
		t.Fatalf("second request has %d contents, want 3", len(contents))
	}
	modelTurn, responseTurn := contents[1], contents[2]
	if modelTurn.Role != "model" || modelTurn.Parts[0].FunctionCall == nil {
		t.Errorf("model turn not echoed: %+v", modelTurn)
	}
	if responseTurn.Role != "user" || responseTurn.Parts[0].FunctionResponse == nil {
		t.Fatalf("function response turn malformed: %+v", responseTurn)
	}
	if responseTurn.Parts[0].FunctionResponse.Name != "list_tickets" {
		t.Errorf("response name = %q", responseTurn.Parts[0].FunctionResponse.Name)
	}
}

func TestRunBatchesParallelCalls(t *testing.T) {
	listHandler := &stubHandler{name: "list_tickets", payload: map[string]interface{}{"tickets": nil}}
	detailHandler := &stubHandler{name: "get_ticket_details", payload: map[string]interface{}{"error": "Ticket not found"}}
	generator := &scriptedGenerator{results: []*chatbot.GenerateResult{
		{FunctionCalls: []*chatbot.FunctionCall{
			{Name: "list_tickets", Args: map[string]interface{}{}},
			{Name: "get_ticket_details", Args: map[string]interface{}{"ticket_id": "abc"}},
		}},
		{Text: "done"},
	}}
	e := newTestEngine(generator, 1, listHandler, detailHandler)

	if _, err := e.Run(context.Background(), []chatbot.Message{{Role: "user", Content: "go"}}, "en"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	responseTurn := generator.requests[1].Contents[2]
	if len(responseTurn.Parts) != 2 {
		t.Fatalf("got %d response parts, want both calls answered in one turn", len(responseTurn.Parts))
	}
}

func TestRunStopsAtMaxTurns(t *testing.T) {
	handler := &stubHandler{name: "list_tickets", payload: map[string]interface{}{"tickets": nil}}
	// The model keeps asking for tools and never produces text.
	generator := &scriptedGenerator{results: []*chatbot.GenerateResult{
		{FunctionCalls: []*chatbot.FunctionCall{{Name: "list_tickets"}}},
	}}
	e := newTestEngine(generator, 2, handler)

	answer, err := e.Run(context.Background(), []chatbot.Message{{Role: "user", Content: "loop"}}, "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "" {
		t.Errorf("answer = %q, want empty text after exhausting turns", answer)
	}
	// Initial call plus one call per allowed tool round.
	if len(generator.requests) != 3 {
		t.Errorf("generator called %d times, want 3", len(generator.requests))
	}
	if len(handler.gotArgs) != 2 {
		t.Errorf("handler dispatched %d times, want 2", len(handler.gotArgs))
	}
}

func TestRunPropagatesGeneratorError(t *testing.T) {
	underlying := errors.New("upstream down")
	generator := &scriptedGenerator{err: underlying}
	e := newTestEngine(generator, 1)

	_, err := e.Run(context.Background(), []chatbot.Message{{Role: "user", Content: "hi"}}, "en")
	if !errors.Is(err, underlying) {
		t.Errorf("err = %v, want wrapped upstream error", err)
	}
}

func TestRunUsesJapaneseInstruction(t *testing.T) {
	generator := &scriptedGenerator{results: []*chatbot.GenerateResult{{Text: "ok"}}}
	e := newTestEngine(generator, 1)

	if _, err := e.Run(context.Background(), []chatbot.Message{{Role: "user", Content: "こんにちは"}}, "ja"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	instruction := generator.requests[0].SystemInstruction.Parts[0].Text
	if want := "You MUST answer all questions in Japanese."; !strings.Contains(instruction, want) {
		t.Errorf("instruction missing %q:\n%s", want, instruction)
	}
}
