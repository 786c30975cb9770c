package chatbot

import "testing"

func TestFlattenResponseEmptyCandidates(t *testing.T) {
	result := flattenResponse(&generateResponse{})
	if result.Text != "" || len(result.FunctionCalls) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestFlattenResponseJoinsTextParts(t *testing.T) {
	res := &generateResponse{
		Candidates: []*generateCandidate{
			{Content: &Content{Parts: []*Part{
				{Text: "Hello "},
				{Text: "world"},
			}}},
		},
	}

	result := flattenResponse(res)
	if result.Text != "Hello world" {
		t.Errorf("Text = %q", result.Text)
	}
	if len(result.FunctionCalls) != 0 {
		t.Errorf("unexpected function calls: %v", result.FunctionCalls)
	}
}

func TestFlattenResponseCollectsFunctionCalls(t *testing.T) {
	res := &generateResponse{
		Candidates: []*generateCandidate{
			{Content: &Content{Parts: []*Part{
				{FunctionCall: &FunctionCall{Name: "list_tickets", Args: map[string]interface{}{"status": "OPEN"}}},
				{FunctionCall: &FunctionCall{Name: "get_ticket_details"}},
			}}},
		},
	}

	result := flattenResponse(res)
	if len(result.FunctionCalls) != 2 {
		t.Fatalf("got %d function calls, want 2", len(result.FunctionCalls))
	}
	if result.FunctionCalls[0].Name != "list_tickets" {
		t.Errorf("first call = %q", result.FunctionCalls[0].Name)
	}
	if result.FunctionCalls[0].Args["status"] != "OPEN" {
		t.Errorf("args = %v", result.FunctionCalls[0].Args)
	}
}

func TestFlattenResponseIgnoresExtraCandidates(t *testing.T) {
	res := &generateResponse{
		Candidates: []*generateCandidate{
			{Content: &Content{Parts: []*Part{{Text: "first"}}}},
			{Content: &Content{Parts: []*Part{{Text: "second"}}}},
		},
	}

	if got := flattenResponse(res).Text; got != "first" {
		t.Errorf("Text = %q, want only the first candidate", got)
	}
}
