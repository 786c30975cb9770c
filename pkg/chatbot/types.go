package chatbot

// Message is a provider-agnostic chat message, the form history arrives in
// before it is converted to the wire format.
type Message struct {
	Role    string
	Content string
}

// Wire types for the Gemini generateContent API (v1beta, needed for
// function calling).

type Part struct {
	Text             string            `json:"text,omitempty"`
	FunctionCall     *FunctionCall     `json:"functionCall,omitempty"`
	FunctionResponse *FunctionResponse `json:"functionResponse,omitempty"`
}

type Content struct {
	Role  string  `json:"role,omitempty"`
	Parts []*Part `json:"parts"`
}

type FunctionCall struct {
	Name string                 `json:"name"`
	Args map[string]interface{} `json:"args,omitempty"`
}

type FunctionResponse struct {
	Name     string                 `json:"name"`
	Response map[string]interface{} `json:"response"`
}

type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

type FunctionDeclaration struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Parameters  *Schema `json:"parameters,omitempty"`
}

type Tool struct {
	FunctionDeclarations []*FunctionDeclaration `json:"functionDeclarations"`
}

type GenerateRequest struct {
	SystemInstruction *Content   `json:"systemInstruction,omitempty"`
	Contents          []*Content `json:"contents"`
	Tools             []*Tool    `json:"tools,omitempty"`
}

type generateCandidate struct {
	Content *Content `json:"content"`
}

type generateResponse struct {
	Candidates []*generateCandidate `json:"candidates"`
}

// GenerateResult is the flattened view of one model response: the joined
// text parts plus any tool-call requests.
type GenerateResult struct {
	Text          string
	FunctionCalls []*FunctionCall
}
