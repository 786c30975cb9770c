package dto

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages" validate:"required,min=1"`
	Locale   string        `json:"locale" validate:"omitempty,oneof=en ja"`
}

type ChatResponse struct {
	Content string `json:"content"`
}

type VectorSearchRequest struct {
	Message string `json:"message" validate:"required"`
	Locale  string `json:"locale" validate:"omitempty,oneof=en ja"`
}

type VectorSearchResponse struct {
	Answer string `json:"answer"`
}
