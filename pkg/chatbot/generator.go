package chatbot

import (
	"context"
	"errors"
)

// ErrQuotaExceeded marks a rate/quota failure from the generation backend.
// Callers match it with errors.Is to pick the right fallback message.
var ErrQuotaExceeded = errors.New("generation quota exceeded")

// Generator is the contract for a generation backend. One call carries the
// full conversation; the backend holds no state between calls.
type Generator interface {
	GenerateContent(ctx context.Context, req *GenerateRequest) (*GenerateResult, error)
}
