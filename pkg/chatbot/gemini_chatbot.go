package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type GeminiChatbot struct {
	apiKey string
	model  string
	client *http.Client
}

func NewGeminiChatbot(apiKey string, model string) *GeminiChatbot {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiChatbot{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{},
	}
}

func (c *GeminiChatbot) GenerateContent(ctx context.Context, genReq *GenerateRequest) (*GenerateResult, error) {
	payloadJson, err := json.Marshal(genReq)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent",
		c.model,
	)

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(payloadJson))
	if err != nil {
		return nil, err
	}

	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		if res.StatusCode == http.StatusTooManyRequests || strings.Contains(string(resBody), "RESOURCE_EXHAUSTED") {
			return nil, fmt.Errorf("%w: status %d, body %s", ErrQuotaExceeded, res.StatusCode, string(resBody))
		}
		return nil, fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var geminiRes generateResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return nil, err
	}

	return flattenResponse(&geminiRes), nil
}

// flattenResponse joins the text parts of the first candidate and collects
// its tool-call requests. A response without candidates yields an empty
// result, not an error; the caller decides what empty output means.
func flattenResponse(res *generateResponse) *GenerateResult {
	result := &GenerateResult{}
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return result
	}

	var texts []string
	for _, part := range res.Candidates[0].Content.Parts {
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
		if part.FunctionCall != nil {
			result.FunctionCalls = append(result.FunctionCalls, part.FunctionCall)
		}
	}
	result.Text = strings.Join(texts, "")
	return result
}
