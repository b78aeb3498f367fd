package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	openaiBaseURL = "https://api.openai.com/v1/chat/completions"
	defaultModel  = "gpt-4o"

	// One bounded synchronous call per request; a hung provider must
	// not hold the suggestion endpoint open indefinitely.
	requestTimeout = 15 * time.Second

	systemPrompt = "You are a helpful task management assistant. " +
		"Given a task, suggest 3 related or follow-up tasks that would help " +
		"complete the overall goal. Respond with a JSON object containing a " +
		"\"suggestions\" array of strings."
)

type openaiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type openaiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// suggestionsPayload is the shape the system prompt asks the model
// for. Anything that does not unmarshal into it is a parse failure.
type suggestionsPayload struct {
	Suggestions []string `json:"suggestions"`
}

func newOpenAIClient(apiKey, model string) *openaiClient {
	if model == "" {
		model = defaultModel
	}
	return &openaiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: openaiBaseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

func (c *openaiClient) suggest(ctx context.Context, task string) ([]string, error) {
	req := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: task},
		},
		ResponseFormat: responseFormat{Type: "json_object"},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr openaiError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("OpenAI API error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("OpenAI API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("empty completion")
	}

	var payload suggestionsPayload
	if err := json.Unmarshal([]byte(chatResp.Choices[0].Message.Content), &payload); err != nil {
		return nil, fmt.Errorf("completion is not the expected JSON shape: %w", err)
	}
	if payload.Suggestions == nil {
		return nil, fmt.Errorf("completion missing suggestions array")
	}

	return payload.Suggestions, nil
}
