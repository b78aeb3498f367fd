package suggest

import (
	"context"

	"taskboard/internal/logger"
)

// maxSuggestions caps every result, provider-backed or fallback.
const maxSuggestions = 3

// Engine produces follow-up task suggestions for a task description.
// The provider is optional: with no API key configured, or whenever
// the provider misbehaves, the engine degrades to a deterministic
// templated fallback. Suggest never returns an error.
type Engine struct {
	client *openaiClient // nil when no API key is configured
}

func New(apiKey, model string) *Engine {
	if apiKey == "" {
		return &Engine{}
	}
	return &Engine{client: newOpenAIClient(apiKey, model)}
}

func (e *Engine) Suggest(ctx context.Context, task string) []string {
	if e.client == nil {
		return fallback(task)
	}

	suggestions, err := e.client.suggest(ctx, task)
	if err != nil {
		logger.Warn("suggestion provider degraded, using fallback", map[string]any{
			"error": err.Error(),
		})
		return fallback(task)
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// fallback derives generic follow-ups from the task text itself,
// matching the provider-backed output shape.
func fallback(task string) []string {
	return []string{
		"Review " + task,
		"Follow up on " + task,
		"Schedule time for " + task,
	}
}
