// Package completion adapts the external Together completion API behind the
// domain.Completer port.
package completion

import (
	"context"
	"strings"
	"time"

	"disasterguard/internal/config"
	"disasterguard/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// systemPrompt is the fixed child-friendly instruction prepended to every
// request.
const systemPrompt = `You are a friendly and helpful educational assistant for children.
Your responses should be:
- Simple and easy to understand
- Positive and encouraging
- Brief (2-3 sentences)
- Include emojis where appropriate
- Educational but fun
Focus on teaching about disasters, sustainability, and environmental topics.`

// closingMarker is stripped from the end of raw completions.
const closingMarker = "</assistant>"

// The two fixed friendly fallback strings. The chat must keep going no
// matter what the completion API does, so these are the only failure surface
// a user ever sees.
const (
	FallbackEmptyResponse = "I'd be happy to help you learn about that! Could you try asking again? 🎓"
	FallbackError         = "I'm excited to help! Could you please rephrase your question? 🌈"
)

// TogetherCompleter formats prompts for and extracts responses from the
// Together completion endpoint. A nil model means the adapter is degraded
// (e.g. missing credential) and every call returns the error fallback.
type TogetherCompleter struct {
	model   llms.Model
	timeout time.Duration
}

// NewTogetherCompleter builds the adapter from config. A missing API key is
// not a construction error: the adapter degrades to the fallback-string
// behavior so the rest of the application starts normally.
func NewTogetherCompleter(cfg config.ChatConfig) *TogetherCompleter {
	if cfg.APIKey == "" {
		logger.Get().Warn("TOGETHER_API_KEY is not set; chat runs in degraded fallback mode")
		return &TogetherCompleter{timeout: cfg.Timeout}
	}

	model, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		logger.Get().Error("Failed to create completion client; chat runs in degraded fallback mode",
			zap.Error(err))
		return &TogetherCompleter{timeout: cfg.Timeout}
	}
	return &TogetherCompleter{model: model, timeout: cfg.Timeout}
}

// NewWithModel builds the adapter around an existing model. Used by tests.
func NewWithModel(model llms.Model, timeout time.Duration) *TogetherCompleter {
	return &TogetherCompleter{model: model, timeout: timeout}
}

// Complete implements domain.Completer. It builds the fixed prompt, calls
// the completion endpoint with a bounded timeout and cleans the raw output.
// Any failure returns one of the two fixed fallback strings, never an error.
func (c *TogetherCompleter) Complete(ctx context.Context, userText string) string {
	if c.model == nil {
		return FallbackError
	}

	prompt := "<system>" + systemPrompt + "</system>\n<user>" + userText + "</user>\n<assistant>"

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	response, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt,
		llms.WithMaxTokens(200),
		llms.WithTemperature(0.7),
		llms.WithTopP(0.9),
		llms.WithTopK(50),
		llms.WithRepetitionPenalty(1.0),
	)
	if err != nil {
		logger.Get().Error("Completion API call failed", zap.Error(err))
		return FallbackError
	}

	response = strings.TrimSpace(strings.ReplaceAll(response, closingMarker, ""))
	if response == "" {
		logger.Get().Warn("Completion API returned an empty response")
		return FallbackEmptyResponse
	}
	return response
}
