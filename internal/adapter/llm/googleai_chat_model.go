package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"easyway/internal/domain"
	"easyway/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

// googleAIChatModel implements domain.ChatModel on the Gemini API.
type googleAIChatModel struct {
	client  *googleai.GoogleAI
	timeout time.Duration
}

// NewGoogleAIChatModel connects to the Gemini API and returns a chat model.
// Every request carries the configured timeout so a slow upstream cannot hold
// a handler open.
func NewGoogleAIChatModel(ctx context.Context, apiKey, model string, timeout time.Duration) (domain.ChatModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key cannot be empty")
	}
	client, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &googleAIChatModel{client: client, timeout: timeout}, nil
}

// Reply sends the recent history plus the new message and returns the
// model's answer.
func (g *googleAIChatModel) Reply(ctx context.Context, history []domain.ChatTurn, message string) (string, error) {
	l := logger.Get()

	messages := make([]llms.MessageContent, 0, len(history)+2)
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem,
		"You are a helpful study assistant for engineering students. "+
			"Answer clearly and concisely. Use fenced code blocks for any code."))
	for _, turn := range history {
		role := llms.ChatMessageTypeHuman
		if turn.Sender == domain.SenderBot {
			role = llms.ChatMessageTypeAI
		}
		messages = append(messages, llms.TextParts(role, turn.Text))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, message))

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.GenerateContent(callCtx, messages, llms.WithTemperature(0.4))
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			l.Error("LLM chat request timed out", zap.Error(err))
			return "", fmt.Errorf("LLM request timed out: %w", err)
		}
		l.Error("Failed to get chat response from LLM", zap.Error(err))
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("LLM returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Content), nil
}

// Complete runs a single-prompt completion, used for code analysis.
func (g *googleAIChatModel) Complete(ctx context.Context, prompt string) (string, error) {
	l := logger.Get()

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	response, err := llms.GenerateFromSinglePrompt(callCtx, g.client, prompt, llms.WithTemperature(0.1))
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			l.Error("LLM completion timed out", zap.Error(err))
			return "", fmt.Errorf("LLM request timed out: %w", err)
		}
		l.Error("Failed to get completion from LLM", zap.Error(err))
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	return strings.TrimSpace(response), nil
}
