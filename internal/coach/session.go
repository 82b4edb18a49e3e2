package coach

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/dukerupert/fallow/internal/model"
)

const (
	defaultModel = "claude-sonnet-4-5-20250929"
	maxTokens    = 1024

	// historyWindow bounds how many trailing transcript turns accompany
	// each request.
	historyWindow = 20
)

// autoGreetPrompt is the synthetic turn injected when the coach speaks
// first. It is sent to the model but never persisted as a user message.
const autoGreetPrompt = "I just opened the chat. Greet me warmly in one short sentence, then ask whether " +
	"I'd like to: (1) talk about what I've done so far today, or (2) get context on today's actions and " +
	"daily habits. Keep it to 2-3 sentences max — casual, like a friend checking in. Don't dive into " +
	"details yet, just offer the choice."

// Session is the boundary to the coaching model provider. One stream is
// active at a time; the handler serializes sends.
type Session struct {
	client anthropic.Client
	model  string
	logger *slog.Logger
}

// NewSession creates a Session using the given API key. The model name
// may be empty, in which case the default is used. Extra request options
// are passed through to the client; tests use this to point the session
// at a local stand-in server.
func NewSession(apiKey, modelName string, logger *slog.Logger, opts ...option.RequestOption) *Session {
	if modelName == "" {
		modelName = defaultModel
	}
	clientOpts := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Session{
		client: anthropic.NewClient(clientOpts...),
		model:  modelName,
		logger: logger,
	}
}

// Stream sends the assembled context to the model and relays text deltas
// to onText as they arrive. It returns the full concatenated reply only
// when the stream finished cleanly; on any mid-stream failure the error
// is returned and the partial text is discarded by the caller, never
// persisted.
//
// transcript is the stored conversation ascending by time; only the last
// historyWindow turns are sent. When autoGreet is set, a synthetic
// instruction turn is appended instead of a user message.
func (s *Session) Stream(ctx context.Context, systemPrompt string, transcript []model.ChatMessage, autoGreet bool, onText func(text string) error) (string, error) {
	if len(transcript) > historyWindow {
		transcript = transcript[len(transcript)-historyWindow:]
	}

	messages := make([]anthropic.MessageParam, 0, len(transcript)+1)
	for _, m := range transcript {
		block := anthropic.NewTextBlock(m.Content)
		if m.Role == "assistant" {
			messages = append(messages, anthropic.NewAssistantMessage(block))
		} else {
			messages = append(messages, anthropic.NewUserMessage(block))
		}
	}
	if autoGreet {
		messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(autoGreetPrompt)))
	}

	stream := s.client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: maxTokens,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages:  messages,
	})

	var full string
	for stream.Next() {
		event := stream.Current()
		switch ev := event.AsAny().(type) {
		case anthropic.ContentBlockDeltaEvent:
			switch delta := ev.Delta.AsAny().(type) {
			case anthropic.TextDelta:
				full += delta.Text
				if err := onText(delta.Text); err != nil {
					return "", fmt.Errorf("relay delta: %w", err)
				}
			}
		}
	}
	if err := stream.Err(); err != nil {
		s.logger.Error("model stream failed", "error", err)
		return "", fmt.Errorf("model stream: %w", err)
	}

	return full, nil
}
