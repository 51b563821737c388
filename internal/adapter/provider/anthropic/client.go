// Package anthropic implements the vision and copywriting collaborators on
// top of the Anthropic Messages API.
package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/resale-backend/internal/domain"
)

const (
	defaultModel     = "claude-sonnet-4-5"
	defaultMaxTokens = 2048
)

var tracer = otel.Tracer("github.com/heartmarshall/resale-backend/internal/adapter/provider/anthropic")

// Config configures the client.
type Config struct {
	APIKey    string
	Model     string
	MaxTokens int64
	// BaseURL overrides the API endpoint (for testing).
	BaseURL string
}

// Client calls the Messages API.
type Client struct {
	api       anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// New creates a Client. Extra request options are appended after the
// configured ones.
func New(cfg Config, logger *slog.Logger, extra ...option.RequestOption) *Client {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	opts = append(opts, extra...)
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &Client{
		api:       anthropic.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
		log:       logger.With("adapter", "anthropic"),
	}
}

// Model returns the model name recorded with usage.
func (c *Client) Model() string { return c.model }

// complete sends one user turn and returns the concatenated text of the
// reply. Usage is returned whenever the API reported it.
func (c *Client) complete(
	ctx context.Context,
	operation string,
	system string,
	blocks []anthropic.ContentBlockParamUnion,
) (string, *domain.TokenUsage, error) {
	ctx, span := tracer.Start(ctx, "anthropic."+operation, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.String("ai.model", c.model))

	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: system}},
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(blocks...)},
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "messages.new")
		c.log.ErrorContext(ctx, "anthropic request failed",
			slog.String("operation", operation),
			slog.String("error", err.Error()),
		)
		return "", nil, fmt.Errorf("anthropic: %s: %w", operation, err)
	}

	var usage *domain.TokenUsage
	if msg.Usage.InputTokens > 0 || msg.Usage.OutputTokens > 0 {
		usage = &domain.TokenUsage{
			PromptTokens:     msg.Usage.InputTokens,
			CompletionTokens: msg.Usage.OutputTokens,
		}
		span.SetAttributes(
			attribute.Int64("ai.prompt_tokens", usage.PromptTokens),
			attribute.Int64("ai.completion_tokens", usage.CompletionTokens),
		)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	c.log.DebugContext(ctx, "anthropic response",
		slog.String("operation", operation),
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int("chars", text.Len()),
	)
	return text.String(), usage, nil
}
