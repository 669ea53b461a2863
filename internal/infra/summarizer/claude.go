package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"

	"tweetbrief/internal/resilience/retry"
	"tweetbrief/internal/utils/text"
)

// Claude implements the Summarizer interface using Anthropic's Claude API.
// Transient failures are retried on a fixed-delay schedule; the 529
// "overloaded" status surfaces as an API error from the SDK and is retried
// like any other failure.
type Claude struct {
	client          anthropic.Client
	retryConfig     retry.Config
	config          Config
	metricsRecorder SummaryMetricsRecorder
}

// NewClaude creates a new Claude summarizer with the given API key.
func NewClaude(apiKey string) *Claude {
	cfg := LoadConfig("claude-sonnet-4-5-20250929")

	slog.Info("initialized claude summarizer",
		slog.String("model", cfg.Model),
		slog.Int("character_target", cfg.CharacterTarget))

	return &Claude{
		client:          anthropic.NewClient(option.WithAPIKey(apiKey)),
		retryConfig:     retry.SummarizerConfig(),
		config:          cfg,
		metricsRecorder: NewPrometheusSummaryMetrics(),
	}
}

// Summarize generates a short summary of the given tweet text.
// It returns the trimmed summary, or an error wrapping the last underlying
// failure once all retry attempts are exhausted.
func (c *Claude) Summarize(ctx context.Context, tweetText, author, url string) (string, error) {
	if tweetText == "" {
		return "", ErrEmptyInput
	}

	// The retry schedule must run to completion even if the inbound request
	// is gone; detach from the caller's cancellation.
	ctx = context.WithoutCancel(ctx)

	requestID := uuid.New().String()

	var result string
	retryErr := retry.WithFixedDelay(c.retryConfig, func() error {
		summary, err := c.doSummarize(ctx, requestID, tweetText, author, url)
		if err != nil {
			c.metricsRecorder.RecordRetry()
			return err
		}
		summary = strings.TrimSpace(summary)
		if summary == "" {
			c.metricsRecorder.RecordRetry()
			return errEmptySummary
		}
		result = summary
		return nil
	})
	if retryErr != nil {
		c.metricsRecorder.RecordExhausted()
		return "", fmt.Errorf("claude summarize failed after retries: %w", retryErr)
	}

	c.metricsRecorder.RecordLength(text.CountRunes(result))
	slog.Info("summarization completed",
		slog.String("request_id", requestID),
		slog.Int("summary_runes", text.CountRunes(result)),
		slog.Int("summary_words", text.CountWords(result)))
	return result, nil
}

// doSummarize performs a single API attempt.
func (c *Claude) doSummarize(ctx context.Context, requestID, tweetText, author, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	prompt := c.config.BuildPrompt(tweetText, author, url)

	slog.InfoContext(ctx, "starting summarization",
		slog.String("request_id", requestID),
		slog.Int("input_length", text.CountRunes(tweetText)))

	start := time.Now()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(c.config.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(prompt),
			),
		},
	})

	duration := time.Since(start)
	c.metricsRecorder.RecordDuration(duration)

	if err != nil {
		slog.ErrorContext(ctx, "summarization attempt failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		return "", fmt.Errorf("claude api returned empty response")
	}
	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		return "", fmt.Errorf("claude api returned unexpected response type")
	}

	slog.InfoContext(ctx, "summarization attempt completed",
		slog.String("request_id", requestID),
		slog.Int("summary_length", text.CountRunes(textBlock.Text)),
		slog.Duration("duration", duration))

	return textBlock.Text, nil
}
