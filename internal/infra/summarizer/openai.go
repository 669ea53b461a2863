package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"tweetbrief/internal/resilience/retry"
	"tweetbrief/internal/utils/text"
)

// OpenAI implements the Summarizer interface using OpenAI's chat completion
// API. It shares the Claude adapter's retry schedule and prompt so the two
// providers are interchangeable behind SUMMARIZER_PROVIDER.
type OpenAI struct {
	client          *openai.Client
	retryConfig     retry.Config
	config          Config
	metricsRecorder SummaryMetricsRecorder
}

// NewOpenAI creates a new OpenAI summarizer with the given API key.
func NewOpenAI(apiKey string) *OpenAI {
	cfg := LoadConfig(openai.GPT4oMini)

	slog.Info("initialized openai summarizer",
		slog.String("model", cfg.Model),
		slog.Int("character_target", cfg.CharacterTarget))

	return &OpenAI{
		client:          openai.NewClient(apiKey),
		retryConfig:     retry.SummarizerConfig(),
		config:          cfg,
		metricsRecorder: NewPrometheusSummaryMetrics(),
	}
}

// Summarize generates a short summary of the given tweet text.
func (o *OpenAI) Summarize(ctx context.Context, tweetText, author, url string) (string, error) {
	if tweetText == "" {
		return "", ErrEmptyInput
	}

	// Detached from caller cancellation, same contract as the Claude adapter.
	ctx = context.WithoutCancel(ctx)

	requestID := uuid.New().String()

	var result string
	retryErr := retry.WithFixedDelay(o.retryConfig, func() error {
		summary, err := o.doSummarize(ctx, requestID, tweetText, author, url)
		if err != nil {
			o.metricsRecorder.RecordRetry()
			return err
		}
		summary = strings.TrimSpace(summary)
		if summary == "" {
			o.metricsRecorder.RecordRetry()
			return errEmptySummary
		}
		result = summary
		return nil
	})
	if retryErr != nil {
		o.metricsRecorder.RecordExhausted()
		return "", fmt.Errorf("openai summarize failed after retries: %w", retryErr)
	}

	o.metricsRecorder.RecordLength(text.CountRunes(result))
	return result, nil
}

// doSummarize performs a single API attempt.
func (o *OpenAI) doSummarize(ctx context.Context, requestID, tweetText, author, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	prompt := o.config.BuildPrompt(tweetText, author, url)

	start := time.Now()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.config.Model,
		MaxTokens: o.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})

	duration := time.Since(start)
	o.metricsRecorder.RecordDuration(duration)

	if err != nil {
		slog.ErrorContext(ctx, "summarization attempt failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai api returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
