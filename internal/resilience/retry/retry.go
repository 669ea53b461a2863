// Package retry provides bounded retry logic with a fixed delay between attempts.
// It helps handle transient failures of outbound API calls by automatically
// retrying failed operations a fixed number of times.
package retry

import (
	"fmt"
	"log/slog"
	"time"
)

// Config holds the configuration for retry logic.
type Config struct {
	// MaxAttempts is the total number of attempts, including the first one.
	MaxAttempts int

	// Delay is the fixed pause between attempts. The delay never grows and
	// no jitter is applied.
	Delay time.Duration

	// Sleep is the function used to wait between attempts. When nil,
	// time.Sleep is used. Tests inject a recording stub here to run the
	// loop without real wall-clock waits.
	Sleep func(time.Duration)
}

// SummarizerConfig returns the retry configuration for summarization API
// calls: up to 5 retries (6 attempts total) with a fixed 8 second delay.
func SummarizerConfig() Config {
	return Config{
		MaxAttempts: 6,
		Delay:       8 * time.Second,
	}
}

// WithFixedDelay executes fn up to cfg.MaxAttempts times, pausing cfg.Delay
// between attempts. Every error is treated as retryable. It returns nil as
// soon as fn succeeds, or an error wrapping the last failure once all
// attempts are exhausted.
//
// The loop deliberately takes no context: an in-flight attempt sequence must
// run to completion even if the inbound request that triggered it goes away.
func WithFixedDelay(cfg Config, fn func() error) error {
	sleep := cfg.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		lastErr = fn()

		if lastErr == nil {
			if attempt > 1 {
				slog.Info("operation succeeded after retry",
					slog.Int("attempt", attempt))
			}
			return nil
		}

		// Don't wait after the last attempt
		if attempt == cfg.MaxAttempts {
			break
		}

		slog.Warn("operation failed, retrying",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", cfg.MaxAttempts),
			slog.Duration("delay", cfg.Delay),
			slog.Any("error", lastErr))

		sleep(cfg.Delay)
	}

	return fmt.Errorf("max retry attempts (%d) exceeded: %w", cfg.MaxAttempts, lastErr)
}
