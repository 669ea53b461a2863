package logging_test

import (
	"context"
	"testing"

	"tweetbrief/internal/handler/http/requestid"
	"tweetbrief/internal/observability/logging"
)

func TestNewLogger_LevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	logger := logging.NewLogger()
	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}
	if !logger.Enabled(context.Background(), -4) {
		t.Fatal("debug level not enabled with LOG_LEVEL=debug")
	}
}

func TestNewLogger_DefaultLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	logger := logging.NewLogger()
	if logger.Enabled(context.Background(), -4) {
		t.Fatal("debug level enabled without LOG_LEVEL=debug")
	}
	if !logger.Enabled(context.Background(), 0) {
		t.Fatal("info level not enabled by default")
	}
}

func TestWithRequestID(t *testing.T) {
	logger := logging.NewLogger()

	ctx := requestid.WithRequestID(context.Background(), "req-123")
	enriched := logging.WithRequestID(ctx, logger)
	if enriched == logger {
		t.Fatal("expected a derived logger when the context carries a request ID")
	}

	same := logging.WithRequestID(context.Background(), logger)
	if same != logger {
		t.Fatal("expected the original logger when no request ID is present")
	}
}
