package notifier

import (
	"context"
	"log/slog"
)

// NoOp is a notifier that delivers nothing. It stands in for FCM when no
// credentials are configured, keeping call sites free of nil checks.
type NoOp struct{}

// NewNoOp creates a new NoOp notifier.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Publish implements Notifier.Publish. Always reports delivered=false.
func (n *NoOp) Publish(_ context.Context, title, _, _ string) bool {
	slog.Debug("notifications disabled, dropping publish",
		slog.String("title", title))
	return false
}
