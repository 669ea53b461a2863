package notifier

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"tweetbrief/pkg/config"
)

// FCMConfig contains configuration for Firebase Cloud Messaging notifications.
type FCMConfig struct {
	// CredentialsJSON is the service account credential, either as a raw
	// JSON document or base64-encoded JSON. Empty disables FCM.
	CredentialsJSON string

	// Topic is the broadcast topic all subscribed clients receive.
	Topic string

	// Timeout is the per-send timeout for FCM API calls.
	Timeout time.Duration
}

// LoadFCMConfig loads FCM configuration from environment variables.
//
// Environment variables:
//   - FCM_CREDENTIALS_JSON: service account JSON, raw or base64-encoded
//   - FCM_TOPIC: broadcast topic name (default: "summaries")
//   - FCM_TIMEOUT: per-send timeout (default: 10s)
func LoadFCMConfig() FCMConfig {
	return FCMConfig{
		CredentialsJSON: config.GetEnvString("FCM_CREDENTIALS_JSON", ""),
		Topic:           config.GetEnvString("FCM_TOPIC", "summaries"),
		Timeout:         config.GetEnvDuration("FCM_TIMEOUT", 10*time.Second),
	}
}

// FCM publishes notifications to a fixed broadcast topic via Firebase Cloud
// Messaging. There is no per-user targeting: every subscribed client
// receives every notification.
type FCM struct {
	client *messaging.Client
	config FCMConfig
}

// NewFCM initializes the Firebase app and messaging client once at startup.
// The returned error is the caller's signal to fall back to a NoOp notifier;
// there is no lazy re-initialization later.
func NewFCM(ctx context.Context, cfg FCMConfig) (*FCM, error) {
	if cfg.CredentialsJSON == "" {
		return nil, fmt.Errorf("fcm: no credentials configured")
	}

	credentials, err := decodeCredentials(cfg.CredentialsJSON)
	if err != nil {
		return nil, fmt.Errorf("fcm: %w", err)
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON(credentials))
	if err != nil {
		return nil, fmt.Errorf("fcm: initialize app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("fcm: messaging client: %w", err)
	}

	slog.Info("fcm notifier initialized", slog.String("topic", cfg.Topic))
	return &FCM{client: client, config: cfg}, nil
}

// decodeCredentials accepts either a raw JSON service account document or a
// base64-encoded one. Raw JSON is detected by its leading brace.
func decodeCredentials(value string) ([]byte, error) {
	trimmed := strings.TrimSpace(value)
	if strings.HasPrefix(trimmed, "{") {
		return []byte(trimmed), nil
	}

	decoded, err := base64.StdEncoding.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("decode credentials: not raw JSON and not valid base64: %w", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(decoded)), "{") {
		return nil, fmt.Errorf("decode credentials: base64 payload is not a JSON document")
	}
	return decoded, nil
}

// Publish implements Notifier.Publish. Any failure is logged and reported as
// delivered=false; nothing propagates to the caller.
func (f *FCM) Publish(ctx context.Context, title, body, url string) bool {
	ctx, cancel := context.WithTimeout(ctx, f.config.Timeout)
	defer cancel()

	message := &messaging.Message{
		Topic: f.config.Topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: map[string]string{
			"url": url,
		},
	}

	id, err := f.client.Send(ctx, message)
	if err != nil {
		slog.Warn("fcm publish failed",
			slog.String("topic", f.config.Topic),
			slog.Any("error", err))
		return false
	}

	slog.Info("fcm notification published",
		slog.String("topic", f.config.Topic),
		slog.String("message_id", id))
	return true
}
