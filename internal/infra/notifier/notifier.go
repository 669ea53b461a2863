// Package notifier provides best-effort push notification delivery for newly
// stored summaries. It defines the Notifier interface with a Firebase Cloud
// Messaging implementation publishing to a single broadcast topic, and a
// no-op implementation for when no credentials are configured.
package notifier

import "context"

// Notifier publishes a push notification about a newly stored summary.
//
// Delivery is fire-and-forget: implementations log failures and report them
// through the returned flag, never through an error. A false result must not
// fail the ingestion request that triggered it.
type Notifier interface {
	// Publish sends a notification with a human-readable title and body plus
	// a machine-readable url for client-side deep-linking. It reports whether
	// the notification was handed to the backend.
	Publish(ctx context.Context, title, body, url string) (delivered bool)
}
