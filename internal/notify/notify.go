// Package notify publishes one-shot operator notifications. The production
// backend is an SNS topic subscribed by the event staff; tests use a capture
// implementation.
package notify

import "context"

// Notifier delivers a human-readable message to the operator channel.
type Notifier interface {
	Publish(ctx context.Context, subject, message string) error
}
