package events

import (
	"context"

	"github.com/rs/zerolog"
)

// LogNotifier records each event as a structured log line. It stands in for
// the external fulfillment collaborator this service forwards outcomes to.
type LogNotifier struct {
	Logger zerolog.Logger
}

// Notify implements Notifier.
func (n LogNotifier) Notify(_ context.Context, event Event) error {
	n.Logger.Info().
		Str("event_id", event.ID).
		Str("topic", event.Topic).
		RawJSON("payload", event.Payload).
		Msg("domain_event")
	return nil
}
