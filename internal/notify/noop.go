package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded notifications. It
// is used when Discord (or another notification backend) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards notifications with a
// log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendValueChange logs and discards a value-change alert.
func (n *NoOpNotifier) SendValueChange(_ context.Context, change *ValueChange) error {
	n.log.Debug("notification discarded (no backend configured)",
		"item", change.ItemTitle,
		"change_pct", change.ChangePct,
	)
	return nil
}

// SendRunSummary logs and discards a run summary.
func (n *NoOpNotifier) SendRunSummary(_ context.Context, summary *RunSummary) error {
	n.log.Debug("run summary discarded (no backend configured)",
		"job", summary.JobName,
		"refreshed", summary.Refreshed,
	)
	return nil
}
