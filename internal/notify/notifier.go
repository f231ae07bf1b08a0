// Package notify defines the notification interface and implementations
// for value-change alerts and refresh run summaries.
package notify

import (
	"context"
	"time"
)

// ValueChange contains the data needed to announce a significant move in
// an item's estimated resale value.
type ValueChange struct {
	ItemTitle  string
	Platform   string
	OldValue   float64
	NewValue   float64
	ChangePct  float64
	Confidence string
	SampleSize int
}

// RunSummary describes one completed refresh run.
type RunSummary struct {
	JobName   string
	Refreshed int
	Errors    int
	Duration  time.Duration
}

// Notifier defines the interface for delivering notifications.
type Notifier interface {
	SendValueChange(ctx context.Context, change *ValueChange) error
	SendRunSummary(ctx context.Context, summary *RunSummary) error
}
