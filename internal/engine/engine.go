// Package engine orchestrates the scheduled re-estimation of tracked
// items: sample the marketplace, compute an estimate, and record a value
// snapshot.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jcloud242/resale-radar/internal/ebay"
	"github.com/jcloud242/resale-radar/internal/fees"
	"github.com/jcloud242/resale-radar/internal/metrics"
	"github.com/jcloud242/resale-radar/internal/notify"
	"github.com/jcloud242/resale-radar/internal/store"
	"github.com/jcloud242/resale-radar/pkg/pricing"
	domain "github.com/jcloud242/resale-radar/pkg/types"
)

const (
	refreshJobName = "refresh"

	defaultSampleSize = 50
	itemPageSize      = 500

	// Estimate moves smaller than this are not worth announcing.
	defaultChangeThresholdPct = 10.0
)

// SampleCollector gathers a market price sample for a search query.
type SampleCollector interface {
	Collect(ctx context.Context, req ebay.SearchRequest, sampleSize int) (*ebay.SampleResult, error)
}

// Engine re-estimates tracked items from fresh marketplace samples.
type Engine struct {
	store    store.Store
	sampler  SampleCollector
	fees     *fees.Table
	notifier notify.Notifier
	log      *slog.Logger

	binFactor          float64
	sampleSize         int
	staggerOffset      time.Duration
	changeThresholdPct float64
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	sampler SampleCollector,
	feeTable *fees.Table,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:              s,
		sampler:            sampler,
		fees:               feeTable,
		log:                slog.Default(),
		binFactor:          pricing.DefaultBinFactor,
		sampleSize:         defaultSampleSize,
		staggerOffset:      2 * time.Second,
		changeThresholdPct: defaultChangeThresholdPct,
	}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.notifier == nil {
		eng.notifier = notify.NewNoOpNotifier(eng.log)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithBinFactor sets the active-to-sold price factor used for scenario
// projection.
func WithBinFactor(f float64) EngineOption {
	return func(e *Engine) {
		e.binFactor = f
	}
}

// WithSampleSize sets the target price sample size per item.
func WithSampleSize(n int) EngineOption {
	return func(e *Engine) {
		e.sampleSize = n
	}
}

// WithStaggerOffset sets the delay between processing each item.
func WithStaggerOffset(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.staggerOffset = d
	}
}

// WithNotifier sets the notification backend for value-change alerts and
// run summaries.
func WithNotifier(n notify.Notifier) EngineOption {
	return func(e *Engine) {
		e.notifier = n
	}
}

// WithChangeThreshold sets the minimum absolute percentage move in an
// item's estimated value that triggers a notification.
func WithChangeThreshold(pct float64) EngineOption {
	return func(e *Engine) {
		e.changeThresholdPct = pct
	}
}

// RunRefresh re-estimates every tracked item and records a snapshot per
// item. It returns the number of items refreshed. The run is recorded in
// the job history; hitting the daily API limit ends the run early but
// does not fail it.
func (eng *Engine) RunRefresh(ctx context.Context) (int, error) {
	start := time.Now()
	metrics.RefreshRunsTotal.Inc()
	defer func() {
		metrics.RefreshDuration.Observe(time.Since(start).Seconds())
	}()

	jobID, err := eng.store.InsertJobRun(ctx, refreshJobName)
	if err != nil {
		return 0, fmt.Errorf("recording job run: %w", err)
	}

	refreshed, itemErrs, runErr := eng.refreshAll(ctx)

	status := "completed"
	errText := ""
	if runErr != nil {
		status = "failed"
		errText = runErr.Error()
	}
	if err := eng.store.CompleteJobRun(ctx, jobID, status, errText, refreshed); err != nil {
		eng.log.Error("completing job run", "job_id", jobID, "error", err)
	}

	if runErr == nil && refreshed > 0 {
		summary := &notify.RunSummary{
			JobName:   refreshJobName,
			Refreshed: refreshed,
			Errors:    itemErrs,
			Duration:  time.Since(start),
		}
		if err := eng.notifier.SendRunSummary(ctx, summary); err != nil {
			eng.log.Warn("sending run summary failed", "error", err)
		}
	}

	return refreshed, runErr
}

func (eng *Engine) refreshAll(ctx context.Context) (refreshed, itemErrs int, err error) {
	for offset := 0; ; offset += itemPageSize {
		items, total, err := eng.store.ListItems(ctx, &store.ItemQuery{
			Limit:  itemPageSize,
			Offset: offset,
		})
		if err != nil {
			return refreshed, itemErrs, fmt.Errorf("listing items: %w", err)
		}
		if len(items) == 0 {
			return refreshed, itemErrs, nil
		}

		for i := range items {
			if ctx.Err() != nil {
				return refreshed, itemErrs, ctx.Err()
			}

			it := &items[i]
			if err := eng.refreshItem(ctx, it); err != nil {
				if errors.Is(err, ebay.ErrDailyLimitReached) {
					eng.log.Warn("daily API limit reached, stopping refresh",
						"item", it.Title,
						"refreshed", refreshed,
					)
					return refreshed, itemErrs, nil
				}
				eng.log.Error("item refresh failed", "item", it.Title, "error", err)
				metrics.RefreshErrorsTotal.Inc()
				itemErrs++
				continue
			}
			refreshed++

			// Stagger between items to avoid API bursts.
			if eng.staggerOffset > 0 {
				select {
				case <-ctx.Done():
					return refreshed, itemErrs, ctx.Err()
				case <-time.After(eng.staggerOffset):
				}
			}
		}

		if offset+len(items) >= total {
			return refreshed, itemErrs, nil
		}
	}
}

func (eng *Engine) refreshItem(ctx context.Context, it *domain.Item) error {
	sample, err := eng.sampler.Collect(ctx, ebay.SearchRequest{
		Query: it.EffectiveQuery(),
	}, eng.sampleSize)
	if err != nil {
		return fmt.Errorf("sampling market: %w", err)
	}

	fc := eng.fees.Resolve(it.Category, it, nil)
	est := pricing.ComputeEstimate(sample.Prices, fc, eng.binFactor)

	now := time.Now().UTC()
	snap := &domain.PriceSnapshot{
		ItemID:       it.ID,
		SampleSize:   est.SampleSize,
		CleanedCount: est.CleanedCount,
		AvgActive:    est.AvgActive,
		MedianActive: est.MedianActive,
		Confidence:   string(est.Confidence),
		TakenAt:      now,
	}
	if err := eng.store.InsertSnapshot(ctx, snap); err != nil {
		return fmt.Errorf("recording snapshot: %w", err)
	}
	metrics.SnapshotsRecordedTotal.Inc()

	if err := eng.store.UpdateItemEstimate(
		ctx, it.ID, est.AvgActive, string(est.Confidence), now,
	); err != nil {
		return fmt.Errorf("updating item estimate: %w", err)
	}

	eng.maybeNotifyChange(ctx, it, &est)

	eng.log.Info("item refreshed",
		"item", it.Title,
		"sample_size", est.SampleSize,
		"confidence", est.Confidence,
	)
	return nil
}

// maybeNotifyChange announces the new estimate when it moved past the
// configured threshold relative to the item's previous value.
func (eng *Engine) maybeNotifyChange(ctx context.Context, it *domain.Item, est *pricing.Estimate) {
	if it.LastAvgActive == nil || *it.LastAvgActive == 0 || est.AvgActive == nil {
		return
	}

	old := *it.LastAvgActive
	changePct := (*est.AvgActive - old) / old * 100
	if changePct < eng.changeThresholdPct && changePct > -eng.changeThresholdPct {
		return
	}

	change := &notify.ValueChange{
		ItemTitle:  it.Title,
		Platform:   it.Platform,
		OldValue:   old,
		NewValue:   *est.AvgActive,
		ChangePct:  changePct,
		Confidence: string(est.Confidence),
		SampleSize: est.SampleSize,
	}
	if err := eng.notifier.SendValueChange(ctx, change); err != nil {
		eng.log.Warn("sending value-change alert failed", "item", it.Title, "error", err)
	}
}

// RecoverStale marks job runs still "running" after olderThan as crashed.
// Called at startup so an unclean shutdown does not leave phantom runs.
func (eng *Engine) RecoverStale(ctx context.Context, olderThan time.Duration) (int, error) {
	recovered, err := eng.store.RecoverStaleJobRuns(ctx, olderThan)
	if err != nil {
		return 0, fmt.Errorf("recovering stale job runs: %w", err)
	}
	if recovered > 0 {
		eng.log.Warn("recovered stale job runs", "count", recovered)
	}
	return recovered, nil
}
