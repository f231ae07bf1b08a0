// Package store defines the datastore abstraction for resale-radar.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"time"

	domain "github.com/jcloud242/resale-radar/pkg/types"
)

// ItemQuery defines optional filters for item queries.
type ItemQuery struct {
	CollectionID *string
	Category     *string
	Platform     *string
	Confidence   *string
	Limit        int // default 50
	Offset       int
	OrderBy      string // "title", "last_avg_active", "last_estimated_at"
}

// Store defines all data access operations for resale-radar.
type Store interface {
	// Collections
	CreateCollection(ctx context.Context, c *domain.Collection) error
	GetCollection(ctx context.Context, id string) (*domain.Collection, error)
	ListCollections(ctx context.Context) ([]domain.Collection, error)
	RenameCollection(ctx context.Context, id, name string) error
	DeleteCollection(ctx context.Context, id string) error

	// Items
	CreateItem(ctx context.Context, it *domain.Item) error
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	ListItems(ctx context.Context, opts *ItemQuery) ([]domain.Item, int, error)
	UpdateItem(ctx context.Context, it *domain.Item) error
	DeleteItem(ctx context.Context, id string) error
	UpdateItemEstimate(
		ctx context.Context,
		id string,
		avgActive *float64,
		confidence string,
		estimatedAt time.Time,
	) error

	// Search history
	InsertSearchRecord(ctx context.Context, r *domain.SearchRecord) error
	ListSearchHistory(ctx context.Context, limit int) ([]domain.SearchRecord, error)
	ClearSearchHistory(ctx context.Context) (int, error)

	// Price snapshots
	InsertSnapshot(ctx context.Context, s *domain.PriceSnapshot) error
	ListSnapshots(ctx context.Context, itemID string, limit int) ([]domain.PriceSnapshot, error)

	// Refresh bookkeeping
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	RecoverStaleJobRuns(ctx context.Context, olderThan time.Duration) (int, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
