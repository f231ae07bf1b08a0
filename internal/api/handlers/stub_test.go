package handlers_test

import (
	"context"
	"time"

	"github.com/jcloud242/resale-radar/internal/ebay"
	"github.com/jcloud242/resale-radar/internal/store"
	domain "github.com/jcloud242/resale-radar/pkg/types"
)

// stubStore implements store.Store with overridable function fields.
// Methods without a configured function return zero values.
type stubStore struct {
	createCollection func(ctx context.Context, c *domain.Collection) error
	getCollection    func(ctx context.Context, id string) (*domain.Collection, error)
	listCollections  func(ctx context.Context) ([]domain.Collection, error)
	renameCollection func(ctx context.Context, id, name string) error
	deleteCollection func(ctx context.Context, id string) error

	createItem         func(ctx context.Context, it *domain.Item) error
	getItem            func(ctx context.Context, id string) (*domain.Item, error)
	listItems          func(ctx context.Context, opts *store.ItemQuery) ([]domain.Item, int, error)
	updateItem         func(ctx context.Context, it *domain.Item) error
	deleteItem         func(ctx context.Context, id string) error
	updateItemEstimate func(ctx context.Context, id string, avg *float64, conf string, at time.Time) error

	insertSearchRecord func(ctx context.Context, r *domain.SearchRecord) error
	listSearchHistory  func(ctx context.Context, limit int) ([]domain.SearchRecord, error)
	clearSearchHistory func(ctx context.Context) (int, error)

	insertSnapshot func(ctx context.Context, s *domain.PriceSnapshot) error
	listSnapshots  func(ctx context.Context, itemID string, limit int) ([]domain.PriceSnapshot, error)

	insertJobRun        func(ctx context.Context, jobName string) (string, error)
	completeJobRun      func(ctx context.Context, id, status, errText string, rows int) error
	listJobRuns         func(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	listLatestJobRuns   func(ctx context.Context) ([]domain.JobRun, error)
	recoverStaleJobRuns func(ctx context.Context, olderThan time.Duration) (int, error)

	ping func(ctx context.Context) error
}

var _ store.Store = (*stubStore)(nil)

func (s *stubStore) CreateCollection(ctx context.Context, c *domain.Collection) error {
	if s.createCollection != nil {
		return s.createCollection(ctx, c)
	}
	return nil
}

func (s *stubStore) GetCollection(ctx context.Context, id string) (*domain.Collection, error) {
	if s.getCollection != nil {
		return s.getCollection(ctx, id)
	}
	return &domain.Collection{ID: id}, nil
}

func (s *stubStore) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	if s.listCollections != nil {
		return s.listCollections(ctx)
	}
	return nil, nil
}

func (s *stubStore) RenameCollection(ctx context.Context, id, name string) error {
	if s.renameCollection != nil {
		return s.renameCollection(ctx, id, name)
	}
	return nil
}

func (s *stubStore) DeleteCollection(ctx context.Context, id string) error {
	if s.deleteCollection != nil {
		return s.deleteCollection(ctx, id)
	}
	return nil
}

func (s *stubStore) CreateItem(ctx context.Context, it *domain.Item) error {
	if s.createItem != nil {
		return s.createItem(ctx, it)
	}
	return nil
}

func (s *stubStore) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	if s.getItem != nil {
		return s.getItem(ctx, id)
	}
	return &domain.Item{ID: id}, nil
}

func (s *stubStore) ListItems(ctx context.Context, opts *store.ItemQuery) ([]domain.Item, int, error) {
	if s.listItems != nil {
		return s.listItems(ctx, opts)
	}
	return nil, 0, nil
}

func (s *stubStore) UpdateItem(ctx context.Context, it *domain.Item) error {
	if s.updateItem != nil {
		return s.updateItem(ctx, it)
	}
	return nil
}

func (s *stubStore) DeleteItem(ctx context.Context, id string) error {
	if s.deleteItem != nil {
		return s.deleteItem(ctx, id)
	}
	return nil
}

func (s *stubStore) UpdateItemEstimate(
	ctx context.Context, id string, avg *float64, conf string, at time.Time,
) error {
	if s.updateItemEstimate != nil {
		return s.updateItemEstimate(ctx, id, avg, conf, at)
	}
	return nil
}

func (s *stubStore) InsertSearchRecord(ctx context.Context, r *domain.SearchRecord) error {
	if s.insertSearchRecord != nil {
		return s.insertSearchRecord(ctx, r)
	}
	return nil
}

func (s *stubStore) ListSearchHistory(ctx context.Context, limit int) ([]domain.SearchRecord, error) {
	if s.listSearchHistory != nil {
		return s.listSearchHistory(ctx, limit)
	}
	return nil, nil
}

func (s *stubStore) ClearSearchHistory(ctx context.Context) (int, error) {
	if s.clearSearchHistory != nil {
		return s.clearSearchHistory(ctx)
	}
	return 0, nil
}

func (s *stubStore) InsertSnapshot(ctx context.Context, snap *domain.PriceSnapshot) error {
	if s.insertSnapshot != nil {
		return s.insertSnapshot(ctx, snap)
	}
	return nil
}

func (s *stubStore) ListSnapshots(ctx context.Context, itemID string, limit int) ([]domain.PriceSnapshot, error) {
	if s.listSnapshots != nil {
		return s.listSnapshots(ctx, itemID, limit)
	}
	return nil, nil
}

func (s *stubStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	if s.insertJobRun != nil {
		return s.insertJobRun(ctx, jobName)
	}
	return "", nil
}

func (s *stubStore) CompleteJobRun(ctx context.Context, id, status, errText string, rows int) error {
	if s.completeJobRun != nil {
		return s.completeJobRun(ctx, id, status, errText, rows)
	}
	return nil
}

func (s *stubStore) ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error) {
	if s.listJobRuns != nil {
		return s.listJobRuns(ctx, jobName, limit)
	}
	return nil, nil
}

func (s *stubStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	if s.listLatestJobRuns != nil {
		return s.listLatestJobRuns(ctx)
	}
	return nil, nil
}

func (s *stubStore) RecoverStaleJobRuns(ctx context.Context, olderThan time.Duration) (int, error) {
	if s.recoverStaleJobRuns != nil {
		return s.recoverStaleJobRuns(ctx, olderThan)
	}
	return 0, nil
}

func (s *stubStore) Migrate(context.Context) error { return nil }

func (s *stubStore) Ping(ctx context.Context) error {
	if s.ping != nil {
		return s.ping(ctx)
	}
	return nil
}

// stubClient implements ebay.Client with a single function field.
type stubClient struct {
	search func(ctx context.Context, req ebay.SearchRequest) (*ebay.SearchResponse, error)
}

func (c *stubClient) Search(ctx context.Context, req ebay.SearchRequest) (*ebay.SearchResponse, error) {
	return c.search(ctx, req)
}

// stubSampler implements the sample collector used by the estimate handler.
type stubSampler struct {
	collect func(ctx context.Context, req ebay.SearchRequest, sampleSize int) (*ebay.SampleResult, error)
}

func (s *stubSampler) Collect(
	ctx context.Context, req ebay.SearchRequest, sampleSize int,
) (*ebay.SampleResult, error) {
	return s.collect(ctx, req, sampleSize)
}
