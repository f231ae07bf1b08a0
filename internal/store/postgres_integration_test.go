//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jcloud242/resale-radar/internal/store"
	domain "github.com/jcloud242/resale-radar/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("rr_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testCollection(t *testing.T, s *store.PostgresStore, name string) *domain.Collection {
	t.Helper()
	c := &domain.Collection{Name: name}
	require.NoError(t, s.CreateCollection(context.Background(), c))
	return c
}

func testItem(collectionID string) *domain.Item {
	buy := 12.50
	return &domain.Item{
		CollectionID: collectionID,
		Title:        "Metroid Prime",
		Platform:     "GameCube",
		Category:     domain.CategoryVideoGame,
		UPC:          "045496960131",
		BuyPrice:     &buy,
	}
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_CollectionCRUD(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	// Create.
	c := &domain.Collection{Name: "GameCube Shelf"}
	require.NoError(t, s.CreateCollection(ctx, c))
	assert.NotEmpty(t, c.ID)
	assert.False(t, c.CreatedAt.IsZero())

	// Get.
	got, err := s.GetCollection(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "GameCube Shelf", got.Name)

	// Rename.
	require.NoError(t, s.RenameCollection(ctx, c.ID, "GC Shelf"))
	got, err = s.GetCollection(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "GC Shelf", got.Name)

	// List.
	collections, err := s.ListCollections(ctx)
	require.NoError(t, err)
	assert.Len(t, collections, 1)

	// Delete.
	require.NoError(t, s.DeleteCollection(ctx, c.ID))
	_, err = s.GetCollection(ctx, c.ID)
	assert.Error(t, err)
}

func TestPostgresStore_RenameCollection_NotFound(t *testing.T) {
	s := setupPostgres(t)

	err := s.RenameCollection(
		context.Background(),
		"00000000-0000-0000-0000-000000000000",
		"ghost",
	)
	assert.Error(t, err)
}

func TestPostgresStore_ItemCRUD(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	c := testCollection(t, s, "Items")

	// Create.
	it := testItem(c.ID)
	require.NoError(t, s.CreateItem(ctx, it))
	assert.NotEmpty(t, it.ID)

	// Get.
	got, err := s.GetItem(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, "Metroid Prime", got.Title)
	assert.Equal(t, "GameCube", got.Platform)
	assert.Equal(t, domain.CategoryVideoGame, got.Category)
	require.NotNil(t, got.BuyPrice)
	assert.InDelta(t, 12.50, *got.BuyPrice, 0.01)

	// Update.
	got.Title = "Metroid Prime (Player's Choice)"
	feeRate := 0.1
	got.FeeRate = &feeRate
	require.NoError(t, s.UpdateItem(ctx, got))

	updated, err := s.GetItem(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, "Metroid Prime (Player's Choice)", updated.Title)
	require.NotNil(t, updated.FeeRate)
	assert.InDelta(t, 0.1, *updated.FeeRate, 0.001)

	// Delete.
	require.NoError(t, s.DeleteItem(ctx, it.ID))
	_, err = s.GetItem(ctx, it.ID)
	assert.Error(t, err)
}

func TestPostgresStore_ListItems(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	c1 := testCollection(t, s, "Shelf A")
	c2 := testCollection(t, s, "Shelf B")

	for i := range 3 {
		it := testItem(c1.ID)
		it.Title = "Game " + string(rune('A'+i))
		require.NoError(t, s.CreateItem(ctx, it))
	}
	consoleItem := testItem(c2.ID)
	consoleItem.Title = "GameCube Console"
	consoleItem.Category = domain.CategoryConsole
	require.NoError(t, s.CreateItem(ctx, consoleItem))

	t.Run("no filters", func(t *testing.T) {
		items, total, err := s.ListItems(ctx, &store.ItemQuery{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		assert.Len(t, items, 4)
	})

	t.Run("by collection", func(t *testing.T) {
		items, total, err := s.ListItems(ctx, &store.ItemQuery{CollectionID: &c1.ID})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, items, 3)
	})

	t.Run("by category", func(t *testing.T) {
		cat := "console"
		items, total, err := s.ListItems(ctx, &store.ItemQuery{Category: &cat})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, "GameCube Console", items[0].Title)
	})

	t.Run("pagination total count is correct", func(t *testing.T) {
		items, total, err := s.ListItems(ctx, &store.ItemQuery{Limit: 2, Offset: 3})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		assert.Len(t, items, 1)
	})
}

func TestPostgresStore_UpdateItemEstimate(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	c := testCollection(t, s, "Estimates")
	it := testItem(c.ID)
	require.NoError(t, s.CreateItem(ctx, it))

	avg := 34.52
	at := time.Now().UTC().Truncate(time.Microsecond)
	require.NoError(t, s.UpdateItemEstimate(ctx, it.ID, &avg, "high", at))

	got, err := s.GetItem(ctx, it.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastAvgActive)
	assert.InDelta(t, 34.52, *got.LastAvgActive, 0.01)
	assert.Equal(t, "high", got.LastConfidence)
	require.NotNil(t, got.LastEstimatedAt)
}

func TestPostgresStore_SearchHistory(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	avg := 22.10
	for i := range 3 {
		r := &domain.SearchRecord{
			Query:      "query " + string(rune('a'+i)),
			Source:     "text",
			SampleSize: 10 + i,
			AvgActive:  &avg,
			Confidence: "medium",
		}
		require.NoError(t, s.InsertSearchRecord(ctx, r))
		assert.NotEmpty(t, r.ID)
	}

	records, err := s.ListSearchHistory(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	// Most recent first.
	assert.Equal(t, "query c", records[0].Query)

	removed, err := s.ClearSearchHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	records, err = s.ListSearchHistory(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestPostgresStore_Snapshots(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	c := testCollection(t, s, "History")
	it := testItem(c.ID)
	require.NoError(t, s.CreateItem(ctx, it))

	avg := 30.0
	median := 29.5
	for i := range 3 {
		snap := &domain.PriceSnapshot{
			ItemID:       it.ID,
			SampleSize:   20,
			CleanedCount: 18,
			AvgActive:    &avg,
			MedianActive: &median,
			Confidence:   "high",
			TakenAt:      time.Now().UTC().Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, s.InsertSnapshot(ctx, snap))
		assert.NotEmpty(t, snap.ID)
	}

	snaps, err := s.ListSnapshots(ctx, it.ID, 10)
	require.NoError(t, err)
	assert.Len(t, snaps, 3)

	// Deleting the item cascades to its snapshots.
	require.NoError(t, s.DeleteItem(ctx, it.ID))
	snaps, err = s.ListSnapshots(ctx, it.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, snaps)
}

func TestPostgresStore_JobRuns(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	id, err := s.InsertJobRun(ctx, "refresh")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.NoError(t, s.CompleteJobRun(ctx, id, "completed", "", 7))

	runs, err := s.ListJobRuns(ctx, "refresh", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "completed", runs[0].Status)
	assert.Equal(t, 7, runs[0].RowsAffected)
	require.NotNil(t, runs[0].CompletedAt)

	latest, err := s.ListLatestJobRuns(ctx)
	require.NoError(t, err)
	assert.Len(t, latest, 1)
}

func TestPostgresStore_RecoverStaleJobRuns(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	_, err := s.InsertJobRun(ctx, "refresh")
	require.NoError(t, err)

	// A fresh run is not stale.
	recovered, err := s.RecoverStaleJobRuns(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 0, recovered)

	// With a zero cutoff everything running counts as stale.
	recovered, err = s.RecoverStaleJobRuns(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)

	runs, err := s.ListJobRuns(ctx, "refresh", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "crashed", runs[0].Status)
}
