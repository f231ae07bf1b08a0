package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/jcloud242/resale-radar/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// CreateCollection inserts a new collection.
func (s *PostgresStore) CreateCollection(ctx context.Context, c *domain.Collection) error {
	return s.pool.QueryRow(ctx, queryCreateCollection, c.Name).Scan(
		&c.ID, &c.CreatedAt, &c.UpdatedAt,
	)
}

// GetCollection retrieves a collection by ID.
func (s *PostgresStore) GetCollection(ctx context.Context, id string) (*domain.Collection, error) {
	c := &domain.Collection{}
	err := s.pool.QueryRow(ctx, queryGetCollection, id).Scan(
		&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListCollections returns all collections ordered by name.
func (s *PostgresStore) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	rows, err := s.pool.Query(ctx, queryListCollections)
	if err != nil {
		return nil, fmt.Errorf("querying collections: %w", err)
	}
	defer rows.Close()

	var collections []domain.Collection
	for rows.Next() {
		var c domain.Collection
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning collection: %w", err)
		}
		collections = append(collections, c)
	}
	return collections, rows.Err()
}

// RenameCollection updates a collection's name.
func (s *PostgresStore) RenameCollection(ctx context.Context, id, name string) error {
	tag, err := s.pool.Exec(ctx, queryRenameCollection, id, name)
	if err != nil {
		return fmt.Errorf("renaming collection: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteCollection deletes a collection. Items in it cascade.
func (s *PostgresStore) DeleteCollection(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, queryDeleteCollection, id)
	if err != nil {
		return fmt.Errorf("deleting collection: %w", err)
	}
	return nil
}

// CreateItem inserts a new item into a collection.
func (s *PostgresStore) CreateItem(ctx context.Context, it *domain.Item) error {
	args := pgx.NamedArgs{
		"collection_id":     it.CollectionID,
		"title":             it.Title,
		"platform":          it.Platform,
		"category":          string(it.Category),
		"upc":               it.UPC,
		"query":             it.Query,
		"buy_price":         it.BuyPrice,
		"fee_rate":          it.FeeRate,
		"shipping_estimate": it.ShippingEstimate,
	}

	return s.pool.QueryRow(ctx, queryCreateItem, args).Scan(
		&it.ID, &it.CreatedAt, &it.UpdatedAt,
	)
}

// GetItem retrieves an item by ID.
func (s *PostgresStore) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	it := &domain.Item{}
	if err := scanItem(s.pool.QueryRow(ctx, queryGetItem, id), it); err != nil {
		return nil, err
	}
	return it, nil
}

// ListItems queries items with optional filters, returning results and total count.
func (s *PostgresStore) ListItems(
	ctx context.Context,
	opts *ItemQuery,
) ([]domain.Item, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting items: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := scanItemRow(rows, &it); err != nil {
			return nil, 0, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, it)
	}

	return items, total, rows.Err()
}

// UpdateItem updates all mutable fields of an item.
func (s *PostgresStore) UpdateItem(ctx context.Context, it *domain.Item) error {
	args := pgx.NamedArgs{
		"id":                it.ID,
		"collection_id":     it.CollectionID,
		"title":             it.Title,
		"platform":          it.Platform,
		"category":          string(it.Category),
		"upc":               it.UPC,
		"query":             it.Query,
		"buy_price":         it.BuyPrice,
		"fee_rate":          it.FeeRate,
		"shipping_estimate": it.ShippingEstimate,
	}

	tag, err := s.pool.Exec(ctx, queryUpdateItem, args)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteItem deletes an item. Its snapshots cascade.
func (s *PostgresStore) DeleteItem(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, queryDeleteItem, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}

// UpdateItemEstimate writes the denormalized last-estimate summary.
func (s *PostgresStore) UpdateItemEstimate(
	ctx context.Context,
	id string,
	avgActive *float64,
	confidence string,
	estimatedAt time.Time,
) error {
	_, err := s.pool.Exec(ctx, queryUpdateItemEstimate, id, avgActive, confidence, estimatedAt)
	if err != nil {
		return fmt.Errorf("updating item estimate: %w", err)
	}
	return nil
}

// InsertSearchRecord appends an entry to the search history.
func (s *PostgresStore) InsertSearchRecord(ctx context.Context, r *domain.SearchRecord) error {
	if r.SearchedAt.IsZero() {
		r.SearchedAt = time.Now().UTC()
	}
	return s.pool.QueryRow(ctx, queryInsertSearchRecord,
		r.Query, r.Source, r.SampleSize, r.AvgActive, r.Confidence, r.SearchedAt,
	).Scan(&r.ID)
}

// ListSearchHistory returns the most recent search records.
func (s *PostgresStore) ListSearchHistory(
	ctx context.Context,
	limit int,
) ([]domain.SearchRecord, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.pool.Query(ctx, queryListSearchHistory, limit)
	if err != nil {
		return nil, fmt.Errorf("querying search history: %w", err)
	}
	defer rows.Close()

	var records []domain.SearchRecord
	for rows.Next() {
		var r domain.SearchRecord
		if err := rows.Scan(
			&r.ID, &r.Query, &r.Source, &r.SampleSize,
			&r.AvgActive, &r.Confidence, &r.SearchedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning search record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// ClearSearchHistory deletes all search records and returns how many were removed.
func (s *PostgresStore) ClearSearchHistory(ctx context.Context) (int, error) {
	tag, err := s.pool.Exec(ctx, queryClearSearchHistory)
	if err != nil {
		return 0, fmt.Errorf("clearing search history: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// InsertSnapshot records one estimate run for an item.
func (s *PostgresStore) InsertSnapshot(ctx context.Context, snap *domain.PriceSnapshot) error {
	if snap.TakenAt.IsZero() {
		snap.TakenAt = time.Now().UTC()
	}
	return s.pool.QueryRow(ctx, queryInsertSnapshot,
		snap.ItemID, snap.SampleSize, snap.CleanedCount,
		snap.AvgActive, snap.MedianActive, snap.Confidence, snap.TakenAt,
	).Scan(&snap.ID)
}

// ListSnapshots returns the most recent snapshots for an item.
func (s *PostgresStore) ListSnapshots(
	ctx context.Context,
	itemID string,
	limit int,
) ([]domain.PriceSnapshot, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.pool.Query(ctx, queryListSnapshots, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []domain.PriceSnapshot
	for rows.Next() {
		var snap domain.PriceSnapshot
		if err := rows.Scan(
			&snap.ID, &snap.ItemID, &snap.SampleSize, &snap.CleanedCount,
			&snap.AvgActive, &snap.MedianActive, &snap.Confidence, &snap.TakenAt,
		); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// InsertJobRun records the start of a background job and returns its ID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run finished with its outcome.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns recent runs of a named job.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	return s.queryJobRuns(ctx, queryListJobRuns, jobName, limit)
}

// ListLatestJobRuns returns the most recent run of each job.
func (s *PostgresStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	return s.queryJobRuns(ctx, queryListLatestJobRuns)
}

// RecoverStaleJobRuns marks runs stuck in 'running' older than the cutoff
// as crashed. Returns the number of runs recovered.
func (s *PostgresStore) RecoverStaleJobRuns(
	ctx context.Context,
	olderThan time.Duration,
) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	tag, err := s.pool.Exec(ctx, queryMarkStaleJobRunsCrashed, cutoff)
	if err != nil {
		return 0, fmt.Errorf("recovering stale job runs: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// queryJobRuns is a helper for job run queries.
func (s *PostgresStore) queryJobRuns(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanItem scans a full item row.
func scanItem(row scannable, it *domain.Item) error {
	return row.Scan(
		&it.ID, &it.CollectionID, &it.Title, &it.Platform, &it.Category,
		&it.UPC, &it.Query, &it.BuyPrice,
		&it.FeeRate, &it.ShippingEstimate,
		&it.LastAvgActive, &it.LastConfidence, &it.LastEstimatedAt,
		&it.CreatedAt, &it.UpdatedAt,
	)
}

// scanItemRow scans an item from pgx.Rows (same fields).
func scanItemRow(rows pgx.Rows, it *domain.Item) error {
	return rows.Scan(
		&it.ID, &it.CollectionID, &it.Title, &it.Platform, &it.Category,
		&it.UPC, &it.Query, &it.BuyPrice,
		&it.FeeRate, &it.ShippingEstimate,
		&it.LastAvgActive, &it.LastConfidence, &it.LastEstimatedAt,
		&it.CreatedAt, &it.UpdatedAt,
	)
}
