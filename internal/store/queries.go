package store

// SQL query constants organized by entity.
// All SQL lives here — PostgresStore methods reference these constants.

// Collection queries.
const (
	queryCreateCollection = `
		INSERT INTO collections (name, created_at, updated_at)
		VALUES ($1, now(), now())
		RETURNING id, created_at, updated_at`

	queryGetCollection = `
		SELECT id, name, created_at, updated_at
		FROM collections
		WHERE id = $1`

	queryListCollections = `
		SELECT id, name, created_at, updated_at
		FROM collections
		ORDER BY name`

	queryRenameCollection = `
		UPDATE collections SET
			name = $2,
			updated_at = now()
		WHERE id = $1`

	queryDeleteCollection = `DELETE FROM collections WHERE id = $1`
)

// Item queries.
const (
	queryCreateItem = `
		INSERT INTO items (
			collection_id, title, platform, category, upc, query,
			buy_price, fee_rate, shipping_estimate, created_at, updated_at
		) VALUES (
			@collection_id, @title, @platform, @category, @upc, @query,
			@buy_price, @fee_rate, @shipping_estimate, now(), now()
		)
		RETURNING id, created_at, updated_at`

	queryGetItem = `
		SELECT id, collection_id, title, COALESCE(platform, ''), category,
			COALESCE(upc, ''), COALESCE(query, ''), buy_price,
			fee_rate, shipping_estimate,
			last_avg_active, COALESCE(last_confidence, ''), last_estimated_at,
			created_at, updated_at
		FROM items
		WHERE id = $1`

	queryUpdateItem = `
		UPDATE items SET
			collection_id = @collection_id,
			title = @title,
			platform = @platform,
			category = @category,
			upc = @upc,
			query = @query,
			buy_price = @buy_price,
			fee_rate = @fee_rate,
			shipping_estimate = @shipping_estimate,
			updated_at = now()
		WHERE id = @id`

	queryDeleteItem = `DELETE FROM items WHERE id = $1`

	queryUpdateItemEstimate = `
		UPDATE items SET
			last_avg_active = $2,
			last_confidence = $3,
			last_estimated_at = $4,
			updated_at = now()
		WHERE id = $1`
)

// Search history queries.
const (
	queryInsertSearchRecord = `
		INSERT INTO search_history (query, source, sample_size, avg_active, confidence, searched_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		RETURNING id`

	queryListSearchHistory = `
		SELECT id, query, source, sample_size, avg_active,
			COALESCE(confidence, ''), searched_at
		FROM search_history
		ORDER BY searched_at DESC
		LIMIT $1`

	queryClearSearchHistory = `DELETE FROM search_history`
)

// Snapshot queries.
const (
	queryInsertSnapshot = `
		INSERT INTO price_snapshots (
			item_id, sample_size, cleaned_count, avg_active, median_active,
			confidence, taken_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	queryListSnapshots = `
		SELECT id, item_id, sample_size, cleaned_count, avg_active,
			median_active, confidence, taken_at
		FROM price_snapshots
		WHERE item_id = $1
		ORDER BY taken_at DESC
		LIMIT $2`
)

// Refresh bookkeeping queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name)
		VALUES ($1)
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = NULLIF($3, ''),
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryListLatestJobRuns = `
		SELECT DISTINCT ON (job_name)
			id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		ORDER BY job_name, started_at DESC`

	queryMarkStaleJobRunsCrashed = `
		UPDATE job_runs SET
			status       = 'crashed',
			completed_at = now()
		WHERE status = 'running' AND started_at < $1`
)
