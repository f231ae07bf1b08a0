package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByTitle       = "title"
	orderByAvgActive   = "last_avg_active"
	orderByEstimatedAt = "last_estimated_at"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByTitle:       "title ASC",
	orderByAvgActive:   "last_avg_active DESC NULLS LAST",
	orderByEstimatedAt: "last_estimated_at DESC NULLS LAST",
}

const defaultOrderBy = "created_at DESC"

const baseItemsSelect = `SELECT id, collection_id, title, COALESCE(platform, ''), category,
	COALESCE(upc, ''), COALESCE(query, ''), buy_price,
	fee_rate, shipping_estimate,
	last_avg_active, COALESCE(last_confidence, ''), last_estimated_at,
	created_at, updated_at
FROM items`

const countItemsSelect = "SELECT COUNT(*) FROM items"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for an item query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters.
func (q *ItemQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.CollectionID != nil {
		conditions = append(conditions, fmt.Sprintf("collection_id = $%d", paramIdx))
		args = append(args, *q.CollectionID)
		paramIdx++
	}

	if q.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", paramIdx))
		args = append(args, *q.Category)
		paramIdx++
	}

	if q.Platform != nil {
		conditions = append(conditions, fmt.Sprintf("platform = $%d", paramIdx))
		args = append(args, *q.Platform)
		paramIdx++
	}

	if q.Confidence != nil {
		conditions = append(conditions, fmt.Sprintf("last_confidence = $%d", paramIdx))
		args = append(args, *q.Confidence)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	// Order by
	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	// Limit
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseItemsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countItemsSelect + whereClause

	return dataSQL, countSQL, args
}
