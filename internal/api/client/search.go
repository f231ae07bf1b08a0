package client

import (
	"context"
	"strconv"
	"time"

	domain "github.com/jcloud242/resale-radar/pkg/types"
)

// SearchRequest mirrors the search endpoint body.
type SearchRequest struct {
	Query      string            `json:"query"`
	CategoryID string            `json:"category_id,omitempty"`
	Limit      int               `json:"limit,omitempty"`
	Sort       string            `json:"sort,omitempty"`
	Filters    map[string]string `json:"filters,omitempty"`
}

// SearchResult is the search endpoint response.
type SearchResult struct {
	Listings []domain.Listing `json:"listings"`
	Total    int              `json:"total"`
	HasMore  bool             `json:"has_more"`
}

// Search runs a live marketplace search through the API server.
func (c *Client) Search(ctx context.Context, req *SearchRequest) (*SearchResult, error) {
	var result SearchResult
	if err := c.post(ctx, "/api/v1/search", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// QuotaState is the quota endpoint response.
type QuotaState struct {
	DailyLimit int64     `json:"daily_limit"`
	DailyUsed  int64     `json:"daily_used"`
	Remaining  int64     `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`

	Remote *RemoteQuota `json:"remote,omitempty"`
}

// RemoteQuota is the marketplace-side quota state.
type RemoteQuota struct {
	Limit     int64     `json:"limit"`
	Remaining int64     `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
}

// GetQuota returns the current marketplace API quota state.
func (c *Client) GetQuota(ctx context.Context) (*QuotaState, error) {
	var q QuotaState
	if err := c.get(ctx, "/api/v1/quota", &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// TriggerRefresh starts an immediate refresh run and returns the number
// of items re-estimated.
func (c *Client) TriggerRefresh(ctx context.Context) (int, error) {
	var resp struct {
		Status         string `json:"status"`
		ItemsRefreshed int    `json:"items_refreshed"`
	}
	if err := c.post(ctx, "/api/v1/refresh", nil, &resp); err != nil {
		return 0, err
	}
	return resp.ItemsRefreshed, nil
}

// ListHistory returns recent search history entries.
func (c *Client) ListHistory(ctx context.Context, limit int) ([]domain.SearchRecord, error) {
	path := "/api/v1/history"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var records []domain.SearchRecord
	if err := c.get(ctx, path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ClearHistory deletes all search history and returns the removed count.
func (c *Client) ClearHistory(ctx context.Context) (int, error) {
	var resp struct {
		Removed int `json:"removed"`
	}
	if err := c.del(ctx, "/api/v1/history", &resp); err != nil {
		return 0, err
	}
	return resp.Removed, nil
}
