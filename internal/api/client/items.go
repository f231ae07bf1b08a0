package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/jcloud242/resale-radar/pkg/types"
)

// ItemFilter narrows ListItems results.
type ItemFilter struct {
	CollectionID string
	Category     string
	Platform     string
	Confidence   string
	Limit        int
	Offset       int
}

type itemListResponse struct {
	Items []domain.Item `json:"items"`
	Total int           `json:"total"`
}

// ListItems returns tracked items matching the filter, plus the total
// match count before pagination.
func (c *Client) ListItems(ctx context.Context, filter *ItemFilter) ([]domain.Item, int, error) {
	path := "/api/v1/items"
	if filter != nil {
		q := url.Values{}
		if filter.CollectionID != "" {
			q.Set("collection_id", filter.CollectionID)
		}
		if filter.Category != "" {
			q.Set("category", filter.Category)
		}
		if filter.Platform != "" {
			q.Set("platform", filter.Platform)
		}
		if filter.Confidence != "" {
			q.Set("confidence", filter.Confidence)
		}
		if filter.Limit > 0 {
			q.Set("limit", strconv.Itoa(filter.Limit))
		}
		if filter.Offset > 0 {
			q.Set("offset", strconv.Itoa(filter.Offset))
		}
		if encoded := q.Encode(); encoded != "" {
			path += "?" + encoded
		}
	}

	var resp itemListResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Items, resp.Total, nil
}

// GetItem returns a single item by ID.
func (c *Client) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	var it domain.Item
	if err := c.get(ctx, "/api/v1/items/"+id, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// itemRequest contains only the fields the API accepts for create/update.
type itemRequest struct {
	Title            string          `json:"title,omitempty"`
	Platform         string          `json:"platform,omitempty"`
	Category         domain.Category `json:"category,omitempty"`
	UPC              string          `json:"upc,omitempty"`
	Query            string          `json:"query,omitempty"`
	BuyPrice         *float64        `json:"buy_price,omitempty"`
	FeeRate          *float64        `json:"fee_rate,omitempty"`
	ShippingEstimate *float64        `json:"shipping_estimate,omitempty"`
}

// CreateItem adds an item to a collection.
func (c *Client) CreateItem(ctx context.Context, collectionID string, it *domain.Item) (*domain.Item, error) {
	var created domain.Item
	req := itemRequest{
		Title:            it.Title,
		Platform:         it.Platform,
		Category:         it.Category,
		UPC:              it.UPC,
		Query:            it.Query,
		BuyPrice:         it.BuyPrice,
		FeeRate:          it.FeeRate,
		ShippingEstimate: it.ShippingEstimate,
	}
	path := fmt.Sprintf("/api/v1/collections/%s/items", collectionID)
	if err := c.post(ctx, path, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateItem updates an existing item.
func (c *Client) UpdateItem(ctx context.Context, it *domain.Item) (*domain.Item, error) {
	var updated domain.Item
	req := itemRequest{
		Title:            it.Title,
		Platform:         it.Platform,
		Category:         it.Category,
		UPC:              it.UPC,
		Query:            it.Query,
		BuyPrice:         it.BuyPrice,
		FeeRate:          it.FeeRate,
		ShippingEstimate: it.ShippingEstimate,
	}
	if err := c.put(ctx, "/api/v1/items/"+it.ID, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteItem deletes an item by ID.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/items/"+id, nil)
}

// GetItemSnapshots returns the value history for an item, newest first.
func (c *Client) GetItemSnapshots(ctx context.Context, id string, limit int) ([]domain.PriceSnapshot, error) {
	path := "/api/v1/items/" + id + "/snapshots"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var snaps []domain.PriceSnapshot
	if err := c.get(ctx, path, &snaps); err != nil {
		return nil, err
	}
	return snaps, nil
}
