package client

import (
	"context"

	domain "github.com/jcloud242/resale-radar/pkg/types"
)

// ListCollections returns all collections.
func (c *Client) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	var collections []domain.Collection
	if err := c.get(ctx, "/api/v1/collections", &collections); err != nil {
		return nil, err
	}
	return collections, nil
}

// GetCollection returns a single collection by ID.
func (c *Client) GetCollection(ctx context.Context, id string) (*domain.Collection, error) {
	var col domain.Collection
	if err := c.get(ctx, "/api/v1/collections/"+id, &col); err != nil {
		return nil, err
	}
	return &col, nil
}

// CreateCollection creates a new collection with the given name.
func (c *Client) CreateCollection(ctx context.Context, name string) (*domain.Collection, error) {
	var created domain.Collection
	body := map[string]string{"name": name}
	if err := c.post(ctx, "/api/v1/collections", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// RenameCollection renames an existing collection.
func (c *Client) RenameCollection(ctx context.Context, id, name string) (*domain.Collection, error) {
	var updated domain.Collection
	body := map[string]string{"name": name}
	if err := c.put(ctx, "/api/v1/collections/"+id, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCollection deletes a collection by ID.
func (c *Client) DeleteCollection(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/collections/"+id, nil)
}
