package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"game-library/internal/domain"
)

// ListCollections fetches every collection.
func (c *Client) ListCollections(ctx context.Context) ([]*domain.Collection, error) {
	var out struct {
		Collections []*domain.Collection `json:"collections"`
	}
	if err := c.do(ctx, http.MethodGet, "/collections", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return out.Collections, nil
}

// CreateCollection creates a collection and returns the server's copy.
func (c *Client) CreateCollection(ctx context.Context, collection *domain.Collection) (*domain.Collection, error) {
	var out struct {
		Collection *domain.Collection `json:"collection"`
	}
	if err := c.do(ctx, http.MethodPost, "/collections", collection, &out); err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}
	return out.Collection, nil
}

// UpdateCollection saves edits and returns the updated entity.
func (c *Client) UpdateCollection(ctx context.Context, collection *domain.Collection) (*domain.Collection, error) {
	if err := collection.Validate(); err != nil {
		return nil, err
	}

	var out struct {
		Collection *domain.Collection `json:"collection"`
	}
	path := "/collections/" + url.PathEscape(collection.ID)
	if err := c.do(ctx, http.MethodPut, path, collection, &out); err != nil {
		return nil, fmt.Errorf("failed to update collection: %w", err)
	}
	return out.Collection, nil
}

// DeleteCollection removes a collection.
func (c *Client) DeleteCollection(ctx context.Context, id string) error {
	path := "/collections/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	return nil
}

// ListCategories fetches every category.
func (c *Client) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	var out struct {
		Categories []*domain.Category `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return out.Categories, nil
}

// UpdateCategory saves edits; categories are addressed by title on the
// wire.
func (c *Client) UpdateCategory(ctx context.Context, originalTitle string, category *domain.Category) (*domain.Category, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}

	var out struct {
		Category *domain.Category `json:"category"`
	}
	path := "/categories/" + url.PathEscape(originalTitle)
	if err := c.do(ctx, http.MethodPut, path, category, &out); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return out.Category, nil
}

// DeleteCategory removes a category by title.
func (c *Client) DeleteCategory(ctx context.Context, title string) error {
	path := "/categories/" + url.PathEscape(title)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// CleanupCategory deletes a category that may have become unused, e.g.
// after its last genre tag was removed from a game. A 409 means the
// category is still in use and is an expected, non-error outcome.
func (c *Client) CleanupCategory(ctx context.Context, title string) {
	if err := c.DeleteCategory(ctx, title); err != nil {
		if IsConflict(err) {
			slog.Debug("category still in use, skipping cleanup", "category", title)
			return
		}
		slog.Debug("best-effort category cleanup failed", "category", title, "error", err)
	}
}

// RefreshCategories asks the server to rebuild category metadata. Slow
// endpoint, bounded at 90 seconds.
func (c *Client) RefreshCategories(ctx context.Context) error {
	if err := c.doLong(ctx, http.MethodPost, "/categories/refresh", nil, nil); err != nil {
		return fmt.Errorf("failed to refresh categories: %w", err)
	}
	return nil
}
