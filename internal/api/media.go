package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"game-library/internal/domain"
)

// MediaKind distinguishes the two image slots an entity carries.
type MediaKind string

const (
	MediaCover      MediaKind = "cover"
	MediaBackground MediaKind = "background"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
}

// ValidateImageFilename rejects non-image files before any network call.
func ValidateImageFilename(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExtensions[ext] {
		return fmt.Errorf("%q is not a supported image type", filename)
	}
	return nil
}

// CacheBust appends a ?t=<ms> query parameter so the browser-side image
// cache refetches after an upload or delete.
func CacheBust(imageURL string) string {
	if imageURL == "" {
		return ""
	}
	sep := "?"
	if strings.Contains(imageURL, "?") {
		sep = "&"
	}
	return imageURL + sep + "t=" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// uploadMedia posts one image as multipart form data and returns the raw
// updated entity.
func (c *Client) uploadMedia(ctx context.Context, resource, id string, kind MediaKind, filename string, content io.Reader) (map[string]json.RawMessage, error) {
	if err := ValidateImageFilename(filename); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to write file part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart body: %w", err)
	}

	path := "/" + resource + "/" + url.PathEscape(id) + "/upload-" + string(kind)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, readError(resp)
	}

	var out map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return out, nil
}

func (c *Client) deleteMedia(ctx context.Context, resource, id string, kind MediaKind) (map[string]json.RawMessage, error) {
	var out map[string]json.RawMessage
	path := "/" + resource + "/" + url.PathEscape(id) + "/delete-" + string(kind)
	if err := c.do(ctx, http.MethodDelete, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeWrapped[T any](raw map[string]json.RawMessage, key string) (*T, error) {
	payload, ok := raw[key]
	if !ok {
		return nil, fmt.Errorf("response missing %q key", key)
	}
	var entity T
	if err := json.Unmarshal(payload, &entity); err != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", key, err)
	}
	return &entity, nil
}

// UploadGameMedia replaces a game's cover or background image and returns
// the updated game with its new image path.
func (c *Client) UploadGameMedia(ctx context.Context, gameID string, kind MediaKind, filename string, content io.Reader) (*domain.Game, error) {
	raw, err := c.uploadMedia(ctx, "games", gameID, kind, filename, content)
	if err != nil {
		return nil, fmt.Errorf("failed to upload game %s: %w", kind, err)
	}
	return decodeWrapped[domain.Game](raw, "game")
}

// DeleteGameMedia removes a game's cover or background image.
func (c *Client) DeleteGameMedia(ctx context.Context, gameID string, kind MediaKind) (*domain.Game, error) {
	raw, err := c.deleteMedia(ctx, "games", gameID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to delete game %s: %w", kind, err)
	}
	return decodeWrapped[domain.Game](raw, "game")
}

// UploadCollectionMedia replaces a collection's cover or background.
func (c *Client) UploadCollectionMedia(ctx context.Context, collectionID string, kind MediaKind, filename string, content io.Reader) (*domain.Collection, error) {
	raw, err := c.uploadMedia(ctx, "collections", collectionID, kind, filename, content)
	if err != nil {
		return nil, fmt.Errorf("failed to upload collection %s: %w", kind, err)
	}
	return decodeWrapped[domain.Collection](raw, "collection")
}

// DeleteCollectionMedia removes a collection's cover or background.
func (c *Client) DeleteCollectionMedia(ctx context.Context, collectionID string, kind MediaKind) (*domain.Collection, error) {
	raw, err := c.deleteMedia(ctx, "collections", collectionID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to delete collection %s: %w", kind, err)
	}
	return decodeWrapped[domain.Collection](raw, "collection")
}

// UploadCategoryMedia replaces a category's cover or background.
func (c *Client) UploadCategoryMedia(ctx context.Context, categoryTitle string, kind MediaKind, filename string, content io.Reader) (*domain.Category, error) {
	raw, err := c.uploadMedia(ctx, "categories", categoryTitle, kind, filename, content)
	if err != nil {
		return nil, fmt.Errorf("failed to upload category %s: %w", kind, err)
	}
	return decodeWrapped[domain.Category](raw, "category")
}
