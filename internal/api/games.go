package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"game-library/internal/domain"
)

// ListGames fetches the whole library, title-sorted by the server.
func (c *Client) ListGames(ctx context.Context) ([]*domain.Game, error) {
	var out struct {
		Games []*domain.Game `json:"games"`
	}
	if err := c.do(ctx, http.MethodGet, "/libraries/library/games?sort=title", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return out.Games, nil
}

// CollectionGames fetches the games of one collection.
func (c *Client) CollectionGames(ctx context.Context, collectionID string) ([]*domain.Game, error) {
	var out struct {
		Games []*domain.Game `json:"games"`
	}
	path := "/collections/" + url.PathEscape(collectionID) + "/games"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list collection games: %w", err)
	}
	return out.Games, nil
}

// RecommendedSection is one themed shelf of the recommendations endpoint.
type RecommendedSection struct {
	Title string         `json:"title"`
	Games []*domain.Game `json:"games"`
}

// Recommended fetches the recommendation shelves. The endpoint can be
// slow, so the request is bounded at 90 seconds.
func (c *Client) Recommended(ctx context.Context) ([]RecommendedSection, error) {
	var out struct {
		Sections []RecommendedSection `json:"sections"`
	}
	if err := c.doLong(ctx, http.MethodGet, "/recommended", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to load recommendations: %w", err)
	}
	return out.Sections, nil
}

// CreateGame registers a new game and returns the server's copy.
func (c *Client) CreateGame(ctx context.Context, game *domain.Game) (*domain.Game, error) {
	var out struct {
		Game *domain.Game `json:"game"`
	}
	if err := c.do(ctx, http.MethodPost, "/games", game, &out); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return out.Game, nil
}

// UpdateGame saves edited metadata and returns the updated entity.
func (c *Client) UpdateGame(ctx context.Context, game *domain.Game) (*domain.Game, error) {
	if err := game.Validate(); err != nil {
		return nil, err
	}

	var out struct {
		Game *domain.Game `json:"game"`
	}
	path := "/games/" + url.PathEscape(game.ID)
	if err := c.do(ctx, http.MethodPut, path, game, &out); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}
	return out.Game, nil
}

// DeleteGame removes a game.
func (c *Client) DeleteGame(ctx context.Context, id string) error {
	path := "/games/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}

// ExecutableUpload is one file of an executables update: the label/path
// metadata plus the binary content.
type ExecutableUpload struct {
	Label    string
	Path     string
	Filename string
	Content  io.Reader
}

// UpdateExecutables replaces a game's registered executables. The request
// is multipart: one part per file plus a JSON metadata part describing
// the label/path pairs. Validation happens before anything is sent.
func (c *Client) UpdateExecutables(ctx context.Context, gameID string, uploads []ExecutableUpload) (*domain.Game, error) {
	if len(uploads) == 0 {
		return nil, errors.New("at least one executable is required")
	}
	for _, up := range uploads {
		if strings.TrimSpace(up.Label) == "" {
			return nil, errors.New("every executable needs a label")
		}
		if up.Content == nil {
			return nil, fmt.Errorf("executable %q has no file", up.Label)
		}
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	meta := make([]domain.Executable, 0, len(uploads))
	for _, up := range uploads {
		meta = append(meta, domain.Executable{Label: up.Label, Path: up.Path})
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("failed to encode executable metadata: %w", err)
	}
	if err := writer.WriteField("metadata", string(metaJSON)); err != nil {
		return nil, fmt.Errorf("failed to write metadata part: %w", err)
	}

	for _, up := range uploads {
		part, err := writer.CreateFormFile("files", up.Filename)
		if err != nil {
			return nil, fmt.Errorf("failed to create file part: %w", err)
		}
		if _, err := io.Copy(part, up.Content); err != nil {
			return nil, fmt.Errorf("failed to write file part: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart body: %w", err)
	}

	path := "/games/" + url.PathEscape(gameID) + "/executables"
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, &buf)
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

	var out struct {
		Game *domain.Game `json:"game"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return out.Game, nil
}
