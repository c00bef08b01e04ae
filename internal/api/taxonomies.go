package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"game-library/internal/domain"
)

// Taxonomy names one flat tag resource. The constant values double as the
// REST resource path segments.
type Taxonomy string

const (
	TaxonomyThemes             Taxonomy = "themes"
	TaxonomyPlatforms          Taxonomy = "platforms"
	TaxonomyGameModes          Taxonomy = "game-modes"
	TaxonomyPlayerPerspectives Taxonomy = "player-perspectives"
	TaxonomyGameEngines        Taxonomy = "game-engines"
	TaxonomyFranchises         Taxonomy = "franchises"
	TaxonomySeries             Taxonomy = "series"
	TaxonomyKeywords           Taxonomy = "keywords"
	TaxonomyDevelopers         Taxonomy = "developers"
	TaxonomyPublishers         Taxonomy = "publishers"
)

// Taxonomies is every tag resource, in display order.
var Taxonomies = []Taxonomy{
	TaxonomyThemes,
	TaxonomyPlatforms,
	TaxonomyGameModes,
	TaxonomyPlayerPerspectives,
	TaxonomyGameEngines,
	TaxonomyFranchises,
	TaxonomySeries,
	TaxonomyKeywords,
	TaxonomyDevelopers,
	TaxonomyPublishers,
}

// responseKey is the resource's wrapping key: "themes" for lists,
// "theme" for single entities.
func (t Taxonomy) responseKey() string {
	key := strings.ReplaceAll(string(t), "-", "")
	switch t {
	case TaxonomyThemes:
		return "themes"
	case TaxonomyGameModes:
		return "gameModes"
	case TaxonomyPlayerPerspectives:
		return "playerPerspectives"
	case TaxonomyGameEngines:
		return "gameEngines"
	default:
		return key
	}
}

func (t Taxonomy) singularKey() string {
	if t == TaxonomySeries {
		return "series"
	}
	key := t.responseKey()
	if strings.HasSuffix(key, "ies") {
		return strings.TrimSuffix(key, "ies") + "y"
	}
	return strings.TrimSuffix(key, "s")
}

// ListTaxonomy fetches every tag of one taxonomy.
func (c *Client) ListTaxonomy(ctx context.Context, taxonomy Taxonomy) ([]domain.Tag, error) {
	var raw map[string]json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/"+string(taxonomy), nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", taxonomy, err)
	}

	payload, ok := raw[taxonomy.responseKey()]
	if !ok {
		return nil, fmt.Errorf("response for %s missing %q key", taxonomy, taxonomy.responseKey())
	}

	var tags []domain.Tag
	if err := json.Unmarshal(payload, &tags); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", taxonomy, err)
	}
	return tags, nil
}

// RenameTag updates a tag's display name and returns the server's copy.
func (c *Client) RenameTag(ctx context.Context, taxonomy Taxonomy, id, name string) (*domain.Tag, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("tag name cannot be empty")
	}

	var raw map[string]json.RawMessage
	path := "/" + string(taxonomy) + "/" + url.PathEscape(id)
	body := domain.Tag{ID: id, Name: name}
	if err := c.do(ctx, http.MethodPut, path, body, &raw); err != nil {
		return nil, fmt.Errorf("failed to rename %s tag: %w", taxonomy, err)
	}

	payload, ok := raw[taxonomy.singularKey()]
	if !ok {
		return nil, fmt.Errorf("response for %s missing %q key", taxonomy, taxonomy.singularKey())
	}

	var tag domain.Tag
	if err := json.Unmarshal(payload, &tag); err != nil {
		return nil, fmt.Errorf("failed to decode %s tag: %w", taxonomy, err)
	}
	return &tag, nil
}

// DeleteTag removes a tag from its taxonomy.
func (c *Client) DeleteTag(ctx context.Context, taxonomy Taxonomy, id string) error {
	path := "/" + string(taxonomy) + "/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete %s tag: %w", taxonomy, err)
	}
	return nil
}
