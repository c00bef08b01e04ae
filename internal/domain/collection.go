package domain

import (
	"errors"
	"strings"
)

// Collection is a user-curated grouping of games.
type Collection struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Cover      string   `json:"cover,omitempty"`
	Background string   `json:"background,omitempty"`
	GameIDs    []string `json:"gameIds,omitempty"`
	GameCount  int      `json:"gameCount,omitempty"`
}

func (c *Collection) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return errors.New("collection id cannot be empty")
	}

	if strings.TrimSpace(c.Title) == "" {
		return errors.New("collection title cannot be empty")
	}

	return nil
}

// MemberSet builds the id lookup the collection filter runs against.
func (c *Collection) MemberSet() map[string]bool {
	set := make(map[string]bool, len(c.GameIDs))
	for _, id := range c.GameIDs {
		set[id] = true
	}
	return set
}

// Category is a server-managed grouping, identified by title on the wire
// but reconciled by id locally.
type Category struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Cover      string `json:"cover,omitempty"`
	Background string `json:"background,omitempty"`
	GameCount  int    `json:"gameCount,omitempty"`
}

func (c *Category) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return errors.New("category title cannot be empty")
	}

	return nil
}
