package domain

import (
	"encoding/json"
	"strings"
)

// Tag is the canonical form of every taxonomy value attached to a game
// (genres, themes, platforms, game modes, perspectives, engines, keywords,
// developers, publishers, franchises, series).
type Tag struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// TagList normalizes the heterogeneous shapes the server emits for tag
// fields. Historical payloads contain a bare string, an array of strings,
// a single {id,name} object, or an array of {id,name} objects; all of them
// decode into a flat []Tag so nothing past the API boundary branches on
// shape again.
type TagList []Tag

func (tl *TagList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*tl = nil
		return nil
	}

	// bare string
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			*tl = TagList{}
			return nil
		}
		*tl = TagList{{Name: s}}
		return nil
	}

	// single object
	var one Tag
	if err := json.Unmarshal(data, &one); err == nil && one.Name != "" {
		*tl = TagList{one}
		return nil
	}

	// array of strings or objects, possibly mixed
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(TagList, 0, len(raw))
	for _, item := range raw {
		var name string
		if err := json.Unmarshal(item, &name); err == nil {
			if name != "" {
				out = append(out, Tag{Name: name})
			}
			continue
		}
		var tag Tag
		if err := json.Unmarshal(item, &tag); err != nil {
			return err
		}
		if tag.Name != "" || tag.ID != "" {
			out = append(out, tag)
		}
	}
	*tl = out
	return nil
}

// Names returns the label set in payload order.
func (tl TagList) Names() []string {
	names := make([]string, 0, len(tl))
	for _, t := range tl {
		names = append(names, t.Name)
	}
	return names
}

// Contains reports an exact, case-sensitive name match.
func (tl TagList) Contains(name string) bool {
	for _, t := range tl {
		if t.Name == name {
			return true
		}
	}
	return false
}
