package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-library/internal/domain"
)

type memStateStore struct {
	states map[string]ViewState
}

func newMemStateStore() *memStateStore {
	return &memStateStore{states: make(map[string]ViewState)}
}

func (s *memStateStore) SaveViewState(prefix string, st ViewState) error {
	s.states[prefix] = st
	return nil
}

func (s *memStateStore) LoadViewState(prefix string) (ViewState, bool, error) {
	st, ok := s.states[prefix]
	return st, ok, nil
}

func itemTitles(v *View) []string {
	items := v.Items()
	titles := make([]string, len(items))
	for i, g := range items {
		titles[i] = g.Title
	}
	return titles
}

func TestViewDeriveFilterAndSort(t *testing.T) {
	v := NewView("library", nil)
	v.Loaded([]*domain.Game{
		{ID: "1", Title: "Zelda", Year: intPtr(1998)},
		{ID: "2", Title: "Mario", Year: intPtr(1985)},
	})

	// all + title ascending → alphabetical
	assert.Equal(t, []string{"Mario", "Zelda"}, itemTitles(v))

	v.SetSort(SortYear, true)
	assert.Equal(t, []string{"Mario", "Zelda"}, itemTitles(v))

	v.SetSort(SortYear, false)
	assert.Equal(t, []string{"Zelda", "Mario"}, itemTitles(v))

	v.SetSelection(SelectYear(intPtr(1998)))
	assert.Equal(t, []string{"Zelda"}, itemTitles(v))
}

func TestViewMemoization(t *testing.T) {
	v := NewView("library", nil)
	v.Loaded([]*domain.Game{
		{ID: "1", Title: "Zelda"},
		{ID: "2", Title: "Mario"},
	})

	first := v.Items()
	second := v.Items()
	assert.Same(t, &first[0], &second[0], "unchanged inputs must reuse the derived slice")

	v.SetSort(SortTitle, false)
	assert.Equal(t, []string{"Zelda", "Mario"}, itemTitles(v))
}

func TestViewApplyUpdateInPlace(t *testing.T) {
	v := NewView("library", nil)
	v.Loaded([]*domain.Game{
		{ID: "1", Title: "Zelda"},
		{ID: "2", Title: "Mario"},
		{ID: "3", Title: "Metroid"},
	})

	ok := v.ApplyUpdate(&domain.Game{ID: "2", Title: "Mario 64"})
	require.True(t, ok)

	// pre-sort order of the raw list is unchanged
	raw := v.Games()
	assert.Equal(t, []string{"1", "2", "3"}, []string{raw[0].ID, raw[1].ID, raw[2].ID})
	assert.Equal(t, "Mario 64", raw[1].Title)

	assert.False(t, v.ApplyUpdate(&domain.Game{ID: "99", Title: "Ghost"}))
	assert.False(t, v.ApplyUpdate(nil))
}

func TestViewApplyDelete(t *testing.T) {
	v := NewView("library", nil)
	v.Loaded([]*domain.Game{
		{ID: "1", Title: "Zelda"},
		{ID: "2", Title: "Mario"},
	})

	assert.True(t, v.ApplyDelete("1"))
	assert.Equal(t, []string{"Mario"}, itemTitles(v))

	assert.False(t, v.ApplyDelete("1"))
}

func TestViewApplyAdd(t *testing.T) {
	v := NewView("library", nil)
	v.Loaded([]*domain.Game{{ID: "1", Title: "Zelda"}})

	v.ApplyAdd(&domain.Game{ID: "2", Title: "Mario"})
	assert.Equal(t, []string{"Mario", "Zelda"}, itemTitles(v))
}

func TestViewRevealGate(t *testing.T) {
	v := NewView("library", nil)
	assert.False(t, v.Revealed())

	v.Begin()
	assert.Equal(t, PhaseLoading, v.Phase())
	assert.False(t, v.Revealed())

	v.Loaded(nil)
	assert.False(t, v.Revealed(), "reveal waits for the settle ticks")

	v.Tick()
	assert.False(t, v.Revealed())

	v.Tick()
	assert.True(t, v.Revealed())
}

func TestViewFailedLeavesEmptyList(t *testing.T) {
	v := NewView("library", nil)
	v.Begin()
	v.Failed()

	assert.Equal(t, PhaseReady, v.Phase())
	assert.Empty(t, v.Items())
}

func TestViewPersistsSelection(t *testing.T) {
	store := newMemStateStore()

	v := NewView("library", store)
	v.SetSelection(SelectGenre("RPG"))
	v.SetSort(SortYear, false)

	restored := NewView("library", store)
	assert.Equal(t, SelectGenre("RPG"), restored.Selection())
	assert.Equal(t, SortYear, restored.SortField())
	assert.False(t, restored.Ascending())

	// a different prefix starts from defaults
	fresh := NewView("collections", store)
	assert.Equal(t, SelectAll(), fresh.Selection())
	assert.Equal(t, SortTitle, fresh.SortField())
	assert.True(t, fresh.Ascending())
}

func TestViewCollectionFilter(t *testing.T) {
	v := NewView("library", nil)
	v.Loaded([]*domain.Game{
		{ID: "1", Title: "Zelda"},
		{ID: "2", Title: "Mario"},
	})

	v.SetSelection(SelectCollection("c1"))
	assert.Empty(t, v.Items(), "no member set installed yet")

	v.SetCollectionMembers(map[string]bool{"2": true})
	assert.Equal(t, []string{"Mario"}, itemTitles(v))
}
