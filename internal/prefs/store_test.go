package prefs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-library/internal/catalog"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenFailsOnUnusablePath(t *testing.T) {
	// a directory is not a valid database file, so setup statements fail
	store, err := Open(t.TempDir())
	require.Error(t, err)
	assert.Nil(t, store)
}

func TestStoreGetSet(t *testing.T) {
	store := testStore(t)

	_, ok, err := store.Get(KeyCoverSize)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(KeyCoverSize, "large"))

	value, ok, err := store.Get(KeyCoverSize)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "large", value)

	// overwrite
	require.NoError(t, store.Set(KeyCoverSize, "small"))
	value, _, err = store.Get(KeyCoverSize)
	require.NoError(t, err)
	assert.Equal(t, "small", value)
}

func TestStoreJSONRoundTrip(t *testing.T) {
	store := testStore(t)

	visible := map[string]bool{"Title": true, "Year": false}
	require.NoError(t, store.SetJSON(KeyTableColumnVisibility, visible))

	var got map[string]bool
	ok, err := store.GetJSON(KeyTableColumnVisibility, &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, visible, got)

	libraries := []string{"library"}
	require.NoError(t, store.SetJSON(KeyVisibleLibraries, libraries))

	var gotLibraries []string
	ok, err = store.GetJSON(KeyVisibleLibraries, &gotLibraries)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, libraries, gotLibraries)
}

func TestStoreViewState(t *testing.T) {
	store := testStore(t)

	year := 1998
	st := catalog.ViewState{
		Selection: catalog.SelectYear(&year),
		SortField: catalog.SortReleaseDate,
		Ascending: false,
	}
	require.NoError(t, store.SaveViewState("library", st))

	got, ok, err := store.LoadViewState("library")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, st, got)

	_, ok, err = store.LoadViewState("collections")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreScrollOffsets(t *testing.T) {
	store := testStore(t)

	_, ok, err := store.LoadScroll("/library:grid")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.SaveScroll("/library:grid", Offset{Top: 500, Left: 120}))

	off, ok, err := store.LoadScroll("/library:grid")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, Offset{Top: 500, Left: 120}, off)
}

func TestStoreScrollIsSessionScoped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveScroll("/library", Offset{Top: 42}))
	require.NoError(t, store.Set(KeyCoverSize, "large"))
	require.NoError(t, store.Close())

	// a new session clears scroll offsets but keeps preferences
	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	_, ok, err := reopened.LoadScroll("/library")
	require.NoError(t, err)
	assert.False(t, ok)

	value, ok, err := reopened.Get(KeyCoverSize)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "large", value)
}

func TestStoreRecentSearches(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.AddRecentSearch("zelda"))
	require.NoError(t, store.AddRecentSearch("mario"))
	require.NoError(t, store.AddRecentSearch("zelda")) // bumps, no duplicate

	got, err := store.RecentSearches()
	require.NoError(t, err)
	assert.Equal(t, []string{"zelda", "mario"}, got)

	// empty queries are ignored
	require.NoError(t, store.AddRecentSearch(""))
	got, err = store.RecentSearches()
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestStoreRecentCollections(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.AddRecentCollection("c1"))
	require.NoError(t, store.AddRecentCollection("c2"))

	got, err := store.RecentCollections()
	require.NoError(t, err)
	assert.Equal(t, []string{"c2", "c1"}, got)
}
