package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-library/internal/api"
	"game-library/internal/catalog"
	"game-library/internal/domain"
)

type fakeClients struct {
	games       []*domain.Game
	collections []*domain.Collection
	tags        map[api.Taxonomy][]domain.Tag
}

func (f *fakeClients) ListGames(ctx context.Context) ([]*domain.Game, error) {
	return f.games, nil
}

func (f *fakeClients) ListCollections(ctx context.Context) ([]*domain.Collection, error) {
	return f.collections, nil
}

func (f *fakeClients) ListTaxonomy(ctx context.Context, taxonomy api.Taxonomy) ([]domain.Tag, error) {
	return f.tags[taxonomy], nil
}

func testClients() *fakeClients {
	return &fakeClients{
		games: []*domain.Game{
			{ID: "g1", Title: "Super Mario 64"},
			{ID: "g2", Title: "Super Metroid"},
			{ID: "g3", Title: "Half-Life"},
		},
		collections: []*domain.Collection{
			{ID: "c1", Title: "Favorites", GameIDs: []string{"g1", "g3"}},
			{ID: "c2", Title: "Backlog"},
		},
		tags: map[api.Taxonomy][]domain.Tag{
			api.TaxonomyPlatforms: {
				{ID: "t1", Name: "Nintendo 64"},
				{ID: "t2", Name: "PC"},
			},
		},
	}
}

func TestParseTaxonomy(t *testing.T) {
	tests := []struct {
		input    string
		expected api.Taxonomy
		wantErr  bool
	}{
		{"platforms", api.TaxonomyPlatforms, false},
		{"Platforms", api.TaxonomyPlatforms, false},
		{"game-modes", api.TaxonomyGameModes, false},
		{"gamemodes", api.TaxonomyGameModes, false},
		{"series", api.TaxonomySeries, false},
		{"bogus", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := parseTaxonomy(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
		} else {
			require.NoError(t, err, tt.input)
			assert.Equal(t, tt.expected, got)
		}
	}
}

func TestLookupCollection(t *testing.T) {
	clients := testClients()
	ctx := context.Background()

	byID, err := lookupCollection(ctx, clients, "c2")
	require.NoError(t, err)
	assert.Equal(t, "Backlog", byID.Title)

	byTitle, err := lookupCollection(ctx, clients, "favorites")
	require.NoError(t, err)
	assert.Equal(t, "c1", byTitle.ID)

	_, err = lookupCollection(ctx, clients, "nope")
	assert.ErrorContains(t, err, "not found")
}

func TestLookupGame(t *testing.T) {
	clients := testClients()
	ctx := context.Background()

	byID, err := lookupGame(ctx, clients, "g3")
	require.NoError(t, err)
	assert.Equal(t, "Half-Life", byID.Title)

	byTitle, err := lookupGame(ctx, clients, "super mario 64")
	require.NoError(t, err)
	assert.Equal(t, "g1", byTitle.ID)

	byPrefix, err := lookupGame(ctx, clients, "half")
	require.NoError(t, err)
	assert.Equal(t, "g3", byPrefix.ID)

	_, err = lookupGame(ctx, clients, "super")
	assert.ErrorContains(t, err, "ambiguous")

	_, err = lookupGame(ctx, clients, "zelda")
	assert.ErrorContains(t, err, "not found")
}

func TestLookupTag(t *testing.T) {
	clients := testClients()
	ctx := context.Background()

	byName, err := lookupTag(ctx, clients, api.TaxonomyPlatforms, "nintendo 64")
	require.NoError(t, err)
	assert.Equal(t, "t1", byName.ID)

	byID, err := lookupTag(ctx, clients, api.TaxonomyPlatforms, "t2")
	require.NoError(t, err)
	assert.Equal(t, "PC", byID.Name)

	_, err = lookupTag(ctx, clients, api.TaxonomyPlatforms, "Dreamcast")
	assert.ErrorContains(t, err, "not found")
}

func TestResolveCollectionMembers(t *testing.T) {
	clients := testClients()
	ctx := context.Background()

	sel := catalog.SelectCollection("Favorites")
	members, err := resolveCollectionMembers(ctx, clients, &sel)
	require.NoError(t, err)

	// selection is rewritten to the real id
	assert.Equal(t, "c1", sel.CollectionID)
	assert.Equal(t, map[string]bool{"g1": true, "g3": true}, members)
}

func TestPad(t *testing.T) {
	assert.Equal(t, "abc  ", pad("abc", 5))
	assert.Equal(t, "abcde", pad("abcdef", 5))
	assert.Equal(t, "     ", pad("", 5))
}

func TestScaledWidth(t *testing.T) {
	assert.Equal(t, 20, scaledWidth(10, 10))
	assert.Equal(t, 10, scaledWidth(5, 10))
	assert.Equal(t, 0, scaledWidth(3, 0))
}
