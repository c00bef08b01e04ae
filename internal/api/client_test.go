package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-library/internal/domain"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(Config{
		BaseURL:        server.URL,
		AuthToken:      "secret",
		TwitchClientID: "twitch-123",
	})
}

func TestListGamesSendsAuthHeaders(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/libraries/library/games", r.URL.Path)
		assert.Equal(t, "title", r.URL.Query().Get("sort"))
		assert.Equal(t, "secret", r.Header.Get("X-Auth-Token"))
		assert.Equal(t, "twitch-123", r.Header.Get("X-Twitch-Client-Id"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"games":[{"id":"1","title":"Zelda","genre":"Adventure"}]}`))
	})

	games, err := client.ListGames(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Zelda", games[0].Title)
	// scalar genre payloads normalize at the boundary
	assert.Equal(t, domain.TagList{{Name: "Adventure"}}, games[0].Genre)
}

func TestUpdateGameUnwrapsResponseKey(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/games/g1", r.URL.Path)

		var sent domain.Game
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		assert.Equal(t, "Zelda OOT", sent.Title)

		w.Write([]byte(`{"game":{"id":"g1","title":"Zelda OOT"}}`))
	})

	updated, err := client.UpdateGame(context.Background(), &domain.Game{ID: "g1", Title: "Zelda OOT"})
	require.NoError(t, err)
	assert.Equal(t, "Zelda OOT", updated.Title)
}

func TestUpdateGameValidatesBeforeSending(t *testing.T) {
	called := false
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.UpdateGame(context.Background(), &domain.Game{ID: "g1", Title: ""})
	assert.EqualError(t, err, "game title cannot be empty")
	assert.False(t, called, "invalid edits must not reach the network")
}

func TestServerErrorMessageSurfaces(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"title already exists"}`))
	})

	_, err := client.UpdateGame(context.Background(), &domain.Game{ID: "g1", Title: "Dup"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title already exists")
	assert.Contains(t, err.Error(), "400")
}

func TestIsConflict(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"category still in use"}`))
	})

	err := client.DeleteCategory(context.Background(), "Adventure")
	require.Error(t, err)
	assert.True(t, IsConflict(err))

	assert.False(t, IsConflict(context.Canceled))
}

func TestCleanupCategorySwallowsConflict(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	// must not panic or surface anything
	client.CleanupCategory(context.Background(), "Adventure")
}

func TestDeleteGame(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/games/g1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, client.DeleteGame(context.Background(), "g1"))
}

func TestListTaxonomyUnwrapsResourceKey(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/game-modes", r.URL.Path)
		w.Write([]byte(`{"gameModes":[{"id":"1","name":"Co-op"}]}`))
	})

	tags, err := client.ListTaxonomy(context.Background(), TaxonomyGameModes)
	require.NoError(t, err)
	assert.Equal(t, []domain.Tag{{ID: "1", Name: "Co-op"}}, tags)
}

func TestRenameTag(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/developers/d1", r.URL.Path)
		w.Write([]byte(`{"developer":{"id":"d1","name":"Nintendo EPD"}}`))
	})

	tag, err := client.RenameTag(context.Background(), TaxonomyDevelopers, "d1", "Nintendo EPD")
	require.NoError(t, err)
	assert.Equal(t, "Nintendo EPD", tag.Name)

	_, err = client.RenameTag(context.Background(), TaxonomyDevelopers, "d1", "  ")
	assert.Error(t, err)
}

func TestTaxonomyResponseKeys(t *testing.T) {
	tests := []struct {
		taxonomy Taxonomy
		list     string
		singular string
	}{
		{TaxonomyThemes, "themes", "theme"},
		{TaxonomyPlatforms, "platforms", "platform"},
		{TaxonomyGameModes, "gameModes", "gameMode"},
		{TaxonomyPlayerPerspectives, "playerPerspectives", "playerPerspective"},
		{TaxonomyGameEngines, "gameEngines", "gameEngine"},
		{TaxonomyFranchises, "franchises", "franchise"},
		{TaxonomySeries, "series", "series"},
		{TaxonomyKeywords, "keywords", "keyword"},
		{TaxonomyDevelopers, "developers", "developer"},
		{TaxonomyPublishers, "publishers", "publisher"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.list, tt.taxonomy.responseKey(), string(tt.taxonomy))
		assert.Equal(t, tt.singular, tt.taxonomy.singularKey(), string(tt.taxonomy))
	}
}

func TestUpdateExecutablesValidation(t *testing.T) {
	called := false
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.UpdateExecutables(context.Background(), "g1", nil)
	assert.EqualError(t, err, "at least one executable is required")

	_, err = client.UpdateExecutables(context.Background(), "g1", []ExecutableUpload{
		{Label: "", Content: strings.NewReader("bin")},
	})
	assert.EqualError(t, err, "every executable needs a label")

	_, err = client.UpdateExecutables(context.Background(), "g1", []ExecutableUpload{
		{Label: "Launch", Content: nil},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no file")

	assert.False(t, called, "validation failures must not reach the network")
}

func TestUpdateExecutablesMultipart(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/games/g1/executables", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))

		var meta []domain.Executable
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("metadata")), &meta))
		assert.Equal(t, []domain.Executable{{Label: "Launch", Path: "bin/game.exe"}}, meta)

		files := r.MultipartForm.File["files"]
		require.Len(t, files, 1)
		assert.Equal(t, "game.exe", files[0].Filename)

		w.Write([]byte(`{"game":{"id":"g1","title":"Zelda","executables":[{"label":"Launch","path":"bin/game.exe"}]}}`))
	})

	game, err := client.UpdateExecutables(context.Background(), "g1", []ExecutableUpload{
		{Label: "Launch", Path: "bin/game.exe", Filename: "game.exe", Content: strings.NewReader("MZ")},
	})
	require.NoError(t, err)
	require.Len(t, game.Executables, 1)
	assert.Equal(t, "Launch", game.Executables[0].Label)
}
