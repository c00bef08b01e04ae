package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"game-library/internal/api"
	"game-library/internal/domain"
	"game-library/internal/prefs"
)

// Message types for async operations

// libraryLoadedMsg is sent when the library fetch completes.
type libraryLoadedMsg struct {
	games       []*domain.Game
	collections []*domain.Collection
}

// gameSavedMsg is sent after a create or update round-trips the server.
type gameSavedMsg struct {
	game  *domain.Game
	isNew bool
}

// gameDeletedMsg is sent when a game is successfully deleted.
type gameDeletedMsg struct {
	gameID string
}

// collectionSavedMsg is sent after a collection create or update.
type collectionSavedMsg struct {
	collection *domain.Collection
	isNew      bool
}

// collectionDeletedMsg is sent when a collection is deleted.
type collectionDeletedMsg struct {
	collectionID string
}

// tagRenamedMsg is sent after a taxonomy rename round-trips.
type tagRenamedMsg struct {
	taxonomy api.Taxonomy
	oldName  string
	tag      *domain.Tag
}

// categoryRenamedMsg is sent after a category title change round-trips.
type categoryRenamedMsg struct {
	oldTitle string
	category *domain.Category
}

// categoriesRefreshedMsg is sent when the server finishes recomputing
// category membership.
type categoriesRefreshedMsg struct{}

// recentSearchesMsg carries the stored search history.
type recentSearchesMsg struct {
	searches []string
}

// tickMsg drives the reveal gate and the scroll tracker.
type tickMsg time.Time

// errMsg wraps errors from async operations
type errMsg struct {
	err error
}

func (e errMsg) Error() string {
	return e.err.Error()
}

const tickInterval = 50 * time.Millisecond

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Bubble Tea commands for async operations

// fetchLibraryCmd fetches the game list and the collections in one go.
func fetchLibraryCmd(ctx context.Context, client *api.Client) tea.Cmd {
	return func() tea.Msg {
		games, err := client.ListGames(ctx)
		if err != nil {
			return errMsg{err}
		}

		collections, err := client.ListCollections(ctx)
		if err != nil {
			return errMsg{err}
		}

		return libraryLoadedMsg{games: games, collections: collections}
	}
}

func saveGameCmd(ctx context.Context, client *api.Client, game *domain.Game, isNew bool) tea.Cmd {
	return func() tea.Msg {
		var (
			saved *domain.Game
			err   error
		)
		if isNew {
			saved, err = client.CreateGame(ctx, game)
		} else {
			saved, err = client.UpdateGame(ctx, game)
		}
		if err != nil {
			return errMsg{err}
		}
		return gameSavedMsg{game: saved, isNew: isNew}
	}
}

func deleteGameCmd(ctx context.Context, client *api.Client, gameID string) tea.Cmd {
	return func() tea.Msg {
		if err := client.DeleteGame(ctx, gameID); err != nil {
			return errMsg{err}
		}
		return gameDeletedMsg{gameID: gameID}
	}
}

func saveCollectionCmd(ctx context.Context, client *api.Client, collection *domain.Collection, isNew bool) tea.Cmd {
	return func() tea.Msg {
		var (
			saved *domain.Collection
			err   error
		)
		if isNew {
			saved, err = client.CreateCollection(ctx, collection)
		} else {
			saved, err = client.UpdateCollection(ctx, collection)
		}
		if err != nil {
			return errMsg{err}
		}
		return collectionSavedMsg{collection: saved, isNew: isNew}
	}
}

func deleteCollectionCmd(ctx context.Context, client *api.Client, collectionID string) tea.Cmd {
	return func() tea.Msg {
		if err := client.DeleteCollection(ctx, collectionID); err != nil {
			return errMsg{err}
		}
		return collectionDeletedMsg{collectionID: collectionID}
	}
}

func renameTagCmd(ctx context.Context, client *api.Client, taxonomy api.Taxonomy, oldName, newName string) tea.Cmd {
	return func() tea.Msg {
		tag, err := client.RenameTag(ctx, taxonomy, oldName, newName)
		if err != nil {
			return errMsg{err}
		}
		return tagRenamedMsg{taxonomy: taxonomy, oldName: oldName, tag: tag}
	}
}

func renameCategoryCmd(ctx context.Context, client *api.Client, oldTitle, newTitle string) tea.Cmd {
	return func() tea.Msg {
		category, err := client.UpdateCategory(ctx, oldTitle, &domain.Category{Title: newTitle})
		if err != nil {
			return errMsg{err}
		}
		return categoryRenamedMsg{oldTitle: oldTitle, category: category}
	}
}

func refreshCategoriesCmd(ctx context.Context, client *api.Client) tea.Cmd {
	return func() tea.Msg {
		if err := client.RefreshCategories(ctx); err != nil {
			return errMsg{err}
		}
		return categoriesRefreshedMsg{}
	}
}

func fetchRecentSearchesCmd(store *prefs.Store) tea.Cmd {
	return func() tea.Msg {
		searches, err := store.RecentSearches()
		if err != nil {
			return errMsg{err}
		}
		return recentSearchesMsg{searches: searches}
	}
}

func recordSearchCmd(store *prefs.Store, query string) tea.Cmd {
	return func() tea.Msg {
		if err := store.AddRecentSearch(query); err != nil {
			return errMsg{err}
		}
		return fetchRecentSearchesCmd(store)()
	}
}

// refreshCmd reloads the library after a mutation.
func (m *Model) refreshCmd() tea.Cmd {
	return fetchLibraryCmd(m.ctx, m.client)
}
