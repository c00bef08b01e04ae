package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"game-library/internal/api"
	"game-library/internal/catalog"
	"game-library/internal/domain"
	"game-library/internal/events"
	"game-library/internal/prefs"
	"game-library/internal/theme"
)

func testModel(t *testing.T) (*Model, *prefs.Store) {
	t.Helper()

	store, err := prefs.Open(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("failed to open prefs store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	client := api.NewClient(api.Config{BaseURL: "http://localhost:0"})
	themeObj := theme.GetDefaultTheme()
	styles := theme.NewStyles(themeObj)

	m := NewModel(client, store, events.NewBus(), themeObj, styles)
	return &m, store
}

func libraryGames() []*domain.Game {
	return []*domain.Game{
		{
			ID:        "g1",
			Title:     "Super Mario 64",
			Year:      intPointer(1996),
			Stars:     floatPointer(5),
			Genre:     domain.TagList{{Name: "Platformer"}},
			Platforms: domain.TagList{{Name: "N64"}},
		},
		{
			ID:    "g2",
			Title: "Half-Life",
			Year:  intPointer(1998),
			Stars: floatPointer(4.5),
			Genre: domain.TagList{{Name: "Shooter"}},
			AgeRatings: []domain.AgeRating{
				{Category: 1, Rating: 13},
			},
		},
		{
			ID:    "g3",
			Title: "Hades",
			Year:  intPointer(2020),
			Genre: domain.TagList{{Name: "Roguelike"}},
		},
	}
}

func (m *Model) loadForTest(games []*domain.Game) {
	m.view.Loaded(games)
	m.view.Tick()
	m.view.Tick()
	m.loading = false
	m.syncRows()
}

func TestBuildColumnsHonorsVisibility(t *testing.T) {
	all := buildColumns(map[string]bool{})
	if len(all) != len(columnOrder) {
		t.Fatalf("expected %d columns, got %d", len(columnOrder), len(all))
	}

	hidden := buildColumns(map[string]bool{"Genres": false, "Platforms": false})
	if len(hidden) != len(columnOrder)-2 {
		t.Fatalf("expected %d columns, got %d", len(columnOrder)-2, len(hidden))
	}
	for _, col := range hidden {
		if col.Title == "Genres" || col.Title == "Platforms" {
			t.Errorf("column %q should be hidden", col.Title)
		}
	}
}

func TestParseTagNames(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "single", input: "RPG", want: []string{"RPG"}},
		{name: "multiple with spaces", input: "RPG, Shooter , Puzzle", want: []string{"RPG", "Shooter", "Puzzle"}},
		{name: "trailing comma", input: "RPG,", want: []string{"RPG"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseTagNames(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tags, want %d", len(got), len(tt.want))
			}
			for i, name := range tt.want {
				if got[i].Name != name {
					t.Errorf("tag %d = %q, want %q", i, got[i].Name, name)
				}
			}
		})
	}
}

func TestGameFormBuildValidation(t *testing.T) {
	m, _ := testModel(t)

	m.initGameForm(nil)
	if _, err := m.gameForm.buildGame(); err == nil {
		t.Error("expected error for empty title")
	}

	m.gameForm.titleInput.SetValue("Chrono Trigger")
	m.gameForm.yearInput.SetValue("not-a-year")
	if _, err := m.gameForm.buildGame(); err == nil {
		t.Error("expected error for non-numeric year")
	}

	m.gameForm.yearInput.SetValue("1995")
	m.gameForm.starsInput.SetValue("9")
	if _, err := m.gameForm.buildGame(); err == nil {
		t.Error("expected error for stars out of range")
	}

	m.gameForm.starsInput.SetValue("4.5")
	m.gameForm.genresInput.SetValue("RPG, JRPG")
	game, err := m.gameForm.buildGame()
	if err != nil {
		t.Fatalf("buildGame() error = %v", err)
	}
	if game.Title != "Chrono Trigger" {
		t.Errorf("title = %q", game.Title)
	}
	if game.Year == nil || *game.Year != 1995 {
		t.Error("year not carried through")
	}
	if len(game.Genre) != 2 {
		t.Errorf("genres = %d, want 2", len(game.Genre))
	}
}

func TestGameFormEditKeepsIdentity(t *testing.T) {
	m, _ := testModel(t)
	original := libraryGames()[0]

	m.initGameForm(original)
	if m.gameForm.isNew {
		t.Error("editing an existing game should not be marked new")
	}

	m.gameForm.titleInput.SetValue("Super Mario 64 DS")
	game, err := m.gameForm.buildGame()
	if err != nil {
		t.Fatalf("buildGame() error = %v", err)
	}
	if game.ID != original.ID {
		t.Errorf("id = %q, want %q", game.ID, original.ID)
	}
	if game.Title != "Super Mario 64 DS" {
		t.Errorf("title = %q", game.Title)
	}
	if original.Title != "Super Mario 64" {
		t.Error("original game mutated by form edit")
	}
}

func TestVisibleGamesSubstringSearch(t *testing.T) {
	m, _ := testModel(t)
	m.loadForTest(libraryGames())

	m.titleQuery = "mario"
	games := m.visibleGames()
	if len(games) != 1 || games[0].ID != "g1" {
		t.Fatalf("expected only Super Mario 64, got %d games", len(games))
	}

	m.titleQuery = ""
	if got := len(m.visibleGames()); got != 3 {
		t.Fatalf("expected all 3 games, got %d", got)
	}
}

func TestVisibleGamesFuzzySearch(t *testing.T) {
	m, _ := testModel(t)
	m.loadForTest(libraryGames())

	m.fuzzyMode = true
	m.titleQuery = "sm64"
	games := m.visibleGames()
	if len(games) == 0 {
		t.Fatal("fuzzy search found nothing")
	}
	if games[0].ID != "g1" {
		t.Errorf("best match = %q, want g1", games[0].ID)
	}
}

func TestBuildFilterItems(t *testing.T) {
	m, _ := testModel(t)
	m.collections = []*domain.Collection{
		{ID: "c1", Title: "Favorites", GameIDs: []string{"g1"}, GameCount: 1},
	}
	m.loadForTest(libraryGames())
	m.buildFilterItems()

	labels := make(map[string]bool)
	for _, item := range m.filterPanel.items {
		labels[item.label] = true
	}

	for _, want := range []string{
		"All Games",
		"Favorites (1)",
		"Platformer",
		"Shooter",
		"1990s",
		"1996",
		"ESRB 13",
	} {
		if !labels[want] {
			t.Errorf("filter panel missing %q", want)
		}
	}
}

func TestApplySelectionCollection(t *testing.T) {
	m, _ := testModel(t)
	m.collections = []*domain.Collection{
		{ID: "c1", Title: "Favorites", GameIDs: []string{"g2"}, GameCount: 1},
	}
	m.loadForTest(libraryGames())

	m.applySelection(catalog.SelectCollection("c1"))

	games := m.visibleGames()
	if len(games) != 1 || games[0].ID != "g2" {
		t.Fatalf("expected only collection member g2, got %d games", len(games))
	}

	recent, err := m.store.RecentCollections()
	if err != nil {
		t.Fatalf("RecentCollections() error = %v", err)
	}
	if len(recent) != 1 || recent[0] != "c1" {
		t.Errorf("recent collections = %v, want [c1]", recent)
	}
}

func TestCycleSortField(t *testing.T) {
	m, _ := testModel(t)
	m.loadForTest(libraryGames())

	if m.view.SortField() != catalog.SortTitle {
		t.Fatalf("default sort = %q", m.view.SortField())
	}

	m.cycleSortField()
	if m.view.SortField() != catalog.SortYear {
		t.Errorf("after one cycle sort = %q, want year", m.view.SortField())
	}
	if m.view.Ascending() {
		t.Error("year sort should start descending")
	}

	for i := 0; i < len(sortCycle)-1; i++ {
		m.cycleSortField()
	}
	if m.view.SortField() != catalog.SortTitle {
		t.Errorf("full cycle should return to title, got %q", m.view.SortField())
	}
	if !m.view.Ascending() {
		t.Error("title sort should start ascending")
	}
}

func TestSelectionLabels(t *testing.T) {
	m, _ := testModel(t)
	m.collections = []*domain.Collection{{ID: "c1", Title: "Favorites"}}

	year := 1998
	decade := 1990

	tests := []struct {
		name string
		sel  catalog.Selection
		want string
	}{
		{name: "all", sel: catalog.SelectAll(), want: ""},
		{name: "genre", sel: catalog.SelectGenre("RPG"), want: "genre: RPG"},
		{name: "year", sel: catalog.SelectYear(&year), want: "Year: 1998"},
		{name: "year any", sel: catalog.SelectYear(nil), want: "Year: any"},
		{name: "decade", sel: catalog.SelectDecade(&decade), want: "Decade: 1990s"},
		{name: "collection", sel: catalog.SelectCollection("c1"), want: "Collection: Favorites"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.view.SetSelection(tt.sel)
			if got := m.selectionLabel(); got != tt.want {
				t.Errorf("selectionLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScrollKeySeparatesViewModes(t *testing.T) {
	if scrollKey(tableView) == scrollKey(gridView) {
		t.Error("table and grid views must not share a scroll key")
	}
	if !strings.HasPrefix(scrollKey(gridView), libraryRoute+":") {
		t.Errorf("scroll key %q not namespaced by route", scrollKey(gridView))
	}
}

func TestRenameTargetsIncludeCategories(t *testing.T) {
	targets := renameTargets()
	if targets[0] != categoryTaxonomy {
		t.Errorf("first target = %q, want categories", targets[0])
	}
	if len(targets) != len(api.Taxonomies)+1 {
		t.Errorf("targets = %d, want %d", len(targets), len(api.Taxonomies)+1)
	}
}

func TestWrapText(t *testing.T) {
	short := wrapText("short text", 60)
	if short != "short text" {
		t.Errorf("short text should pass through, got %q", short)
	}

	long := wrapText(strings.Repeat("word ", 30), 20)
	if !strings.Contains(long, "\n") {
		t.Error("long text should wrap")
	}
}
