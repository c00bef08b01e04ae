package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"game-library/internal/api"
	"game-library/internal/catalog"
	"game-library/internal/display"
	"game-library/internal/domain"
	"game-library/internal/events"
	"game-library/internal/fuzzy"
	"game-library/internal/prefs"
	"game-library/internal/scroll"
	"game-library/internal/theme"
)

type viewMode int

const (
	tableView viewMode = iota
	gridView
	detailView
)

type uiMode int

const (
	normalMode uiMode = iota
	searchingMode
	filteringMode
)

// libraryRoute keys the persisted view state and scroll offsets.
const libraryRoute = "library"

type confirmDialog struct {
	message   string
	onConfirm func(m *Model) tea.Cmd
	active    bool
}

type filterItem struct {
	label   string
	sel     catalog.Selection
	heading bool
}

type filterPanel struct {
	selectedItem int
	items        []filterItem
}

// listSurface is the scrollable surface handed to the scroll tracker. It
// lives behind a pointer so tracker callbacks observe the live cursor
// even as Bubble Tea copies the model.
type listSurface struct {
	offset       prefs.Offset
	contentRows  float64
	viewportRows float64
	restored     bool
}

func (s *listSurface) Offset() prefs.Offset { return s.offset }

func (s *listSurface) SetOffset(off prefs.Offset) {
	s.offset = off
	s.restored = true
}

func (s *listSurface) ContentHeight() float64  { return s.contentRows }
func (s *listSurface) ViewportHeight() float64 { return s.viewportRows }

type coverSize string

const (
	coverSmall  coverSize = "small"
	coverMedium coverSize = "medium"
	coverLarge  coverSize = "large"
)

type Model struct {
	client *api.Client
	store  *prefs.Store
	bus    *events.Bus

	view        *catalog.View
	collections []*domain.Collection

	tracker *scroll.Tracker
	surface *listSurface

	table          table.Model
	searchInput    textinput.Model
	keys           keyMap
	visibleColumns map[string]bool

	viewMode viewMode
	uiMode   uiMode
	covers   coverSize

	gridCursor   int
	selectedGame *domain.Game

	filterPanel filterPanel

	gameForm       gameForm
	collectionForm collectionForm
	renameForm     renameForm

	confirm confirmDialog

	recentSearches  []string
	historyDropdown struct {
		active bool
		cursor int
	}

	titleQuery     string
	fuzzyMode      bool
	fuzzyThreshold int

	err      error
	message  string
	width    int
	height   int
	showHelp bool
	loading  bool

	theme  *theme.Theme
	styles *theme.Styles

	ctx context.Context
}

func NewModel(client *api.Client, store *prefs.Store, bus *events.Bus, themeObj *theme.Theme, styles *theme.Styles) Model {
	view := catalog.NewView(libraryRoute, store)

	visibleColumns := map[string]bool{}
	if _, err := store.GetJSON(prefs.KeyTableColumnVisibility, &visibleColumns); err != nil {
		visibleColumns = map[string]bool{}
	}

	mode := tableView
	if saved, ok, _ := store.Get(prefs.ViewModeKey(libraryRoute)); ok && saved == "grid" {
		mode = gridView
	}

	covers := coverMedium
	if saved, ok, _ := store.Get(prefs.KeyCoverSize); ok {
		switch coverSize(saved) {
		case coverSmall, coverMedium, coverLarge:
			covers = coverSize(saved)
		}
	}

	t := table.New(
		table.WithColumns(buildColumns(visibleColumns)),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(themeObj.BorderColor)).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(themeObj.SelectedFg)).
		Background(lipgloss.Color(themeObj.SelectedBg)).
		Bold(true)
	t.SetStyles(s)

	si := textinput.New()
	si.Placeholder = "Search games..."
	si.CharLimit = 100
	si.Width = 50

	surface := &listSurface{viewportRows: 20}

	return Model{
		client:         client,
		store:          store,
		bus:            bus,
		view:           view,
		collections:    []*domain.Collection{},
		surface:        surface,
		tracker:        scroll.NewTracker(scrollKey(mode), store, surface),
		table:          t,
		searchInput:    si,
		keys:           defaultKeyMap(),
		visibleColumns: visibleColumns,
		viewMode:       mode,
		uiMode:         normalMode,
		covers:         covers,
		fuzzyThreshold: 60,
		loading:        true,
		theme:          themeObj,
		styles:         styles,
		ctx:            context.Background(),
	}
}

func (m Model) Init() tea.Cmd {
	m.view.Begin()
	return tea.Batch(
		fetchLibraryCmd(m.ctx, m.client),
		fetchRecentSearchesCmd(m.store),
		tickCmd(),
	)
}

func scrollKey(mode viewMode) string {
	if mode == gridView {
		return libraryRoute + ":grid"
	}
	return libraryRoute + ":table"
}

// column order for the table view; visibility is a stored preference
var columnOrder = []struct {
	name  string
	width int
}{
	{"Title", 40},
	{"Year", 6},
	{"Released", 12},
	{"Stars", 7},
	{"Age", 10},
	{"Genres", 22},
	{"Platforms", 22},
}

func buildColumns(visible map[string]bool) []table.Column {
	columns := make([]table.Column, 0, len(columnOrder))
	for _, col := range columnOrder {
		if hidden, ok := visible[col.name]; ok && !hidden {
			continue
		}
		columns = append(columns, table.Column{Title: col.name, Width: col.width})
	}
	return columns
}

func (m *Model) gameToRow(game *domain.Game) table.Row {
	year := "-"
	if game.Year != nil {
		year = fmt.Sprintf("%d", *game.Year)
	}

	rowStyle := m.ratingStyle(game)

	cells := map[string]string{
		"Title":     display.Truncate(game.Title, 38),
		"Year":      year,
		"Released":  display.FormatReleaseDate(game),
		"Stars":     display.FormatStars(game.Stars),
		"Age":       display.FormatAgeRating(game),
		"Genres":    display.FormatTags(game.Genre, 20),
		"Platforms": display.FormatTags(game.Platforms, 20),
	}

	row := make(table.Row, 0, len(columnOrder))
	for _, col := range columnOrder {
		if hidden, ok := m.visibleColumns[col.name]; ok && !hidden {
			continue
		}
		row = append(row, rowStyle.Render(cells[col.name]))
	}
	return row
}

func (m *Model) ratingStyle(game *domain.Game) lipgloss.Style {
	if game.Stars == nil {
		return m.styles.UnratedRow
	}
	switch {
	case *game.Stars >= 4:
		return m.styles.HighRatingRow
	case *game.Stars >= 2.5:
		return m.styles.MediumRatingRow
	default:
		return m.styles.LowRatingRow
	}
}

// visibleGames applies the free-text search on top of the filtered and
// sorted catalog items.
func (m *Model) visibleGames() []*domain.Game {
	items := m.view.Items()
	if m.titleQuery == "" {
		return items
	}

	if m.fuzzyMode {
		results := fuzzy.MatchGames(m.titleQuery, items, m.fuzzyThreshold)
		out := make([]*domain.Game, 0, len(results))
		for _, r := range results {
			out = append(out, r.Game)
		}
		return out
	}

	needle := catalog.NormalizeTitle(m.titleQuery)
	var out []*domain.Game
	for _, g := range items {
		if strings.Contains(catalog.NormalizeTitle(g.Title), needle) {
			out = append(out, g)
		}
	}
	return out
}

func (m *Model) syncRows() {
	games := m.visibleGames()
	rows := make([]table.Row, 0, len(games))
	for _, g := range games {
		rows = append(rows, m.gameToRow(g))
	}
	m.table.SetRows(rows)

	m.surface.contentRows = float64(len(games))
	if m.gridCursor >= len(games) {
		m.gridCursor = 0
	}
}

// cursorGame is the game under the cursor in whichever list view is
// active.
func (m *Model) cursorGame() *domain.Game {
	games := m.visibleGames()
	idx := m.table.Cursor()
	if m.viewMode == gridView {
		idx = m.gridCursor
	}
	if idx < 0 || idx >= len(games) {
		return nil
	}
	return games[idx]
}

func (m *Model) setCursor(idx int) {
	games := m.visibleGames()
	if idx < 0 {
		idx = 0
	}
	if idx >= len(games) {
		idx = len(games) - 1
	}
	if idx < 0 {
		idx = 0
	}
	if m.viewMode == gridView {
		m.gridCursor = idx
	} else {
		m.table.SetCursor(idx)
	}
	m.surface.offset = prefs.Offset{Top: float64(idx)}
}

func (m *Model) buildFilterItems() {
	games := m.view.Games()

	var items []filterItem
	items = append(items, filterItem{label: "All Games", sel: catalog.SelectAll()})

	if len(m.collections) > 0 {
		items = append(items, filterItem{label: "Collections", heading: true})
		for _, c := range m.collections {
			items = append(items, filterItem{
				label: fmt.Sprintf("%s (%d)", c.Title, c.GameCount),
				sel:   catalog.SelectCollection(c.ID),
			})
		}
	}

	years := map[int]bool{}
	decades := map[int]bool{}
	genres := map[string]bool{}
	platforms := map[string]bool{}
	ageKeys := map[catalog.AgeRatingKey]bool{}
	for _, g := range games {
		if g.Year != nil {
			years[*g.Year] = true
		}
		if d, ok := g.Decade(); ok {
			decades[d] = true
		}
		for _, name := range g.Genre.Names() {
			genres[name] = true
		}
		for _, name := range g.Platforms.Names() {
			platforms[name] = true
		}
		for _, r := range g.AgeRatings {
			ageKeys[catalog.AgeRatingKey{Category: r.Category, Rating: r.Rating}] = true
		}
	}

	if len(genres) > 0 {
		items = append(items, filterItem{label: "Genres", heading: true})
		for _, name := range sortedKeys(genres) {
			items = append(items, filterItem{label: name, sel: catalog.SelectGenre(name)})
		}
	}

	if len(platforms) > 0 {
		items = append(items, filterItem{label: "Platforms", heading: true})
		for _, name := range sortedKeys(platforms) {
			items = append(items, filterItem{label: name, sel: catalog.SelectLabel(catalog.FilterPlatform, name)})
		}
	}

	if len(decades) > 0 {
		items = append(items, filterItem{label: "Decades", heading: true})
		for _, d := range sortedInts(decades) {
			decade := d
			items = append(items, filterItem{label: fmt.Sprintf("%ds", decade), sel: catalog.SelectDecade(&decade)})
		}
	}

	if len(years) > 0 {
		items = append(items, filterItem{label: "Years", heading: true})
		for _, y := range sortedInts(years) {
			year := y
			items = append(items, filterItem{label: fmt.Sprintf("%d", year), sel: catalog.SelectYear(&year)})
		}
	}

	if len(ageKeys) > 0 {
		items = append(items, filterItem{label: "Age Ratings", heading: true})
		keys := make([]catalog.AgeRatingKey, 0, len(ageKeys))
		for k := range ageKeys {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if keys[i].Category != keys[j].Category {
				return keys[i].Category < keys[j].Category
			}
			return keys[i].Rating < keys[j].Rating
		})
		for _, k := range keys {
			key := k
			items = append(items, filterItem{
				label: display.FormatAgeRatingKey(key.Category, key.Rating),
				sel:   catalog.SelectAgeRating(&key),
			})
		}
	}

	m.filterPanel.items = items
	if m.filterPanel.selectedItem >= len(items) {
		m.filterPanel.selectedItem = 0
	}
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		return catalog.CompareTitles(out[i], out[j]) < 0
	})
	return out
}

func sortedInts(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// collectionMembers resolves the member set for a collection selection.
func (m *Model) collectionMembers(sel catalog.Selection) map[string]bool {
	if sel.Kind != catalog.FilterCollection {
		return nil
	}
	for _, c := range m.collections {
		if c.ID == sel.CollectionID {
			return c.MemberSet()
		}
	}
	return map[string]bool{}
}

func (m *Model) applySelection(sel catalog.Selection) {
	m.view.SetCollectionMembers(m.collectionMembers(sel))
	m.view.SetSelection(sel)
	if sel.Kind == catalog.FilterCollection && sel.CollectionID != "" {
		_ = m.store.AddRecentCollection(sel.CollectionID)
	}
	m.syncRows()
	m.setCursor(0)
}

var sortCycle = []catalog.SortField{
	catalog.SortTitle,
	catalog.SortYear,
	catalog.SortReleaseDate,
	catalog.SortStars,
	catalog.SortCriticRating,
	catalog.SortUserRating,
	catalog.SortAgeRating,
}

func (m *Model) cycleSortField() {
	current := m.view.SortField()
	next := sortCycle[0]
	for i, f := range sortCycle {
		if f == current {
			next = sortCycle[(i+1)%len(sortCycle)]
			break
		}
	}
	// title reads naturally ascending, everything else starts descending
	m.view.SetSort(next, next == catalog.SortTitle)
	m.syncRows()
}

func (m *Model) selectionLabel() string {
	sel := m.view.Selection()
	switch sel.Kind {
	case catalog.FilterAll, "":
		return ""
	case catalog.FilterYear:
		if sel.Year == nil {
			return "Year: any"
		}
		return fmt.Sprintf("Year: %d", *sel.Year)
	case catalog.FilterDecade:
		if sel.Decade == nil {
			return "Decade: none"
		}
		return fmt.Sprintf("Decade: %ds", *sel.Decade)
	case catalog.FilterCollection:
		for _, c := range m.collections {
			if c.ID == sel.CollectionID {
				return "Collection: " + c.Title
			}
		}
		return "Collection: " + sel.CollectionID
	case catalog.FilterAgeRating:
		if sel.AgeRating == nil {
			return "Age rating: none"
		}
		return "Age rating: " + display.FormatAgeRatingKey(sel.AgeRating.Category, sel.AgeRating.Rating)
	default:
		return fmt.Sprintf("%s: %s", sel.Kind, sel.Label)
	}
}
