package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"game-library/internal/api"
	"game-library/internal/catalog"
	"game-library/internal/domain"
	"game-library/internal/events"
	"game-library/internal/prefs"
	"game-library/internal/query"
	"game-library/internal/scroll"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		height := msg.Height - 8
		if height < 5 {
			height = 5
		}
		m.table.SetHeight(height)
		m.surface.viewportRows = float64(height)
		return m, nil

	case tickMsg:
		return m.updateTick(time.Time(msg))

	case libraryLoadedMsg:
		return m.updateLibraryLoaded(msg)

	case gameSavedMsg:
		return m.updateGameSaved(msg)

	case gameDeletedMsg:
		m.bus.Publish(events.Event{Topic: events.GameDeleted, ID: msg.gameID})
		m.view.ApplyDelete(msg.gameID)
		if m.selectedGame != nil && m.selectedGame.ID == msg.gameID {
			m.selectedGame = nil
			m.viewMode = m.listMode()
		}
		m.message = "Game deleted"
		m.syncRows()
		return m, nil

	case collectionSavedMsg:
		return m.updateCollectionSaved(msg)

	case collectionDeletedMsg:
		m.bus.Publish(events.Event{Topic: events.CollectionDeleted, ID: msg.collectionID})
		kept := m.collections[:0]
		for _, c := range m.collections {
			if c.ID != msg.collectionID {
				kept = append(kept, c)
			}
		}
		m.collections = kept
		if sel := m.view.Selection(); sel.Kind == catalog.FilterCollection && sel.CollectionID == msg.collectionID {
			m.applySelection(catalog.SelectAll())
		}
		m.message = "Collection deleted"
		return m, nil

	case tagRenamedMsg:
		return m.updateTagRenamed(msg)

	case categoryRenamedMsg:
		m.bus.Publish(events.Event{Topic: events.CategoryUpdated, ID: msg.category.ID, Category: msg.category})
		m.closeRenameForm()
		m.message = "Category renamed"
		m.view.Begin()
		return m, m.refreshCmd()

	case categoriesRefreshedMsg:
		m.bus.Publish(events.Event{Topic: events.MetadataReloaded})
		m.message = "Categories refreshed"
		m.view.Begin()
		return m, m.refreshCmd()

	case recentSearchesMsg:
		m.recentSearches = msg.searches
		return m, nil

	case errMsg:
		return m.updateError(msg)
	}

	if m.confirm.active {
		return m.updateConfirmDialog(msg)
	}
	if m.gameForm.active {
		return m.updateGameForm(msg)
	}
	if m.collectionForm.active {
		return m.updateCollectionForm(msg)
	}
	if m.renameForm.active {
		return m.updateRenameForm(msg)
	}
	if m.uiMode == searchingMode {
		return m.updateSearchMode(msg)
	}
	if m.uiMode == filteringMode {
		return m.updateFilterMode(msg)
	}
	return m.updateNormalMode(msg)
}

func (m *Model) listMode() viewMode {
	if saved, ok, _ := m.store.Get(prefs.ViewModeKey(libraryRoute)); ok && saved == "grid" {
		return gridView
	}
	return tableView
}

func (m Model) updateTick(now time.Time) (tea.Model, tea.Cmd) {
	wasRevealed := m.view.Revealed()
	m.view.Tick()
	if !wasRevealed && m.view.Revealed() {
		m.syncRows()
		m.tracker.Begin()
	}

	m.tracker.Tick(now)
	if m.surface.restored {
		m.surface.restored = false
		m.setCursorFromOffset()
	}

	return m, tickCmd()
}

// setCursorFromOffset applies a restored scroll offset to whichever list
// view is active.
func (m *Model) setCursorFromOffset() {
	idx := int(m.surface.offset.Top)
	games := m.visibleGames()
	if idx < 0 || idx >= len(games) {
		return
	}
	if m.viewMode == gridView {
		m.gridCursor = idx
	} else {
		m.table.SetCursor(idx)
	}
}

func (m Model) updateLibraryLoaded(msg libraryLoadedMsg) (tea.Model, tea.Cmd) {
	m.collections = msg.collections
	m.view.SetCollectionMembers(m.collectionMembers(m.view.Selection()))
	m.view.Loaded(msg.games)
	m.loading = false
	m.err = nil
	m.buildFilterItems()
	return m, nil
}

func (m Model) updateGameSaved(msg gameSavedMsg) (tea.Model, tea.Cmd) {
	if msg.isNew {
		m.bus.Publish(events.Event{Topic: events.GameAdded, ID: msg.game.ID, Game: msg.game})
		m.view.ApplyAdd(msg.game)
		m.message = "Game created"
	} else {
		m.bus.Publish(events.Event{Topic: events.GameUpdated, ID: msg.game.ID, Game: msg.game})
		m.view.ApplyUpdate(msg.game)
		m.message = "Game saved"
	}

	if m.selectedGame != nil && m.selectedGame.ID == msg.game.ID {
		m.selectedGame = msg.game
	}

	m.gameForm = gameForm{}
	m.syncRows()
	m.buildFilterItems()
	return m, nil
}

func (m Model) updateCollectionSaved(msg collectionSavedMsg) (tea.Model, tea.Cmd) {
	m.bus.Publish(events.Event{Topic: events.CollectionUpdated, ID: msg.collection.ID, Collection: msg.collection})

	replaced := false
	for i, c := range m.collections {
		if c.ID == msg.collection.ID {
			m.collections[i] = msg.collection
			replaced = true
			break
		}
	}
	if !replaced {
		m.collections = append(m.collections, msg.collection)
	}

	if msg.isNew {
		m.message = "Collection created"
	} else {
		m.message = "Collection saved"
	}

	m.collectionForm = collectionForm{}
	m.buildFilterItems()
	return m, nil
}

func (m Model) updateTagRenamed(msg tagRenamedMsg) (tea.Model, tea.Cmd) {
	topic := events.MetadataReloaded
	switch msg.taxonomy {
	case api.TaxonomyDevelopers:
		topic = events.DeveloperUpdated
	case api.TaxonomyPublishers:
		topic = events.PublisherUpdated
	}
	ev := events.Event{Topic: topic, ID: msg.oldName, Tag: msg.tag}
	m.bus.Publish(ev)

	m.closeRenameForm()
	m.message = "Renamed " + msg.oldName
	m.view.Begin()
	return m, m.refreshCmd()
}

func (m *Model) closeRenameForm() {
	m.renameForm = renameForm{}
}

func (m Model) updateError(msg errMsg) (tea.Model, tea.Cmd) {
	// a failed save keeps the form open with the error inline
	switch {
	case m.gameForm.active:
		m.gameForm.err = msg.Error()
		m.gameForm.saving = false
	case m.collectionForm.active:
		m.collectionForm.err = msg.Error()
		m.collectionForm.saving = false
	case m.renameForm.active:
		m.renameForm.err = msg.Error()
		m.renameForm.saving = false
	default:
		m.err = msg.err
		m.loading = false
		if m.view.Phase() == catalog.PhaseLoading {
			m.view.Failed()
		}
	}
	return m, nil
}

func (m Model) updateConfirmDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			m.confirm.active = false
			cmd := m.confirm.onConfirm(&m)
			return m, cmd

		case "n", "N", "esc":
			m.confirm.active = false
			return m, nil
		}
	}
	return m, nil
}

func (m Model) updateGameForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.gameForm.saving {
		// no edits or re-submits while a save is in flight
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.gameForm = gameForm{}
		return m, nil

	case "tab", "shift+tab":
		delta := 1
		if keyMsg.String() == "shift+tab" {
			delta = gameFormFields - 1
		}
		m.blurGameField(m.gameForm.focusedField)
		m.gameForm.focusedField = (m.gameForm.focusedField + delta) % gameFormFields
		m.focusGameField(m.gameForm.focusedField)
		return m, nil

	case "ctrl+s":
		game, err := m.gameForm.buildGame()
		if err != nil {
			m.gameForm.err = err.Error()
			return m, nil
		}
		m.gameForm.err = ""
		m.gameForm.saving = true
		return m, saveGameCmd(m.ctx, m.client, game, m.gameForm.isNew)
	}

	var cmd tea.Cmd
	switch m.gameForm.focusedField {
	case 0:
		m.gameForm.titleInput, cmd = m.gameForm.titleInput.Update(msg)
	case 1:
		m.gameForm.summaryInput, cmd = m.gameForm.summaryInput.Update(msg)
	case 2:
		m.gameForm.yearInput, cmd = m.gameForm.yearInput.Update(msg)
	case 3:
		m.gameForm.monthInput, cmd = m.gameForm.monthInput.Update(msg)
	case 4:
		m.gameForm.dayInput, cmd = m.gameForm.dayInput.Update(msg)
	case 5:
		m.gameForm.starsInput, cmd = m.gameForm.starsInput.Update(msg)
	case 6:
		m.gameForm.genresInput, cmd = m.gameForm.genresInput.Update(msg)
	case 7:
		m.gameForm.platformsInput, cmd = m.gameForm.platformsInput.Update(msg)
	case 8:
		m.gameForm.developersInput, cmd = m.gameForm.developersInput.Update(msg)
	case 9:
		m.gameForm.publishersInput, cmd = m.gameForm.publishersInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) focusGameField(idx int) {
	switch idx {
	case 0:
		m.gameForm.titleInput.Focus()
	case 1:
		m.gameForm.summaryInput.Focus()
	case 2:
		m.gameForm.yearInput.Focus()
	case 3:
		m.gameForm.monthInput.Focus()
	case 4:
		m.gameForm.dayInput.Focus()
	case 5:
		m.gameForm.starsInput.Focus()
	case 6:
		m.gameForm.genresInput.Focus()
	case 7:
		m.gameForm.platformsInput.Focus()
	case 8:
		m.gameForm.developersInput.Focus()
	case 9:
		m.gameForm.publishersInput.Focus()
	}
}

func (m *Model) blurGameField(idx int) {
	switch idx {
	case 0:
		m.gameForm.titleInput.Blur()
	case 1:
		m.gameForm.summaryInput.Blur()
	case 2:
		m.gameForm.yearInput.Blur()
	case 3:
		m.gameForm.monthInput.Blur()
	case 4:
		m.gameForm.dayInput.Blur()
	case 5:
		m.gameForm.starsInput.Blur()
	case 6:
		m.gameForm.genresInput.Blur()
	case 7:
		m.gameForm.platformsInput.Blur()
	case 8:
		m.gameForm.developersInput.Blur()
	case 9:
		m.gameForm.publishersInput.Blur()
	}
}

func (m Model) updateCollectionForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.collectionForm.saving {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.collectionForm = collectionForm{}
		return m, nil

	case "enter", "ctrl+s":
		collection, err := m.collectionForm.buildCollection()
		if err != nil {
			m.collectionForm.err = err.Error()
			return m, nil
		}
		m.collectionForm.err = ""
		m.collectionForm.saving = true
		return m, saveCollectionCmd(m.ctx, m.client, collection, m.collectionForm.isNew)
	}

	var cmd tea.Cmd
	m.collectionForm.titleInput, cmd = m.collectionForm.titleInput.Update(msg)
	return m, cmd
}

func (m Model) updateRenameForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.renameForm.saving {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.closeRenameForm()
		return m, nil

	case "ctrl+t":
		m.renameForm.cycleTarget()
		return m, nil

	case "tab", "shift+tab":
		if m.renameForm.focusedField == 0 {
			m.renameForm.focusedField = 1
			m.renameForm.oldNameInput.Blur()
			m.renameForm.newNameInput.Focus()
		} else {
			m.renameForm.focusedField = 0
			m.renameForm.newNameInput.Blur()
			m.renameForm.oldNameInput.Focus()
		}
		return m, nil

	case "enter", "ctrl+s":
		oldName := m.renameForm.oldNameInput.Value()
		newName := m.renameForm.newNameInput.Value()
		if oldName == "" || newName == "" {
			m.renameForm.err = "both names are required"
			return m, nil
		}
		m.renameForm.err = ""
		m.renameForm.saving = true
		if m.renameForm.target() == categoryTaxonomy {
			return m, renameCategoryCmd(m.ctx, m.client, oldName, newName)
		}
		return m, renameTagCmd(m.ctx, m.client, api.Taxonomy(m.renameForm.target()), oldName, newName)
	}

	var cmd tea.Cmd
	if m.renameForm.focusedField == 0 {
		m.renameForm.oldNameInput, cmd = m.renameForm.oldNameInput.Update(msg)
	} else {
		m.renameForm.newNameInput, cmd = m.renameForm.newNameInput.Update(msg)
	}
	return m, cmd
}

func (m Model) updateSearchMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.historyDropdown.active {
		switch keyMsg.String() {
		case "esc":
			m.historyDropdown.active = false
			m.historyDropdown.cursor = 0
			return m, nil

		case "up", "k":
			if m.historyDropdown.cursor > 0 {
				m.historyDropdown.cursor--
			}
			return m, nil

		case "down", "j":
			if m.historyDropdown.cursor < len(m.recentSearches)-1 {
				m.historyDropdown.cursor++
			}
			return m, nil

		case "enter":
			if m.historyDropdown.cursor < len(m.recentSearches) {
				m.searchInput.SetValue(m.recentSearches[m.historyDropdown.cursor])
			}
			m.historyDropdown.active = false
			m.historyDropdown.cursor = 0
			return m, nil
		}
		return m, nil
	}

	switch {
	case keyMsg.String() == "esc":
		m.uiMode = normalMode
		m.searchInput.Blur()
		return m, nil

	case keyMsg.String() == "up":
		if m.searchInput.Value() == "" && len(m.recentSearches) > 0 {
			m.historyDropdown.active = true
			m.historyDropdown.cursor = 0
			return m, nil
		}

	case keyMsg.String() == "ctrl+f":
		m.fuzzyMode = !m.fuzzyMode
		return m, nil

	case keyMsg.Type == tea.KeyEnter:
		return m.applySearch(m.searchInput.Value())
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// applySearch runs the query language over the input, falling back to
// plain title search for free text.
func (m Model) applySearch(input string) (tea.Model, tea.Cmd) {
	m.uiMode = normalMode
	m.searchInput.Blur()

	q, err := query.Parse(input)
	if err != nil {
		m.err = err
		return m, nil
	}

	if q.HasFilter {
		m.applySelection(q.Selection)
	}
	if q.HasSort {
		ascending := q.SortField == catalog.SortTitle
		if q.HasOrder {
			ascending = q.Ascending
		}
		m.view.SetSort(q.SortField, ascending)
	}
	m.titleQuery = q.TitleText()
	m.syncRows()
	m.setCursor(0)

	if input == "" {
		return m, nil
	}
	return m, recordSearchCmd(m.store, input)
}

func (m Model) updateFilterMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.uiMode = normalMode
		return m, nil

	case "up", "k":
		for i := m.filterPanel.selectedItem - 1; i >= 0; i-- {
			if !m.filterPanel.items[i].heading {
				m.filterPanel.selectedItem = i
				break
			}
		}
		return m, nil

	case "down", "j":
		for i := m.filterPanel.selectedItem + 1; i < len(m.filterPanel.items); i++ {
			if !m.filterPanel.items[i].heading {
				m.filterPanel.selectedItem = i
				break
			}
		}
		return m, nil

	case "enter":
		if m.filterPanel.selectedItem < len(m.filterPanel.items) {
			item := m.filterPanel.items[m.filterPanel.selectedItem]
			if !item.heading {
				m.applySelection(item.sel)
				m.uiMode = normalMode
			}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateNormalMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.message = ""

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.tracker.Stop()
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(keyMsg, m.keys.Back):
		if m.viewMode == detailView {
			m.viewMode = m.listMode()
			m.selectedGame = nil
			return m, nil
		}
		if m.titleQuery != "" {
			m.titleQuery = ""
			m.searchInput.SetValue("")
			m.syncRows()
			return m, nil
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Enter):
		if m.viewMode == detailView {
			return m, nil
		}
		if game := m.cursorGame(); game != nil {
			m.selectedGame = game
			m.viewMode = detailView
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Up):
		return m.moveCursor(-1)

	case key.Matches(keyMsg, m.keys.Down):
		return m.moveCursor(1)

	case key.Matches(keyMsg, m.keys.Filter):
		m.buildFilterItems()
		m.uiMode = filteringMode
		return m, nil

	case key.Matches(keyMsg, m.keys.ClearFilters):
		m.titleQuery = ""
		m.searchInput.SetValue("")
		m.applySelection(catalog.SelectAll())
		return m, nil

	case key.Matches(keyMsg, m.keys.Search):
		m.uiMode = searchingMode
		m.searchInput.Focus()
		return m, fetchRecentSearchesCmd(m.store)

	case key.Matches(keyMsg, m.keys.Sort):
		m.cycleSortField()
		return m, nil

	case key.Matches(keyMsg, m.keys.SortOrder):
		m.view.ToggleDirection()
		m.syncRows()
		return m, nil

	case key.Matches(keyMsg, m.keys.ToggleView):
		return m.toggleViewMode()

	case key.Matches(keyMsg, m.keys.GrowCovers):
		return m.resizeCovers(1)

	case key.Matches(keyMsg, m.keys.ShrinkCovers):
		return m.resizeCovers(-1)

	case key.Matches(keyMsg, m.keys.New):
		m.initGameForm(nil)
		return m, nil

	case key.Matches(keyMsg, m.keys.Edit):
		if game := m.currentTarget(); game != nil {
			m.initGameForm(game)
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Delete):
		game := m.currentTarget()
		if game == nil {
			return m, nil
		}
		gameID := game.ID
		m.confirm = confirmDialog{
			active:  true,
			message: "Delete \"" + game.Title + "\"?",
			onConfirm: func(m *Model) tea.Cmd {
				return deleteGameCmd(m.ctx, m.client, gameID)
			},
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Refresh):
		m.view.Begin()
		m.err = nil
		return m, m.refreshCmd()

	case key.Matches(keyMsg, m.keys.NewCollection):
		m.initCollectionForm(nil)
		return m, nil

	case key.Matches(keyMsg, m.keys.RenameTag):
		m.initRenameForm()
		return m, nil

	case key.Matches(keyMsg, m.keys.RefreshMeta):
		m.message = "Refreshing categories..."
		return m, refreshCategoriesCmd(m.ctx, m.client)
	}

	if m.viewMode == tableView {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// currentTarget is the game an edit or delete applies to.
func (m *Model) currentTarget() *domain.Game {
	if m.viewMode == detailView {
		return m.selectedGame
	}
	return m.cursorGame()
}

func (m Model) moveCursor(delta int) (tea.Model, tea.Cmd) {
	if m.viewMode == detailView {
		return m.moveDetailCursor(delta)
	}

	if m.viewMode == gridView {
		m.setCursor(m.gridCursor + delta)
	} else {
		m.setCursor(m.table.Cursor() + delta)
	}
	m.tracker.OnScroll(time.Now())
	return m, nil
}

// moveDetailCursor steps the detail view through the visible list.
func (m Model) moveDetailCursor(delta int) (tea.Model, tea.Cmd) {
	games := m.visibleGames()
	if m.selectedGame == nil || len(games) == 0 {
		return m, nil
	}
	for i, g := range games {
		if g.ID == m.selectedGame.ID {
			next := i + delta
			if next >= 0 && next < len(games) {
				m.selectedGame = games[next]
				m.setCursor(next)
			}
			break
		}
	}
	return m, nil
}

// toggleViewMode flips table/grid, persists the choice, and swaps the
// scroll tracker onto the other view's offset key.
func (m Model) toggleViewMode() (tea.Model, tea.Cmd) {
	if m.viewMode == detailView {
		return m, nil
	}

	m.tracker.Stop()

	if m.viewMode == tableView {
		m.viewMode = gridView
	} else {
		m.viewMode = tableView
	}

	modeName := "table"
	if m.viewMode == gridView {
		modeName = "grid"
	}
	_ = m.store.Set(prefs.ViewModeKey(libraryRoute), modeName)

	m.tracker = scroll.NewTracker(scrollKey(m.viewMode), m.store, m.surface)
	m.tracker.Begin()
	return m, nil
}

func (m Model) resizeCovers(delta int) (tea.Model, tea.Cmd) {
	if m.viewMode != gridView {
		return m, nil
	}

	sizes := []coverSize{coverSmall, coverMedium, coverLarge}
	idx := 1
	for i, s := range sizes {
		if s == m.covers {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sizes) {
		idx = len(sizes) - 1
	}
	if sizes[idx] != m.covers {
		m.covers = sizes[idx]
		_ = m.store.Set(prefs.KeyCoverSize, string(m.covers))
	}
	return m, nil
}
