package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"game-library/internal/catalog"
	"game-library/internal/display"
	"game-library/internal/domain"
)

// renders the UI
func (m Model) View() string {
	if m.loading || !m.view.Revealed() {
		return m.styles.TUITitle.Render("Loading library...") + "\n"
	}

	var b strings.Builder

	title := m.styles.TUITitle.Render("  GameVault  ")
	b.WriteString(title)
	b.WriteString("\n")

	// confirmation dialog takes precedence
	if m.confirm.active {
		b.WriteString("\n")
		b.WriteString(m.renderConfirmDialog())
		b.WriteString("\n")
		return b.String()
	}

	if m.gameForm.active {
		b.WriteString(m.renderGameForm())
		b.WriteString("\n")
		b.WriteString(m.renderFormHelp())
		return b.String()
	}

	if m.collectionForm.active {
		b.WriteString(m.renderCollectionForm())
		b.WriteString("\n")
		b.WriteString(m.renderFormHelp())
		return b.String()
	}

	if m.renameForm.active {
		b.WriteString(m.renderRenameForm())
		b.WriteString("\n")
		b.WriteString(m.renderFormHelp())
		return b.String()
	}

	if m.uiMode == searchingMode {
		b.WriteString(m.renderSearchMode())
		b.WriteString("\n")
		b.WriteString(m.renderStatusBar())
		b.WriteString("\n")
		b.WriteString(m.renderHelp())
		return b.String()
	}

	if m.uiMode == filteringMode {
		b.WriteString(m.renderFilterPanel())
		b.WriteString("\n")
		b.WriteString(m.renderHelp())
		return b.String()
	}

	switch m.viewMode {
	case tableView:
		b.WriteString(m.renderTableView())
	case gridView:
		b.WriteString(m.renderGridView())
	case detailView:
		b.WriteString(m.renderDetailView())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderBanners() string {
	var b strings.Builder
	if m.message != "" {
		b.WriteString(m.styles.Success.Render(m.message))
		b.WriteString("\n\n")
	}
	if m.err != nil {
		b.WriteString(m.styles.ErrorBanner.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}
	return b.String()
}

func (m Model) renderTableView() string {
	var b strings.Builder

	if summary := m.renderFilterSummary(); summary != "" {
		b.WriteString(summary)
		b.WriteString("\n")
	}

	b.WriteString(m.renderBanners())

	if len(m.visibleGames()) == 0 {
		if m.hasActiveFilters() {
			b.WriteString(m.styles.Info.Render("No games match the current filter."))
		} else {
			b.WriteString(m.styles.Info.Render("The library is empty."))
		}
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
	}

	return b.String()
}

// cover cell widths per size step
func (m Model) gridCellWidth() int {
	switch m.covers {
	case coverSmall:
		return 18
	case coverLarge:
		return 34
	default:
		return 26
	}
}

func (m Model) renderGridView() string {
	var b strings.Builder

	if summary := m.renderFilterSummary(); summary != "" {
		b.WriteString(summary)
		b.WriteString("\n")
	}

	b.WriteString(m.renderBanners())

	games := m.visibleGames()
	if len(games) == 0 {
		b.WriteString(m.styles.Info.Render("No games match the current filter."))
		b.WriteString("\n")
		return b.String()
	}

	cellWidth := m.gridCellWidth()
	columns := m.width / (cellWidth + 2)
	if columns < 1 {
		columns = 1
	}

	var cells []string
	for i, game := range games {
		cells = append(cells, m.renderGridCell(game, cellWidth, i == m.gridCursor))
		if len(cells) == columns || i == len(games)-1 {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
			b.WriteString("\n")
			cells = nil
		}
	}

	return b.String()
}

func (m Model) renderGridCell(game *domain.Game, width int, selected bool) string {
	style := lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderColor)).
		Padding(0, 1)
	if selected {
		style = style.
			BorderForeground(lipgloss.Color(m.theme.SelectedBg)).
			Bold(true)
	}

	titleStyle := m.ratingStyle(game)
	lines := []string{
		titleStyle.Render(display.Truncate(game.Title, width-4)),
		m.styles.Muted.Render(display.FormatReleaseDate(game)),
		display.FormatStars(game.Stars),
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m Model) renderDetailView() string {
	if m.selectedGame == nil {
		return m.styles.Info.Render("No game selected.")
	}

	game := m.selectedGame
	var b strings.Builder

	b.WriteString(m.renderBanners())

	content := []string{
		m.renderDetailRow("Title:", game.Title),
	}

	if game.Summary != "" {
		content = append(content, m.renderDetailRow("Summary:", wrapText(game.Summary, 60)))
	}

	content = append(content, m.renderDetailRow("Released:", display.FormatReleaseDate(game)))
	content = append(content, m.renderDetailRow("Stars:", display.FormatStars(game.Stars)))

	if game.CriticRating != nil {
		content = append(content, m.renderDetailRow("Critics:", fmt.Sprintf("%.0f", *game.CriticRating)))
	}
	if game.UserRating != nil {
		content = append(content, m.renderDetailRow("Users:", fmt.Sprintf("%.0f", *game.UserRating)))
	}

	content = append(content, m.renderDetailRow("Age rating:", display.FormatAgeRating(game)))

	taxonomies := []struct {
		label string
		names []string
	}{
		{"Genres:", game.Genre.Names()},
		{"Themes:", game.Themes.Names()},
		{"Platforms:", game.Platforms.Names()},
		{"Modes:", game.GameModes.Names()},
		{"Developers:", game.Developers.Names()},
		{"Publishers:", game.Publishers.Names()},
		{"Franchises:", game.Franchise.Names()},
	}
	for _, t := range taxonomies {
		if len(t.names) > 0 {
			content = append(content, m.renderDetailRow(t.label, strings.Join(t.names, ", ")))
		}
	}

	if len(game.Executables) > 0 {
		var labels []string
		for _, e := range game.Executables {
			labels = append(labels, e.Label)
		}
		content = append(content, m.renderDetailRow("Executables:", strings.Join(labels, ", ")))
	}

	card := m.styles.DetailContainer.Render(strings.Join(content, "\n"))
	b.WriteString(card)

	return b.String()
}

func (m Model) renderSearchMode() string {
	var b strings.Builder

	label := m.styles.TUISubtitle.Render("Search Games:")
	b.WriteString(label)
	b.WriteString("\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n")

	if m.historyDropdown.active {
		b.WriteString("\n")
		b.WriteString(m.styles.TUISubtitle.Render("Recent searches:"))
		b.WriteString("\n")
		for i, entry := range m.recentSearches {
			line := "  " + entry
			if i == m.historyDropdown.cursor {
				line = lipgloss.NewStyle().
					Foreground(lipgloss.Color(m.theme.SelectedFg)).
					Background(lipgloss.Color(m.theme.SelectedBg)).
					Render("▶ " + entry)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		return b.String()
	}

	b.WriteString("\n")
	mode := "substring"
	if m.fuzzyMode {
		mode = "fuzzy"
	}
	hint := m.styles.TUIHelp.Render(
		"Tip: field filters like genre:RPG year:1998 sort:stars  •  ctrl+f: " + mode + " matching  •  ↑: recent searches")
	b.WriteString(hint)

	return b.String()
}

func (m Model) renderFilterPanel() string {
	var b strings.Builder

	label := m.styles.TUISubtitle.Render("Filter Library:")
	b.WriteString(label)
	b.WriteString("\n\n")

	current := m.view.Selection()
	for i, item := range m.filterPanel.items {
		if item.heading {
			b.WriteString("\n")
			b.WriteString(m.styles.Subtitle.Render(item.label))
			b.WriteString("\n")
			continue
		}

		line := item.label
		if i == m.filterPanel.selectedItem {
			line = lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.SelectedFg)).
				Background(lipgloss.Color(m.theme.SelectedBg)).
				Bold(true).
				Render(" " + line + " ")
		} else if selectionsEqual(item.sel, current) {
			line = lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Success)).
				Render(line + " ✓")
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func selectionsEqual(a, b catalog.Selection) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case catalog.FilterYear:
		return intPtrEqual(a.Year, b.Year)
	case catalog.FilterDecade:
		return intPtrEqual(a.Decade, b.Decade)
	case catalog.FilterCollection:
		return a.CollectionID == b.CollectionID
	case catalog.FilterAgeRating:
		if a.AgeRating == nil || b.AgeRating == nil {
			return a.AgeRating == b.AgeRating
		}
		return *a.AgeRating == *b.AgeRating
	default:
		return a.Label == b.Label
	}
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (m Model) renderConfirmDialog() string {
	message := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Bold(true).
		Render(m.confirm.message)

	prompt := m.styles.TUISubtitle.Render("Are you sure? (y/n)")

	content := lipgloss.JoinVertical(lipgloss.Left, message, "", prompt)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Warning)).
		Padding(1, 2).
		Render(content)
}

func (m Model) renderStatusBar() string {
	var items []string

	games := m.visibleGames()
	items = append(items, fmt.Sprintf("%d game(s)", len(games)))

	sortIcon := "↓"
	if m.view.Ascending() {
		sortIcon = "↑"
	}
	items = append(items, fmt.Sprintf("Sort: %s %s", m.view.SortField(), sortIcon))

	if m.viewMode == gridView {
		items = append(items, fmt.Sprintf("Covers: %s", m.covers))
	}

	if m.titleQuery != "" {
		match := "substring"
		if m.fuzzyMode {
			match = "fuzzy"
		}
		items = append(items, fmt.Sprintf("Search (%s): %s", match, m.titleQuery))
	}

	return m.styles.TUISubtitle.Render(strings.Join(items, " • "))
}

func (m Model) renderFilterSummary() string {
	label := m.selectionLabel()
	if label == "" {
		return ""
	}
	return m.styles.Info.Render("Filter: " + label)
}

func (m *Model) hasActiveFilters() bool {
	return m.selectionLabel() != "" || m.titleQuery != ""
}

func (m Model) renderHelp() string {
	if m.showHelp {
		return m.renderFullHelp()
	}
	return m.renderQuickHelp()
}

func (m Model) renderFullHelp() string {
	var help []string

	switch {
	case m.uiMode == searchingMode:
		help = []string{
			"Search Mode:",
			"  Type to search titles, or use field filters",
			"  genre: theme: platform: mode: developer: publisher:",
			"  year: decade: collection: rating: sort: order:",
			"  Enter       Apply",
			"  Ctrl+F      Toggle fuzzy matching",
			"  ↑           Recent searches",
			"  Esc         Cancel",
		}
	case m.uiMode == filteringMode:
		help = []string{
			"Filter Mode:",
			"  ↑/k ↓/j     Navigate",
			"  Enter       Apply filter",
			"  Esc         Cancel",
		}
	case m.viewMode == detailView:
		help = []string{
			"Detail View:",
			"  ↑/k ↓/j     Previous/next game",
			"  e           Edit game",
			"  d           Delete game",
			"  Esc         Back to list",
			"",
			"General:",
			"  q/Ctrl+C    Quit",
			"  ?           Toggle help",
		}
	default:
		help = []string{
			"Library:",
			"  ↑/k ↓/j     Navigate",
			"  Enter       View details",
			"  v           Table/grid view",
			"  +/-         Cover size (grid)",
			"",
			"Filtering:",
			"  f           Filter panel",
			"  F           Clear filter",
			"  /           Search",
			"  s           Cycle sort field",
			"  S           Toggle sort direction",
			"",
			"Editing:",
			"  n           New game",
			"  e           Edit game",
			"  d           Delete game",
			"  C           New collection",
			"  t           Rename tag/category",
			"",
			"Data:",
			"  r           Reload library",
			"  R           Refresh categories",
			"",
			"General:",
			"  q/Ctrl+C    Quit",
			"  ?           Toggle help",
		}
	}

	return m.styles.TUIHelp.Render(strings.Join(help, "\n"))
}

func (m Model) renderQuickHelp() string {
	var hints []string

	switch {
	case m.uiMode == searchingMode:
		hints = []string{"Type: search", "Enter: apply", "Esc: cancel", "?: help"}
	case m.uiMode == filteringMode:
		hints = []string{"↑/↓: navigate", "Enter: apply", "Esc: cancel", "?: help"}
	case m.viewMode == detailView:
		hints = []string{"↑/↓: prev/next", "e: edit", "d: delete", "Esc: back", "?: help"}
	default:
		hints = []string{
			"↑/↓: navigate",
			"enter: details",
			"f: filter",
			"/: search",
			"s/S: sort",
			"v: view",
			"?: help",
		}
	}

	return m.styles.TUIHelp.Render(strings.Join(hints, "  •  "))
}

func (m Model) renderDetailRow(label, value string) string {
	return m.styles.DetailLabel.Render(label) + " " + m.styles.DetailValue.Render(value)
}

func wrapText(text string, width int) string {
	if len(text) <= width {
		return text
	}

	var wrapped []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		if len(currentLine)+len(word)+1 <= width {
			if currentLine != "" {
				currentLine += " "
			}
			currentLine += word
		} else {
			if currentLine != "" {
				wrapped = append(wrapped, currentLine)
			}
			currentLine = word
		}
	}

	if currentLine != "" {
		wrapped = append(wrapped, currentLine)
	}

	return strings.Join(wrapped, "\n"+strings.Repeat(" ", 12))
}

// Form rendering

func (m Model) renderGameForm() string {
	var b strings.Builder

	formTitle := "Edit Game"
	if m.gameForm.isNew {
		formTitle = "New Game"
	}
	b.WriteString(m.styles.TUISubtitle.Render(formTitle))
	b.WriteString("\n\n")

	if m.gameForm.err != "" {
		b.WriteString(m.styles.ErrorBanner.Render("Error: " + m.gameForm.err))
		b.WriteString("\n\n")
	}
	if m.gameForm.saving {
		b.WriteString(m.styles.Info.Render("Saving..."))
		b.WriteString("\n\n")
	}

	fields := []struct {
		label string
		view  string
	}{
		{"Title:", m.gameForm.titleInput.View()},
		{"Summary:", m.gameForm.summaryInput.View()},
		{"Year:", m.gameForm.yearInput.View()},
		{"Month:", m.gameForm.monthInput.View()},
		{"Day:", m.gameForm.dayInput.View()},
		{"Stars:", m.gameForm.starsInput.View()},
		{"Genres:", m.gameForm.genresInput.View()},
		{"Platforms:", m.gameForm.platformsInput.View()},
		{"Developers:", m.gameForm.developersInput.View()},
		{"Publishers:", m.gameForm.publishersInput.View()},
	}

	for i, f := range fields {
		b.WriteString(m.renderFormLabel(f.label, m.gameForm.focusedField == i))
		b.WriteString("\n  ")
		b.WriteString(f.view)
		b.WriteString("\n\n")
	}

	return b.String()
}

func (m Model) renderCollectionForm() string {
	var b strings.Builder

	formTitle := "Edit Collection"
	if m.collectionForm.isNew {
		formTitle = "New Collection"
	}
	b.WriteString(m.styles.TUISubtitle.Render(formTitle))
	b.WriteString("\n\n")

	if m.collectionForm.err != "" {
		b.WriteString(m.styles.ErrorBanner.Render("Error: " + m.collectionForm.err))
		b.WriteString("\n\n")
	}
	if m.collectionForm.saving {
		b.WriteString(m.styles.Info.Render("Saving..."))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderFormLabel("Title:", true))
	b.WriteString("\n  ")
	b.WriteString(m.collectionForm.titleInput.View())
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderRenameForm() string {
	var b strings.Builder

	b.WriteString(m.styles.TUISubtitle.Render("Rename"))
	b.WriteString("\n\n")

	if m.renameForm.err != "" {
		b.WriteString(m.styles.ErrorBanner.Render("Error: " + m.renameForm.err))
		b.WriteString("\n\n")
	}
	if m.renameForm.saving {
		b.WriteString(m.styles.Info.Render("Saving..."))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.DetailLabel.Render("  Target:"))
	b.WriteString(" ")
	b.WriteString(m.styles.Info.Render(m.renameForm.target()))
	b.WriteString(m.styles.TUIHelp.Render(" (Ctrl+T to cycle)"))
	b.WriteString("\n\n")

	b.WriteString(m.renderFormLabel("Current name:", m.renameForm.focusedField == 0))
	b.WriteString("\n  ")
	b.WriteString(m.renameForm.oldNameInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.renderFormLabel("New name:", m.renameForm.focusedField == 1))
	b.WriteString("\n  ")
	b.WriteString(m.renameForm.newNameInput.View())
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderFormLabel(label string, focused bool) string {
	if focused {
		return m.styles.DetailLabel.Render(m.styles.Success.Render("▶ " + label))
	}
	return m.styles.DetailLabel.Render("  " + label)
}

func (m Model) renderFormHelp() string {
	hints := []string{
		"Tab/Shift+Tab: navigate fields",
		"Ctrl+S: save",
		"Esc: cancel",
	}
	return m.styles.TUIHelp.Render(strings.Join(hints, "  •  "))
}
