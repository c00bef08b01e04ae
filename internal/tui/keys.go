package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Back  key.Binding

	Filter       key.Binding
	ClearFilters key.Binding
	Search       key.Binding

	Sort      key.Binding
	SortOrder key.Binding

	ToggleView   key.Binding
	GrowCovers   key.Binding
	ShrinkCovers key.Binding

	New     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Refresh key.Binding

	NewCollection key.Binding
	RenameTag     key.Binding
	RefreshMeta   key.Binding

	Quit key.Binding
	Help key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view details"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to list"),
		),

		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "open filters"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "clear filter"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search games"),
		),

		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle sort field"),
		),
		SortOrder: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "toggle sort direction"),
		),

		ToggleView: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "table/grid view"),
		),
		GrowCovers: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "bigger covers"),
		),
		ShrinkCovers: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "smaller covers"),
		),

		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit game"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete game"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload library"),
		),

		NewCollection: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "new collection"),
		),
		RenameTag: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "rename tag/category"),
		),
		RefreshMeta: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "refresh categories"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Filter, k.Search, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Back},
		{k.Filter, k.ClearFilters, k.Search},
		{k.Sort, k.SortOrder, k.ToggleView},
		{k.New, k.Edit, k.Delete, k.Refresh},
		{k.NewCollection, k.RenameTag, k.RefreshMeta},
		{k.Quit, k.Help},
	}
}
