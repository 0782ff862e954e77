package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the table screen.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Filtering
	Search       key.Binding
	ClearSearch  key.Binding
	AcceptSearch key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	ToggleID     key.Binding

	// Pagination
	PrevPage  key.Binding
	NextPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding
	PageSize  key.Binding

	// Rows
	Up   key.Binding
	Down key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear search"),
		),
		AcceptSearch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Keep search"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Next category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "Previous category"),
		),
		ToggleID: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Toggle ID column"),
		),

		PrevPage: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Next page"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "First page"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "Last page"),
		),
		PageSize: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Cycle page size"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextCategory, k.ToggleID, k.PrevPage, k.NextPage, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.AcceptSearch, k.ClearSearch, k.NextCategory, k.PrevCategory, k.ToggleID},
		{k.PrevPage, k.NextPage, k.FirstPage, k.LastPage, k.PageSize},
		{k.Up, k.Down, k.CycleTheme, k.Help, k.Quit},
	}
}

// searchKeyMap is the reduced set shown while the search box has focus.
type searchKeyMap struct{ keys keyMap }

func (s searchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{s.keys.AcceptSearch, s.keys.ClearSearch}
}

func (s searchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{s.ShortHelp()}
}
