package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tripdesk/internal/prefs"
	"github.com/five82/tripdesk/internal/roster"
	"github.com/five82/tripdesk/internal/state"
)

// LoadFunc performs the one-shot user load and reports the outcome.
type LoadFunc func(ctx context.Context) state.Snapshot

// Options configures the UI.
type Options struct {
	Context   context.Context
	Load      LoadFunc
	PageSize  int
	ThemeName string
	PrefsPath string
	Logger    *slog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	load      LoadFunc
	logger    *slog.Logger
	prefsPath string

	// UI state
	theme    Theme
	keys     keyMap
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	snapshot state.Snapshot
	loaded   bool
	view     roster.View

	// Widgets
	search textinput.Model
	table  table.Model
	pager  paginator.Model
	help   help.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	search := textinput.New()
	search.Prompt = "Search: "
	search.Placeholder = "type / to search"
	search.CharLimit = 128

	pager := paginator.New()
	pager.Type = paginator.Dots

	m := Model{
		ctx:       ctx,
		load:      opts.Load,
		logger:    logger,
		prefsPath: prefsPath,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		view:      roster.NewView(opts.PageSize),
		search:    search,
		pager:     pager,
		help:      help.New(),
	}
	m.applyTheme()
	m.syncTable(true)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.syncTable(false)
		return m, nil

	case loadedMsg:
		// Only the first result is applied.
		if m.loaded {
			return m, nil
		}
		m.loaded = true
		m.snapshot = state.Snapshot(msg)
		m.view.Load(m.snapshot.Records)
		m.syncTable(true)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()

	case key.Matches(msg, m.keys.Search):
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.ClearSearch):
		m.clearSearch()

	case key.Matches(msg, m.keys.NextCategory):
		m.view.SetCategory(roster.NextCategory(m.view.Filter().Category))
		m.syncTable(true)

	case key.Matches(msg, m.keys.PrevCategory):
		m.view.SetCategory(roster.PrevCategory(m.view.Filter().Category))
		m.syncTable(true)

	case key.Matches(msg, m.keys.ToggleID):
		m.view.ToggleIDColumn()
		m.syncTable(false)

	case key.Matches(msg, m.keys.PrevPage):
		m.pager.PrevPage()
		m.goToPage(m.pager.Page + 1)

	case key.Matches(msg, m.keys.NextPage):
		m.pager.NextPage()
		m.goToPage(m.pager.Page + 1)

	case key.Matches(msg, m.keys.FirstPage):
		m.goToPage(1)

	case key.Matches(msg, m.keys.LastPage):
		m.goToPage(m.pager.TotalPages)

	case key.Matches(msg, m.keys.PageSize):
		m.view.SetPageSize(roster.NextPageSize(m.view.Filter().PageSize))
		m.syncTable(true)

	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp(1)

	case key.Matches(msg, m.keys.Down):
		m.table.MoveDown(1)
	}

	return m, nil
}

// handleSearchKey processes input while the search box has focus. Every edit
// re-filters immediately.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.search.Blur()
		m.clearSearch()
		return m, nil
	case "enter":
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if value := m.search.Value(); value != before {
		m.view.SetSearch(value)
		m.syncTable(true)
	}
	return m, cmd
}

func (m *Model) clearSearch() {
	if m.search.Value() == "" && m.view.Filter().Search == "" {
		return
	}
	m.search.Reset()
	m.view.SetSearch("")
	m.syncTable(true)
}

// goToPage moves within the computed page range; out-of-range requests are
// ignored.
func (m *Model) goToPage(page int) {
	total := m.view.Visible().TotalPages()
	if page < 1 || page > total || page == m.view.Filter().Page {
		m.syncPager(m.view.Visible())
		return
	}
	m.view.GoToPage(page)
	m.syncTable(true)
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyTheme()
	m.syncTable(false)
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save prefs failed", "theme", m.theme.Name, "error", err)
	}
}

// applyTheme restyles the widgets that keep their own styles.
func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.search.PromptStyle = styles.AccentText
	m.search.TextStyle = styles.Text
	m.search.PlaceholderStyle = styles.FaintText
	m.pager.ActiveDot = styles.AccentText.Render("•")
	m.pager.InactiveDot = styles.FaintText.Render("•")
	m.help.Styles = m.theme.HelpStyles(m.theme.Surface)
}

// renderMain renders the full screen.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderControls())
	b.WriteString("\n")
	b.WriteString(m.renderTable())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	b.WriteString("\n")
	b.WriteString(m.renderKeyHints())
	return b.String()
}

// Messages

type loadedMsg state.Snapshot

// Commands

// loadCmd runs the load off the event loop. A result that arrives after ctx
// is done is dropped.
func (m Model) loadCmd() tea.Cmd {
	if m.load == nil {
		return nil
	}
	ctx, load := m.ctx, m.load
	return func() tea.Msg {
		snap := load(ctx)
		if ctx.Err() != nil {
			return nil
		}
		return loadedMsg(snap)
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	parent := opts.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	opts.Context = ctx

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && parent.Err() != nil {
		return nil
	}
	return err
}
