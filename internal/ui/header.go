package ui

import (
	"fmt"
	"strings"

	"github.com/five82/tripdesk/internal/roster"
)

// renderHeader renders the title bar: app name, load state, and theme.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("tripdesk", styles.Logo)}

	if !m.loaded {
		parts = append(parts, bg.Render("Loading users...", styles.WarningText.Bold(true)))
	} else {
		// A failed load reads as an empty list.
		count := len(m.view.Records())
		parts = append(parts, bg.Render(fmt.Sprintf("%d users", count), styles.SuccessText))
		if m.width >= LayoutCompactWidth && !m.snapshot.LoadedAt.IsZero() {
			parts = append(parts, bg.Render("as of "+m.snapshot.LoadedAt.Format("15:04:05"), styles.FaintText))
		}
	}

	parts = append(parts, bg.Render("T", styles.AccentText)+bg.Render(":"+m.theme.Name, styles.FaintText))

	return styles.Bar.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderControls renders the search box, category select, and ID column
// button in one row.
func (m Model) renderControls() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	f := m.view.Filter()

	search := m.search.View()
	if m.search.Focused() {
		search = NewBgStyle(m.theme.FocusBg).FillLine(search, max(m.width/3, 24))
	}

	category := bg.Render("f", styles.AccentText) + bg.Spaces(1) +
		bg.Render("‹ "+roster.CategoryLabel(f.Category)+" ›", styles.Text)

	button := bg.Render("c", styles.AccentText) + bg.Spaces(1) +
		styles.Button.Render(idButtonLabel(m.view.IDColumnHidden()))

	size := bg.Render("s", styles.AccentText) + bg.Spaces(1) +
		bg.Render(fmt.Sprintf("Size %d", f.PageSize), styles.MutedText)

	return styles.Bar.Width(m.width).Render(bg.Join([]string{search, category, button, size}, "   "))
}

// renderKeyHints renders the one-line key summary.
func (m Model) renderKeyHints() string {
	bg := NewBgStyle(m.theme.Surface)
	var hints string
	if m.search.Focused() {
		hints = m.help.View(searchKeyMap{keys: m.keys})
	} else {
		hints = m.help.View(m.keys)
	}
	return bg.FillLine(" "+strings.TrimSpace(hints), m.width)
}
