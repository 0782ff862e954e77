package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tripdesk/internal/roster"
)

// maxDotPages is the page count above which the pager shows "n/m" instead
// of dots.
const maxDotPages = 10

// syncTable rebuilds the table from the view's current page. The table is
// rebuilt rather than updated so the column set and row width always agree
// after the ID column toggles. resetCursor moves the cursor to the first row.
func (m *Model) syncTable(resetCursor bool) {
	res := m.view.Visible()
	cols := m.view.Columns()

	columns := make([]table.Column, len(cols))
	for i, col := range cols {
		columns[i] = table.Column{Title: col.Title, Width: col.Width}
	}

	rows := make([]table.Row, len(res.Rows))
	for i, rec := range res.Rows {
		row := make(table.Row, len(cols))
		for j, col := range cols {
			row[j] = truncate(col.Value(rec), col.Width)
		}
		rows[i] = row
	}

	cursor := 0
	if !resetCursor {
		cursor = m.table.Cursor()
	}

	m.table = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(m.tableRows()),
		table.WithWidth(max(m.width-2, 0)),
		table.WithFocused(true),
		table.WithStyles(m.theme.TableStyles()),
	)
	if len(rows) > 0 {
		m.table.SetCursor(min(max(cursor, 0), len(rows)-1))
	}

	m.syncPager(res)
}

// syncPager mirrors the filter's page into the paginator. The page count
// comes from the unsliced match count.
func (m *Model) syncPager(res roster.Result) {
	pages := res.TotalPages()
	m.pager.PerPage = max(res.PageSize, 1)
	m.pager.TotalPages = max(pages, 1)
	m.pager.Page = max(res.Page-1, 0)
	if pages > maxDotPages {
		m.pager.Type = paginator.Arabic
	} else {
		m.pager.Type = paginator.Dots
	}
}

// tableRows returns the table height including its header row.
func (m Model) tableRows() int {
	if m.height <= 0 {
		return defaultTableRows
	}
	// -2 for the pane borders
	return max(m.height-chromeRows-2, minTableRows)
}

// renderTable renders the table pane.
func (m Model) renderTable() string {
	title := "Users"
	if f := m.view.Filter(); roster.IsFilteringCategory(f.Category) {
		title = fmt.Sprintf("Users · %s", roster.CategoryLabel(f.Category))
	}
	return m.renderTitledBox(title, m.table.View(), m.width, m.tableRows()+2, !m.search.Focused())
}

// renderFooter renders the pagination control.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	res := m.view.Visible()
	status := fmt.Sprintf("Page %d of %d · %d matches", res.Page, max(res.TotalPages(), 1), res.Total)

	parts := []string{
		m.pager.View(),
		bg.Render(status, styles.Text),
		bg.Render(fmt.Sprintf("%d per page", res.PageSize), styles.MutedText),
	}
	return styles.Bar.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColorStr := m.theme.Border
	if focused {
		borderColorStr = m.theme.BorderFocus
	}
	bg := NewBgStyle(m.theme.SurfaceAlt)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-4, 0))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Spaces(1) + bg.Render(title, titleStyle) + bg.Spaces(1) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	lines := make([]string, 0, boxHeight+2)
	lines = append(lines, topBorder)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		lines = append(lines,
			bg.Render("│", borderStyle)+
				bg.FillLine(line, innerWidth)+
				bg.Render("│", borderStyle))
	}
	lines = append(lines, bottomBorder)
	return strings.Join(lines, "\n")
}
