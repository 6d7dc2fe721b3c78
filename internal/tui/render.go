package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tasksheet/internal/sheet"
)

const maxCellWidth = 28

func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("Task Management Table"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render("Track and manage your project tasks efficiently"))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderTabs())
	sb.WriteString("\n\n")

	if m.selectorOpen && m.view.Mode() == sheet.ModeCustom {
		sb.WriteString(m.renderSelector())
		sb.WriteString("\n")
	}

	if m.Compact() {
		sb.WriteString(m.renderAccordion())
	} else {
		sb.WriteString(m.renderGrid())
	}
	sb.WriteString("\n")

	if m.editing {
		f, _ := m.currentField()
		sb.WriteString(fmt.Sprintf("%s (row %d): %s\n", f.Label, m.row+1, m.input.View()))
	}
	if m.status != "" {
		sb.WriteString(m.styles.Status.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}

func (m *Model) renderTabs() string {
	tabs := make([]string, 0, len(sheet.Modes))
	for i, mode := range sheet.Modes {
		label := fmt.Sprintf("%d %s", i+1, mode.Title())
		if mode == m.view.Mode() {
			tabs = append(tabs, m.styles.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderSelector() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("Select Columns to Display"))
	sb.WriteString("\n")

	vis := m.view.Visibility()
	for i, id := range sheet.CanonicalFields() {
		box := "[ ]"
		if vis.Visible(id) {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, sheet.Label(id))
		if i == m.selectorCursor {
			sb.WriteString(m.styles.OpenItem.Render("> " + line))
		} else {
			sb.WriteString(m.styles.Item.Render("  " + line))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderGrid draws the wide surface: one column per projected field.
func (m *Model) renderGrid() string {
	rows := m.engine.Rows()
	ids := m.proj.IDs
	if len(ids) == 0 {
		return m.styles.Empty.Render("No columns selected")
	}

	widths := make([]int, len(ids))
	for i, label := range m.proj.Labels {
		widths[i] = lipgloss.Width(label)
	}
	cells := make([][]string, rows.Len())
	for r := range cells {
		row := rows.Row(r)
		cells[r] = make([]string, len(ids))
		for c, id := range ids {
			text := truncate(CellText(row, id), maxCellWidth)
			cells[r][c] = text
			widths[c] = max(widths[c], lipgloss.Width(text))
		}
	}

	numWidth := len(fmt.Sprint(rows.Len()))
	sep := m.styles.Separator.Render("│")

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", numWidth+1))
	for c, label := range m.proj.Labels {
		sb.WriteString(m.styles.Header.Width(widths[c] + 2).Render(label))
		if c < len(ids)-1 {
			sb.WriteString(sep)
		}
	}
	sb.WriteString("\n")

	total := numWidth + 1 + len(ids) - 1
	for _, w := range widths {
		total += w + 2
	}
	sb.WriteString(m.styles.Separator.Render(strings.Repeat("─", total)))
	sb.WriteString("\n")

	for r := range cells {
		sb.WriteString(m.styles.RowNumber.Width(numWidth).Render(fmt.Sprint(r+1)) + " ")
		for c, id := range ids {
			style := m.cellStyle(rows.Row(r), id, r == m.row && c == m.col)
			sb.WriteString(style.Width(widths[c] + 2).Render(cells[r][c]))
			if c < len(ids)-1 {
				sb.WriteString(sep)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderAccordion draws the narrow surface: one collapsed line per row with
// the cursor row expanded into label/value pairs.
func (m *Model) renderAccordion() string {
	rows := m.engine.Rows()
	if len(m.proj.IDs) == 0 {
		return m.styles.Empty.Render("No columns selected")
	}

	var sb strings.Builder
	for r := 0; r < rows.Len(); r++ {
		row := rows.Row(r)
		title := row.Text(sheet.FieldTask)
		if title == "" {
			title = "New task"
		}
		if est := row.Text(sheet.FieldEst); est != "" {
			title = fmt.Sprintf("%s (%s)", title, est)
		}

		if r != m.row {
			sb.WriteString(m.styles.Item.Render(fmt.Sprintf("▸ %d. %s", r+1, title)))
			sb.WriteString("\n")
			continue
		}

		sb.WriteString(m.styles.OpenItem.Render(fmt.Sprintf("▾ %d. %s", r+1, title)))
		sb.WriteString("\n")
		for c, id := range m.proj.IDs {
			label := m.styles.Subtitle.Render(fmt.Sprintf("    %-20s", m.proj.Labels[c]))
			value := m.cellStyle(row, id, c == m.col).Render(CellText(row, id))
			sb.WriteString(label + value + "\n")
		}
	}
	return sb.String()
}

func (m *Model) cellStyle(row sheet.Row, id sheet.FieldID, selected bool) lipgloss.Style {
	if selected {
		return m.styles.Cursor
	}
	f, _ := sheet.Lookup(id)
	switch {
	case f.Kind == sheet.KindComputed:
		return m.styles.Rate
	case f.Kind == sheet.KindSummary:
		if summary(f, row) == "No task" {
			return m.styles.Empty
		}
		return m.styles.Summary
	case f.Kind == sheet.KindClock && id == sheet.FieldEst && row.Text(id) != "":
		return m.styles.Estimate
	default:
		return m.styles.Cell
	}
}
