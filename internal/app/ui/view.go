package ui

import (
	"strings"

	"github.com/GofMan5/Antigravity-Manager/internal/app/console"
)

// View implements tea.Model
func (m Model) View() string {
	if !m.ready {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(m.renderHeader())
	sb.WriteString("\n\n")

	body := m.viewport.View()
	if strings.TrimSpace(body) == "" {
		body = emptyStateStyle.Render("No entries match the current filter.")
	}

	sb.WriteString(body)
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render(m.statusLine()))
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render(helpLine))

	return sb.String()
}

// renderHeader renders the title, level chips, and search state
func (m Model) renderHeader() string {
	parts := []string{titleStyle.Render("debug console")}

	filter := m.console.Filter()

	for _, level := range console.Levels {
		chip := level.String()

		if filter.Levels.Has(level) {
			parts = append(parts, levelStyle(level).Render(chip))
		} else {
			parts = append(parts, chipOffStyle.Render(chip))
		}
	}

	if m.searching {
		parts = append(parts, m.search.View())
	} else if filter.SearchTerm != "" {
		parts = append(parts, statusStyle.Render("/"+filter.SearchTerm))
	}

	return strings.Join(parts, "  ")
}

// renderEntries renders the visible set, one line per entry
func (m Model) renderEntries() string {
	var sb strings.Builder

	for _, entry := range m.console.Visible() {
		renderEntry(&sb, entry)
	}

	return sb.String()
}

// renderEntry renders one entry: time, level, target, message, fields
func renderEntry(sb *strings.Builder, entry console.Entry) {
	sb.WriteString(timestampStyle.Render(entry.Time().Format("15:04:05.000")))
	sb.WriteString(" ")
	sb.WriteString(levelStyle(entry.Level).Render(padLevel(entry.Level)))
	sb.WriteString(" ")

	if entry.Target != "" {
		sb.WriteString(targetStyle.Render(entry.Target))
		sb.WriteString(" ")
	}

	sb.WriteString(strings.TrimRight(entry.Message, "\n\r"))

	for _, field := range entry.Fields {
		sb.WriteString(" ")
		sb.WriteString(fieldStyle.Render(field.Key + "=" + field.Value))
	}

	sb.WriteString("\n")
}

// padLevel pads severities to a fixed width so columns align
func padLevel(level console.Level) string {
	const width = 5

	s := level.String()
	if len(s) < width {
		s += strings.Repeat(" ", width-len(s))
	}

	return s
}
