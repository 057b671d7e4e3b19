package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/GofMan5/Antigravity-Manager/internal/app/console"
)

// headerHeight is the number of lines above the viewport, footerHeight below
const (
	headerHeight = 2
	footerHeight = 2
)

// consoleChangedMsg signals that the visible set must be re-read
type consoleChangedMsg struct{}

// scrollBottomMsg is the follow controller's "move view to bottom" effect
type scrollBottomMsg struct{}

// Model is the debug console view. It holds no engine state: every action
// calls into the console or the formatter, and the content is re-read from
// the visible set on each change notification.
type Model struct {
	console   console.Console
	formatter *console.Formatter

	viewport  viewport.Model
	search    textinput.Model
	searching bool
	status    string
	width     int
	height    int
	ready     bool
}

// NewModel creates the console view model
func NewModel(cons console.Console, formatter *console.Formatter) Model {
	search := textinput.New()
	search.Placeholder = "search"
	search.Prompt = "/"
	search.CharLimit = 128

	return Model{
		console:   cons,
		formatter: formatter,
		viewport:  viewport.New(0, 0),
		search:    search,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - footerHeight
		m.ready = true
		m.setContent()

		if m.console.AutoScroll() {
			m.viewport.GotoBottom()
		}

		return m, nil

	case consoleChangedMsg:
		m.setContent()

		return m, nil

	case scrollBottomMsg:
		m.viewport.GotoBottom()

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	if level, ok := levelKeys[msg.String()]; ok {
		m.console.ToggleLevel(level)

		return m, nil
	}

	switch msg.String() {
	case keyQuit:
		return m, tea.Quit

	case keySearch:
		m.searching = true
		m.search.SetValue(m.console.Filter().SearchTerm)
		m.search.Focus()

		return m, textinput.Blink

	case keyCopy:
		if err := m.formatter.CopyAsText(m.console.Visible()); err != nil {
			m.status = "copy failed"
		} else {
			m.status = "copied to clipboard"
		}

		return m, nil

	case keyExport:
		name, err := m.formatter.ExportAsLines(m.console.Visible())
		if err != nil {
			m.status = "export failed"
		} else {
			m.status = "exported to " + name
		}

		return m, nil

	case keyClear:
		m.status = ""
		m.console.Clear()

		return m, nil

	case keyJump, keyEnd:
		m.console.JumpToLatest()

		return m, nil
	}

	return m.handleScrollKey(msg)
}

// handleSearchKey routes input while the search field is focused; the term
// is applied live on every change
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()

		return m, nil

	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.console.SetSearchTerm("")

		return m, nil
	}

	var cmd tea.Cmd

	before := m.search.Value()
	m.search, cmd = m.search.Update(msg)

	if m.search.Value() != before {
		m.console.SetSearchTerm(m.search.Value())
	}

	return m, cmd
}

// handleScrollKey forwards movement keys to the viewport and reports the
// resulting at-bottom state to the follow controller
func (m Model) handleScrollKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	m.viewport, cmd = m.viewport.Update(msg)

	m.console.SetAutoScroll(m.atBottom())

	return m, cmd
}

// atBottom reports whether the viewport sits within the bottom threshold
func (m Model) atBottom() bool {
	return m.viewport.YOffset >= m.viewport.TotalLineCount()-m.viewport.Height
}

// setContent re-renders the visible set, preserving the scroll position
// unless the console is following
func (m *Model) setContent() {
	oldYOffset := m.viewport.YOffset

	m.viewport.SetContent(m.renderEntries())

	if m.console.AutoScroll() {
		m.viewport.GotoBottom()

		return
	}

	maxYOffset := m.viewport.TotalLineCount() - m.viewport.Height
	if maxYOffset < 0 {
		maxYOffset = 0
	}

	if oldYOffset > maxYOffset {
		m.viewport.YOffset = maxYOffset
	} else {
		m.viewport.YOffset = oldYOffset
	}
}

// statusLine builds the footer status segment
func (m Model) statusLine() string {
	follow := "paused"
	if m.console.AutoScroll() {
		follow = "follow"
	}

	visible := len(m.console.Visible())
	total := len(m.console.Snapshot())

	line := fmt.Sprintf("%d/%d · %s", visible, total, follow)

	if m.status != "" {
		line += " · " + m.status
	}

	return line
}
