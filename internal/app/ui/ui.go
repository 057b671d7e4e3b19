package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/GofMan5/Antigravity-Manager/internal/app/console"
)

// UI runs the debug console view
type UI interface {
	Run(ctx context.Context) error
}

// ui implements the UI interface
type ui struct {
	console   console.Console
	follow    *console.FollowController
	formatter *console.Formatter
	sender    *Sender
}

// New creates the UI
func New(cons console.Console, follow *console.FollowController, formatter *console.Formatter, sender *Sender) UI {
	return &ui{
		console:   cons,
		follow:    follow,
		formatter: formatter,
		sender:    sender,
	}
}

// Run wires engine notifications into Bubble Tea and blocks until the
// program exits
func (u *ui) Run(ctx context.Context) error {
	p := tea.NewProgram(
		NewModel(u.console, u.formatter),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	u.sender.Set(p.Send)

	u.console.AddListener(func(console.Event) {
		u.sender.Send(consoleChangedMsg{})
	})

	u.follow.SetEffect(func() {
		u.sender.Send(scrollBottomMsg{})
	})

	_, err := p.Run()

	return err
}
