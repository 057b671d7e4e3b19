package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Sender holds a function to send messages to Bubble Tea; it is set once
// the program exists so engine callbacks registered earlier can reach it
type Sender struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

// NewSender creates a new Sender
func NewSender() *Sender {
	return &Sender{}
}

// Set sets the send function
func (s *Sender) Set(send func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.send = send
}

// Send sends a message if the send function is set
func (s *Sender) Send(msg tea.Msg) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.send != nil {
		s.send(msg)
	}
}
