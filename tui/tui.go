// Package tui provides the interactive terminal session.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Values seed the stack, pushed in order.
	Values []string
}

// Run initializes and executes the Bubble Tea application loop.
func Run(options *Options) error {
	_, err := tea.NewProgram(newBubble(options), tea.WithAltScreen()).Run()
	return err
}
