// ABOUTME: TUI initialization and control
// ABOUTME: Wraps bubbletea program for the spectrum display
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// NewModel creates a new TUI model for a capture stream
func NewModel(streamName, spec, device string) Model {
	return Model{
		streamName: streamName,
		spec:       spec,
		device:     device,
	}
}

// Run creates the TUI program; the caller starts it and sends SpectrumMsg
// values through Send
func Run(streamName, spec, device string) *tea.Program {
	return tea.NewProgram(NewModel(streamName, spec, device), tea.WithAltScreen())
}
