// ABOUTME: Bubbletea model for the spectrum TUI
// ABOUTME: Holds the latest analysis and renders it as a bar display
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	barHeight  = 9
	maxColumns = 50
)

// Model represents the TUI state
type Model struct {
	// Stream
	streamName string
	spec       string
	device     string

	// Analysis
	topFreq   float64
	topVolume float64
	levels    []uint8
	windows   int64
	latency   time.Duration

	// Display
	paused    bool
	showDebug bool
	errText   string

	// Dimensions
	width  int
	height int
}

// SpectrumMsg carries one analyzed window
type SpectrumMsg struct {
	TopFrequency float64
	TopVolume    float64
	Levels       []uint8
	Latency      time.Duration
}

// ErrorMsg reports a capture failure
type ErrorMsg struct {
	Err error
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case SpectrumMsg:
		m.applySpectrum(msg)
	case ErrorMsg:
		m.errText = msg.Err.Error()
	}

	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	s := ""
	s += m.renderHeader()
	s += m.renderPeak()
	s += m.renderBars()
	s += m.renderError()

	if m.showDebug {
		s += m.renderDebug()
	}

	s += m.renderHelp()

	return s
}

// renderHeader renders stream status
func (m Model) renderHeader() string {
	device := m.device
	if device == "" {
		device = "default device"
	}

	status := "Recording"
	switch {
	case m.errText != "":
		status = "Stopped"
	case m.paused:
		status = "Paused"
	}

	return fmt.Sprintf(`┌─ Spectrum ───────────────────────────────────────────┐
│ Stream: %-44s │
│ Format: %-44s │
│ Device: %-44s │
│ Status: %-44s │
├──────────────────────────────────────────────────────┤
`, truncate(m.streamName, 44), truncate(m.spec, 44), truncate(device, 44), status)
}

// renderPeak renders the loudest frequency
func (m Model) renderPeak() string {
	if m.windows == 0 {
		return "│ Waiting for audio...                                 │\n"
	}
	peak := fmt.Sprintf("%.1f Hz at volume %.1f", m.topFreq, m.topVolume)
	return fmt.Sprintf("│ Top:    %-44s │\n", truncate(peak, 44))
}

// renderBars draws one column per level, tallest at 9
func (m Model) renderBars() string {
	levels := m.levels
	if len(levels) > maxColumns {
		levels = levels[:maxColumns]
	}

	var b strings.Builder
	b.WriteString("│                                                      │\n")
	for row := barHeight; row >= 1; row-- {
		b.WriteString("│ ")
		for _, l := range levels {
			if int(l) >= row {
				b.WriteString("█")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString(strings.Repeat(" ", maxColumns+2-len(levels)))
		b.WriteString(" │\n")
	}
	b.WriteString(fmt.Sprintf("│ [%s]%s │\n", digits(levels), strings.Repeat(" ", maxColumns-len(levels))))
	return b.String()
}

// renderError shows a capture failure; the bars above are no longer live
func (m Model) renderError() string {
	if m.errText == "" {
		return ""
	}
	return fmt.Sprintf("│ Error:  %-44s │\n", truncate(m.errText, 44))
}

// renderHelp renders keyboard shortcuts
func (m Model) renderHelp() string {
	return `├──────────────────────────────────────────────────────┤
│ p:Pause  d:Debug  q:Quit                             │
└──────────────────────────────────────────────────────┘
`
}

// renderDebug renders capture counters
func (m Model) renderDebug() string {
	s := fmt.Sprintf("│ DEBUG:  windows: %-35d │\n", m.windows)
	s += fmt.Sprintf("│         latency: %-35s │\n", m.latency)
	return s
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "p":
		m.paused = !m.paused
	case "d":
		m.showDebug = !m.showDebug
	}

	return m, nil
}

// applySpectrum updates model from an analysis; paused models only count
func (m *Model) applySpectrum(msg SpectrumMsg) {
	m.windows++
	m.latency = msg.Latency
	if m.paused {
		return
	}
	m.topFreq = msg.TopFrequency
	m.topVolume = msg.TopVolume
	m.levels = msg.Levels
}

// Utility functions
func digits(levels []uint8) string {
	b := make([]byte, len(levels))
	for i, l := range levels {
		b[i] = '0' + l
	}
	return string(b)
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}
