// ABOUTME: Bubbletea model for the tape player TUI
// ABOUTME: Tracks playback progress and volume, and renders the cassette view
package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Model represents the TUI state
type Model struct {
	// Tape
	name         string
	format       string
	payloadBytes int

	// Signal
	sampleRate   int
	totalSamples int
	played       int

	// Playback
	volume int
	muted  bool
	done   bool
	err    error

	control *PlaybackControl

	// Dimensions
	width  int
	height int
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
	case StatusMsg:
		m.applyStatus(msg)
		if m.done {
			return m, tea.Quit
		}
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
	s += m.renderProgress()
	s += m.renderControls()
	s += m.renderHelp()

	return s
}

// renderHeader renders the tape being played
func (m Model) renderHeader() string {
	status := "Playing"
	switch {
	case m.err != nil:
		status = "Error: " + m.err.Error()
	case m.done:
		status = "Finished"
	}

	return fmt.Sprintf(`┌─ Orao Tape Player ───────────────────────────────────┐
│ Tape:   %-44s │
│ Format: %-44s │
│ Status: %-44s │
├──────────────────────────────────────────────────────┤
`, truncate(m.name, 44),
		fmt.Sprintf("%s TAP, %d bytes, %dHz", m.format, m.payloadBytes, m.sampleRate),
		truncate(status, 44))
}

// renderProgress renders the position within the signal
func (m Model) renderProgress() string {
	percent := 0
	if m.totalSamples > 0 {
		percent = m.played * 100 / m.totalSamples
	}

	return fmt.Sprintf("│ [%s] %3d%% │\n"+
		"│ %-52s │\n",
		renderBar(m.played, m.totalSamples, 45), percent,
		fmt.Sprintf("%s / %s", formatDuration(m.elapsed()), formatDuration(m.length())))
}

// renderControls renders volume status
func (m Model) renderControls() string {
	muteIcon := ""
	if m.muted {
		muteIcon = " (muted)"
	}

	return fmt.Sprintf("│ Volume: [%s] %3d%%%-22s │\n",
		renderBar(m.volume, 100, 10), m.volume, muteIcon)
}

// renderHelp renders keyboard shortcuts
func (m Model) renderHelp() string {
	return `├──────────────────────────────────────────────────────┤
│ ↑/↓:Volume  m:Mute  q:Quit                           │
└──────────────────────────────────────────────────────┘
`
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.control.quit()
		return m, tea.Quit
	case "up":
		m.volume = min(100, m.volume+5)
		m.control.change(m.volume, m.muted)
	case "down":
		m.volume = max(0, m.volume-5)
		m.control.change(m.volume, m.muted)
	case "m":
		m.muted = !m.muted
		m.control.change(m.volume, m.muted)
	}

	return m, nil
}

// applyStatus updates model from status message
func (m *Model) applyStatus(msg StatusMsg) {
	if msg.Played > m.played {
		m.played = msg.Played
	}
	if msg.Err != nil {
		m.err = msg.Err
	}
	if msg.Done {
		m.done = true
	}
}

func (m Model) elapsed() time.Duration {
	return samplesToDuration(m.played, m.sampleRate)
}

func (m Model) length() time.Duration {
	return samplesToDuration(m.totalSamples, m.sampleRate)
}

// StatusMsg updates TUI state
type StatusMsg struct {
	Played int
	Done   bool
	Err    error
}

// Utility functions
func renderBar(value, max, width int) string {
	filled := 0
	if max > 0 {
		filled = (value * width) / max
	}
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

func samplesToDuration(samples, rate int) time.Duration {
	if rate <= 0 {
		return 0
	}
	return time.Duration(samples) * time.Second / time.Duration(rate)
}

func formatDuration(d time.Duration) string {
	d = d.Round(100 * time.Millisecond)
	return fmt.Sprintf("%d:%04.1f", int(d.Minutes()), (d % time.Minute).Seconds())
}
