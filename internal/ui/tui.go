// ABOUTME: TUI initialization and control
// ABOUTME: Wraps the bubbletea program and its channels back to the player
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// VolumeChangeMsg carries a volume change from the TUI to the player
type VolumeChangeMsg struct {
	Volume int
	Muted  bool
}

// QuitMsg signals that the user aborted playback
type QuitMsg struct{}

// PlaybackControl holds channels from the TUI back to the player
type PlaybackControl struct {
	Changes chan VolumeChangeMsg
	Quit    chan QuitMsg
}

// NewPlaybackControl creates a new control handler
func NewPlaybackControl() *PlaybackControl {
	return &PlaybackControl{
		Changes: make(chan VolumeChangeMsg, 10),
		Quit:    make(chan QuitMsg, 1),
	}
}

func (c *PlaybackControl) change(volume int, muted bool) {
	if c == nil {
		return
	}
	select {
	case c.Changes <- VolumeChangeMsg{Volume: volume, Muted: muted}:
	default:
	}
}

func (c *PlaybackControl) quit() {
	if c == nil {
		return
	}
	select {
	case c.Quit <- QuitMsg{}:
	default:
	}
}

// TapeInfo describes the tape shown by the TUI
type TapeInfo struct {
	Name         string
	Format       string
	PayloadBytes int
	SampleRate   int
	TotalSamples int
}

// NewModel creates a new TUI model
func NewModel(info TapeInfo, ctrl *PlaybackControl) Model {
	return Model{
		name:         info.Name,
		format:       info.Format,
		payloadBytes: info.PayloadBytes,
		sampleRate:   info.SampleRate,
		totalSamples: info.TotalSamples,
		volume:       100,
		control:      ctrl,
	}
}

// Run creates the TUI program; the caller starts it
func Run(info TapeInfo, ctrl *PlaybackControl) *tea.Program {
	return tea.NewProgram(NewModel(info, ctrl), tea.WithAltScreen())
}
