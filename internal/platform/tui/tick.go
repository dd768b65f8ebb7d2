// Package tui provides the Bubble Tea integration for the bounce arena.
// It handles the terminal UI loop, input mapping and frame scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per display frame, carrying the frame timestamp.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends the next frame message
// at the given rate.
func frameCmd(frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 60
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
