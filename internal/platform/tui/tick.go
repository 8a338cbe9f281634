// Package tui hosts a QuizJump session in the terminal with Bubble Tea: the
// frame loop, key mapping, rendering and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the wall-clock delta handed to the session.
const maxFrameDelta = 100 * time.Millisecond

// TickMsg is sent to trigger a simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks, clamped to
// [0, maxFrameDelta]. The first tick (zero last) counts as one interval.
func frameDelta(last, now time.Time, tickRate int) float64 {
	if last.IsZero() {
		if tickRate <= 0 {
			tickRate = 60
		}
		return 1 / float64(tickRate)
	}
	d := now.Sub(last)
	if d < 0 {
		d = 0
	}
	if d > maxFrameDelta {
		d = maxFrameDelta
	}
	return d.Seconds()
}
