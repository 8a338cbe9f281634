package tui

import (
	"time"

	"github.com/vovakirdan/quizjump/internal/core"
)

// Terminals report key presses and auto-repeats but no releases, so a press
// counts as held for a short window that each repeat extends.
const (
	moveHold = 220 * time.Millisecond
	jumpHold = 120 * time.Millisecond
)

// heldKeys turns discrete key events into a sampled Intent.
type heldKeys struct {
	until map[core.Action]time.Time
}

func newHeldKeys() *heldKeys {
	return &heldKeys{until: make(map[core.Action]time.Time)}
}

// Press records a key event for a movement action.
func (h *heldKeys) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
		h.until[a] = now.Add(moveHold)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
		h.until[a] = now.Add(moveHold)
	case core.ActionJump, core.ActionUsePowerUp:
		h.until[a] = now.Add(jumpHold)
	}
}

// Intent samples the actions held at now.
func (h *heldKeys) Intent(now time.Time) core.Intent {
	return core.Intent{
		Left:       h.held(core.ActionLeft, now),
		Right:      h.held(core.ActionRight, now),
		Jump:       h.held(core.ActionJump, now),
		UsePowerUp: h.held(core.ActionUsePowerUp, now),
	}
}

// Clear releases everything.
func (h *heldKeys) Clear() {
	clear(h.until)
}

func (h *heldKeys) held(a core.Action, now time.Time) bool {
	t, ok := h.until[a]
	return ok && now.Before(t)
}
