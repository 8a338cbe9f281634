package core

// Action represents a semantic player action, abstracted from physical key presses.
// The platform maps keys to actions; the session only ever sees Intents and
// lifecycle calls derived from them.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // A, Left arrow - move left
	ActionRight             // D, Right arrow - move right
	ActionJump              // Space, W, Up - jump
	ActionUsePowerUp        // E - use power-up
	ActionConfirm           // Enter - start game / continue after boss
	ActionBack              // B - back to start screen from pause
	ActionRestart           // R - play again after game over
	ActionQuit              // Q, Ctrl+C - exit program
	ActionPause             // P, Escape - pause/unpause game
	ActionScores            // Tab - open scoreboard
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionUsePowerUp:
		return "UsePowerUp"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionScores:
		return "Scores"
	default:
		return "Unknown"
	}
}

// Intent is the normalized input the session samples once per frame.
type Intent struct {
	Left       bool
	Right      bool
	Jump       bool
	UsePowerUp bool
}

// Horizontal returns -1, 0 or 1 for the net horizontal direction.
func (i Intent) Horizontal() int {
	dir := 0
	if i.Left {
		dir--
	}
	if i.Right {
		dir++
	}
	return dir
}
