package game

import (
	"errors"
	"fmt"
)

// State is the session lifecycle state.
type State int

const (
	StateStart State = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateBossComplete
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	case StateBossComplete:
		return "bossComplete"
	default:
		return "unknown"
	}
}

// Event drives a state transition.
type Event int

const (
	EventBegin     Event = iota // Start a new run from the start screen
	EventPause                  // Freeze the world
	EventResume                 // Unfreeze the world
	EventQuit                   // Abandon the run and return to the start screen
	EventBossClear              // Boss beaten; wait for the player
	EventContinue               // Leave the boss-complete screen
	EventLose                   // Out of hearts or fell off
	EventRestart                // Play again after game over
)

func (e Event) String() string {
	switch e {
	case EventBegin:
		return "begin"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventQuit:
		return "quit"
	case EventBossClear:
		return "bossClear"
	case EventContinue:
		return "continue"
	case EventLose:
		return "lose"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is returned when an event is not allowed in the
// current state.
var ErrInvalidTransition = errors.New("invalid state transition")

type transition struct {
	from State
	on   Event
}

var transitions = map[transition]State{
	{StateStart, EventBegin}:           StatePlaying,
	{StatePlaying, EventPause}:         StatePaused,
	{StatePaused, EventResume}:         StatePlaying,
	{StatePaused, EventQuit}:           StateStart,
	{StatePlaying, EventBossClear}:     StateBossComplete,
	{StateBossComplete, EventContinue}: StatePlaying,
	{StateBossComplete, EventQuit}:     StateStart,
	{StatePlaying, EventLose}:          StateGameOver,
	{StateGameOver, EventRestart}:      StatePlaying,
	{StateGameOver, EventQuit}:         StateStart,
}

// Machine is the explicit session state machine.
type Machine struct {
	state State
}

// NewMachine returns a machine in StateStart.
func NewMachine() *Machine {
	return &Machine{state: StateStart}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Can reports whether ev is allowed in the current state.
func (m *Machine) Can(ev Event) bool {
	_, ok := transitions[transition{m.state, ev}]
	return ok
}

// Fire applies ev. An invalid event leaves the state unchanged.
func (m *Machine) Fire(ev Event) (State, error) {
	next, ok := transitions[transition{m.state, ev}]
	if !ok {
		return m.state, fmt.Errorf("%w: %s in %s", ErrInvalidTransition, ev, m.state)
	}
	m.state = next
	return next, nil
}
