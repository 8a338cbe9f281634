// Package boss runs the ball-drop encounter: answer balls wait at a gate
// until the player stands on the lever, then fall and bounce until they
// are picked up.
package boss

import (
	"math/rand"

	"github.com/vovakirdan/quizjump/internal/config"
	"github.com/vovakirdan/quizjump/internal/core"
	"github.com/vovakirdan/quizjump/internal/physics"
)

// Phase is the encounter progress.
type Phase int

const (
	PhaseNone   Phase = iota // No encounter
	PhaseLever               // Balls held, waiting for the lever
	PhaseActive              // Balls released
)

func (p Phase) String() string {
	switch p {
	case PhaseLever:
		return "lever"
	case PhaseActive:
		return "active"
	default:
		return "none"
	}
}

// Kind is a ball's payload.
type Kind int

const (
	KindAnswer  Kind = iota // Carries a candidate answer
	KindHeart               // Restores one heart
	KindPowerUp             // Adds one shield charge
)

// Ball is an encounter ball.
type Ball struct {
	physics.Ball
	Kind    Kind
	Answer  int
	Correct bool
	Held    bool // Waiting at the gate
}

// Lever is the floor button that releases the balls.
type Lever struct {
	core.Box
	Pulled bool
}

// Bonus ball drops spawned on release.
var (
	heartDrop   = drop{spreadX: 100, height: 300, spreadVX: 80, minVY: 20, rangeVY: 40}
	powerUpDrop = drop{spreadX: 150, height: 320, spreadVX: 100, minVY: 10, rangeVY: 50}
)

type drop struct {
	spreadX, height float64
	spreadVX        float64
	minVY, rangeVY  float64
}

// Encounter is one boss round.
type Encounter struct {
	Phase Phase
	Balls []Ball
	Lever Lever

	tuning config.BossTuning
	arena  physics.Arena
}

// NewEncounter creates an idle encounter for an arena.
func NewEncounter(t config.BossTuning, arena physics.Arena) *Encounter {
	return &Encounter{tuning: t, arena: arena}
}

// Arena returns the bounds balls bounce in.
func (e *Encounter) Arena() physics.Arena {
	return e.arena
}

// Arm starts an encounter with held balls and an unpulled lever.
func (e *Encounter) Arm(balls []Ball, lever Lever) {
	e.Balls = balls
	e.Lever = lever
	e.Lever.Pulled = false
	e.Phase = PhaseLever
}

// Clear ends the encounter and drops every ball.
func (e *Encounter) Clear() {
	e.Phase = PhaseNone
	e.Balls = nil
	e.Lever = Lever{}
}

// Active reports whether an encounter is in progress.
func (e *Encounter) Active() bool {
	return e.Phase != PhaseNone
}

// OnLever reports whether body is pressing the lever: feet between the
// lever top and its bottom plus the band, horizontal overlap, not rising.
func (e *Encounter) OnLever(body physics.Body) bool {
	if e.Phase != PhaseLever || e.Lever.Pulled {
		return false
	}
	feet := body.Feet()
	if feet < e.Lever.Y || feet > e.Lever.Bottom()+e.tuning.LeverBand {
		return false
	}
	return body.VY >= 0 && body.Box().OverlapsX(e.Lever.Box)
}

// CheckLever releases the balls when body presses the lever. The body is
// snapped onto the lever top. It reports whether the lever fired.
func (e *Encounter) CheckLever(body *physics.Body, rng *rand.Rand) bool {
	if !e.OnLever(*body) {
		return false
	}
	body.Y = e.Lever.Y - body.H
	body.VY = 0
	e.Release(rng)
	return true
}

// Release frees every held ball with a random outward and downward push,
// and adds one heart ball and one power-up ball.
func (e *Encounter) Release(rng *rand.Rand) {
	e.Phase = PhaseActive
	e.Lever.Pulled = true

	for i := range e.Balls {
		b := &e.Balls[i]
		b.Held = false
		b.VX = (rng.Float64() - 0.5) * e.tuning.ReleaseSpread
		b.VY = e.tuning.ReleaseMinVY + rng.Float64()*e.tuning.ReleaseRangeVY
	}

	e.Balls = append(e.Balls,
		e.bonus(rng, KindHeart, heartDrop),
		e.bonus(rng, KindPowerUp, powerUpDrop),
	)
}

func (e *Encounter) bonus(rng *rand.Rand, kind Kind, d drop) Ball {
	return Ball{
		Ball: physics.Ball{
			X:      e.arena.Width/2 + (rng.Float64()-0.5)*d.spreadX,
			Y:      e.arena.FloorY - d.height,
			VX:     (rng.Float64() - 0.5) * d.spreadVX,
			VY:     d.minVY + rng.Float64()*d.rangeVY,
			Radius: e.tuning.BonusRadius,
		},
		Kind: kind,
	}
}

// Step integrates released balls. Held balls stay at the gate.
func (e *Encounter) Step(dt float64) {
	if e.Phase != PhaseActive {
		return
	}
	for i := range e.Balls {
		if e.Balls[i].Held {
			continue
		}
		physics.StepBall(&e.Balls[i].Ball, dt, e.arena)
	}
}

// Collect removes and returns the released balls body touches, newest
// first. Collection stops after a correct answer ball; the balls after it
// are left for the caller to clear.
func (e *Encounter) Collect(body physics.Body) []Ball {
	if e.Phase != PhaseActive {
		return nil
	}

	var picked []Ball
	for i := len(e.Balls) - 1; i >= 0; i-- {
		b := e.Balls[i]
		if b.Held || !physics.Touches(body, b.Ball, e.tuning.PickupPadding) {
			continue
		}
		e.Balls = append(e.Balls[:i], e.Balls[i+1:]...)
		picked = append(picked, b)
		if b.Kind == KindAnswer && b.Correct {
			break
		}
	}
	return picked
}
