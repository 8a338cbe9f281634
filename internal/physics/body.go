// Package physics integrates bodies and classifies their contacts with
// platforms, floors and balls. Everything here is a pure function of its
// inputs; the session owns all state.
package physics

import (
	"github.com/vovakirdan/quizjump/internal/config"
	"github.com/vovakirdan/quizjump/internal/core"
)

// Body is an axis-aligned moving box. Y grows downward.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64
}

// Box returns the body's bounds.
func (b Body) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// Feet returns the y-coordinate of the body's bottom edge.
func (b Body) Feet() float64 {
	return b.Y + b.H
}

// Center returns the body's center point.
func (b Body) Center() core.Vec {
	return b.Box().Center()
}

// Params are the integration and contact constants for one session.
type Params struct {
	Gravity          float64
	Friction         float64 // Per-frame horizontal damping factor
	Accel            float64 // Per-frame horizontal acceleration, already scaled by sensitivity
	MaxSpeed         float64 // Already scaled by sensitivity
	LandingTolerance float64
	LandingSlack     float64
	RestBand         float64
}

// NewParams builds params from tuning, scaling acceleration and top speed by
// the player's speed sensitivity.
func NewParams(t config.PhysicsTuning, sensitivity float64) Params {
	if sensitivity <= 0 {
		sensitivity = 1
	}
	return Params{
		Gravity:          t.Gravity,
		Friction:         t.Friction,
		Accel:            t.Accel * sensitivity,
		MaxSpeed:         t.MaxSpeed * sensitivity,
		LandingTolerance: t.LandingTolerance,
		LandingSlack:     t.LandingSlack,
		RestBand:         t.RestBand,
	}
}

// Integrate advances b by dt seconds. Horizontal input accelerates, then
// friction damps and the speed is clamped; gravity (scaled by gravityMult)
// accelerates downward; position follows velocity on both axes.
func Integrate(b *Body, in core.Intent, dt float64, p Params, gravityMult float64) {
	if in.Left {
		b.VX -= p.Accel
	}
	if in.Right {
		b.VX += p.Accel
	}
	b.VX *= p.Friction
	b.VX = core.ClampF(b.VX, -p.MaxSpeed, p.MaxSpeed)

	b.VY += p.Gravity * dt * gravityMult
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// Jump sets the upward impulse. Callers decide whether a jump is legal.
func Jump(b *Body, height float64) {
	b.VY = -height
}

// ClampX keeps the body inside [0, width].
func ClampX(b *Body, width float64) {
	if b.X < 0 {
		b.X = 0
		if b.VX < 0 {
			b.VX = 0
		}
	}
	if b.X+b.W > width {
		b.X = width - b.W
		if b.VX > 0 {
			b.VX = 0
		}
	}
}
