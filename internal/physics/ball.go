package physics

import (
	"math"
)

// Ball is a circle integrated under gravity. X, Y is the center.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Arena bounds ball motion: walls at 0 and Width, a floor at FloorY.
type Arena struct {
	Width         float64
	FloorY        float64
	Gravity       float64
	Restitution   float64
	FloorFriction float64 // Horizontal damping on each floor bounce
}

// StepBall advances b by dt and bounces it off the floor and walls.
func StepBall(b *Ball, dt float64, a Arena) {
	b.VY += a.Gravity * dt
	b.X += b.VX * dt
	b.Y += b.VY * dt

	if b.Y+b.Radius >= a.FloorY {
		b.Y = a.FloorY - b.Radius
		b.VY *= -a.Restitution
		b.VX *= a.FloorFriction
	}
	if b.X-b.Radius <= 0 {
		b.X = b.Radius
		b.VX *= -a.Restitution
	}
	if b.X+b.Radius >= a.Width {
		b.X = a.Width - b.Radius
		b.VX *= -a.Restitution
	}
}

// Touches reports whether body and ball are close enough to pick up: the
// center distance is below the ball radius plus half the body's shorter
// side plus pad.
func Touches(body Body, ball Ball, pad float64) bool {
	c := body.Center()
	dist := math.Hypot(c.X-ball.X, c.Y-ball.Y)
	return dist < ball.Radius+math.Min(body.W, body.H)/2+pad
}
