package game

import (
	"math/rand"

	"github.com/vovakirdan/quizjump/internal/core"
)

// particleGravity pulls particles down, in px/s².
const particleGravity = 200

// Particle is a presentation-only spark. It never affects the simulation.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Size    float64
	Color   core.Color
}

// Alpha returns the remaining life fraction in [0, 1].
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(p.Life/p.MaxLife, 0, 1)
}

func spawnParticles(rng *rand.Rand, dst []Particle, x, y float64, c core.Color, count int) []Particle {
	for i := 0; i < count; i++ {
		life := 0.6 + rng.Float64()*0.4
		dst = append(dst, Particle{
			X:       x,
			Y:       y,
			VX:      (rng.Float64() - 0.5) * 200,
			VY:      -rng.Float64()*150 - 50,
			Life:    life,
			MaxLife: life,
			Size:    3 + rng.Float64()*4,
			Color:   c,
		})
	}
	return dst
}

// stepParticles advances and expires particles in place.
func stepParticles(ps []Particle, dt float64) []Particle {
	alive := ps[:0]
	for _, p := range ps {
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VY += particleGravity * dt
		alive = append(alive, p)
	}
	return alive
}
