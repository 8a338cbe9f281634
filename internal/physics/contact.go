package physics

import (
	"math"

	"github.com/vovakirdan/quizjump/internal/core"
)

// Landing classifies a body's contact with an answer platform.
type Landing int

const (
	LandingNone Landing = iota
	LandingCorrect
	LandingWrong
)

func (l Landing) String() string {
	switch l {
	case LandingCorrect:
		return "correct"
	case LandingWrong:
		return "wrong"
	default:
		return "none"
	}
}

// CheckLanding classifies b against a platform carrying answer. Nothing is
// reported while the body rises. Otherwise the feet must lie within
// [top-LandingSlack, top+LandingTolerance] and the horizontal extents must
// overlap.
func CheckLanding(b Body, platform core.Box, answer, correct int, p Params) Landing {
	if b.VY < 0 {
		return LandingNone
	}
	feet := b.Feet()
	if feet < platform.Y-p.LandingSlack || feet > platform.Y+p.LandingTolerance {
		return LandingNone
	}
	if !b.Box().OverlapsX(platform) {
		return LandingNone
	}
	if answer == correct {
		return LandingCorrect
	}
	return LandingWrong
}

// RestOn snaps b onto surface when it is falling and its feet have sunk at
// most band below the top. It reports whether the body was snapped. Calling
// it again on a resting body changes nothing.
func RestOn(b *Body, surface core.Box, band float64) bool {
	if b.VY < 0 {
		return false
	}
	feet := b.Feet()
	if feet < surface.Y || feet > surface.Y+band {
		return false
	}
	if !b.Box().OverlapsX(surface) {
		return false
	}
	b.Y = surface.Y - b.H
	b.VY = 0
	return true
}

// RestOnFloor snaps b onto an infinite floor at floorY. Nothing passes the floor.
func RestOnFloor(b *Body, floorY float64) bool {
	if b.VY < 0 || b.Feet() < floorY {
		return false
	}
	b.Y = floorY - b.H
	b.VY = 0
	return true
}

// StandingOn reports whether b rests on surface: not rising, feet within
// band of the top and horizontally overlapping.
func StandingOn(b Body, surface core.Box, band float64) bool {
	if b.VY < 0 {
		return false
	}
	if math.Abs(b.Feet()-surface.Y) > band {
		return false
	}
	return b.Box().OverlapsX(surface)
}

// StandingOnFloor reports whether b rests on an infinite floor at floorY.
func StandingOnFloor(b Body, floorY, slack float64) bool {
	return b.VY >= 0 && b.Feet() >= floorY-slack
}
