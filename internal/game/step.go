package game

import (
	"github.com/vovakirdan/quizjump/internal/core"
	"github.com/vovakirdan/quizjump/internal/level"
	"github.com/vovakirdan/quizjump/internal/physics"
)

// step advances the world by dt seconds. It returns early once a frame
// outcome replaces the row (correct answer) or ends the run.
func (s *Session) step(in core.Intent, dt float64) {
	w := s.world
	t := s.tuning
	player := &w.Player

	// Support is sampled before integration, so a jump is judged against
	// where the player stood at the start of the step.
	grounded := s.supported()

	physics.Integrate(player, in, dt, s.params, 1)
	physics.ClampX(player, w.Width)

	if player.Y > w.Height+t.World.FallMargin {
		s.gameOver("You fell!")
		return
	}

	if w.Boss.CheckLever(player, s.rng) {
		s.audio.Cue(CuePowerUp)
		s.logger.Debug("boss balls released", "balls", len(w.Boss.Balls))
	}

	if in.Jump && !s.jumpLatched && grounded {
		physics.Jump(player, s.settings.JumpHeight)
		s.jumpLatched = true
		s.audio.Cue(CueJump)
	}

	if w.CheckpointGround != nil && physics.RestOn(player, *w.CheckpointGround, t.Physics.LandingTolerance) {
		w.IgnoreWrong = false
	}
	if physics.RestOnFloor(player, w.GroundY()) {
		w.IgnoreWrong = false
	}

	if w.Boss.Active() {
		w.Boss.Step(dt)
		if s.collectBossBalls() {
			return
		}
	}

	if s.resolvePlatforms() {
		return
	}

	s.collectItems()

	w.Particles = stepParticles(w.Particles, dt)
	s.updateCamera()
}

// supported reports whether the player stands on the ground, the
// checkpoint ground or any platform.
func (s *Session) supported() bool {
	w := s.world
	p := s.tuning.Physics

	if physics.StandingOnFloor(w.Player, w.GroundY(), p.LandingSlack) {
		return true
	}
	if w.CheckpointGround != nil && physics.StandingOn(w.Player, *w.CheckpointGround, p.RestBand) {
		return true
	}
	for _, plat := range w.Platforms {
		if physics.StandingOn(w.Player, plat.Box, p.RestBand) {
			return true
		}
	}
	return false
}

// resolvePlatforms classifies landings, applies their outcome and rests the
// player on any platform it falls onto. It reports whether the step must
// stop: the row was replaced or the run ended.
func (s *Session) resolvePlatforms() bool {
	w := s.world

	for i := range w.Platforms {
		plat := &w.Platforms[i]
		switch physics.CheckLanding(w.Player, plat.Box, plat.Answer, w.Problem.Correct, s.params) {
		case physics.LandingCorrect:
			s.onCorrectLanding(*plat)
			return true
		case physics.LandingWrong:
			if plat.Wrong || w.IgnoreWrong {
				continue
			}
			plat.Wrong = true
			w.IgnoreWrong = true
			w.Particles = spawnParticles(s.rng, w.Particles, w.Player.Center().X, plat.Y, core.ColorRed, 8)
			if s.penalize("Wrong! -1 heart") {
				return true
			}
		}
	}

	for i := range w.Platforms {
		plat := w.Platforms[i]
		if physics.RestOn(&w.Player, plat.Box, plat.H) && !plat.Wrong {
			w.IgnoreWrong = false
		}
	}
	return false
}

// collectItems picks up every collectible the player overlaps.
func (s *Session) collectItems() {
	w := s.world
	box := w.Player.Box()

	kept := w.Collectibles[:0]
	for _, c := range w.Collectibles {
		if !box.Intersects(c.Box) {
			kept = append(kept, c)
			continue
		}
		switch c.Kind {
		case CollectCoin:
			w.Coins += c.Value
			s.store.SetCoins(w.Coins)
			s.audio.Cue(CueCoin)
			w.Particles = spawnParticles(s.rng, w.Particles, c.Center().X, c.Center().Y, core.ColorYellow, 4)
		case CollectShield:
			w.Inventory.Shield++
			s.store.SetInventory(w.Inventory)
			s.audio.Cue(CuePowerUp)
			w.Particles = spawnParticles(s.rng, w.Particles, c.Center().X, c.Center().Y, core.ColorPurple, 6)
		}
	}
	w.Collectibles = kept
}

// updateCamera eases the camera toward the player, never above the top.
func (s *Session) updateCamera() {
	w := s.world
	c := s.tuning.Camera

	target := w.Player.Y - s.tuning.World.ViewHeight*c.Anchor
	w.CameraY += (target - w.CameraY) * c.Lerp
	if w.CameraY < 0 {
		w.CameraY = 0
	}
}

// platformCenter returns the x-coordinate of a platform's center.
func platformCenter(p level.Platform) float64 {
	return p.X + p.W/2
}
