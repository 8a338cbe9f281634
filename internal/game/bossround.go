package game

import (
	"fmt"

	"github.com/vovakirdan/quizjump/internal/boss"
	"github.com/vovakirdan/quizjump/internal/core"
)

// enterBoss clears the row and arms the ball-drop arena for the current
// problem, with the player at the left end of the ground.
func (s *Session) enterBoss() {
	w := s.world

	s.resetToGround()
	w.Platforms = nil

	arena := s.builder.BuildArena(w.Problem, w.Width, w.GroundY())
	w.Boss.Arm(arena.Balls, arena.Lever)
	w.Player.X = arena.PlayerStart.X
	w.Player.Y = arena.PlayerStart.Y

	s.logger.Info("boss round", "correct", w.CorrectCount, "problem", w.Problem.Text)
}

// collectBossBalls applies every ball the player picked up this step. It
// reports whether the step must stop.
func (s *Session) collectBossBalls() bool {
	w := s.world

	for _, b := range w.Boss.Collect(w.Player) {
		switch b.Kind {
		case boss.KindHeart:
			w.Particles = spawnParticles(s.rng, w.Particles, b.X, b.Y, core.ColorRed, 8)
			s.heal()
			s.presenter.Feedback(FeedbackCorrect, "+1 Life!")
			s.audio.Cue(CueCoin)

		case boss.KindPowerUp:
			w.Particles = spawnParticles(s.rng, w.Particles, b.X, b.Y, core.ColorPurple, 8)
			w.Inventory.Shield++
			s.store.SetInventory(w.Inventory)
			s.presenter.Feedback(FeedbackCorrect, "Got Shield!")
			s.audio.Cue(CuePowerUp)

		case boss.KindAnswer:
			if b.Correct {
				w.Particles = spawnParticles(s.rng, w.Particles, b.X, b.Y, core.ColorGreen, 12)
				s.onBossCleared()
				return true
			}
			w.Particles = spawnParticles(s.rng, w.Particles, b.X, b.Y, core.ColorRed, 12)
			if s.penalize("Wrong ball! -1 heart") {
				return true
			}
		}
	}
	return false
}

// onBossCleared scores the boss answer and either moves straight on (on the
// hardest tier) or waits on the boss-complete screen.
func (s *Session) onBossCleared() {
	w := s.world
	t := s.tuning
	m := w.Multiplier

	s.award(true)
	w.Coins += t.Scoring.BossCoins
	s.store.SetCoins(w.Coins)
	s.audio.Cue(CueBossClear)
	s.trackCompletion()

	w.BossRound = false
	w.Boss.Clear()

	s.logger.Info("boss cleared", "score", w.Score, "difficulty", s.settings.Difficulty)

	if s.settings.Difficulty.Hardest() {
		s.presenter.Feedback(FeedbackCorrect, fmt.Sprintf("Boss Clear! x%d +%d coins!", m, t.Scoring.BossCoins))
		s.resetToGround()
		s.nextProblem(false)
		s.spawnRow(w.GroundY(), s.preBossNext())
		return
	}

	if _, err := s.machine.Fire(EventBossClear); err != nil {
		s.logger.Warn("boss clear rejected", "err", err)
	}
}

// trackCompletion counts the boss clear for the current difficulty and mode.
func (s *Session) trackCompletion() {
	c := s.store.Cosmetics()
	if c.Completions == nil {
		c.Completions = make(map[string]int)
	}
	c.Completions[CompletionKey(s.settings.Difficulty, s.settings.MathMode)]++
	s.store.SetCosmetics(c)
}
