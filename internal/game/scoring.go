package game

import (
	"fmt"

	"github.com/vovakirdan/quizjump/internal/core"
	"github.com/vovakirdan/quizjump/internal/level"
)

// Collectible sizes and offsets above a platform.
const (
	coinSize     = 24
	coinLift     = 45
	coinSpacing  = 28
	shieldSize   = 28
	shieldLift   = 50
	landingBurst = 10
)

// points returns the award for a correct answer at the current streak.
func (s *Session) points(boss bool) int {
	sc := s.tuning.Scoring
	base := sc.Base + s.world.Streak*sc.StreakBonus
	if boss {
		base += sc.BossBonus
	}
	return base * s.world.Multiplier
}

// award applies a correct answer's score and streak and persists a new best.
func (s *Session) award(boss bool) {
	w := s.world
	w.Score += s.points(boss)
	w.Streak++
	w.CorrectCount++
	if w.Score > w.Best {
		w.Best = w.Score
		s.store.SetHighscore(w.Best)
	}
}

// onCorrectLanding scores the landing, moves the checkpoint to the platform,
// drops collectibles and replaces the row.
func (s *Session) onCorrectLanding(plat level.Platform) {
	w := s.world
	t := s.tuning
	isBoss := w.BossRound
	m := w.Multiplier

	s.award(isBoss)

	coinX := platformCenter(plat) - coinSize/2
	coinY := plat.Y - coinLift
	s.dropCoin(coinX, coinY, 1)
	if isBoss {
		s.dropCoin(coinX+coinSpacing, coinY, t.Scoring.BossCoins)
	}
	if every := t.Scoring.StreakCoinEvery; every > 0 && w.Streak%every == 0 {
		s.dropCoin(coinX-coinSpacing, coinY, t.Scoring.StreakCoinValue)
	}

	w.Checkpoint = core.Vec{
		X: platformCenter(plat) - t.Player.Width/2,
		Y: plat.Y - t.Player.Height,
	}
	cg := core.NewBox(0, plat.Y, w.Width, t.World.GroundHeight)
	w.CheckpointGround = &cg
	w.IgnoreWrong = false

	w.Particles = spawnParticles(s.rng, w.Particles, platformCenter(plat), plat.Y, core.ColorGreen, landingBurst)

	multMsg := ""
	if m > 1 {
		multMsg = fmt.Sprintf(" x%d", m)
	}
	if isBoss {
		s.presenter.Feedback(FeedbackCorrect, fmt.Sprintf("Boss Clear!%s +%d coins!", multMsg, t.Scoring.BossCoins))
		s.audio.Cue(CueBossClear)
		w.BossRound = false
	} else {
		streakMsg := ""
		if w.Streak > 1 {
			streakMsg = fmt.Sprintf(" %d streak!", w.Streak)
		}
		s.presenter.Feedback(FeedbackCorrect, "Got it right!"+multMsg+streakMsg)
		s.audio.Cue(CueCorrect)
	}

	if s.settings.PowerUpsEnabled {
		chance := t.Scoring.ShieldChance
		if isBoss {
			chance = t.Scoring.BossShieldChance
		}
		if s.rng.Float64() < chance {
			w.Collectibles = append(w.Collectibles, Collectible{
				Box:  core.NewBox(platformCenter(plat)-shieldSize/2, plat.Y-shieldLift, shieldSize, shieldSize),
				Kind: CollectShield,
			})
		}
	}

	s.logger.Debug("correct landing", "score", w.Score, "streak", w.Streak, "correct", w.CorrectCount)

	nextBoss := s.bossDue()
	s.nextProblem(nextBoss)
	if nextBoss {
		s.enterBoss()
		return
	}
	s.spawnRow(plat.Y, s.preBossNext())
}

func (s *Session) dropCoin(x, y float64, value int) {
	s.world.Collectibles = append(s.world.Collectibles, Collectible{
		Box:   core.NewBox(x, y, coinSize, coinSize),
		Kind:  CollectCoin,
		Value: value,
	})
}

// penalize applies a wrong answer: a shield charge absorbs it, otherwise a
// heart and the streak are lost. An extra life revives an empty heart bar.
// It reports whether the run ended.
func (s *Session) penalize(message string) bool {
	w := s.world

	if w.Inventory.Shield > 0 {
		w.Inventory.Shield--
		s.store.SetInventory(w.Inventory)
		s.presenter.Feedback(FeedbackCorrect, "Shield protected you!")
	} else {
		w.Hearts--
		w.Streak = 0
		s.presenter.HeartShake()
		s.presenter.Feedback(FeedbackWrong, message)
		s.audio.Cue(CueWrong)
	}

	if w.Hearts <= 0 && w.Inventory.ExtraLife > 0 {
		w.Inventory.ExtraLife--
		w.Hearts = 1
		s.store.SetInventory(w.Inventory)
		s.presenter.Feedback(FeedbackCorrect, "Extra life saved you!")
	}

	if w.Hearts <= 0 {
		w.Hearts = 0
		s.gameOver("Out of hearts!")
		return true
	}
	return false
}

// heal adds one heart up to the cap.
func (s *Session) heal() {
	w := s.world
	w.Hearts = min(w.Hearts+1, s.tuning.Player.MaxHearts)
}

// bossDue reports whether the next round is a boss round.
func (s *Session) bossDue() bool {
	every := s.tuning.Boss.Every
	return s.settings.BossEnabled && every > 0 &&
		s.world.CorrectCount > 0 && s.world.CorrectCount%every == 0
}

// preBossNext reports whether the next row precedes a boss round.
func (s *Session) preBossNext() bool {
	every := s.tuning.Boss.Every
	return s.settings.BossEnabled && every > 0 && s.world.CorrectCount%every == every-1
}

// nextProblem replaces the current problem.
func (s *Session) nextProblem(boss bool) {
	w := s.world
	w.BossRound = boss
	w.Problem = s.gen.Generate(s.settings.MathMode, s.settings.Difficulty, w.Score, boss)
}

// spawnRow builds the row for the current problem above anchorY. A row that
// would leave the top of the world wraps the climb back to the ground.
func (s *Session) spawnRow(anchorY float64, preBoss bool) {
	w := s.world
	if s.builder.RowY(anchorY, preBoss) < 0 {
		s.logger.Debug("climb wrapped to the ground", "anchor", anchorY)
		s.resetToGround()
		anchorY = w.GroundY()
	}
	w.Platforms = s.builder.BuildRow(w.Problem, anchorY, w.Width, preBoss)
}
