package game

import (
	"github.com/vovakirdan/quizjump/internal/boss"
)

// Snapshot is the read-only HUD view of a run.
type Snapshot struct {
	State        State
	Problem      string
	Score        int
	Best         int
	Streak       int
	Hearts       int
	Coins        int
	Inventory    Inventory
	BossRound    bool
	BossPhase    boss.Phase
	CorrectCount int
	Multiplier   int
	Reason       string
}

// Snapshot returns the HUD state. On the start screen only State is set.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{State: s.State(), Reason: s.reason}
	w := s.world
	if w == nil {
		return snap
	}

	snap.Problem = w.Problem.Text
	snap.Score = w.Score
	snap.Best = w.Best
	snap.Streak = w.Streak
	snap.Hearts = w.Hearts
	snap.Coins = w.Coins
	snap.Inventory = w.Inventory
	snap.BossRound = w.BossRound
	snap.BossPhase = w.Boss.Phase
	snap.CorrectCount = w.CorrectCount
	snap.Multiplier = w.Multiplier
	return snap
}
