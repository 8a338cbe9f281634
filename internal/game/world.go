package game

import (
	"github.com/vovakirdan/quizjump/internal/boss"
	"github.com/vovakirdan/quizjump/internal/core"
	"github.com/vovakirdan/quizjump/internal/level"
	"github.com/vovakirdan/quizjump/internal/physics"
	"github.com/vovakirdan/quizjump/internal/quiz"
)

// CollectibleKind is what a collectible grants.
type CollectibleKind int

const (
	CollectCoin CollectibleKind = iota
	CollectShield
)

// Collectible is a pickup floating above a platform.
type Collectible struct {
	core.Box
	Kind  CollectibleKind
	Value int // Coins granted; unused for shields
}

// World is the single owned aggregate of a run. The session mutates it
// only inside Frame and the lifecycle calls; renderers read it between
// frames.
type World struct {
	Width  float64
	Height float64

	Player           physics.Body
	Ground           core.Box
	CheckpointGround *core.Box // nil until the first correct landing
	Checkpoint       core.Vec
	IgnoreWrong      bool // Set by a penalized landing until the player rests on a safe surface

	Problem   quiz.Problem
	Platforms []level.Platform
	BossRound bool
	Boss      *boss.Encounter

	Score        int
	Best         int
	Streak       int
	CorrectCount int
	Hearts       int
	Coins        int
	Multiplier   int
	Inventory    Inventory

	Collectibles []Collectible
	Particles    []Particle
	CameraY      float64
}

// GroundY returns the top of the main ground.
func (w *World) GroundY() float64 {
	return w.Ground.Y
}
