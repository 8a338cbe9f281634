// Package level lays out answer rows and boss arenas for a problem.
package level

import (
	"math/rand"

	"github.com/vovakirdan/quizjump/internal/boss"
	"github.com/vovakirdan/quizjump/internal/config"
	"github.com/vovakirdan/quizjump/internal/core"
	"github.com/vovakirdan/quizjump/internal/physics"
	"github.com/vovakirdan/quizjump/internal/quiz"
)

// Labels name the platforms of a row from left to right.
var Labels = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// Platform is one answer slot of a row.
type Platform struct {
	core.Box
	Answer int
	Label  string
	Color  core.Color
	Wrong  bool // Already landed on incorrectly
}

// Arena is a boss round layout.
type Arena struct {
	Balls       []boss.Ball
	Lever       boss.Lever
	PlayerStart core.Vec
}

// Builder creates rows and arenas. It owns no state besides its random source.
type Builder struct {
	rng    *rand.Rand
	layout config.LayoutTuning
	boss   config.BossTuning
	player config.PlayerTuning
}

// NewBuilder creates a builder. A nil rng is replaced by one seeded with 1.
func NewBuilder(rng *rand.Rand, t config.Tuning) *Builder {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Builder{
		rng:    rng,
		layout: t.Layout,
		boss:   t.Boss,
		player: t.Player,
	}
}

// RowY returns the top of a row placed above anchorY.
func (b *Builder) RowY(anchorY float64, preBoss bool) float64 {
	spacing := b.layout.RowSpacing
	if preBoss {
		spacing = b.layout.PreBossSpacing
	}
	return anchorY - spacing - b.layout.PlatformHeight
}

// BuildRow lays out one platform per candidate, equal width with fixed gaps
// across the world width, above anchorY. A row that precedes a boss round
// sits closer to its anchor.
func (b *Builder) BuildRow(p quiz.Problem, anchorY, worldWidth float64, preBoss bool) []Platform {
	count := len(p.Answers)
	if count == 0 {
		return nil
	}

	gap := b.layout.PlatformGap
	width := (worldWidth - gap*float64(count+1)) / float64(count)
	y := b.RowY(anchorY, preBoss)

	row := make([]Platform, count)
	for i, answer := range p.Answers {
		row[i] = Platform{
			Box:    core.NewBox(gap+float64(i)*(width+gap), y, width, b.layout.PlatformHeight),
			Answer: answer,
			Label:  Labels[i%len(Labels)],
			Color:  core.PlatformPalette[b.rng.Intn(len(core.PlatformPalette))],
		}
	}
	return row
}

// BuildArena spreads one held ball per candidate evenly across the gate,
// places the lever near the right wall and the player start near the left.
func (b *Builder) BuildArena(p quiz.Problem, worldWidth, groundY float64) Arena {
	t := b.boss
	gateY := groundY - t.GateOffset
	span := worldWidth - 2*t.EdgeMargin

	balls := make([]boss.Ball, len(p.Answers))
	for i, answer := range p.Answers {
		x := worldWidth / 2
		if len(p.Answers) > 1 {
			x = t.EdgeMargin + float64(i)*span/float64(len(p.Answers)-1)
		}
		balls[i] = boss.Ball{
			Ball: physics.Ball{
				X:      x,
				Y:      gateY + (b.rng.Float64()-0.5)*t.GateJitter,
				Radius: t.BallRadius,
			},
			Kind:    boss.KindAnswer,
			Answer:  answer,
			Correct: answer == p.Correct,
			Held:    true,
		}
	}

	return Arena{
		Balls: balls,
		Lever: boss.Lever{
			Box: core.NewBox(worldWidth-t.LeverInset, groundY-t.LeverHeight, t.LeverWidth, t.LeverHeight),
		},
		PlayerStart: core.Vec{X: t.PlayerStartX, Y: groundY - b.player.Height},
	}
}
