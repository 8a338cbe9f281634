package quiz

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/quizjump/internal/config"
)

func init() {
	Register(addition{})
	Register(subtraction{})
	Register(multiplication{})
	Register(combined{})
}

type addition struct{}

func (addition) Mode() config.MathMode { return config.ModeAddition }
func (addition) Title() string         { return "Addition" }

func (addition) Build(rng *rand.Rand, tier config.DigitRange, score int, ramps config.ProblemTuning) Expression {
	hi := ramps.Addition.Ceiling(tier, score)
	a := randRange(rng, tier.Min, hi)
	b := randRange(rng, tier.Min, hi)
	return Expression{
		Text:     fmt.Sprintf("%d + %d", a, b),
		Correct:  a + b,
		Operands: []int{a, b},
	}
}

type subtraction struct{}

func (subtraction) Mode() config.MathMode { return config.ModeSubtraction }
func (subtraction) Title() string         { return "Subtraction" }

// Build keeps the subtrahend at or below the minuend.
func (subtraction) Build(rng *rand.Rand, tier config.DigitRange, score int, ramps config.ProblemTuning) Expression {
	hi := ramps.Subtraction.Ceiling(tier, score)
	a := randRange(rng, tier.Min, hi)
	b := randRange(rng, tier.Min, a)
	return Expression{
		Text:     fmt.Sprintf("%d − %d", a, b),
		Correct:  a - b,
		Operands: []int{a, b},
	}
}

type multiplication struct{}

func (multiplication) Mode() config.MathMode { return config.ModeMultiplication }
func (multiplication) Title() string         { return "Multiplication" }

func (multiplication) Build(rng *rand.Rand, tier config.DigitRange, score int, ramps config.ProblemTuning) Expression {
	hi := ramps.Multiplication.Ceiling(tier, score)
	a := randRange(rng, tier.Min, hi)
	b := randRange(rng, tier.Min, hi)
	return Expression{
		Text:     fmt.Sprintf("%d × %d", a, b),
		Correct:  a * b,
		Operands: []int{a, b},
	}
}

// combined picks one of three two-operator templates. The third operand
// uses its own short ramp so products stay readable on harder tiers.
type combined struct{}

func (combined) Mode() config.MathMode { return config.ModeCombined }
func (combined) Title() string         { return "Combined" }

func (combined) Build(rng *rand.Rand, tier config.DigitRange, score int, ramps config.ProblemTuning) Expression {
	hi := ramps.Addition.Ceiling(tier, score)
	a := randRange(rng, tier.Min, hi)
	c := randRange(rng, tier.Min, ramps.CombinedFactor.Ceiling(tier, score))

	switch rng.Intn(3) {
	case 0:
		b := randRange(rng, tier.Min, hi)
		return Expression{
			Text:     fmt.Sprintf("%d + %d × %d", a, b, c),
			Correct:  a + b*c,
			Operands: []int{a, b, c},
		}
	case 1:
		b := randRange(rng, tier.Min, a)
		return Expression{
			Text:     fmt.Sprintf("(%d − %d) + %d", a, b, c),
			Correct:  (a - b) + c,
			Operands: []int{a, b, c},
		}
	default:
		b := randRange(rng, tier.Min, hi)
		return Expression{
			Text:     fmt.Sprintf("(%d + %d) × %d", a, b, c),
			Correct:  (a + b) * c,
			Operands: []int{a, b, c},
		}
	}
}

// randRange returns a uniform integer in [lo, hi]. hi below lo yields lo.
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
