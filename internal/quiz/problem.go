// Package quiz generates arithmetic problems with shuffled candidate answers.
package quiz

import (
	"math/rand"

	"github.com/vovakirdan/quizjump/internal/config"
)

// Default candidate counts per problem, and the bounds any count is kept in.
const (
	RowAnswers  = 4
	BossAnswers = 6
	MinAnswers  = 2
	MaxAnswers  = 8
)

// Problem is a question with its candidate answers in display order.
type Problem struct {
	Text     string
	Correct  int
	Answers  []int
	Operands []int
	Mode     config.MathMode
	Boss     bool
}

// CorrectIndex returns the slot holding the correct answer, or -1.
func (p Problem) CorrectIndex() int {
	for i, a := range p.Answers {
		if a == p.Correct {
			return i
		}
	}
	return -1
}

// Generator creates problems from an injected random source.
type Generator struct {
	rng   *rand.Rand
	ramps config.ProblemTuning

	rowAnswers  int
	bossAnswers int
}

// NewGenerator creates a generator. A nil rng is replaced by one seeded with 1.
func NewGenerator(rng *rand.Rand, ramps config.ProblemTuning) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Generator{rng: rng, ramps: ramps, rowAnswers: RowAnswers, bossAnswers: BossAnswers}
}

// SetAnswerCounts sets how many candidates regular and boss problems carry.
// Non-positive counts keep the defaults; others are clamped to
// [MinAnswers, MaxAnswers].
func (g *Generator) SetAnswerCounts(row, boss int) {
	g.rowAnswers = answerCount(row, RowAnswers)
	g.bossAnswers = answerCount(boss, BossAnswers)
}

func answerCount(n, def int) int {
	if n <= 0 {
		return def
	}
	return max(MinAnswers, min(n, MaxAnswers))
}

// Generate builds a problem for the mode and difficulty at the given score.
// Unknown modes fall back to addition and unknown difficulties to easy.
// Boss problems keep the same kind of expression but carry the larger boss
// pool drawn from the wider boss offsets.
func (g *Generator) Generate(mode config.MathMode, difficulty config.Difficulty, score int, isBoss bool) Problem {
	mode = config.ParseMathMode(string(mode))
	difficulty = config.ParseDifficulty(string(difficulty))

	op, err := Lookup(mode)
	if err != nil {
		op = addition{}
		mode = config.ModeAddition
	}

	expr := op.Build(g.rng, difficulty.Range(), score, g.ramps)

	count := g.rowAnswers
	if isBoss {
		count = g.bossAnswers
	}
	answers := Distractors(g.rng, expr.Correct, count-1, isBoss)
	answers = append(answers, expr.Correct)
	shuffle(g.rng, answers)

	return Problem{
		Text:     expr.Text + " = ?",
		Correct:  expr.Correct,
		Answers:  answers,
		Operands: expr.Operands,
		Mode:     mode,
		Boss:     isBoss,
	}
}
