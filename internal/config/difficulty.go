package config

// Difficulty is a named operand tier.
type Difficulty string

const (
	DifficultyEasy          Difficulty = "easy"
	DifficultyMedium        Difficulty = "medium"
	DifficultyHard          Difficulty = "hard"
	DifficultyExtremelyHard Difficulty = "extremely-hard"
)

// Difficulties lists the tiers from easiest to hardest.
var Difficulties = []Difficulty{
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
	DifficultyExtremelyHard,
}

// MathMode selects the kind of arithmetic problem.
type MathMode string

const (
	ModeAddition       MathMode = "addition"
	ModeSubtraction    MathMode = "subtraction"
	ModeMultiplication MathMode = "multiplication"
	ModeCombined       MathMode = "combined"
)

// DigitRange is the inclusive operand range of a difficulty tier.
type DigitRange struct {
	Min, Max int
}

// ParseDifficulty returns the tier for s, defaulting to easy.
func ParseDifficulty(s string) Difficulty {
	d := Difficulty(s)
	if d.Valid() {
		return d
	}
	return DifficultyEasy
}

// Valid reports whether d is a known tier.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExtremelyHard:
		return true
	}
	return false
}

// Hardest reports whether d is the top tier, where boss rounds do not pause.
func (d Difficulty) Hardest() bool {
	return d == DifficultyExtremelyHard
}

// Range returns the operand range for the tier.
func (d Difficulty) Range() DigitRange {
	switch d {
	case DifficultyMedium:
		return DigitRange{Min: 10, Max: 99}
	case DifficultyHard:
		return DigitRange{Min: 100, Max: 999}
	case DifficultyExtremelyHard:
		return DigitRange{Min: 1000, Max: 9999}
	default:
		return DigitRange{Min: 1, Max: 9}
	}
}

// Multiplier returns the score multiplier for the tier.
func (d Difficulty) Multiplier() int {
	switch d {
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	case DifficultyExtremelyHard:
		return 5
	default:
		return 1
	}
}

// ParseMathMode returns the mode for s, defaulting to addition.
func ParseMathMode(s string) MathMode {
	m := MathMode(s)
	if m.Valid() {
		return m
	}
	return ModeAddition
}

// Valid reports whether m is a known mode.
func (m MathMode) Valid() bool {
	switch m {
	case ModeAddition, ModeSubtraction, ModeMultiplication, ModeCombined:
		return true
	}
	return false
}

// Ceiling returns the operand ceiling for a tier at the given score.
// The result is always inside the tier's range.
func (r RampConfig) Ceiling(tier DigitRange, score int) int {
	ceiling := tier.Min + r.Base
	if r.Step > 0 && score > 0 {
		ceiling += score / r.Step
	}
	if ceiling < tier.Min {
		return tier.Min
	}
	if ceiling > tier.Max {
		return tier.Max
	}
	return ceiling
}
