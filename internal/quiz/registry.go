package quiz

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/quizjump/internal/config"
)

// Expression is a built arithmetic expression before distractors are added.
type Expression struct {
	Text     string // Without the trailing "= ?"
	Correct  int
	Operands []int
}

// Operation builds expressions for one math mode.
// Operations register themselves in init() so the CLI can list them and
// the generator can look them up by mode.
type Operation interface {
	// Mode returns the settings value selecting this operation.
	Mode() config.MathMode

	// Title returns a human-readable name for display.
	Title() string

	// Build draws operands for a tier at the given score.
	Build(rng *rand.Rand, tier config.DigitRange, score int, ramps config.ProblemTuning) Expression
}

// ModeInfo contains metadata about a registered operation.
type ModeInfo struct {
	Mode  config.MathMode
	Title string
}

var (
	operations = make(map[config.MathMode]Operation)
	mu         sync.RWMutex
)

// Register adds an operation to the registry.
// Panics if the mode is already registered.
func Register(op Operation) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := operations[op.Mode()]; exists {
		panic(fmt.Sprintf("quiz: mode %q already registered", op.Mode()))
	}
	operations[op.Mode()] = op
}

// Modes returns all registered modes, sorted by name.
func Modes() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(operations))
	for mode, op := range operations {
		result = append(result, ModeInfo{Mode: mode, Title: op.Title()})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Mode < result[j].Mode
	})
	return result
}

// Lookup returns the operation for a mode.
func Lookup(mode config.MathMode) (Operation, error) {
	mu.RLock()
	defer mu.RUnlock()

	op, ok := operations[mode]
	if !ok {
		return nil, fmt.Errorf("quiz: unknown mode %q", mode)
	}
	return op, nil
}

// Exists reports whether a mode is registered.
func Exists(mode config.MathMode) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := operations[mode]
	return ok
}
