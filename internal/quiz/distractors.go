package quiz

import "math/rand"

// Preferred distractor offsets, tried in order.
var (
	rowOffsets  = []int{1, 2, 3, -1, -2, -3, 4, 5, -4, -5}
	bossOffsets = []int{1, 2, 3, -1, -2, -3, 4, 5, -4, -5, 6, 7, -6, -7}
)

// Random fallback windows. The window widens by one after every
// widenAfter rejected draws, so the loop always terminates.
const (
	rowWindow  = 5
	bossWindow = 10
	widenAfter = 32
)

// Distractors returns count distinct non-negative values near correct,
// none equal to it. Preferred offsets are tried first; random offsets fill
// whatever remains.
func Distractors(rng *rand.Rand, correct, count int, boss bool) []int {
	offsets, window := rowOffsets, rowWindow
	if boss {
		offsets, window = bossOffsets, bossWindow
	}

	used := map[int]bool{correct: true}
	result := make([]int, 0, count)

	accept := func(v int) bool {
		if v < 0 || used[v] {
			return false
		}
		used[v] = true
		result = append(result, v)
		return true
	}

	for _, off := range offsets {
		if len(result) >= count {
			return result
		}
		accept(correct + off)
	}

	misses := 0
	for len(result) < count {
		v := correct + rng.Intn(2*window+1) - window
		if accept(v) {
			continue
		}
		misses++
		if misses%widenAfter == 0 {
			window++
		}
	}
	return result
}

// shuffle permutes values in place (Fisher-Yates).
func shuffle(rng *rand.Rand, values []int) {
	for i := len(values) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		values[i], values[j] = values[j], values[i]
	}
}
