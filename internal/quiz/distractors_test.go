package quiz

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/quizjump/internal/config"
)

func TestDistractorsPreferredOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name    string
		correct int
		count   int
		boss    bool
		want    []int
	}{
		{"row away from zero", 10, 3, false, []int{11, 12, 13}},
		{"boss away from zero", 10, 5, true, []int{11, 12, 13, 9, 8}},
		{"row at zero skips negatives", 0, 3, false, []int{1, 2, 3}},
		{"boss at one skips negatives", 1, 5, true, []int{2, 3, 4, 0, 5}},
		{"boss at zero uses extended offsets", 0, 5, true, []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distractors(rng, tt.correct, tt.count, tt.boss)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Distractors(%d, %d) = %v, expected %v", tt.correct, tt.count, got, tt.want)
			}
		})
	}
}

func TestDistractorsRandomFallback(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	// More distractors than preferred offsets can supply at zero.
	got := Distractors(rng, 0, 12, false)
	if len(got) != 12 {
		t.Fatalf("got %d distractors, expected 12", len(got))
	}
	seen := map[int]bool{0: true}
	for _, v := range got {
		if v < 0 || seen[v] {
			t.Fatalf("invalid distractor %d in %v", v, got)
		}
		seen[v] = true
	}
}

func TestModesRegistry(t *testing.T) {
	modes := Modes()
	if len(modes) != 4 {
		t.Fatalf("expected 4 registered modes, got %d", len(modes))
	}
	for i := 1; i < len(modes); i++ {
		if modes[i-1].Mode >= modes[i].Mode {
			t.Errorf("Modes() not sorted: %v", modes)
		}
	}

	for _, m := range []config.MathMode{config.ModeAddition, config.ModeSubtraction, config.ModeMultiplication, config.ModeCombined} {
		if !Exists(m) {
			t.Errorf("mode %q should be registered", m)
		}
		op, err := Lookup(m)
		if err != nil || op.Mode() != m {
			t.Errorf("Lookup(%q) = %v, %v", m, op, err)
		}
	}

	if _, err := Lookup("division"); err == nil {
		t.Error("Lookup(division) should fail")
	}

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate mode should panic")
		}
	}()
	Register(addition{})
}
