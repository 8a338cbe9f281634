package tui

import (
	"strconv"
	"strings"
	"testing"

	"github.com/vovakirdan/quizjump/internal/config"
	"github.com/vovakirdan/quizjump/internal/core"
	"github.com/vovakirdan/quizjump/internal/game"
)

func TestViewportCell(t *testing.T) {
	s := core.NewScreen(80, 32) // 30 world rows below the HUD
	v := newViewport(s, 800, 600, 1000)

	tests := []struct {
		name     string
		x, y     float64
		col, row int
	}{
		{"top left of view", 0, 1000, 0, hudRows},
		{"one cell in", 10, 1020, 1, hudRows + 1},
		{"bottom right", 799, 1599, 79, hudRows + 29},
		{"above the view", 400, 900, 40, hudRows - 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := v.cell(tt.x, tt.y)
			if col != tt.col || row != tt.row {
				t.Errorf("cell(%v, %v) = (%d, %d), want (%d, %d)", tt.x, tt.y, col, row, tt.col, tt.row)
			}
		})
	}
}

func TestViewportClipsToWorldRows(t *testing.T) {
	s := core.NewScreen(80, 32)
	v := newViewport(s, 800, 600, 1000)

	// A box straddling the top edge must not paint over the HUD.
	v.fill(core.NewBox(0, 900, 800, 200), '#', core.ColorRed)

	for row := 0; row < hudRows; row++ {
		if strings.ContainsRune(s.Row(row), '#') {
			t.Errorf("HUD row %d painted: %q", row, s.Row(row))
		}
	}
	if !strings.ContainsRune(s.Row(hudRows), '#') {
		t.Error("first world row not painted")
	}
}

func TestViewportSpanAtLeastOneCell(t *testing.T) {
	s := core.NewScreen(80, 32)
	v := newViewport(s, 800, 600, 0)

	col0, row0, col1, row1 := v.span(core.NewBox(100, 100, 2, 2))
	if col1-col0 < 1 || row1-row0 < 1 {
		t.Errorf("span = (%d,%d)-(%d,%d), want at least one cell", col0, row0, col1, row1)
	}
}

func startedSession(t *testing.T) *game.Session {
	t.Helper()
	settings := config.DefaultSettings()
	settings.PowerUpsEnabled = false

	s := game.New(config.DefaultTuning(), game.WithSeed(42))
	if err := s.Start(settings); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	// Let the camera settle on the player.
	for i := 0; i < 120; i++ {
		s.Frame(core.Intent{}, 1.0/60)
	}
	return s
}

func TestDrawWorldShowsRowAndPlayer(t *testing.T) {
	sess := startedSession(t)
	w := sess.World()

	s := core.NewScreen(120, 40)
	drawWorld(s, w, sess.Tuning().World.ViewHeight)
	out := s.String()

	for _, p := range w.Platforms {
		if !strings.Contains(out, strconv.Itoa(p.Answer)) {
			t.Errorf("answer %d of platform %s not drawn", p.Answer, p.Label)
		}
	}
	if !strings.ContainsRune(out, '█') {
		t.Error("player not drawn")
	}
	if !strings.ContainsRune(out, '▀') {
		t.Error("ground not drawn")
	}
}

func TestDrawWorldGraysWrongPlatforms(t *testing.T) {
	sess := startedSession(t)
	w := sess.World()
	w.Platforms[0].Wrong = true

	s := core.NewScreen(120, 40)
	v := newViewport(s, w.Width, sess.Tuning().World.ViewHeight, w.CameraY)
	drawWorld(s, w, sess.Tuning().World.ViewHeight)

	col0, row0, _, _ := v.span(w.Platforms[0].Box)
	if c := s.GetCell(col0, row0).Color; c != core.ColorGray {
		t.Errorf("wrong platform color = %v, want gray", c)
	}
}

func TestDrawHUD(t *testing.T) {
	snap := game.Snapshot{
		Problem:    "7 + 5 = ?",
		Score:      120,
		Best:       300,
		Streak:     4,
		Hearts:     2,
		Coins:      9,
		Multiplier: 2,
		Inventory:  game.Inventory{Shield: 1},
	}

	t.Run("full", func(t *testing.T) {
		s := core.NewScreen(100, 10)
		drawHUD(s, snap, hudStyle{maxHearts: 5, feedback: "Got it right!", kind: game.FeedbackCorrect})

		if !strings.Contains(s.Row(0), "7 + 5 = ?") {
			t.Errorf("problem row = %q", s.Row(0))
		}
		status := s.Row(1)
		for _, want := range []string{"♥♥♡♡♡", "Score 120", "Best 300", "Streak 4", "x2", "$9", "◈1", "Got it right!"} {
			if !strings.Contains(status, want) {
				t.Errorf("status row missing %q: %q", want, status)
			}
		}
	})

	t.Run("compact", func(t *testing.T) {
		s := core.NewScreen(50, 10)
		drawHUD(s, snap, hudStyle{maxHearts: 5, compact: true})
		if status := s.Row(1); !strings.Contains(status, "S120") || strings.Contains(status, "Streak") {
			t.Errorf("compact status row = %q", status)
		}
	})

	t.Run("boss", func(t *testing.T) {
		boss := snap
		boss.BossRound = true
		s := core.NewScreen(100, 10)
		drawHUD(s, boss, hudStyle{maxHearts: 5})
		if !strings.Contains(s.Row(0), "BOSS") {
			t.Errorf("boss round not flagged: %q", s.Row(0))
		}
	})

	t.Run("wrong feedback is red", func(t *testing.T) {
		s := core.NewScreen(100, 10)
		drawHUD(s, snap, hudStyle{maxHearts: 5, feedback: "Wrong!", kind: game.FeedbackWrong})
		x := strings.Index(s.Row(1), "Wrong!")
		if x < 0 {
			t.Fatalf("feedback missing: %q", s.Row(1))
		}
		// Row() is rune based; every HUD rune before the message is one cell.
		col := len([]rune(s.Row(1)[:x]))
		if c := s.GetCell(col, 1).Color; c != core.ColorRed {
			t.Errorf("feedback color = %v, want red", c)
		}
	})
}

func TestDrawOverlayCentered(t *testing.T) {
	s := core.NewScreen(60, 20)
	drawOverlay(s, "GAME OVER", core.ColorRed, []string{"You fell!", "R: play again"})

	out := s.String()
	for _, want := range []string{"GAME OVER", "You fell!", "R: play again"} {
		if !strings.Contains(out, want) {
			t.Errorf("overlay missing %q", want)
		}
	}
}

func TestPaletteFor(t *testing.T) {
	if _, ok := PaletteFor("dark")[core.ColorTeal]; !ok {
		t.Error("dark palette lacks teal")
	}
	if _, ok := PaletteFor("light")[core.ColorPurple]; !ok {
		t.Error("light palette lacks purple")
	}
	for _, c := range core.PlatformPalette {
		if _, ok := PaletteFor("light")[c]; !ok {
			t.Errorf("light palette lacks platform color %v", c)
		}
		if _, ok := PaletteFor("dark")[c]; !ok {
			t.Errorf("dark palette lacks platform color %v", c)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawTextColored(2, 1, "hello", core.ColorRed)

	out := RenderScreen(s, PaletteFor("dark"))
	if !strings.Contains(out, "hello") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("RenderScreen() rows = %d, want 3", got+1)
	}
}
