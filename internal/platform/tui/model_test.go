package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quizjump/internal/config"
	"github.com/vovakirdan/quizjump/internal/core"
	"github.com/vovakirdan/quizjump/internal/game"
	"github.com/vovakirdan/quizjump/internal/storage"
)

func newTestModel(t *testing.T, edit func(*Options)) (Model, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Unix(10000, 0)}
	settings := config.DefaultSettings()
	settings.PowerUpsEnabled = false

	opts := Options{
		Tuning:   config.DefaultTuning(),
		Settings: settings,
		Runtime:  core.RuntimeConfig{ScreenW: 100, ScreenH: 40, TickRate: 60, Seed: 42},
		Now:      clock.Now,
	}
	if edit != nil {
		edit(&opts)
	}
	return NewModel(opts), clock
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	m, _ = send(t, m, msg)
	return m
}

// tick advances the fake clock by one frame and delivers the tick.
func tick(t *testing.T, m Model, clock *fakeClock, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		clock.Advance(16 * time.Millisecond)
		m, _ = send(t, m, TickMsg(clock.Now()))
	}
	return m
}

var enterKey = tea.KeyMsg{Type: tea.KeyEnter}

func TestModelLifecycleKeys(t *testing.T) {
	m, clock := newTestModel(t, nil)
	s := m.Session()

	if s.State() != game.StateStart {
		t.Fatalf("initial state = %v", s.State())
	}

	m = press(t, m, runeKey('r'))
	if s.State() != game.StateStart {
		t.Errorf("restart key changed the start screen to %v", s.State())
	}

	m = press(t, m, enterKey)
	if s.State() != game.StatePlaying {
		t.Fatalf("after enter state = %v, want Playing", s.State())
	}

	m = press(t, m, runeKey('p'))
	if s.State() != game.StatePaused {
		t.Fatalf("after p state = %v, want Paused", s.State())
	}

	before := s.World().Player
	m = tick(t, m, clock, 30)
	if s.World().Player != before {
		t.Error("player moved while paused")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if s.State() != game.StatePlaying {
		t.Fatalf("after esc state = %v, want Playing", s.State())
	}

	m = press(t, m, runeKey('p'))
	m = press(t, m, runeKey('b'))
	if s.State() != game.StateStart {
		t.Errorf("after b state = %v, want Start", s.State())
	}
	if s.World() != nil {
		t.Error("world kept after returning to the start screen")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("quit command produced %T, want tea.QuitMsg", cmd())
	}
	if v := m.View(); v != "" {
		t.Errorf("View() after quit = %q, want empty", v)
	}
}

func TestModelHeldKeyMovesPlayer(t *testing.T) {
	m, clock := newTestModel(t, nil)
	m = press(t, m, enterKey)
	s := m.Session()

	startX := s.World().Player.X
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(t, m, clock, 10)

	if s.World().Player.X <= startX {
		t.Errorf("player x = %v, want right of %v", s.World().Player.X, startX)
	}

	// Without key repeats the hold lapses and friction stops the player.
	m = tick(t, m, clock, 120)
	x := s.World().Player.X
	tick(t, m, clock, 5)
	if dx := s.World().Player.X - x; dx > 0.01 || dx < -0.01 {
		t.Errorf("player still drifting after release: %v -> %v", x, s.World().Player.X)
	}
}

func TestModelSettingsReloadAppliesAtNextRun(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = press(t, m, enterKey)
	s := m.Session()

	hard := m.settings
	hard.Difficulty = config.DifficultyHard
	m, cmd := send(t, m, settingsMsg(hard))
	if cmd != nil {
		t.Error("reload without a watcher returned a command")
	}

	if got := s.Settings().Difficulty; got != config.DifficultyEasy {
		t.Errorf("running world switched difficulty to %v", got)
	}
	if got := s.World().Multiplier; got != 1 {
		t.Errorf("multiplier = %d mid-run, want 1", got)
	}

	m = press(t, m, runeKey('p'))
	m = press(t, m, runeKey('b'))
	press(t, m, enterKey)
	if got := s.Settings().Difficulty; got != config.DifficultyHard {
		t.Errorf("next run difficulty = %v, want hard", got)
	}
	if got := s.World().Multiplier; got != 3 {
		t.Errorf("next run multiplier = %d, want 3", got)
	}
}

func TestModelStartScreenView(t *testing.T) {
	m, _ := newTestModel(t, nil)
	v := m.View()

	for _, want := range []string{"QUIZJUMP", "Difficulty: easy", "Mode: addition", "Enter: start"} {
		if !strings.Contains(v, want) {
			t.Errorf("start screen missing %q", want)
		}
	}
}

func TestModelRunView(t *testing.T) {
	m, clock := newTestModel(t, nil)
	m = press(t, m, enterKey)
	m = tick(t, m, clock, 90)

	snap := m.Session().Snapshot()
	v := m.View()
	for _, want := range []string{snap.Problem, "Score 0", "Best 0", "x1"} {
		if !strings.Contains(v, want) {
			t.Errorf("run view missing %q", want)
		}
	}

	m = press(t, m, runeKey('p'))
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused overlay missing")
	}
}

func TestModelScoreboardToggle(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	v := m.View()
	if !strings.Contains(v, "HIGH SCORES") {
		t.Fatalf("scoreboard not shown:\n%s", v)
	}
	if !strings.Contains(v, "not being saved") {
		t.Error("scoreboard without a database should say so")
	}

	m = press(t, m, runeKey('b'))
	if !strings.Contains(m.View(), "QUIZJUMP") {
		t.Error("back did not return to the start screen")
	}
	if m.Session().State() != game.StateStart {
		t.Errorf("state = %v after leaving scores", m.Session().State())
	}
}

func TestModelGameOverRecordsRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "quizjump.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	profile, err := storage.NewProfile(store, "alice", nil)
	if err != nil {
		t.Fatalf("NewProfile() error = %v", err)
	}

	m, clock := newTestModel(t, func(o *Options) {
		o.DB = store
		o.Profile = profile
	})
	m = press(t, m, enterKey)
	s := m.Session()

	w := s.World()
	w.Player.Y = w.Height + s.Tuning().World.FallMargin + 50
	m = tick(t, m, clock, 1)

	if s.State() != game.StateGameOver {
		t.Fatalf("state = %v, want GameOver", s.State())
	}
	if !strings.Contains(m.View(), "You fell!") {
		t.Error("game over overlay does not show the reason")
	}

	runs, err := store.TopRuns("alice", 10)
	if err != nil {
		t.Fatalf("TopRuns() error = %v", err)
	}
	if len(runs) != 1 || runs[0].Reason != "You fell!" {
		t.Fatalf("runs = %+v, want one fall", runs)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "alice") {
		t.Error("scoreboard does not list the profile's run")
	}
	m = press(t, m, runeKey('b'))

	press(t, m, runeKey('r'))
	if s.State() != game.StatePlaying {
		t.Errorf("after r state = %v, want Playing", s.State())
	}
}
