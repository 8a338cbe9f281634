package game

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/quizjump/internal/boss"
	"github.com/vovakirdan/quizjump/internal/config"
	"github.com/vovakirdan/quizjump/internal/core"
	"github.com/vovakirdan/quizjump/internal/level"
)

const frame = 1.0 / 60

type recordingPresenter struct {
	messages []string
	kinds    []FeedbackKind
	shakes   int
}

func (p *recordingPresenter) Feedback(kind FeedbackKind, message string) {
	p.kinds = append(p.kinds, kind)
	p.messages = append(p.messages, message)
}

func (p *recordingPresenter) HeartShake() { p.shakes++ }

func (p *recordingPresenter) last() string {
	if len(p.messages) == 0 {
		return ""
	}
	return p.messages[len(p.messages)-1]
}

type recordingAudio struct {
	cues []Cue
}

func (a *recordingAudio) Cue(c Cue) { a.cues = append(a.cues, c) }

func (a *recordingAudio) has(c Cue) bool {
	for _, got := range a.cues {
		if got == c {
			return true
		}
	}
	return false
}

// startSession starts a seeded run with power-ups off unless edit turns
// them back on.
func startSession(t *testing.T, edit func(*config.Settings), opts ...Option) *Session {
	t.Helper()
	s := New(config.DefaultTuning(), append([]Option{WithSeed(42)}, opts...)...)

	settings := config.DefaultSettings()
	settings.PowerUpsEnabled = false
	if edit != nil {
		edit(&settings)
	}
	if err := s.Start(settings); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s
}

func findPlatform(t *testing.T, s *Session, correct bool) int {
	t.Helper()
	w := s.World()
	for i, p := range w.Platforms {
		if (p.Answer == w.Problem.Correct) == correct {
			return i
		}
	}
	t.Fatalf("no platform with correct=%v in row %+v", correct, w.Platforms)
	return -1
}

// dropOnto places the player just above a platform, falling.
func dropOnto(s *Session, p level.Platform) {
	w := s.World()
	w.Player.X = p.X + p.W/2 - w.Player.W/2
	w.Player.Y = p.Y - w.Player.H - 1
	w.Player.VX = 0
	w.Player.VY = 50
}

// placeOnPlayer moves the first matching released boss ball onto the player.
func placeOnPlayer(t *testing.T, s *Session, match func(boss.Ball) bool) {
	t.Helper()
	w := s.World()
	c := w.Player.Center()
	for i := range w.Boss.Balls {
		if match(w.Boss.Balls[i]) {
			b := &w.Boss.Balls[i]
			b.X, b.Y = c.X, c.Y
			b.VX, b.VY = 0, 0
			return
		}
	}
	t.Fatal("no matching boss ball")
}

func armBoss(t *testing.T, s *Session) {
	t.Helper()
	s.world.CorrectCount = s.tuning.Boss.Every
	s.nextProblem(true)
	s.enterBoss()
	s.world.Boss.Release(s.rng)
}

func TestStartBuildsFirstRow(t *testing.T) {
	s := startSession(t, nil)
	w := s.World()

	if s.State() != StatePlaying {
		t.Fatalf("state = %s, want playing", s.State())
	}
	if len(w.Platforms) != 4 {
		t.Fatalf("row has %d platforms, want 4", len(w.Platforms))
	}

	matches := 0
	wantY := w.GroundY() - 130 - 40
	for _, p := range w.Platforms {
		if p.Answer == w.Problem.Correct {
			matches++
		}
		if p.Y != wantY {
			t.Errorf("platform y = %v, want %v", p.Y, wantY)
		}
	}
	if matches != 1 {
		t.Errorf("%d platforms carry the correct answer, want 1", matches)
	}

	if w.Hearts != 3 || w.Score != 0 || w.Multiplier != 1 {
		t.Errorf("hearts=%d score=%d multiplier=%d", w.Hearts, w.Score, w.Multiplier)
	}
	if w.Player.Feet() != w.GroundY() {
		t.Errorf("player feet = %v, want ground %v", w.Player.Feet(), w.GroundY())
	}
}

func TestCorrectLanding(t *testing.T) {
	presenter := &recordingPresenter{}
	audio := &recordingAudio{}
	store := NewMemoryStore()
	s := startSession(t, nil, WithPresenter(presenter), WithAudio(audio), WithStore(store))
	w := s.World()

	plat := w.Platforms[findPlatform(t, s, true)]
	dropOnto(s, plat)
	s.Frame(core.Intent{}, frame)

	if w.Score != 10 || w.Streak != 1 || w.CorrectCount != 1 {
		t.Errorf("score=%d streak=%d correct=%d, want 10/1/1", w.Score, w.Streak, w.CorrectCount)
	}
	if store.Highscore() != 10 {
		t.Errorf("stored highscore = %d, want 10", store.Highscore())
	}
	if w.CheckpointGround == nil || w.CheckpointGround.Y != plat.Y {
		t.Errorf("checkpoint ground = %+v, want y %v", w.CheckpointGround, plat.Y)
	}
	if len(w.Platforms) != 4 || w.Platforms[0].Y != plat.Y-170 {
		t.Errorf("next row not built above the landed platform: %+v", w.Platforms)
	}
	if len(w.Collectibles) == 0 || w.Collectibles[0].Kind != CollectCoin {
		t.Errorf("no coin dropped: %+v", w.Collectibles)
	}
	if presenter.last() != "Got it right!" {
		t.Errorf("feedback = %q", presenter.last())
	}
	if !audio.has(CueCorrect) {
		t.Error("correct cue not played")
	}
}

func TestStreakScoring(t *testing.T) {
	s := startSession(t, func(st *config.Settings) { st.Difficulty = config.DifficultyMedium })
	w := s.World()
	w.Streak = 4

	dropOnto(s, w.Platforms[findPlatform(t, s, true)])
	s.Frame(core.Intent{}, frame)

	// (10 + 4*2) * 2
	if w.Score != 36 {
		t.Errorf("score = %d, want 36", w.Score)
	}
	if w.Streak != 5 {
		t.Errorf("streak = %d, want 5", w.Streak)
	}

	bonus := false
	for _, c := range w.Collectibles {
		if c.Kind == CollectCoin && c.Value == 5 {
			bonus = true
		}
	}
	if !bonus {
		t.Error("fifth streak did not drop a bonus coin")
	}
}

func TestWrongLanding(t *testing.T) {
	presenter := &recordingPresenter{}
	s := startSession(t, nil, WithPresenter(presenter))
	w := s.World()
	w.Streak = 3

	idx := findPlatform(t, s, false)
	dropOnto(s, w.Platforms[idx])
	s.Frame(core.Intent{}, frame)

	if w.Hearts != 2 {
		t.Errorf("hearts = %d, want 2", w.Hearts)
	}
	if w.Streak != 0 {
		t.Errorf("streak = %d, want 0", w.Streak)
	}
	if !w.Platforms[idx].Wrong {
		t.Error("platform not marked wrong")
	}
	if presenter.shakes != 1 || presenter.last() != "Wrong! -1 heart" {
		t.Errorf("shakes=%d feedback=%q", presenter.shakes, presenter.last())
	}

	// Standing on the penalized platform costs nothing more.
	for i := 0; i < 30; i++ {
		s.Frame(core.Intent{}, frame)
	}
	if w.Hearts != 2 {
		t.Errorf("hearts = %d after resting on the wrong platform, want 2", w.Hearts)
	}
	if w.Player.Feet() != w.Platforms[idx].Y {
		t.Errorf("player feet = %v, want resting at %v", w.Player.Feet(), w.Platforms[idx].Y)
	}
}

func TestExtraLifeRevives(t *testing.T) {
	store := NewMemoryStore()
	s := startSession(t, nil, WithStore(store))
	w := s.World()
	w.Hearts = 1
	w.Inventory = Inventory{ExtraLife: 1}

	dropOnto(s, w.Platforms[findPlatform(t, s, false)])
	s.Frame(core.Intent{}, frame)

	if s.State() != StatePlaying {
		t.Fatalf("state = %s, want playing", s.State())
	}
	if w.Hearts != 1 {
		t.Errorf("hearts = %d, want 1", w.Hearts)
	}
	if w.Inventory.ExtraLife != 0 || store.Inventory().ExtraLife != 0 {
		t.Errorf("extra life not consumed: world %+v store %+v", w.Inventory, store.Inventory())
	}
}

func TestShieldAbsorbsWrongAnswer(t *testing.T) {
	s := startSession(t, nil)
	w := s.World()
	w.Inventory = Inventory{Shield: 1}
	w.Streak = 2

	dropOnto(s, w.Platforms[findPlatform(t, s, false)])
	s.Frame(core.Intent{}, frame)

	if w.Hearts != 3 {
		t.Errorf("hearts = %d, want 3", w.Hearts)
	}
	if w.Inventory.Shield != 0 {
		t.Errorf("shield = %d, want 0", w.Inventory.Shield)
	}
	if w.Streak != 2 {
		t.Errorf("streak = %d, want 2", w.Streak)
	}
}

func TestOutOfHeartsEndsRun(t *testing.T) {
	store := NewMemoryStore()
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	clock := start
	s := startSession(t, nil,
		WithStore(store),
		WithRecorder(store),
		WithClock(func() time.Time { return clock }),
	)
	w := s.World()
	w.Hearts = 1
	w.Score = 40
	w.Best = 40
	clock = start.Add(90 * time.Second)

	dropOnto(s, w.Platforms[findPlatform(t, s, false)])
	s.Frame(core.Intent{}, frame)

	if s.State() != StateGameOver {
		t.Fatalf("state = %s, want gameover", s.State())
	}
	if s.Reason() != "Out of hearts!" {
		t.Errorf("reason = %q", s.Reason())
	}
	if w.Hearts != 0 {
		t.Errorf("hearts = %d, want 0", w.Hearts)
	}
	if store.Highscore() != 40 {
		t.Errorf("highscore = %d, want 40", store.Highscore())
	}

	runs := store.Runs()
	if len(runs) != 1 {
		t.Fatalf("recorded %d runs, want 1", len(runs))
	}
	if runs[0].Score != 40 || runs[0].Duration != 90*time.Second || runs[0].Difficulty != config.DifficultyEasy {
		t.Errorf("run = %+v", runs[0])
	}
}

func TestFallingEndsRun(t *testing.T) {
	s := startSession(t, nil)
	w := s.World()
	w.Player.Y = w.Height + s.Tuning().World.FallMargin + 10

	s.Frame(core.Intent{}, frame)

	if s.State() != StateGameOver || s.Reason() != "You fell!" {
		t.Errorf("state=%s reason=%q", s.State(), s.Reason())
	}
}

func TestHeartsCapped(t *testing.T) {
	s := startSession(t, nil)
	w := s.World()

	w.Hearts = 5
	s.heal()
	if w.Hearts != 5 {
		t.Errorf("hearts = %d, want 5", w.Hearts)
	}
	w.Hearts = 2
	s.heal()
	if w.Hearts != 3 {
		t.Errorf("hearts = %d, want 3", w.Hearts)
	}
}

func TestJumpIsEdgeTriggered(t *testing.T) {
	s := startSession(t, func(st *config.Settings) { st.JumpHeight = 700 })
	w := s.World()

	s.Frame(core.Intent{Jump: true}, frame)
	if w.Player.VY != -700 {
		t.Fatalf("VY = %v after jump, want -700", w.Player.VY)
	}

	// Back on the ground with the key still held: no second jump.
	w.Player.Y = w.GroundY() - w.Player.H
	w.Player.VY = 0
	s.Frame(core.Intent{Jump: true}, frame)
	if w.Player.VY < 0 {
		t.Error("held jump fired again")
	}

	s.Frame(core.Intent{}, frame)
	s.Frame(core.Intent{Jump: true}, frame)
	if w.Player.VY != -700 {
		t.Errorf("VY = %v after a fresh press, want -700", w.Player.VY)
	}
}

func TestNoJumpInMidAir(t *testing.T) {
	s := startSession(t, nil)
	w := s.World()
	w.Player.Y = w.GroundY() - 300
	w.Player.VY = 0

	s.Frame(core.Intent{Jump: true}, frame)
	if w.Player.VY < 0 {
		t.Errorf("jumped in mid-air: VY = %v", w.Player.VY)
	}
}

func TestHorizontalMovementStaysInWorld(t *testing.T) {
	s := startSession(t, nil)
	w := s.World()

	for i := 0; i < 300; i++ {
		s.Frame(core.Intent{Left: true}, frame)
	}
	if w.Player.X != 0 {
		t.Errorf("player x = %v, want 0", w.Player.X)
	}
	for i := 0; i < 300; i++ {
		s.Frame(core.Intent{Right: true}, frame)
	}
	if w.Player.X+w.Player.W != w.Width {
		t.Errorf("player right edge = %v, want %v", w.Player.X+w.Player.W, w.Width)
	}
}

func TestFrameClampsLongFrames(t *testing.T) {
	s := startSession(t, nil)
	w := s.World()
	w.Player.Y = w.GroundY() - 400
	w.Player.VY = 0
	y0 := w.Player.Y

	s.Frame(core.Intent{}, 5)

	dy := w.Player.Y - y0
	if dy <= 0 || dy > 10 {
		t.Errorf("fell %v px in a clamped frame, want (0, 10]", dy)
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	s := startSession(t, nil)
	w := s.World()
	w.Player.Y = w.GroundY() - 300
	w.Player.VY = 0

	if err := s.Pause(); err != nil {
		t.Fatal(err)
	}
	before := w.Player
	for i := 0; i < 10; i++ {
		s.Frame(core.Intent{Right: true}, frame)
	}
	if w.Player != before {
		t.Errorf("player moved while paused: %+v -> %+v", before, w.Player)
	}

	if err := s.TogglePause(); err != nil {
		t.Fatal(err)
	}
	s.Frame(core.Intent{}, frame)
	if w.Player.Y == before.Y {
		t.Error("player did not move after resume")
	}
}

func TestQuitDiscardsWorld(t *testing.T) {
	s := startSession(t, nil)

	if err := s.Quit(); err == nil {
		t.Error("Quit while playing succeeded")
	}
	if err := s.Pause(); err != nil {
		t.Fatal(err)
	}
	if err := s.Quit(); err != nil {
		t.Fatal(err)
	}
	if s.State() != StateStart || s.World() != nil {
		t.Errorf("state=%s world=%v", s.State(), s.World())
	}
	if snap := s.Snapshot(); snap.State != StateStart || snap.Problem != "" {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestSettingsApplyAtNextRun(t *testing.T) {
	s := startSession(t, nil)

	hard := s.Settings()
	hard.Difficulty = config.DifficultyHard
	s.SetSettings(hard)
	if s.Settings().Difficulty != config.DifficultyEasy {
		t.Errorf("running difficulty changed to %s", s.Settings().Difficulty)
	}

	s.gameOver("test")
	if err := s.Restart(); err != nil {
		t.Fatal(err)
	}
	if s.Settings().Difficulty != config.DifficultyHard || s.World().Multiplier != 3 {
		t.Errorf("difficulty=%s multiplier=%d", s.Settings().Difficulty, s.World().Multiplier)
	}
}

func TestStartClampsSettings(t *testing.T) {
	s := startSession(t, func(st *config.Settings) {
		st.JumpHeight = 5000
		st.Difficulty = "impossible"
		st.MathMode = "division"
	})

	got := s.Settings()
	if got.JumpHeight != config.MaxJumpHeight {
		t.Errorf("jump height = %v, want %v", got.JumpHeight, config.MaxJumpHeight)
	}
	if got.Difficulty != config.DifficultyEasy || got.MathMode != config.ModeAddition {
		t.Errorf("difficulty=%s mode=%s", got.Difficulty, got.MathMode)
	}
}

func TestBossEntry(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		before   int
		wantBoss bool
	}{
		{"tenth correct answer", true, 9, true},
		{"ninth correct answer", true, 8, false},
		{"bosses disabled", false, 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := startSession(t, func(st *config.Settings) { st.BossEnabled = tt.enabled })
			w := s.World()
			w.CorrectCount = tt.before

			dropOnto(s, w.Platforms[findPlatform(t, s, true)])
			s.Frame(core.Intent{}, frame)

			if w.BossRound != tt.wantBoss {
				t.Fatalf("boss round = %v, want %v", w.BossRound, tt.wantBoss)
			}
			if !tt.wantBoss {
				if len(w.Platforms) != 4 || w.Boss.Active() {
					t.Errorf("platforms=%d boss=%s", len(w.Platforms), w.Boss.Phase)
				}
				return
			}
			if len(w.Platforms) != 0 {
				t.Errorf("boss round kept %d platforms", len(w.Platforms))
			}
			if w.Boss.Phase != boss.PhaseLever || len(w.Boss.Balls) != 6 {
				t.Errorf("phase=%s balls=%d", w.Boss.Phase, len(w.Boss.Balls))
			}
			if len(w.Problem.Answers) != 6 {
				t.Errorf("boss problem has %d answers", len(w.Problem.Answers))
			}
			if w.Player.X != s.Tuning().Boss.PlayerStartX {
				t.Errorf("player x = %v, want boss start", w.Player.X)
			}
		})
	}
}

func TestPreBossRowIsCloser(t *testing.T) {
	s := startSession(t, nil)
	w := s.World()
	w.CorrectCount = 8

	plat := w.Platforms[findPlatform(t, s, true)]
	dropOnto(s, plat)
	s.Frame(core.Intent{}, frame)

	want := plat.Y - 90 - 40
	if w.Platforms[0].Y != want {
		t.Errorf("pre-boss row y = %v, want %v", w.Platforms[0].Y, want)
	}
}

func TestLeverReleasesBalls(t *testing.T) {
	s := startSession(t, nil)
	s.world.CorrectCount = 10
	s.nextProblem(true)
	s.enterBoss()
	w := s.World()

	lever := w.Boss.Lever
	w.Player.X = lever.X + 10
	w.Player.Y = lever.Y - w.Player.H - 1
	w.Player.VY = 50
	s.Frame(core.Intent{}, frame)

	if w.Boss.Phase != boss.PhaseActive || !w.Boss.Lever.Pulled {
		t.Fatalf("phase=%s pulled=%v", w.Boss.Phase, w.Boss.Lever.Pulled)
	}
	// Six answers plus a heart and a power-up.
	if len(w.Boss.Balls) != 8 {
		t.Errorf("%d balls, want 8", len(w.Boss.Balls))
	}
}

func TestBossCorrectBallOnHard(t *testing.T) {
	store := NewMemoryStore()
	s := startSession(t, func(st *config.Settings) { st.Difficulty = config.DifficultyHard }, WithStore(store))
	armBoss(t, s)
	w := s.World()
	w.Streak = 3
	score, coins := w.Score, w.Coins

	placeOnPlayer(t, s, func(b boss.Ball) bool { return b.Kind == boss.KindAnswer && b.Correct })
	s.Frame(core.Intent{}, frame)

	if s.State() != StateBossComplete {
		t.Fatalf("state = %s, want bossComplete", s.State())
	}
	// (10 + 3*2 + 25) * 3
	if got := w.Score - score; got != 123 {
		t.Errorf("score delta = %d, want 123", got)
	}
	if w.Coins-coins != 10 || store.Coins() != w.Coins {
		t.Errorf("coins = %d (stored %d), want +10", w.Coins, store.Coins())
	}
	if w.Boss.Active() || w.BossRound {
		t.Error("boss round still active")
	}
	if n := store.Cosmetics().Completions["hard_addition"]; n != 1 {
		t.Errorf("completions = %d, want 1", n)
	}

	if err := s.Continue(); err != nil {
		t.Fatal(err)
	}
	if s.State() != StatePlaying || len(w.Platforms) != 4 {
		t.Errorf("after continue: state=%s platforms=%d", s.State(), len(w.Platforms))
	}
	if w.Player.Feet() != w.GroundY() {
		t.Errorf("player not back on the ground: feet %v", w.Player.Feet())
	}
}

func TestBossCorrectBallOnExtremelyHard(t *testing.T) {
	presenter := &recordingPresenter{}
	s := startSession(t, func(st *config.Settings) { st.Difficulty = config.DifficultyExtremelyHard }, WithPresenter(presenter))
	armBoss(t, s)
	w := s.World()

	placeOnPlayer(t, s, func(b boss.Ball) bool { return b.Kind == boss.KindAnswer && b.Correct })
	s.Frame(core.Intent{}, frame)

	if s.State() != StatePlaying {
		t.Fatalf("state = %s, want playing", s.State())
	}
	if len(w.Platforms) != 4 || w.BossRound || w.Boss.Active() {
		t.Errorf("platforms=%d bossRound=%v phase=%s", len(w.Platforms), w.BossRound, w.Boss.Phase)
	}
	if !strings.HasPrefix(presenter.last(), "Boss Clear! x5") {
		t.Errorf("feedback = %q", presenter.last())
	}
}

func TestBossWrongBall(t *testing.T) {
	tests := []struct {
		name       string
		hearts     int
		inv        Inventory
		wantHearts int
		wantInv    Inventory
		wantStreak int
		wantState  State
	}{
		{"costs a heart", 3, Inventory{}, 2, Inventory{}, 0, StatePlaying},
		{"shield absorbs", 3, Inventory{Shield: 1}, 3, Inventory{}, 3, StatePlaying},
		{"shield before last heart", 1, Inventory{Shield: 1, ExtraLife: 1}, 1, Inventory{ExtraLife: 1}, 3, StatePlaying},
		{"extra life revives", 1, Inventory{ExtraLife: 1}, 1, Inventory{}, 0, StatePlaying},
		{"last heart ends run", 1, Inventory{}, 0, Inventory{}, 0, StateGameOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			s := startSession(t, nil, WithStore(store))
			armBoss(t, s)
			w := s.World()
			w.Hearts = tt.hearts
			w.Inventory = tt.inv
			w.Streak = 3
			balls := len(w.Boss.Balls)

			placeOnPlayer(t, s, func(b boss.Ball) bool { return b.Kind == boss.KindAnswer && !b.Correct })
			s.Frame(core.Intent{}, frame)

			if w.Hearts != tt.wantHearts {
				t.Errorf("hearts = %d, want %d", w.Hearts, tt.wantHearts)
			}
			if w.Inventory != tt.wantInv {
				t.Errorf("inventory = %+v, want %+v", w.Inventory, tt.wantInv)
			}
			if w.Streak != tt.wantStreak {
				t.Errorf("streak = %d, want %d", w.Streak, tt.wantStreak)
			}
			if s.State() != tt.wantState {
				t.Fatalf("state = %s, want %s", s.State(), tt.wantState)
			}
			if tt.inv != tt.wantInv && store.Inventory() != tt.wantInv {
				t.Errorf("stored inventory = %+v, want %+v", store.Inventory(), tt.wantInv)
			}
			if tt.wantState == StatePlaying {
				if len(w.Boss.Balls) != balls-1 {
					t.Errorf("%d balls left, want %d", len(w.Boss.Balls), balls-1)
				}
				if !w.Boss.Active() {
					t.Errorf("phase = %s, want active", w.Boss.Phase)
				}
			}
		})
	}
}

func TestAnswerCountsFromTuning(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.Layout.PlatformsPerRow = 5
	tuning.Boss.Answers = 7

	s := New(tuning, WithSeed(42))
	settings := config.DefaultSettings()
	settings.PowerUpsEnabled = false
	if err := s.Start(settings); err != nil {
		t.Fatalf("Start: %v", err)
	}
	w := s.World()
	if len(w.Problem.Answers) != 5 || len(w.Platforms) != 5 {
		t.Fatalf("row has %d answers on %d platforms, want 5", len(w.Problem.Answers), len(w.Platforms))
	}

	armBoss(t, s)
	answers := 0
	for _, b := range w.Boss.Balls {
		if b.Kind == boss.KindAnswer {
			answers++
		}
	}
	if len(w.Problem.Answers) != 7 || answers != 7 {
		t.Errorf("boss pool has %d answers and %d answer balls, want 7", len(w.Problem.Answers), answers)
	}
}

func TestBossBonusBalls(t *testing.T) {
	s := startSession(t, nil)
	armBoss(t, s)
	w := s.World()
	w.Hearts = 2

	placeOnPlayer(t, s, func(b boss.Ball) bool { return b.Kind == boss.KindHeart })
	s.Frame(core.Intent{}, frame)
	if w.Hearts != 3 {
		t.Errorf("hearts = %d, want 3", w.Hearts)
	}

	placeOnPlayer(t, s, func(b boss.Ball) bool { return b.Kind == boss.KindPowerUp })
	s.Frame(core.Intent{}, frame)
	if w.Inventory.Shield != 1 {
		t.Errorf("shield = %d, want 1", w.Inventory.Shield)
	}
}

func TestCollectCoin(t *testing.T) {
	store := NewMemoryStore()
	audio := &recordingAudio{}
	s := startSession(t, nil, WithStore(store), WithAudio(audio))
	w := s.World()

	b := w.Player.Box()
	w.Collectibles = []Collectible{{Box: core.NewBox(b.X, b.Y, 24, 24), Kind: CollectCoin, Value: 5}}
	s.Frame(core.Intent{}, frame)

	if w.Coins != 5 || store.Coins() != 5 {
		t.Errorf("coins = %d (stored %d), want 5", w.Coins, store.Coins())
	}
	if len(w.Collectibles) != 0 {
		t.Error("coin not removed")
	}
	if !audio.has(CueCoin) {
		t.Error("coin cue not played")
	}
}

func TestClimbWrapsAtTheTop(t *testing.T) {
	s := startSession(t, nil)
	w := s.World()
	cg := core.NewBox(0, 100, w.Width, 32)
	w.CheckpointGround = &cg

	s.spawnRow(100, false)

	if w.CheckpointGround != nil {
		t.Error("checkpoint ground kept after wrapping")
	}
	if got, want := w.Platforms[0].Y, w.GroundY()-170; got != want {
		t.Errorf("row y = %v, want %v", got, want)
	}
	if w.Player.Feet() != w.GroundY() {
		t.Errorf("player feet = %v, want ground", w.Player.Feet())
	}
}

func TestCameraFollowsPlayer(t *testing.T) {
	s := startSession(t, nil)
	w := s.World()

	for i := 0; i < 200; i++ {
		s.Frame(core.Intent{}, frame)
	}
	want := w.Player.Y - s.Tuning().World.ViewHeight*s.Tuning().Camera.Anchor
	if core.Abs(int(w.CameraY-want)) > 1 {
		t.Errorf("camera = %v, want about %v", w.CameraY, want)
	}

	w.Player.Y = 10
	w.Player.VY = 0
	s.updateCamera()
	if w.CameraY < 0 {
		t.Errorf("camera = %v above the top", w.CameraY)
	}
}

func TestSeededSessionsMatch(t *testing.T) {
	a := startSession(t, nil)
	b := startSession(t, nil, WithRand(rand.New(rand.NewSource(42))))

	if a.World().Problem.Text != b.World().Problem.Text {
		t.Errorf("problems differ: %q vs %q", a.World().Problem.Text, b.World().Problem.Text)
	}
	for i := range a.World().Platforms {
		if a.World().Platforms[i].Answer != b.World().Platforms[i].Answer {
			t.Errorf("platform %d answer differs", i)
		}
	}
}

func TestSnapshot(t *testing.T) {
	s := startSession(t, func(st *config.Settings) { st.Difficulty = config.DifficultyMedium })
	snap := s.Snapshot()

	if snap.State != StatePlaying || snap.Hearts != 3 || snap.Multiplier != 2 {
		t.Errorf("snapshot = %+v", snap)
	}
	if !strings.HasSuffix(snap.Problem, " = ?") {
		t.Errorf("problem = %q", snap.Problem)
	}
}
