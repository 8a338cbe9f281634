// Package game owns a QuizJump run: the world aggregate, the lifecycle state
// machine, and the per-frame step that ties physics, problems, rows and boss
// rounds together.
package game

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quizjump/internal/boss"
	"github.com/vovakirdan/quizjump/internal/config"
	"github.com/vovakirdan/quizjump/internal/core"
	"github.com/vovakirdan/quizjump/internal/level"
	"github.com/vovakirdan/quizjump/internal/physics"
	"github.com/vovakirdan/quizjump/internal/quiz"
)

// substep is the longest simulated slice. Longer frames are split so
// landings are not skipped.
const substep = 1.0 / 60

// Session runs one player's game. It is not safe for concurrent use; the
// host calls it from a single frame loop.
type Session struct {
	tuning   config.Tuning
	settings config.Settings // Applied to the current run
	pending  config.Settings // Applied at the next start
	params   physics.Params

	machine *Machine
	world   *World
	rng     *rand.Rand
	gen     *quiz.Generator
	builder *level.Builder

	store     Store
	presenter Presenter
	audio     AudioCue
	recorder  Recorder
	logger    *log.Logger
	now       func() time.Time

	jumpLatched bool
	reason      string
	startedAt   time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithStore sets the persistence store. The default is a fresh MemoryStore.
func WithStore(s Store) Option {
	return func(sess *Session) { sess.store = s }
}

// WithPresenter sets the feedback presenter.
func WithPresenter(p Presenter) Option {
	return func(sess *Session) { sess.presenter = p }
}

// WithAudio sets the audio cue sink.
func WithAudio(a AudioCue) Option {
	return func(sess *Session) { sess.audio = a }
}

// WithRecorder sets the sink for finished runs.
func WithRecorder(r Recorder) Option {
	return func(sess *Session) { sess.recorder = r }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(sess *Session) { sess.logger = l }
}

// WithRand sets the random source shared by problems, rows and boss rounds.
func WithRand(rng *rand.Rand) Option {
	return func(sess *Session) { sess.rng = rng }
}

// WithSeed seeds the random source. Zero uses the current time.
func WithSeed(seed int64) Option {
	return func(sess *Session) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		sess.rng = rand.New(rand.NewSource(seed))
	}
}

// WithClock replaces time.Now for run timestamps.
func WithClock(now func() time.Time) Option {
	return func(sess *Session) { sess.now = now }
}

// New creates a session in StateStart.
func New(t config.Tuning, opts ...Option) *Session {
	s := &Session{
		tuning:   t,
		settings: config.DefaultSettings(),
		pending:  config.DefaultSettings(),
		machine:  NewMachine(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.store == nil {
		s.store = NewMemoryStore()
	}
	if s.presenter == nil {
		s.presenter = NopPresenter{}
	}
	if s.audio == nil {
		s.audio = NopAudio{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.now == nil {
		s.now = time.Now
	}

	s.gen = quiz.NewGenerator(s.rng, t.Problems)
	s.gen.SetAnswerCounts(t.Layout.PlatformsPerRow, t.Boss.Answers)
	s.builder = level.NewBuilder(s.rng, t)
	return s
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.machine.State()
}

// World returns the current world, or nil on the start screen.
// Callers must treat it as read-only.
func (s *Session) World() *World {
	return s.world
}

// Settings returns the settings of the current run.
func (s *Session) Settings() config.Settings {
	return s.settings
}

// Tuning returns the simulation tuning.
func (s *Session) Tuning() config.Tuning {
	return s.tuning
}

// Reason returns why the last run ended.
func (s *Session) Reason() string {
	return s.reason
}

// SetSettings stores settings for the next Start or Restart. The running
// world keeps the settings it started with.
func (s *Session) SetSettings(settings config.Settings) {
	s.pending = settings.Normalize()
}

// Start begins a run from the start screen with the given settings.
func (s *Session) Start(settings config.Settings) error {
	s.SetSettings(settings)
	if _, err := s.machine.Fire(EventBegin); err != nil {
		return err
	}
	s.newRun()
	return nil
}

// Restart begins a new run after game over with the latest settings.
func (s *Session) Restart() error {
	if _, err := s.machine.Fire(EventRestart); err != nil {
		return err
	}
	s.newRun()
	return nil
}

// Pause freezes the world.
func (s *Session) Pause() error {
	_, err := s.machine.Fire(EventPause)
	return err
}

// Resume unfreezes the world. No simulated time passes while paused.
func (s *Session) Resume() error {
	_, err := s.machine.Fire(EventResume)
	return err
}

// TogglePause pauses a running game or resumes a paused one.
func (s *Session) TogglePause() error {
	if s.State() == StatePaused {
		return s.Resume()
	}
	return s.Pause()
}

// Quit abandons the run and returns to the start screen.
func (s *Session) Quit() error {
	if _, err := s.machine.Fire(EventQuit); err != nil {
		return err
	}
	s.logger.Debug("run abandoned")
	s.world = nil
	return nil
}

// Continue leaves the boss-complete screen: the player returns to the
// ground under a fresh row.
func (s *Session) Continue() error {
	if _, err := s.machine.Fire(EventContinue); err != nil {
		return err
	}
	s.resetToGround()
	s.nextProblem(false)
	s.spawnRow(s.world.GroundY(), s.preBossNext())
	return nil
}

// Frame runs one host frame. The world only advances while playing; dt is
// clamped to the configured maximum and split into short substeps.
func (s *Session) Frame(in core.Intent, dt float64) {
	if !in.Jump {
		s.jumpLatched = false
	}
	if s.State() != StatePlaying || s.world == nil {
		return
	}

	dt = core.ClampF(dt, 0, s.tuning.World.MaxFrameDelta)
	steps := int(math.Ceil(dt / substep))
	if steps < 1 {
		steps = 1
	}
	slice := dt / float64(steps)

	for i := 0; i < steps && s.State() == StatePlaying; i++ {
		s.step(in, slice)
	}
}

// newRun builds a fresh world from the pending settings and the store.
func (s *Session) newRun() {
	s.settings = s.pending
	s.params = physics.NewParams(s.tuning.Physics, s.settings.SpeedSensitivity)
	s.reason = ""
	s.jumpLatched = false
	s.startedAt = s.now()

	t := s.tuning
	groundY := t.World.Height - t.World.GroundHeight
	w := &World{
		Width:  t.World.Width,
		Height: t.World.Height,
		Ground: core.NewBox(0, groundY, t.World.Width, t.World.GroundHeight),
		Boss: boss.NewEncounter(t.Boss, physics.Arena{
			Width:         t.World.Width,
			FloorY:        groundY,
			Gravity:       t.Physics.Gravity,
			Restitution:   t.Boss.Restitution,
			FloorFriction: t.Boss.FloorFriction,
		}),
		Best:       max(s.store.Highscore(), 0),
		Hearts:     t.Player.StartHearts,
		Coins:      s.store.Coins(),
		Multiplier: s.settings.Difficulty.Multiplier(),
		Inventory:  s.store.Inventory(),
	}
	s.world = w
	s.resetToGround()

	s.nextProblem(false)
	s.spawnRow(groundY, false)

	s.logger.Info("run started",
		"difficulty", s.settings.Difficulty,
		"mode", s.settings.MathMode,
		"boss", s.settings.BossEnabled,
	)
}

// resetToGround drops the checkpoint floor and puts the player back at the
// middle of the ground with the camera at the top.
func (s *Session) resetToGround() {
	w := s.world
	p := s.tuning.Player

	w.CheckpointGround = nil
	w.Checkpoint = core.Vec{X: w.Width/2 - p.Width/2, Y: w.GroundY() - p.Height}
	w.Player = physics.Body{
		X: w.Checkpoint.X,
		Y: w.Checkpoint.Y,
		W: p.Width,
		H: p.Height,
	}
	w.IgnoreWrong = false
	w.CameraY = 0
	w.Collectibles = nil
}

// gameOver ends the run and persists the best score.
func (s *Session) gameOver(reason string) {
	if _, err := s.machine.Fire(EventLose); err != nil {
		s.logger.Warn("game over rejected", "err", err)
		return
	}
	w := s.world
	s.reason = reason
	s.store.SetHighscore(w.Best)

	s.logger.Info("game over",
		"reason", reason,
		"score", w.Score,
		"correct", w.CorrectCount,
	)

	if s.recorder != nil {
		s.recorder.RecordRun(RunSummary{
			Score:        w.Score,
			Best:         w.Best,
			CorrectCount: w.CorrectCount,
			Coins:        w.Coins,
			Difficulty:   s.settings.Difficulty,
			Mode:         s.settings.MathMode,
			Reason:       reason,
			StartedAt:    s.startedAt,
			Duration:     s.now().Sub(s.startedAt),
		})
	}
}
