package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quizjump/internal/config"
	"github.com/vovakirdan/quizjump/internal/core"
	"github.com/vovakirdan/quizjump/internal/game"
	"github.com/vovakirdan/quizjump/internal/storage"
)

// Options configures a Model.
type Options struct {
	Tuning   config.Tuning
	Settings config.Settings
	Runtime  core.RuntimeConfig

	// DB backs the scoreboard; Profile persists progress and runs. Either
	// may be nil, in which case progress lives in memory.
	DB      *storage.Store
	Profile *storage.Profile

	Audio   game.AudioCue
	Watcher *config.Watcher // Optional live settings reload
	Logger  *log.Logger
	Now     func() time.Time
}

// muter is implemented by audio sinks that can be silenced.
type muter interface {
	SetMuted(bool)
}

// settingsMsg carries settings reloaded from disk.
type settingsMsg config.Settings

// settingsErrMsg reports a settings file that failed to load.
type settingsErrMsg struct{ err error }

// Model is the Bubble Tea model hosting one QuizJump session.
type Model struct {
	session   *game.Session
	presenter *presenter
	held      *heldKeys
	store     game.Store
	audio     game.AudioCue

	keys   KeyMap
	help   help.Model
	screen *core.Screen
	config core.RuntimeConfig
	tuning config.Tuning

	settings config.Settings // Latest settings; a run picks them up at start
	db       *storage.Store
	profile  *storage.Profile
	watcher  *config.Watcher
	logger   *log.Logger
	now      func() time.Time

	lastTick time.Time
	scores   *ScoreboardModel
	quitting bool
}

// NewModel creates a model on the start screen.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	def := core.DefaultConfig()
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = def.TickRate
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	audio := opts.Audio
	if audio == nil {
		audio = game.NopAudio{}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	pres := newPresenter(now)
	sessOpts := []game.Option{
		game.WithPresenter(pres),
		game.WithAudio(audio),
		game.WithLogger(logger),
		game.WithSeed(cfg.Seed),
	}

	var store game.Store = game.NewMemoryStore()
	if opts.Profile != nil {
		store = opts.Profile
		sessOpts = append(sessOpts, game.WithRecorder(opts.Profile))
	}
	sessOpts = append(sessOpts, game.WithStore(store))

	settings := opts.Settings.Normalize()
	sess := game.New(opts.Tuning, sessOpts...)
	sess.SetSettings(settings)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session:   sess,
		presenter: pres,
		held:      newHeldKeys(),
		store:     store,
		audio:     audio,
		keys:      DefaultKeyMap(),
		help:      h,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:    cfg,
		tuning:    opts.Tuning,
		settings:  settings,
		db:        opts.DB,
		profile:   opts.Profile,
		watcher:   opts.Watcher,
		logger:    logger,
		now:       now,
	}
}

// Session returns the hosted session.
func (m Model) Session() *game.Session {
	return m.session
}

// Init starts the tick loop and the settings watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), waitForSettings(m.watcher))
}

// waitForSettings blocks until the watcher reports a change. A nil watcher
// yields a nil command.
func waitForSettings(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case s, ok := <-w.Events:
			if !ok {
				return nil
			}
			return settingsMsg(s)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return settingsErrMsg{err: err}
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case settingsMsg:
		m.applySettings(config.Settings(msg))
		return m, waitForSettings(m.watcher)

	case settingsErrMsg:
		m.logger.Warn("settings reload failed", "err", msg.err)
		return m, waitForSettings(m.watcher)

	case tea.KeyMsg:
		if m.scores != nil {
			return m.updateScores(msg)
		}
		return m.handleKey(msg)
	}

	if m.scores != nil {
		return m.updateScores(msg)
	}
	return m, nil
}

// handleKey routes a key press by session state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	var err error
	switch m.session.State() {
	case game.StateStart:
		switch action {
		case core.ActionConfirm:
			m.presenter.Reset()
			m.held.Clear()
			err = m.session.Start(m.settings)
		case core.ActionScores:
			m.openScores()
		}

	case game.StatePlaying:
		switch action {
		case core.ActionPause:
			m.held.Clear()
			err = m.session.Pause()
		default:
			m.held.Press(action, m.now())
		}

	case game.StatePaused:
		switch action {
		case core.ActionPause:
			err = m.session.Resume()
		case core.ActionBack:
			err = m.session.Quit()
		}

	case game.StateGameOver:
		switch action {
		case core.ActionRestart:
			m.presenter.Reset()
			m.held.Clear()
			err = m.session.Restart()
		case core.ActionBack:
			err = m.session.Quit()
		case core.ActionScores:
			m.openScores()
		}

	case game.StateBossComplete:
		switch action {
		case core.ActionConfirm:
			m.held.Clear()
			err = m.session.Continue()
		case core.ActionBack:
			err = m.session.Quit()
		}
	}

	if err != nil {
		m.logger.Debug("key ignored", "action", action, "err", err)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width

	if m.scores != nil {
		return m.updateScores(msg)
	}
	return m, nil
}

// handleTick advances the session by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now
	m.session.Frame(m.held.Intent(now), dt)
	return m, tickCmd(m.config.TickRate)
}

// applySettings takes reloaded settings. The running world keeps its own
// until the next start.
func (m *Model) applySettings(s config.Settings) {
	s = s.Normalize()
	m.settings = s
	m.session.SetSettings(s)

	if mu, ok := m.audio.(muter); ok {
		mu.SetMuted(!s.SoundEnabled)
	}
	if m.profile != nil {
		if err := m.profile.SaveSettings(s); err != nil {
			m.logger.Warn("cannot save settings", "profile", m.profile.Name(), "err", err)
		}
	}
	m.logger.Info("settings reloaded",
		"difficulty", s.Difficulty,
		"mode", s.MathMode,
	)
}

func (m *Model) openScores() {
	name := ""
	if m.profile != nil {
		name = m.profile.Name()
	}
	sb := NewScoreboardModel(m.db, name, m.config.ScreenW, m.config.ScreenH)
	sb.embedded = true
	m.scores = &sb
}

func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}
	switch {
	case sb.IsQuitting():
		m.quitting = true
		m.scores = nil
	case sb.IsGoingBack():
		m.scores = nil
	default:
		m.scores = &sb
	}
	return m, cmd
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	m.screen.Clear()
	snap := m.session.Snapshot()
	switch snap.State {
	case game.StateStart:
		m.drawStart()
	default:
		m.drawRun(snap)
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen, PaletteFor(m.settings.ColorScheme)) +
		"\n" + helpStyle.Render(m.help.View(m.keys))
}

func (m Model) drawStart() {
	s := m.settings
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}

	lines := []string{
		"Land on the platform with the right answer!",
		"",
		fmt.Sprintf("Difficulty: %s   Mode: %s", s.Difficulty, s.MathMode),
		fmt.Sprintf("Bosses: %s   Power-ups: %s   Sound: %s",
			onOff(s.BossEnabled), onOff(s.PowerUpsEnabled), onOff(s.SoundEnabled)),
		fmt.Sprintf("Best: %d   Coins: %d", m.store.Highscore(), m.store.Coins()),
	}
	if m.profile != nil {
		lines = append(lines, "Profile: "+m.profile.Name())
	}
	lines = append(lines, "", "Enter: start   Tab: scores   Q: quit")
	drawOverlay(m.screen, "QUIZJUMP", core.ColorBrightYellow, lines)
}

func (m Model) drawRun(snap game.Snapshot) {
	w := m.session.World()
	if w == nil {
		return
	}
	drawWorld(m.screen, w, m.tuning.World.ViewHeight)

	msg, kind, _ := m.presenter.Current()
	drawHUD(m.screen, snap, hudStyle{
		maxHearts: m.tuning.Player.MaxHearts,
		compact:   m.settings.FontSize == "small" || m.screen.Width() < 60,
		shake:     m.presenter.ShakeOffset(),
		feedback:  msg,
		kind:      kind,
	})

	switch snap.State {
	case game.StatePaused:
		drawOverlay(m.screen, "PAUSED", core.ColorBrightCyan, []string{
			"P: resume   B: menu   Q: quit",
		})
	case game.StateGameOver:
		drawOverlay(m.screen, "GAME OVER", core.ColorRed, []string{
			snap.Reason,
			fmt.Sprintf("Score: %d   Best: %d", snap.Score, snap.Best),
			fmt.Sprintf("Correct answers: %d", snap.CorrectCount),
			"",
			"R: play again   B: menu   Tab: scores",
		})
	case game.StateBossComplete:
		drawOverlay(m.screen, "BOSS DEFEATED!", core.ColorBrightGreen, []string{
			fmt.Sprintf("Score: %d   Coins: %d", snap.Score, snap.Coins),
			"",
			"Enter: continue   B: menu",
		})
	}
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
