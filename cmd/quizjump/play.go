package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/quizjump/internal/audio"
	"github.com/vovakirdan/quizjump/internal/config"
	"github.com/vovakirdan/quizjump/internal/core"
	"github.com/vovakirdan/quizjump/internal/platform/tui"
	"github.com/vovakirdan/quizjump/internal/storage"
)

var (
	flagSettings   string
	flagDifficulty string
	flagMode       string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play QuizJump",
	Long: `Start QuizJump in this terminal.

Controls:
  Left/Right, A/D  - Move
  Space/Up/W       - Jump
  P/Esc            - Pause
  Enter            - Start / continue after a boss
  R                - Play again (after game over)
  B                - Back to the start screen
  Tab              - Scores
  Q/Ctrl+C         - Quit

Settings come from the profile. With --settings, a YAML or TOML file is
loaded into the profile and watched: edits take effect at the next run.

Examples:
  quizjump play
  quizjump play --difficulty medium --mode subtraction
  quizjump play --settings ./quizjump.yaml
  quizjump play --profile alice --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSettings, "settings", "", "Path to a YAML or TOML settings file to load and watch")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, medium, hard, extremely-hard")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Math mode: addition, subtraction, multiplication, combined")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closer := newLogger()
	defer closer.Close()

	tuning, err := config.LoadTuning(flagTuning)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Tuning:   tuning,
		Settings: config.DefaultSettings(),
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger: logger,
	}

	// Continue without storage if the database is unavailable
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open profiles database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
		profile, profErr := storage.NewProfile(store, flagProfile, logger)
		if profErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load profile %q: %v\n", flagProfile, profErr)
		} else {
			opts.DB = store
			opts.Profile = profile
			opts.Settings = profile.Settings()
		}
	}

	if flagSettings != "" {
		s, loadErr := config.LoadSettingsFile(flagSettings)
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", loadErr)
			os.Exit(1)
		}
		opts.Settings = s

		watcher, watchErr := config.WatchSettings(flagSettings)
		if watchErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: settings will not reload: %v\n", watchErr)
		} else {
			defer watcher.Close()
			opts.Watcher = watcher
		}
	}

	opts.Settings = applyOverrides(opts.Settings)
	if opts.Profile != nil {
		if saveErr := opts.Profile.SaveSettings(opts.Settings); saveErr != nil {
			logger.Warn("cannot save settings", "err", saveErr)
		}
	}

	if !flagMute {
		player := audio.NewPlayer()
		if initErr := player.Init(); initErr != nil {
			logger.Warn("audio unavailable", "err", initErr)
		} else {
			defer player.Close()
			player.SetMuted(!opts.Settings.SoundEnabled)
			opts.Audio = player
		}
	}

	if runErr := tui.Run(opts); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// applyOverrides applies --difficulty and --mode. Bad values exit.
func applyOverrides(s config.Settings) config.Settings {
	overrides := []struct{ key, value string }{
		{"difficulty", flagDifficulty},
		{"math_mode", flagMode},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		next, err := s.Set(o.key, o.value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		s = next
	}
	return s.Normalize()
}
