// quizjump is a math platform jumper for the terminal: solve the problem on
// screen by landing on the platform that carries the right answer.
//
// Usage:
//
//	quizjump play              - Play in this terminal
//	quizjump serve             - Start SSH server for remote play
//	quizjump scores            - Show recorded runs
//	quizjump modes             - List math modes and difficulties
//	quizjump settings          - Show or change profile settings
//	quizjump profiles          - List profiles
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.quizjump/quizjump.db)
//	--profile <name>  - Select the player profile
//	--tuning <path>   - Load simulation tuning from a YAML file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/quizjump/internal/config"
	"github.com/vovakirdan/quizjump/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagProfile  string
	flagTuning   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quizjump",
	Short: "QuizJump - jump to the right answer",
	Long: `QuizJump is a platform jumper where every row of platforms carries
candidate answers to a math problem. Land on the right one to climb;
land on a wrong one and you lose a heart. Every ten correct answers a
boss round drops a shower of answer balls.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  scores    - View recorded runs
  modes     - List math modes and difficulties
  settings  - Show or change profile settings
  profiles  - List profiles

Examples:
  quizjump play
  quizjump play --difficulty hard --mode multiplication
  quizjump play --settings ./quizjump.toml
  quizjump serve --ssh :2222
  quizjump scores --all`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.quizjump/quizjump.db", "Path to profiles database")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", storage.DefaultProfile, "Player profile")
	rootCmd.PersistentFlags().StringVar(&flagTuning, "tuning", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(profilesCmd)
}

// newLogger writes to ~/.quizjump/quizjump.log so the game screen stays
// clean. The returned closer must be called on exit.
func newLogger() (*log.Logger, io.Closer) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	var (
		out    io.Writer = io.Discard
		closer io.Closer = io.NopCloser(nil)
	)
	if dir := config.UserDir(); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err == nil {
			f, err := os.OpenFile(filepath.Join(dir, "quizjump.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err == nil {
				out, closer = f, f
			}
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "quizjump",
		Level:           level,
	})
	return logger, closer
}

// openStore opens the profiles database or exits.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profiles database: %v\n", err)
		os.Exit(1)
	}
	return store
}
