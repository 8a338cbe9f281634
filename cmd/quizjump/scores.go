package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/quizjump/internal/platform/tui"
)

var (
	flagScoresAll   bool
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs of the current profile.

Examples:
  quizjump scores
  quizjump scores --all --limit 20
  quizjump scores --profile alice
  quizjump scores --interactive
  quizjump scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show runs of every profile")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagScoresTUI, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the recorded runs of the profile")
}

func runScores(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	profile := flagProfile
	if flagScoresAll {
		profile = ""
	}

	if flagScoresClear {
		if err := store.ClearRuns(profile); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Runs cleared.")
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, flagProfile, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(profile, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	title := flagProfile
	if flagScoresAll {
		title = "everyone"
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'quizjump play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-7s  %-7s  %-14s  %-14s  %-8s  %s\n",
		"Rank", "Player", "Score", "Correct", "Difficulty", "Mode", "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %-7s  %-7s  %-14s  %-14s  %-8s  %s\n",
		"----", "------", "-----", "-------", "----------", "----", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-7d  %-7d  %-14s  %-14s  %-8s  %s\n",
			i+1, r.Profile, r.Score, r.CorrectCount, r.Difficulty, r.Mode,
			r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestRun(profile); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
