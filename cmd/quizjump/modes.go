package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quizjump/internal/config"
	"github.com/vovakirdan/quizjump/internal/quiz"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List math modes and difficulties",
	Long:  `Shows the math modes and difficulty tiers a run can be played with.`,
	Args:  cobra.NoArgs,
	Run:   runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	modes := quiz.Modes()

	fmt.Println("Math modes:")
	fmt.Println()
	fmt.Printf("  %-16s  %s\n", "ID", "Title")
	fmt.Printf("  %-16s  %s\n", "--", "-----")
	for _, m := range modes {
		fmt.Printf("  %-16s  %s\n", m.Mode, m.Title)
	}

	fmt.Println()
	fmt.Println("Difficulties:")
	fmt.Println()
	fmt.Printf("  %-16s  %-12s  %s\n", "ID", "Operands", "Multiplier")
	fmt.Printf("  %-16s  %-12s  %s\n", "--", "--------", "----------")
	for _, d := range config.Difficulties {
		r := d.Range()
		fmt.Printf("  %-16s  %-12s  x%d\n", d, fmt.Sprintf("%d-%d", r.Min, r.Max), d.Multiplier())
	}

	fmt.Println()
	fmt.Println("Run 'quizjump play --mode <id> --difficulty <id>' to play.")
}
