package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List profiles",
	Long:  `Shows every profile in the database with its best score and coins.`,
	Args:  cobra.NoArgs,
	Run:   runProfiles,
}

func runProfiles(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	names, err := store.Profiles()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing profiles: %v\n", err)
		os.Exit(1)
	}
	if len(names) == 0 {
		fmt.Println("No profiles yet.")
		return
	}

	maxLen := len("Profile")
	for _, n := range names {
		maxLen = max(maxLen, len(n))
	}

	fmt.Printf("  %-*s  %-8s  %-6s  %s\n", maxLen, "Profile", "Best", "Coins", "Updated")
	fmt.Printf("  %-*s  %-8s  %-6s  %s\n", maxLen, "-------", "----", "-----", "-------")
	for _, n := range names {
		rec, err := store.LoadProfile(n)
		if rec.Name == "" {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			continue
		}
		fmt.Printf("  %-*s  %-8d  %-6d  %s\n", maxLen, n, rec.Highscore, rec.Coins,
			rec.UpdatedAt.Format("2006-01-02 15:04"))
	}
}
