package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quizjump/internal/config"
	"github.com/vovakirdan/quizjump/internal/storage"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change profile settings",
	Long: `Show or change the settings stored with a profile. Changes apply at
the start of the next run.

Examples:
  quizjump settings show
  quizjump settings set difficulty hard
  quizjump settings set jump_height 750
  quizjump settings export ./quizjump.toml
  quizjump settings import ./quizjump.yaml
  quizjump settings reset`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the profile settings",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		withProfile(func(p *storage.Profile) {
			printSettings(p.Name(), p.Settings())
		})
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		withProfile(func(p *storage.Profile) {
			next, err := p.Settings().Set(args[0], args[1])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			saveProfileSettings(p, next)
			v, _ := next.Get(args[0])
			fmt.Printf("%s = %s\n", args[0], v)
		})
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default settings",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		withProfile(func(p *storage.Profile) {
			saveProfileSettings(p, config.DefaultSettings())
			fmt.Println("Settings reset.")
		})
	},
}

var settingsExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the profile settings to a YAML or TOML file",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		withProfile(func(p *storage.Profile) {
			if err := config.SaveSettingsFile(args[0], p.Settings()); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Settings written to %s\n", args[0])
		})
	},
}

var settingsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Load settings from a YAML or TOML file into the profile",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		withProfile(func(p *storage.Profile) {
			s, err := config.LoadSettingsFile(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			saveProfileSettings(p, s)
			printSettings(p.Name(), p.Settings())
		})
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsExportCmd)
	settingsCmd.AddCommand(settingsImportCmd)
}

// withProfile opens the database and the selected profile for fn.
func withProfile(fn func(p *storage.Profile)) {
	logger, closer := newLogger()
	defer closer.Close()

	store := openStore()
	defer store.Close()

	p, err := storage.NewProfile(store, flagProfile, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile %q: %v\n", flagProfile, err)
		os.Exit(1)
	}
	fn(p)
}

func saveProfileSettings(p *storage.Profile, s config.Settings) {
	if err := p.SaveSettings(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
		os.Exit(1)
	}
}

func printSettings(profile string, s config.Settings) {
	fmt.Printf("Settings - %s\n", profile)
	fmt.Println()
	for _, key := range config.SettingKeys {
		v, _ := s.Get(key)
		fmt.Printf("  %-18s  %s\n", key, v)
	}
}
