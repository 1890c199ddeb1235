package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jetpack-arcade/internal/config"
	"github.com/vovakirdan/jetpack-arcade/internal/storage"
)

var pilotCmd = &cobra.Command{
	Use:   "pilot",
	Short: "Show the pilot name and ID",
	Long: `The pilot name is written to the scoreboard with every run. The pilot
ID keeps one leaderboard entry per player and survives renames.

Examples:
  jetpack pilot
  jetpack pilot set Maverick
  jetpack pilot reset`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return withPilotStore(func(store *storage.Store, defaultName string) error {
			p, err := store.LoadPilot(defaultName)
			if err != nil {
				return err
			}
			fmt.Printf("Pilot: %s\nID:    %s\n", p.Name, p.ID)
			return nil
		})
	},
}

var pilotSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Change the pilot name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		return withPilotStore(func(store *storage.Store, _ string) error {
			if err := store.SavePilotName(name); err != nil {
				return err
			}
			fmt.Printf("Pilot name set to %s.\n", strings.TrimSpace(name))
			return nil
		})
	},
}

var pilotResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the pilot name",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return withPilotStore(func(store *storage.Store, defaultName string) error {
			if err := store.ClearPilotName(); err != nil {
				return err
			}
			fmt.Printf("Pilot name reset to %s.\n", defaultName)
			return nil
		})
	},
}

func init() {
	pilotCmd.AddCommand(pilotSetCmd)
	pilotCmd.AddCommand(pilotResetCmd)
}

func withPilotStore(fn func(store *storage.Store, defaultName string) error) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store, cfg.Scoreboard.DefaultName)
}
