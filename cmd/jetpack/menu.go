package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jetpack-arcade/internal/platform/tui"
	"github.com/vovakirdan/jetpack-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from the menu",
	Long: `Start in interactive menu mode. Press B or Esc after a run to return
to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Fly the selected mode
  Tab          - Scoreboard
  N            - Change pilot name
  Q            - Quit

Examples:
  jetpack menu
  jetpack menu --fps 30
  jetpack menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := openApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	var saveName func(string) error
	if a.store != nil {
		saveName = a.savePilotName
	}

	cfg := a.runtime()
	for {
		result, err := tui.RunMenu(a.store, cfg, a.pilot, saveName)
		if err != nil {
			return err
		}
		cfg = result.Config
		a.pilot = result.Pilot

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, sbErr := tui.RunScoreboard(a.store, a.pilot.ID, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.ModeID, a.env(result.ModeID))
		if err != nil {
			return err
		}

		runCfg := cfg
		if runCfg.Seed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}
		a.logger.Info("starting", "mode", result.ModeID, "pilot", a.pilot.Name)
		back, err := tui.Run(game, runCfg, flightHold())
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !back {
			return nil
		}
	}
}
