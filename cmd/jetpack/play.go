package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jetpack-arcade/internal/config"
	"github.com/vovakirdan/jetpack-arcade/internal/games/jetpack"
	"github.com/vovakirdan/jetpack-arcade/internal/platform/tui"
	"github.com/vovakirdan/jetpack-arcade/internal/registry"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Fly a mode directly",
	Long: `Start the given mode (default: classic) without the menu.

Controls:
  Space/W/Up   - Thrust (hold)
  F/X/J        - Fire
  Enter        - Start / confirm
  P            - Pause
  R            - Restart after game over
  S/Tab        - Scoreboard after game over
  B/Esc        - Back
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options pick the matching mode:
  easy   - cadet
  normal - classic
  hard   - ace
  fixed  - steady (no speed-up, no spawn decay)

Examples:
  jetpack play
  jetpack play ace
  jetpack play --difficulty easy
  jetpack play --config ./my-jetpack.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	modeID := "classic"
	if len(args) == 1 {
		modeID = args[0]
	}
	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
		modeID, _ = jetpack.ModeFor(preset)
	}

	if !registry.Exists(modeID) {
		return fmt.Errorf("unknown mode %q, run 'jetpack list' to see available modes", modeID)
	}

	a, err := openApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	game, err := registry.Create(modeID, a.env(modeID))
	if err != nil {
		return err
	}

	a.logger.Info("starting", "mode", modeID, "pilot", a.pilot.Name)
	if _, err := tui.Run(game, a.runtime(), flightHold()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
