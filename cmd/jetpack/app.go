package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/jetpack-arcade/internal/audio"
	"github.com/vovakirdan/jetpack-arcade/internal/config"
	"github.com/vovakirdan/jetpack-arcade/internal/core"
	"github.com/vovakirdan/jetpack-arcade/internal/registry"
	"github.com/vovakirdan/jetpack-arcade/internal/storage"
)

var (
	flagMute   bool
	flagVolume float64
	flagHoldMs int
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0.7, "Sound volume from 0 to 1")
	rootCmd.PersistentFlags().IntVar(&flagHoldMs, "hold", 300, "Milliseconds thrust stays on after the last flight key repeat")
}

// app holds the collaborators shared by local commands.
type app struct {
	cfg     config.JetpackConfig
	store   *storage.Store // nil when the database is unavailable
	logger  *log.Logger
	logFile *os.File
	sound   core.SoundPlayer
	manager *audio.SoundManager
	pilot   core.Pilot
}

// openApp loads tuning, opens the score store and the log. Sound is only
// started when withSound is set.
func openApp(withSound bool) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, sound: core.MuteSound{}}
	a.logger, a.logFile = openLogger()

	a.store, err = storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		a.logger.Warn("scores disabled", "error", err)
		// Continue without storage - the game still works
		a.store = nil
	}

	a.pilot = core.Pilot{Name: cfg.Scoreboard.DefaultName}
	if a.store != nil {
		if p, pErr := a.store.LoadPilot(cfg.Scoreboard.DefaultName); pErr == nil {
			a.pilot = p
		} else {
			a.logger.Warn("could not load pilot", "error", pErr)
		}
	}

	if withSound && !flagMute {
		sm := audio.NewSoundManager(flagVolume)
		if sErr := sm.Initialize(); sErr != nil {
			a.logger.Warn("sound disabled", "error", sErr)
		} else {
			a.manager = sm
			a.sound = sm
		}
	}

	return a, nil
}

// env builds the collaborators of one mode.
func (a *app) env(modeID string) registry.Env {
	env := registry.Env{
		Config: a.cfg,
		Sound:  a.sound,
		Logger: a.logger.With("mode", modeID),
		Pilot:  a.pilot,
	}
	if a.store != nil {
		env.Scores = a.store.Board(modeID)
	}
	return env
}

// runtime returns the runtime config for the current terminal.
func (a *app) runtime() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func (a *app) savePilotName(name string) error {
	if err := a.store.SavePilotName(name); err != nil {
		return err
	}
	a.pilot.Name = name
	return nil
}

func (a *app) Close() {
	if a.manager != nil {
		a.manager.Close()
	}
	if a.store != nil {
		a.store.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

func flightHold() time.Duration {
	return time.Duration(flagHoldMs) * time.Millisecond
}

// openLogger logs to ~/.jetpack/jetpack.log because the alt screen owns the
// terminal. Falls back to discarding output.
func openLogger() (*log.Logger, *os.File) {
	opts := log.Options{ReportTimestamp: true, Prefix: "jetpack"}
	if flagDebug {
		opts.Level = log.DebugLevel
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return log.NewWithOptions(io.Discard, opts), nil
	}
	dir := filepath.Join(home, ".jetpack")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.NewWithOptions(io.Discard, opts), nil
	}
	f, err := os.OpenFile(filepath.Join(dir, "jetpack.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.NewWithOptions(io.Discard, opts), nil
	}
	return log.NewWithOptions(f, opts), f
}
