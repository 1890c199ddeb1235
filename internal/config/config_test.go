package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decode(defaultJetpackYAML)
	if err != nil {
		t.Fatalf("embedded defaults failed to decode: %v", err)
	}
	if cfg != DefaultJetpackConfig() {
		t.Errorf("embedded YAML drifted from DefaultJetpackConfig:\n got %+v\nwant %+v", cfg, DefaultJetpackConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "speed:\n  initial: 5\n  max: 25\nscoreboard:\n  top_n: 10\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Speed.Initial != 5 || cfg.Speed.Max != 25 {
		t.Errorf("speed not overridden: %+v", cfg.Speed)
	}
	if cfg.Scoreboard.TopN != 10 {
		t.Errorf("TopN = %d, expected 10", cfg.Scoreboard.TopN)
	}
	if cfg.Physics.MaxFuel != 150 {
		t.Errorf("unspecified keys should keep defaults, MaxFuel = %f", cfg.Physics.MaxFuel)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("speed:\n  initial: 30\n  max: 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(bad)
	if err == nil || !strings.Contains(err.Error(), "speed") {
		t.Errorf("expected speed validation error, got %v", err)
	}
}

func TestValidateSpawnIntervals(t *testing.T) {
	cfg := DefaultJetpackConfig()
	cfg.Spawning.Enemy.Decay = 1.2
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "spawning.enemy") {
		t.Errorf("expected enemy interval error, got %v", err)
	}
}

func TestApplyJetpackPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		check  func(JetpackConfig) bool
	}{
		{DifficultyEasy, func(c JetpackConfig) bool { return c.Speed.Initial < 3 }},
		{DifficultyNormal, func(c JetpackConfig) bool { return c == DefaultJetpackConfig() }},
		{DifficultyHard, func(c JetpackConfig) bool { return c.Speed.Initial > 3 && c.Spawning.BossIntervalMs < 60000 }},
		{DifficultyFixed, func(c JetpackConfig) bool { return c.Speed.Increment == 0 && c.Spawning.Obstacle.Decay == 1 }},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultJetpackConfig()
			ApplyJetpackPreset(&cfg, tc.preset)
			if !tc.check(cfg) {
				t.Errorf("preset %s produced unexpected config: %+v", tc.preset, cfg)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s produced invalid config: %v", tc.preset, err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("empty preset = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should be rejected")
	}
}
