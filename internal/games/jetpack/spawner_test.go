package jetpack

import (
	"math"
	"testing"

	"github.com/vovakirdan/jetpack-arcade/internal/config"
)

func TestSpawnIntervalDecaysToFloor(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.IntervalConfig
	}{
		{"obstacle", config.IntervalConfig{Initial: 1800, Min: 450, Decay: 0.98}},
		{"enemy", config.IntervalConfig{Initial: 8000, Min: 1500, Decay: 0.97}},
		{"no decay", config.IntervalConfig{Initial: 2000, Min: 500, Decay: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := newSpawnTimer(tt.cfg)
			now := 0.0
			for i := 0; i < 500; i++ {
				prev := timer.Interval
				now += prev + 1
				if !timer.Due(now) {
					t.Fatalf("spawn %d: timer should be due after its interval", i)
				}
				timer.Fire(now)

				want := math.Max(tt.cfg.Min, prev*tt.cfg.Decay)
				if timer.Interval != want {
					t.Fatalf("spawn %d: interval = %f, want %f", i, timer.Interval, want)
				}
				if timer.Interval > prev || timer.Interval < tt.cfg.Min {
					t.Fatalf("spawn %d: interval %f left [%f, %f]", i, timer.Interval, tt.cfg.Min, prev)
				}
				if timer.Due(now) {
					t.Fatalf("spawn %d: timer should not be due right after firing", i)
				}
			}
			if tt.cfg.Decay < 1 && timer.Interval != tt.cfg.Min {
				t.Errorf("interval should settle on the floor %f, got %f", tt.cfg.Min, timer.Interval)
			}
		})
	}
}

func TestSpawnerHoldsArenaForBoss(t *testing.T) {
	s := newSpawner(config.DefaultJetpackConfig(), NewRNG(1))

	out := s.Update(100000, true, false)
	if out.obstacle != nil || out.enemy != nil {
		t.Error("obstacles and enemies must not spawn while the arena is locked")
	}
	if out.pickup == nil {
		t.Error("power-ups keep spawning during a boss approach")
	}

	out = s.Update(100000, false, false)
	if out.obstacle == nil || out.enemy == nil {
		t.Error("obstacles and enemies should spawn once the arena unlocks")
	}
	if out.pickup != nil {
		t.Error("power-up schedule should not fire twice at the same time")
	}
}

func TestSpawnerUsesBossTableWhileEngaged(t *testing.T) {
	s := newSpawner(config.DefaultJetpackConfig(), NewRNG(7))
	allowed := map[PowerupKind]bool{
		PowerupWeapon: true,
		PowerupShield: true,
		PowerupFuel:   true,
		PowerupSpread: true,
		PowerupRapid:  true,
	}

	spawnedAny := false
	for i := 1; i <= 100; i++ {
		out := s.Update(float64(i)*10000, true, true)
		if out.pickup == nil {
			continue
		}
		spawnedAny = true
		if !allowed[out.pickup.Kind] {
			t.Fatalf("boss fight spawned %s", out.pickup.Kind)
		}
	}
	if !spawnedAny {
		t.Fatal("expected power-ups during the boss fight")
	}
}

func TestSpawnedEntitiesStartAtRightEdge(t *testing.T) {
	cfg := config.DefaultJetpackConfig()
	s := newSpawner(cfg, NewRNG(11))
	groundY := cfg.World.GroundY()

	for i := 0; i < 200; i++ {
		o := s.newObstacle()
		if o.Rect.X != cfg.World.Width {
			t.Fatalf("obstacle spawned at x=%f", o.Rect.X)
		}
		if o.Rect.Y < 0 || o.Rect.Bottom() > groundY+1e-9 {
			t.Fatalf("obstacle %v outside the playfield", o.Rect)
		}
		if e := s.newEnemy(); e.X <= cfg.World.Width {
			t.Fatalf("enemy spawned on screen at x=%f", e.X)
		}
	}
}

func TestBossGate(t *testing.T) {
	cfg := config.DefaultJetpackConfig()
	gate := newBossGate(cfg.Spawning)

	built := 0
	build := func() *Boss {
		built++
		return newBoss(BossTank, gate.Cycle, cfg, NewRNG(1))
	}

	if gate.Tick(cfg.Spawning.BossIntervalMs-1000, false, build) != nil {
		t.Fatal("boss built before the countdown ended")
	}
	if gate.Tick(1000, false, build) == nil {
		t.Fatal("boss should be built when the countdown reaches zero")
	}
	if !gate.Approaching || built != 1 {
		t.Fatalf("approaching=%v built=%d", gate.Approaching, built)
	}
	if gate.Tick(1000, false, build) != nil || built != 1 {
		t.Error("only one boss may be pending")
	}

	if gate.Release(false) != nil {
		t.Error("boss must wait for the arena to clear")
	}
	b := gate.Release(true)
	if b == nil {
		t.Fatal("boss should be released into a clear arena")
	}
	if b.Active {
		t.Error("a released boss starts its entry inactive")
	}
	if gate.Approaching || gate.Pending != nil {
		t.Error("release should clear the pending boss")
	}

	if gate.Tick(cfg.Spawning.BossIntervalMs*2, true, build) != nil {
		t.Error("countdown must hold while a boss is live")
	}

	gate.Defeated()
	if gate.Cycle != 1 {
		t.Errorf("cycle = %d, want 1", gate.Cycle)
	}
	if gate.CountdownMs != cfg.Spawning.BossIntervalMs {
		t.Errorf("countdown = %f, want a full interval", gate.CountdownMs)
	}
}
