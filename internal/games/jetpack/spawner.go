package jetpack

import (
	"math"

	"github.com/vovakirdan/jetpack-arcade/internal/config"
	"github.com/vovakirdan/jetpack-arcade/internal/core"
)

// SpawnTimer is one adaptive spawn schedule. Each spawn shrinks the interval
// by Decay down to the Min floor, so density rises exponentially but is
// bounded.
type SpawnTimer struct {
	Last     float64 // Run time of the last spawn, ms
	Interval float64 // Current interval, ms
	Min      float64
	Decay    float64
}

func newSpawnTimer(c config.IntervalConfig) SpawnTimer {
	return SpawnTimer{Interval: c.Initial, Min: c.Min, Decay: c.Decay}
}

// Due reports whether more than Interval has passed since the last spawn.
func (t *SpawnTimer) Due(now float64) bool {
	return now-t.Last > t.Interval
}

// Fire records a spawn at now and decays the interval toward the floor.
func (t *SpawnTimer) Fire(now float64) {
	t.Last = now
	t.Interval = math.Max(t.Min, t.Interval*t.Decay)
}

var enemyTable = []weighted[EnemyKind]{
	{EnemyDrone, 60},
	{EnemyInterceptor, 25},
	{EnemyTurret, 15},
}

// Spawner owns the content schedules and builds new entities.
type Spawner struct {
	Obstacles   SpawnTimer
	Enemies     SpawnTimer
	Powerups    SpawnTimer
	BossPowerup SpawnTimer

	cfg config.JetpackConfig
	rng *RNG
}

func newSpawner(cfg config.JetpackConfig, rng *RNG) *Spawner {
	return &Spawner{
		Obstacles:   newSpawnTimer(cfg.Spawning.Obstacle),
		Enemies:     newSpawnTimer(cfg.Spawning.Enemy),
		Powerups:    newSpawnTimer(cfg.Spawning.Powerup),
		BossPowerup: newSpawnTimer(cfg.Spawning.BossPowerup),
		cfg:         cfg,
		rng:         rng,
	}
}

// spawned is what one spawner pass produced.
type spawned struct {
	obstacle *Obstacle
	enemy    *Enemy
	pickup   *Pickup
}

// Update runs every schedule at run time now. Obstacles and enemies hold
// while the arena is locked for a boss; power-ups switch to the boss
// schedule and table while a boss is engaged.
func (s *Spawner) Update(now float64, arenaLocked, bossEngaged bool) spawned {
	var out spawned

	if !arenaLocked && s.Obstacles.Due(now) {
		out.obstacle = s.newObstacle()
		s.Obstacles.Fire(now)
	}

	pt := &s.Powerups
	if bossEngaged {
		pt = &s.BossPowerup
	}
	if pt.Due(now) {
		out.pickup = s.newPickup(bossEngaged)
		// Both schedules share the last spawn time so switching does not
		// produce an immediate burst.
		s.Powerups.Last, s.BossPowerup.Last = now, now
		pt.Fire(now)
	}

	if !arenaLocked && s.Enemies.Due(now) {
		out.enemy = s.newEnemy()
		s.Enemies.Fire(now)
	}
	return out
}

func (s *Spawner) newObstacle() *Obstacle {
	w := s.rng.Range(25, 60)
	h := s.rng.Range(40, 180)
	groundY := s.cfg.World.GroundY()

	var y float64
	switch roll := s.rng.Float64(); {
	case roll < 0.4:
		y = 0
	case roll < 0.8:
		y = groundY - h
	default:
		y = s.rng.Range(s.cfg.World.Height*0.15, groundY-h-40)
	}

	return &Obstacle{Rect: core.NewRect(s.cfg.World.Width, y, w, h)}
}

func (s *Spawner) newEnemy() *Enemy {
	kind := pickWeighted(s.rng, enemyTable)
	groundY := s.cfg.World.GroundY()

	var y float64
	if kind == EnemyTurret {
		y = 30
		if s.rng.Chance(0.5) {
			y = groundY - 40 - 30
		}
	} else {
		y = s.rng.Range(60, groundY-90)
	}
	return newEnemy(kind, s.cfg.World.Width+30, y, s.rng)
}

func (s *Spawner) newPickup(bossEngaged bool) *Pickup {
	table := regularPowerupTable
	if bossEngaged {
		table = bossPowerupTable
	}
	kind := pickWeighted(s.rng, table)
	y := s.rng.Range(60, s.cfg.World.GroundY()-90)
	return newPickup(kind, s.cfg.World.Width, y, s.cfg.Powerups, s.rng)
}

// BossGate counts down to the next boss, holds it while the arena clears
// and tracks the cycle count.
type BossGate struct {
	CountdownMs float64
	Approaching bool
	Pending     *Boss
	Cycle       int // Bosses defeated this run

	intervalMs float64
}

func newBossGate(cfg config.SpawningConfig) BossGate {
	return BossGate{CountdownMs: cfg.BossIntervalMs, intervalMs: cfg.BossIntervalMs}
}

// Tick counts down while no boss is live or pending. On reaching zero it
// constructs the pending boss with build and returns it.
func (g *BossGate) Tick(dtMs float64, bossLive bool, build func() *Boss) *Boss {
	if bossLive || g.Approaching {
		return nil
	}
	g.CountdownMs -= dtMs
	if g.CountdownMs > 0 {
		return nil
	}
	g.Approaching = true
	g.Pending = build()
	return g.Pending
}

// Release promotes the pending boss once the arena holds no enemies and no
// obstacles. Returns nil while the gate stays closed.
func (g *BossGate) Release(arenaClear bool) *Boss {
	if !g.Approaching || g.Pending == nil || !arenaClear {
		return nil
	}
	b := g.Pending
	g.Pending = nil
	g.Approaching = false
	return b
}

// Defeated records a boss kill: one more cycle and a fresh countdown.
func (g *BossGate) Defeated() {
	g.Cycle++
	g.CountdownMs = g.intervalMs
	g.Approaching = false
	g.Pending = nil
}
