package jetpack

import (
	"math"

	"github.com/vovakirdan/jetpack-arcade/internal/core"
)

// EnemyKind selects an enemy's body, health and movement pattern.
type EnemyKind uint8

const (
	EnemyDrone EnemyKind = iota
	EnemyInterceptor
	EnemyTurret
)

// String returns the enemy kind name.
func (k EnemyKind) String() string {
	switch k {
	case EnemyDrone:
		return "drone"
	case EnemyInterceptor:
		return "interceptor"
	case EnemyTurret:
		return "turret"
	default:
		return "?"
	}
}

// enemySpec holds the per-kind constants.
type enemySpec struct {
	w, h        float64
	health      float64
	cooldownMs  float64 // Base time between shots
	accuracy    float64 // Max aim jitter in radians
	speedFactor float64 // Fraction of world speed
	bobSpeed    float64 // Bob phase advance per reference frame
	bobAmp      float64 // Bob displacement per reference frame
}

var enemySpecs = [...]enemySpec{
	EnemyDrone:       {w: 50, h: 40, health: 4, cooldownMs: 2800, accuracy: 0.18, speedFactor: 1, bobSpeed: 0.05, bobAmp: 1.0},
	EnemyInterceptor: {w: 50, h: 40, health: 3, cooldownMs: 2200, accuracy: 0.18, speedFactor: 1, bobSpeed: 0.08, bobAmp: 1.3},
	EnemyTurret:      {w: 45, h: 45, health: 6, cooldownMs: 1800, accuracy: 0.1, speedFactor: 0.6},
}

// enemyFireMargin keeps enemies from firing while entering or leaving.
const enemyFireMargin = 20

// Enemy is a hostile craft that drifts left and fires aimed shots.
type Enemy struct {
	Kind      EnemyKind
	X, Y      float64 // Top-left
	W, H      float64
	Health    float64
	MaxHealth float64
	Destroyed bool

	spec     enemySpec
	phase    float64 // Bob phase offset
	cooldown float64 // ms until next shot
	ageMs    float64
}

func newEnemy(kind EnemyKind, x, y float64, rng *RNG) *Enemy {
	spec := enemySpecs[kind]
	return &Enemy{
		Kind:      kind,
		X:         x,
		Y:         y,
		W:         spec.w,
		H:         spec.h,
		Health:    spec.health,
		MaxHealth: spec.health,
		spec:      spec,
		phase:     rng.Angle(),
		cooldown:  rng.Range(spec.cooldownMs*0.5, spec.cooldownMs*1.5),
	}
}

// Update moves the enemy and counts down its weapon. It returns true when
// the enemy fires this tick; the caller spawns the shot.
func (e *Enemy) Update(dtMs, speed, speedRatio, worldW, groundY float64) bool {
	if e.Destroyed {
		return false
	}
	k := dtMs / refFrameMs
	e.ageMs += dtMs

	e.X -= speed * e.spec.speedFactor * k
	if e.spec.bobAmp > 0 {
		frames := e.ageMs / refFrameMs
		e.Y += math.Sin(e.phase+frames*e.spec.bobSpeed) * e.spec.bobAmp * k
		e.Y = core.ClampF(e.Y, e.H, groundY-e.H*2)
	}

	e.cooldown -= dtMs
	if e.cooldown > 0 || e.X <= enemyFireMargin || e.X >= worldW-enemyFireMargin {
		return false
	}
	e.cooldown = math.Max(e.spec.cooldownMs/3, e.spec.cooldownMs/speedRatio)
	return true
}

// AimAt returns a jittered firing angle from the enemy's center to target.
func (e *Enemy) AimAt(target core.Vec, rng *RNG) float64 {
	return target.Sub(e.Center()).Angle() + rng.Range(-e.spec.accuracy, e.spec.accuracy)
}

// TakeDamage applies damage and returns true exactly once, on the hit that
// destroys the enemy.
func (e *Enemy) TakeDamage(n float64) bool {
	if e.Destroyed {
		return false
	}
	e.Health = math.Max(0, e.Health-n)
	if e.Health > 0 {
		return false
	}
	e.Destroyed = true
	return true
}

// Center returns the middle of the body.
func (e *Enemy) Center() core.Vec {
	return core.Vec{X: e.X + e.W/2, Y: e.Y + e.H/2}
}

// Shape returns the enemy's collision geometry.
func (e *Enemy) Shape() core.Shape {
	return core.RectShape(core.NewRect(e.X, e.Y, e.W, e.H))
}

// Offscreen reports whether the enemy has left past the left edge.
func (e *Enemy) Offscreen() bool {
	return e.X < -e.W-20
}
