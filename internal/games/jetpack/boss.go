package jetpack

import (
	"math"

	"github.com/vovakirdan/jetpack-arcade/internal/config"
	"github.com/vovakirdan/jetpack-arcade/internal/core"
)

// BossKind tags the boss variant.
type BossKind uint8

const (
	BossTank BossKind = iota
	BossShip
	BossFinal
)

// String returns the boss name.
func (k BossKind) String() string {
	switch k {
	case BossTank:
		return "Siege Tank"
	case BossShip:
		return "Gunship"
	case BossFinal:
		return "Overlord"
	default:
		return "?"
	}
}

// bossShot is one projectile a boss asks the game to spawn.
type bossShot struct {
	From      core.Vec
	Angle     float64
	SpeedMult float64
}

// bossFrame is what one active boss update produced.
type bossFrame struct {
	Shots      []bossShot
	PhaseShift bool // The boss entered a new phase this tick
}

// bossContext is the slice of run state a boss reads while active.
type bossContext struct {
	dtMs       float64
	speedRatio float64  // Current world speed over initial speed
	target     core.Vec // Pilot center
	cycle      int
	world      config.WorldConfig
	rng        *RNG
}

// BossBehavior is one variant's movement and attack pattern.
// The shared Boss wrapper runs entry, bounce physics and damage.
type BossBehavior interface {
	Kind() BossKind
	// Update advances the active pattern and counts down b.ShootTimer.
	Update(b *Boss, ctx bossContext) bossFrame
}

// Boss is the shared state wrapper: entering until it reaches TargetX,
// then active until its health is gone.
type Boss struct {
	Pos        core.Vec // Rect bosses: top-left. Circle bosses: center.
	W, H       float64  // Rect bosses only
	R          float64  // Circle bosses only
	Health     float64
	MaxHealth  float64
	EntrySpeed float64
	TargetX    float64
	Active     bool
	ShootTimer float64 // ms until next volley
	VY         float64

	gravity  float64
	behavior BossBehavior
}

// newBoss constructs a boss of kind scaled to the current cycle. The boss
// starts off-screen and inactive.
func newBoss(kind BossKind, cycle int, cfg config.JetpackConfig, rng *RNG) *Boss {
	w := cfg.World
	b := &Boss{
		ShootTimer: cfg.Bosses.FirstShotDelayMs,
		gravity:    cfg.Bosses.Gravity,
		MaxHealth:  cfg.Bosses.BaseHealth * (1 + float64(cycle)*cfg.Bosses.HealthPerCycle),
	}
	b.Health = b.MaxHealth

	var entry float64
	switch kind {
	case BossTank:
		b.W, b.H = 150, 100
		b.Pos = core.Vec{X: w.Width + 150, Y: w.GroundY() - 90}
		b.TargetX = w.Width - 150 - 70
		entry = 2.0
		b.behavior = &tankBehavior{turretAngle: math.Pi}
	case BossShip:
		b.R = 55
		b.Pos = core.Vec{X: w.Width + 120, Y: 150}
		b.TargetX = w.Width - 55 - 120
		entry = 1.8
		b.behavior = &shipBehavior{
			angle:  rng.Angle(),
			modeMs: 6000 - float64(cycle)*500,
		}
	default:
		b.R = 65
		b.Pos = core.Vec{X: w.Width + 150, Y: w.Height / 2}
		b.TargetX = w.Width - 65 - 70
		entry = 1.2
		b.behavior = &finalBehavior{
			angle:   rng.Angle(),
			phaseMs: 18000 - float64(cycle)*1000,
		}
	}
	b.EntrySpeed = entry * (1 + float64(cycle)*cfg.Bosses.EntryPerCycle)
	return b
}

// Kind returns the boss variant.
func (b *Boss) Kind() BossKind {
	return b.behavior.Kind()
}

// Phase returns the current phase for multi-phase bosses, 0 otherwise.
func (b *Boss) Phase() int {
	if f, ok := b.behavior.(*finalBehavior); ok {
		return f.phase
	}
	return 0
}

// Update runs the state machine for one tick. While entering the boss
// glides left and becomes active once it reaches TargetX; while active it
// runs its behavior plus shared bounce physics.
func (b *Boss) Update(ctx bossContext) bossFrame {
	k := ctx.dtMs / refFrameMs

	if !b.Active {
		if b.Pos.X > b.TargetX {
			b.Pos.X -= b.EntrySpeed * k
		}
		if b.Pos.X <= b.TargetX {
			b.Active = true
		}
		return bossFrame{}
	}

	frame := b.behavior.Update(b, ctx)

	b.VY += b.gravity * k
	b.Pos.Y += b.VY * k
	floor := ctx.world.GroundY()
	if b.R > 0 {
		b.Pos.Y = core.ClampF(b.Pos.Y, b.R, floor-b.R)
	} else {
		b.Pos.Y = core.ClampF(b.Pos.Y, 0, floor-b.H)
	}
	return frame
}

// Damage applies n to an active boss; entering bosses are invulnerable.
// Health never drops below zero.
func (b *Boss) Damage(n float64) {
	if !b.Active {
		return
	}
	b.Health = math.Max(0, b.Health-n)
}

// Defeated reports whether the boss has no health left.
func (b *Boss) Defeated() bool {
	return b.Health <= 0
}

// Shape returns the boss collision geometry.
func (b *Boss) Shape() core.Shape {
	if b.R > 0 {
		return core.CircleShape(core.Circle{C: b.Pos, R: b.R})
	}
	return core.RectShape(core.NewRect(b.Pos.X, b.Pos.Y, b.W, b.H))
}

// Center returns the middle of the boss body.
func (b *Boss) Center() core.Vec {
	if b.R > 0 {
		return b.Pos
	}
	return core.Vec{X: b.Pos.X + b.W/2, Y: b.Pos.Y + b.H/2}
}

// tankBehavior: a ground tank whose turret tracks the pilot and sprays
// three shots per volley.
type tankBehavior struct {
	turretAngle float64
}

func (t *tankBehavior) Kind() BossKind { return BossTank }

func (t *tankBehavior) pivot(b *Boss) core.Vec {
	return core.Vec{X: b.Pos.X + b.W/2 - 30, Y: b.Pos.Y + 25}
}

func (t *tankBehavior) Update(b *Boss, ctx bossContext) bossFrame {
	k := ctx.dtMs / refFrameMs
	pivot := t.pivot(b)
	want := ctx.target.Sub(pivot).Angle()
	t.turretAngle = core.Lerp(t.turretAngle, want, math.Min(1, 0.03*k))

	b.ShootTimer -= ctx.dtMs
	if b.ShootTimer > 0 {
		return bossFrame{}
	}

	muzzle := pivot.Add(core.FromAngle(t.turretAngle, 30))
	var frame bossFrame
	for i := -1; i <= 1; i++ {
		frame.Shots = append(frame.Shots, bossShot{From: muzzle, Angle: t.turretAngle + float64(i)*0.2, SpeedMult: 1})
	}
	b.ShootTimer = math.Max(900, (2500-float64(ctx.cycle)*100)/ctx.speedRatio)
	b.VY = -5
	return frame
}

// shipBehavior: a gunship sweeping vertically, alternating between an
// aimed triple shot and a backward five-way fan.
type shipBehavior struct {
	angle      float64
	attackMode int
	modeMs     float64
}

func (s *shipBehavior) Kind() BossKind { return BossShip }

func (s *shipBehavior) Update(b *Boss, ctx bossContext) bossFrame {
	k := ctx.dtMs / refFrameMs
	h := ctx.world.Height
	b.Pos.Y = h/2.5 + math.Sin(s.angle)*(h/3)
	s.angle += 0.02 / ctx.speedRatio * k

	b.ShootTimer -= ctx.dtMs
	s.modeMs -= ctx.dtMs
	if s.modeMs <= 0 {
		s.attackMode = (s.attackMode + 1) % 2
		s.modeMs = ctx.rng.Range(5000, 8000) - float64(ctx.cycle)*500
	}
	if b.ShootTimer > 0 {
		return bossFrame{}
	}

	var frame bossFrame
	var base float64
	if s.attackMode == 0 {
		aim := ctx.target.Sub(b.Pos).Angle()
		for i := -1; i <= 1; i++ {
			frame.Shots = append(frame.Shots, bossShot{From: b.Pos, Angle: aim + float64(i)*0.15, SpeedMult: 1})
		}
		base = 2000
	} else {
		for i := -2; i <= 2; i++ {
			frame.Shots = append(frame.Shots, bossShot{From: b.Pos, Angle: math.Pi + float64(i)*0.3, SpeedMult: 1})
		}
		base = 2800 - float64(ctx.cycle)*150
	}
	b.ShootTimer = math.Max(800, base/ctx.speedRatio)
	b.VY = -4
	return frame
}

// finalBehavior: an orbiting fortress with three phases. Each phase widens
// the orbit pattern and adds shots to its radial burst.
type finalBehavior struct {
	angle    float64
	phase    int
	phaseMs  float64
	activeMs float64 // Drives the burst spin
}

func (f *finalBehavior) Kind() BossKind { return BossFinal }

func (f *finalBehavior) Update(b *Boss, ctx bossContext) bossFrame {
	k := ctx.dtMs / refFrameMs
	f.activeMs += ctx.dtMs
	h := ctx.world.Height

	radius := 70.0
	if f.phase == 1 {
		radius = 90
	}
	freq := 1.5
	if f.phase == 2 {
		freq = 2.5
	}
	b.Pos.X = b.TargetX + math.Cos(f.angle)*radius
	b.Pos.Y = h/2 + math.Sin(f.angle*freq)*(h/2-b.R-40)
	f.angle += (0.015 + float64(f.phase)*0.005) / ctx.speedRatio * k

	var frame bossFrame
	b.ShootTimer -= ctx.dtMs
	f.phaseMs -= ctx.dtMs
	if f.phaseMs <= 0 && f.phase < 2 {
		f.phase++
		f.phaseMs = 15000 - float64(f.phase)*2000 - float64(ctx.cycle)*500
		frame.PhaseShift = true
	}
	if b.ShootTimer > 0 {
		return frame
	}

	n := 6 + f.phase*2 + ctx.cycle
	speedMult := 0.8 + float64(f.phase)*0.1 + float64(ctx.cycle)*0.05
	spin := f.activeMs / refFrameMs * 0.01
	if f.phase%2 == 1 {
		spin = -spin
	}
	for i := 0; i < n; i++ {
		a := float64(i)*2*math.Pi/float64(n) + spin
		frame.Shots = append(frame.Shots, bossShot{From: b.Pos, Angle: a, SpeedMult: speedMult})
	}
	b.ShootTimer = math.Max(1000-float64(f.phase)*100, (3000-float64(f.phase)*500-float64(ctx.cycle)*100)/ctx.speedRatio)
	b.VY = -6
	return frame
}
