package jetpack

import (
	"math"

	"github.com/vovakirdan/jetpack-arcade/internal/config"
	"github.com/vovakirdan/jetpack-arcade/internal/core"
)

// refFrameMs is the frame duration all per-frame rates are expressed in.
// Every rate is multiplied by dt/refFrameMs so the simulation does not
// depend on the actual tick rate.
const refFrameMs = 1000.0 / 60.0

// Head geometry relative to the body rectangle. The helmet sits above Y,
// so the hitbox reaches higher than the body.
const (
	headRadiusYFrac = 0.35
	headOffsetYFrac = -0.2
)

// Player is the jetpack pilot.
type Player struct {
	X, Y     float64 // Top-left of the body
	W, H     float64
	VY       float64 // Vertical velocity in units per reference frame
	Fuel     float64 // In [0, MaxFuel]
	OnGround bool
	Shields  int  // Shield charges in [0, maxShields]
	Flying   bool // Flight input held

	phys       config.PhysicsConfig
	groundY    float64
	maxShields int
}

func newPlayer(cfg config.JetpackConfig) *Player {
	groundY := cfg.World.GroundY()
	return &Player{
		X:          cfg.Player.X,
		Y:          groundY - cfg.Player.Height - cfg.Player.StartHover,
		W:          cfg.Player.Width,
		H:          cfg.Player.Height,
		Fuel:       cfg.Physics.MaxFuel,
		phys:       cfg.Physics,
		groundY:    groundY,
		maxShields: cfg.Player.MaxShields,
	}
}

// Update advances flight physics by dtMs milliseconds.
func (p *Player) Update(dtMs float64) {
	k := dtMs / refFrameMs

	if p.Flying && p.Fuel > 0 {
		p.Fuel = math.Max(0, p.Fuel-p.phys.FuelBurn*k)
		p.VY = p.phys.Lift
		p.OnGround = false
	} else {
		if p.OnGround && !p.Flying {
			p.Fuel = math.Min(p.phys.MaxFuel, p.Fuel+p.phys.FuelRecharge*k)
		}
		p.VY += p.phys.Gravity * k
	}
	// An empty tank cancels flight until the next press.
	if p.Fuel <= 0 {
		p.Flying = false
	}

	p.Y += p.VY * k

	if floor := p.groundY - p.H; p.Y >= floor {
		p.Y = floor
		p.VY = 0
		p.OnGround = true
	} else {
		p.OnGround = false
	}

	if p.Y < 0 {
		p.Y = 0
		p.VY *= p.phys.CeilingDamp
	}
}

// Refuel fills the tank.
func (p *Player) Refuel() {
	p.Fuel = p.phys.MaxFuel
}

// AddShield grants one shield charge up to the cap.
func (p *Player) AddShield() {
	p.Shields = min(p.maxShields, p.Shields+1)
}

// AbsorbHit spends a shield charge. Returns false when none is left, in
// which case the hit is lethal.
func (p *Player) AbsorbHit() bool {
	if p.Shields <= 0 {
		return false
	}
	p.Shields--
	return true
}

// Hitbox returns the head-and-body rectangle used for every collision test.
func (p *Player) Hitbox() core.Rect {
	top := p.Y + p.H*headOffsetYFrac - p.H*headRadiusYFrac
	return core.NewRect(p.X, top, p.W, p.Y+p.H-top)
}

// Hits tests the hitbox against another entity's shape.
func (p *Player) Hits(s core.Shape) bool {
	return core.RectShape(p.Hitbox()).Overlaps(s)
}

// Center returns the middle of the body, the point enemies aim at.
func (p *Player) Center() core.Vec {
	return core.Vec{X: p.X + p.W/2, Y: p.Y + p.H/2}
}

// Muzzle returns where player shots leave the gun.
func (p *Player) Muzzle() core.Vec {
	return core.Vec{X: p.X + p.W, Y: p.Y + p.H/2}
}

// Nozzle returns where jet exhaust is emitted.
func (p *Player) Nozzle() core.Vec {
	return core.Vec{X: p.X + p.W*0.2, Y: p.Y + p.H*0.9}
}
