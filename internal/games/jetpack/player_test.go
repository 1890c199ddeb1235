package jetpack

import (
	"testing"

	"github.com/vovakirdan/jetpack-arcade/internal/config"
	"github.com/vovakirdan/jetpack-arcade/internal/core"
)

func TestPlayerEmptyTankFalls(t *testing.T) {
	p := newPlayer(config.DefaultJetpackConfig())
	p.Fuel = 0
	p.Flying = true
	p.OnGround = false
	vy := p.VY

	p.Update(refFrameMs)

	if p.VY <= vy {
		t.Errorf("expected vy to increase under gravity, got %f -> %f", vy, p.VY)
	}
	if p.Fuel != 0 {
		t.Errorf("fuel should stay at 0, got %f", p.Fuel)
	}
	if p.Flying {
		t.Error("an empty tank should cancel flight")
	}
}

func TestPlayerFuelStaysInRange(t *testing.T) {
	cfg := config.DefaultJetpackConfig()
	p := newPlayer(cfg)
	maxFuel := cfg.Physics.MaxFuel

	// Burn the tank dry, then sit on the ground to recharge.
	p.Flying = true
	for i := 0; i < 600; i++ {
		p.Update(refFrameMs)
		if p.Fuel < 0 || p.Fuel > maxFuel {
			t.Fatalf("tick %d: fuel %f outside [0, %f]", i, p.Fuel, maxFuel)
		}
		if p.Y < 0 {
			t.Fatalf("tick %d: pilot above the ceiling at y=%f", i, p.Y)
		}
	}
	p.Flying = false
	for i := 0; i < 2000; i++ {
		p.Update(refFrameMs)
		if p.Fuel < 0 || p.Fuel > maxFuel {
			t.Fatalf("recharge tick %d: fuel %f outside [0, %f]", i, p.Fuel, maxFuel)
		}
	}
	if !p.OnGround {
		t.Error("pilot should have landed")
	}
	if p.Fuel != maxFuel {
		t.Errorf("expected a full tank after resting, got %f", p.Fuel)
	}
}

func TestPlayerNoRechargeInAir(t *testing.T) {
	p := newPlayer(config.DefaultJetpackConfig())
	p.Fuel = 50
	p.Update(refFrameMs) // Spawns hovering, so this tick is airborne

	if p.Fuel != 50 {
		t.Errorf("fuel should not recharge in the air, got %f", p.Fuel)
	}
}

func TestPlayerFrameRateIndependence(t *testing.T) {
	cfg := config.DefaultJetpackConfig()
	a := newPlayer(cfg)
	b := newPlayer(cfg)
	a.Flying, b.Flying = true, true

	for i := 0; i < 60; i++ {
		a.Update(refFrameMs)
	}
	for i := 0; i < 30; i++ {
		b.Update(2 * refFrameMs)
	}

	if diff := a.Fuel - b.Fuel; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("fuel burn depends on tick rate: %f vs %f", a.Fuel, b.Fuel)
	}
}

func TestPlayerShields(t *testing.T) {
	cfg := config.DefaultJetpackConfig()
	p := newPlayer(cfg)

	if p.AbsorbHit() {
		t.Error("absorbing with no charges should fail")
	}
	for i := 0; i < 5; i++ {
		p.AddShield()
	}
	if p.Shields != cfg.Player.MaxShields {
		t.Errorf("shields should cap at %d, got %d", cfg.Player.MaxShields, p.Shields)
	}
	for want := p.Shields - 1; want >= 0; want-- {
		if !p.AbsorbHit() {
			t.Fatal("absorb should succeed while charges remain")
		}
		if p.Shields != want {
			t.Errorf("expected %d shields, got %d", want, p.Shields)
		}
	}
	if p.AbsorbHit() || p.Shields != 0 {
		t.Errorf("shields should stop at 0, got %d", p.Shields)
	}
}

func TestPlayerHitboxIncludesHead(t *testing.T) {
	p := newPlayer(config.DefaultJetpackConfig())
	box := p.Hitbox()

	if box.Y >= p.Y {
		t.Errorf("hitbox top %f should be above the body top %f", box.Y, p.Y)
	}
	if box.Bottom() != p.Y+p.H {
		t.Errorf("hitbox bottom %f should match the feet %f", box.Bottom(), p.Y+p.H)
	}

	above := core.RectShape(core.NewRect(p.X, p.Y-p.H*0.5, p.W, 2))
	if !p.Hits(above) {
		t.Error("a hazard at helmet height should hit")
	}
	clear := core.RectShape(core.NewRect(p.X+p.W+1, p.Y, 10, 10))
	if p.Hits(clear) {
		t.Error("a hazard right of the pilot should miss")
	}
}
