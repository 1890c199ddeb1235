package jetpack

import (
	"slices"
	"testing"

	"github.com/vovakirdan/jetpack-arcade/internal/config"
	"github.com/vovakirdan/jetpack-arcade/internal/core"
)

func testEffects() (*Effects, config.PowerupConfig) {
	cfg := config.DefaultJetpackConfig().Powerups
	return newEffects(cfg), cfg
}

func TestSpreadWithoutWeaponRevertsToStandard(t *testing.T) {
	e, cfg := testEffects()

	e.Activate(PowerupSpread)
	if e.Mode != FireSpread {
		t.Fatalf("expected spread mode, got %s", e.Mode)
	}
	if !e.WeaponActive {
		t.Fatal("spread should enable ranged fire")
	}
	if got := e.Remaining(PowerupWeapon); got < cfg.SpreadMs {
		t.Errorf("weapon duration %f should be at least the spread duration %f", got, cfg.SpreadMs)
	}

	for elapsed := 0.0; elapsed < cfg.SpreadMs; elapsed += 100 {
		e.Tick(100)
	}

	if e.Active(PowerupSpread) {
		t.Error("spread should have expired")
	}
	if e.Mode != FireStandard {
		t.Errorf("expected standard mode after spread expiry, got %s", e.Mode)
	}
	if e.WeaponActive {
		t.Error("ranged fire should end with the coupled weapon time")
	}
}

func TestSpreadKeepsModeWhileWeaponRemains(t *testing.T) {
	e, cfg := testEffects()

	e.Activate(PowerupWeapon)
	e.Activate(PowerupSpread)
	if got := e.Remaining(PowerupWeapon); got != cfg.WeaponMs {
		t.Errorf("spread must not shorten a longer weapon timer, got %f", got)
	}

	e.Tick(cfg.SpreadMs)
	if e.Active(PowerupSpread) {
		t.Fatal("spread should have expired")
	}
	if !e.WeaponActive {
		t.Error("weapon time remains, ranged fire should stay on")
	}
	if e.Mode != FireSpread {
		t.Errorf("spread expiry should not revert while the weapon is active, got %s", e.Mode)
	}

	e.Tick(cfg.WeaponMs - cfg.SpreadMs)
	if e.WeaponActive || e.Mode != FireStandard {
		t.Errorf("after weapon expiry: active=%v mode=%s", e.WeaponActive, e.Mode)
	}
}

func TestWeaponExpiryKeepsFireWhileRapidRemains(t *testing.T) {
	e, cfg := testEffects()

	e.Activate(PowerupRapid)
	e.Activate(PowerupRapid)
	if got := e.Remaining(PowerupWeapon); got != cfg.RapidMs {
		t.Errorf("weapon should be raised to the rapid duration, got %f", got)
	}

	expired := e.Tick(cfg.RapidMs)
	if !slices.Equal(expired, []PowerupKind{PowerupWeapon}) {
		t.Fatalf("expected only the weapon to expire, got %v", expired)
	}
	if !e.WeaponActive {
		t.Error("rapid is still running, ranged fire should stay on")
	}

	e.Tick(cfg.RapidMs)
	if e.WeaponActive {
		t.Error("ranged fire should end once rapid expires")
	}
}

func TestWeaponKeepsChosenMode(t *testing.T) {
	e, _ := testEffects()

	e.Activate(PowerupSpread)
	e.Activate(PowerupWeapon)
	if e.Mode != FireSpread {
		t.Errorf("weapon pickup should not reset spread, got %s", e.Mode)
	}
}

// The multiplier doubles per pickup but drops straight back to 1 when its
// single timer runs out.
func TestMultiplierResetsToOneOnExpiry(t *testing.T) {
	e, cfg := testEffects()

	e.Activate(PowerupMultiplier)
	e.Activate(PowerupMultiplier)
	if e.Multiplier != 4 {
		t.Fatalf("two pickups should give x4, got x%d", e.Multiplier)
	}
	if got := e.Remaining(PowerupMultiplier); got != 2*cfg.MultiplierMs {
		t.Errorf("durations should stack, got %f", got)
	}

	e.Tick(2 * cfg.MultiplierMs)
	if e.Multiplier != 1 {
		t.Errorf("expiry should reset to x1, got x%d", e.Multiplier)
	}
}

func TestIndependentEffectsExtend(t *testing.T) {
	e, cfg := testEffects()

	e.Activate(PowerupMagnet)
	e.Tick(1000)
	e.Activate(PowerupMagnet)
	e.Activate(PowerupBurst)

	if got, want := e.Remaining(PowerupMagnet), 2*cfg.MagnetMs-1000; got != want {
		t.Errorf("magnet remaining = %f, want %f", got, want)
	}
	if got := e.Remaining(PowerupBurst); got != cfg.BurstMs {
		t.Errorf("burst remaining = %f, want %f", got, cfg.BurstMs)
	}
}

func TestEffectsExpireExactlyOnce(t *testing.T) {
	e, cfg := testEffects()
	e.Activate(PowerupWeapon)

	seen := 0
	for elapsed := 0.0; elapsed < cfg.WeaponMs*2; elapsed += 250 {
		for _, kind := range e.Tick(250) {
			if kind == PowerupWeapon {
				seen++
			}
		}
		for _, kind := range expiryOrder {
			if e.Active(kind) && e.Remaining(kind) <= 0 {
				t.Fatalf("%s is active with %f ms left", kind, e.Remaining(kind))
			}
		}
	}
	if seen != 1 {
		t.Errorf("weapon expiry reported %d times, want 1", seen)
	}
}

func TestInstantKindsIgnoredByEffects(t *testing.T) {
	e, _ := testEffects()
	for _, kind := range []PowerupKind{PowerupCoin, PowerupFuel, PowerupShield} {
		e.Activate(kind)
		if e.Active(kind) {
			t.Errorf("%s should not register a timer", kind)
		}
		if kind.Timed() {
			t.Errorf("%s should not be timed", kind)
		}
	}
}

func TestMagnetPullsCoins(t *testing.T) {
	cfg := config.DefaultJetpackConfig().Powerups
	rng := NewRNG(3)
	pilot := core.Vec{X: 100, Y: 200}

	coin := newPickup(PowerupCoin, 250, 200, cfg, rng)
	fuel := newPickup(PowerupFuel, 250, 200, cfg, rng)
	before := core.Dist(core.Vec{X: coin.X, Y: coin.baseY}, pilot)

	for i := 0; i < 10; i++ {
		coin.Update(refFrameMs, 0, true, pilot, cfg)
		fuel.Update(refFrameMs, 0, true, pilot, cfg)
	}

	if after := core.Dist(core.Vec{X: coin.X, Y: coin.baseY}, pilot); after >= before {
		t.Errorf("magnet should pull the coin in: %f -> %f", before, after)
	}
	if fuel.X != 250 {
		t.Errorf("magnet should ignore non-coins, fuel moved to x=%f", fuel.X)
	}
}

func TestWeightedTablesOnlyDrawListedKinds(t *testing.T) {
	rng := NewRNG(99)
	allowed := map[PowerupKind]bool{}
	for _, w := range bossPowerupTable {
		allowed[w.value] = true
	}
	for i := 0; i < 1000; i++ {
		if k := pickWeighted(rng, bossPowerupTable); !allowed[k] {
			t.Fatalf("boss table drew %s", k)
		}
	}

	counts := make(map[PowerupKind]int)
	for i := 0; i < 5000; i++ {
		counts[pickWeighted(rng, regularPowerupTable)]++
	}
	for _, w := range regularPowerupTable {
		if counts[w.value] == 0 {
			t.Errorf("regular table never drew %s", w.value)
		}
	}
}
