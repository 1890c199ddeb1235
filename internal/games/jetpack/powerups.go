package jetpack

import (
	"math"

	"github.com/vovakirdan/jetpack-arcade/internal/config"
	"github.com/vovakirdan/jetpack-arcade/internal/core"
)

// PowerupKind represents the nine pickup types.
type PowerupKind uint8

const (
	PowerupCoin       PowerupKind = iota // Instant: +1 coin
	PowerupFuel                          // Instant: refill fuel
	PowerupShield                        // Instant: +1 shield charge
	PowerupWeapon                        // Timed: ranged auto-fire
	PowerupSpread                        // Timed: three-way shots
	PowerupRapid                         // Timed: faster fire
	PowerupMultiplier                    // Timed: doubles score gain
	PowerupMagnet                        // Timed: pulls coins in
	PowerupBurst                         // Timed: world speed boost
	PowerupCount                         // Sentinel for counting kinds
)

// String returns the name of the power-up kind.
func (k PowerupKind) String() string {
	switch k {
	case PowerupCoin:
		return "Coin"
	case PowerupFuel:
		return "Fuel"
	case PowerupShield:
		return "Shield"
	case PowerupWeapon:
		return "Weapon"
	case PowerupSpread:
		return "Spread"
	case PowerupRapid:
		return "Rapid"
	case PowerupMultiplier:
		return "Multi"
	case PowerupMagnet:
		return "Magnet"
	case PowerupBurst:
		return "Burst"
	default:
		return "?"
	}
}

// Glyph returns the display character for a power-up kind.
func (k PowerupKind) Glyph() rune {
	switch k {
	case PowerupCoin:
		return '$'
	case PowerupFuel:
		return 'F'
	case PowerupShield:
		return 'S'
	case PowerupWeapon:
		return 'W'
	case PowerupSpread:
		return 'Ψ'
	case PowerupRapid:
		return 'R'
	case PowerupMultiplier:
		return 'x'
	case PowerupMagnet:
		return 'M'
	case PowerupBurst:
		return '»'
	default:
		return '?'
	}
}

// Timed reports whether the kind registers a duration in Effects.
func (k PowerupKind) Timed() bool {
	return k >= PowerupWeapon && k < PowerupCount
}

var regularPowerupTable = []weighted[PowerupKind]{
	{PowerupCoin, 20},
	{PowerupFuel, 15},
	{PowerupShield, 15},
	{PowerupWeapon, 10},
	{PowerupSpread, 10},
	{PowerupRapid, 10},
	{PowerupMultiplier, 7},
	{PowerupMagnet, 7},
	{PowerupBurst, 6},
}

// bossPowerupTable only holds combat support while a boss is engaged.
var bossPowerupTable = []weighted[PowerupKind]{
	{PowerupWeapon, 25},
	{PowerupShield, 25},
	{PowerupFuel, 20},
	{PowerupSpread, 15},
	{PowerupRapid, 15},
}

// Pickup is a collectible bobbing across the field.
type Pickup struct {
	Kind  PowerupKind
	X, Y  float64 // Top-left of the bounding square
	Size  float64
	baseY float64
	phase float64
	ageMs float64
}

func newPickup(kind PowerupKind, x, y float64, cfg config.PowerupConfig, rng *RNG) *Pickup {
	size := cfg.Size
	if kind == PowerupCoin {
		size = cfg.CoinSize
	}
	return &Pickup{Kind: kind, X: x, Y: y, Size: size, baseY: y, phase: rng.Angle()}
}

// Update drifts the pickup left, or toward the pilot when it is a coin under
// an active magnet, and applies the bob animation.
func (p *Pickup) Update(dtMs, speed float64, magnet bool, pilot core.Vec, cfg config.PowerupConfig) {
	k := dtMs / refFrameMs
	p.ageMs += dtMs

	if magnet && p.Kind == PowerupCoin {
		here := core.Vec{X: p.X, Y: p.baseY}
		dist := core.Dist(here, pilot)
		force := core.MapRange(core.ClampF(dist, 0, cfg.MagnetRadius), 0, cfg.MagnetRadius, 5, 0.5)
		pull := core.FromAngle(pilot.Sub(here).Angle(), force*k)
		p.X += pull.X
		p.baseY += pull.Y
	} else {
		p.X -= speed * cfg.DriftFraction * k
	}
	p.Y = p.baseY + math.Sin(p.ageMs/refFrameMs*0.08+p.phase)*cfg.BobAmplitude
}

// Shape returns the pickup's collision circle.
func (p *Pickup) Shape() core.Shape {
	return core.CircleShape(core.Circle{C: core.Vec{X: p.X + p.Size/2, Y: p.Y + p.Size/2}, R: p.Size / 2})
}

// Offscreen reports whether the pickup has left past the left edge.
func (p *Pickup) Offscreen() bool {
	return p.X < -p.Size-20
}

// FireMode is the weapon's shot pattern.
type FireMode uint8

const (
	FireStandard FireMode = iota
	FireSpread
)

// String returns the fire mode name.
func (m FireMode) String() string {
	if m == FireSpread {
		return "spread"
	}
	return "standard"
}

// expiryOrder fixes the order deactivations run in within one tick.
var expiryOrder = [...]PowerupKind{
	PowerupWeapon,
	PowerupSpread,
	PowerupRapid,
	PowerupMultiplier,
	PowerupMagnet,
	PowerupBurst,
}

// Effects is the active timed-effect registry: kind -> remaining ms.
// A key is present exactly while the effect is active. It also owns the
// state the weapon family and multiplier switch: ranged fire, fire mode and
// the score multiplier.
type Effects struct {
	remaining    map[PowerupKind]float64
	durations    map[PowerupKind]float64
	WeaponActive bool
	Mode         FireMode
	Multiplier   int
}

func newEffects(cfg config.PowerupConfig) *Effects {
	return &Effects{
		remaining: make(map[PowerupKind]float64),
		durations: map[PowerupKind]float64{
			PowerupWeapon:     cfg.WeaponMs,
			PowerupSpread:     cfg.SpreadMs,
			PowerupRapid:      cfg.RapidMs,
			PowerupMultiplier: cfg.MultiplierMs,
			PowerupMagnet:     cfg.MagnetMs,
			PowerupBurst:      cfg.BurstMs,
		},
		Mode:       FireStandard,
		Multiplier: 1,
	}
}

// Active reports whether kind currently has an entry.
func (e *Effects) Active(kind PowerupKind) bool {
	_, ok := e.remaining[kind]
	return ok
}

// Remaining returns the ms left on kind, 0 when inactive.
func (e *Effects) Remaining(kind PowerupKind) float64 {
	return e.remaining[kind]
}

// Duration returns the configured duration of a timed kind.
func (e *Effects) Duration(kind PowerupKind) float64 {
	return e.durations[kind]
}

// extend adds the kind's full duration to its entry.
func (e *Effects) extend(kind PowerupKind) {
	e.remaining[kind] += e.durations[kind]
}

// raiseTo lifts kind's entry to at least ms.
func (e *Effects) raiseTo(kind PowerupKind, ms float64) {
	e.remaining[kind] = math.Max(e.remaining[kind], ms)
}

// Activate applies a timed kind. Instant kinds are ignored here; the game
// handles them because they touch the pilot and the run.
func (e *Effects) Activate(kind PowerupKind) {
	switch kind {
	case PowerupMagnet, PowerupBurst:
		e.extend(kind)
	case PowerupWeapon:
		e.WeaponActive = true
		if e.Mode != FireSpread {
			e.Mode = FireStandard
		}
		e.extend(kind)
	case PowerupSpread:
		e.WeaponActive = true
		e.Mode = FireSpread
		// Losing spread must not silently drop ranged fire.
		e.raiseTo(PowerupWeapon, e.durations[PowerupSpread])
		e.extend(kind)
	case PowerupRapid:
		e.WeaponActive = true
		e.raiseTo(PowerupWeapon, e.durations[PowerupRapid])
		e.extend(kind)
	case PowerupMultiplier:
		// Multiplies on activation but resets flatly to 1 on expiry.
		e.Multiplier *= 2
		e.extend(kind)
	}
}

// Tick decrements every entry by dtMs, removes those at or below zero and
// runs each removed kind's deactivation once. All entries are decremented
// before any deactivation runs, so rules see the registry as it stands after
// this tick. Returns the expired kinds in deactivation order.
func (e *Effects) Tick(dtMs float64) []PowerupKind {
	var expired []PowerupKind
	for _, kind := range expiryOrder {
		left, ok := e.remaining[kind]
		if !ok {
			continue
		}
		left -= dtMs
		if left > 0 {
			e.remaining[kind] = left
			continue
		}
		delete(e.remaining, kind)
		expired = append(expired, kind)
	}

	for _, kind := range expired {
		switch kind {
		case PowerupWeapon:
			if !e.Active(PowerupSpread) && !e.Active(PowerupRapid) {
				e.WeaponActive = false
				e.Mode = FireStandard
			}
		case PowerupSpread:
			if !e.Active(PowerupWeapon) {
				e.Mode = FireStandard
			}
		case PowerupMultiplier:
			e.Multiplier = 1
		}
	}

	// Ranged fire outlives the weapon entry only through spread or rapid.
	if e.WeaponActive && !e.Active(PowerupWeapon) && !e.Active(PowerupSpread) && !e.Active(PowerupRapid) {
		e.WeaponActive = false
	}
	return expired
}
