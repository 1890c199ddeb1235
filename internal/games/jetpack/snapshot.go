package jetpack

import "math"

// Snapshot is a flat view of the run for determinism checks and debugging.
// Positions are rounded to whole world units.
type Snapshot struct {
	Mode     int
	TimeMs   int
	Score    int
	Distance int
	Speed    int // Hundredths of a unit per reference frame
	Coins    int
	Kills    int

	PlayerY int
	Fuel    int
	Shields int

	ObstacleCount  int
	EnemyCount     int
	PickupCount    int
	ShotCount      int
	EnemyShotCount int

	// Each enemy is 4 ints: Kind, X, Y, Health
	EnemyData []int

	// Boss is 5 ints: Kind, X, Y, Health, Active; empty without a boss
	BossData  []int
	BossCycle int

	// Each active effect is 2 ints: Kind, remaining ms
	EffectData []int
	Multiplier int

	RNGState uint64
}

// Snapshot returns the current run as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	r := g.run

	enemyData := make([]int, 0, len(r.Enemies)*4)
	for _, e := range r.Enemies {
		enemyData = append(enemyData, int(e.Kind), round(e.X), round(e.Y), round(e.Health))
	}

	var bossData []int
	if b := r.Boss; b != nil {
		active := 0
		if b.Active {
			active = 1
		}
		bossData = []int{int(b.Kind()), round(b.Pos.X), round(b.Pos.Y), round(b.Health), active}
	}

	var effectData []int
	for _, kind := range expiryOrder {
		if r.Effects.Active(kind) {
			effectData = append(effectData, int(kind), round(r.Effects.Remaining(kind)))
		}
	}

	return Snapshot{
		Mode:     int(g.mode),
		TimeMs:   round(r.TimeMs),
		Score:    r.Score(),
		Distance: round(r.Distance),
		Speed:    round(r.Speed * 100),
		Coins:    r.Coins,
		Kills:    r.Kills,

		PlayerY: round(r.Player.Y),
		Fuel:    round(r.Player.Fuel),
		Shields: r.Player.Shields,

		ObstacleCount:  len(r.Obstacles),
		EnemyCount:     len(r.Enemies),
		PickupCount:    len(r.Pickups),
		ShotCount:      len(r.Shots),
		EnemyShotCount: len(r.EnemyShots),

		EnemyData:  enemyData,
		BossData:   bossData,
		BossCycle:  r.Gate.Cycle,
		EffectData: effectData,
		Multiplier: r.Effects.Multiplier,

		RNGState: g.rng.state,
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Mode)                 //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TimeMs)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Distance)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Speed)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Coins)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Fuel)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shields)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ObstacleCount)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PickupCount)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShotCount)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyShotCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BossCycle)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Multiplier)     //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.BossData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.EffectData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
